package deployment

import (
	"fmt"
	"sort"

	"github.com/alicenet/factory-cli/internal/domain"
)

// DeployGroup is an ordered run of contracts sharing a @custom:deploy-group.
type DeployGroup struct {
	Name    string
	Configs []*DeploymentConfig
}

// DeploymentList holds deploy groups in first-seen order.
type DeploymentList struct {
	Groups []*DeployGroup
}

// Configs flattens the list in deployment order.
func (l *DeploymentList) Configs() []*DeploymentConfig {
	var out []*DeploymentConfig
	for _, g := range l.Groups {
		out = append(out, g.Configs...)
	}
	return out
}

// Len returns the number of contracts across all groups.
func (l *DeploymentList) Len() int {
	n := 0
	for _, g := range l.Groups {
		n += len(g.Configs)
	}
	return n
}

func (l *DeploymentList) group(name string) *DeployGroup {
	for _, g := range l.Groups {
		if g.Name == name {
			return g
		}
	}
	g := &DeployGroup{Name: name}
	l.Groups = append(l.Groups, g)
	return g
}

// SortedDeployList groups configs by deploy group and orders non-general
// groups by deployGroupIndex. Entries without a deploy type are dropped.
func SortedDeployList(configs []*DeploymentConfig) (*DeploymentList, error) {
	list := &DeploymentList{}
	for _, c := range configs {
		group := c.DeployGroup
		if group != "" {
			if c.DeployGroupIndex == "" {
				return nil, fmt.Errorf("contract %s declares deploy-group %q without a deploy-group-index", c.FullyQualifiedName, group)
			}
			if _, err := c.GroupIndex(); err != nil {
				return nil, err
			}
		} else {
			group = domain.DefaultDeployGroup
		}
		if c.DeployType == "" {
			continue
		}
		g := list.group(group)
		g.Configs = append(g.Configs, c)
	}

	for _, g := range list.Groups {
		if g.Name == domain.DefaultDeployGroup {
			continue
		}
		sort.SliceStable(g.Configs, func(i, j int) bool {
			a, _ := g.Configs[i].GroupIndex()
			b, _ := g.Configs[j].GroupIndex()
			return a < b
		})
	}
	return list, nil
}

// GenerateTemplate puts the factory entry first, then every listed contract
// in deployment order.
func GenerateTemplate(factory *DeploymentConfig, list *DeploymentList) *DeploymentConfigFile {
	file := NewDeploymentConfigFile()
	if factory != nil {
		file.Set(factory.FullyQualifiedName, factory)
	}
	for _, c := range list.Configs() {
		file.Set(c.FullyQualifiedName, c)
	}
	return file
}

// UndefinedEntries returns the names of entries still holding placeholders.
func UndefinedEntries(file *DeploymentConfigFile) []string {
	var out []string
	for _, c := range file.Entries() {
		if c.CheckDefined() != nil {
			out = append(out, c.FullyQualifiedName)
		}
	}
	return out
}
