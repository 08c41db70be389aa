package usecase

import (
	"context"
	"fmt"

	"github.com/alicenet/factory-cli/internal/domain/config"
)

// BuildProject compiles the contracts before a task reads the artifacts.
type BuildProject struct {
	config  *config.RuntimeConfig
	builder ArtifactBuilder
}

// NewBuildProject creates a new build project use case
func NewBuildProject(cfg *config.RuntimeConfig, builder ArtifactBuilder) *BuildProject {
	return &BuildProject{config: cfg, builder: builder}
}

// Run builds when --build is set, or always when force is true.
func (uc *BuildProject) Run(ctx context.Context, force bool) error {
	if !force && !uc.config.Build {
		return nil
	}
	if err := uc.builder.Build(ctx); err != nil {
		return fmt.Errorf("failed to build contracts: %w", err)
	}
	return nil
}
