package di

import (
	"fmt"
	"io"
	"os"

	"github.com/quazii/quaziiui-installer/internal/application"
	"github.com/quazii/quaziiui-installer/internal/core/domain"
	"github.com/quazii/quaziiui-installer/internal/infrastructure/archive"
	"github.com/quazii/quaziiui-installer/internal/infrastructure/console"
	"github.com/quazii/quaziiui-installer/internal/infrastructure/download"
	"github.com/quazii/quaziiui-installer/internal/infrastructure/github"
	"github.com/quazii/quaziiui-installer/internal/infrastructure/install"
	"github.com/quazii/quaziiui-installer/internal/infrastructure/logging"
	"github.com/quazii/quaziiui-installer/internal/infrastructure/wow"
)

// Container holds the process-level dependencies shared by every
// command.
type Container struct {
	// WorkDir is where a run places its temp artifacts.
	WorkDir string

	// Console receives the leveled output lines.
	Console io.Writer
}

// NewContainer creates the dependency container for a process.
func NewContainer() (*Container, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	return &Container{
		WorkDir: home,
		Console: os.Stdout,
	}, nil
}

// Runtime bundles the components assembled for one run. Commands use
// the piece they need; the full pipeline is only run by install.
type Runtime struct {
	Log       *logging.Logger
	Locator   *wow.Locator
	Installer *install.Installer
	Pipeline  *application.Pipeline
}

// BuildRuntime assembles the components for one run from its
// configuration. Each run gets fresh components; nothing is shared
// across runs except the container itself.
func (c *Container) BuildRuntime(cfg domain.RunConfig) *Runtime {
	// 1. Logging first, everything else reports through it.
	log := logging.New(c.Console, cfg.LogFile)

	// 2. Infrastructure components.
	confirm := console.NewConfirmer()
	locator := wow.NewLocator(log)
	resolver := github.NewReleaseClient(cfg.APIBase)
	downloader := download.NewDownloader(log)
	expander := archive.NewExpander(log)
	installer := install.NewInstaller(confirm, log, cfg.Force)

	// 3. The pipeline over all of them.
	pipeline := application.NewPipeline(cfg, c.WorkDir, locator, resolver, downloader, expander, installer, log)

	return &Runtime{
		Log:       log,
		Locator:   locator,
		Installer: installer,
		Pipeline:  pipeline,
	}
}
