package application

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/quazii/quaziiui-installer/internal/application/ports"
	"github.com/quazii/quaziiui-installer/internal/core/domain"
	"github.com/quazii/quaziiui-installer/internal/infrastructure/logging"
)

// Names of the temp artifacts a run creates inside its work
// directory. Deterministic names let a run remove leftovers from an
// interrupted earlier run before downloading again.
const (
	ArchiveName    = "QuaziiUI.zip"
	ExtractDirName = "QuaziiUI_extracted"
)

// Pipeline runs the install stage sequence: locate the target, clear
// any previous installation, resolve the release, download, extract,
// locate the payload, install, verify. Temp artifacts are cleaned up
// on every exit path. Stages never decide the process exit code; the
// first failure propagates to the caller for classification.
type Pipeline struct {
	cfg       domain.RunConfig
	workDir   string
	locator   ports.TargetLocator
	resolver  ports.ReleaseResolver
	download  ports.Downloader
	expander  ports.ArchiveExpander
	installer ports.Installer
	log       *logging.Logger
}

// NewPipeline creates a Pipeline. Temp artifacts are placed in
// workDir.
func NewPipeline(
	cfg domain.RunConfig,
	workDir string,
	locator ports.TargetLocator,
	resolver ports.ReleaseResolver,
	download ports.Downloader,
	expander ports.ArchiveExpander,
	installer ports.Installer,
	log *logging.Logger,
) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		workDir:   workDir,
		locator:   locator,
		resolver:  resolver,
		download:  download,
		expander:  expander,
		installer: installer,
		log:       log,
	}
}

// Summary reports what a completed run installed.
type Summary struct {
	FilesInstalled int
	Release        domain.ReleaseDescriptor
	Target         domain.InstallationTarget
	UsedFallback   bool
	Duration       time.Duration
}

// Run executes the stage sequence and returns a summary of the
// install. The first stage failure stops the sequence and is returned
// unchanged; cleanup still runs.
func (p *Pipeline) Run(ctx context.Context) (summary *Summary, err error) {
	cleanup := newArtifactSet(p.installer, p.log)
	defer cleanup.removeAll()
	defer func() {
		if err != nil {
			p.log.Errorf("❌ Installation failed: %v", err)
		}
	}()

	// Step 1: locate the installation to deploy into.
	target, err := p.locator.Locate(p.cfg.TargetRoot)
	if err != nil {
		return nil, err
	}

	// Step 2: clear any previous installation. Declining the prompt
	// cancels the run here, before anything is downloaded.
	if err := p.installer.RemoveExisting(target.AddonDir.String(), "QuaziiUI installation"); err != nil {
		return nil, p.hintElevation(err)
	}

	// Step 3: resolve the release to install.
	release, usedFallback := p.resolveRelease(ctx)

	// Step 4: remove stale artifacts left by an interrupted run.
	archivePath := filepath.Join(p.workDir, ArchiveName)
	extractDir := filepath.Join(p.workDir, ExtractDirName)
	for _, stale := range []string{archivePath, extractDir} {
		if err := p.installer.RemoveArtifact(stale); err != nil {
			return nil, err
		}
	}

	// Track the artifacts before creating them so a failure partway
	// through a stage still gets its leftovers removed.
	cleanup.add(archivePath)
	cleanup.add(extractDir)

	// Step 5: download the release archive.
	archive, err := p.download.Fetch(ctx, release.ArtifactURL, archivePath)
	if err != nil {
		return nil, err
	}

	// Step 6: extract it.
	if err := p.expander.Expand(archive.String(), extractDir); err != nil {
		return nil, err
	}

	// Step 7: find the payload folder inside the extraction.
	payloadRoot, err := p.expander.LocatePayloadFolder(extractDir, release.Tag)
	if err != nil {
		return nil, err
	}

	// Step 8: install into the addon directory.
	if err := p.installer.Install(payloadRoot.String(), target.AddonDir.String()); err != nil {
		return nil, p.hintElevation(err)
	}

	// Step 9: verify files actually arrived.
	count, err := p.installer.Verify(target.AddonDir.String())
	if err != nil {
		return nil, err
	}

	p.log.Successf("✅ QuaziiUI %s installed to %s (%d files)", release, target.AddonDir, count)

	return &Summary{
		FilesInstalled: count,
		Release:        release,
		Target:         target,
		UsedFallback:   usedFallback,
		Duration:       time.Since(p.cfg.StartedAt),
	}, nil
}

// resolveRelease queries for the latest release and substitutes the
// fixed default-branch archive when the query fails. The substitution
// is logged so a fallback run is distinguishable from a release run.
func (p *Pipeline) resolveRelease(ctx context.Context) (domain.ReleaseDescriptor, bool) {
	release, err := p.resolver.ResolveLatest(ctx)
	if err != nil {
		p.log.Warnf("⚠️  Could not resolve the latest release: %v", err)
		p.log.Warnf("⚠️  Falling back to the %s branch archive", domain.FallbackTag)
		return domain.FallbackRelease(), true
	}

	p.log.Infof("🔍 Latest release: %s", release)
	return release, false
}

// hintElevation suggests re-running elevated when a filesystem step
// was denied. The error passes through unchanged.
func (p *Pipeline) hintElevation(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		p.log.Warnf("⚠️  Permission denied; try again from an elevated prompt")
	}
	return err
}

// artifactSet tracks the temp artifacts a run creates so cleanup runs
// on every exit path. Cleanup failures are warnings and never
// override the run's outcome.
type artifactSet struct {
	installer ports.Installer
	log       *logging.Logger
	paths     []string
}

func newArtifactSet(installer ports.Installer, log *logging.Logger) *artifactSet {
	return &artifactSet{installer: installer, log: log}
}

func (a *artifactSet) add(path string) {
	a.paths = append(a.paths, path)
}

// removeAll deletes every tracked artifact, continuing past failures.
func (a *artifactSet) removeAll() {
	for _, path := range a.paths {
		if err := a.installer.RemoveArtifact(path); err != nil {
			a.log.Warnf("⚠️  Could not clean up %s: %v", path, err)
		}
	}
}
