package ports

import (
	"context"

	"github.com/quazii/quaziiui-installer/internal/core/domain"
)

// TargetLocator resolves the World of Warcraft installation a run
// installs into, from explicit input or probing.
type TargetLocator interface {
	Locate(explicitRoot string) (domain.InstallationTarget, error)
}

// ReleaseResolver queries the source host for the latest addon
// release. Failures are absorbed by the pipeline's fallback
// substitution, never retried here.
type ReleaseResolver interface {
	ResolveLatest(ctx context.Context) (domain.ReleaseDescriptor, error)
}

// Downloader fetches a remote artifact to a local file and verifies
// the result is non-empty.
type Downloader interface {
	Fetch(ctx context.Context, url, destination string) (domain.ValidatedPath, error)
}

// ArchiveExpander extracts a downloaded archive and locates the
// payload folder inside the extraction root.
type ArchiveExpander interface {
	Expand(archivePath, destinationDir string) error
	LocatePayloadFolder(searchRoot, releaseTag string) (domain.ValidatedPath, error)
}

// Installer performs the destructive filesystem steps of a run. Every
// implementation revalidates its target paths before acting.
type Installer interface {
	RemoveExisting(path, description string) error
	Install(extractedRoot, destination string) error
	Verify(destination string) (int, error)
	RemoveArtifact(path string) error
}

// Confirmer asks the user to approve a destructive step, blocking
// until an answer arrives.
type Confirmer interface {
	Confirm(question string) (bool, error)
}
