package domain

import (
	"fmt"
	"time"
)

// Project coordinates of the addon on its source host.
const (
	ProjectOwner = "Quazii"
	ProjectRepo  = "QuaziiUI"

	// AddonFolderName is the payload subfolder inside a release
	// archive and the name of the installed addon directory.
	AddonFolderName = "QuaziiUI"
)

const (
	// FallbackArchiveURL is the default-branch archive, used verbatim
	// when release resolution fails.
	FallbackArchiveURL = "https://github.com/Quazii/QuaziiUI/archive/refs/heads/main.zip"

	// FallbackTag identifies the default-branch archive.
	FallbackTag = "main"
)

// ReleaseDescriptor identifies one distributable version of the addon.
// Immutable once constructed.
type ReleaseDescriptor struct {
	ArtifactURL string
	Tag         string
	PublishedAt *time.Time
}

// NewReleaseDescriptor creates a ReleaseDescriptor with validation. A
// missing artifact URL or version tag is rejected rather than
// defaulted.
func NewReleaseDescriptor(artifactURL, tag string, publishedAt *time.Time) (ReleaseDescriptor, error) {
	if artifactURL == "" {
		return ReleaseDescriptor{}, fmt.Errorf("release descriptor missing artifact URL")
	}
	if tag == "" {
		return ReleaseDescriptor{}, fmt.Errorf("release descriptor missing version tag")
	}

	return ReleaseDescriptor{
		ArtifactURL: artifactURL,
		Tag:         tag,
		PublishedAt: publishedAt,
	}, nil
}

// FallbackRelease returns the fixed default-branch descriptor. It
// never fails. Substituting it for a failed resolution happens at the
// pipeline level so the substitution stays observable in the log.
func FallbackRelease() ReleaseDescriptor {
	return ReleaseDescriptor{
		ArtifactURL: FallbackArchiveURL,
		Tag:         FallbackTag,
	}
}

// String returns a short human-readable form for log lines.
func (r ReleaseDescriptor) String() string {
	if r.PublishedAt != nil {
		return fmt.Sprintf("%s (published %s)", r.Tag, r.PublishedAt.Format("2006-01-02"))
	}
	return r.Tag
}
