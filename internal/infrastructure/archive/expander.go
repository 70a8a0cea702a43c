package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/quazii/quaziiui-installer/internal/core/domain"
	"github.com/quazii/quaziiui-installer/internal/infrastructure/logging"
)

// Expander extracts release archives and locates the payload folder
// inside the extraction root.
type Expander struct {
	log *logging.Logger
}

// NewExpander creates an Expander.
func NewExpander(log *logging.Logger) *Expander {
	return &Expander{log: log}
}

// Expand extracts archivePath into destinationDir, overwriting any
// existing content (last write wins per file). A missing or empty
// archive fails before extraction starts; an unreadable one is
// reported as corrupted.
func (e *Expander) Expand(archivePath, destinationDir string) error {
	src, err := domain.NewValidatedPath(archivePath)
	if err != nil {
		return fmt.Errorf("invalid archive path: %w", err)
	}
	dest, err := domain.NewValidatedPath(destinationDir)
	if err != nil {
		return fmt.Errorf("invalid extraction directory: %w", err)
	}

	info, err := os.Stat(src.String())
	if err != nil {
		return domain.NewFilesystemFailure("archive missing before extraction: %w", err)
	}
	if info.Size() == 0 {
		return domain.NewFilesystemFailure("archive %s is empty", src)
	}

	reader, err := zip.OpenReader(src.String())
	if err != nil {
		return domain.NewFilesystemFailure("archive corrupted: %w", err)
	}
	defer reader.Close()

	if err := os.MkdirAll(dest.String(), 0755); err != nil {
		return domain.NewFilesystemFailure("failed to create extraction directory: %w", err)
	}

	e.log.Infof("🔄 Extracting %s", src)

	for _, file := range reader.File {
		if err := e.extractEntry(file, dest.String()); err != nil {
			return err
		}
	}

	return nil
}

func (e *Expander) extractEntry(file *zip.File, destDir string) error {
	targetPath := filepath.Join(destDir, file.Name)

	// Security: prevent path traversal
	if !strings.HasPrefix(filepath.Clean(targetPath), filepath.Clean(destDir)+string(os.PathSeparator)) {
		return domain.NewFilesystemFailure("unsafe archive path: %s", file.Name)
	}

	if file.FileInfo().IsDir() {
		if err := os.MkdirAll(targetPath, 0755); err != nil {
			return domain.NewFilesystemFailure("failed to create directory: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return domain.NewFilesystemFailure("failed to create directory: %w", err)
	}

	in, err := file.Open()
	if err != nil {
		return domain.NewFilesystemFailure("archive corrupted: %w", err)
	}
	defer in.Close()

	// Entries written without permission bits default to 0644.
	mode := file.Mode().Perm()
	if mode == 0 {
		mode = 0644
	}

	out, err := os.OpenFile(targetPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return domain.NewFilesystemFailure("failed to create file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return domain.NewFilesystemFailure("failed to write file: %w", err)
	}
	if err := out.Close(); err != nil {
		return domain.NewFilesystemFailure("failed to finalize file: %w", err)
	}

	return nil
}

// LocatePayloadFolder finds the extracted top-level folder. Hosting
// APIs prefix the folder name unpredictably, so an ordered pattern
// list is tried: the org-repo wildcard, then repo-tag, then
// repo-main. The first non-empty match wins; ties resolve in listing
// order.
func (e *Expander) LocatePayloadFolder(searchRoot, releaseTag string) (domain.ValidatedPath, error) {
	root, err := domain.NewValidatedPath(searchRoot)
	if err != nil {
		return "", fmt.Errorf("invalid search root: %w", err)
	}

	patterns := []string{
		fmt.Sprintf("%s-%s-*", domain.ProjectOwner, domain.ProjectRepo),
		fmt.Sprintf("%s-%s", domain.ProjectRepo, releaseTag),
		fmt.Sprintf("%s-%s", domain.ProjectRepo, domain.FallbackTag),
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(filepath.Join(root.String(), pattern))
		if err != nil {
			continue
		}

		for _, match := range matches {
			info, statErr := os.Stat(match)
			if statErr != nil || !info.IsDir() {
				continue
			}
			e.log.Debugf("payload folder matched pattern %s: %s", pattern, match)
			return domain.NewValidatedPath(match)
		}
	}

	return "", domain.NewFilesystemFailure("extracted folder not found under %s", root)
}
