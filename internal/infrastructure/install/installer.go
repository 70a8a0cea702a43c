package install

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/quazii/quaziiui-installer/internal/application/ports"
	"github.com/quazii/quaziiui-installer/internal/core/domain"
	"github.com/quazii/quaziiui-installer/internal/infrastructure/logging"
)

// Installer performs the destructive filesystem steps of a run:
// clearing a previous installation, copying the payload into the
// addon directory, and verifying the result.
type Installer struct {
	confirm ports.Confirmer
	log     *logging.Logger
	force   bool
}

// NewInstaller creates an Installer. With force set, the confirmation
// prompt is skipped and existing installations are removed directly.
func NewInstaller(confirm ports.Confirmer, log *logging.Logger, force bool) *Installer {
	return &Installer{
		confirm: confirm,
		log:     log,
		force:   force,
	}
}

// RemoveExisting deletes path after asking the user, unless force is
// set. An absent path is a no-op. Declining the prompt cancels the
// run.
func (i *Installer) RemoveExisting(path, description string) error {
	target, err := domain.NewValidatedPath(path)
	if err != nil {
		return fmt.Errorf("invalid removal target: %w", err)
	}

	if _, err := os.Stat(target.String()); err != nil {
		if os.IsNotExist(err) {
			i.log.Debugf("no existing %s at %s", description, target)
			return nil
		}
		return domain.NewFilesystemFailure("cannot inspect %s: %w", target, err)
	}

	if !i.force {
		approved, err := i.confirm.Confirm(fmt.Sprintf("Remove existing %s at %s?", description, target))
		if err != nil {
			return domain.NewCancelled("confirmation unavailable: %v", err)
		}
		if !approved {
			return domain.NewCancelled("removal of existing %s declined", description)
		}
	}

	i.log.Infof("🔄 Removing existing %s at %s", description, target)

	if err := os.RemoveAll(target.String()); err != nil {
		return domain.NewFilesystemFailure("failed to remove existing %s: %w", description, err)
	}

	return nil
}

// Install copies the contents of the addon payload folder under
// extractedRoot into destination, creating destination and its
// parents if absent and overwriting files already there. The payload
// folder must exist under extractedRoot; archives whose internal
// layout changed fail here rather than installing the wrong tree.
func (i *Installer) Install(extractedRoot, destination string) error {
	source, err := domain.NewValidatedPath(extractedRoot)
	if err != nil {
		return fmt.Errorf("invalid extracted root: %w", err)
	}
	dest, err := domain.NewValidatedPath(destination)
	if err != nil {
		return fmt.Errorf("invalid install destination: %w", err)
	}

	payload := filepath.Join(source.String(), domain.AddonFolderName)
	info, err := os.Stat(payload)
	if err != nil {
		return domain.NewFilesystemFailure("payload folder %s not found under %s", domain.AddonFolderName, source)
	}
	if !info.IsDir() {
		return domain.NewFilesystemFailure("payload %s under %s is not a directory", domain.AddonFolderName, source)
	}

	if err := os.MkdirAll(dest.String(), 0755); err != nil {
		return domain.NewFilesystemFailure("failed to create %s: %w", dest, err)
	}

	i.log.Infof("🔄 Installing %s to %s", domain.AddonFolderName, dest)

	if err := copyTree(payload, dest.String()); err != nil {
		return domain.NewFilesystemFailure("failed to copy addon files: %w", err)
	}

	return nil
}

// Verify recursively counts the files now present at destination. A
// count of zero means the copy silently did nothing and is an error.
func (i *Installer) Verify(destination string) (int, error) {
	dest, err := domain.NewValidatedPath(destination)
	if err != nil {
		return 0, fmt.Errorf("invalid install destination: %w", err)
	}

	count := 0
	err = filepath.WalkDir(dest.String(), func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, domain.NewFilesystemFailure("failed to inspect %s: %w", dest, err)
	}

	if count == 0 {
		return 0, domain.NewFilesystemFailure("no files were installed at %s", dest)
	}

	i.log.Debugf("verified %d files at %s", count, dest)

	return count, nil
}

// RemoveArtifact deletes a temporary file or directory the run
// created. Artifacts are tool-owned, so no confirmation is asked. An
// absent path is a no-op.
func (i *Installer) RemoveArtifact(path string) error {
	target, err := domain.NewValidatedPath(path)
	if err != nil {
		return fmt.Errorf("invalid artifact path: %w", err)
	}

	if _, err := os.Stat(target.String()); os.IsNotExist(err) {
		return nil
	}

	i.log.Debugf("removing %s", target)

	if err := os.RemoveAll(target.String()); err != nil {
		return domain.NewFilesystemFailure("failed to remove %s: %w", target, err)
	}

	return nil
}

// copyTree recursively copies the contents of srcDir into destDir,
// overwriting files that already exist.
func copyTree(srcDir, destDir string) error {
	return filepath.WalkDir(srcDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		target := filepath.Join(destDir, rel)

		if entry.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

// copyFile copies one regular file, replacing target if present.
func copyFile(source, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
