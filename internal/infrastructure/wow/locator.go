package wow

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/quazii/quaziiui-installer/internal/core/domain"
	"github.com/quazii/quaziiui-installer/internal/infrastructure/logging"
)

// Locator resolves the World of Warcraft installation root, either
// from an explicit path or by probing well-known locations and the
// platform registry.
type Locator struct {
	log            *logging.Logger
	probeRoots     []string
	registryLookup func() (string, error)
}

// NewLocator creates a Locator with the platform probe list and
// registry lookup.
func NewLocator(log *logging.Logger) *Locator {
	return &Locator{
		log:            log,
		probeRoots:     defaultProbeRoots(),
		registryLookup: registryInstallPath,
	}
}

// Locate resolves the installation target. An explicit root is
// validated and used directly without probing but must exist. With no
// explicit root, the first probe candidate containing the retail
// marker wins, then the registry lookup is tried, and exhausting both
// is the distinct auto-detection failure.
func (l *Locator) Locate(explicitRoot string) (domain.InstallationTarget, error) {
	if explicitRoot != "" {
		return l.fromExplicit(explicitRoot)
	}

	for _, candidate := range l.probeRoots {
		l.log.Debugf("probing %s", candidate)
		if hasRetailMarker(candidate) {
			l.log.Infof("🔍 Found World of Warcraft at %s", candidate)
			return l.targetFor(candidate)
		}
	}

	if l.registryLookup != nil {
		if recorded, err := l.registryLookup(); err == nil && recorded != "" {
			root := normalizeRecordedRoot(recorded)
			l.log.Debugf("registry records install path %s", recorded)
			if hasRetailMarker(root) {
				l.log.Infof("🔍 Found World of Warcraft via registry at %s", root)
				return l.targetFor(root)
			}
		}
	}

	return domain.InstallationTarget{}, domain.NewValidationFailure(
		"could not locate a World of Warcraft installation automatically; supply the path explicitly with --path")
}

func (l *Locator) fromExplicit(root string) (domain.InstallationTarget, error) {
	validated, err := domain.NewValidatedPath(root)
	if err != nil {
		return domain.InstallationTarget{}, fmt.Errorf("invalid target root: %w", err)
	}

	info, err := os.Stat(validated.String())
	if err != nil {
		return domain.InstallationTarget{}, domain.NewValidationFailure("target root %s does not exist", validated)
	}
	if !info.IsDir() {
		return domain.InstallationTarget{}, domain.NewValidationFailure("target root %s is not a directory", validated)
	}

	return domain.NewInstallationTarget(validated)
}

func (l *Locator) targetFor(root string) (domain.InstallationTarget, error) {
	validated, err := domain.NewValidatedPath(root)
	if err != nil {
		return domain.InstallationTarget{}, err
	}
	return domain.NewInstallationTarget(validated)
}

func hasRetailMarker(root string) bool {
	info, err := os.Stat(filepath.Join(root, domain.RetailMarker))
	return err == nil && info.IsDir()
}

// normalizeRecordedRoot strips the retail segment some installers
// record, returning the root above it.
func normalizeRecordedRoot(recorded string) string {
	cleaned := filepath.Clean(recorded)
	if filepath.Base(cleaned) == domain.RetailMarker {
		return filepath.Dir(cleaned)
	}
	return cleaned
}
