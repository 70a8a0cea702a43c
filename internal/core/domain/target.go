package domain

import "path/filepath"

// RetailMarker is the subdirectory whose presence confirms a
// candidate directory is a genuine retail installation root and not a
// same-named folder.
const RetailMarker = "_retail_"

// InstallationTarget is the resolved World of Warcraft installation,
// created once per run from explicit input or probing.
type InstallationTarget struct {
	Root     ValidatedPath
	AddonDir ValidatedPath
}

// NewInstallationTarget derives the addon destination
// (root/_retail_/Interface/AddOns/QuaziiUI) from a validated
// installation root.
func NewInstallationTarget(root ValidatedPath) (InstallationTarget, error) {
	addonDir, err := NewValidatedPath(filepath.Join(root.String(), RetailMarker, "Interface", "AddOns", AddonFolderName))
	if err != nil {
		return InstallationTarget{}, err
	}

	return InstallationTarget{Root: root, AddonDir: addonDir}, nil
}
