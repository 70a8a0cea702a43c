//go:build windows

package wow

import "golang.org/x/sys/windows/registry"

const wowRegistryKey = `SOFTWARE\WOW6432Node\Blizzard Entertainment\World of Warcraft`

// registryInstallPath reads the installer-recorded path from the
// machine registry.
func registryInstallPath() (string, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, wowRegistryKey, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer key.Close()

	value, _, err := key.GetStringValue("InstallPath")
	if err != nil {
		return "", err
	}

	return value, nil
}
