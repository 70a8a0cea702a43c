//go:build !windows

package wow

import "errors"

// registryInstallPath has no equivalent configuration store off
// Windows.
func registryInstallPath() (string, error) {
	return "", errors.New("registry lookup not supported on this platform")
}
