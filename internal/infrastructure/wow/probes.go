package wow

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/disk"
)

// defaultProbeRoots builds the ordered candidate list: the platform's
// fixed Program-Files-style locations first, then drive-root guesses
// derived from the mounted volumes.
func defaultProbeRoots() []string {
	var roots []string

	switch runtime.GOOS {
	case "windows":
		roots = append(roots,
			`C:\Program Files (x86)\World of Warcraft`,
			`C:\Program Files\World of Warcraft`,
		)
	case "darwin":
		roots = append(roots, "/Applications/World of Warcraft")
	}

	partitions, err := disk.Partitions(false)
	if err != nil {
		return roots
	}

	for _, partition := range partitions {
		roots = append(roots, volumeGuesses(partition.Mountpoint)...)
	}

	return roots
}

// volumeGuesses returns the drive-root candidates for one mounted
// volume. The separator suffix keeps drive letters absolute on
// Windows ("C:" alone would join as a drive-relative path).
func volumeGuesses(mountpoint string) []string {
	root := mountpoint
	if !strings.HasSuffix(root, string(os.PathSeparator)) {
		root += string(os.PathSeparator)
	}

	return []string{
		filepath.Join(root, "World of Warcraft"),
		filepath.Join(root, "Games", "World of Warcraft"),
	}
}
