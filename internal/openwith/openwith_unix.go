//go:build !windows && !darwin

package openwith

import "os/exec"

// openPlatform shells out to xdg-open, the freedesktop.org convention for
// "open this path with whatever the desktop environment has associated with
// it", honored by GNOME, KDE, and most other Linux/BSD desktops.
func openPlatform(path string) error {
	cmd := exec.Command("xdg-open", path)
	return cmd.Start()
}
