//go:build darwin

package openwith

import "os/exec"

// openPlatform shells out to macOS's open(1), which launches the path's
// LaunchServices-registered default application.
func openPlatform(path string) error {
	cmd := exec.Command("open", path)
	return cmd.Start()
}
