//go:build windows

package openwith

import "os/exec"

// openPlatform shells out to rundll32's FileProtocolHandler entry point,
// the documented way to invoke the shell's default file association
// without going through cmd.exe's "start" builtin.
func openPlatform(path string) error {
	cmd := exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	return cmd.Start()
}
