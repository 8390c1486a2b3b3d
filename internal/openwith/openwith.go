// Package openwith hands a path to the host's default application for that
// file type, the way a desktop file manager's "Open" action does.
package openwith

import "fmt"

// Open launches the platform's default handler for path. It returns once
// the launcher process has been started; it does not wait for the handler
// application to exit.
func Open(path string) error {
	if path == "" {
		return fmt.Errorf("openwith: empty path")
	}
	return openPlatform(path)
}
