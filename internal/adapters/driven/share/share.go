// Package share hands exported files to the platform's share/save
// affordance. On desktop targets that is the OS default file handler.
package share

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/keeperworks/itemvault/internal/core/ports/driven"
	"github.com/keeperworks/itemvault/internal/logger"
)

// Ensure Opener implements the interface.
var _ driven.Sharer = (*Opener)(nil)

// Opener presents a file through the system default handler.
type Opener struct{}

// NewOpener creates a share adapter for the current OS.
func NewOpener() *Opener {
	return &Opener{}
}

// Share opens the file at path with the OS handler.
func (o *Opener) Share(path string) error {
	logger.Debug("sharing %s", path)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return fmt.Errorf("no share affordance on platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
