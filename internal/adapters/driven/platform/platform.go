// Package platform detects the capabilities of the runtime target.
//
// A js/wasm build is the browser target: no real filesystem and no
// share affordance, so export/import are gated off by capability check
// rather than by waiting for an engine error.
package platform

import (
	"runtime"

	"github.com/keeperworks/itemvault/internal/core/ports/driven"
)

// Target names.
const (
	TargetNative = "native"
	TargetWeb    = "web"
)

// Ensure Platform implements the interface.
var _ driven.Platform = (*Platform)(nil)

// Platform is the detected runtime target.
type Platform struct {
	target string
}

// Detect inspects the build target.
func Detect() *Platform {
	return ForGOOS(runtime.GOOS)
}

// ForGOOS maps a GOOS value to a target. Exposed for tests.
func ForGOOS(goos string) *Platform {
	if goos == "js" || goos == "wasip1" {
		return &Platform{target: TargetWeb}
	}
	return &Platform{target: TargetNative}
}

// Web returns the browser target regardless of the build. Used by
// tests exercising the capability gate.
func Web() *Platform {
	return &Platform{target: TargetWeb}
}

// Native returns the native target regardless of the build.
func Native() *Platform {
	return &Platform{target: TargetNative}
}

// Target identifies the build target.
func (p *Platform) Target() string {
	return p.target
}

// CanTransfer reports whether export/import are available.
func (p *Platform) CanTransfer() bool {
	return p.target == TargetNative
}
