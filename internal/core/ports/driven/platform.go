package driven

// Platform reports the capabilities of the runtime target.
// Export/import are only meaningful on native targets with a real
// filesystem and share affordance; the browser (wasm) target has neither.
type Platform interface {
	// Target identifies the build target, e.g. "native" or "web".
	Target() string

	// CanTransfer reports whether export/import are available.
	// Checked by capability, not by waiting for an engine error.
	CanTransfer() bool
}

// Sharer hands a written file to the platform share/save affordance.
type Sharer interface {
	// Share presents the file at path to the user.
	Share(path string) error
}
