package cli

import (
	"bytes"
	"testing"

	"github.com/keeperworks/itemvault/internal/adapters/driven/platform"
	"github.com/keeperworks/itemvault/internal/adapters/driven/storage/memory"
	"github.com/keeperworks/itemvault/internal/core/services"
)

// setupCLI wires memory-backed services into the command tree and
// returns the store for direct inspection.
func setupCLI(t *testing.T) *memory.ItemStore {
	t.Helper()

	store := memory.NewItemStore()
	SetServices(&Services{
		Items:    services.NewItemService(store),
		Transfer: services.NewTransferService(store, platform.Native(), nil, t.TempDir()),
	})
	t.Cleanup(func() { SetServices(nil) })

	// Field flags persist between executions; start each test clean.
	itemTitle, itemDescription, itemImageURL = "", "", ""

	return store
}

// executeCommand runs the root command with args and captures output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
