package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/keeperworks/itemvault/internal/adapters/driven/config/file"
)

func setupConfigCLI(t *testing.T) *configfile.ConfigStore {
	t.Helper()

	store, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	SetServices(&Services{Config: store})
	t.Cleanup(func() { SetServices(nil) })
	return store
}

func TestConfigShow_Defaults(t *testing.T) {
	store := setupConfigCLI(t)

	out, err := executeCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, store.Path())
	assert.Contains(t, out, "data.dir: (default)")
	assert.Contains(t, out, "export.dir: (default)")
}

func TestConfigSet(t *testing.T) {
	store := setupConfigCLI(t)

	out, err := executeCommand(t, "config", "set", "export.dir", "/tmp/exports")
	require.NoError(t, err)
	assert.Contains(t, out, "Set export.dir = /tmp/exports")
	assert.Equal(t, "/tmp/exports", store.GetString("export.dir"))

	out, err = executeCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "export.dir: /tmp/exports")
}

func TestConfigSet_Bool(t *testing.T) {
	store := setupConfigCLI(t)

	_, err := executeCommand(t, "config", "set", "export.share", "true")
	require.NoError(t, err)
	assert.True(t, store.GetBool("export.share"))
}

func TestConfig_NoStore(t *testing.T) {
	SetServices(nil)

	_, err := executeCommand(t, "config", "show")
	assert.EqualError(t, err, "config store not configured")
}
