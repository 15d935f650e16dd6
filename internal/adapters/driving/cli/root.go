package cli

import (
	"github.com/spf13/cobra"

	"github.com/keeperworks/itemvault/internal/core/ports/driven"
	"github.com/keeperworks/itemvault/internal/core/ports/driving"
	"github.com/keeperworks/itemvault/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services bundles everything the commands need. main wires the real
// adapters; tests inject memory-backed services directly.
type Services struct {
	Items    driving.ItemService
	Transfer driving.TransferService
	Config   driven.ConfigStore
}

// Options carries the root flag values into the initializer.
type Options struct {
	DataDir   string
	ConfigDir string
}

var (
	itemService     driving.ItemService
	transferService driving.TransferService
	configStore     driven.ConfigStore

	// initServices builds the services lazily, after flag parsing, so
	// --data-dir and --config-dir take effect.
	initServices func(Options) (*Services, error)
)

var (
	verboseFlag   bool
	dataDirFlag   string
	configDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "itemvault",
	Short: "A local item catalogue with JSON export and import",
	Long: `ItemVault keeps a catalogue of items in a local SQLite database.

Items carry a title, an optional description, and an optional image
reference. The full catalogue can be exported to a JSON file and
imported back, replacing the stored data wholesale.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)

		if itemService != nil || initServices == nil {
			return nil
		}

		svcs, err := initServices(Options{
			DataDir:   dataDirFlag,
			ConfigDir: configDirFlag,
		})
		if err != nil {
			return err
		}
		SetServices(svcs)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "Override the database directory")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Override the config directory")
}

// SetServices injects the services used by all commands.
func SetServices(svcs *Services) {
	if svcs == nil {
		itemService = nil
		transferService = nil
		configStore = nil
		return
	}
	itemService = svcs.Items
	transferService = svcs.Transfer
	configStore = svcs.Config
}

// SetInitializer registers the lazy service constructor invoked once
// the root flags have been parsed.
func SetInitializer(fn func(Options) (*Services, error)) {
	initServices = fn
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
