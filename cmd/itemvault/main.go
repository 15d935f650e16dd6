package main

import (
	"context"
	"fmt"
	"os"

	configfile "github.com/keeperworks/itemvault/internal/adapters/driven/config/file"
	"github.com/keeperworks/itemvault/internal/adapters/driven/platform"
	"github.com/keeperworks/itemvault/internal/adapters/driven/share"
	"github.com/keeperworks/itemvault/internal/adapters/driven/storage/sqlite"
	"github.com/keeperworks/itemvault/internal/adapters/driving/cli"
	"github.com/keeperworks/itemvault/internal/core/ports/driven"
	"github.com/keeperworks/itemvault/internal/core/services"
)

func main() {
	cli.SetInitializer(buildServices)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildServices wires the driven adapters into the core services.
// Flags win over config values, config values win over defaults.
func buildServices(opts cli.Options) (*cli.Services, error) {
	configStore, err := configfile.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = configStore.GetString(configfile.KeyDataDir)
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}
	if err := store.Open(context.Background()); err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	plat := platform.Detect()

	var sharer driven.Sharer
	if plat.CanTransfer() && configStore.GetBool(configfile.KeyShareOnExport) {
		sharer = share.NewOpener()
	}

	return &cli.Services{
		Items: services.NewItemService(store.Items()),
		Transfer: services.NewTransferService(
			store.Items(),
			plat,
			sharer,
			configStore.GetString(configfile.KeyExportDir),
		),
		Config: configStore,
	}, nil
}
