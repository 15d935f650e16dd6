package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keeperworks/itemvault/internal/core/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalogue to a JSON file",
	Long: `Writes the full catalogue to a timestamped JSON file and hands it
to the operating system's share affordance.`,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a catalogue export file",
	Long: `Replaces the entire catalogue with the contents of an export file.

A safety export of the current data is written first, so a bad import
can be undone by importing the backup.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if transferService == nil {
		return errors.New("transfer service not configured")
	}

	ctx := context.Background()

	path, err := transferService.Export(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedPlatform) {
			return fmt.Errorf("export is not available on this platform: %w", err)
		}
		return fmt.Errorf("failed to export: %w", err)
	}

	cmd.Printf("Exported catalogue to %s\n", path)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	if transferService == nil {
		return errors.New("transfer service not configured")
	}

	ctx := context.Background()

	if err := transferService.Import(ctx, args[0]); err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedPlatform):
			return fmt.Errorf("import is not available on this platform: %w", err)
		case errors.Is(err, domain.ErrMalformedImport):
			return fmt.Errorf("%s is not a valid export file: %w", args[0], err)
		default:
			return fmt.Errorf("failed to import: %w", err)
		}
	}

	cmd.Printf("Imported catalogue from %s\n", args[0])
	return nil
}
