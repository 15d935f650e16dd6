package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/keeperworks/itemvault/internal/core/domain"
	"github.com/keeperworks/itemvault/internal/core/ports/driven"
	"github.com/keeperworks/itemvault/internal/core/ports/driving"
	"github.com/keeperworks/itemvault/internal/logger"
)

// Ensure TransferService implements the interface.
var _ driving.TransferService = (*TransferService)(nil)

// exportPrefix is the fixed stem of export file names.
const exportPrefix = "sqlite-export-"

// TransferService exports and imports the full item database.
// Both operations check the platform capability before any I/O.
type TransferService struct {
	items     driven.ItemStore
	platform  driven.Platform
	sharer    driven.Sharer
	exportDir string
}

// NewTransferService creates a new transfer service.
// If exportDir is empty, exports land in the user cache directory
// under itemvault/exports. The sharer may be nil; export then only
// writes the file and returns its path.
func NewTransferService(
	items driven.ItemStore,
	plat driven.Platform,
	sharer driven.Sharer,
	exportDir string,
) *TransferService {
	return &TransferService{
		items:     items,
		platform:  plat,
		sharer:    sharer,
		exportDir: exportDir,
	}
}

// Export serializes the database to a timestamped JSON file, hands it
// to the share affordance, and returns the file path.
func (s *TransferService) Export(ctx context.Context) (string, error) {
	if err := s.checkPlatform(); err != nil {
		return "", err
	}

	snap, err := s.items.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	dir, err := s.resolveExportDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, exportFileName(snap.ExportedAt))
	if err := writeEnvelope(path, snap); err != nil {
		return "", err
	}
	logger.Info("exported %d items to %s", len(snap.Items), path)

	if s.sharer != nil {
		if err := s.sharer.Share(path); err != nil {
			return "", fmt.Errorf("sharing export: %w", err)
		}
	}

	return path, nil
}

// Import reads an export file and replaces all stored data with its
// contents. A safety export of the current data is written first, and
// the connection is cycled afterwards for a clean state reload.
func (s *TransferService) Import(ctx context.Context, path string) error {
	if err := s.checkPlatform(); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	snap, err := decodeEnvelope(data)
	if err != nil {
		return err
	}

	if err := s.backupBeforeImport(ctx); err != nil {
		return err
	}

	if err := s.items.Restore(ctx, snap); err != nil {
		return err
	}

	if reopener, ok := s.items.(driven.Reopener); ok {
		if err := reopener.Reopen(ctx); err != nil {
			return fmt.Errorf("reopening store after import: %w", err)
		}
	}

	logger.Info("imported %d items from %s", len(snap.Items), path)
	return nil
}

// ImportBlob normalizes an in-memory payload to a temporary file and
// delegates to Import.
func (s *TransferService) ImportBlob(ctx context.Context, data []byte) error {
	if err := s.checkPlatform(); err != nil {
		return err
	}

	tmp := filepath.Join(os.TempDir(), "itemvault-import-"+uuid.NewString()+".json")
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing temporary import file: %w", err)
	}
	defer os.Remove(tmp) //nolint:errcheck

	return s.Import(ctx, tmp)
}

// checkPlatform gates transfer operations by capability, not by
// waiting for an engine error.
func (s *TransferService) checkPlatform() error {
	if s.platform == nil || !s.platform.CanTransfer() {
		target := "unknown"
		if s.platform != nil {
			target = s.platform.Target()
		}
		return fmt.Errorf("%w: export/import unavailable on %s target", domain.ErrUnsupportedPlatform, target)
	}
	return nil
}

// backupBeforeImport writes a safety export of the current data so a
// bad import never leaves the store worse off than before. Skipped
// when there is nothing to lose.
func (s *TransferService) backupBeforeImport(ctx context.Context) error {
	current, err := s.items.Snapshot(ctx)
	if err != nil {
		return err
	}
	if len(current.Items) == 0 {
		return nil
	}

	dir, err := s.resolveExportDir()
	if err != nil {
		return err
	}

	path := filepath.Join(dir, "preimport-backup-"+uuid.NewString()+".json")
	if err := writeEnvelope(path, current); err != nil {
		return err
	}
	logger.Info("wrote pre-import backup to %s", path)
	return nil
}

// resolveExportDir returns the export directory, creating it if needed.
func (s *TransferService) resolveExportDir() (string, error) {
	dir := s.exportDir
	if dir == "" {
		cache, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("getting cache directory: %w", err)
		}
		dir = filepath.Join(cache, "itemvault", "exports")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	return dir, nil
}

// exportFileName derives the export file name from the snapshot time:
// the RFC 3339 timestamp with colons and dots replaced by dashes.
func exportFileName(t time.Time) string {
	stamp := strings.NewReplacer(":", "-", ".", "-").Replace(t.UTC().Format(time.RFC3339))
	return exportPrefix + stamp + ".json"
}

// writeEnvelope marshals a snapshot into the export envelope.
func writeEnvelope(path string, snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(domain.Envelope{Export: snap}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling export: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

// decodeEnvelope parses and shape-checks an import payload.
func decodeEnvelope(data []byte) (*domain.Snapshot, error) {
	var env domain.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedImport, err)
	}
	if env.Export == nil {
		return nil, fmt.Errorf("%w: missing top-level export object", domain.ErrMalformedImport)
	}
	return env.Export, nil
}
