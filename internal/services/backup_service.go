/**
 * @description
 * Backup Service for JSONBin snapshot sync.
 * Pushes whole-store snapshots to JSONBin.io and restores them back into the
 * record store.
 *
 * @dependencies
 * - backend/internal/jsonbin
 * - backend/internal/store
 *
 * @notes
 * - Sync updates the configured bin (JSONBIN_BIN_ID) in place when one is
 *   set; otherwise it creates a fresh bin and reports isNew.
 * - ListBackups returns an empty list: the free-tier master key cannot
 *   enumerate bins, a limitation carried over from the hosted API.
 */

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/paintcompare/backend/internal/jsonbin"
	"github.com/paintcompare/backend/internal/logger"
	"github.com/paintcompare/backend/internal/models"
	"github.com/paintcompare/backend/internal/store"
)

// BackupService handles snapshot backup and restore against JSONBin
type BackupService struct {
	Store     *store.MemStore
	Client    *jsonbin.Client
	Analytics *AnalyticsService
	BinID     string
}

// NewBackupService creates a new BackupService
func NewBackupService(st *store.MemStore, client *jsonbin.Client, analytics *AnalyticsService, binID string) *BackupService {
	return &BackupService{
		Store:     st,
		Client:    client,
		Analytics: analytics,
		BinID:     binID,
	}
}

// TestConnection verifies JSONBin credentials
func (s *BackupService) TestConnection(ctx context.Context) bool {
	return s.Client.TestConnection(ctx)
}

// CreateBackup pushes the current snapshot to a new bin and returns its id
func (s *BackupService) CreateBackup(ctx context.Context) (string, error) {
	name := fmt.Sprintf("PaintCompare-Backup-%s", time.Now().Format("2006-01-02"))
	binID, err := s.Client.CreateBin(ctx, name, s.snapshot())
	if err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}
	return binID, nil
}

// Sync updates the configured bin, or creates a new one when none is configured
func (s *BackupService) Sync(ctx context.Context) (string, bool, error) {
	if s.BinID != "" {
		if err := s.Client.UpdateBin(ctx, s.BinID, s.snapshot()); err != nil {
			return "", false, fmt.Errorf("failed to update backup %s: %w", s.BinID, err)
		}
		return s.BinID, false, nil
	}

	binID, err := s.CreateBackup(ctx)
	if err != nil {
		return "", false, err
	}
	return binID, true, nil
}

// Restore pulls a bin and upserts its records into the store
func (s *BackupService) Restore(ctx context.Context, binID string) error {
	snap, err := s.Client.GetBin(ctx, binID)
	if err != nil {
		return fmt.Errorf("failed to fetch backup %s: %w", binID, err)
	}

	s.Store.RestoreSnapshot(snap)
	s.Analytics.InvalidateCache(ctx)

	logger.Info("BackupService: restored %d products, %d competitors, %d prices, %d history entries from %s",
		len(snap.Products), len(snap.Competitors), len(snap.CompetitorPrices), len(snap.PriceHistory), binID)
	return nil
}

// Delete removes a backup bin
func (s *BackupService) Delete(ctx context.Context, binID string) error {
	if err := s.Client.DeleteBin(ctx, binID); err != nil {
		return fmt.Errorf("failed to delete backup %s: %w", binID, err)
	}
	return nil
}

// ListBackups returns the known backups. Always empty for now: the free-tier
// master key cannot enumerate bins.
func (s *BackupService) ListBackups() []jsonbin.BackupInfo {
	logger.Info("BackupService: bin listing unavailable with a master key; returning empty list")
	return []jsonbin.BackupInfo{}
}

func (s *BackupService) snapshot() models.Snapshot {
	snap := s.Store.Snapshot()
	snap.LastSync = time.Now()
	return snap
}
