/**
 * @description
 * Backup API Handlers.
 * JSONBin snapshot backup, sync, restore and deletion.
 *
 * @dependencies
 * - github.com/gofiber/fiber/v2
 * - backend/internal/services
 * - backend/internal/jsonbin
 */

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/paintcompare/backend/internal/jsonbin"
	"github.com/paintcompare/backend/internal/logger"
	"github.com/paintcompare/backend/internal/services"
)

// BackupHandler handles JSONBin backup requests
type BackupHandler struct {
	Service *services.BackupService
}

// NewBackupHandler creates a new BackupHandler
func NewBackupHandler(service *services.BackupService) *BackupHandler {
	return &BackupHandler{Service: service}
}

// TestConnection reports whether the JSONBin credentials work
// GET /api/jsonbin/test
func (h *BackupHandler) TestConnection(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"connected": h.Service.TestConnection(c.Context())})
}

// CreateBackup pushes the current snapshot to a new bin
// POST /api/jsonbin/backup
func (h *BackupHandler) CreateBackup(c *fiber.Ctx) error {
	binID, err := h.Service.CreateBackup(c.Context())
	if err != nil {
		logger.Error("BackupHandler: failed to create backup: %v", err)
		return c.Status(backupStatus(err)).JSON(fiber.Map{"error": "Failed to create backup"})
	}
	return c.JSON(fiber.Map{"binId": binID, "message": "Backup created"})
}

// Sync updates the configured bin or creates a new one
// POST /api/jsonbin/sync
func (h *BackupHandler) Sync(c *fiber.Ctx) error {
	binID, isNew, err := h.Service.Sync(c.Context())
	if err != nil {
		logger.Error("BackupHandler: sync failed: %v", err)
		return c.Status(backupStatus(err)).JSON(fiber.Map{"error": "Sync failed"})
	}

	message := "Backup updated"
	if isNew {
		message = "New backup created"
	}
	return c.JSON(fiber.Map{"binId": binID, "isNew": isNew, "message": message})
}

// ListBackups returns the known backup bins
// GET /api/jsonbin/backups
func (h *BackupHandler) ListBackups(c *fiber.Ctx) error {
	return c.JSON(h.Service.ListBackups())
}

// Restore pulls a bin and upserts its records into the store
// POST /api/jsonbin/restore/:binId
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	if err := h.Service.Restore(c.Context(), c.Params("binId")); err != nil {
		logger.Error("BackupHandler: restore failed: %v", err)
		return c.Status(backupStatus(err)).JSON(fiber.Map{"error": "Failed to restore backup"})
	}
	return c.JSON(fiber.Map{"message": "Backup restored"})
}

// DeleteBackup removes a backup bin
// DELETE /api/jsonbin/backup/:binId
func (h *BackupHandler) DeleteBackup(c *fiber.Ctx) error {
	if err := h.Service.Delete(c.Context(), c.Params("binId")); err != nil {
		logger.Error("BackupHandler: delete failed: %v", err)
		return c.Status(backupStatus(err)).JSON(fiber.Map{"error": "Failed to delete backup"})
	}
	return c.JSON(fiber.Map{"message": "Backup deleted"})
}

// backupStatus maps a missing master key to 503 so misconfiguration is
// distinguishable from an upstream failure
func backupStatus(err error) int {
	if errors.Is(err, jsonbin.ErrNoMasterKey) {
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}
