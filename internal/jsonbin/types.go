/**
 * @description
 * Response envelope types for the JSONBin.io v3 API.
 */

package jsonbin

import (
	"github.com/paintcompare/backend/internal/models"
)

// BinMetadata describes a stored bin
type BinMetadata struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Private   bool   `json:"private"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// BinResponse is the envelope JSONBin wraps every record in
type BinResponse struct {
	Record   models.Snapshot `json:"record"`
	Metadata BinMetadata     `json:"metadata"`
}

// BackupInfo summarizes a backup bin for listings
type BackupInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
