package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/paintcompare/backend/internal/jsonbin"
	"github.com/paintcompare/backend/internal/models"
)

// fakeJSONBin mimics the JSONBin.io v3 endpoints the backup service hits.
func fakeJSONBin(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()

	var requests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
		if r.Header.Get("X-Master-Key") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/b":
			w.Write([]byte(`{"record":{},"metadata":{"id":"bin-new","private":true}}`))
		case r.Method == http.MethodGet && r.URL.Path == "/b/bin-restore":
			snap := models.Snapshot{
				Products: []models.Product{{
					ID: "prod-restored", Name: "Tinta Restaurada", Brand: "Coral",
					Type: "Látex", Size: "18L", Color: "Branco",
					Price: models.MustMoney("140.00"),
				}},
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"record":   snap,
				"metadata": map[string]interface{}{"id": "bin-restore"},
			})
		default:
			w.Write([]byte(`{"record":{},"metadata":{"id":"bin-123"}}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestBackupEndpointsWithoutMasterKey(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/jsonbin/test", nil)
	var status struct {
		Connected bool `json:"connected"`
	}
	decodeBody(t, resp, &status)
	if status.Connected {
		t.Fatal("expected connected=false without a master key")
	}

	resp = doJSON(t, app, http.MethodPost, "/api/jsonbin/backup", nil)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 for a missing key", resp.StatusCode)
	}
}

func TestSyncUpdatesConfiguredBin(t *testing.T) {
	srv, requests := fakeJSONBin(t)
	app, _ := newTestAppWithJSONBin(t, srv.URL, "test-key", "bin-123")

	resp := doJSON(t, app, http.MethodPost, "/api/jsonbin/sync", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload struct {
		BinID   string `json:"binId"`
		IsNew   bool   `json:"isNew"`
		Message string `json:"message"`
	}
	decodeBody(t, resp, &payload)
	if payload.BinID != "bin-123" || payload.IsNew {
		t.Fatalf("payload = %+v, want existing bin-123", payload)
	}
	if len(*requests) != 1 || (*requests)[0] != "PUT /b/bin-123" {
		t.Fatalf("requests = %v, want a single PUT /b/bin-123", *requests)
	}
}

func TestSyncCreatesBinWhenNoneConfigured(t *testing.T) {
	srv, requests := fakeJSONBin(t)
	app, _ := newTestAppWithJSONBin(t, srv.URL, "test-key", "")

	resp := doJSON(t, app, http.MethodPost, "/api/jsonbin/sync", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var payload struct {
		BinID string `json:"binId"`
		IsNew bool   `json:"isNew"`
	}
	decodeBody(t, resp, &payload)
	if payload.BinID != "bin-new" || !payload.IsNew {
		t.Fatalf("payload = %+v, want a fresh bin-new", payload)
	}
	if len(*requests) != 1 || (*requests)[0] != "POST /b" {
		t.Fatalf("requests = %v, want a single POST /b", *requests)
	}
}

func TestRestoreUpsertsSnapshotIntoStore(t *testing.T) {
	srv, _ := fakeJSONBin(t)
	app, st := newTestAppWithJSONBin(t, srv.URL, "test-key", "")

	resp := doJSON(t, app, http.MethodPost, "/api/jsonbin/restore/bin-restore", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	restored, ok := st.Product("prod-restored")
	if !ok {
		t.Fatal("restored product missing from the store")
	}
	if !restored.Price.Equal(models.MustMoney("140.00").Decimal) {
		t.Fatalf("price = %s, want 140.00", restored.Price.StringFixed(2))
	}
	// restore upserts: the seeded catalog survives alongside the new row
	if _, ok := st.Product("prod1"); !ok {
		t.Fatal("seeded product lost during restore")
	}
}

func TestListBackupsIsEmpty(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/jsonbin/backups", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var backups []jsonbin.BackupInfo
	decodeBody(t, resp, &backups)
	if len(backups) != 0 {
		t.Fatalf("expected an empty list, got %d", len(backups))
	}
}
