package handlers_test

import (
	"net/http"
	"testing"

	"github.com/paintcompare/backend/internal/models"
)

func TestCreateCompetitorPriceRejectsUnknownReferences(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/competitor-prices", map[string]interface{}{
		"productId": "nope", "competitorId": "comp1", "price": "99.90",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if msg := errorMessage(t, resp); msg != "Unknown product id" {
		t.Fatalf("error = %q", msg)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/competitor-prices", map[string]interface{}{
		"productId": "prod1", "competitorId": "nope", "price": "99.90",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if msg := errorMessage(t, resp); msg != "Unknown competitor id" {
		t.Fatalf("error = %q", msg)
	}
}

func TestCreateCompetitorPriceAndFilter(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/competitor-prices", map[string]interface{}{
		"productId": "prod3", "competitorId": "comp3", "price": "149.90",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var created models.CompetitorPrice
	decodeBody(t, resp, &created)
	if created.ID == "" || created.RecordedAt.IsZero() {
		t.Fatalf("expected generated id and timestamp, got %+v", created)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/competitor-prices?productId=prod3", nil)
	var prices []models.CompetitorPrice
	decodeBody(t, resp, &prices)
	// two seeded rows plus the one just created
	if len(prices) != 3 {
		t.Fatalf("len = %d, want 3", len(prices))
	}
}

func TestUpdateCompetitorPriceNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPut, "/api/competitor-prices/nope", map[string]interface{}{
		"price": "10.00",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestPriceHistoryLifecycle(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/price-history/prod1", nil)
	var entries []models.PriceHistory
	decodeBody(t, resp, &entries)
	seeded := len(entries)
	if seeded == 0 {
		t.Fatal("expected seeded history for prod1")
	}

	resp = doJSON(t, app, http.MethodPost, "/api/price-history", map[string]interface{}{
		"productId": "prod1", "price": "188.00",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var created models.PriceHistory
	decodeBody(t, resp, &created)
	if created.CompetitorID != nil {
		t.Fatalf("own-price entry must carry no competitor id, got %v", *created.CompetitorID)
	}

	resp = doJSON(t, app, http.MethodPut, "/api/price-history/"+created.ID, map[string]interface{}{
		"price": "189.50",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var updated models.PriceHistory
	decodeBody(t, resp, &updated)
	if !updated.Price.Equal(models.MustMoney("189.50").Decimal) {
		t.Fatalf("price = %s, want 189.50", updated.Price.StringFixed(2))
	}

	resp = doJSON(t, app, http.MethodDelete, "/api/price-history/"+created.ID, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/price-history/prod1", nil)
	decodeBody(t, resp, &entries)
	if len(entries) != seeded {
		t.Fatalf("len = %d, want %d after delete", len(entries), seeded)
	}
}

func TestCreatePriceHistoryValidatesCompetitor(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/price-history", map[string]interface{}{
		"productId": "prod1", "competitorId": "nope", "price": "100.00",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if msg := errorMessage(t, resp); msg != "Unknown competitor id" {
		t.Fatalf("error = %q", msg)
	}
}
