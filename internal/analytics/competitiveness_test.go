package analytics

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/paintcompare/backend/internal/models"
	"github.com/shopspring/decimal"
)

func testProduct(id, price string) models.Product {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return models.Product{
		ID:        id,
		Name:      "Látex Premium Branco",
		Brand:     "Suvinil",
		Type:      "Látex",
		Size:      "18L",
		Color:     "Branco Neve",
		Price:     models.MustMoney(price),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testCompetitor(id, name string) models.Competitor {
	return models.Competitor{ID: id, Name: name, CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func testPrice(id, productID, competitorID, price string) models.CompetitorPrice {
	return models.CompetitorPrice{
		ID:           id,
		ProductID:    productID,
		CompetitorID: competitorID,
		Price:        models.MustMoney(price),
		RecordedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCompareProductDerivesLowestAndPercentage(t *testing.T) {
	p := testProduct("p1", "100.00")
	competitors := []models.Competitor{testCompetitor("c1", "Casa das Tintas"), testCompetitor("c2", "Tintas Express")}
	prices := []models.CompetitorPrice{
		testPrice("cp1", "p1", "c1", "90.00"),
		testPrice("cp2", "p1", "c2", "95.00"),
	}

	view, dropped := CompareProduct(p, prices, competitors)
	if dropped != 0 {
		t.Fatalf("expected no dropped rows, got %d", dropped)
	}
	if len(view.CompetitorPrices) != 2 {
		t.Fatalf("expected 2 joined rows, got %d", len(view.CompetitorPrices))
	}
	if view.LowestCompetitorPrice == nil || !view.LowestCompetitorPrice.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("expected lowest 90, got %v", view.LowestCompetitorPrice)
	}
	if view.CompetitivenessPercentage == nil || !view.CompetitivenessPercentage.Equal(decimal.RequireFromString("-11.11")) {
		t.Fatalf("expected percentage -11.11, got %v", view.CompetitivenessPercentage)
	}
}

func TestCompareProductExactTieIsZero(t *testing.T) {
	p := testProduct("p1", "90.00")
	competitors := []models.Competitor{testCompetitor("c1", "Casa das Tintas")}
	prices := []models.CompetitorPrice{testPrice("cp1", "p1", "c1", "90.00")}

	view, _ := CompareProduct(p, prices, competitors)
	if view.CompetitivenessPercentage == nil {
		t.Fatal("expected a defined percentage for a tied price")
	}
	if !view.CompetitivenessPercentage.IsZero() {
		t.Fatalf("expected 0 for a tie, got %s", view.CompetitivenessPercentage.String())
	}
}

func TestCompareProductNoCompetitorPrices(t *testing.T) {
	p := testProduct("p1", "100.00")

	view, dropped := CompareProduct(p, nil, []models.Competitor{testCompetitor("c1", "Casa das Tintas")})
	if dropped != 0 {
		t.Fatalf("expected no dropped rows, got %d", dropped)
	}
	if len(view.CompetitorPrices) != 0 {
		t.Fatalf("expected no joined rows, got %d", len(view.CompetitorPrices))
	}
	// "no data" must stay distinguishable from "exactly tied"
	if view.LowestCompetitorPrice != nil {
		t.Fatalf("expected nil lowest price, got %s", view.LowestCompetitorPrice.String())
	}
	if view.CompetitivenessPercentage != nil {
		t.Fatalf("expected nil percentage, got %s", view.CompetitivenessPercentage.String())
	}
}

func TestCompareProductDropsUnresolvedCompetitors(t *testing.T) {
	p := testProduct("p1", "100.00")
	competitors := []models.Competitor{testCompetitor("c1", "Casa das Tintas")}
	prices := []models.CompetitorPrice{
		testPrice("cp1", "p1", "c1", "95.00"),
		testPrice("cp2", "p1", "ghost", "10.00"),
	}

	view, dropped := CompareProduct(p, prices, competitors)
	if dropped != 1 {
		t.Fatalf("expected 1 dropped row, got %d", dropped)
	}
	if len(view.CompetitorPrices) != 1 {
		t.Fatalf("expected 1 joined row, got %d", len(view.CompetitorPrices))
	}
	// The ghost's 10.00 must not leak into the minimum
	if !view.LowestCompetitorPrice.Equal(decimal.NewFromInt(95)) {
		t.Fatalf("expected lowest 95, got %s", view.LowestCompetitorPrice.String())
	}
}

func TestCompareProductOnlyUnresolvedRows(t *testing.T) {
	p := testProduct("p1", "100.00")
	prices := []models.CompetitorPrice{testPrice("cp1", "p1", "ghost", "90.00")}

	view, dropped := CompareProduct(p, prices, nil)
	if dropped != 1 {
		t.Fatalf("expected 1 dropped row, got %d", dropped)
	}
	if view.LowestCompetitorPrice != nil || view.CompetitivenessPercentage != nil {
		t.Fatal("expected derived fields absent when every row is unresolved")
	}
}

func TestCompareProductIgnoresOtherProducts(t *testing.T) {
	p := testProduct("p1", "100.00")
	competitors := []models.Competitor{testCompetitor("c1", "Casa das Tintas")}
	prices := []models.CompetitorPrice{
		testPrice("cp1", "p2", "c1", "10.00"),
		testPrice("cp2", "p1", "c1", "95.00"),
	}

	view, _ := CompareProduct(p, prices, competitors)
	if len(view.CompetitorPrices) != 1 {
		t.Fatalf("expected 1 joined row, got %d", len(view.CompetitorPrices))
	}
	if !view.LowestCompetitorPrice.Equal(decimal.NewFromInt(95)) {
		t.Fatalf("expected lowest 95, got %s", view.LowestCompetitorPrice.String())
	}
}

func TestCompareCatalogIsIdempotent(t *testing.T) {
	products := []models.Product{testProduct("p1", "100.00"), testProduct("p2", "50.00")}
	competitors := []models.Competitor{testCompetitor("c1", "Casa das Tintas")}
	prices := []models.CompetitorPrice{testPrice("cp1", "p1", "c1", "90.00")}

	first, _ := CompareCatalog(products, prices, competitors)
	second, _ := CompareCatalog(products, prices, competitors)

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first run: %v", err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second run: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("expected identical output for an unchanged snapshot")
	}
}
