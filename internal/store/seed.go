/**
 * @description
 * Sample catalog fixtures so the dashboard is non-empty on first run.
 * Mirrors the demo data set the dashboard ships with: three competitors,
 * five products, their current competitor prices, and a few months of
 * own/competitor price history.
 */

package store

import (
	"time"

	"github.com/paintcompare/backend/internal/models"
)

func strPtr(s string) *string {
	return &s
}

func daysAgo(n int) time.Time {
	return time.Now().Add(-time.Duration(n) * 24 * time.Hour)
}

func (s *MemStore) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	competitors := []models.Competitor{
		{ID: "comp1", Name: "Casa das Tintas", Location: strPtr("Centro"), Website: strPtr("www.casadastintas.com"), CreatedAt: now},
		{ID: "comp2", Name: "Tintas Express", Location: strPtr("Zona Sul"), Website: strPtr("www.tintasexpress.com"), CreatedAt: now},
		{ID: "comp3", Name: "MegaTintas", Location: strPtr("Zona Norte"), Website: strPtr("www.megatintas.com"), CreatedAt: now},
	}
	for _, c := range competitors {
		s.competitors[c.ID] = c
		s.competitorOrder = append(s.competitorOrder, c.ID)
	}

	products := []models.Product{
		{ID: "prod1", Name: "Látex Premium Branco", Brand: "Suvinil", Type: "Látex", Size: "18L", Color: "Branco Neve", Price: models.MustMoney("185.50"), CreatedAt: now, UpdatedAt: now},
		{ID: "prod2", Name: "Esmalte Sintético Azul", Brand: "Coral", Type: "Esmalte", Size: "3.6L", Color: "Azul Royal", Price: models.MustMoney("89.90"), CreatedAt: now, UpdatedAt: now},
		{ID: "prod3", Name: "Tinta Acrílica Amarela", Brand: "Sherwin Williams", Type: "Tinta Acrílica", Size: "18L", Color: "Amarelo Canário", Price: models.MustMoney("165.00"), CreatedAt: now, UpdatedAt: now},
		{ID: "prod4", Name: "Primer Branco", Brand: "Tintas Renner", Type: "Primer", Size: "18L", Color: "Branco", Price: models.MustMoney("98.50"), CreatedAt: now, UpdatedAt: now},
		{ID: "prod5", Name: "Verniz Incolor", Brand: "Eucatex", Type: "Verniz", Size: "3.6L", Color: "Incolor", Price: models.MustMoney("125.80"), CreatedAt: now, UpdatedAt: now},
	}
	for _, p := range products {
		s.products[p.ID] = p
		s.productOrder = append(s.productOrder, p.ID)
	}

	competitorPrices := []models.CompetitorPrice{
		{ID: "cp1", ProductID: "prod1", CompetitorID: "comp1", Price: models.MustMoney("179.90"), RecordedAt: now},
		{ID: "cp2", ProductID: "prod1", CompetitorID: "comp2", Price: models.MustMoney("175.50"), RecordedAt: now},
		{ID: "cp3", ProductID: "prod1", CompetitorID: "comp3", Price: models.MustMoney("182.00"), RecordedAt: now},
		{ID: "cp4", ProductID: "prod2", CompetitorID: "comp1", Price: models.MustMoney("92.50"), RecordedAt: now},
		{ID: "cp5", ProductID: "prod2", CompetitorID: "comp2", Price: models.MustMoney("88.00"), RecordedAt: now},
		{ID: "cp6", ProductID: "prod2", CompetitorID: "comp3", Price: models.MustMoney("95.90"), RecordedAt: now},
		{ID: "cp7", ProductID: "prod3", CompetitorID: "comp1", Price: models.MustMoney("158.90"), RecordedAt: now},
		{ID: "cp8", ProductID: "prod3", CompetitorID: "comp2", Price: models.MustMoney("162.50"), RecordedAt: now},
		{ID: "cp9", ProductID: "prod4", CompetitorID: "comp1", Price: models.MustMoney("105.00"), RecordedAt: now},
		{ID: "cp10", ProductID: "prod4", CompetitorID: "comp3", Price: models.MustMoney("102.90"), RecordedAt: now},
		{ID: "cp11", ProductID: "prod5", CompetitorID: "comp1", Price: models.MustMoney("129.90"), RecordedAt: now},
		{ID: "cp12", ProductID: "prod5", CompetitorID: "comp2", Price: models.MustMoney("118.50"), RecordedAt: now},
	}
	for _, cp := range competitorPrices {
		s.competitorPrices[cp.ID] = cp
		s.competitorPriceOrder = append(s.competitorPriceOrder, cp.ID)
	}

	priceHistory := []models.PriceHistory{
		// own price evolution, prod1
		{ID: "ph1", ProductID: "prod1", Price: models.MustMoney("165.00"), RecordedAt: daysAgo(150)},
		{ID: "ph2", ProductID: "prod1", Price: models.MustMoney("172.50"), RecordedAt: daysAgo(120)},
		{ID: "ph3", ProductID: "prod1", Price: models.MustMoney("168.90"), RecordedAt: daysAgo(90)},
		{ID: "ph4", ProductID: "prod1", Price: models.MustMoney("175.00"), RecordedAt: daysAgo(60)},
		{ID: "ph5", ProductID: "prod1", Price: models.MustMoney("179.90"), RecordedAt: daysAgo(30)},
		{ID: "ph6", ProductID: "prod1", Price: models.MustMoney("185.50"), RecordedAt: daysAgo(7)},
		// own price evolution, prod2
		{ID: "ph7", ProductID: "prod2", Price: models.MustMoney("95.00"), RecordedAt: daysAgo(100)},
		{ID: "ph8", ProductID: "prod2", Price: models.MustMoney("88.50"), RecordedAt: daysAgo(75)},
		{ID: "ph9", ProductID: "prod2", Price: models.MustMoney("92.00"), RecordedAt: daysAgo(50)},
		{ID: "ph10", ProductID: "prod2", Price: models.MustMoney("89.90"), RecordedAt: daysAgo(20)},
		// own price evolution, prod3
		{ID: "ph11", ProductID: "prod3", Price: models.MustMoney("145.00"), RecordedAt: daysAgo(90)},
		{ID: "ph12", ProductID: "prod3", Price: models.MustMoney("152.50"), RecordedAt: daysAgo(60)},
		{ID: "ph13", ProductID: "prod3", Price: models.MustMoney("158.90"), RecordedAt: daysAgo(35)},
		{ID: "ph14", ProductID: "prod3", Price: models.MustMoney("165.00"), RecordedAt: daysAgo(10)},
		// own price evolution, prod4
		{ID: "ph15", ProductID: "prod4", Price: models.MustMoney("108.00"), RecordedAt: daysAgo(45)},
		{ID: "ph16", ProductID: "prod4", Price: models.MustMoney("102.90"), RecordedAt: daysAgo(25)},
		{ID: "ph17", ProductID: "prod4", Price: models.MustMoney("98.50"), RecordedAt: daysAgo(5)},
		// Casa das Tintas tracking prod1
		{ID: "ph18", ProductID: "prod1", Price: models.MustMoney("170.00"), CompetitorID: strPtr("comp1"), RecordedAt: daysAgo(140)},
		{ID: "ph19", ProductID: "prod1", Price: models.MustMoney("175.90"), CompetitorID: strPtr("comp1"), RecordedAt: daysAgo(110)},
		{ID: "ph20", ProductID: "prod1", Price: models.MustMoney("179.90"), CompetitorID: strPtr("comp1"), RecordedAt: daysAgo(15)},
		// Tintas Express tracking prod1
		{ID: "ph21", ProductID: "prod1", Price: models.MustMoney("168.50"), CompetitorID: strPtr("comp2"), RecordedAt: daysAgo(130)},
		{ID: "ph22", ProductID: "prod1", Price: models.MustMoney("172.00"), CompetitorID: strPtr("comp2"), RecordedAt: daysAgo(80)},
		{ID: "ph23", ProductID: "prod1", Price: models.MustMoney("175.50"), CompetitorID: strPtr("comp2"), RecordedAt: daysAgo(40)},
		// Casa das Tintas tracking prod2
		{ID: "ph24", ProductID: "prod2", Price: models.MustMoney("93.00"), CompetitorID: strPtr("comp1"), RecordedAt: daysAgo(85)},
		{ID: "ph25", ProductID: "prod2", Price: models.MustMoney("92.50"), CompetitorID: strPtr("comp1"), RecordedAt: daysAgo(30)},
	}
	for _, ph := range priceHistory {
		s.priceHistory[ph.ID] = ph
		s.priceHistoryOrder = append(s.priceHistoryOrder, ph.ID)
	}
}
