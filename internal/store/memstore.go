/**
 * @description
 * In-memory record store for the four dashboard collections.
 * One RWMutex serializes writes; list/get reads never observe a partially
 * applied mutation. List order is insertion order.
 *
 * @dependencies
 * - github.com/google/uuid: record ids
 * - internal/models
 *
 * @notes
 * - The store accepts whatever shape it is given; required-field and
 *   reference validation happens at the API boundary.
 * - Deleting a product cascades to its competitor prices and price history.
 *   Deleting a competitor cascades to its competitor prices; its history rows
 *   keep the competitor id for audit.
 */

package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/paintcompare/backend/internal/models"
)

// MemStore holds all records in memory
type MemStore struct {
	mu sync.RWMutex

	products         map[string]models.Product
	competitors      map[string]models.Competitor
	competitorPrices map[string]models.CompetitorPrice
	priceHistory     map[string]models.PriceHistory

	// insertion-order indexes, one per collection
	productOrder         []string
	competitorOrder      []string
	competitorPriceOrder []string
	priceHistoryOrder    []string
}

// New creates an empty MemStore
func New() *MemStore {
	return &MemStore{
		products:         make(map[string]models.Product),
		competitors:      make(map[string]models.Competitor),
		competitorPrices: make(map[string]models.CompetitorPrice),
		priceHistory:     make(map[string]models.PriceHistory),
	}
}

// NewSeeded creates a MemStore preloaded with the sample catalog so the
// dashboard is non-empty on first run
func NewSeeded() *MemStore {
	s := New()
	s.seed()
	return s
}

// ---- Products ----

// Products returns all products in insertion order
func (s *MemStore) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		out = append(out, s.products[id])
	}
	return out
}

// Product looks up one product by id
func (s *MemStore) Product(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	return p, ok
}

// CreateProduct assigns a fresh id and timestamps, stores and returns the record
func (s *MemStore) CreateProduct(in models.InsertProduct) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	p := models.Product{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Brand:     in.Brand,
		Type:      in.Type,
		Size:      in.Size,
		Color:     in.Color,
		Price:     in.Price,
		ImageURL:  in.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.products[p.ID] = p
	s.productOrder = append(s.productOrder, p.ID)
	return p
}

// UpdateProduct merges the patch onto the existing record and refreshes UpdatedAt
func (s *MemStore) UpdateProduct(id string, patch models.ProductPatch) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, false
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Size != nil {
		p.Size = *patch.Size
	}
	if patch.Color != nil {
		p.Color = *patch.Color
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		p.ImageURL = patch.ImageURL
	}
	p.UpdatedAt = time.Now()
	s.products[id] = p
	return p, true
}

// DeleteProduct removes the product and cascades to its dependent rows
func (s *MemStore) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	s.productOrder = removeID(s.productOrder, id)

	for _, cpID := range s.competitorPriceOrder {
		if cp, ok := s.competitorPrices[cpID]; ok && cp.ProductID == id {
			delete(s.competitorPrices, cpID)
		}
	}
	s.competitorPriceOrder = compactOrder(s.competitorPriceOrder, func(oid string) bool {
		_, ok := s.competitorPrices[oid]
		return ok
	})

	for _, phID := range s.priceHistoryOrder {
		if ph, ok := s.priceHistory[phID]; ok && ph.ProductID == id {
			delete(s.priceHistory, phID)
		}
	}
	s.priceHistoryOrder = compactOrder(s.priceHistoryOrder, func(oid string) bool {
		_, ok := s.priceHistory[oid]
		return ok
	})

	return true
}

// ---- Competitors ----

// Competitors returns all competitors in insertion order
func (s *MemStore) Competitors() []models.Competitor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Competitor, 0, len(s.competitorOrder))
	for _, id := range s.competitorOrder {
		out = append(out, s.competitors[id])
	}
	return out
}

// Competitor looks up one competitor by id
func (s *MemStore) Competitor(id string) (models.Competitor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.competitors[id]
	return c, ok
}

// CreateCompetitor assigns a fresh id and timestamp, stores and returns the record
func (s *MemStore) CreateCompetitor(in models.InsertCompetitor) models.Competitor {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Competitor{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Location:  in.Location,
		Website:   in.Website,
		CreatedAt: time.Now(),
	}
	s.competitors[c.ID] = c
	s.competitorOrder = append(s.competitorOrder, c.ID)
	return c
}

// UpdateCompetitor merges the patch onto the existing record
func (s *MemStore) UpdateCompetitor(id string, patch models.CompetitorPatch) (models.Competitor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.competitors[id]
	if !ok {
		return models.Competitor{}, false
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Location != nil {
		c.Location = patch.Location
	}
	if patch.Website != nil {
		c.Website = patch.Website
	}
	s.competitors[id] = c
	return c, true
}

// DeleteCompetitor removes the competitor and cascades to its price rows
func (s *MemStore) DeleteCompetitor(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.competitors[id]; !ok {
		return false
	}
	delete(s.competitors, id)
	s.competitorOrder = removeID(s.competitorOrder, id)

	for _, cpID := range s.competitorPriceOrder {
		if cp, ok := s.competitorPrices[cpID]; ok && cp.CompetitorID == id {
			delete(s.competitorPrices, cpID)
		}
	}
	s.competitorPriceOrder = compactOrder(s.competitorPriceOrder, func(oid string) bool {
		_, ok := s.competitorPrices[oid]
		return ok
	})

	return true
}

// ---- Competitor prices ----

// CompetitorPrices returns competitor price rows, optionally filtered by product.
// An empty productID returns every row.
func (s *MemStore) CompetitorPrices(productID string) []models.CompetitorPrice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CompetitorPrice, 0, len(s.competitorPriceOrder))
	for _, id := range s.competitorPriceOrder {
		cp := s.competitorPrices[id]
		if productID == "" || cp.ProductID == productID {
			out = append(out, cp)
		}
	}
	return out
}

// CreateCompetitorPrice assigns a fresh id, stores and returns the record.
// RecordedAt defaults to now when the payload leaves it unset.
func (s *MemStore) CreateCompetitorPrice(in models.InsertCompetitorPrice) models.CompetitorPrice {
	s.mu.Lock()
	defer s.mu.Unlock()

	recordedAt := time.Now()
	if in.RecordedAt != nil {
		recordedAt = *in.RecordedAt
	}
	cp := models.CompetitorPrice{
		ID:           uuid.NewString(),
		ProductID:    in.ProductID,
		CompetitorID: in.CompetitorID,
		Price:        in.Price,
		RecordedAt:   recordedAt,
	}
	s.competitorPrices[cp.ID] = cp
	s.competitorPriceOrder = append(s.competitorPriceOrder, cp.ID)
	return cp
}

// UpdateCompetitorPrice merges the patch onto the existing record
func (s *MemStore) UpdateCompetitorPrice(id string, patch models.CompetitorPricePatch) (models.CompetitorPrice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp, ok := s.competitorPrices[id]
	if !ok {
		return models.CompetitorPrice{}, false
	}
	if patch.Price != nil {
		cp.Price = *patch.Price
	}
	if patch.RecordedAt != nil {
		cp.RecordedAt = *patch.RecordedAt
	}
	s.competitorPrices[id] = cp
	return cp, true
}

// ---- Price history ----

// PriceHistory returns history entries, optionally filtered by product.
// An empty productID returns every entry.
func (s *MemStore) PriceHistory(productID string) []models.PriceHistory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PriceHistory, 0, len(s.priceHistoryOrder))
	for _, id := range s.priceHistoryOrder {
		ph := s.priceHistory[id]
		if productID == "" || ph.ProductID == productID {
			out = append(out, ph)
		}
	}
	return out
}

// CreatePriceHistory appends a price observation.
// RecordedAt defaults to now when the payload leaves it unset.
func (s *MemStore) CreatePriceHistory(in models.InsertPriceHistory) models.PriceHistory {
	s.mu.Lock()
	defer s.mu.Unlock()

	recordedAt := time.Now()
	if in.RecordedAt != nil {
		recordedAt = *in.RecordedAt
	}
	ph := models.PriceHistory{
		ID:           uuid.NewString(),
		ProductID:    in.ProductID,
		Price:        in.Price,
		CompetitorID: in.CompetitorID,
		RecordedAt:   recordedAt,
	}
	s.priceHistory[ph.ID] = ph
	s.priceHistoryOrder = append(s.priceHistoryOrder, ph.ID)
	return ph
}

// UpdatePriceHistoryPrice replaces the price of an entry and refreshes its timestamp
func (s *MemStore) UpdatePriceHistoryPrice(id string, price models.Money) (models.PriceHistory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ph, ok := s.priceHistory[id]
	if !ok {
		return models.PriceHistory{}, false
	}
	ph.Price = price
	ph.RecordedAt = time.Now()
	s.priceHistory[id] = ph
	return ph, true
}

// DeletePriceHistory removes one history entry
func (s *MemStore) DeletePriceHistory(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.priceHistory[id]; !ok {
		return false
	}
	delete(s.priceHistory, id)
	s.priceHistoryOrder = removeID(s.priceHistoryOrder, id)
	return true
}

// ---- Snapshot / restore ----

// Snapshot exports every collection in insertion order
func (s *MemStore) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := models.Snapshot{
		Products:         make([]models.Product, 0, len(s.productOrder)),
		Competitors:      make([]models.Competitor, 0, len(s.competitorOrder)),
		CompetitorPrices: make([]models.CompetitorPrice, 0, len(s.competitorPriceOrder)),
		PriceHistory:     make([]models.PriceHistory, 0, len(s.priceHistoryOrder)),
	}
	for _, id := range s.productOrder {
		snap.Products = append(snap.Products, s.products[id])
	}
	for _, id := range s.competitorOrder {
		snap.Competitors = append(snap.Competitors, s.competitors[id])
	}
	for _, id := range s.competitorPriceOrder {
		snap.CompetitorPrices = append(snap.CompetitorPrices, s.competitorPrices[id])
	}
	for _, id := range s.priceHistoryOrder {
		snap.PriceHistory = append(snap.PriceHistory, s.priceHistory[id])
	}
	return snap
}

// RestoreSnapshot upserts every record from the snapshot, preserving ids.
// Records already present are overwritten; existing records missing from the
// snapshot are kept.
func (s *MemStore) RestoreSnapshot(snap models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range snap.Products {
		if _, ok := s.products[p.ID]; !ok {
			s.productOrder = append(s.productOrder, p.ID)
		}
		s.products[p.ID] = p
	}
	for _, c := range snap.Competitors {
		if _, ok := s.competitors[c.ID]; !ok {
			s.competitorOrder = append(s.competitorOrder, c.ID)
		}
		s.competitors[c.ID] = c
	}
	for _, cp := range snap.CompetitorPrices {
		if _, ok := s.competitorPrices[cp.ID]; !ok {
			s.competitorPriceOrder = append(s.competitorPriceOrder, cp.ID)
		}
		s.competitorPrices[cp.ID] = cp
	}
	for _, ph := range snap.PriceHistory {
		if _, ok := s.priceHistory[ph.ID]; !ok {
			s.priceHistoryOrder = append(s.priceHistoryOrder, ph.ID)
		}
		s.priceHistory[ph.ID] = ph
	}
}

// removeID drops one id from an order index
func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

// compactOrder keeps only ids for which keep returns true
func compactOrder(order []string, keep func(string) bool) []string {
	out := order[:0]
	for _, id := range order {
		if keep(id) {
			out = append(out, id)
		}
	}
	return out
}
