// internal/domain/supplychain/service.go
package supplychain

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ProductChecker guards against records referencing products the catalog
// does not know about
type ProductChecker interface {
	Exists(id string) bool
}

// Service owns supply-chain status records
type Service struct {
	mu      sync.RWMutex
	records []Record

	products ProductChecker
}

// NewService creates a new supply chain service
func NewService(products ProductChecker) *Service {
	return &Service{products: products}
}

// CreateRecordRequest represents supply chain record creation data
type CreateRecordRequest struct {
	OrderID      string         `json:"order_id" binding:"required"`
	ProductID    string         `json:"product_id" binding:"required"`
	Status       ShipmentStatus `json:"status" binding:"required"`
	Supplier     string         `json:"supplier" binding:"required"`
	Quantity     int            `json:"quantity" binding:"required"`
	OrderDate    time.Time      `json:"order_date" binding:"required"`
	ExpectedDate time.Time      `json:"expected_date" binding:"required"`
	Notes        string         `json:"notes"`
	Origin       *GeoPoint      `json:"origin_location"`
	Destination  *GeoPoint      `json:"destination_location"`
}

// UpdateRecordRequest represents supply chain record update data
type UpdateRecordRequest struct {
	Status     *ShipmentStatus `json:"status"`
	ActualDate *time.Time      `json:"actual_date"`
	Notes      *string         `json:"notes"`
	Current    *GeoPoint       `json:"current_location"`
	Progress   *int            `json:"progress"`
	ETAHours   *int            `json:"estimated_time_remaining"`
}

// Add creates a new supply chain record
func (s *Service) Add(req *CreateRecordRequest) (*Record, error) {
	if !req.Status.IsValid() {
		return nil, fmt.Errorf("invalid shipment status: %s", req.Status)
	}
	if s.products != nil && !s.products.Exists(req.ProductID) {
		return nil, fmt.Errorf("product not found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := Record{
		ID:           uuid.NewString(),
		OrderID:      req.OrderID,
		ProductID:    req.ProductID,
		Status:       req.Status,
		Supplier:     req.Supplier,
		Quantity:     req.Quantity,
		OrderDate:    req.OrderDate,
		ExpectedDate: req.ExpectedDate,
		Notes:        req.Notes,
		Origin:       req.Origin,
		Destination:  req.Destination,
	}
	s.records = append(s.records, record)

	return &record, nil
}

// Update patches a supply chain record. Status transitions are unrestricted.
func (s *Service) Update(id string, req *UpdateRecordRequest) (*Record, error) {
	if req.Status != nil && !req.Status.IsValid() {
		return nil, fmt.Errorf("invalid shipment status: %s", *req.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		r := &s.records[i]
		if req.Status != nil {
			r.Status = *req.Status
		}
		if req.ActualDate != nil {
			r.ActualDate = req.ActualDate
		}
		if req.Notes != nil {
			r.Notes = *req.Notes
		}
		if req.Current != nil {
			r.Current = req.Current
		}
		if req.Progress != nil {
			r.Progress = *req.Progress
		}
		if req.ETAHours != nil {
			r.ETAHours = *req.ETAHours
		}
		updated := *r
		return &updated, nil
	}

	return nil, fmt.Errorf("supply chain record not found")
}

// Get retrieves a supply chain record by id
func (s *Service) Get(id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].ID == id {
			record := s.records[i]
			return &record, nil
		}
	}
	return nil, fmt.Errorf("supply chain record not found")
}

// Delete removes a single supply chain record
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("supply chain record not found")
}

// RemoveByProduct drops all records referencing a product. Cascade target
// registered with the catalog.
func (s *Service) RemoveByProduct(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	for _, r := range s.records {
		if r.ProductID != productID {
			kept = append(kept, r)
		}
	}
	s.records = kept
}

// List returns all supply chain records
func (s *Service) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// CountByStatus counts records currently in the given status
func (s *Service) CountByStatus(status ShipmentStatus) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, r := range s.records {
		if r.Status == status {
			count++
		}
	}
	return count
}

// Restore installs a record with a caller-provided identity. Used by seeding.
func (s *Service) Restore(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}
