// internal/domain/supplychain/entity.go
package supplychain

import (
	"time"
)

// Status values for a purchase order shipment. Any status may move to any
// other status; there is no enforced transition graph.
type ShipmentStatus string

const (
	StatusPending   ShipmentStatus = "pending"
	StatusInTransit ShipmentStatus = "in_transit"
	StatusDelivered ShipmentStatus = "delivered"
	StatusCancelled ShipmentStatus = "cancelled"
)

// IsValid reports whether the status is one of the known shipment statuses
func (s ShipmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// GeoPoint is a geographic position used for shipment tracking
type GeoPoint struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Record tracks one supplier order through the supply chain
type Record struct {
	ID           string         `json:"id"`
	OrderID      string         `json:"order_id"`
	ProductID    string         `json:"product_id"`
	Status       ShipmentStatus `json:"status"`
	Supplier     string         `json:"supplier"`
	Quantity     int            `json:"quantity"`
	OrderDate    time.Time      `json:"order_date"`
	ExpectedDate time.Time      `json:"expected_date"`
	ActualDate   *time.Time     `json:"actual_date,omitempty"`
	Notes        string         `json:"notes,omitempty"`

	// Shipment tracking
	Origin      *GeoPoint `json:"origin_location,omitempty"`
	Destination *GeoPoint `json:"destination_location,omitempty"`
	Current     *GeoPoint `json:"current_location,omitempty"`
	Progress    int       `json:"progress"`                        // percent of route completed
	ETAHours    int       `json:"estimated_time_remaining,omitempty"` // hours
}
