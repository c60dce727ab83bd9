// internal/domain/inventory/entity.go
package inventory

import (
	"time"
)

// StockStatus classifies an inventory item's stock health
type StockStatus string

const (
	StatusInStock    StockStatus = "in_stock"
	StatusLowStock   StockStatus = "low_stock"
	StatusOutOfStock StockStatus = "out_of_stock"
	StatusOverstock  StockStatus = "overstock"
)

// Item represents the stock level of one product at one location
type Item struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	Quantity    int       `json:"quantity"`
	Location    string    `json:"location"`
	MinStock    int       `json:"min_stock"`
	MaxStock    int       `json:"max_stock"`
	LastUpdated time.Time `json:"last_updated"`
}

// Classify derives the stock status from quantity against [MinStock, MaxStock].
// Pure function of (quantity, min, max).
func (i Item) Classify() StockStatus {
	switch {
	case i.Quantity == 0:
		return StatusOutOfStock
	case i.Quantity < i.MinStock:
		return StatusLowStock
	case i.Quantity > i.MaxStock:
		return StatusOverstock
	default:
		return StatusInStock
	}
}

// Report is the derived warehouse report row for an inventory item.
// Never stored; recomputed on every read.
type Report struct {
	ID           string      `json:"id"`
	ProductID    string      `json:"product_id"`
	CurrentStock int         `json:"current_stock"`
	MinStock     int         `json:"min_stock"`
	MaxStock     int         `json:"max_stock"`
	Status       StockStatus `json:"status"`
	Location     string      `json:"location"`
	LastMovement time.Time   `json:"last_movement"`
}

// Stats aggregates the dashboard numbers.
// TotalInventoryValue is a sum of unit quantities, not a monetary value;
// the name is inherited from the reporting contract and kept as-is.
type Stats struct {
	TotalProducts       int `json:"total_products"`
	TotalInventoryValue int `json:"total_inventory_value"`
	LowStockItems       int `json:"low_stock_items"`
	PendingOrders       int `json:"pending_orders"`
	InTransitOrders     int `json:"in_transit_orders"`
	DeliveredOrders     int `json:"delivered_orders"`
}
