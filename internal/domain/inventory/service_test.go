// internal/domain/inventory/service_test.go
package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/logistics-backend/internal/domain/supplychain"
)

type stubCatalog struct {
	ids []string
}

func (s *stubCatalog) Exists(id string) bool {
	for _, known := range s.ids {
		if known == id {
			return true
		}
	}
	return false
}

func (s *stubCatalog) Count() int { return len(s.ids) }

type stubShipments struct {
	counts map[supplychain.ShipmentStatus]int
}

func (s *stubShipments) CountByStatus(status supplychain.ShipmentStatus) int {
	return s.counts[status]
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		min      int
		max      int
		want     StockStatus
	}{
		{"zero quantity is out of stock", 0, 10, 100, StatusOutOfStock},
		{"below minimum is low stock", 5, 10, 50, StatusLowStock},
		{"above maximum is overstock", 150, 10, 100, StatusOverstock},
		{"within bounds is in stock", 25, 10, 100, StatusInStock},
		{"exactly at minimum is in stock", 10, 10, 100, StatusInStock},
		{"exactly at maximum is in stock", 100, 10, 100, StatusInStock},
		{"zero wins over low stock", 0, 10, 5, StatusOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{Quantity: tt.quantity, MinStock: tt.min, MaxStock: tt.max}
			assert.Equal(t, tt.want, item.Classify())
		})
	}
}

func TestAddRequiresKnownProduct(t *testing.T) {
	s := NewService(&stubCatalog{ids: []string{"p1"}}, &stubShipments{})

	_, err := s.Add(&CreateItemRequest{ProductID: "unknown", Quantity: 5, Location: "Kho A"})
	assert.EqualError(t, err, "product not found")

	item, err := s.Add(&CreateItemRequest{ProductID: "p1", Quantity: 5, Location: "Kho A", MinStock: 10, MaxStock: 50})
	require.NoError(t, err)
	assert.Equal(t, "p1", item.ProductID)
	assert.False(t, item.LastUpdated.IsZero())
}

func TestAddRejectsNegativeQuantity(t *testing.T) {
	s := NewService(&stubCatalog{ids: []string{"p1"}}, &stubShipments{})

	_, err := s.Add(&CreateItemRequest{ProductID: "p1", Quantity: -1, Location: "Kho A"})
	assert.Error(t, err)
}

func TestUpdateRefreshesLastUpdated(t *testing.T) {
	s := NewService(&stubCatalog{ids: []string{"p1"}}, &stubShipments{})

	item, err := s.Add(&CreateItemRequest{ProductID: "p1", Quantity: 5, Location: "Kho A"})
	require.NoError(t, err)

	quantity := 0
	updated, err := s.Update(item.ID, &UpdateItemRequest{Quantity: &quantity})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
	assert.False(t, updated.LastUpdated.Before(item.LastUpdated))

	negative := -3
	_, err = s.Update(item.ID, &UpdateItemRequest{Quantity: &negative})
	assert.Error(t, err)

	_, err = s.Update("missing", &UpdateItemRequest{Quantity: &quantity})
	assert.Error(t, err)
}

func TestWarehouseReportsRecomputed(t *testing.T) {
	s := NewService(&stubCatalog{ids: []string{"p1", "p2"}}, &stubShipments{})

	healthy, err := s.Add(&CreateItemRequest{ProductID: "p1", Quantity: 25, Location: "Kho A - Khu vực 1", MinStock: 10, MaxStock: 100})
	require.NoError(t, err)
	_, err = s.Add(&CreateItemRequest{ProductID: "p2", Quantity: 5, Location: "Kho B - Khu vực 2", MinStock: 10, MaxStock: 50})
	require.NoError(t, err)

	reports := s.WarehouseReports()
	require.Len(t, reports, 2)
	assert.Equal(t, StatusInStock, reports[0].Status)
	assert.Equal(t, StatusLowStock, reports[1].Status)

	// Mutating stock changes the next report without any explicit refresh
	quantity := 0
	_, err = s.Update(healthy.ID, &UpdateItemRequest{Quantity: &quantity})
	require.NoError(t, err)

	reports = s.WarehouseReports()
	assert.Equal(t, StatusOutOfStock, reports[0].Status)

	// Reading reports is side-effect free
	assert.Equal(t, s.WarehouseReports(), s.WarehouseReports())
}

func TestDashboardStats(t *testing.T) {
	shipments := &stubShipments{counts: map[supplychain.ShipmentStatus]int{
		supplychain.StatusPending:   1,
		supplychain.StatusInTransit: 2,
		supplychain.StatusDelivered: 3,
	}}
	s := NewService(&stubCatalog{ids: []string{"p1", "p2", "p3"}}, shipments)

	_, err := s.Add(&CreateItemRequest{ProductID: "p1", Quantity: 25, Location: "Kho A", MinStock: 10, MaxStock: 100})
	require.NoError(t, err)
	_, err = s.Add(&CreateItemRequest{ProductID: "p2", Quantity: 5, Location: "Kho B", MinStock: 10, MaxStock: 50})
	require.NoError(t, err)
	_, err = s.Add(&CreateItemRequest{ProductID: "p3", Quantity: 0, Location: "Kho A", MinStock: 50, MaxStock: 500})
	require.NoError(t, err)

	stats := s.DashboardStats()
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 30, stats.TotalInventoryValue)
	assert.Equal(t, 2, stats.LowStockItems, "low and out-of-stock items both count")
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 2, stats.InTransitOrders)
	assert.Equal(t, 3, stats.DeliveredOrders)

	// Stats reads do not mutate state
	assert.Equal(t, stats, s.DashboardStats())
}

func TestDeleteAndRemoveByProduct(t *testing.T) {
	s := NewService(&stubCatalog{ids: []string{"p1", "p2"}}, &stubShipments{})

	a, err := s.Add(&CreateItemRequest{ProductID: "p1", Quantity: 10, Location: "Kho A"})
	require.NoError(t, err)
	_, err = s.Add(&CreateItemRequest{ProductID: "p1", Quantity: 4, Location: "Kho B"})
	require.NoError(t, err)
	_, err = s.Add(&CreateItemRequest{ProductID: "p2", Quantity: 7, Location: "Kho A"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(a.ID))
	assert.Error(t, s.Delete(a.ID))
	assert.Len(t, s.List(), 2)

	// Cascade removal drops every record of the product
	s.RemoveByProduct("p1")
	items := s.List()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)
}
