// internal/domain/forecast/engine_test.go
package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/logistics-backend/internal/domain/catalog"
)

type stubCatalog struct {
	products []catalog.Product
}

func (s *stubCatalog) ListProducts() []catalog.Product {
	return s.products
}

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	e := NewEngine(&stubCatalog{products: []catalog.Product{
		{ID: "p-laptop", Name: "Laptop Dell XPS 15", Category: "Điện tử"},
		{ID: "p-monitor", Name: "Màn hình LG 27 inch", Category: "Điện tử"},
		{ID: "p-mouse", Name: "Chuột không dây", Category: "Phụ kiện"},
		{ID: "p-chair", Name: "Ghế văn phòng Ergonomic", Category: "Nội thất"},
		{ID: "p-paper", Name: "Giấy in A4", Category: "Văn phòng phẩm"},
	}})
	e.now = func() time.Time { return testNow }
	return e
}

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func TestClassifyCustomer(t *testing.T) {
	tests := []struct {
		name        string
		totalOrders int
		firstDays   int
		lastDays    int
		want        Segment
	}{
		{"single recent order is new", 1, 10, 10, SegmentNew},
		{"long history with volume is long term", 12, 400, 5, SegmentLongTerm},
		{"active frequent buyer is short term", 5, 80, 50, SegmentShortTerm},
		{"recent single order outside new window is short term", 1, 150, 150, SegmentShortTerm},
		{"dormant frequent buyer is long term", 8, 300, 200, SegmentLongTerm},
		{"dormant occasional buyer is short term", 2, 300, 200, SegmentShortTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			e.RestoreCustomer(Customer{
				ID:                "c1",
				Name:              "Công ty ABC",
				CustomerType:      TypeRegular,
				TotalOrders:       tt.totalOrders,
				FirstPurchaseDate: daysAgo(tt.firstDays),
				LastPurchaseDate:  daysAgo(tt.lastDays),
			})

			got := e.ClassifyCustomer("c1")
			assert.Equal(t, tt.want, got)

			stored, err := e.GetCustomer("c1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored.Segment)
		})
	}
}

func TestClassifyCustomerUnknown(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, SegmentNew, e.ClassifyCustomer("missing"))
}

func TestAddOrderUpdatesAggregates(t *testing.T) {
	e := newTestEngine()
	c, err := e.AddCustomer(&CreateCustomerRequest{Name: "Công ty ABC", CustomerType: TypeRegular})
	require.NoError(t, err)

	_, err = e.AddOrder(&CreateOrderRequest{
		CustomerID: c.ID,
		OrderDate:  daysAgo(20),
		Items:      []OrderItemRequest{{ProductID: "p-laptop", Quantity: 2, UnitPrice: 1_000_000}},
	})
	require.NoError(t, err)

	_, err = e.AddOrder(&CreateOrderRequest{
		CustomerID: c.ID,
		OrderDate:  daysAgo(5),
		Items:      []OrderItemRequest{{ProductID: "p-mouse", Quantity: 1, UnitPrice: 500_000}},
	})
	require.NoError(t, err)

	got, err := e.GetCustomer(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalOrders)
	assert.Equal(t, 2_500_000.0, got.TotalSpent)
	assert.Equal(t, 1_250_000.0, got.AverageOrderValue)
	assert.Equal(t, daysAgo(20), got.FirstPurchaseDate)
	assert.Equal(t, daysAgo(5), got.LastPurchaseDate)
}

func TestAddOrderDerivesLineTotals(t *testing.T) {
	e := newTestEngine()
	c, err := e.AddCustomer(&CreateCustomerRequest{Name: "Công ty XYZ", CustomerType: TypeRegular})
	require.NoError(t, err)

	o, err := e.AddOrder(&CreateOrderRequest{
		CustomerID: c.ID,
		Items: []OrderItemRequest{
			{ProductID: "p-laptop", Quantity: 3, UnitPrice: 2_000_000},
			{ProductID: "p-mouse", Quantity: 2, UnitPrice: 250_000},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 6_000_000.0, o.Items[0].TotalPrice)
	assert.Equal(t, 500_000.0, o.Items[1].TotalPrice)
	assert.Equal(t, 6_500_000.0, o.TotalAmount)
	assert.Equal(t, OrderPending, o.Status)
}

func TestDeleteOrderRecomputesAggregates(t *testing.T) {
	e := newTestEngine()
	c, err := e.AddCustomer(&CreateCustomerRequest{Name: "Công ty ABC", CustomerType: TypeRegular})
	require.NoError(t, err)

	first, err := e.AddOrder(&CreateOrderRequest{
		CustomerID: c.ID,
		OrderDate:  daysAgo(40),
		Items:      []OrderItemRequest{{ProductID: "p-laptop", Quantity: 1, UnitPrice: 3_000_000}},
	})
	require.NoError(t, err)

	second, err := e.AddOrder(&CreateOrderRequest{
		CustomerID: c.ID,
		OrderDate:  daysAgo(10),
		Items:      []OrderItemRequest{{ProductID: "p-chair", Quantity: 1, UnitPrice: 1_000_000}},
	})
	require.NoError(t, err)

	require.NoError(t, e.DeleteOrder(second.ID))

	got, err := e.GetCustomer(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalOrders)
	assert.Equal(t, 3_000_000.0, got.TotalSpent)
	assert.Equal(t, 3_000_000.0, got.AverageOrderValue)
	assert.Equal(t, daysAgo(40), got.FirstPurchaseDate)
	assert.Equal(t, daysAgo(40), got.LastPurchaseDate)

	// Emptying the history zeroes the counters but keeps the dates.
	require.NoError(t, e.DeleteOrder(first.ID))
	got, err = e.GetCustomer(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.TotalOrders)
	assert.Equal(t, 0.0, got.TotalSpent)
	assert.Equal(t, 0.0, got.AverageOrderValue)
	assert.Equal(t, daysAgo(40), got.FirstPurchaseDate)
	assert.Empty(t, e.OrdersForCustomer(c.ID))
}

func TestDeleteCustomerRemovesOrders(t *testing.T) {
	e := newTestEngine()
	c, err := e.AddCustomer(&CreateCustomerRequest{Name: "Nguyễn Văn A", CustomerType: TypePotential})
	require.NoError(t, err)

	_, err = e.AddOrder(&CreateOrderRequest{
		CustomerID: c.ID,
		Items:      []OrderItemRequest{{ProductID: "p-paper", Quantity: 10, UnitPrice: 50_000}},
	})
	require.NoError(t, err)

	require.NoError(t, e.DeleteCustomer(c.ID))

	_, err = e.GetCustomer(c.ID)
	assert.Error(t, err)
	assert.Empty(t, e.ListOrders())

	assert.Error(t, e.DeleteCustomer(c.ID))
}

func TestPredictFutureProducts(t *testing.T) {
	e := newTestEngine()
	e.RestoreCustomer(Customer{
		ID:                "c1",
		Name:              "Công ty ABC",
		CustomerType:      TypeVIP,
		TotalOrders:       1,
		AverageOrderValue: 2_500_000,
		FirstPurchaseDate: daysAgo(15),
		LastPurchaseDate:  daysAgo(15),
	})
	e.RestoreOrder(Order{
		ID:         "o1",
		CustomerID: "c1",
		OrderDate:  daysAgo(15),
		Items:      []OrderItem{{ID: "i1", OrderID: "o1", ProductID: "p-laptop", Quantity: 1, UnitPrice: 2_500_000, TotalPrice: 2_500_000}},
	})

	predictions := e.PredictFutureProducts("c1")
	require.NotEmpty(t, predictions)

	byID := map[string]ProductPrediction{}
	for _, p := range predictions {
		assert.NotEqual(t, "p-laptop", p.ProductID, "purchased products must not be predicted")
		byID[p.ProductID] = p
	}

	// The dominant category contributes the unexplored electronics product.
	monitor, ok := byID["p-monitor"]
	require.True(t, ok)
	assert.Equal(t, 0.7, monitor.Confidence)
	assert.Equal(t, 3, monitor.PredictedDemand)
	require.NotNil(t, monitor.PredictedNextPurchase)
	assert.Equal(t, testNow.Add(30*24*time.Hour), *monitor.PredictedNextPurchase)

	// The laptop's complement category contributes the accessory.
	mouse, ok := byID["p-mouse"]
	require.True(t, ok)
	assert.Equal(t, 0.5, mouse.Confidence)
	assert.Equal(t, 1, mouse.PredictedDemand)
	assert.Nil(t, mouse.PredictedNextPurchase)
}

func TestPredictFutureProductsEmptyHistory(t *testing.T) {
	e := newTestEngine()
	e.RestoreCustomer(Customer{ID: "c1", Name: "Công ty XYZ", CustomerType: TypeRegular})

	assert.Empty(t, e.PredictFutureProducts("c1"))
	assert.Empty(t, e.PredictFutureProducts("missing"))
}

func TestPredictFutureServices(t *testing.T) {
	e := newTestEngine()
	e.RestoreCustomer(Customer{
		ID:                "c1",
		Name:              "Công ty ABC",
		CustomerType:      TypeVIP,
		TotalOrders:       12,
		AverageOrderValue: 6_000_000,
		FirstPurchaseDate: daysAgo(400),
		LastPurchaseDate:  daysAgo(90),
	})
	e.RestoreOrder(Order{
		ID:         "o1",
		CustomerID: "c1",
		OrderDate:  daysAgo(90),
		Items: []OrderItem{
			{ID: "i1", OrderID: "o1", ProductID: "p-laptop", Quantity: 1},
			{ID: "i2", OrderID: "o1", ProductID: "p-chair", Quantity: 2},
		},
	})

	services := e.PredictFutureServices("c1")
	assert.Equal(t, []string{
		ServiceExtendedWarranty,
		ServiceInDepthConsulting,
		ServiceFastDelivery,
		ServiceProInstallation,
		ServicePeriodicMaintenance,
		ServiceRepair,
		ServiceInstallation,
	}, services)
}

func TestPredictFutureServicesSmallCustomer(t *testing.T) {
	e := newTestEngine()
	e.RestoreCustomer(Customer{
		ID:                "c1",
		Name:              "Nguyễn Văn A",
		CustomerType:      TypePotential,
		TotalOrders:       1,
		AverageOrderValue: 500_000,
		FirstPurchaseDate: daysAgo(5),
		LastPurchaseDate:  daysAgo(5),
	})
	e.RestoreOrder(Order{
		ID:         "o1",
		CustomerID: "c1",
		OrderDate:  daysAgo(5),
		Items:      []OrderItem{{ID: "i1", OrderID: "o1", ProductID: "p-paper", Quantity: 5}},
	})

	assert.Empty(t, e.PredictFutureServices("c1"))
}

func TestGetDemandForecast(t *testing.T) {
	e := newTestEngine()
	assert.Nil(t, e.GetDemandForecast("missing"))

	e.RestoreCustomer(Customer{
		ID:                "c1",
		Name:              "Công ty ABC",
		CustomerType:      TypeVIP,
		TotalOrders:       10,
		AverageOrderValue: 5_000_000,
		FirstPurchaseDate: daysAgo(310),
		LastPurchaseDate:  daysAgo(10),
	})

	f := e.GetDemandForecast("c1")
	require.NotNil(t, f)
	assert.Equal(t, "c1", f.CustomerID)
	require.NotNil(t, f.Customer)
	assert.Equal(t, "Công ty ABC", f.Customer.Name)

	// A 300-day lifetime over 10 orders gives a 30-day cadence; a purchase 10 days
	// ago sits well inside twice that interval.
	assert.Equal(t, 0.7, f.NextPurchaseProbability)
	assert.Equal(t, testNow.Add(30*24*time.Hour), f.PredictedPurchaseDate)
	assert.Equal(t, testNow, f.LastUpdated)
	assert.Equal(t, 0.0, f.ConfidenceScore, "no predictions means no confidence")
}

func TestGetDemandForecastDormantCustomer(t *testing.T) {
	e := newTestEngine()
	e.RestoreCustomer(Customer{
		ID:                "c1",
		Name:              "Công ty XYZ",
		CustomerType:      TypeRegular,
		TotalOrders:       10,
		AverageOrderValue: 1_000_000,
		FirstPurchaseDate: daysAgo(300),
		LastPurchaseDate:  daysAgo(100),
	})

	f := e.GetDemandForecast("c1")
	require.NotNil(t, f)
	assert.Equal(t, 0.3, f.NextPurchaseProbability)
}

func TestAllDemandForecasts(t *testing.T) {
	e := newTestEngine()
	e.RestoreCustomer(Customer{ID: "c1", Name: "A", CustomerType: TypeRegular, FirstPurchaseDate: daysAgo(1), LastPurchaseDate: daysAgo(1)})
	e.RestoreCustomer(Customer{ID: "c2", Name: "B", CustomerType: TypeVIP, FirstPurchaseDate: daysAgo(1), LastPurchaseDate: daysAgo(1)})

	forecasts := e.AllDemandForecasts()
	require.Len(t, forecasts, 2)
	assert.Equal(t, "c1", forecasts[0].CustomerID)
	assert.Equal(t, "c2", forecasts[1].CustomerID)
}

func TestPotentialCustomers(t *testing.T) {
	e := newTestEngine()
	e.RestoreCustomer(Customer{ID: "c1", Name: "new segment", Segment: SegmentNew, CustomerType: TypeRegular, TotalOrders: 0})
	e.RestoreCustomer(Customer{ID: "c2", Name: "few orders", Segment: SegmentShortTerm, CustomerType: TypeRegular, TotalOrders: 2})
	e.RestoreCustomer(Customer{ID: "c3", Name: "typed potential", Segment: SegmentLongTerm, CustomerType: TypePotential, TotalOrders: 20})
	e.RestoreCustomer(Customer{ID: "c4", Name: "established", Segment: SegmentLongTerm, CustomerType: TypeVIP, TotalOrders: 20})

	got := e.PotentialCustomers()
	require.Len(t, got, 3)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c2", got[1].ID)
	assert.Equal(t, "c3", got[2].ID)

	long := e.LongTermCustomers()
	require.Len(t, long, 2)
	short := e.ShortTermCustomers()
	require.Len(t, short, 1)
	assert.Equal(t, "c2", short[0].ID)
}

func TestPredictNewProductTypes(t *testing.T) {
	e := newTestEngine()
	e.RestoreCustomer(Customer{
		ID: "c1", Name: "Công ty ABC", CustomerType: TypeVIP,
		Segment: SegmentLongTerm, TotalOrders: 20, AverageOrderValue: 6_000_000,
	})
	e.RestoreOrder(Order{
		ID: "o1", CustomerID: "c1", OrderDate: daysAgo(30),
		Items: []OrderItem{
			{ID: "i1", OrderID: "o1", ProductID: "p-laptop", Quantity: 5},
			{ID: "i2", OrderID: "o1", ProductID: "p-chair", Quantity: 2},
		},
	})

	predictions := e.PredictNewProductTypes()
	require.NotEmpty(t, predictions)

	// Electronics leads the trend table and maps to concrete suggestions.
	assert.Equal(t, "Điện tử", predictions[0].Category)
	assert.Equal(t, 0.75, predictions[0].Confidence)
	assert.Equal(t, TimeframeMediumTerm, predictions[0].Timeframe)
	assert.NotEmpty(t, predictions[0].PredictedProducts)

	// High-value long-term customers trigger the premium service block.
	var premium *CategoryPrediction
	for i := range predictions {
		if predictions[i].Category == "Dịch vụ cao cấp" {
			premium = &predictions[i]
		}
	}
	require.NotNil(t, premium)
	assert.Equal(t, 0.8, premium.Confidence)
	assert.Equal(t, TimeframeShortTerm, premium.Timeframe)
}

func TestPredictNewProductTypesOnboardingBlock(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 6; i++ {
		e.RestoreCustomer(Customer{
			ID:           string(rune('a' + i)),
			Name:         "KH mới",
			CustomerType: TypeRegular,
			Segment:      SegmentNew,
		})
	}

	predictions := e.PredictNewProductTypes()
	require.Len(t, predictions, 1)
	assert.Equal(t, "Sản phẩm cho khách hàng mới", predictions[0].Category)
	assert.Equal(t, 0.7, predictions[0].Confidence)
}

func TestAddCustomerValidation(t *testing.T) {
	e := newTestEngine()
	_, err := e.AddCustomer(&CreateCustomerRequest{Name: "X", CustomerType: "wholesale"})
	assert.Error(t, err)

	c, err := e.AddCustomer(&CreateCustomerRequest{Name: "X", CustomerType: TypeVIP})
	require.NoError(t, err)
	assert.Equal(t, SegmentNew, c.Segment)
	assert.Equal(t, 0, c.TotalOrders)
	assert.Equal(t, testNow, c.FirstPurchaseDate)
}
