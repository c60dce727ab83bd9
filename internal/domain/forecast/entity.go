// internal/domain/forecast/entity.go
package forecast

import (
	"time"
)

// CustomerType is the commercial classification entered by staff
type CustomerType string

const (
	TypeVIP       CustomerType = "vip"
	TypeRegular   CustomerType = "regular"
	TypePotential CustomerType = "potential"
)

// IsValid reports whether the customer type is known
func (t CustomerType) IsValid() bool {
	switch t {
	case TypeVIP, TypeRegular, TypePotential:
		return true
	}
	return false
}

// Segment is the derived customer lifecycle bucket
type Segment string

const (
	SegmentNew       Segment = "new"
	SegmentShortTerm Segment = "short_term"
	SegmentLongTerm  Segment = "long_term"
)

// Customer carries contact data plus denormalized purchase aggregates.
// TotalOrders, TotalSpent, AverageOrderValue and LastPurchaseDate are caches
// recomputed on every order mutation; they always equal a fold over the
// customer's current order set.
type Customer struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone"`
	Company           string       `json:"company,omitempty"`
	Address           string       `json:"address,omitempty"`
	CustomerType      CustomerType `json:"customer_type"`
	Segment           Segment      `json:"segment"`
	FirstPurchaseDate time.Time    `json:"first_purchase_date"`
	LastPurchaseDate  time.Time    `json:"last_purchase_date"`
	TotalOrders       int          `json:"total_orders"`
	TotalSpent        float64      `json:"total_spent"`
	AverageOrderValue float64      `json:"average_order_value"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// OrderStatus tracks a customer order's lifecycle
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderItem is one product line on an order.
// TotalPrice equals Quantity*UnitPrice by construction.
type OrderItem struct {
	ID         string  `json:"id"`
	OrderID    string  `json:"order_id"`
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// Order is a customer purchase
type Order struct {
	ID          string      `json:"id"`
	CustomerID  string      `json:"customer_id"`
	OrderDate   time.Time   `json:"order_date"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	Items       []OrderItem `json:"items"`
	Notes       string      `json:"notes,omitempty"`
}

// ProductPrediction is one predicted future purchase for a customer
type ProductPrediction struct {
	ProductID            string     `json:"product_id"`
	ProductName          string     `json:"product_name"`
	PredictedDemand      int        `json:"predicted_demand"`
	Confidence           float64    `json:"confidence"`
	PredictedCategories  []string   `json:"predicted_categories"`
	PredictedNextPurchase *time.Time `json:"predicted_next_purchase,omitempty"`
}

// DemandForecast is the combined per-customer forecast. Derived on demand,
// never persisted.
type DemandForecast struct {
	CustomerID              string              `json:"customer_id"`
	Customer                *Customer           `json:"customer,omitempty"`
	PredictedProducts       []ProductPrediction `json:"predicted_products"`
	PredictedServices       []string            `json:"predicted_services"`
	ConfidenceScore         float64             `json:"confidence_score"`
	NextPurchaseProbability float64             `json:"next_purchase_probability"`
	PredictedPurchaseDate   time.Time           `json:"predicted_purchase_date"`
	LastUpdated             time.Time           `json:"last_updated"`
}

// Timeframe buckets an emerging-category prediction
type Timeframe string

const (
	TimeframeShortTerm  Timeframe = "short_term"
	TimeframeMediumTerm Timeframe = "medium_term"
)

// CategoryPrediction is a cross-customer emerging-category prediction
type CategoryPrediction struct {
	Category          string    `json:"category"`
	PredictedProducts []string  `json:"predicted_products"`
	Confidence        float64   `json:"confidence"`
	Timeframe         Timeframe `json:"timeframe"`
	Reasoning         string    `json:"reasoning"`
}

// Product categories with special prediction behavior
const (
	CategoryElectronics    = "Điện tử"
	CategoryFurniture      = "Nội thất"
	CategoryOfficeSupplies = "Văn phòng phẩm"
	CategoryFoodBeverage   = "Thực phẩm & Đồ uống"
	CategoryAccessories    = "Phụ kiện"
)

// Service labels offered to customers. Treated as an opaque enum; the labels
// are the product team's fixed Vietnamese copy.
const (
	ServiceExtendedWarranty    = "Dịch vụ bảo hành mở rộng"
	ServiceInDepthConsulting   = "Dịch vụ tư vấn chuyên sâu"
	ServiceFastDelivery        = "Dịch vụ giao hàng nhanh"
	ServiceProInstallation     = "Dịch vụ lắp đặt chuyên nghiệp"
	ServicePeriodicMaintenance = "Dịch vụ bảo trì định kỳ"
	ServiceRepair              = "Dịch vụ sửa chữa"
	ServiceInstallation        = "Dịch vụ lắp đặt"
)

// complementaryCategories maps a purchased category to the extra category
// whose products count as complementary, beyond the same category itself.
var complementaryCategories = map[string]string{
	CategoryElectronics: CategoryAccessories,
	CategoryFurniture:   CategoryOfficeSupplies,
}

// emergingSuggestions maps a popular category to the fixed list of product
// types suggested for it. Categories outside this table yield no suggestion.
var emergingSuggestions = map[string][]string{
	CategoryElectronics:    {"Phụ kiện điện tử", "Thiết bị IoT", "Smart Home"},
	CategoryFurniture:      {"Nội thất thông minh", "Nội thất bền vững", "Thiết bị văn phòng hiện đại"},
	CategoryOfficeSupplies: {"Văn phòng phẩm thông minh", "Vật dụng tái chế", "Công cụ số hóa"},
	CategoryFoodBeverage:   {"Thực phẩm hữu cơ", "Đồ uống lành mạnh", "Snack tốt cho sức khỏe"},
}
