// internal/domain/forecast/engine.go
package forecast

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/logistics-backend/internal/domain/catalog"
)

// ProductSource is the read-only catalog view the engine predicts against
type ProductSource interface {
	ListProducts() []catalog.Product
}

// Engine owns customers and their orders and computes demand forecasts
// from purchase history joined against the product catalog.
type Engine struct {
	mu        sync.RWMutex
	customers []Customer
	orders    []Order

	catalog ProductSource
	now     func() time.Time
}

// NewEngine creates a new demand forecast engine
func NewEngine(products ProductSource) *Engine {
	return &Engine{
		catalog: products,
		now:     time.Now,
	}
}

// daysBetween returns whole days from one instant to another
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// CreateCustomerRequest represents customer creation data
type CreateCustomerRequest struct {
	Name         string       `json:"name" binding:"required"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Company      string       `json:"company"`
	Address      string       `json:"address"`
	CustomerType CustomerType `json:"customer_type" binding:"required"`
}

// UpdateCustomerRequest represents customer update data
type UpdateCustomerRequest struct {
	Name         *string       `json:"name"`
	Email        *string       `json:"email"`
	Phone        *string       `json:"phone"`
	Company      *string       `json:"company"`
	Address      *string       `json:"address"`
	CustomerType *CustomerType `json:"customer_type"`
}

// OrderItemRequest is one product line of an order creation request
type OrderItemRequest struct {
	ProductID string  `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unit_price"`
}

// CreateOrderRequest represents order creation data. TotalAmount defaults to
// the sum of the line totals when omitted.
type CreateOrderRequest struct {
	CustomerID  string             `json:"customer_id" binding:"required"`
	OrderDate   time.Time          `json:"order_date"`
	TotalAmount float64            `json:"total_amount"`
	Status      OrderStatus        `json:"status"`
	Items       []OrderItemRequest `json:"items" binding:"required"`
	Notes       string             `json:"notes"`
}

// UpdateOrderRequest represents order update data
type UpdateOrderRequest struct {
	Status *OrderStatus `json:"status"`
	Notes  *string      `json:"notes"`
}

// CUSTOMER MANAGEMENT

// AddCustomer creates a customer with zeroed purchase aggregates
func (e *Engine) AddCustomer(req *CreateCustomerRequest) (*Customer, error) {
	if !req.CustomerType.IsValid() {
		return nil, fmt.Errorf("invalid customer type: %s", req.CustomerType)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	customer := Customer{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Company:           req.Company,
		Address:           req.Address,
		CustomerType:      req.CustomerType,
		Segment:           SegmentNew,
		FirstPurchaseDate: now,
		LastPurchaseDate:  now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	e.customers = append(e.customers, customer)

	return &customer, nil
}

// UpdateCustomer patches a customer and reclassifies its segment
func (e *Engine) UpdateCustomer(id string, req *UpdateCustomerRequest) (*Customer, error) {
	if req.CustomerType != nil && !req.CustomerType.IsValid() {
		return nil, fmt.Errorf("invalid customer type: %s", *req.CustomerType)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.findCustomerLocked(id)
	if c == nil {
		return nil, fmt.Errorf("customer not found")
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Company != nil {
		c.Company = *req.Company
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.CustomerType != nil {
		c.CustomerType = *req.CustomerType
	}
	c.UpdatedAt = e.now()
	e.classifyLocked(c)

	updated := *c
	return &updated, nil
}

// DeleteCustomer removes a customer together with its orders
func (e *Engine) DeleteCustomer(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.findCustomerLocked(id) == nil {
		return fmt.Errorf("customer not found")
	}

	kept := e.customers[:0]
	for _, c := range e.customers {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	e.customers = kept

	keptOrders := e.orders[:0]
	for _, o := range e.orders {
		if o.CustomerID != id {
			keptOrders = append(keptOrders, o)
		}
	}
	e.orders = keptOrders

	return nil
}

// GetCustomer retrieves a customer by id
func (e *Engine) GetCustomer(id string) (*Customer, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if c := e.findCustomerLocked(id); c != nil {
		customer := *c
		return &customer, nil
	}
	return nil, fmt.Errorf("customer not found")
}

// ListCustomers returns all customers
func (e *Engine) ListCustomers() []Customer {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Customer, len(e.customers))
	copy(out, e.customers)
	return out
}

// ORDER MANAGEMENT

// AddOrder appends an order, then recomputes the owning customer's
// aggregates and reclassifies it
func (e *Engine) AddOrder(req *CreateOrderRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	status := req.Status
	if status == "" {
		status = OrderPending
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = e.now()
	}

	orderID := uuid.NewString()
	items := make([]OrderItem, 0, len(req.Items))
	lineTotal := 0.0
	for _, it := range req.Items {
		item := OrderItem{
			ID:         uuid.NewString(),
			OrderID:    orderID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: float64(it.Quantity) * it.UnitPrice,
		}
		lineTotal += item.TotalPrice
		items = append(items, item)
	}

	total := req.TotalAmount
	if total == 0 {
		total = lineTotal
	}

	order := Order{
		ID:          orderID,
		CustomerID:  req.CustomerID,
		OrderDate:   orderDate,
		TotalAmount: total,
		Status:      status,
		Items:       items,
		Notes:       req.Notes,
	}
	e.orders = append(e.orders, order)

	e.onOrderCreatedLocked(order)

	created := order
	return &created, nil
}

// UpdateOrder patches an order in place. Aggregates are only recomputed on
// add and delete.
func (e *Engine) UpdateOrder(id string, req *UpdateOrderRequest) (*Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.orders {
		if e.orders[i].ID != id {
			continue
		}
		o := &e.orders[i]
		if req.Status != nil {
			o.Status = *req.Status
		}
		if req.Notes != nil {
			o.Notes = *req.Notes
		}
		updated := *o
		return &updated, nil
	}

	return nil, fmt.Errorf("order not found")
}

// DeleteOrder recomputes the owning customer's aggregates over the remaining
// order set, then removes the order
func (e *Engine) DeleteOrder(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var order *Order
	for i := range e.orders {
		if e.orders[i].ID == id {
			order = &e.orders[i]
			break
		}
	}
	if order == nil {
		return fmt.Errorf("order not found")
	}

	if c := e.findCustomerLocked(order.CustomerID); c != nil {
		remaining := make([]Order, 0)
		for _, o := range e.orders {
			if o.CustomerID == order.CustomerID && o.ID != id {
				remaining = append(remaining, o)
			}
		}

		totalSpent := 0.0
		for _, o := range remaining {
			totalSpent += o.TotalAmount
		}
		c.TotalOrders = len(remaining)
		c.TotalSpent = totalSpent
		if c.TotalOrders > 0 {
			c.AverageOrderValue = totalSpent / float64(c.TotalOrders)
		} else {
			c.AverageOrderValue = 0
		}

		// First/last purchase dates shift only while orders remain;
		// an emptied history keeps the previous dates.
		if len(remaining) > 0 {
			first, last := remaining[0].OrderDate, remaining[0].OrderDate
			for _, o := range remaining[1:] {
				if o.OrderDate.Before(first) {
					first = o.OrderDate
				}
				if o.OrderDate.After(last) {
					last = o.OrderDate
				}
			}
			c.FirstPurchaseDate = first
			c.LastPurchaseDate = last
		}
		c.UpdatedAt = e.now()
		e.classifyLocked(c)
	}

	kept := e.orders[:0]
	for _, o := range e.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	e.orders = kept

	return nil
}

// ListOrders returns all orders
func (e *Engine) ListOrders() []Order {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Order, len(e.orders))
	copy(out, e.orders)
	return out
}

// OrdersForCustomer returns all orders belonging to one customer
func (e *Engine) OrdersForCustomer(customerID string) []Order {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ordersForLocked(customerID)
}

// onOrderCreatedLocked refreshes the owning customer's purchase aggregates
// after an order was appended. Unknown customers are ignored.
func (e *Engine) onOrderCreatedLocked(order Order) {
	c := e.findCustomerLocked(order.CustomerID)
	if c == nil {
		return
	}

	// The order is already part of the set, so a plain fold is current.
	orders := e.ordersForLocked(order.CustomerID)
	totalSpent := 0.0
	for _, o := range orders {
		totalSpent += o.TotalAmount
	}

	// First purchase date sticks once the customer has purchase history.
	if c.TotalOrders == 0 {
		c.FirstPurchaseDate = order.OrderDate
	}
	c.TotalOrders = len(orders)
	c.TotalSpent = totalSpent
	c.AverageOrderValue = totalSpent / float64(len(orders))
	c.LastPurchaseDate = order.OrderDate
	c.UpdatedAt = e.now()

	e.classifyLocked(c)
}

// SEGMENT CLASSIFICATION

// ClassifyCustomer recomputes and stores the customer's segment.
// Unknown customers classify as new.
func (e *Engine) ClassifyCustomer(customerID string) Segment {
	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.findCustomerLocked(customerID)
	if c == nil {
		return SegmentNew
	}
	return e.classifyLocked(c)
}

// classifyLocked is the segment decision list; first match wins
func (e *Engine) classifyLocked(c *Customer) Segment {
	lifetime := daysBetween(c.FirstPurchaseDate, c.LastPurchaseDate)
	sinceLast := daysBetween(c.LastPurchaseDate, e.now())

	var segment Segment
	switch {
	case c.TotalOrders == 1 && sinceLast < 30:
		segment = SegmentNew
	case lifetime > 365 && c.TotalOrders > 10:
		segment = SegmentLongTerm
	case sinceLast < 90 && c.TotalOrders > 3:
		segment = SegmentShortTerm
	case sinceLast < 180:
		segment = SegmentShortTerm
	default:
		if c.TotalOrders > 5 {
			segment = SegmentLongTerm
		} else {
			segment = SegmentShortTerm
		}
	}

	c.Segment = segment
	return segment
}

// PotentialCustomers returns customers worth acquisition attention: new
// segment, one-to-three orders, or explicitly typed potential
func (e *Engine) PotentialCustomers() []Customer {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := []Customer{}
	for _, c := range e.customers {
		if c.Segment == SegmentNew || (c.TotalOrders >= 1 && c.TotalOrders <= 3) || c.CustomerType == TypePotential {
			out = append(out, c)
		}
	}
	return out
}

// ShortTermCustomers returns customers currently in the short_term segment
func (e *Engine) ShortTermCustomers() []Customer {
	return e.customersBySegment(SegmentShortTerm)
}

// LongTermCustomers returns customers currently in the long_term segment
func (e *Engine) LongTermCustomers() []Customer {
	return e.customersBySegment(SegmentLongTerm)
}

func (e *Engine) customersBySegment(segment Segment) []Customer {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := []Customer{}
	for _, c := range e.customers {
		if c.Segment == segment {
			out = append(out, c)
		}
	}
	return out
}

// PRODUCT PREDICTION

// PredictFutureProducts predicts catalog products the customer is likely to
// buy next. Unknown customers yield an empty list.
func (e *Engine) PredictFutureProducts(customerID string) []ProductPrediction {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c := e.findCustomerLocked(customerID)
	if c == nil {
		return []ProductPrediction{}
	}
	return e.predictProductsLocked(c)
}

func (e *Engine) predictProductsLocked(c *Customer) []ProductPrediction {
	products := e.catalog.ListProducts()
	orders := e.ordersForLocked(c.ID)

	productByID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	// Purchase pattern frequency tables over the full order history
	productFreq := map[string]int{}
	categoryFreq := map[string]int{}
	for _, o := range orders {
		for _, item := range o.Items {
			p, ok := productByID[item.ProductID]
			if !ok {
				continue
			}
			productFreq[item.ProductID] += item.Quantity
			categoryFreq[p.Category]++
		}
	}

	topCategory := topCategoryOf(categoryFreq)

	predicted := []ProductPrediction{}
	seen := map[string]bool{}

	// Unexplored products in the customer's dominant category
	confidence := 0.4
	if topCategory != "" {
		confidence = 0.7
	}
	demand := 1
	if c.AverageOrderValue > 0 {
		demand = int(math.Ceil(c.AverageOrderValue / 1_000_000))
	}
	nextPurchase := e.now().Add(30 * 24 * time.Hour)

	count := 0
	for _, p := range products {
		if count >= 5 {
			break
		}
		if productFreq[p.ID] > 0 || p.Category != topCategory {
			continue
		}
		next := nextPurchase
		predicted = append(predicted, ProductPrediction{
			ProductID:             p.ID,
			ProductName:           p.Name,
			PredictedDemand:       demand,
			Confidence:            confidence,
			PredictedCategories:   []string{p.Category},
			PredictedNextPurchase: &next,
		})
		seen[p.ID] = true
		count++
	}

	// Complements of the most recent order's line items
	if len(orders) > 0 {
		last := orders[0]
		for _, o := range orders[1:] {
			if o.OrderDate.After(last.OrderDate) {
				last = o
			}
		}

		for _, item := range last.Items {
			source, ok := productByID[item.ProductID]
			if !ok || source.Category == "" {
				continue
			}

			complements := make([]catalog.Product, 0, 2)
			for _, p := range products {
				if len(complements) == 2 {
					break
				}
				if p.ID == item.ProductID || productFreq[p.ID] > 0 {
					continue
				}
				if p.Category == source.Category || complementaryCategories[source.Category] == p.Category {
					complements = append(complements, p)
				}
			}

			for _, p := range complements {
				if seen[p.ID] {
					continue
				}
				predicted = append(predicted, ProductPrediction{
					ProductID:           p.ID,
					ProductName:         p.Name,
					PredictedDemand:     1,
					Confidence:          0.5,
					PredictedCategories: []string{p.Category},
				})
				seen[p.ID] = true
			}
		}
	}

	if len(predicted) > 10 {
		predicted = predicted[:10]
	}
	return predicted
}

// topCategoryOf picks the category with the highest purchase count.
// Ties break on the lexicographically smaller name so the result does not
// depend on map iteration order.
func topCategoryOf(categoryFreq map[string]int) string {
	top := ""
	best := 0
	for category, count := range categoryFreq {
		if count > best || (count == best && top != "" && category < top) {
			top = category
			best = count
		}
	}
	return top
}

// SERVICE PREDICTION

// PredictFutureServices predicts service offerings for the customer as an
// ordered, deduplicated list of service labels
func (e *Engine) PredictFutureServices(customerID string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c := e.findCustomerLocked(customerID)
	if c == nil {
		return []string{}
	}
	return e.predictServicesLocked(c)
}

func (e *Engine) predictServicesLocked(c *Customer) []string {
	orders := e.ordersForLocked(c.ID)
	services := []string{}

	if c.TotalOrders > 10 {
		services = append(services, ServiceExtendedWarranty, ServiceInDepthConsulting)
	}
	if c.AverageOrderValue > 5_000_000 {
		services = append(services, ServiceFastDelivery, ServiceProInstallation)
	}

	if len(orders) > 0 {
		last := orders[0]
		for _, o := range orders[1:] {
			if o.OrderDate.After(last.OrderDate) {
				last = o
			}
		}
		if daysBetween(last.OrderDate, e.now()) > 60 {
			services = append(services, ServicePeriodicMaintenance)
		}
	}

	products := e.catalog.ListProducts()
	productByID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	for _, o := range orders {
		for _, item := range o.Items {
			p, ok := productByID[item.ProductID]
			if !ok {
				continue
			}
			if p.Category == CategoryElectronics && !containsString(services, ServiceRepair) {
				services = append(services, ServiceRepair)
			}
			if p.Category == CategoryFurniture && !containsString(services, ServiceInstallation) {
				services = append(services, ServiceInstallation)
			}
		}
	}

	return services
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// FORECAST AGGREGATION

// GetDemandForecast combines product and service predictions for one
// customer. Unknown customers yield nil.
func (e *Engine) GetDemandForecast(customerID string) *DemandForecast {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c := e.findCustomerLocked(customerID)
	if c == nil {
		return nil
	}
	return e.forecastLocked(c)
}

func (e *Engine) forecastLocked(c *Customer) *DemandForecast {
	predictedProducts := e.predictProductsLocked(c)
	predictedServices := e.predictServicesLocked(c)

	avgConfidence := 0.0
	if len(predictedProducts) > 0 {
		sum := 0.0
		for _, p := range predictedProducts {
			sum += p.Confidence
		}
		avgConfidence = sum / float64(len(predictedProducts))
	}

	now := e.now()
	sinceLast := daysBetween(c.LastPurchaseDate, now)

	// Average purchase interval in days; single-order customers get a
	// 30-day default.
	interval := 30.0
	if c.TotalOrders > 1 {
		interval = float64(daysBetween(c.FirstPurchaseDate, c.LastPurchaseDate)) / float64(c.TotalOrders)
	}

	probability := 0.3
	if float64(sinceLast) < interval*2 {
		probability = 0.7
	}

	customer := *c
	return &DemandForecast{
		CustomerID:              c.ID,
		Customer:                &customer,
		PredictedProducts:       predictedProducts,
		PredictedServices:       predictedServices,
		ConfidenceScore:         avgConfidence,
		NextPurchaseProbability: probability,
		PredictedPurchaseDate:   now.Add(time.Duration(interval * 24 * float64(time.Hour))),
		LastUpdated:             now,
	}
}

// AllDemandForecasts computes a forecast for every customer
func (e *Engine) AllDemandForecasts() []DemandForecast {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]DemandForecast, 0, len(e.customers))
	for i := range e.customers {
		if f := e.forecastLocked(&e.customers[i]); f != nil {
			out = append(out, *f)
		}
	}
	return out
}

// EMERGING CATEGORY PREDICTION

// PredictNewProductTypes predicts emerging product categories from purchase
// volume across all customers
func (e *Engine) PredictNewProductTypes() []CategoryPrediction {
	e.mu.RLock()
	defer e.mu.RUnlock()

	products := e.catalog.ListProducts()
	productByID := make(map[string]catalog.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	// Global purchase quantity per category
	categoryTrends := map[string]int{}
	for _, o := range e.orders {
		for _, item := range o.Items {
			if p, ok := productByID[item.ProductID]; ok {
				categoryTrends[p.Category] += item.Quantity
			}
		}
	}

	predictions := []CategoryPrediction{}
	for _, category := range topCategories(categoryTrends, 3) {
		suggested, ok := emergingSuggestions[category]
		if !ok {
			continue
		}
		predictions = append(predictions, CategoryPrediction{
			Category:          category,
			PredictedProducts: suggested,
			Confidence:        0.75,
			Timeframe:         TimeframeMediumTerm,
			Reasoning:         fmt.Sprintf("Dựa trên xu hướng mua hàng của danh mục %s", category),
		})
	}

	// High-value long-term customers signal premium service demand
	longTerm := []Customer{}
	potential := 0
	for _, c := range e.customers {
		if c.Segment == SegmentLongTerm {
			longTerm = append(longTerm, c)
		}
		if c.Segment == SegmentNew || (c.TotalOrders >= 1 && c.TotalOrders <= 3) || c.CustomerType == TypePotential {
			potential++
		}
	}

	if len(longTerm) > 0 {
		sum := 0.0
		for _, c := range longTerm {
			sum += c.AverageOrderValue
		}
		if sum/float64(len(longTerm)) > 5_000_000 {
			predictions = append(predictions, CategoryPrediction{
				Category:          "Dịch vụ cao cấp",
				PredictedProducts: []string{"Dịch vụ tư vấn chuyên sâu", "Gói dịch vụ premium", "Hỗ trợ 24/7"},
				Confidence:        0.8,
				Timeframe:         TimeframeShortTerm,
				Reasoning:         "Nhu cầu từ khách hàng dài hạn có giá trị đơn hàng cao",
			})
		}
	}

	if potential > 5 {
		predictions = append(predictions, CategoryPrediction{
			Category:          "Sản phẩm cho khách hàng mới",
			PredictedProducts: []string{"Gói khởi đầu", "Sản phẩm giới thiệu", "Chương trình ưu đãi"},
			Confidence:        0.7,
			Timeframe:         TimeframeShortTerm,
			Reasoning:         "Số lượng khách hàng mới đang tăng",
		})
	}

	return predictions
}

// topCategories returns up to n categories ordered by purchase volume,
// ties broken by name for determinism
func topCategories(trends map[string]int, n int) []string {
	type entry struct {
		category string
		volume   int
	}
	entries := make([]entry, 0, len(trends))
	for category, volume := range trends {
		entries = append(entries, entry{category, volume})
	}

	// Insertion sort; the category universe is tiny.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0; j-- {
			a, b := entries[j-1], entries[j]
			if b.volume > a.volume || (b.volume == a.volume && b.category < a.category) {
				entries[j-1], entries[j] = b, a
			} else {
				break
			}
		}
	}

	if len(entries) > n {
		entries = entries[:n]
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.category)
	}
	return out
}

// INTERNAL LOOKUPS

func (e *Engine) findCustomerLocked(id string) *Customer {
	for i := range e.customers {
		if e.customers[i].ID == id {
			return &e.customers[i]
		}
	}
	return nil
}

func (e *Engine) ordersForLocked(customerID string) []Order {
	out := []Order{}
	for _, o := range e.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

// SEEDING

// RestoreCustomer installs a customer with a caller-provided identity
func (e *Engine) RestoreCustomer(c Customer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.customers = append(e.customers, c)
}

// RestoreOrder installs an order with a caller-provided identity without
// touching customer aggregates
func (e *Engine) RestoreOrder(o Order) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.orders = append(e.orders, o)
}
