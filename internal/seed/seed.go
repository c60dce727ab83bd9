// internal/seed/seed.go
package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/logistics-backend/internal/domain/audit"
	"github.com/your-org/logistics-backend/internal/domain/catalog"
	"github.com/your-org/logistics-backend/internal/domain/forecast"
	"github.com/your-org/logistics-backend/internal/domain/inventory"
	"github.com/your-org/logistics-backend/internal/domain/supplychain"
	"github.com/your-org/logistics-backend/internal/domain/user"
)

// Stores collects every service the demo dataset populates
type Stores struct {
	Catalog     *catalog.Service
	Inventory   *inventory.Service
	SupplyChain *supplychain.Service
	Users       *user.Service
	Audit       *audit.Service
	Forecast    *forecast.Engine
}

// Load populates the in-memory stores with the demo warehouse dataset.
// Meant for development environments; all of it is lost on restart.
func Load(s *Stores, log *logrus.Logger) error {
	now := time.Now().UTC()

	// Demo accounts, one per role
	accounts := []user.CreateUserRequest{
		{Username: "admin", Email: "admin@warehouse.vn", FullName: "Nguyễn Quản Trị", Role: user.RoleAdmin, Password: "admin123"},
		{Username: "khotruong", Email: "khotruong@warehouse.vn", FullName: "Trần Kho Trưởng", Role: user.RoleWarehouseManager, Password: "kho123"},
		{Username: "nhanvien", Email: "nhanvien@warehouse.vn", FullName: "Lê Nhân Viên", Role: user.RoleWarehouseStaff, Password: "nv123"},
		{Username: "ketoan", Email: "ketoan@warehouse.vn", FullName: "Phạm Kế Toán", Role: user.RoleAccountant, Password: "kt123"},
	}

	var adminID string
	for i := range accounts {
		created, err := s.Users.Create(&accounts[i])
		if err != nil {
			return fmt.Errorf("failed to seed user %s: %w", accounts[i].Username, err)
		}
		if created.Role == user.RoleAdmin {
			adminID = created.ID
		}
	}

	// Product catalog
	laptop := catalog.Product{
		ID:          uuid.NewString(),
		Name:        "Laptop Dell XPS 15",
		SKU:         "LAP-DELL-XPS15-001",
		Category:    forecast.CategoryElectronics,
		Unit:        "cái",
		Description: "Laptop cao cấp cho văn phòng",
		CreatedAt:   now.AddDate(0, -6, 0),
		UpdatedAt:   now.AddDate(0, -6, 0),
	}
	chair := catalog.Product{
		ID:          uuid.NewString(),
		Name:        "Ghế văn phòng Ergonomic",
		SKU:         "FUR-CHAIR-ERG-001",
		Category:    forecast.CategoryFurniture,
		Unit:        "cái",
		Description: "Ghế công thái học cho nhân viên",
		CreatedAt:   now.AddDate(0, -4, 0),
		UpdatedAt:   now.AddDate(0, -4, 0),
	}
	paper := catalog.Product{
		ID:          uuid.NewString(),
		Name:        "Giấy in A4",
		SKU:         "SUP-PAPER-A4-001",
		Category:    forecast.CategoryOfficeSupplies,
		Unit:        "ram",
		Description: "Giấy in văn phòng định lượng 70gsm",
		CreatedAt:   now.AddDate(0, -2, 0),
		UpdatedAt:   now.AddDate(0, -2, 0),
	}
	for _, p := range []catalog.Product{laptop, chair, paper} {
		s.Catalog.Restore(p)
	}

	// Stock records: one healthy, one low, one well stocked
	stock := []inventory.Item{
		{ID: uuid.NewString(), ProductID: laptop.ID, Quantity: 25, Location: "Kho A - Khu vực 1", MinStock: 10, MaxStock: 100, LastUpdated: now},
		{ID: uuid.NewString(), ProductID: chair.ID, Quantity: 5, Location: "Kho B - Khu vực 2", MinStock: 10, MaxStock: 50, LastUpdated: now},
		{ID: uuid.NewString(), ProductID: paper.ID, Quantity: 150, Location: "Kho A - Khu vực 3", MinStock: 50, MaxStock: 500, LastUpdated: now},
	}
	for _, item := range stock {
		s.Inventory.Restore(item)
	}

	// Supply chain records with live tracking positions
	hcm := &supplychain.GeoPoint{Lat: 10.7769, Lng: 106.7009, Address: "TP. Hồ Chí Minh"}
	hanoi := &supplychain.GeoPoint{Lat: 21.0285, Lng: 105.8542, Address: "Hà Nội"}
	danang := &supplychain.GeoPoint{Lat: 16.0544, Lng: 108.2022, Address: "Đà Nẵng"}
	delivered := now.AddDate(0, 0, -3)

	shipments := []supplychain.Record{
		{
			ID: uuid.NewString(), OrderID: "PO-2024-001", ProductID: laptop.ID,
			Status: supplychain.StatusInTransit, Supplier: "Dell Việt Nam", Quantity: 10,
			OrderDate: now.AddDate(0, 0, -7), ExpectedDate: now.AddDate(0, 0, 2),
			Origin: hanoi, Destination: hcm,
			Current:  &supplychain.GeoPoint{Lat: 16.0544, Lng: 108.2022, Address: "Đà Nẵng - đang trung chuyển"},
			Progress: 45, ETAHours: 36,
			Notes: "Hàng đang trên đường vận chuyển",
		},
		{
			ID: uuid.NewString(), OrderID: "PO-2024-002", ProductID: chair.ID,
			Status: supplychain.StatusDelivered, Supplier: "Nội thất Hòa Phát", Quantity: 20,
			OrderDate: now.AddDate(0, 0, -14), ExpectedDate: now.AddDate(0, 0, -4),
			ActualDate: &delivered,
			Origin:     danang, Destination: hcm, Current: hcm,
			Progress: 100,
			Notes:    "Đã giao đủ số lượng",
		},
		{
			ID: uuid.NewString(), OrderID: "PO-2024-003", ProductID: paper.ID,
			Status: supplychain.StatusPending, Supplier: "Giấy Sài Gòn", Quantity: 200,
			OrderDate: now.AddDate(0, 0, -1), ExpectedDate: now.AddDate(0, 0, 5),
			Origin: hcm, Destination: hcm,
			Progress: 0, ETAHours: 120,
			Notes: "Chờ nhà cung cấp xác nhận",
		},
	}
	for _, r := range shipments {
		s.SupplyChain.Restore(r)
	}

	// Customers with purchase history aggregates
	abc := forecast.Customer{
		ID: uuid.NewString(), Name: "Công ty ABC",
		Email: "lienhe@abc.vn", Phone: "0281234567", Company: "Công ty TNHH ABC",
		Address:      "123 Nguyễn Huệ, Quận 1, TP.HCM",
		CustomerType: forecast.TypeVIP, Segment: forecast.SegmentLongTerm,
		TotalOrders: 45, TotalSpent: 50_000_000, AverageOrderValue: 50_000_000.0 / 45,
		FirstPurchaseDate: now.AddDate(-2, 0, 0), LastPurchaseDate: now.AddDate(0, 0, -5),
		CreatedAt: now.AddDate(-2, 0, 0), UpdatedAt: now,
	}
	xyz := forecast.Customer{
		ID: uuid.NewString(), Name: "Công ty XYZ",
		Email: "info@xyz.vn", Phone: "0287654321", Company: "Công ty CP XYZ",
		Address:      "456 Lê Lợi, Quận 3, TP.HCM",
		CustomerType: forecast.TypeRegular, Segment: forecast.SegmentShortTerm,
		TotalOrders: 3, TotalSpent: 5_000_000, AverageOrderValue: 5_000_000.0 / 3,
		FirstPurchaseDate: now.AddDate(0, -3, 0), LastPurchaseDate: now.AddDate(0, 0, -20),
		CreatedAt: now.AddDate(0, -3, 0), UpdatedAt: now,
	}
	nva := forecast.Customer{
		ID: uuid.NewString(), Name: "Nguyễn Văn A",
		Email: "nguyenvana@gmail.com", Phone: "0909123456",
		Address:      "789 Trần Hưng Đạo, Quận 5, TP.HCM",
		CustomerType: forecast.TypePotential, Segment: forecast.SegmentNew,
		TotalOrders: 1, TotalSpent: 2_000_000, AverageOrderValue: 2_000_000,
		FirstPurchaseDate: now.AddDate(0, 0, -10), LastPurchaseDate: now.AddDate(0, 0, -10),
		CreatedAt: now.AddDate(0, 0, -10), UpdatedAt: now,
	}
	for _, c := range []forecast.Customer{abc, xyz, nva} {
		s.Forecast.RestoreCustomer(c)
	}

	// Recent orders backing the aggregates above
	orders := []forecast.Order{
		{
			ID: uuid.NewString(), CustomerID: abc.ID, OrderDate: now.AddDate(0, 0, -5),
			TotalAmount: 2_500_000, Status: forecast.OrderCompleted,
			Notes: "Đơn hàng định kỳ tháng này",
		},
		{
			ID: uuid.NewString(), CustomerID: xyz.ID, OrderDate: now.AddDate(0, 0, -20),
			TotalAmount: 1_800_000, Status: forecast.OrderCompleted,
		},
		{
			ID: uuid.NewString(), CustomerID: nva.ID, OrderDate: now.AddDate(0, 0, -10),
			TotalAmount: 2_000_000, Status: forecast.OrderProcessing,
			Notes: "Khách hàng mới, giao nhanh",
		},
	}
	orderProducts := []catalog.Product{laptop, chair, paper}
	for i := range orders {
		p := orderProducts[i]
		orders[i].Items = []forecast.OrderItem{{
			ID:         uuid.NewString(),
			OrderID:    orders[i].ID,
			ProductID:  p.ID,
			Quantity:   1 + i,
			UnitPrice:  orders[i].TotalAmount / float64(1+i),
			TotalPrice: orders[i].TotalAmount,
		}}
		s.Forecast.RestoreOrder(orders[i])
	}

	// Initial audit trail so the log screen has history on first login
	trail := []struct {
		action, resource, details string
	}{
		{audit.ActionLogin, "auth", "User logged in"},
		{audit.ActionCreate, "products", "Created product Laptop Dell XPS 15"},
		{audit.ActionCreate, "products", "Created product Ghế văn phòng Ergonomic"},
		{audit.ActionCreate, "products", "Created product Giấy in A4"},
		{audit.ActionCreate, "inventory", "Created initial stock records"},
		{audit.ActionCreate, "supply_chain", "Registered supplier purchase orders"},
		{audit.ActionCreate, "users", "Created demo role accounts"},
		{audit.ActionRead, "warehouse_reports", "Viewed warehouse reports"},
	}
	for _, t := range trail {
		s.Audit.Append(adminID, t.action, t.resource, "", t.details)
	}

	log.WithFields(logrus.Fields{
		"products":  s.Catalog.Count(),
		"users":     len(accounts),
		"customers": len(s.Forecast.ListCustomers()),
	}).Info("Demo dataset loaded")

	return nil
}
