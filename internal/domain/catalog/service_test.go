// internal/domain/catalog/service_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	s := NewService()

	created, err := s.CreateProduct(&CreateProductRequest{
		Name: "Laptop Dell XPS 15", SKU: "LAP-DELL-XPS15-001", Category: "Điện tử", Unit: "cái",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, s.Count())
	assert.True(t, s.Exists(created.ID))
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	s := NewService()

	_, err := s.CreateProduct(&CreateProductRequest{
		Name: "Giấy in A4", SKU: "SUP-PAPER-A4-001", Category: "Văn phòng phẩm", Unit: "ram",
	})
	require.NoError(t, err)

	_, err = s.CreateProduct(&CreateProductRequest{
		Name: "Giấy in A4 khác", SKU: "SUP-PAPER-A4-001", Category: "Văn phòng phẩm", Unit: "ram",
	})
	assert.Error(t, err)
	assert.Equal(t, 1, s.Count())
}

func TestUpdateProduct(t *testing.T) {
	s := NewService()

	first, err := s.CreateProduct(&CreateProductRequest{
		Name: "Ghế văn phòng", SKU: "FUR-CHAIR-001", Category: "Nội thất", Unit: "cái",
	})
	require.NoError(t, err)
	second, err := s.CreateProduct(&CreateProductRequest{
		Name: "Bàn văn phòng", SKU: "FUR-DESK-001", Category: "Nội thất", Unit: "cái",
	})
	require.NoError(t, err)

	name := "Ghế văn phòng Ergonomic"
	updated, err := s.UpdateProduct(first.ID, &UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, first.SKU, updated.SKU)

	// Taking another product's SKU is a conflict
	sku := second.SKU
	_, err = s.UpdateProduct(first.ID, &UpdateProductRequest{SKU: &sku})
	assert.Error(t, err)

	_, err = s.UpdateProduct("missing", &UpdateProductRequest{Name: &name})
	assert.Error(t, err)
}

func TestDeleteProductRunsCascadeHooks(t *testing.T) {
	s := NewService()

	var cascaded []string
	s.OnDelete(func(productID string) {
		cascaded = append(cascaded, productID)
	})
	s.OnDelete(func(productID string) {
		cascaded = append(cascaded, productID)
	})

	created, err := s.CreateProduct(&CreateProductRequest{
		Name: "Laptop", SKU: "LAP-001", Category: "Điện tử", Unit: "cái",
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProduct(created.ID))
	assert.Equal(t, 0, s.Count())
	assert.False(t, s.Exists(created.ID))

	// Both registered hooks observed the deleted product
	assert.Equal(t, []string{created.ID, created.ID}, cascaded)
}

func TestDeleteProductNotFound(t *testing.T) {
	s := NewService()

	hookRan := false
	s.OnDelete(func(string) { hookRan = true })

	err := s.DeleteProduct("missing")
	assert.EqualError(t, err, "product not found")
	assert.False(t, hookRan, "hooks must not run for failed deletes")
}
