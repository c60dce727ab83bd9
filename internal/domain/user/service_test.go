// internal/domain/user/service_test.go
package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/logistics-backend/internal/config"
)

func newTestService() *Service {
	return NewService(&config.Config{
		Security: config.SecurityConfig{BcryptCost: 4},
	})
}

func TestCreateUser(t *testing.T) {
	s := newTestService()

	created, err := s.Create(&CreateUserRequest{
		Username: "khotruong",
		Email:    "Khotruong@Warehouse.VN",
		FullName: "Trần Kho Trưởng",
		Role:     RoleWarehouseManager,
		Password: "kho123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "khotruong@warehouse.vn", created.Email)
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotEqual(t, "kho123", created.PasswordHash)
}

func TestCreateUserRejectsDuplicateUsername(t *testing.T) {
	s := newTestService()

	_, err := s.Create(&CreateUserRequest{
		Username: "admin", Email: "a@x.vn", FullName: "A", Role: RoleAdmin, Password: "admin123",
	})
	require.NoError(t, err)

	// Same username with surrounding whitespace still collides
	_, err = s.Create(&CreateUserRequest{
		Username: " admin ", Email: "b@x.vn", FullName: "B", Role: RoleAccountant, Password: "kt123",
	})
	assert.Error(t, err)
}

func TestCreateUserRejectsInvalidRole(t *testing.T) {
	s := newTestService()

	_, err := s.Create(&CreateUserRequest{
		Username: "x", Email: "x@x.vn", FullName: "X", Role: Role("superuser"), Password: "xx123",
	})
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	s := newTestService()

	created, err := s.Create(&CreateUserRequest{
		Username: "nhanvien", Email: "nv@x.vn", FullName: "Lê Nhân Viên",
		Role: RoleWarehouseStaff, Password: "nv123",
	})
	require.NoError(t, err)

	account, err := s.Authenticate("nhanvien", "nv123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, account.ID)

	// Wrong password and unknown username share one error message
	_, err = s.Authenticate("nhanvien", "wrong")
	assert.EqualError(t, err, "invalid username or password")
	_, err = s.Authenticate("nobody", "nv123")
	assert.EqualError(t, err, "invalid username or password")
}

func TestAuthenticateRejectsDeactivated(t *testing.T) {
	s := newTestService()

	created, err := s.Create(&CreateUserRequest{
		Username: "ketoan", Email: "kt@x.vn", FullName: "Phạm Kế Toán",
		Role: RoleAccountant, Password: "kt123",
	})
	require.NoError(t, err)

	inactive := false
	_, err = s.Update(created.ID, &UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)

	_, err = s.Authenticate("ketoan", "kt123")
	assert.EqualError(t, err, "account is deactivated")
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	s := newTestService()

	created, err := s.Create(&CreateUserRequest{
		Username: "admin", Email: "a@x.vn", FullName: "A", Role: RoleAdmin, Password: "admin123",
	})
	require.NoError(t, err)

	newPassword := "changed123"
	_, err = s.Update(created.ID, &UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)

	_, err = s.Authenticate("admin", "admin123")
	assert.Error(t, err)
	_, err = s.Authenticate("admin", "changed123")
	assert.NoError(t, err)
}

func TestDeleteUser(t *testing.T) {
	s := newTestService()

	created, err := s.Create(&CreateUserRequest{
		Username: "temp", Email: "t@x.vn", FullName: "T", Role: RoleWarehouseStaff, Password: "tmp123",
	})
	require.NoError(t, err)

	require.NoError(t, s.Delete(created.ID))
	_, err = s.Get(created.ID)
	assert.Error(t, err)
	assert.Error(t, s.Delete(created.ID))
}
