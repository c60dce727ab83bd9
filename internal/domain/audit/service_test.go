// internal/domain/audit/service_test.go
package audit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/logistics-backend/internal/domain/user"
)

type stubResolver struct {
	users map[string]*user.User
}

func (s *stubResolver) Get(id string) (*user.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user not found")
}

func TestAppendNewestFirst(t *testing.T) {
	s := NewService(nil)

	s.Append("u1", ActionLogin, "auth", "", "first")
	s.Append("u1", ActionCreate, "products", "p1", "second")
	s.Append("u2", ActionDelete, "products", "p1", "third")

	entries := s.Query(Filter{})
	require.Len(t, entries, 3)
	assert.Equal(t, "third", entries[0].Details)
	assert.Equal(t, "second", entries[1].Details)
	assert.Equal(t, "first", entries[2].Details)
}

func TestQueryFiltersCombineWithAnd(t *testing.T) {
	s := NewService(nil)

	s.Append("u1", ActionCreate, "products", "p1", "")
	s.Append("u1", ActionDelete, "products", "p1", "")
	s.Append("u2", ActionCreate, "products", "p2", "")
	s.Append("u1", ActionCreate, "inventory", "i1", "")

	assert.Len(t, s.Query(Filter{UserID: "u1"}), 3)
	assert.Len(t, s.Query(Filter{Resource: "products"}), 3)
	assert.Len(t, s.Query(Filter{Action: ActionCreate}), 3)
	assert.Len(t, s.Query(Filter{UserID: "u1", Resource: "products"}), 2)
	assert.Len(t, s.Query(Filter{UserID: "u1", Resource: "products", Action: ActionCreate}), 1)
	assert.Empty(t, s.Query(Filter{UserID: "u2", Resource: "inventory"}))
}

func TestQueryDateBoundsInclusive(t *testing.T) {
	s := NewService(nil)

	entry := s.Append("u1", ActionLogin, "auth", "", "")

	// Bounds exactly at the entry timestamp still match
	matched := s.Query(Filter{StartDate: entry.Timestamp, EndDate: entry.Timestamp})
	require.Len(t, matched, 1)

	assert.Empty(t, s.Query(Filter{StartDate: entry.Timestamp.Add(time.Second)}))
	assert.Empty(t, s.Query(Filter{EndDate: entry.Timestamp.Add(-time.Second)}))
}

func TestQueryResolvesUsers(t *testing.T) {
	known := &user.User{ID: "u1", Username: "admin", Role: user.RoleAdmin}
	s := NewService(&stubResolver{users: map[string]*user.User{"u1": known}})

	s.Append("u1", ActionLogin, "auth", "", "")
	s.Append("ghost", ActionDelete, "users", "u9", "")

	entries := s.Query(Filter{})
	require.Len(t, entries, 2)

	// Deleted actors keep their raw id with no embedded user
	assert.Equal(t, "ghost", entries[0].UserID)
	assert.Nil(t, entries[0].User)

	require.NotNil(t, entries[1].User)
	assert.Equal(t, "admin", entries[1].User.Username)
}
