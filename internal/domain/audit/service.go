// internal/domain/audit/service.go
package audit

import (
	"strconv"
	"sync"
	"time"

	"github.com/your-org/logistics-backend/internal/domain/user"
)

// UserResolver resolves user ids when a query needs to embed user details
type UserResolver interface {
	Get(id string) (*user.User, error)
}

// Service is the append-only audit log. New entries are inserted at the
// head, so default read order is newest-first.
type Service struct {
	mu      sync.RWMutex
	entries []Entry

	users UserResolver
}

// NewService creates a new audit log
func NewService(users UserResolver) *Service {
	return &Service{users: users}
}

// Append records an audit event. The id is derived from the current
// timestamp; collisions within a nanosecond are not a concern for this log.
func (s *Service) Append(userID, action, resource, resourceID, details string) Entry {
	now := time.Now().UTC()
	entry := Entry{
		ID:         strconv.FormatInt(now.UnixNano(), 10),
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    details,
		Timestamp:  now,
	}

	s.mu.Lock()
	s.entries = append([]Entry{entry}, s.entries...)
	s.mu.Unlock()

	return entry
}

// Query returns entries matching every provided filter field, newest first.
// User details are resolved lazily; an unresolvable user id leaves User nil
// and the raw id stands on its own.
func (s *Service) Query(filter Filter) []Entry {
	s.mu.RLock()
	snapshot := make([]Entry, len(s.entries))
	copy(snapshot, s.entries)
	s.mu.RUnlock()

	out := make([]Entry, 0, len(snapshot))
	for _, e := range snapshot {
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		if filter.Resource != "" && e.Resource != filter.Resource {
			continue
		}
		if filter.Action != "" && e.Action != filter.Action {
			continue
		}
		if !filter.StartDate.IsZero() && e.Timestamp.Before(filter.StartDate) {
			continue
		}
		if !filter.EndDate.IsZero() && e.Timestamp.After(filter.EndDate) {
			continue
		}

		if e.User == nil && s.users != nil {
			if u, err := s.users.Get(e.UserID); err == nil {
				e.User = u
			}
		}
		out = append(out, e)
	}
	return out
}

// Restore installs an entry with a caller-provided identity at the head.
// Used by seeding.
func (s *Service) Restore(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]Entry{e}, s.entries...)
}
