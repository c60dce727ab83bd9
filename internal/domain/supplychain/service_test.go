// internal/domain/supplychain/service_test.go
package supplychain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProducts struct {
	ids []string
}

func (s *stubProducts) Exists(id string) bool {
	for _, known := range s.ids {
		if known == id {
			return true
		}
	}
	return false
}

func newRecordRequest(productID string) *CreateRecordRequest {
	return &CreateRecordRequest{
		OrderID:      "PO-2024-001",
		ProductID:    productID,
		Status:       StatusPending,
		Supplier:     "Dell Việt Nam",
		Quantity:     10,
		OrderDate:    time.Now().AddDate(0, 0, -7),
		ExpectedDate: time.Now().AddDate(0, 0, 2),
	}
}

func TestAddRecord(t *testing.T) {
	s := NewService(&stubProducts{ids: []string{"p1"}})

	record, err := s.Add(newRecordRequest("p1"))
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, StatusPending, record.Status)
	assert.Equal(t, 0, record.Progress)
	assert.Nil(t, record.ActualDate)
}

func TestAddRecordValidation(t *testing.T) {
	s := NewService(&stubProducts{ids: []string{"p1"}})

	req := newRecordRequest("p1")
	req.Status = "shipped"
	_, err := s.Add(req)
	assert.Error(t, err)

	_, err = s.Add(newRecordRequest("unknown"))
	assert.EqualError(t, err, "product not found")
}

func TestUpdateRecordUnrestrictedTransitions(t *testing.T) {
	s := NewService(&stubProducts{ids: []string{"p1"}})

	record, err := s.Add(newRecordRequest("p1"))
	require.NoError(t, err)

	// Any status may move to any other status, including backwards
	for _, status := range []ShipmentStatus{StatusDelivered, StatusPending, StatusCancelled, StatusInTransit} {
		target := status
		updated, err := s.Update(record.ID, &UpdateRecordRequest{Status: &target})
		require.NoError(t, err)
		assert.Equal(t, target, updated.Status)
	}

	bad := ShipmentStatus("lost")
	_, err = s.Update(record.ID, &UpdateRecordRequest{Status: &bad})
	assert.Error(t, err)
}

func TestUpdateRecordTracking(t *testing.T) {
	s := NewService(&stubProducts{ids: []string{"p1"}})

	record, err := s.Add(newRecordRequest("p1"))
	require.NoError(t, err)

	delivered := StatusDelivered
	arrival := time.Now()
	progress := 100
	current := &GeoPoint{Lat: 10.7769, Lng: 106.7009, Address: "TP. Hồ Chí Minh"}

	updated, err := s.Update(record.ID, &UpdateRecordRequest{
		Status:     &delivered,
		ActualDate: &arrival,
		Current:    current,
		Progress:   &progress,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusDelivered, updated.Status)
	require.NotNil(t, updated.ActualDate)
	assert.Equal(t, arrival, *updated.ActualDate)
	assert.Equal(t, 100, updated.Progress)
	assert.Equal(t, current, updated.Current)

	_, err = s.Update("missing", &UpdateRecordRequest{Status: &delivered})
	assert.Error(t, err)
}

func TestCountByStatus(t *testing.T) {
	s := NewService(&stubProducts{ids: []string{"p1"}})

	for i := 0; i < 3; i++ {
		_, err := s.Add(newRecordRequest("p1"))
		require.NoError(t, err)
	}
	record, err := s.Add(newRecordRequest("p1"))
	require.NoError(t, err)

	inTransit := StatusInTransit
	_, err = s.Update(record.ID, &UpdateRecordRequest{Status: &inTransit})
	require.NoError(t, err)

	assert.Equal(t, 3, s.CountByStatus(StatusPending))
	assert.Equal(t, 1, s.CountByStatus(StatusInTransit))
	assert.Equal(t, 0, s.CountByStatus(StatusDelivered))
}

func TestDeleteAndRemoveByProduct(t *testing.T) {
	s := NewService(&stubProducts{ids: []string{"p1", "p2"}})

	first, err := s.Add(newRecordRequest("p1"))
	require.NoError(t, err)
	_, err = s.Add(newRecordRequest("p1"))
	require.NoError(t, err)
	_, err = s.Add(newRecordRequest("p2"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(first.ID))
	assert.Error(t, s.Delete(first.ID))
	_, err = s.Get(first.ID)
	assert.Error(t, err)

	s.RemoveByProduct("p1")
	records := s.List()
	require.Len(t, records, 1)
	assert.Equal(t, "p2", records[0].ProductID)
}
