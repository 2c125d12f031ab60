//go:build unit

package charge_test

import (
	"testing"
	"time"

	"booth-booking/internal/domain/charge"
	"booth-booking/internal/domain/timeslot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIdempotencyKey(t *testing.T) {
	holdID, boothID := uuid.New(), uuid.New()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	iv, _ := timeslot.ParseInterval("18:00", "20:00")

	key := charge.IdempotencyKey(holdID, boothID, date, iv, 3)
	assert.Len(t, key, charge.MaxIdempotencyKeyLength)
	assert.Equal(t, key, charge.IdempotencyKey(holdID, boothID, date, iv, 3), "stable across retries")
	assert.NotEqual(t, key, charge.IdempotencyKey(holdID, boothID, date, iv, 2))
	assert.NotEqual(t, key, charge.IdempotencyKey(uuid.New(), boothID, date, iv, 3))
	assert.NotEqual(t, key, charge.RefundKey(key))
}
