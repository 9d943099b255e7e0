package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateStayDates(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 30, 0, 0, time.UTC)

	t.Run("valid future stay", func(t *testing.T) {
		issues := ValidateStayDates(now, day(2025, 7, 25), day(2025, 7, 28))
		assert.Empty(t, issues)
	})

	t.Run("check-in today is allowed", func(t *testing.T) {
		issues := ValidateStayDates(now, day(2025, 7, 15), day(2025, 7, 16))
		assert.Empty(t, issues)
	})

	t.Run("check-in in the past", func(t *testing.T) {
		issues := ValidateStayDates(now, day(2025, 7, 10), day(2025, 7, 20))
		assert.Len(t, issues, 1)
		assert.True(t, issues.HasKind(IssueDateInvalid))
		assert.Contains(t, issues[0].Detail, "cannot be in the past")
		assert.Contains(t, issues[0].Detail, "2025-07-15")
	})

	t.Run("check-out today", func(t *testing.T) {
		issues := ValidateStayDates(now, day(2025, 7, 15), day(2025, 7, 15))
		assert.True(t, issues.HasKind(IssueDateInvalid))
		details := issues.Details()
		assert.Contains(t, details[0], "at least tomorrow")
	})

	t.Run("check-in after check-out", func(t *testing.T) {
		issues := ValidateStayDates(now, day(2025, 7, 28), day(2025, 7, 25))
		assert.True(t, issues.HasKind(IssueDateInvalid))
		assert.Contains(t, issues.Details(), "check-in date must be before check-out date")
	})

	t.Run("all rules violated at once", func(t *testing.T) {
		issues := ValidateStayDates(now, day(2025, 7, 10), day(2025, 7, 5))
		assert.Len(t, issues, 3)
	})
}

func TestMidnight(t *testing.T) {
	ts := time.Date(2025, 7, 15, 23, 59, 59, 123, time.FixedZone("X", 3600))
	assert.Equal(t, day(2025, 7, 15), Midnight(ts))
}
