package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func openBorrow(due time.Time) *Borrow {
	return &Borrow{
		ID:         "borrow-1",
		BookID:     42,
		UserID:     "user-1",
		BorrowedAt: due.Add(-BorrowPeriod),
		DueDate:    due,
	}
}

func TestExtendDueDate_FromDueDateNotNow(t *testing.T) {
	due := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	b := openBorrow(due)

	err := b.ExtendDueDate(2)

	assert.NoError(t, err)
	assert.Equal(t, due.AddDate(0, 0, 14), b.DueDate)
}

func TestExtendDueDate_WeeksOutOfRange(t *testing.T) {
	due := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	for _, weeks := range []int{0, -1, 5, 100} {
		b := openBorrow(due)
		err := b.ExtendDueDate(weeks)
		assert.ErrorIs(t, err, ErrExtensionOutOfRange, "weeks=%d", weeks)
		assert.Equal(t, due, b.DueDate, "weeks=%d must leave due date untouched", weeks)
	}
}

func TestExtendDueDate_Bounds(t *testing.T) {
	due := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	b := openBorrow(due)
	assert.NoError(t, b.ExtendDueDate(MinExtensionWeeks))
	assert.Equal(t, due.AddDate(0, 0, 7), b.DueDate)

	b = openBorrow(due)
	assert.NoError(t, b.ExtendDueDate(MaxExtensionWeeks))
	assert.Equal(t, due.AddDate(0, 0, 28), b.DueDate)
}

func TestExtendDueDate_ClosedBorrow(t *testing.T) {
	due := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	b := openBorrow(due)
	returned := due.Add(-time.Hour)
	b.ReturnedAt = &returned

	err := b.ExtendDueDate(1)

	assert.ErrorIs(t, err, ErrBorrowClosed)
	assert.Equal(t, due, b.DueDate)
}

func TestExtendDueDate_Repeatable(t *testing.T) {
	due := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	b := openBorrow(due)

	assert.NoError(t, b.ExtendDueDate(1))
	assert.NoError(t, b.ExtendDueDate(1))
	assert.Equal(t, due.AddDate(0, 0, 14), b.DueDate)
}

func TestMarkReturned(t *testing.T) {
	due := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	b := openBorrow(due)
	now := due.Add(-24 * time.Hour)

	assert.NoError(t, b.MarkReturned(now))
	assert.False(t, b.IsOpen())
	assert.Equal(t, now, *b.ReturnedAt)
}

func TestMarkReturned_Twice(t *testing.T) {
	due := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	b := openBorrow(due)
	first := due.Add(-24 * time.Hour)

	assert.NoError(t, b.MarkReturned(first))
	err := b.MarkReturned(first.Add(time.Hour))

	assert.ErrorIs(t, err, ErrBorrowClosed)
	assert.Equal(t, first, *b.ReturnedAt)
}

func TestIsOverdue(t *testing.T) {
	due := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	b := openBorrow(due)

	assert.False(t, b.IsOverdue(due.Add(-time.Minute)))
	assert.False(t, b.IsOverdue(due))
	assert.True(t, b.IsOverdue(due.Add(time.Minute)))

	// A returned borrow is never overdue, even past its due date.
	returned := due.Add(time.Hour)
	b.ReturnedAt = &returned
	assert.False(t, b.IsOverdue(due.Add(48*time.Hour)))
}
