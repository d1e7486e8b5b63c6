package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefrostReminderDateIsOneDayBefore(t *testing.T) {
	useDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	got := DefrostReminderDate(useDate)

	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), got)
}

func TestExpirationReminderDateIsTwoDaysBefore(t *testing.T) {
	expirationDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	got := ExpirationReminderDate(expirationDate)

	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), got)
}

func TestReminderDatesCrossMonthBoundary(t *testing.T) {
	useDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), DefrostReminderDate(useDate))
	assert.Equal(t, time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC), ExpirationReminderDate(useDate))
}

func TestReminderMessages(t *testing.T) {
	assert.Equal(t, "Defrost chicken", DefrostMessage("chicken"))
	assert.Equal(t, "yogurt expires soon", ExpirationMessage("yogurt"))
}
