package reminder

import (
	"time"
)

// DefrostReminderDate is one day before the meal the item is needed for.
func DefrostReminderDate(useDate time.Time) time.Time {
	return useDate.AddDate(0, 0, -1)
}

// ExpirationReminderDate is two days before the item expires.
func ExpirationReminderDate(expirationDate time.Time) time.Time {
	return expirationDate.AddDate(0, 0, -2)
}

func DefrostMessage(itemName string) string {
	return "Defrost " + itemName
}

func ExpirationMessage(itemName string) string {
	return itemName + " expires soon"
}
