package pantry

import (
	"Sue-Backend/domain"
	"Sue-Backend/entities"
	"sort"
	"time"
)

// Items within this many whole days of expiring count as expiring soon.
// The window is inclusive on both ends: 0 (expires today) through 3.
const expiringSoonDays = 3

// ClassifyExpiry buckets an item by its expiration date. The best-by date is
// deliberately ignored here; it is a softer freshness signal tracked on the
// item but never drives urgency.
func ClassifyExpiry(now time.Time, expirationDate *time.Time) string {
	if expirationDate == nil {
		return domain.UrgencyNoDate
	}

	days := wholeDaysUntil(now, *expirationDate)
	switch {
	case days < 0:
		return domain.UrgencyExpired
	case days <= expiringSoonDays:
		return domain.UrgencyExpiringSoon
	default:
		return domain.UrgencyOk
	}
}

// IsExpiringSoon reports whether an item falls in the 0-3 day window used for
// home-screen surfacing. Same window as ClassifyExpiry, exposed separately so
// callers do not compare bucket strings.
func IsExpiringSoon(now time.Time, expirationDate *time.Time) bool {
	if expirationDate == nil {
		return false
	}
	days := wholeDaysUntil(now, *expirationDate)
	return days >= 0 && days <= expiringSoonDays
}

func wholeDaysUntil(now, t time.Time) int {
	return int(t.Sub(now).Hours() / 24)
}

// SortByExpiry orders items by ascending expiration date with undated items
// last. The sort is stable so equal dates keep their incoming order.
func SortByExpiry(items []*entities.PantryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].ExpirationDate, items[j].ExpirationDate
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
}
