package preference

import (
	"Sue-Backend/domain"
	"regexp"
	"strings"
)

var standardItemSeparator = regexp.MustCompile(`[,;]`)

// MergeAllergy returns the allergy set with the new entry appended. Any
// existing entry that matches case-insensitively is removed first, so the
// final casing is whatever the caller typed last.
func MergeAllergy(allergies []string, allergy string) []string {
	allergy = strings.TrimSpace(allergy)
	if allergy == "" {
		return allergies
	}

	merged := removeAllergy(allergies, allergy)
	return append(merged, allergy)
}

// RemoveAllergy filters out entries matching case-insensitively.
func RemoveAllergy(allergies []string, allergy string) []string {
	return removeAllergy(allergies, strings.TrimSpace(allergy))
}

func removeAllergy(allergies []string, allergy string) []string {
	lowered := strings.ToLower(allergy)
	filtered := make([]string, 0, len(allergies))
	for _, existing := range allergies {
		if strings.ToLower(existing) != lowered {
			filtered = append(filtered, existing)
		}
	}
	return filtered
}

// SplitStandardItems turns free text like "eggs, bread; milk" into standard
// item records. Names are trimmed and empties dropped; no quantity or
// frequency is inferred.
func SplitStandardItems(raw string) []domain.StandardItem {
	parts := standardItemSeparator.Split(raw, -1)
	items := make([]domain.StandardItem, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		items = append(items, domain.StandardItem{Name: name})
	}
	return items
}
