package openai

import (
	"strings"
)

// ExtractJSONArray trims markdown fences and surrounding prose from a model
// reply, returning the first top-level JSON array. Returns an empty string
// when no array is present.
func ExtractJSONArray(text string) string {
	text = stripFences(text)

	startIdx := strings.Index(text, "[")
	endIdx := strings.LastIndex(text, "]")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		return ""
	}
	return text[startIdx : endIdx+1]
}

// ExtractJSONObject is the object-shaped counterpart of ExtractJSONArray.
func ExtractJSONObject(text string) string {
	text = stripFences(text)

	startIdx := strings.Index(text, "{")
	endIdx := strings.LastIndex(text, "}")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		return ""
	}
	return text[startIdx : endIdx+1]
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
