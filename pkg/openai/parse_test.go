package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONArray(t *testing.T) {
	assert.Equal(t, `[{"name":"Milk"}]`, ExtractJSONArray(`[{"name":"Milk"}]`))
	assert.Equal(t, `[1, 2]`, ExtractJSONArray("Here you go: [1, 2] hope that helps"))
	assert.Equal(t, `["a"]`, ExtractJSONArray("```json\n[\"a\"]\n```"))
	assert.Equal(t, "", ExtractJSONArray("no array here"))
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"ok":true}`, ExtractJSONObject("```\n{\"ok\":true}\n```"))
	assert.Equal(t, "", ExtractJSONObject("]["))
}
