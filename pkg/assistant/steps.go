package assistant

import (
	"regexp"
	"strings"
)

const maxSteps = 10

// Steps shorter than this after trimming are treated as marker noise.
const minStepLen = 4

var stepMarker = regexp.MustCompile(`\d+\.|\n-|\n\*`)

// SegmentSteps splits free-form cooking instructions on numbered markers and
// bullet prefixes, trims each segment and caps the result at maxSteps. When no
// usable segment remains, the whole trimmed text is returned as a single step.
func SegmentSteps(text string) []string {
	segments := stepMarker.Split(text, -1)

	steps := make([]string, 0, len(segments))
	for _, segment := range segments {
		step := strings.TrimSpace(segment)
		if len(step) < minStepLen {
			continue
		}
		steps = append(steps, step)
		if len(steps) == maxSteps {
			break
		}
	}

	if len(steps) == 0 {
		return []string{strings.TrimSpace(text)}
	}

	return steps
}
