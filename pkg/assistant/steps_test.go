package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentStepsNumberedList(t *testing.T) {
	reply := "1. Preheat the oven to 180C\n2. Mix the flour and eggs\n3. Bake"

	steps := SegmentSteps(reply)

	assert.Equal(t, []string{
		"Preheat the oven to 180C",
		"Mix the flour and eggs",
		"Bake",
	}, steps)
}

func TestSegmentStepsBulletMarkers(t *testing.T) {
	reply := "Here is how:\n- Chop the onions\n- Saute until golden\n* Season to taste"

	steps := SegmentSteps(reply)

	assert.Equal(t, []string{
		"Here is how:",
		"Chop the onions",
		"Saute until golden",
		"Season to taste",
	}, steps)
}

func TestSegmentStepsNoMarkersFallsBackToWholeText(t *testing.T) {
	reply := "  Just stir everything together and serve  "

	steps := SegmentSteps(reply)

	assert.Equal(t, []string{"Just stir everything together and serve"}, steps)
}

func TestSegmentStepsCapsAtTen(t *testing.T) {
	reply := ""
	for i := 0; i < 15; i++ {
		reply += "1. Do something useful here\n"
	}

	steps := SegmentSteps(reply)

	assert.Len(t, steps, 10)
}

func TestSegmentStepsDropsMarkerNoise(t *testing.T) {
	reply := "1. \n2. Whisk the eggs\n3. ok\n4. Serve warm"

	steps := SegmentSteps(reply)

	assert.Equal(t, []string{"Whisk the eggs", "Serve warm"}, steps)
}
