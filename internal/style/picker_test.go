package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sup-chat/backend/internal/model"
)

func TestProfiles(t *testing.T) {
	all := Profiles()
	require.Len(t, all, 30)

	families := map[any]bool{}
	for _, p := range all {
		for _, key := range []string{"fontFamily", "fontSize", "color", "textShadow", "background", "border"} {
			assert.NotEmpty(t, p[key], "profile %v is missing %s", p["fontFamily"], key)
		}
		families[p["fontFamily"]] = true
	}
	assert.Len(t, families, len(all), "font families should not repeat")
}

func TestRandomPicker_PicksFromTable(t *testing.T) {
	picker := NewRandomPicker()
	all := Profiles()

	for i := 0; i < 200; i++ {
		assert.Contains(t, all, picker.Pick())
	}
}

func TestRandomPicker_UsesIndex(t *testing.T) {
	picker := NewRandomPicker()
	picker.intn = func(n int) int { return n - 1 }

	assert.Equal(t, profiles[len(profiles)-1], picker.Pick())
}

func TestRandomPicker_ReturnsCopy(t *testing.T) {
	picker := NewRandomPicker()
	picker.intn = func(int) int { return 0 }

	picked := picker.Pick()
	picked["color"] = "#000000"

	assert.Equal(t, "#FF6B35", picker.Pick()["color"])
	assert.IsType(t, model.FontStyle{}, picked)
}
