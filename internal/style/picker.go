// Package style selects the presentation profile an AI reply is rendered with.
// Profiles are opaque to the rest of the backend.
package style

import (
	"maps"
	"math/rand/v2"

	"sup-chat/backend/internal/model"
)

// Picker chooses a presentation profile for a message.
type Picker interface {
	Pick() model.FontStyle
}

// RandomPicker picks uniformly from a fixed set of profiles. Safe for concurrent use.
type RandomPicker struct {
	profiles []model.FontStyle
	intn     func(n int) int
}

// NewRandomPicker returns a picker over the built-in comic profiles.
func NewRandomPicker() *RandomPicker {
	return &RandomPicker{profiles: profiles, intn: rand.IntN}
}

// Pick returns a copy so callers may not mutate the shared table.
func (p *RandomPicker) Pick() model.FontStyle {
	return maps.Clone(p.profiles[p.intn(len(p.profiles))])
}

// Profiles returns a copy of every profile the picker can return.
func Profiles() []model.FontStyle {
	out := make([]model.FontStyle, len(profiles))
	for i, p := range profiles {
		out[i] = maps.Clone(p)
	}
	return out
}
