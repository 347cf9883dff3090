package animator

import (
	"github.com/fumi-217/acg-tokyo-tower/internal/environment"
	"github.com/fumi-217/acg-tokyo-tower/internal/renderer"
)

// UpdateStars publishes the interpolated star opacity and the twinkle clock
// to the star field. The per-star shimmer itself runs on the GPU.
func UpdateStars(stars *renderer.StarField, snap environment.Snapshot, clock float64) {
	if stars == nil {
		return
	}
	stars.Opacity = snap.StarOpacity
	stars.Time = float32(clock)
}
