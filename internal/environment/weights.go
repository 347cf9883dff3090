package environment

// WeightConfig holds the smoothstep edges that split the continuous sun
// elevation into night / sunset / day blend weights, plus the near-horizon
// color temperature bias. The edges are art parameters, not physics; tune
// them per scene.
type WeightConfig struct {
	NightEdgeLow  float32 `json:"nightEdgeLow"`  // elevation (deg) below which it is fully night
	NightEdgeHigh float32 `json:"nightEdgeHigh"` // elevation (deg) above which night weight is zero
	DayEdgeLow    float32 `json:"dayEdgeLow"`    // elevation (deg) where high-day weight starts
	DayEdgeHigh   float32 `json:"dayEdgeHigh"`   // elevation (deg) where high-day weight saturates

	HorizonEdgeLow  float32 `json:"horizonEdgeLow"`  // elevation (deg) below which the sun is fully "at the horizon"
	HorizonEdgeHigh float32 `json:"horizonEdgeHigh"` // elevation (deg) above which the horizon bias vanishes
	HorizonKelvin   float32 `json:"horizonKelvin"`   // warm temperature the sun is biased toward near the horizon
	HorizonStrength float32 `json:"horizonStrength"` // 0..1, how far toward HorizonKelvin the bias pulls
}

// DefaultWeightConfig returns the edges used by the harbor scene.
func DefaultWeightConfig() WeightConfig {
	return WeightConfig{
		NightEdgeLow:    -6,
		NightEdgeHigh:   6,
		DayEdgeLow:      15,
		DayEdgeHigh:     35,
		HorizonEdgeLow:  5,
		HorizonEdgeHigh: 25,
		HorizonKelvin:   2600,
		HorizonStrength: 0.85,
	}
}

// Weights are the derived blend weights for one elevation. Night and HighDay
// come straight from smoothstep; Sunset fills the gap between them, so the
// three are mutually exclusive-ish by construction.
type Weights struct {
	Night   float32
	Sunset  float32
	HighDay float32
	Horizon float32
}

// Evaluate computes the blend weights for a sun elevation in degrees.
func (c WeightConfig) Evaluate(elevation float32) Weights {
	night := 1 - Smoothstep(c.NightEdgeLow, c.NightEdgeHigh, elevation)
	highDay := Smoothstep(c.DayEdgeLow, c.DayEdgeHigh, elevation)
	return Weights{
		Night:   night,
		Sunset:  (1 - night) * (1 - highDay),
		HighDay: highDay,
		Horizon: 1 - Smoothstep(c.HorizonEdgeLow, c.HorizonEdgeHigh, elevation),
	}
}

// BiasedKelvin warms the sun's color temperature as the interpolated
// elevation nears the horizon. The bias is a function of elevation alone,
// independent of which preset transition is in flight, so intermediate
// elevations stay plausible mid-transition. The bias only ever lowers the
// temperature: a preset already warmer than HorizonKelvin is left alone.
func (c WeightConfig) BiasedKelvin(kelvin, elevation float32) float32 {
	w := (1 - Smoothstep(c.HorizonEdgeLow, c.HorizonEdgeHigh, elevation)) * c.HorizonStrength
	biased := Lerp(kelvin, c.HorizonKelvin, w)
	if biased > kelvin {
		return kelvin
	}
	return biased
}
