package analytics

import "math"

// ComfortIndices holds Fanger's thermal comfort pair. PMV is the
// predicted mean vote on the -3 (cold) to +3 (hot) scale; PPD the
// predicted percentage dissatisfied.
type ComfortIndices struct {
	PMV float64 `json:"pmv"`
	PPD float64 `json:"ppd"`
}

// Fixed occupant assumptions for a grow-room operator.
const (
	comfortHumidity = 50.0 // % relative humidity
	metabolicRate   = 1.2  // met, light standing work
	clothingIndex   = 0.5  // clo, light indoor clothing
)

// Comfort evaluates a simplified Fanger comfort model from the
// grid-average air temperature (°C) and speed (m/s). PMV is clamped
// to [-3, 3].
func Comfort(avgTempC, avgSpeed float64) ComfortIndices {
	pmv := predictedMeanVote(avgTempC, avgSpeed)
	return ComfortIndices{
		PMV: pmv,
		PPD: predictedDissatisfied(pmv),
	}
}

// predictedMeanVote uses the Rohles linear correlation of Fanger's
// model for sedentary-to-light activity (1.2 met, 0.5 clo), with an
// air-movement offset above still-air speeds.
func predictedMeanVote(tempC, speed float64) float64 {
	// Water vapor partial pressure in kPa at the assumed humidity.
	saturation := 0.6105 * math.Exp(17.27*tempC/(237.7+tempC))
	vapor := comfortHumidity / 100 * saturation

	pmv := 0.245*tempC + 0.248*vapor - 6.475

	// Air movement beyond 0.1 m/s reads as cooling.
	if speed > 0.1 {
		pmv -= 0.5 * (speed - 0.1)
	}

	return clamp(pmv, -3, 3)
}

// predictedDissatisfied is Fanger's PPD curve; it bottoms out at 5%
// for a neutral vote.
func predictedDissatisfied(pmv float64) float64 {
	return 100 - 95*math.Exp(-0.03353*math.Pow(pmv, 4)-0.2179*pmv*pmv)
}
