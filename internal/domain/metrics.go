package domain

// CurrentMetrics is the dashboard view of the most recent entry.
type CurrentMetrics struct {
	HasData         bool              `json:"hasData"`
	Latest          *MeasurementEntry `json:"latest"`
	LeanMass        float64           `json:"leanMass"`
	FatMass         float64           `json:"fatMass"`
	Targets         TargetConfig      `json:"targets"`
	WeightProgress  *float64          `json:"weightProgress"`
	BodyFatProgress *float64          `json:"bodyFatProgress"`
}

// LeanMass is weight * (1 - bodyFat/100), or 0 when either input is not positive.
func LeanMass(weight, bodyFatPercent float64) float64 {
	if weight <= 0 || bodyFatPercent <= 0 {
		return 0
	}
	return weight * (1 - bodyFatPercent/100)
}

// FatMass is weight * bodyFat/100, or 0 when either input is not positive.
func FatMass(weight, bodyFatPercent float64) float64 {
	if weight <= 0 || bodyFatPercent <= 0 {
		return 0
	}
	return weight * (bodyFatPercent / 100)
}

// WeightProgress is actual/target*100. It is nil when the target is not set
// or there is no measurement.
func WeightProgress(actual, target *float64) *float64 {
	if actual == nil || target == nil || *target <= 0 {
		return nil
	}
	p := *actual / *target * 100
	return &p
}

// BodyFatProgress is target/actual*100; the ratio approaches 100 as the
// measured body fat falls towards the target. Nil when the target is not set
// or the measured value is not positive.
func BodyFatProgress(actual, target *float64) *float64 {
	if actual == nil || target == nil || *target <= 0 || *actual <= 0 {
		return nil
	}
	p := *target / *actual * 100
	return &p
}

// ComputeCurrentMetrics derives the dashboard metrics from the latest entry.
func ComputeCurrentMetrics(latest *MeasurementEntry, targets TargetConfig) CurrentMetrics {
	m := CurrentMetrics{Targets: targets}
	if latest == nil {
		return m
	}
	e := *latest
	m.HasData = true
	m.Latest = &e
	m.LeanMass = LeanMass(e.Weight, e.BodyFatPercent)
	m.FatMass = FatMass(e.Weight, e.BodyFatPercent)
	m.WeightProgress = WeightProgress(&e.Weight, targets.Weight)
	m.BodyFatProgress = BodyFatProgress(&e.BodyFatPercent, targets.BodyFatPercent)
	return m
}
