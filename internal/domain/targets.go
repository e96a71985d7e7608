package domain

// TargetConfig holds the user's goals. A nil field means the target is not set.
type TargetConfig struct {
	Weight          *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
	BodyFatPercent  *float64 `json:"bodyFat,omitempty" validate:"omitempty,gt=0,lte=100"`
	WeekStartWeight *float64 `json:"weekStartWeight,omitempty" validate:"omitempty,gt=0"`
	WeekEndWeight   *float64 `json:"weekEndWeight,omitempty" validate:"omitempty,gt=0"`
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}

// Normalize maps legacy "0 means unset" values onto nil.
func (t TargetConfig) Normalize() TargetConfig {
	return TargetConfig{
		Weight:          positive(t.Weight),
		BodyFatPercent:  positive(t.BodyFatPercent),
		WeekStartWeight: positive(t.WeekStartWeight),
		WeekEndWeight:   positive(t.WeekEndWeight),
	}
}

// Merge returns t with every field that is set in other overwritten.
func (t TargetConfig) Merge(other TargetConfig) TargetConfig {
	if other.Weight != nil {
		t.Weight = other.Weight
	}
	if other.BodyFatPercent != nil {
		t.BodyFatPercent = other.BodyFatPercent
	}
	if other.WeekStartWeight != nil {
		t.WeekStartWeight = other.WeekStartWeight
	}
	if other.WeekEndWeight != nil {
		t.WeekEndWeight = other.WeekEndWeight
	}
	return t
}

func positive(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	c := *v
	return &c
}
