package ephemeris

// DesignOffsetDays is the canonical interval between the design instant and
// the birth instant: roughly 88 degrees of mean solar motion.
const DesignOffsetDays = 88.736

// DesignResolver derives the design snapshot from a personality snapshot by
// evaluating the ephemeris a second time at the offset instant.
type DesignResolver struct {
	calc *Calculator
}

// NewDesignResolver returns a resolver backed by calc.
func NewDesignResolver(calc *Calculator) *DesignResolver {
	if calc == nil {
		calc = NewCalculator()
	}
	return &DesignResolver{calc: calc}
}

// Resolve returns the design snapshot for personality.
func (r *DesignResolver) Resolve(personality Snapshot) (Snapshot, error) {
	return r.calc.At(DesignJulianDay(personality.JulianDay), Design)
}

// DesignJulianDay returns the design Julian Day for a birth Julian Day.
func DesignJulianDay(personalityJD float64) float64 {
	return personalityJD - DesignOffsetDays
}

// DesignArc returns the solar arc, in degrees, swept at mean solar motion
// over DesignOffsetDays.
func DesignArc() float64 {
	return DesignOffsetDays * 360 / 365.2422
}
