package domain

// Psychologist represents a professional available for booking
type Psychologist struct {
	ID             string
	Name           string
	Specialization string
	SessionPrice   *float64
	HourlyRate     *float64
	Available      bool
}

// EffectivePrice returns the price charged for one session.
// SessionPrice wins over HourlyRate; both absent means zero (free session).
func (p *Psychologist) EffectivePrice() float64 {
	if p.SessionPrice != nil {
		return *p.SessionPrice
	}
	if p.HourlyRate != nil {
		return *p.HourlyRate
	}
	return 0
}
