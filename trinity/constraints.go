package trinity

// Goal is one leg of the trilemma.
type Goal string

const (
	GoalMI   Goal = "mi"   // monetary independence
	GoalERS  Goal = "ers"  // exchange rate stability
	GoalKAO  Goal = "kao"  // capital account openness
	GoalNone Goal = "none" // nothing violated
)

// Severity is the coarse regime classification shared by both models.
type Severity string

const (
	SeverityStable  Severity = "stable"
	SeverityWarning Severity = "warning"
	SeverityCrisis  Severity = "crisis"
)

// Rank orders severities so callers can compare them.
func (s Severity) Rank() int {
	switch s {
	case SeverityWarning:
		return 1
	case SeverityCrisis:
		return 2
	default:
		return 0
	}
}

// Constraints are the thresholds a regime is judged against.
type Constraints struct {
	MinReserves         float64 `json:"minReserves"`         // billions
	MaxVolatility       float64 `json:"maxVolatility"`       // percent
	MaxRateDifferential float64 `json:"maxRateDifferential"` // percentage points
}

// DefaultConstraints are the fixed thresholds used by RunSnapshot.
var DefaultConstraints = Constraints{
	MinReserves:         20,
	MaxVolatility:       15,
	MaxRateDifferential: 3,
}

// Model constants shared by the snapshot and time-series formulas.
const (
	flowScale      = 10   // rate differential x openness -> flow pressure
	rateImpact     = 50   // snapshot exchange-rate move per unit of flow
	volatilityBand = 5.0  // managed float band (%), the volatility floor
	snapshotVolCap = 20.0 // snapshot volatility ceiling
	outflowDrain   = 0.5  // reserves spent per unit of outflow
	inflowGain     = 0.3  // reserves gained per unit of inflow

	MinExchangeRate = 20000.0
	MaxExchangeRate = 30000.0
)

// Violations flags which goals are breached.
type Violations struct {
	MI  bool `json:"mi"`
	ERS bool `json:"ers"`
	KAO bool `json:"kao"`
}

// Constraint is the classification attached to a snapshot.
type Constraint struct {
	MostViolated Goal       `json:"mostViolated"`
	Severity     Severity   `json:"severity"`
	Violations   Violations `json:"violations"`
}

// Classify evaluates the constraints in a fixed order: the MI check runs first
// and the ERS check, when violated, overwrites its label and severity.
func (c Constraints) Classify(rateDifferential, volatility, newReserves float64) Constraint {
	rd := abs(rateDifferential)

	out := Constraint{
		MostViolated: GoalNone,
		Severity:     SeverityStable,
		Violations: Violations{
			MI:  rd > c.MaxRateDifferential,
			ERS: volatility > c.MaxVolatility || newReserves < c.MinReserves,
			KAO: false, // openness is the policy lever
		},
	}

	if out.Violations.MI {
		out.MostViolated = GoalMI
		out.Severity = SeverityWarning
		if rd > c.MaxRateDifferential*2 {
			out.Severity = SeverityCrisis
		}
	}

	if out.Violations.ERS {
		out.MostViolated = GoalERS
		switch {
		case newReserves < c.MinReserves:
			out.Severity = SeverityCrisis
		case volatility > c.MaxVolatility*1.5:
			out.Severity = SeverityCrisis
		default:
			out.Severity = SeverityWarning
		}
	}

	return out
}
