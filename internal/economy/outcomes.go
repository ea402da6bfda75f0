package economy

import "github.com/arenabets/arenabot/internal/domain"

// Outcome is the single random event applied to a claim. At most one
// outcome fires per claim: the table is walked once with one draw and
// the first band containing it wins.
type Outcome string

const (
	OutcomeNone       Outcome = "none"
	OutcomeDisaster   Outcome = "disaster"
	OutcomeFinger     Outcome = "sukuna_finger"
	OutcomeGokumonkyo Outcome = "gokumonkyo"
	OutcomeMultiplier Outcome = "multiplier"
)

// weightedOutcome is one band of the claim outcome table.
type weightedOutcome struct {
	outcome Outcome
	chance  float64
}

// outcomeTable builds the claim outcome table. Bands are disjoint by
// construction; everything past the last band is OutcomeNone.
func outcomeTable(disasterChance float64) []weightedOutcome {
	return []weightedOutcome{
		{OutcomeDisaster, disasterChance},
		{OutcomeFinger, SukunaFingerChance},
		{OutcomeGokumonkyo, GokumonkyoChance},
		{OutcomeMultiplier, MultiplierChance},
	}
}

// rollOutcome maps one draw from [0,1) onto the table.
func rollOutcome(table []weightedOutcome, roll float64) Outcome {
	cumulative := 0.0
	for _, band := range table {
		cumulative += band.chance
		if roll < cumulative {
			return band.outcome
		}
	}
	return OutcomeNone
}

// droppedItem returns the inventory item kind for an item-drop outcome,
// or "" when the outcome drops nothing.
func droppedItem(o Outcome) string {
	switch o {
	case OutcomeFinger:
		return domain.ItemSukunaFinger
	case OutcomeGokumonkyo:
		return domain.ItemGokumonkyo
	default:
		return ""
	}
}
