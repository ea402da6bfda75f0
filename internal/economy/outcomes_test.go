package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollOutcome_Bands(t *testing.T) {
	table := outcomeTable(DefaultDisasterChance)

	tests := []struct {
		roll float64
		want Outcome
	}{
		{0.0, OutcomeDisaster},
		{0.049, OutcomeDisaster},
		{0.05, OutcomeFinger},
		{0.079, OutcomeFinger},
		{0.08, OutcomeGokumonkyo},
		{0.099, OutcomeGokumonkyo},
		{0.10, OutcomeMultiplier},
		{0.149, OutcomeMultiplier},
		{0.15, OutcomeNone},
		{0.99, OutcomeNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rollOutcome(table, tt.roll), "roll %v", tt.roll)
	}
}

func TestRollOutcome_ZeroDisasterShiftsBands(t *testing.T) {
	table := outcomeTable(0)

	assert.Equal(t, OutcomeFinger, rollOutcome(table, 0.0))
	assert.Equal(t, OutcomeNone, rollOutcome(table, 0.11))
}

func TestDroppedItem(t *testing.T) {
	assert.Equal(t, "sukuna_finger", droppedItem(OutcomeFinger))
	assert.Equal(t, "gokumonkyo", droppedItem(OutcomeGokumonkyo))
	assert.Empty(t, droppedItem(OutcomeMultiplier))
	assert.Empty(t, droppedItem(OutcomeNone))
}
