package economy

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenabets/arenabot/internal/domain"
	"github.com/arenabets/arenabot/internal/gate"
	"github.com/arenabets/arenabot/internal/recorder"
	"github.com/arenabets/arenabot/internal/store"
)

// rollNone lands past every outcome band.
func rollNone() float64 { return 0.99 }

func testStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	return st
}

// testService builds the engine over a real store with a pinned clock and
// a pinned draw. Both can be reassigned between claims.
func testService(t *testing.T, st *store.Store) *service {
	t.Helper()
	g, err := gate.New(gate.DefaultConfig())
	require.NoError(t, err)
	return &service{
		players:        st,
		state:          st,
		gate:           g,
		recorder:       recorder.NewNoopRecorder(),
		baseReward:     DefaultBaseReward,
		disasterChance: DefaultDisasterChance,
		maxWallet:      DefaultMaxWallet,
		rnd:            rollNone,
		now:            func() time.Time { return sunday(t, 5) },
	}
}

// sunday returns midday on the given January 2025 day in the service
// timezone. The 5th, 12th, 19th and 26th are Sundays.
func sunday(t *testing.T, day int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return time.Date(2025, time.January, day, 12, 0, 0, 0, loc)
}

func seedPlayer(t *testing.T, st *store.Store, id string, mutate func(*domain.Player)) {
	t.Helper()
	require.NoError(t, st.UpdatePlayer(context.Background(), id, id, func(p *domain.Player) error {
		mutate(p)
		return nil
	}))
}

func TestClaimWeekly_FirstClaim(t *testing.T) {
	st := testStore(t)
	svc := testService(t, st)

	res, err := svc.ClaimWeekly(context.Background(), "u1", "alice", false)
	require.NoError(t, err)

	assert.Equal(t, 270, res.Delta)
	assert.Equal(t, 270, res.Wallet)
	assert.Equal(t, 1, res.Streak)
	assert.Equal(t, OutcomeNone, res.Outcome)
	assert.False(t, res.StreakBonus)
	assert.Empty(t, res.ItemDropped)

	p, err := st.GetPlayer(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-05", p.LastWorkDate)
}

func TestClaimWeekly_SecondClaimSameDateRejected(t *testing.T) {
	st := testStore(t)
	svc := testService(t, st)
	ctx := context.Background()

	_, err := svc.ClaimWeekly(ctx, "u1", "alice", false)
	require.NoError(t, err)

	_, err = svc.ClaimWeekly(ctx, "u1", "alice", false)
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)

	p, err := st.GetPlayer(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 270, p.Wallet, "rejected claim must not pay")
}

func TestClaimWeekly_WindowClosed(t *testing.T) {
	st := testStore(t)
	svc := testService(t, st)
	svc.now = func() time.Time { return sunday(t, 5).AddDate(0, 0, 1) } // Monday

	_, err := svc.ClaimWeekly(context.Background(), "u1", "alice", false)
	assert.ErrorIs(t, err, domain.ErrWindowClosed)
}

func TestClaimWeekly_PrivilegedBypassesWindowOnly(t *testing.T) {
	st := testStore(t)
	svc := testService(t, st)
	svc.now = func() time.Time { return sunday(t, 5).AddDate(0, 0, 1) } // Monday
	ctx := context.Background()

	res, err := svc.ClaimWeekly(ctx, "admin", "admin", true)
	require.NoError(t, err)
	assert.Equal(t, 270, res.Wallet)

	// The one-claim-per-date guard still applies to privileged callers.
	_, err = svc.ClaimWeekly(ctx, "admin", "admin", true)
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
}

func TestClaimWeekly_OverrideOpensWindow(t *testing.T) {
	st := testStore(t)
	svc := testService(t, st)
	svc.now = func() time.Time { return sunday(t, 5).AddDate(0, 0, 3) } // Wednesday

	open := true
	require.NoError(t, st.SetOverride(context.Background(), &open))

	res, err := svc.ClaimWeekly(context.Background(), "u1", "alice", false)
	require.NoError(t, err)
	assert.Equal(t, 270, res.Wallet)
}

func TestClaimWeekly_ThreeConsecutiveSundays(t *testing.T) {
	st := testStore(t)
	svc := testService(t, st)
	ctx := context.Background()

	wallets := []int{270, 540, 910} // third week carries the streak bonus
	for i, day := range []int{5, 12, 19} {
		svc.now = func() time.Time { return sunday(t, day) }
		res, err := svc.ClaimWeekly(ctx, "u1", "alice", false)
		require.NoError(t, err)
		assert.Equal(t, i+1, res.Streak)
		assert.Equal(t, wallets[i], res.Wallet)
		assert.Equal(t, i == 2, res.StreakBonus)
	}
}

func TestClaimWeekly_StreakContinuesOnlyOnSevenDayGap(t *testing.T) {
	tests := []struct {
		name         string
		lastWorkDate string
		wantStreak   int
	}{
		{"exactly seven days", "2025-01-05", 4},
		{"six days", "2025-01-06", 1},
		{"eight days", "2025-01-04", 1},
		{"two weeks", "2024-12-29", 1},
		{"never claimed", "", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testStore(t)
			svc := testService(t, st)
			svc.now = func() time.Time { return sunday(t, 12) }

			seedPlayer(t, st, "u1", func(p *domain.Player) {
				p.Streak = 3
				p.LastWorkDate = tt.lastWorkDate
			})

			res, err := svc.ClaimWeekly(context.Background(), "u1", "alice", false)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStreak, res.Streak)
		})
	}
}

func TestClaimWeekly_Disaster(t *testing.T) {
	st := testStore(t)
	svc := testService(t, st)
	svc.rnd = func() float64 { return 0.01 }

	seedPlayer(t, st, "u1", func(p *domain.Player) {
		p.Wallet = 500
		p.Streak = 2
		p.LastWorkDate = "2024-12-29"
	})

	res, err := svc.ClaimWeekly(context.Background(), "u1", "alice", false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeDisaster, res.Outcome)
	assert.Equal(t, -150, res.Delta)
	assert.Equal(t, 350, res.Wallet)
	assert.Equal(t, 0, res.Streak)
	assert.False(t, res.StreakBonus)
	assert.Contains(t, res.Events, domain.EventDisaster)
}

func TestClaimWeekly_DisasterFloorsWalletAtZero(t *testing.T) {
	st := testStore(t)
	svc := testService(t, st)
	svc.rnd = func() float64 { return 0.01 }

	seedPlayer(t, st, "u1", func(p *domain.Player) { p.Wallet = 40 })

	res, err := svc.ClaimWeekly(context.Background(), "u1", "alice", false)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Wallet)
	assert.Equal(t, -40, res.Delta, "delta reports the applied change, not the penalty")
}

func TestClaimWeekly_Multiplier(t *testing.T) {
	st := testStore(t)
	svc := testService(t, st)
	svc.rnd = func() float64 { return 0.12 }

	res, err := svc.ClaimWeekly(context.Background(), "u1", "alice", false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeMultiplier, res.Outcome)
	assert.Equal(t, 405, res.Delta) // round(270 * 1.5)
	assert.Contains(t, res.Events, domain.EventMultiplier)
}

func TestClaimWeekly_MultiplierAppliesAfterStreakBonus(t *testing.T) {
	st := testStore(t)
	svc := testService(t, st)
	svc.rnd = func() float64 { return 0.12 }
	svc.now = func() time.Time { return sunday(t, 12) }

	seedPlayer(t, st, "u1", func(p *domain.Player) {
		p.Streak = 2
		p.LastWorkDate = "2025-01-05"
	})

	res, err := svc.ClaimWeekly(context.Background(), "u1", "alice", false)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Streak)
	assert.True(t, res.StreakBonus)
	assert.Equal(t, 555, res.Delta) // round((270+100) * 1.5)
}

func TestClaimWeekly_ItemDrops(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		item string
	}{
		{"sukuna finger band", 0.06, domain.ItemSukunaFinger},
		{"gokumonkyo band", 0.09, domain.ItemGokumonkyo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testStore(t)
			svc := testService(t, st)
			svc.rnd = func() float64 { return tt.roll }
			ctx := context.Background()

			res, err := svc.ClaimWeekly(ctx, "u1", "alice", false)
			require.NoError(t, err)
			assert.Equal(t, tt.item, res.ItemDropped)
			assert.Equal(t, 270, res.Delta, "an item drop does not change the payout")
			assert.Contains(t, res.Events, domain.EventItemDrop)

			p, err := st.GetPlayer(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, 1, p.ItemCount(tt.item))
		})
	}
}

func TestClaimWeekly_WalletCap(t *testing.T) {
	st := testStore(t)
	svc := testService(t, st)

	seedPlayer(t, st, "u1", func(p *domain.Player) { p.Wallet = 4900 })

	res, err := svc.ClaimWeekly(context.Background(), "u1", "alice", false)
	require.NoError(t, err)
	assert.Equal(t, 5000, res.Wallet)
	assert.Equal(t, 100, res.Delta)
}
