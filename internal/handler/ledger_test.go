package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arenabets/arenabot/internal/domain"
	"github.com/arenabets/arenabot/internal/ledger"
)

type stubLedger struct {
	matchRes *ledger.MatchResult
	tradeRes *ledger.TradeResult
	err      error

	lastStake int
}

func (s *stubLedger) RecordMatch(ctx context.Context, winnerID, winnerName, loserID, loserName string, stake int) (*ledger.MatchResult, error) {
	s.lastStake = stake
	return s.matchRes, s.err
}

func (s *stubLedger) Trade(ctx context.Context, fromID, fromName, toID, toName, item string, quantity int) (*ledger.TradeResult, error) {
	return s.tradeRes, s.err
}

func TestHandleRecordMatch(t *testing.T) {
	t.Run("settles and returns the result", func(t *testing.T) {
		svc := &stubLedger{matchRes: &ledger.MatchResult{WinnerWallet: 500, Payable: 50, Payout: 400}}
		rr := postJSON(t, HandleRecordMatch(svc), `{"winner_id":"w","loser_id":"l","stake":200}`)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 200, svc.lastStake)

		var res ledger.MatchResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
		assert.Equal(t, 400, res.Payout)
	})

	t.Run("maps validation failures to 400", func(t *testing.T) {
		for _, err := range []error{domain.ErrInvalidStake, domain.ErrSameParticipant} {
			svc := &stubLedger{err: err}
			rr := postJSON(t, HandleRecordMatch(svc), `{"winner_id":"w","loser_id":"l","stake":0}`)
			assert.Equal(t, http.StatusBadRequest, rr.Code, "error %v", err)
		}
	})
}

func TestHandleTrade(t *testing.T) {
	t.Run("transfers and returns the result", func(t *testing.T) {
		svc := &stubLedger{tradeRes: &ledger.TradeResult{Item: domain.ItemSukunaFinger, Quantity: 2}}
		rr := postJSON(t, HandleTrade(svc), `{"from_id":"a","to_id":"b","item":"sukuna_finger","quantity":2}`)

		require.Equal(t, http.StatusOK, rr.Code)
		var res ledger.TradeResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
		assert.Equal(t, 2, res.Quantity)
	})

	t.Run("maps insufficient quantity to 400", func(t *testing.T) {
		svc := &stubLedger{err: domain.ErrInsufficientQuantity}
		rr := postJSON(t, HandleTrade(svc), `{"from_id":"a","to_id":"b","item":"sukuna_finger","quantity":5}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
