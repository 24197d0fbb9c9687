package store

import (
	"context"
	"encoding/json"
	"errors"

	"shell-casino/internal/leaderboard"
	"shell-casino/internal/ledger"
)

// SnapshotKey is the fixed key the whole casino state lives under.
// Bump the suffix only for breaking shape changes.
const SnapshotKey = "casino_state_v1"

// Snapshot is the persisted casino state. Pointer fields distinguish
// "absent" from zero so partially-shaped stored payloads apply
// field-by-field and everything missing keeps its default.
type Snapshot struct {
	Balance      *int64              `json:"balance,omitempty"`
	Bet          *int64              `json:"bet,omitempty"`
	TotalWagered *int64              `json:"total_wagered,omitempty"`
	TotalWon     *int64              `json:"total_won,omitempty"`
	GamesPlayed  *int64              `json:"games_played,omitempty"`
	History      []ledger.Entry      `json:"history,omitempty"`
	Leaderboard  []leaderboard.Entry `json:"leaderboard,omitempty"`
}

// SaveSnapshot writes the blob under the fixed key. Persistence is
// best-effort: callers log the error and play on.
func (s *Store) SaveSnapshot(ctx context.Context, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.put(ctx, SnapshotKey, raw)
}

// LoadSnapshot returns nil (and no error) when there is nothing usable
// to restore: missing key and corrupt JSON both fall back to defaults.
func (s *Store) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	raw, err := s.get(ctx, SnapshotKey)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, nil
	}
	return &snap, nil
}

// Int64 is a convenience for building snapshots.
func Int64(v int64) *int64 { return &v }
