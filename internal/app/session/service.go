package session

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"shell-casino/internal/game"
	"shell-casino/internal/leaderboard"
	"shell-casino/internal/ledger"
	"shell-casino/internal/store"
)

// Service is the session controller: it owns the ledger, the
// leaderboard and the only in-progress flag in the system, validates
// every action before any state moves, and snapshots to the store
// after each confirmed mutation. The store is optional; without one
// the session is memory-only.
type Service struct {
	mu  sync.Mutex
	cfg Config

	led   *ledger.Ledger
	board *leaderboard.Board
	st    *store.Store

	rng       *rand.Rand
	drawReels func() game.Reels
	drawSide  func() game.Side
	drawFloat func() float64

	bet        int64
	reels      game.Reels
	lastResult string
	resolving  bool
	pending    *pendingSpin
	closed     bool
}

// pendingSpin is an armed settlement timer. The stake is gone the
// moment it exists; whoever clears s.pending settles, nobody else
// does, so settlement runs exactly once.
type pendingSpin struct {
	id    string
	bet   int64
	timer *time.Timer
}

func New(cfg Config, st *store.Store) *Service {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s := &Service{
		cfg:   cfg,
		led:   ledger.New(cfg.StartingBalance),
		board: leaderboard.New(cfg.LeaderboardLimit),
		st:    st,
		rng:   rng,
		bet:   cfg.DefaultBet,
	}
	s.led.Limit = cfg.HistoryLimit
	s.drawReels = func() game.Reels { return game.DrawReels(s.rng) }
	s.drawSide = func() game.Side { return game.DrawSide(s.rng) }
	s.drawFloat = s.rng.Float64
	s.restore()
	return s
}

// restore applies a persisted snapshot field-by-field; anything absent
// or unreadable keeps its default.
func (s *Service) restore() {
	if s.st == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	snap, err := s.st.LoadSnapshot(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("load snapshot failed, starting fresh")
		return
	}
	if snap == nil {
		return
	}
	if snap.Balance != nil && *snap.Balance >= 0 {
		s.led.Balance = *snap.Balance
	}
	if snap.Bet != nil && *snap.Bet > 0 {
		s.bet = *snap.Bet
	}
	if snap.TotalWagered != nil {
		s.led.TotalWagered = *snap.TotalWagered
	}
	if snap.TotalWon != nil {
		s.led.TotalWon = *snap.TotalWon
	}
	if snap.GamesPlayed != nil {
		s.led.GamesPlayed = *snap.GamesPlayed
	}
	if snap.History != nil {
		s.led.History = snap.History
	}
	if snap.Leaderboard != nil {
		s.board.Restore(snap.Leaderboard)
	}
}

// persistLocked snapshots the session. Best-effort: a failing store is
// logged and gameplay continues on the in-memory state.
func (s *Service) persistLocked() {
	if s.st == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	snap := store.Snapshot{
		Balance:      store.Int64(s.led.Balance),
		Bet:          store.Int64(s.bet),
		TotalWagered: store.Int64(s.led.TotalWagered),
		TotalWon:     store.Int64(s.led.TotalWon),
		GamesPlayed:  store.Int64(s.led.GamesPlayed),
		History:      s.led.History,
		Leaderboard:  s.board.Entries(),
	}
	if err := s.st.SaveSnapshot(ctx, snap); err != nil {
		log.Warn().Err(err).Msg("snapshot save failed")
	}
}

// SpinSlots starts a slot spin: validate, debit the stake, arm the
// settlement timer. The resolving flag is up before any timed work
// starts and a second spin is rejected until settlement clears it.
func (s *Service) SpinSlots(bet int64) (*SpinResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	if s.resolving {
		return nil, ErrSpinInProgress
	}
	if bet <= 0 || bet < s.cfg.MinBet {
		return nil, ErrInvalidBet
	}
	if !s.led.CanAfford(bet) {
		return nil, ErrInsufficientBalance
	}

	if err := s.led.Debit(bet); err != nil {
		return nil, ErrInsufficientBalance
	}
	s.led.AddWager(bet)
	s.resolving = true
	s.lastResult = ""
	s.bet = bet

	res := &SpinResult{
		ID:         store.NewID(),
		Bet:        bet,
		Balance:    s.led.Balance,
		DurationMS: s.cfg.SpinDuration.Milliseconds(),
		TickMS:     s.cfg.SpinTick.Milliseconds(),
	}
	if n := s.frameCount(); n > 0 {
		frames := game.ReelFrames(s.rng, n)
		res.Frames = make([][]string, len(frames))
		for i, f := range frames {
			res.Frames[i] = f.Strings()
		}
	}

	if s.cfg.SpinDuration <= 0 {
		out := s.settleSpinLocked(bet)
		res.Outcome = out
		res.Balance = s.led.Balance
	} else {
		p := &pendingSpin{id: res.ID, bet: bet}
		p.timer = time.AfterFunc(s.cfg.SpinDuration, func() { s.completeSpin(p) })
		s.pending = p
	}
	s.persistLocked()
	return res, nil
}

func (s *Service) frameCount() int {
	if s.cfg.SpinTick <= 0 || s.cfg.SpinDuration <= 0 {
		return 0
	}
	return int(s.cfg.SpinDuration / s.cfg.SpinTick)
}

func (s *Service) completeSpin(p *pendingSpin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != p {
		return
	}
	s.pending = nil
	s.settleSpinLocked(p.bet)
	s.persistLocked()
}

// settleSpinLocked makes the authoritative draw and settles. The
// cosmetic frames handed out earlier have no say here.
func (s *Service) settleSpinLocked(bet int64) *Result {
	reels := s.drawReels()
	s.reels = reels
	out := game.EvalSlots(reels, bet, s.cfg.Slots)
	s.settleOutcomeLocked(out, bet)
	s.resolving = false
	return &Result{
		Game:    out.Game,
		Win:     out.Win,
		Payout:  out.Payout,
		Message: s.lastResult,
		Reels:   reels.Strings(),
		Balance: s.led.Balance,
	}
}

// TossCoin resolves a coin toss synchronously.
func (s *Service) TossCoin(choice game.Side, wager int64) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardWagerLocked(wager); err != nil {
		return nil, err
	}
	if choice != game.Heads && choice != game.Tails {
		return nil, ErrInvalidChoice
	}

	_ = s.led.Debit(wager)
	s.led.AddWager(wager)

	flip := s.drawSide()
	out := game.EvalToss(flip, choice, wager)
	s.settleOutcomeLocked(out, wager)
	s.persistLocked()
	return &Result{
		Game:    out.Game,
		Win:     out.Win,
		Payout:  out.Payout,
		Message: s.lastResult,
		Flip:    string(flip),
		Balance: s.led.Balance,
	}, nil
}

// TossWell drops a contribution into the wishing well.
func (s *Service) TossWell(amount int64) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guardWagerLocked(amount); err != nil {
		return nil, err
	}

	_ = s.led.Debit(amount)
	s.led.AddWager(amount)

	out := game.EvalWell(s.drawFloat(), amount, s.cfg.Well)
	s.settleOutcomeLocked(out, amount)
	s.persistLocked()
	return &Result{
		Game:    out.Game,
		Win:     out.Win,
		Payout:  out.Payout,
		Message: s.lastResult,
		Balance: s.led.Balance,
	}, nil
}

func (s *Service) guardWagerLocked(amount int64) error {
	if s.closed {
		return ErrClosed
	}
	if s.resolving {
		return ErrSpinInProgress
	}
	if amount <= 0 {
		return ErrInvalidBet
	}
	if !s.led.CanAfford(amount) {
		return ErrInsufficientBalance
	}
	return nil
}

// settleOutcomeLocked applies the win-or-loss bookkeeping shared by all
// engines: credit plus history on a win, a loss line otherwise. The
// stake was debited before the draw.
func (s *Service) settleOutcomeLocked(out game.Outcome, stake int64) {
	if out.Win {
		s.led.AddWin(out.Payout)
		if _, err := s.led.ApplyDelta(out.Payout, out.Label); err != nil {
			// Positive deltas cannot overdraw; keep the invariant loud.
			log.Error().Err(err).Int64("payout", out.Payout).Msg("credit rejected")
		}
		s.lastResult = fmt.Sprintf("%s +%d shells", out.Label, out.Payout)
	} else {
		s.led.Record(-stake, out.Label)
		s.lastResult = out.Label
	}
}

// AdjustBet moves the slot bet by delta, clamped to [minBet, balance].
func (s *Service) AdjustBet(delta int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.bet + delta
	if next > s.led.Balance {
		next = s.led.Balance
	}
	if next < s.cfg.MinBet {
		next = s.cfg.MinBet
	}
	s.bet = next
	s.persistLocked()
	return next
}

// Buy purchases a cosmetic shop item. Not a wager: no counters, just a
// debit with its history line.
func (s *Service) Buy(itemID string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	var item *Item
	for i := range shopItems {
		if shopItems[i].ID == itemID {
			item = &shopItems[i]
			break
		}
	}
	if item == nil {
		return nil, ErrUnknownItem
	}
	if !s.led.CanAfford(item.Price) {
		return nil, ErrInsufficientBalance
	}
	if _, err := s.led.ApplyDelta(-item.Price, "Bought "+item.Name); err != nil {
		return nil, ErrInsufficientBalance
	}
	s.lastResult = "Purchased " + item.Name
	s.persistLocked()
	return &Result{Game: "shop", Message: s.lastResult, Balance: s.led.Balance}, nil
}

// SaveScore snapshots the current balance onto the leaderboard.
func (s *Service) SaveScore(name string) leaderboard.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.board.Record(name, s.led.Balance)
	s.persistLocked()
	return entry
}

func (s *Service) Leaderboard() []leaderboard.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Entries()
}

// History returns up to limit newest-first entries.
func (s *Service) History(limit int) []ledger.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.led.History
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return append([]ledger.Entry(nil), entries...)
}

// Reset restores defaults. A pending spin is abandoned: the stake was
// taken when the spin started and reset wipes the slate anyway.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelPendingLocked()
	s.resolving = false
	s.led.Reset()
	s.board.Reset()
	s.bet = s.cfg.DefaultBet
	s.reels = game.Reels{}
	s.lastResult = ""
	s.persistLocked()
}

// Close tears the session down. A spin still in flight settles now,
// once, instead of leaking its timer; debit-first means there is never
// a refund path.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if p := s.cancelPendingLocked(); p != nil {
		s.settleSpinLocked(p.bet)
		s.persistLocked()
	}
	s.closed = true
}

// cancelPendingLocked disarms the spin timer and hands back the spin
// if settlement had not run yet.
func (s *Service) cancelPendingLocked() *pendingSpin {
	p := s.pending
	if p == nil {
		return nil
	}
	s.pending = nil
	p.timer.Stop()
	return p
}

// State renders the session for the client.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Balance:      s.led.Balance,
		Bet:          s.bet,
		MinBet:       s.cfg.MinBet,
		BetStep:      s.cfg.BetStep,
		TotalWagered: s.led.TotalWagered,
		TotalWon:     s.led.TotalWon,
		GamesPlayed:  s.led.GamesPlayed,
		Resolving:    s.resolving,
		Reels:        s.reels.Strings(),
		LastResult:   s.lastResult,
		History:      append([]ledger.Entry(nil), s.led.History...),
	}
}
