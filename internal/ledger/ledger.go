package ledger

import (
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

var ErrInsufficientBalance = errors.New("insufficient_balance")

// HistoryLimit caps retained entries; older ones fall off silently.
const HistoryLimit = 200

// Entry is one append-only history line. Delta is the signed amount
// applied to the balance; for loss bookkeeping it records the stake
// that was already debited up front.
type Entry struct {
	ID           string    `json:"id"`
	Time         time.Time `json:"time"`
	Action       string    `json:"action"`
	Delta        int64     `json:"delta"`
	BalanceAfter int64     `json:"balance_after"`
}

// Ledger owns the spendable shell balance, the lifetime counters and
// the capped newest-first history. It is a plain state container: the
// session controller serializes access and persists after mutations.
type Ledger struct {
	StartingBalance int64
	// Limit overrides HistoryLimit when positive.
	Limit int

	Balance      int64
	TotalWagered int64
	TotalWon     int64
	GamesPlayed  int64
	History      []Entry
}

func New(startingBalance int64) *Ledger {
	return &Ledger{
		StartingBalance: startingBalance,
		Balance:         startingBalance,
	}
}

func (l *Ledger) CanAfford(amount int64) bool {
	return amount > 0 && amount <= l.Balance
}

// Debit takes a stake off the balance without a history line; the
// settlement entry carries the bookkeeping for the whole wager.
func (l *Ledger) Debit(amount int64) error {
	if amount <= 0 || amount > l.Balance {
		return ErrInsufficientBalance
	}
	l.Balance -= amount
	return nil
}

// ApplyDelta adjusts the balance and records the change. It refuses
// any delta that would leave the balance negative and mutates nothing
// on failure.
func (l *Ledger) ApplyDelta(delta int64, action string) (Entry, error) {
	next := l.Balance + delta
	if next < 0 {
		return Entry{}, ErrInsufficientBalance
	}
	l.Balance = next
	return l.push(delta, action), nil
}

// Record appends a bookkeeping entry without touching the balance.
// Loss entries use it: the stake was debited before the draw, so the
// entry's delta is informational (-stake) and BalanceAfter is current.
func (l *Ledger) Record(delta int64, action string) Entry {
	return l.push(delta, action)
}

func (l *Ledger) push(delta int64, action string) Entry {
	entry := Entry{
		ID:           ulid.Make().String(),
		Time:         time.Now().UTC(),
		Action:       action,
		Delta:        delta,
		BalanceAfter: l.Balance,
	}
	l.History = append([]Entry{entry}, l.History...)
	if limit := l.historyLimit(); len(l.History) > limit {
		l.History = l.History[:limit]
	}
	return entry
}

func (l *Ledger) historyLimit() int {
	if l.Limit > 0 {
		return l.Limit
	}
	return HistoryLimit
}

// AddWager bumps the lifetime counters once per resolved wager.
func (l *Ledger) AddWager(amount int64) {
	l.TotalWagered += amount
	l.GamesPlayed++
}

func (l *Ledger) AddWin(amount int64) {
	l.TotalWon += amount
}

// Reset restores the starting balance and clears counters and history.
func (l *Ledger) Reset() {
	l.Balance = l.StartingBalance
	l.TotalWagered = 0
	l.TotalWon = 0
	l.GamesPlayed = 0
	l.History = nil
}
