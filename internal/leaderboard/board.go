package leaderboard

import (
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultLimit is how many score snapshots survive an insert.
const DefaultLimit = 20

const placeholderName = "Anonymous"

// Entry is one saved score snapshot. Entries are never edited; the
// same name may appear any number of times.
type Entry struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Score int64     `json:"score"`
	Time  time.Time `json:"time"`
}

// Board keeps the top scores, sorted descending and capped.
type Board struct {
	limit   int
	entries []Entry
}

func New(limit int) *Board {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Board{limit: limit}
}

// Record inserts a snapshot, re-sorts and truncates to the cap.
func (b *Board) Record(name string, score int64) Entry {
	name = strings.TrimSpace(name)
	if name == "" {
		name = placeholderName
	}
	entry := Entry{
		ID:    ulid.Make().String(),
		Name:  name,
		Score: score,
		Time:  time.Now().UTC(),
	}
	b.entries = append(b.entries, entry)
	b.settle()
	return entry
}

// Restore replaces the collection from a persisted snapshot. Order and
// cap are re-established rather than trusted.
func (b *Board) Restore(entries []Entry) {
	b.entries = append([]Entry(nil), entries...)
	b.settle()
}

func (b *Board) settle() {
	sort.SliceStable(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
	if len(b.entries) > b.limit {
		b.entries = b.entries[:b.limit]
	}
}

// Entries returns a copy in rank order.
func (b *Board) Entries() []Entry {
	return append([]Entry(nil), b.entries...)
}

func (b *Board) Reset() {
	b.entries = nil
}
