package account

import (
	"iter"
	"strings"
	"time"

	"github.com/amirasaad/minibank/pkg/domain/money"
)

// Entry is one recorded transaction: what kind it was, how much, and when.
type Entry struct {
	Kind   Kind
	Amount money.Money
	At     time.Time
}

// History is the append-only record of the transactions successfully
// executed against one account. It is created with the account and never
// detached from it. Insertion order equals chronological order.
type History struct {
	entries []Entry
	clock   func() time.Time
}

func newHistory(clock func() time.Time) *History {
	if clock == nil {
		clock = time.Now
	}
	return &History{clock: clock}
}

// Record appends an entry stamped with the current time. It must be called
// only after the corresponding balance mutation has succeeded; failed
// transactions are never recorded.
func (h *History) Record(kind Kind, amount money.Money) {
	h.entries = append(h.entries, Entry{Kind: kind, Amount: amount, At: h.clock()})
}

// Len returns the number of recorded entries.
func (h *History) Len() int { return len(h.entries) }

// Report yields the recorded entries in chronological order. A non-empty
// kindFilter keeps only entries whose kind matches, case-insensitively.
// The sequence is a snapshot of the history at call time; each call
// produces a fresh, restartable sequence.
func (h *History) Report(kindFilter string) iter.Seq[Entry] {
	entries := h.entries
	return func(yield func(Entry) bool) {
		for _, e := range entries {
			if kindFilter != "" && !strings.EqualFold(kindFilter, e.Kind.String()) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// WithdrawalsOn counts the withdrawal entries recorded on the same calendar
// day as the given time. The checking account's daily cap is computed from
// this so the ledger stays the single source of truth.
func (h *History) WithdrawalsOn(day time.Time) int {
	count := 0
	for _, e := range h.entries {
		if e.Kind == KindWithdrawal && sameDay(e.At, day) {
			count++
		}
	}
	return count
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
