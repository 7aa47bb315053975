package validation

import "time"

// Outcome tags a recorded validation attempt. Open vocabulary.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomeWarning Outcome = "warning"
)

// Entry is one recorded validation attempt.
type Entry struct {
	ValidatorID string    `json:"validatorId"`
	Timestamp   time.Time `json:"timestamp"`
	Outcome     Outcome   `json:"outcome"`
}

// History is the append-only log of validation attempts carried by a Context.
// Entries keep insertion order. History performs no locking: concurrent
// mutation safety is the host environment's responsibility.
type History struct {
	entries []Entry
}

// Record appends an attempt for validatorID with the given outcome,
// timestamped now.
func (h *History) Record(validatorID string, outcome Outcome) {
	h.Append(Entry{
		ValidatorID: validatorID,
		Timestamp:   time.Now(),
		Outcome:     outcome,
	})
}

// Append appends a fully specified entry.
func (h *History) Append(e Entry) {
	h.entries = append(h.entries, e)
}

// Entries returns a copy of the recorded entries in insertion order.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded entries.
func (h *History) Len() int { return len(h.entries) }

// Last returns the most recent entry and whether one exists.
func (h *History) Last() (Entry, bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.entries[len(h.entries)-1], true
}
