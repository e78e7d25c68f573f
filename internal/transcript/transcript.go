// Package transcript holds the append-only conversation log owned by a pane.
package transcript

import "math"

// Role identifies who produced an entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Entry is a single turn in a transcript. WordsAffected and Mastery are only
// populated on assistant-pane replies and may be nil.
type Entry struct {
	Role          Role
	Text          string
	WordsAffected []string
	Mastery       map[string]float64
}

// UserEntry builds a learner turn.
func UserEntry(text string) Entry {
	return Entry{Role: RoleUser, Text: text}
}

// AssistantEntry builds a reply turn without vocabulary annotations.
func AssistantEntry(text string) Entry {
	return Entry{Role: RoleAssistant, Text: text}
}

// HasWords reports whether the entry carries any detected vocabulary.
func (e Entry) HasWords() bool {
	return len(e.WordsAffected) > 0
}

// MasteryOf returns the backend-supplied mastery score for word, or 0 when
// the reply did not include one.
func (e Entry) MasteryOf(word string) float64 {
	if e.Mastery == nil {
		return 0
	}
	return e.Mastery[word]
}

// MasteryPercent returns the mastery score for word scaled to 0-100 and
// rounded to the nearest integer.
func (e Entry) MasteryPercent(word string) int {
	return int(math.Round(e.MasteryOf(word) * 100))
}

// Transcript is an ordered, append-only list of entries. Insertion order is
// display order.
type Transcript struct {
	entries []Entry
}

// Append adds an entry at the end.
func (t *Transcript) Append(e Entry) {
	t.entries = append(t.entries, e)
}

// Entries returns a copy of all entries in display order.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
