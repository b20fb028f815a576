// Package record defines the per-day data bundle stored against a date key.
package record

import "strings"

// Record holds one day's logistics notes: departure/return times and ball
// counts for the three groups, plus the free-text unneeded-items field. The
// JSON names match the persisted document format.
type Record struct {
	MensGo       string `json:"mensGo,omitempty"`
	MensReturn   string `json:"mensReturn,omitempty"`
	MensBalls    string `json:"mensBalls,omitempty"`
	WomensGo     string `json:"womensGo,omitempty"`
	WomensReturn string `json:"womensReturn,omitempty"`
	WomensBalls  string `json:"womensBalls,omitempty"`
	OthersGo     string `json:"othersGo,omitempty"`
	OthersReturn string `json:"othersReturn,omitempty"`
	OthersBalls  string `json:"othersBalls,omitempty"`
	Unneeded     string `json:"unnecessaryItems,omitempty"`
}

// Group is a read view over one group's three sub-fields.
type Group struct {
	Departure string
	Return    string
	Count     string
}

// Empty reports whether the group has no data at all.
func (g Group) Empty() bool {
	return g.Departure == "" && g.Return == "" && g.Count == ""
}

func (r Record) Men() Group {
	return Group{Departure: r.MensGo, Return: r.MensReturn, Count: r.MensBalls}
}

func (r Record) Women() Group {
	return Group{Departure: r.WomensGo, Return: r.WomensReturn, Count: r.WomensBalls}
}

func (r Record) Others() Group {
	return Group{Departure: r.OthersGo, Return: r.OthersReturn, Count: r.OthersBalls}
}

// Fields returns pointers to the ten fields in their fixed order, for code
// that needs to iterate (trimming, form binding).
func (r *Record) Fields() []*string {
	return []*string{
		&r.MensGo, &r.MensReturn, &r.MensBalls,
		&r.WomensGo, &r.WomensReturn, &r.WomensBalls,
		&r.OthersGo, &r.OthersReturn, &r.OthersBalls,
		&r.Unneeded,
	}
}

// Trimmed returns a copy with every field space-trimmed.
func (r Record) Trimmed() Record {
	out := r
	for _, f := range out.Fields() {
		*f = strings.TrimSpace(*f)
	}
	return out
}

// Empty reports whether all ten fields are empty after trimming. Empty
// records are never persisted; saving one deletes the stored day.
func (r Record) Empty() bool {
	t := r.Trimmed()
	for _, f := range t.Fields() {
		if *f != "" {
			return false
		}
	}
	return true
}
