package attendance

import "strings"

// Recorded status types. A scan records exactly the mode requested by the
// gate client; there is no automatic toggle between check-in and check-out.
const (
	StatusCheckIn  = "check-in"
	StatusCheckOut = "check-out"
	StatusPermit   = "permit"
	StatusEarlyOut = "early-departure"
)

// Fixed note annotations attached by the classifier.
const (
	NoteLate     = "late arrival"
	NotePermit   = "official permit"
	NoteEarlyOut = "left before end of shift"
)

// Event is one appended attendance record. Events are never mutated or
// deleted; the store preserves insertion order.
type Event struct {
	ID        string `json:"id"`
	StaffID   string `json:"staff_id"`
	StaffName string `json:"staff_name"`
	Section   string `json:"section"`
	Date      string `json:"date"` // 2006-01-02
	Time      string `json:"time"` // 15:04:05
	Status    string `json:"status"`
	Note      string `json:"note"`
}

// IsLateNote reports whether a note marks a late check-in. Notes are free
// text in the store, so this matches on substring rather than equality.
func IsLateNote(note string) bool {
	return strings.Contains(note, "late")
}
