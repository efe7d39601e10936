package report

// Report types accepted by the generator. An unknown type yields an empty
// report, not an error.
const (
	TypePresent = "present"
	TypeLate    = "late"
	TypePermit  = "permit"
	TypeEarly   = "early"
	TypeAbsent  = "absent"
)

// SectionAll disables section filtering.
const SectionAll = "all"

// Query holds the raw report request parameters. Empty fields default:
// Type to "present", Section to "all", StartDate to the beginning of the
// current day, EndDate to now.
type Query struct {
	Type      string
	Section   string
	StartDate string
	EndDate   string
}

// Row is one line of a generated report.
type Row struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Section string `json:"section"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Type    string `json:"type"`
	Notes   string `json:"notes"`
}
