package dashboard

// SectionStats are the derived daily counters for one section. Absent is
// recomputed on every request and floored at zero; staff on permit or early
// departure are excluded from the absent pool without counting as present.
type SectionStats struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Permit  int `json:"permit"`
	Early   int `json:"early"`
	Absent  int `json:"absent"`
	Total   int `json:"total"`
}

// DailyStats maps section code to that section's counters for today.
type DailyStats map[string]*SectionStats
