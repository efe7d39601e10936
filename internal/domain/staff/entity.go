package staff

// Staff is one roster entry loaded from the external staff list.
// Records are immutable after load; the directory replaces the whole
// table on reload rather than patching individual entries.
type Staff struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Barcode  string `json:"barcode"`
	Section  string `json:"section"`
}
