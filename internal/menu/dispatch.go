package menu

// DispatchTable maps the wire form of an entry id to the signal it emits.
// It is built once and only read afterwards.
type DispatchTable map[string]Signal

// NewDispatchTable derives the table from the closed set of entry ids.
func NewDispatchTable() DispatchTable {
	t := make(DispatchTable, len(AllEntryIDs()))
	for _, id := range AllEntryIDs() {
		t[id.String()] = id.Signal()
	}
	return t
}

// Lookup returns the signal for a raw id, or false when the id is unknown.
func (t DispatchTable) Lookup(id string) (Signal, bool) {
	s, ok := t[id]
	return s, ok
}
