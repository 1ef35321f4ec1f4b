package sheets

// Record is one data row together with its position in the sheet.
type Record struct {
	Row     int
	Values  []string
	columns map[string]int
}

// Get returns the cell under the named column, or "" when absent.
func (r Record) Get(field string) string {
	i, ok := r.columns[field]
	if !ok || i >= len(r.Values) {
		return ""
	}
	return r.Values[i]
}

// ID is a shortcut for Get("ID").
func (r Record) ID() string {
	return r.Get(idColumn)
}

// Predicate filters records client-side during a scan.
type Predicate func(Record) bool

// FieldEquals matches records whose field equals value.
func FieldEquals(field, value string) Predicate {
	return func(r Record) bool { return r.Get(field) == value }
}
