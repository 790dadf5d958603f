package dataset

import "sort"

// CommuteTable is an ordered, read-only collection of commute records.
// Rows are addressed by position; the zero value and nil are empty tables.
type CommuteTable struct {
	records []CommuteRecord
}

// NewCommuteTable builds a table from already validated records.
// The slice is copied so later changes by the caller do not leak in.
func NewCommuteTable(records []CommuteRecord) *CommuteTable {
	cp := make([]CommuteRecord, len(records))
	copy(cp, records)
	return &CommuteTable{records: cp}
}

// Len returns the number of records.
func (t *CommuteTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// At returns a copy of the record at row i.
func (t *CommuteTable) At(i int) CommuteRecord {
	return t.records[i]
}

// Records returns a copy of all records in row order.
func (t *CommuteTable) Records() []CommuteRecord {
	if t == nil {
		return []CommuteRecord{}
	}
	cp := make([]CommuteRecord, len(t.records))
	copy(cp, t.records)
	return cp
}

// CompanyIDs returns the distinct company identifiers in sorted order.
func (t *CommuteTable) CompanyIDs() []string {
	seen := make(map[string]bool)
	ids := []string{}
	for i := 0; i < t.Len(); i++ {
		id := t.records[i].CompanyID
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// RankCompanies returns the n largest companies by employee count.
// Ties keep input order. The input slice is not reordered.
func RankCompanies(companies []Company, n int) []Company {
	ranked := make([]Company, len(companies))
	copy(ranked, companies)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Employees > ranked[j].Employees
	})
	if n < 0 {
		n = 0
	}
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
