package solution

import "time"

// Solution represents a remembered fix for a problem found at a URL.
type Solution struct {
	ID       int       `db:"id"         json:"id"`
	URL      string    `db:"url"        json:"url"`
	Title    string    `db:"title"      json:"title"`
	Body     string    `db:"solution"   json:"solution"`
	AddedAt  time.Time `db:"added_date" json:"added_date"`
	UseCount int       `db:"use_count"  json:"use_count"`
}

// Outcome is the result of trying to save a solution.
type Outcome int

const (
	Added Outcome = iota
	Duplicate
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Duplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// AddResult holds the outcome of an insert and the record involved.
//
// For Duplicate, Record is the entry already stored under the same URL.
type AddResult struct {
	Outcome Outcome
	Record  *Solution
}
