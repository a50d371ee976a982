package roster

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/faculty/pkg/types"
)

// InactiveBadge is shown on rows of teachers that are not active.
const InactiveBadge = "Inactive"

// ErrRowOutOfRange is returned when a row index does not address a visible row.
var ErrRowOutOfRange = errors.New("row index out of range")

// Row is the rendered form of one visible teacher.
type Row struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Subject  string `json:"subject"`
	Email    string `json:"email"`
	Badge    string `json:"badge,omitempty"`
}

// RowFor renders a teacher as a list row.
func RowFor(t *types.Teacher) Row {
	r := Row{
		ID:       t.ID,
		FullName: t.FullName(),
		Subject:  t.Subject,
		Email:    t.Email,
	}
	if !t.IsActive {
		r.Badge = InactiveBadge
	}
	return r
}

// List binds a teachers table to a live search string.
type List struct {
	table  types.Table
	sorter *Sorter
	query  string
}

// NewList returns a List over table with an empty search string.
func NewList(table types.Table, sorter *Sorter) *List {
	return &List{table: table, sorter: sorter}
}

// Query returns the current search string.
func (l *List) Query() string { return l.query }

// SetQuery replaces the search string.
func (l *List) SetQuery(q string) { l.query = q }

// ClearQuery empties the search string.
func (l *List) ClearQuery() { l.query = "" }

// Records reads the table and returns the visible teachers in order.
func (l *List) Records() ([]*types.Teacher, error) {
	all, err := l.table.Fetch(nil)
	if err != nil {
		return nil, fmt.Errorf("fetch teachers: %w", err)
	}
	return l.sorter.Visible(all, l.query), nil
}

// Rows returns the visible teachers rendered as rows.
func (l *List) Rows() ([]Row, error) {
	records, err := l.Records()
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(records))
	for i, t := range records {
		rows[i] = RowFor(t)
	}
	return rows, nil
}

// DeleteAt deletes the teacher shown at the given visible row after confirm
// approves it. It reports whether the record was deleted. A nil confirm
// deletes without asking.
func (l *List) DeleteAt(index int, confirm func(*types.Teacher) (bool, error)) (bool, error) {
	records, err := l.Records()
	if err != nil {
		return false, err
	}
	if index < 0 || index >= len(records) {
		return false, fmt.Errorf("%w: %d of %d", ErrRowOutOfRange, index, len(records))
	}
	t := records[index]
	if confirm != nil {
		ok, err := confirm(t)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	if err := l.table.Delete(t.ID); err != nil {
		return false, fmt.Errorf("delete teacher %s: %w", t.ID, err)
	}
	return true, nil
}
