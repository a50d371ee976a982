package roster

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mesh-intelligence/faculty/pkg/types"
)

// Sorter filters and orders teachers using a locale's collation and case
// folding rules. A Sorter is not safe for concurrent use.
type Sorter struct {
	col  *collate.Collator
	fold cases.Caser
}

// NewSorter returns a Sorter for the given locale.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{
		col:  collate.New(tag),
		fold: cases.Fold(),
	}
}

// ParseLocale parses a BCP 47 tag such as "en" or "de-CH". An empty string
// selects English.
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return language.English, nil
	}
	return language.Parse(s)
}

// Visible returns the records matching query, ordered ascending by last
// name. An empty query matches every record. The input slice is not
// modified and equal last names keep their input order.
func (s *Sorter) Visible(records []*types.Teacher, query string) []*types.Teacher {
	out := make([]*types.Teacher, 0, len(records))
	if query == "" {
		out = append(out, records...)
	} else {
		q := s.fold.String(query)
		for _, t := range records {
			if s.matchesFolded(t, q) {
				out = append(out, t)
			}
		}
	}
	slices.SortStableFunc(out, func(a, b *types.Teacher) int {
		return s.col.CompareString(a.LastName, b.LastName)
	})
	return out
}

// Matches reports whether query is a case-insensitive substring of the
// teacher's full name, email or subject.
func (s *Sorter) Matches(t *types.Teacher, query string) bool {
	return s.matchesFolded(t, s.fold.String(query))
}

func (s *Sorter) matchesFolded(t *types.Teacher, foldedQuery string) bool {
	return strings.Contains(s.fold.String(t.FullName()), foldedQuery) ||
		strings.Contains(s.fold.String(t.Email), foldedQuery) ||
		strings.Contains(s.fold.String(t.Subject), foldedQuery)
}

// Visible filters and orders records with English collation.
func Visible(records []*types.Teacher, query string) []*types.Teacher {
	return NewSorter(language.English).Visible(records, query)
}

// Matches applies the search predicate with English case folding.
func Matches(t *types.Teacher, query string) bool {
	return NewSorter(language.English).Matches(t, query)
}
