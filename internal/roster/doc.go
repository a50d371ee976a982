// Package roster computes the visible, ordered list of teachers for a search
// string and renders list rows.
//
// The visible set is a pure function of the stored records and the query;
// List recomputes it from the table on every read, so mutations and query
// changes are reflected immediately.
package roster
