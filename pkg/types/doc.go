// Package types defines the Teacher record, the Store and Table interfaces,
// configuration, and the standard error values for the faculty roster.
package types
