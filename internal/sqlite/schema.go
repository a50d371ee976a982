// Package sqlite implements the SQLite storage backend for the faculty roster.
package sqlite

// Schema DDL. The teachers table is rebuilt from teachers.jsonl on every
// Attach, so it carries no migration history.
const (
	createTeachers = `CREATE TABLE teachers (
    teacher_id TEXT PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    email TEXT NOT NULL,
    subject TEXT NOT NULL,
    phone_number TEXT NOT NULL DEFAULT '',
    date_of_birth TEXT NOT NULL,
    hire_date TEXT NOT NULL,
    is_active INTEGER NOT NULL DEFAULT 1
);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createTeachers,
}

// teacherColumns is the column list shared by SELECT statements and the loader.
var teacherColumns = []string{
	"teacher_id",
	"first_name",
	"last_name",
	"email",
	"subject",
	"phone_number",
	"date_of_birth",
	"hire_date",
	"is_active",
}
