// This file implements JSONL loading for startup.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// loadTeachersJSONL reads teachers.jsonl from dataDir and inserts every
// record into the teachers table. Loading is transactional: all succeed or
// the table remains empty. Malformed lines, records with unparseable dates
// and records violating constraints (duplicate IDs) are skipped. Unknown
// fields are ignored. Returns the number of records loaded.
func loadTeachersJSONL(db *sql.DB, dataDir string) (int, error) {
	records, err := readTeachersJSONL(dataDir)
	if err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	loaded, err := insertTeacherRecords(tx, records)
	if err != nil {
		return 0, fmt.Errorf("loading %s: %w", teachersJSONL, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing load transaction: %w", err)
	}
	return loaded, nil
}

// insertTeacherRecords inserts parsed JSONL records in file order so that
// rowid order matches the order the records were written.
func insertTeacherRecords(tx *sql.Tx, records []json.RawMessage) (int, error) {
	stmt, err := tx.Prepare(insertTeacherSQL)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	loaded := 0
	for i, rec := range records {
		var r teacherJSON
		if err := json.Unmarshal(rec, &r); err != nil {
			slog.Debug("skipping malformed teacher record", "line", i+1, "error", err)
			continue
		}
		if r.TeacherID == "" {
			slog.Debug("skipping teacher record without id", "line", i+1)
			continue
		}
		t, err := r.toTeacher()
		if err != nil {
			slog.Debug("skipping teacher record", "line", i+1, "error", err)
			continue
		}
		if _, err := stmt.Exec(teacherArgs(t)...); err != nil {
			slog.Debug("skipping teacher record", "line", i+1, "id", t.ID, "error", err)
			continue
		}
		loaded++
	}
	return loaded, nil
}

// insertTeacherSQL inserts one row using teacherColumns.
var insertTeacherSQL = fmt.Sprintf(
	"INSERT INTO teachers (%s) VALUES (%s)",
	strings.Join(teacherColumns, ", "),
	strings.TrimSuffix(strings.Repeat("?, ", len(teacherColumns)), ", "),
)
