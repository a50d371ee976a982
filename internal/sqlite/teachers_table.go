// This file implements the teachers table accessor for the SQLite backend.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mesh-intelligence/faculty/pkg/types"
)

// Compile-time interface check: teachersTable must implement Table.
var _ types.Table = (*teachersTable)(nil)

// teachersTable implements the Table interface for Teacher records.
// Each operation hydrates/dehydrates between SQLite rows and *types.Teacher
// values, and persists changes to teachers.jsonl.
type teachersTable struct {
	backend *Backend
}

var selectTeachersSQL = "SELECT " + strings.Join(teacherColumns, ", ") + " FROM teachers"

// Get retrieves a teacher by ID.
func (tt *teachersTable) Get(id string) (*types.Teacher, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	b := tt.backend
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	row := b.db.QueryRow(selectTeachersSQL+" WHERE teacher_id = ?", id)
	t, err := hydrateTeacher(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting teacher %s: %w", id, err)
	}
	return t, nil
}

// Insert stores a new teacher. The record must carry an ID.
func (tt *teachersTable) Insert(t *types.Teacher) error {
	if t == nil {
		return types.ErrInvalidData
	}
	if t.ID == "" {
		return types.ErrInvalidID
	}
	b := tt.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return types.ErrStoreDetached
	}

	err := tt.mutate("insert", func(tx *sql.Tx) error {
		exists, err := teacherExists(tx, t.ID)
		if err != nil {
			return err
		}
		if exists {
			return types.ErrAlreadyExists
		}
		if _, err := tx.Exec(insertTeacherSQL, teacherArgs(t)...); err != nil {
			return fmt.Errorf("inserting teacher: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	slog.Debug("teacher inserted", "id", t.ID)
	return nil
}

// Update overwrites every stored field of an existing teacher.
func (tt *teachersTable) Update(t *types.Teacher) error {
	if t == nil {
		return types.ErrInvalidData
	}
	if t.ID == "" {
		return types.ErrInvalidID
	}
	b := tt.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return types.ErrStoreDetached
	}

	err := tt.mutate("update", func(tx *sql.Tx) error {
		res, err := tx.Exec(`UPDATE teachers SET
			first_name = ?, last_name = ?, email = ?, subject = ?, phone_number = ?,
			date_of_birth = ?, hire_date = ?, is_active = ?
			WHERE teacher_id = ?`,
			t.FirstName, t.LastName, t.Email, t.Subject, t.PhoneNumber,
			formatDate(t.DateOfBirth), formatDate(t.HireDate), boolToInt(t.IsActive),
			t.ID,
		)
		if err != nil {
			return fmt.Errorf("updating teacher: %w", err)
		}
		return requireOneRow(res)
	})
	if err != nil {
		return err
	}
	slog.Debug("teacher updated", "id", t.ID)
	return nil
}

// Delete removes exactly one teacher.
func (tt *teachersTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	b := tt.backend
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return types.ErrStoreDetached
	}

	err := tt.mutate("delete", func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM teachers WHERE teacher_id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting teacher: %w", err)
		}
		return requireOneRow(res)
	})
	if err != nil {
		return err
	}
	slog.Debug("teacher deleted", "id", id)
	return nil
}

// Fetch returns teachers matching the filter in insertion order.
func (tt *teachersTable) Fetch(filter types.Filter) ([]*types.Teacher, error) {
	b := tt.backend
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	query := selectTeachersSQL
	var conditions []string
	var args []any

	for key, v := range filter {
		switch key {
		case types.FilterIsActive:
			active, ok := v.(bool)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "is_active = ?")
			args = append(args, boolToInt(active))
		default:
			return nil, fmt.Errorf("%w: unknown key %q", types.ErrInvalidFilter, key)
		}
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY rowid ASC"

	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching teachers: %w", err)
	}
	defer rows.Close()

	results := []*types.Teacher{}
	for rows.Next() {
		t, err := hydrateTeacher(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating teacher: %w", err)
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating teachers: %w", err)
	}
	return results, nil
}

// mutate runs change in a transaction. Under the immediate strategy
// teachers.jsonl is rewritten from inside the transaction and the
// transaction commits only if that write succeeds, so a failed mutation
// leaves neither the cache nor the file changed. Under on_close the change
// commits at once and the file write is deferred to Detach. The caller
// must hold b.mu for writing.
func (tt *teachersTable) mutate(operation string, change func(*sql.Tx) error) error {
	b := tt.backend
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning %s: %w", operation, err)
	}
	defer tx.Rollback()

	if err := change(tx); err != nil {
		return err
	}
	if b.syncStrategy == types.SyncOnClose {
		b.pending = append(b.pending, operation)
	} else if err := persistAllJSONL(tx, b.config.DataDir); err != nil {
		return fmt.Errorf("persisting %s: %w", teachersJSONL, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", operation, err)
	}
	return nil
}

// requireOneRow maps a statement that touched no row to ErrNotFound.
func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("counting affected rows: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

func teacherExists(q querier, id string) (bool, error) {
	var one int
	err := q.QueryRow("SELECT 1 FROM teachers WHERE teacher_id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking teacher existence: %w", err)
	}
	return true, nil
}

// persistAllJSONL reads every teacher visible to q and rewrites
// teachers.jsonl in dataDir atomically in insertion order.
func persistAllJSONL(q querier, dataDir string) error {
	rows, err := q.Query(selectTeachersSQL + " ORDER BY rowid ASC")
	if err != nil {
		return fmt.Errorf("querying teachers for JSONL: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		t, err := hydrateTeacher(rows)
		if err != nil {
			return fmt.Errorf("scanning teacher for JSONL: %w", err)
		}
		data, err := json.Marshal(teacherToJSON(t))
		if err != nil {
			return fmt.Errorf("marshaling teacher for JSONL: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating teachers for JSONL: %w", err)
	}

	return writeTeachersJSONL(dataDir, records)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateTeacher converts a row selected with teacherColumns into a
// *types.Teacher.
func hydrateTeacher(row scanner) (*types.Teacher, error) {
	var r teacherJSON
	var active int
	if err := row.Scan(
		&r.TeacherID, &r.FirstName, &r.LastName, &r.Email, &r.Subject,
		&r.PhoneNumber, &r.DateOfBirth, &r.HireDate, &active,
	); err != nil {
		return nil, err
	}
	r.IsActive = active != 0
	return r.toTeacher()
}

// teacherArgs returns INSERT arguments in teacherColumns order.
func teacherArgs(t *types.Teacher) []any {
	return []any{
		t.ID, t.FirstName, t.LastName, t.Email, t.Subject, t.PhoneNumber,
		formatDate(t.DateOfBirth), formatDate(t.HireDate), boolToInt(t.IsActive),
	}
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
