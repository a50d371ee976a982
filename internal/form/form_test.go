package form_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/faculty/internal/form"
	"github.com/mesh-intelligence/faculty/pkg/types"
)

// recordingTable is a hand-written test double for types.Table. It stores
// records in a map and counts calls so tests can assert that no store
// interaction happened.
type recordingTable struct {
	records map[string]*types.Teacher
	calls   []string
	err     error
}

var _ types.Table = (*recordingTable)(nil)

func newRecordingTable() *recordingTable {
	return &recordingTable{records: make(map[string]*types.Teacher)}
}

func (r *recordingTable) Get(id string) (*types.Teacher, error) {
	r.calls = append(r.calls, "get")
	t, ok := r.records[id]
	if !ok {
		return nil, types.ErrNotFound
	}
	return t.Clone(), nil
}

func (r *recordingTable) Insert(t *types.Teacher) error {
	r.calls = append(r.calls, "insert")
	if r.err != nil {
		return r.err
	}
	r.records[t.ID] = t.Clone()
	return nil
}

func (r *recordingTable) Update(t *types.Teacher) error {
	r.calls = append(r.calls, "update")
	if r.err != nil {
		return r.err
	}
	if _, ok := r.records[t.ID]; !ok {
		return types.ErrNotFound
	}
	r.records[t.ID] = t.Clone()
	return nil
}

func (r *recordingTable) Delete(id string) error {
	r.calls = append(r.calls, "delete")
	if r.err != nil {
		return r.err
	}
	if _, ok := r.records[id]; !ok {
		return types.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *recordingTable) Fetch(types.Filter) ([]*types.Teacher, error) {
	r.calls = append(r.calls, "fetch")
	out := []*types.Teacher{}
	for _, t := range r.records {
		out = append(out, t.Clone())
	}
	return out, nil
}

// ---- helpers ---------------------------------------------------------------

var now = time.Date(2025, time.May, 23, 14, 45, 0, 0, time.UTC)

func completeFields() form.Fields {
	return form.Fields{
		FirstName:   "Jane",
		LastName:    "Adams",
		Email:       "jane@school.org",
		Subject:     "Art",
		PhoneNumber: "555-0101",
		DateOfBirth: time.Date(1984, time.July, 4, 0, 0, 0, 0, time.UTC),
		HireDate:    time.Date(2012, time.August, 27, 0, 0, 0, 0, time.UTC),
		IsActive:    true,
	}
}

func seeded(t *testing.T) (*recordingTable, *types.Teacher) {
	t.Helper()
	table := newRecordingTable()
	f := completeFields()
	tc, err := types.NewTeacher(f.FirstName, f.LastName, f.Email, f.Subject, f.PhoneNumber, f.DateOfBirth, f.HireDate, f.IsActive)
	require.NoError(t, err)
	table.records[tc.ID] = tc.Clone()
	return table, tc
}

func answer(yes bool) form.ConfirmFunc {
	return func(string) (bool, error) { return yes, nil }
}

// ---- save rule -------------------------------------------------------------

func TestFieldsCanSave(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*form.Fields)
		want   bool
	}{
		{name: "all required set", mutate: func(*form.Fields) {}, want: true},
		{name: "empty first name", mutate: func(f *form.Fields) { f.FirstName = "" }, want: false},
		{name: "empty last name", mutate: func(f *form.Fields) { f.LastName = "" }, want: false},
		{name: "empty email", mutate: func(f *form.Fields) { f.Email = "" }, want: false},
		{name: "empty subject", mutate: func(f *form.Fields) { f.Subject = "" }, want: false},
		{name: "empty phone is allowed", mutate: func(f *form.Fields) { f.PhoneNumber = "" }, want: true},
		{name: "inactive is allowed", mutate: func(f *form.Fields) { f.IsActive = false }, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := completeFields()
			tt.mutate(&f)
			assert.Equal(t, tt.want, f.CanSave())

			// The same rule holds for both forms.
			add := form.NewAddForm(newRecordingTable(), now)
			add.Fields = f
			assert.Equal(t, tt.want, add.CanSave())

			table, tc := seeded(t)
			edit := form.NewEditForm(table, tc)
			edit.Fields = f
			assert.Equal(t, tt.want, edit.CanSave())
		})
	}
}

// ---- add form --------------------------------------------------------------

func TestAddForm_Defaults(t *testing.T) {
	f := form.NewAddForm(newRecordingTable(), now)
	assert.Equal(t, time.Date(2025, time.May, 23, 0, 0, 0, 0, time.UTC), f.DateOfBirth)
	assert.Equal(t, time.Date(2025, time.May, 23, 0, 0, 0, 0, time.UTC), f.HireDate)
	assert.True(t, f.IsActive)
	assert.False(t, f.CanSave())
	assert.False(t, f.Closed())
}

func TestAddForm_Save(t *testing.T) {
	table := newRecordingTable()
	f := form.NewAddForm(table, now)
	f.Fields = completeFields()

	got, err := f.Save()
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "Jane Adams", got.FullName())
	assert.True(t, f.Closed())

	assert.Equal(t, []string{"insert"}, table.calls)
	stored, ok := table.records[got.ID]
	require.True(t, ok)
	assert.Equal(t, got, stored)

	_, err = f.Save()
	assert.ErrorIs(t, err, form.ErrClosed)
}

func TestAddForm_SaveFreshIDs(t *testing.T) {
	table := newRecordingTable()
	for i := 0; i < 3; i++ {
		f := form.NewAddForm(table, now)
		f.Fields = completeFields()
		_, err := f.Save()
		require.NoError(t, err)
	}
	assert.Len(t, table.records, 3)
}

func TestAddForm_SaveIncomplete(t *testing.T) {
	table := newRecordingTable()
	f := form.NewAddForm(table, now)
	f.Fields = completeFields()
	f.FirstName = ""

	assert.False(t, f.CanSave())
	_, err := f.Save()
	assert.ErrorIs(t, err, form.ErrIncomplete)
	assert.Contains(t, err.Error(), types.FieldFirstName)
	assert.Empty(t, table.calls, "no store call when save is disabled")
	assert.False(t, f.Closed())
}

func TestAddForm_SaveStoreError(t *testing.T) {
	table := newRecordingTable()
	table.err = errors.New("disk full")
	f := form.NewAddForm(table, now)
	f.Fields = completeFields()

	_, err := f.Save()
	assert.ErrorIs(t, err, table.err)
	assert.False(t, f.Closed(), "a failed save keeps the form open")
}

func TestAddForm_Cancel(t *testing.T) {
	table := newRecordingTable()
	f := form.NewAddForm(table, now)
	f.Fields = completeFields()

	f.Cancel()
	assert.True(t, f.Closed())
	assert.Equal(t, form.Fields{}, f.Fields)
	assert.Empty(t, table.calls)

	_, err := f.Save()
	assert.ErrorIs(t, err, form.ErrClosed)
}

// ---- edit form -------------------------------------------------------------

func TestEditForm_DraftIsolation(t *testing.T) {
	table, tc := seeded(t)
	f := form.NewEditForm(table, tc)

	f.FirstName = "Janet"
	f.IsActive = false
	assert.True(t, f.Dirty())

	assert.Equal(t, "Jane", table.records[tc.ID].FirstName, "draft edits must not reach the store")
	assert.Equal(t, "Jane", tc.FirstName, "draft edits must not alias the caller's record")
	assert.Empty(t, table.calls)
}

func TestEditForm_Save(t *testing.T) {
	table, tc := seeded(t)
	f := form.NewEditForm(table, tc)
	f.Subject = "Sculpture"
	f.HireDate = time.Date(2020, time.February, 1, 9, 30, 0, 0, time.UTC)

	got, err := f.Save()
	require.NoError(t, err)
	assert.Equal(t, tc.ID, got.ID, "edit keeps the ID")
	assert.Equal(t, []string{"update"}, table.calls)

	stored := table.records[tc.ID]
	assert.Equal(t, "Sculpture", stored.Subject)
	assert.Equal(t, time.Date(2020, time.February, 1, 0, 0, 0, 0, time.UTC), stored.HireDate)
	assert.True(t, f.Closed())
}

func TestEditForm_SaveIncomplete(t *testing.T) {
	table, tc := seeded(t)
	f := form.NewEditForm(table, tc)
	f.Email = ""

	_, err := f.Save()
	assert.ErrorIs(t, err, form.ErrIncomplete)
	assert.Empty(t, table.calls)
	assert.Equal(t, "jane@school.org", table.records[tc.ID].Email)
}

func TestEditForm_CancelDiscardsDraft(t *testing.T) {
	table, tc := seeded(t)
	f := form.NewEditForm(table, tc)
	f.LastName = "Changed"

	f.Cancel()
	assert.True(t, f.Closed())
	assert.False(t, f.Dirty())
	assert.Equal(t, "Adams", table.records[tc.ID].LastName)
	assert.Empty(t, table.calls)
}

func TestEditForm_NotDirtyWhenUnchanged(t *testing.T) {
	table, tc := seeded(t)
	f := form.NewEditForm(table, tc)
	assert.False(t, f.Dirty())
}

func TestEditForm_DeleteConfirmed(t *testing.T) {
	table, tc := seeded(t)
	f := form.NewEditForm(table, tc)

	var prompt string
	deleted, err := f.Delete(form.ConfirmFunc(func(p string) (bool, error) {
		prompt = p
		return true, nil
	}))
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, "Are you sure you want to delete Jane Adams? This action cannot be undone.", prompt)
	assert.Empty(t, table.records)
	assert.True(t, f.Closed())
}

func TestEditForm_DeleteDeclined(t *testing.T) {
	table, tc := seeded(t)
	f := form.NewEditForm(table, tc)

	deleted, err := f.Delete(answer(false))
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Len(t, table.records, 1)
	assert.Empty(t, table.calls)
	assert.False(t, f.Closed())
}

func TestEditForm_DeletePromptUsesStoredName(t *testing.T) {
	table, tc := seeded(t)
	f := form.NewEditForm(table, tc)
	f.FirstName = "Draft"

	var prompt string
	_, err := f.Delete(form.ConfirmFunc(func(p string) (bool, error) {
		prompt = p
		return false, nil
	}))
	require.NoError(t, err)
	assert.Contains(t, prompt, "Jane Adams")
}

func TestEditForm_DeleteConfirmerError(t *testing.T) {
	table, tc := seeded(t)
	f := form.NewEditForm(table, tc)
	boom := errors.New("no terminal")

	_, err := f.Delete(form.ConfirmFunc(func(string) (bool, error) { return false, boom }))
	assert.ErrorIs(t, err, boom)
	assert.Len(t, table.records, 1)
}

func TestEditForm_DeleteMissing(t *testing.T) {
	table, tc := seeded(t)
	delete(table.records, tc.ID)
	f := form.NewEditForm(table, tc)

	_, err := f.Delete(answer(true))
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.False(t, f.Closed())
}
