package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mesh-intelligence/faculty/internal/form"
	"github.com/mesh-intelligence/faculty/pkg/types"
)

// withTeachers attaches a store to the resolved data directory, runs fn
// against its teachers table and detaches. A store that cannot be opened
// is a system error. The first error of fn or Detach is returned.
func (a *app) withTeachers(fn func(types.Table) error) error {
	cfg := a.settings.StoreConfig(a.dataDir)
	store := a.newStore()
	if err := store.Attach(cfg); err != nil {
		slog.Error("storage initialization failed", "data_dir", a.dataDir, "error", err)
		return sysError(fmt.Errorf("attach store: %w", err))
	}

	table, err := store.Teachers()
	if err != nil {
		_ = store.Detach()
		return sysError(fmt.Errorf("open teachers table: %w", err))
	}

	runErr := fn(table)
	if err := store.Detach(); err != nil && runErr == nil {
		return sysError(fmt.Errorf("detach store: %w", err))
	}
	return runErr
}

// classify maps a store or form error to an exit code: bad input and
// missing records are user errors, anything else is a system error.
func classify(op string, err error) error {
	wrapped := fmt.Errorf("%s: %w", op, err)
	switch {
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidData),
		errors.Is(err, form.ErrIncomplete):
		return userError(wrapped)
	}
	return sysError(wrapped)
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return sysError(fmt.Errorf("encode output: %w", err))
	}
	return nil
}

// prompter asks yes/no questions on a terminal. Only "y" and "yes"
// (any case) confirm; end of input declines.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// Confirm implements form.Confirmer.
func (p *prompter) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// confirmer returns the Confirmer for a delete: the terminal prompt, or an
// unconditional yes when skip is set.
func (a *app) confirmer(skip bool, in io.Reader, out io.Writer) form.Confirmer {
	if skip {
		return form.ConfirmFunc(func(string) (bool, error) { return true, nil })
	}
	return newPrompter(in, out)
}
