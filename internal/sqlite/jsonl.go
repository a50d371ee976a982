// This file reads and writes teachers.jsonl, the source of truth in DataDir.
package sqlite

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// teachersJSONL is the source-of-truth file inside DataDir.
const teachersJSONL = "teachers.jsonl"

func teachersPath(dataDir string) string {
	return filepath.Join(dataDir, teachersJSONL)
}

// readTeachersJSONL returns every non-empty line of teachers.jsonl that is
// valid JSON, in file order. Lines of any length are read; malformed ones
// are skipped.
func readTeachersJSONL(dataDir string) ([]json.RawMessage, error) {
	f, err := os.Open(teachersPath(dataDir))
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", teachersJSONL, err)
	}
	defer f.Close()

	var records []json.RawMessage
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("reading %s: %w", teachersJSONL, err)
		}
		if line = bytes.TrimSpace(line); len(line) > 0 && json.Valid(line) {
			records = append(records, json.RawMessage(line))
		}
		if err != nil {
			return records, nil
		}
	}
}

// writeTeachersJSONL replaces teachers.jsonl with records, one per line.
func writeTeachersJSONL(dataDir string, records []json.RawMessage) error {
	return replaceFile(teachersPath(dataDir), func(w *bufio.Writer) error {
		for _, rec := range records {
			if _, err := w.Write(rec); err != nil {
				return err
			}
			if err := w.WriteByte('\n'); err != nil {
				return err
			}
		}
		return nil
	})
}

// replaceFile writes a sibling temp file, syncs it and renames it over
// path, so readers see either the old content or the new, never a mix.
// The temp file is removed on any failure.
func replaceFile(path string, write func(*bufio.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err := write(w); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	committed = true
	return nil
}

// ensureTeachersJSONL creates an empty teachers.jsonl if none exists.
func ensureTeachersJSONL(dataDir string) error {
	path := teachersPath(dataDir)
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", teachersJSONL, err)
	}
	return os.WriteFile(path, nil, 0o644)
}
