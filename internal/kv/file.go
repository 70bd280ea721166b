package kv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// File keeps every record in one TOML document. The whole document is
// rewritten on each Set, which suits the handful of small keys pigcat owns.
type File struct {
	path   string
	mu     sync.RWMutex
	values map[string]string
}

var _ Store = (*File)(nil)

// OpenFile loads the document at path. A missing file is an empty store.
func OpenFile(path string) (*File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("open file store: empty path")
	}
	f := &File{path: path, values: make(map[string]string)}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("open file store: %w", err)
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read file store: %w", err)
	}
	if err := toml.Unmarshal(bytes, &f.values); err != nil {
		return nil, fmt.Errorf("parse file store %s: %w", path, err)
	}
	if f.values == nil {
		f.values = make(map[string]string)
	}
	return f, nil
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, had := f.values[key]
	f.values[key] = value
	if err := f.flush(); err != nil {
		if had {
			f.values[key] = prev
		} else {
			delete(f.values, key)
		}
		return err
	}
	return nil
}

func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.flush()
}

func (f *File) Close() error { return nil }

// flush writes the document to a temp file and renames it into place.
func (f *File) flush() error {
	if err := ensureDir(f.path); err != nil {
		return err
	}
	bytes, err := toml.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("marshal file store: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".pigcat-*.toml")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(bytes); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write file store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file store: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace file store: %w", err)
	}
	return nil
}
