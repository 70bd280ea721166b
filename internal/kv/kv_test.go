package kv

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want ok=false err=nil", ok, err)
	}

	if err := s.Set(ctx, "pigcat_entries", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := s.Get(ctx, "pigcat_entries")
	if err != nil || !ok || got != `[{"id":"1"}]` {
		t.Fatalf("Get after Set = %q ok=%v err=%v", got, ok, err)
	}

	// Overwrite replaces the prior record.
	if err := s.Set(ctx, "pigcat_entries", "[]"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if got, _, _ := s.Get(ctx, "pigcat_entries"); got != "[]" {
		t.Fatalf("Get after overwrite = %q, want []", got)
	}

	if err := s.Delete(ctx, "pigcat_entries"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "pigcat_entries"); ok {
		t.Fatalf("Get after Delete ok=true, want false")
	}
	if err := s.Delete(ctx, "never-set"); err != nil {
		t.Fatalf("Delete missing: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pigcat.toml")
	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	exerciseStore(t, s)
}

func TestFileStore_PersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pigcat.toml")

	s, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	value := "{\"systemMessage\":\"line one\\nline two\",\"quote\":\"\\\"hi\\\"\"}"
	if err := s.Set(ctx, "pigcat_settings_v6_bitmap", value); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile reopen: %v", err)
	}
	got, ok, err := reopened.Get(ctx, "pigcat_settings_v6_bitmap")
	if err != nil || !ok {
		t.Fatalf("Get = ok=%v err=%v", ok, err)
	}
	if got != value {
		t.Fatalf("Get = %q, want %q", got, value)
	}
}

func TestFileStore_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pigcat.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := OpenFile(path)
	if err == nil {
		t.Fatalf("OpenFile returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse file store") {
		t.Fatalf("OpenFile error = %q, want it to mention parse file store", err.Error())
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "pigcat.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer func() { _ = s.Close() }()
	exerciseStore(t, s)
}

func TestSQLiteStore_MigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pigcat.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Set(ctx, "pigcat_total_claps", "3314"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_ = s.Close()

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite reopen: %v", err)
	}
	defer func() { _ = s.Close() }()

	var versions int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM schema_migrations;`).Scan(&versions); err != nil {
		t.Fatalf("count versions: %v", err)
	}
	if versions != 1 {
		t.Fatalf("schema_migrations rows = %d, want 1", versions)
	}
	if got, _, _ := s.Get(ctx, "pigcat_total_claps"); got != "3314" {
		t.Fatalf("Get after reopen = %q, want 3314", got)
	}
}

func TestOpen_SelectsDriver(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, Options{Driver: "memory"})
	if err != nil {
		t.Fatalf("Open memory: %v", err)
	}
	if _, ok := s.(*Memory); !ok {
		t.Fatalf("Open memory = %T, want *Memory", s)
	}

	s, err = Open(ctx, Options{Driver: " FILE ", Path: filepath.Join(t.TempDir(), "s.toml")})
	if err != nil {
		t.Fatalf("Open file: %v", err)
	}
	if _, ok := s.(*File); !ok {
		t.Fatalf("Open file = %T, want *File", s)
	}

	if _, err := Open(ctx, Options{Driver: "etcd"}); err == nil {
		t.Fatalf("Open etcd returned nil error")
	}
}

func TestRedisKeyPrefix(t *testing.T) {
	r := newRedis(nil, "pigcat")
	if got := r.key("pigcat_banners"); got != "pigcat:pigcat_banners" {
		t.Fatalf("key = %q, want %q", got, "pigcat:pigcat_banners")
	}
	r = newRedis(nil, "")
	if got := r.key("pigcat_banners"); got != "pigcat_banners" {
		t.Fatalf("key = %q, want %q", got, "pigcat_banners")
	}
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("PIGCAT_TEST_REDIS_URL")
	if url == "" {
		t.Skip("PIGCAT_TEST_REDIS_URL not set")
	}
	s, err := OpenRedis(context.Background(), url, "pigcat-test")
	if err != nil {
		t.Fatalf("OpenRedis: %v", err)
	}
	defer func() { _ = s.Close() }()
	exerciseStore(t, s)
}
