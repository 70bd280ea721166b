package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/pigcat/internal/ai"
	"github.com/five82/pigcat/internal/kv"
	"github.com/five82/pigcat/internal/site"
)

// writeConfig points storage and logs into a temp dir so tests never touch $HOME.
func writeConfig(t *testing.T, driver string) Options {
	t.Helper()
	dir := t.TempDir()
	body := strings.Join([]string{
		"[storage]",
		`driver = "` + driver + `"`,
		`path = "` + filepath.ToSlash(filepath.Join(dir, "store")) + `"`,
		"[ai]",
		`provider = "none"`,
		"[admin]",
		`password = "pw"`,
		"[log]",
		`path = "` + filepath.ToSlash(filepath.Join(dir, "pigcat.log")) + `"`,
		"",
	}, "\n")
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return Options{ConfigPath: path}
}

func TestOpen_EphemeralUsesMemory(t *testing.T) {
	opts := writeConfig(t, "sqlite")
	opts.Ephemeral = true

	env, err := Open(context.Background(), opts)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer env.Close()

	if _, ok := env.KV.(*kv.Memory); !ok {
		t.Fatalf("KV = %T, want *kv.Memory", env.KV)
	}
	if env.Gate.IsAdmin() {
		t.Fatal("gate starts unlocked")
	}
	if got := env.Store.TotalClaps(); got != site.DefaultTotalClaps {
		t.Fatalf("TotalClaps = %d, want %d", got, site.DefaultTotalClaps)
	}
}

func TestOpen_RejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[storage]\ndriver = \"floppy\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(context.Background(), Options{ConfigPath: path}); err == nil {
		t.Fatal("expected error for unknown storage driver")
	}
}

func TestExport_WritesEveryRecord(t *testing.T) {
	opts := writeConfig(t, "file")

	var buf bytes.Buffer
	if err := Export(context.Background(), opts, &buf); err != nil {
		t.Fatalf("Export: %v", err)
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("export is not JSON: %v\n%s", err, buf.String())
	}
	for _, key := range []string{"settings", "entries", "totalClaps", "clapMessages", "banners"} {
		if _, ok := out[key]; !ok {
			t.Fatalf("export missing %q", key)
		}
	}
}

func TestResetSettings_RequiresPassword(t *testing.T) {
	ctx := context.Background()
	opts := writeConfig(t, "file")

	env, err := Open(ctx, opts)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := env.Store.UpdateSetting(ctx, site.FieldSiteTitle, "changed"); err != nil {
		t.Fatalf("UpdateSetting: %v", err)
	}
	if err := env.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := ResetSettings(ctx, opts, "nope"); !errors.Is(err, site.ErrWrongPassword) {
		t.Fatalf("ResetSettings(wrong) = %v, want ErrWrongPassword", err)
	}
	if err := ResetSettings(ctx, opts, "pw"); err != nil {
		t.Fatalf("ResetSettings: %v", err)
	}

	env, err = Open(ctx, opts)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer env.Close()
	want := site.DefaultSettings().SiteTitle
	if got := env.Store.Settings().SiteTitle; got != want {
		t.Fatalf("SiteTitle = %q, want %q", got, want)
	}
}

func TestDream_FallsBackWithoutProvider(t *testing.T) {
	opts := writeConfig(t, "memory")

	var buf bytes.Buffer
	if err := Dream(context.Background(), opts, "하늘을 나는 꿈", &buf); err != nil {
		t.Fatalf("Dream: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != ai.DreamFailed {
		t.Fatalf("Dream wrote %q, want %q", got, ai.DreamFailed)
	}
}

func TestDream_RequiresText(t *testing.T) {
	err := Dream(context.Background(), Options{}, "   ", &bytes.Buffer{})
	if !errors.Is(err, site.ErrDreamRequired) {
		t.Fatalf("Dream(blank) = %v, want ErrDreamRequired", err)
	}
}

func TestShowConfig_MasksSecrets(t *testing.T) {
	opts := writeConfig(t, "file")

	var buf bytes.Buffer
	if err := ShowConfig(opts, &buf); err != nil {
		t.Fatalf("ShowConfig: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, `"pw"`) {
		t.Fatalf("password leaked:\n%s", out)
	}
	if !strings.Contains(out, "********") {
		t.Fatalf("password not masked:\n%s", out)
	}
}
