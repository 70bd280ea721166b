package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/five82/pigcat/internal/ai"
	"github.com/five82/pigcat/internal/kv"
	"github.com/five82/pigcat/internal/logging"
	"github.com/five82/pigcat/internal/site"
	"github.com/five82/pigcat/internal/slideshow"
	"github.com/five82/pigcat/internal/state"
	"github.com/five82/pigcat/internal/task"
)

var fixedNow = func() time.Time { return time.Date(2024, 10, 21, 15, 4, 5, 0, time.UTC) }

type harness struct {
	t     *testing.T
	m     Model
	store *state.Store
	gate  *state.AdminGate
}

func newHarness(t *testing.T, gen ai.Generator, ticker *slideshow.Ticker) *harness {
	t.Helper()
	store, err := state.Open(context.Background(), kv.NewMemory(), state.WithClock(fixedNow))
	if err != nil {
		t.Fatalf("state.Open: %v", err)
	}
	gate := state.NewAdminGate("secret")
	m := New(Options{
		Store:     store,
		Gateway:   ai.NewGateway(gen, nil, time.Second, zerolog.Nop()),
		Gate:      gate,
		Slideshow: ticker,
		Now:       fixedNow,
	})
	h := &harness{t: t, m: m, store: store, gate: gate}
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

// send feeds msg to the model and returns the command it produced.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(Model)
	if !ok {
		h.t.Fatalf("Update returned %T, want Model", next)
	}
	h.m = m
	return cmd
}

func (h *harness) keys(s string) tea.Cmd {
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *harness) special(k tea.KeyType) tea.Cmd {
	return h.send(tea.KeyMsg{Type: k})
}

// run executes cmd and feeds its message back.
func (h *harness) run(cmd tea.Cmd) {
	h.t.Helper()
	if cmd == nil {
		h.t.Fatal("expected a command")
	}
	h.send(cmd())
}

func (h *harness) login() {
	h.t.Helper()
	h.keys("5")
	h.keys("secret")
	h.run(h.special(tea.KeyEnter))
	if !h.gate.IsAdmin() {
		h.t.Fatal("login failed")
	}
}

func (h *harness) notice() string {
	h.t.Helper()
	n, ok := h.m.modal.(noticeModal)
	if !ok {
		h.t.Fatalf("modal = %T, want noticeModal", h.m.modal)
	}
	return n.text
}

func constant(text string) ai.Generator {
	return ai.GeneratorFunc(func(context.Context, ai.Request) (string, error) { return text, nil })
}

func TestClap_AddsOne(t *testing.T) {
	h := newHarness(t, nil, nil)

	h.keys("c")

	if got := h.store.TotalClaps(); got != site.DefaultTotalClaps+1 {
		t.Fatalf("TotalClaps = %d, want %d", got, site.DefaultTotalClaps+1)
	}
}

// brokenKV accepts reads and rejects writes.
type brokenKV struct{ *kv.Memory }

func (brokenKV) Set(context.Context, string, string) error { return errors.New("disk full") }

func TestClap_StorageFailureLogsStack(t *testing.T) {
	store, err := state.Open(context.Background(), brokenKV{kv.NewMemory()}, state.WithClock(fixedNow))
	if err != nil {
		t.Fatalf("state.Open: %v", err)
	}
	var buf bytes.Buffer
	h := &harness{t: t, store: store, m: New(Options{
		Store:  store,
		Logger: logging.NewWriter(&buf, zerolog.InfoLevel),
		Now:    fixedNow,
	})}
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})

	h.keys("c")

	if got := h.notice(); !strings.Contains(got, "disk full") {
		t.Fatalf("notice = %q, want the storage error", got)
	}
	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("log record not JSON: %v\n%s", err, buf.String())
	}
	if rec["message"] != "clap failed" || rec["level"] != "error" {
		t.Fatalf("record = %v, want clap failed at error level", rec)
	}
	if rec["component"] != "ui" {
		t.Fatalf("component = %v, want ui", rec["component"])
	}
	if _, ok := rec["stack"]; !ok {
		t.Fatalf("clap failure logged without stack: %s", buf.String())
	}
}

func TestSendMessage_AnonymousAndNotice(t *testing.T) {
	h := newHarness(t, nil, nil)

	h.keys("m")
	if h.m.focus != focusMessage {
		t.Fatalf("focus = %v, want focusMessage", h.m.focus)
	}
	h.special(tea.KeyEnter) // skip the name field
	h.keys("hello")
	h.special(tea.KeyCtrlS)

	msgs := h.store.Messages()
	if len(msgs) != 1 {
		t.Fatalf("Messages len = %d, want 1", len(msgs))
	}
	if msgs[0].Name != site.AnonymousName || msgs[0].Message != "hello" {
		t.Fatalf("message = %+v, want anonymous hello", msgs[0])
	}
	if got := h.notice(); got != noticeMessageSent {
		t.Fatalf("notice = %q, want %q", got, noticeMessageSent)
	}
	if h.m.focus != focusNone {
		t.Fatalf("focus = %v, want none after send", h.m.focus)
	}

	h.keys("x")
	if h.m.modal != nil {
		t.Fatal("notice not dismissed by key press")
	}
}

func TestSendMessage_BlankIsRejected(t *testing.T) {
	h := newHarness(t, nil, nil)

	h.keys("m")
	h.special(tea.KeyCtrlS)

	if got := h.notice(); got != site.ErrMessageRequired.Error() {
		t.Fatalf("notice = %q, want %q", got, site.ErrMessageRequired.Error())
	}
	if n := len(h.store.Messages()); n != 0 {
		t.Fatalf("Messages len = %d, want 0", n)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newHarness(t, nil, nil)

	h.keys("5")
	if _, ok := h.m.modal.(loginModal); !ok {
		t.Fatalf("modal = %T, want loginModal", h.m.modal)
	}
	h.keys("1234")
	h.run(h.special(tea.KeyEnter))

	if got := h.notice(); got != site.ErrWrongPassword.Error() {
		t.Fatalf("notice = %q, want %q", got, site.ErrWrongPassword.Error())
	}
	if h.gate.IsAdmin() {
		t.Fatal("gate unlocked by wrong password")
	}
	if h.m.currentView != ViewHome {
		t.Fatalf("view = %v, want Home", h.m.currentView)
	}
}

func TestLoginAndLogout(t *testing.T) {
	h := newHarness(t, nil, nil)

	h.login()
	if h.m.currentView != ViewAdmin {
		t.Fatalf("view = %v, want Dashboard", h.m.currentView)
	}

	h.keys("L")
	if h.gate.IsAdmin() {
		t.Fatal("still admin after logout")
	}
	if h.m.currentView != ViewHome {
		t.Fatalf("view = %v, want Home after logout", h.m.currentView)
	}
}

func TestComposeEntry_SavesWithMoodAndReflection(t *testing.T) {
	h := newHarness(t, constant("🌙 고요한 밤"), nil)
	h.login()

	h.keys("a")
	if h.m.focus != focusAuthor {
		t.Fatalf("focus = %v, want focusAuthor", h.m.focus)
	}
	h.keys("Title")
	h.special(tea.KeyEnter)
	h.special(tea.KeyEnter)
	h.keys("body text")
	cmd := h.special(tea.KeyCtrlS)
	if !h.m.composeTask.Pending() {
		t.Fatalf("compose state = %v, want pending", h.m.composeTask.State())
	}
	h.run(cmd)

	entries := h.store.Entries()
	if len(entries) != len(site.SeedEntries())+1 {
		t.Fatalf("Entries len = %d, want %d", len(entries), len(site.SeedEntries())+1)
	}
	e := entries[0]
	if e.Title != "Title" || e.Content != "body text" {
		t.Fatalf("entry = %+v", e)
	}
	if e.Mood != "🌙" {
		t.Fatalf("Mood = %q, want %q", e.Mood, "🌙")
	}
	if e.AIReflection != "🌙 고요한 밤" {
		t.Fatalf("AIReflection = %q", e.AIReflection)
	}
	if e.Date != "2024. 10. 21." {
		t.Fatalf("Date = %q", e.Date)
	}
	if got := h.notice(); got != noticeEntrySaved {
		t.Fatalf("notice = %q, want %q", got, noticeEntrySaved)
	}
	if h.m.composeTask.State() != task.Idle {
		t.Fatalf("compose state = %v, want idle", h.m.composeTask.State())
	}
	if v := h.m.authorForm.Values(); v[0] != "" || v[2] != "" {
		t.Fatalf("author form not cleared: %q", v)
	}
}

func TestComposeEntry_FallbacksWhenProviderFails(t *testing.T) {
	failing := ai.GeneratorFunc(func(context.Context, ai.Request) (string, error) {
		return "", errors.New("boom")
	})
	h := newHarness(t, failing, nil)
	h.login()

	h.keys("a")
	h.keys("Title")
	h.special(tea.KeyTab)
	h.special(tea.KeyTab)
	h.keys("body")
	h.run(h.special(tea.KeyCtrlS))

	e := h.store.Entries()[0]
	if e.AIReflection != ai.ReflectionFailed || e.Mood != ai.MoodFailed {
		t.Fatalf("entry = %+v, want fallbacks", e)
	}
}

func TestComposeEntry_RequiresTitleAndContent(t *testing.T) {
	h := newHarness(t, constant("x"), nil)
	h.login()

	h.keys("a")
	h.special(tea.KeyCtrlS)

	if got := h.notice(); got != site.ErrTitleRequired.Error() {
		t.Fatalf("notice = %q, want %q", got, site.ErrTitleRequired.Error())
	}
	if h.m.composeTask.State() != task.Idle {
		t.Fatalf("compose state = %v, want idle", h.m.composeTask.State())
	}
	if n := len(h.store.Entries()); n != len(site.SeedEntries()) {
		t.Fatalf("Entries len = %d, want unchanged", n)
	}
}

func TestDream_AnalyzesOnce(t *testing.T) {
	h := newHarness(t, constant("바다는 마음입니다."), nil)

	h.keys("4")
	h.keys("m")
	h.keys("바닷가를 걸었어요")
	cmd := h.special(tea.KeyCtrlS)
	if !h.m.dreamTask.Pending() {
		t.Fatal("dream task not pending")
	}

	// A second submit while pending is ignored.
	h.keys("m")
	if again := h.special(tea.KeyCtrlS); again != nil {
		t.Fatal("second analysis started while pending")
	}
	h.special(tea.KeyEsc)

	h.run(cmd)
	got, ok := h.m.dreamTask.Result()
	if !ok || got != "바다는 마음입니다." {
		t.Fatalf("Result = %q, %v", got, ok)
	}
}

func TestDream_EmptyInput(t *testing.T) {
	h := newHarness(t, constant("x"), nil)

	h.keys("4")
	h.keys("m")
	h.special(tea.KeyCtrlS)

	if got := h.notice(); got != site.ErrDreamRequired.Error() {
		t.Fatalf("notice = %q, want %q", got, site.ErrDreamRequired.Error())
	}
}

func TestRemoveImage_ClampsSlideshow(t *testing.T) {
	ticker := slideshow.New(time.Hour)
	t.Cleanup(ticker.Stop)
	ticker.SetImages(len(site.DefaultSettings().MainImages))
	ticker.Advance()
	ticker.Advance()

	h := newHarness(t, nil, ticker)
	h.login()
	h.keys("l") // Profile
	h.keys("l") // Slideshow
	if h.m.adminTab != tabSlideshow {
		t.Fatalf("tab = %v, want Slideshow", h.m.adminTab)
	}
	h.keys("j")
	h.keys("j")
	h.keys("d")

	if n := len(h.store.Settings().MainImages); n != 2 {
		t.Fatalf("MainImages len = %d, want 2", n)
	}
	if h.m.slide != 0 || ticker.Index() != 0 {
		t.Fatalf("slide = %d, ticker = %d, want 0", h.m.slide, ticker.Index())
	}
	if h.m.adminSel != 1 {
		t.Fatalf("adminSel = %d, want 1", h.m.adminSel)
	}

	h.keys("d")
	h.keys("d")
	if got := h.notice(); got != site.ErrLastImage.Error() {
		t.Fatalf("notice = %q, want %q", got, site.ErrLastImage.Error())
	}
	if n := len(h.store.Settings().MainImages); n != 1 {
		t.Fatalf("MainImages len = %d, want 1", n)
	}
}

func TestSlideMsg_UpdatesIndex(t *testing.T) {
	ticker := slideshow.New(time.Hour)
	t.Cleanup(ticker.Stop)
	h := newHarness(t, nil, ticker)

	if cmd := h.send(slideMsg(2)); cmd == nil {
		t.Fatal("slide update did not re-arm the wait")
	}
	if h.m.slide != 2 {
		t.Fatalf("slide = %d, want 2", h.m.slide)
	}
}

func TestEditField_UpdatesSettings(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.login()

	h.special(tea.KeyEnter) // first General field: site title
	if h.m.focus != focusField {
		t.Fatalf("focus = %v, want focusField", h.m.focus)
	}
	if got := h.m.fieldForm.Values()[0]; got != site.DefaultSettings().SiteTitle {
		t.Fatalf("field prefilled with %q", got)
	}
	h.special(tea.KeyCtrlU)
	h.keys("New Title")
	h.special(tea.KeyEnter)

	if got := h.store.Settings().SiteTitle; got != "New Title" {
		t.Fatalf("SiteTitle = %q, want %q", got, "New Title")
	}
	if h.m.focus != focusNone {
		t.Fatalf("focus = %v, want none", h.m.focus)
	}
}

func TestResetSettings_AfterConfirm(t *testing.T) {
	h := newHarness(t, nil, nil)
	if err := h.store.UpdateSetting(context.Background(), site.FieldSiteTitle, "changed"); err != nil {
		t.Fatalf("UpdateSetting: %v", err)
	}
	h.login()

	h.keys("R")
	if _, ok := h.m.modal.(confirmModal); !ok {
		t.Fatalf("modal = %T, want confirmModal", h.m.modal)
	}
	h.run(h.keys("y"))

	if got := h.store.Settings().SiteTitle; got != site.DefaultSettings().SiteTitle {
		t.Fatalf("SiteTitle = %q, want default", got)
	}
}

func TestDeleteEntry_OwnerOnly(t *testing.T) {
	h := newHarness(t, nil, nil)

	h.keys("2")
	h.keys("d")
	if h.m.modal != nil {
		t.Fatal("visitor could start a delete")
	}

	h.login()
	h.keys("2")
	h.keys("d")
	h.run(h.keys("y"))

	entries := h.store.Entries()
	if len(entries) != 1 || entries[0].ID != "2" {
		t.Fatalf("Entries = %+v, want only entry 2", entries)
	}
}

func TestView_RendersEveryPage(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.login()

	pages := map[string]string{
		"1": "WEB CLAP",
		"2": "LOGS FOUND",
		"3": "USER_PROFILE_DATA",
		"4": "DREAM_ANALYZER",
		"5": "Owner Dashboard",
	}
	for k, want := range pages {
		h.keys(k)
		if out := h.m.View(); !strings.Contains(out, want) {
			t.Fatalf("page %s view missing %q", k, want)
		}
	}
}
