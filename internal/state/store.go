package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/pigcat/internal/kv"
	"github.com/five82/pigcat/internal/logging"
	"github.com/five82/pigcat/internal/site"
)

// Storage keys. They carry the app prefix so they never collide with other
// records sharing the same store.
const (
	KeySettings     = "pigcat_settings_v6_bitmap"
	KeyEntries      = "pigcat_entries"
	KeyTotalClaps   = "pigcat_total_claps"
	KeyClapMessages = "pigcat_clap_messages"
	KeyBanners      = "pigcat_banners"
)

// Diagnostic records a slice that fell back to its default on load.
type Diagnostic struct {
	Key string
	Err error
	At  time.Time
}

// Store is the single owner of every persisted slice.
type Store struct {
	mu  sync.RWMutex
	kv  kv.Store
	log zerolog.Logger
	now func() time.Time

	settings *Slice[site.Settings]
	entries  *Slice[[]site.DiaryEntry]
	claps    *Slice[int]
	messages *Slice[[]site.ClapMessage]
	banners  *Slice[[]site.Banner]

	diagnostics []Diagnostic
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the time source used for record dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// Open builds a Store over backing and loads every slice. Decode failures fall
// back to defaults; storage failures are returned.
func Open(ctx context.Context, backing kv.Store, opts ...Option) (*Store, error) {
	if backing == nil {
		return nil, fmt.Errorf("state requires a kv store")
	}
	s := &Store{
		kv:  backing,
		log: zerolog.Nop(),
		now: time.Now,
		settings: NewSlice(KeySettings, site.DefaultSettings,
			func(raw []byte) (site.Settings, error) {
				v, err := site.DecodeSettings(raw)
				if err != nil {
					return v, err
				}
				return site.Migrate(v), nil
			},
			site.Settings.Clone),
		entries:  NewSlice(KeyEntries, site.SeedEntries, nil, slices.Clone[[]site.DiaryEntry]),
		claps:    NewSlice(KeyTotalClaps, func() int { return site.DefaultTotalClaps }, nil, nil),
		messages: NewSlice(KeyClapMessages, func() []site.ClapMessage { return []site.ClapMessage{} }, nil, slices.Clone[[]site.ClapMessage]),
		banners:  NewSlice(KeyBanners, site.SeedBanners, nil, slices.Clone[[]site.Banner]),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logging.Component(s.log, "state")

	loaders := []interface {
		Key() string
		Load(context.Context, kv.Store) error
	}{s.settings, s.entries, s.claps, s.messages, s.banners}

	for _, l := range loaders {
		err := l.Load(ctx, backing)
		if err == nil {
			continue
		}
		var de *site.DecodeError
		if !errors.As(err, &de) {
			return nil, err
		}
		s.log.Warn().Str("key", l.Key()).Err(de.Err).Msg("malformed record, using default")
		s.diagnostics = append(s.diagnostics, Diagnostic{Key: l.Key(), Err: de, At: s.now()})
	}
	// A decoded-but-null record leaves nil lists; normalise so every slice is defined.
	if s.messages.value == nil {
		s.messages.value = []site.ClapMessage{}
	}
	if s.entries.value == nil {
		s.entries.value = []site.DiaryEntry{}
	}
	if s.banners.value == nil {
		s.banners.value = []site.Banner{}
	}
	return s, nil
}

// Diagnostics returns the load-time decode failures.
func (s *Store) Diagnostics() []Diagnostic {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.diagnostics)
}

// Settings

// Settings returns the current site settings.
func (s *Store) Settings() site.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Get()
}

// UpdateSetting assigns a single settings field.
func (s *Store) UpdateSetting(ctx context.Context, field site.SettingField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.settings.Get()
	if err := next.Set(field, value); err != nil {
		return err
	}
	return s.settings.Set(ctx, s.kv, next)
}

// ResetSettings forgets the stored settings record and restores the built-in
// defaults. A load diagnostic for the record is dropped with it.
func (s *Store) ResetSettings(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.settings.Reset(ctx, s.kv); err != nil {
		return err
	}
	s.diagnostics = slices.DeleteFunc(s.diagnostics, func(d Diagnostic) bool {
		return d.Key == KeySettings
	})
	return nil
}

// AddMainImage appends an image to the slideshow list.
func (s *Store) AddMainImage(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return site.ErrImageRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Update(ctx, s.kv, func(v site.Settings) site.Settings {
		v.MainImages = append(v.MainImages, url)
		return v
	})
}

// RemoveMainImage removes the image at index. The last remaining image cannot
// be removed.
func (s *Store) RemoveMainImage(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.settings.Get()
	if len(current.MainImages) <= 1 {
		return site.ErrLastImage
	}
	if index < 0 || index >= len(current.MainImages) {
		return fmt.Errorf("image %d: %w", index, site.ErrNotFound)
	}
	current.MainImages = slices.Delete(current.MainImages, index, index+1)
	return s.settings.Set(ctx, s.kv, current)
}

// Entries

// Entries returns all diary entries, newest first.
func (s *Store) Entries() []site.DiaryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.Get()
}

// RecentEntries returns at most n of the newest entries.
func (s *Store) RecentEntries(n int) []site.DiaryEntry {
	entries := s.Entries()
	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// AddEntry places e at the front of the archive.
func (s *Store) AddEntry(ctx context.Context, e site.DiaryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Update(ctx, s.kv, func(v []site.DiaryEntry) []site.DiaryEntry {
		return append([]site.DiaryEntry{e}, v...)
	})
}

// DeleteEntry removes the entry with id, preserving the order of the rest.
func (s *Store) DeleteEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := removeByID(s.entries.Get(), id, func(e site.DiaryEntry) string { return e.ID })
	if !ok {
		return fmt.Errorf("entry %s: %w", id, site.ErrNotFound)
	}
	return s.entries.Set(ctx, s.kv, next)
}

// Claps

// TotalClaps returns the clap counter.
func (s *Store) TotalClaps() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.claps.Get()
}

// Clap adds exactly one clap and returns the new total.
func (s *Store) Clap(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.claps.Set(ctx, s.kv, s.claps.Get()+1); err != nil {
		return s.claps.Get(), err
	}
	return s.claps.Get(), nil
}

// Messages

// Messages returns clap messages, newest first.
func (s *Store) Messages() []site.ClapMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.messages.Get()
}

// SendMessage records a clap message. A blank name is stored as the
// anonymous placeholder.
func (s *Store) SendMessage(ctx context.Context, name, message string) (site.ClapMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return site.ClapMessage{}, site.ErrMessageRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = site.AnonymousName
	}
	msg := site.ClapMessage{
		ID:      site.NewID(),
		Date:    site.FormatTimestamp(s.now()),
		Name:    name,
		Message: message,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.messages.Update(ctx, s.kv, func(v []site.ClapMessage) []site.ClapMessage {
		return append([]site.ClapMessage{msg}, v...)
	})
	if err != nil {
		return site.ClapMessage{}, err
	}
	return msg, nil
}

// DeleteMessage removes the message with id.
func (s *Store) DeleteMessage(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := removeByID(s.messages.Get(), id, func(m site.ClapMessage) string { return m.ID })
	if !ok {
		return fmt.Errorf("message %s: %w", id, site.ErrNotFound)
	}
	return s.messages.Set(ctx, s.kv, next)
}

// Banners

// Banners returns neighbor banners in insertion order.
func (s *Store) Banners() []site.Banner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.banners.Get()
}

// AddBanner appends a banner. Image and link are required; a blank title
// becomes the default.
func (s *Store) AddBanner(ctx context.Context, imageURL, siteURL, title string) (site.Banner, error) {
	imageURL, siteURL, title = strings.TrimSpace(imageURL), strings.TrimSpace(siteURL), strings.TrimSpace(title)
	if imageURL == "" || siteURL == "" {
		return site.Banner{}, site.ErrBannerFieldsRequired
	}
	if title == "" {
		title = site.DefaultBannerTitle
	}
	b := site.Banner{ID: site.NewID(), ImageURL: imageURL, SiteURL: siteURL, Title: title}

	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.banners.Update(ctx, s.kv, func(v []site.Banner) []site.Banner {
		return append(v, b)
	})
	if err != nil {
		return site.Banner{}, err
	}
	return b, nil
}

// DeleteBanner removes the banner with id.
func (s *Store) DeleteBanner(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := removeByID(s.banners.Get(), id, func(b site.Banner) string { return b.ID })
	if !ok {
		return fmt.Errorf("banner %s: %w", id, site.ErrNotFound)
	}
	return s.banners.Set(ctx, s.kv, next)
}

// Export

// Export is every slice in one document.
type Export struct {
	Settings     site.Settings      `json:"settings"`
	Entries      []site.DiaryEntry  `json:"entries"`
	TotalClaps   int                `json:"totalClaps"`
	ClapMessages []site.ClapMessage `json:"clapMessages"`
	Banners      []site.Banner      `json:"banners"`
}

// Export returns the current value of every slice.
func (s *Store) Export() Export {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Export{
		Settings:     s.settings.Get(),
		Entries:      s.entries.Get(),
		TotalClaps:   s.claps.Get(),
		ClapMessages: s.messages.Get(),
		Banners:      s.banners.Get(),
	}
}

// MarshalIndent renders the export as indented JSON.
func (e Export) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	i := slices.IndexFunc(items, func(v T) bool { return idOf(v) == id })
	if i < 0 {
		return items, false
	}
	return slices.Delete(items, i, i+1), true
}
