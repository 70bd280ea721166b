package site

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Font families offered by the typography settings.
const (
	FontGulim = "Gulim"
	FontDotum = "Dotum"
)

// Placeholders substituted for blank optional input.
const (
	AnonymousName      = "익명"
	DefaultBannerTitle = "Neighbor"
	DefaultEntryTag    = "Archive"
)

// DefaultTotalClaps seeds the clap counter on first run.
const DefaultTotalClaps = 3313

// Settings is the site configuration edited from the admin dashboard.
type Settings struct {
	SiteTitle       string `json:"siteTitle"`
	MarqueeText     string `json:"marqueeText"`
	SystemMessage   string `json:"systemMessage"`
	ProfileName     string `json:"profileName"`
	ProfileStatus   string `json:"profileStatus"`
	ProfileIdentity string `json:"profileIdentity"`
	ProfileLikes    string `json:"profileLikes"`
	ProfileDislikes string `json:"profileDislikes,omitempty"`
	ProfileBio      string `json:"profileBio"`
	ProfileFavs     string `json:"profileFavs,omitempty"`
	SinceDate       string `json:"sinceDate"`

	// Design
	SidebarColor    string   `json:"sidebarColor"`
	BgStartColor    string   `json:"bgStartColor"`
	BgEndColor      string   `json:"bgEndColor"`
	GradientAngle   string   `json:"gradientAngle"`
	AutoGradient    bool     `json:"autoGradient"`
	MarqueeBgColor  string   `json:"marqueeBgColor"`
	MainImageURL    string   `json:"mainImageUrl"`
	MainImages      []string `json:"mainImages"`
	MainImageArtist string   `json:"mainImageArtist"`
	ProfileImageURL string   `json:"profileImageUrl"`

	// Typography
	FontFamily    string `json:"fontFamily"`
	FontSize      string `json:"fontSize"`
	LetterSpacing string `json:"letterSpacing"`
	LineHeight    string `json:"lineHeight"`
}

// Clone returns a copy that shares no slices with s.
func (s Settings) Clone() Settings {
	s.MainImages = slices.Clone(s.MainImages)
	return s
}

// DiaryEntry is a single archived post. Entries are never edited after creation.
type DiaryEntry struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	Mood         string   `json:"mood,omitempty"`
	Tags         []string `json:"tags"`
	AIReflection string   `json:"aiReflection,omitempty"`
}

// ClapMessage is a note left alongside a clap.
type ClapMessage struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Banner links to a neighbor site.
type Banner struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
	SiteURL  string `json:"siteUrl"`
	Title    string `json:"title"`
}

// Draft is the author's input for a new diary entry.
type Draft struct {
	Title    string
	Content  string
	ImageURL string
}

// Validate reports the first missing required field.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(d.Content) == "" {
		return ErrContentRequired
	}
	return nil
}

// NewEntry builds an entry from a validated draft and the generated texts.
func NewEntry(d Draft, mood, reflection string, now time.Time) DiaryEntry {
	return DiaryEntry{
		ID:           NewID(),
		Date:         FormatDate(now),
		Title:        d.Title,
		Content:      d.Content,
		ImageURL:     strings.TrimSpace(d.ImageURL),
		Mood:         mood,
		Tags:         []string{DefaultEntryTag},
		AIReflection: reflection,
	}
}

// NewID returns a unique, time-ordered identifier.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// FormatDate renders t the way the ko-KR locale prints a date, e.g. "2024. 10. 21.".
func FormatDate(t time.Time) string {
	return t.Format("2006. 1. 2.")
}

// FormatTimestamp renders t like the ko-KR locale's date-time string,
// e.g. "2024. 10. 21. 오후 3:04:05".
func FormatTimestamp(t time.Time) string {
	half := "오전"
	if t.Hour() >= 12 {
		half = "오후"
	}
	return FormatDate(t) + " " + half + " " + t.Format("3:04:05")
}
