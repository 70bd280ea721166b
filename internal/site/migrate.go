package site

import (
	"encoding/json"
	"strings"
)

// SettingsSchemaVersion is the current persisted settings shape.
// Version 1 records carry only mainImageUrl; version 2 adds mainImages.
const SettingsSchemaVersion = 2

// DecodeSettings decodes a persisted settings record of any known version.
// Fields missing from older records keep their zero value; pass the result
// through Migrate before use.
func DecodeSettings(raw []byte) (Settings, error) {
	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		return Settings{}, &DecodeError{Err: err}
	}
	return s, nil
}

// SchemaVersion reports which settings shape s was decoded from.
func SchemaVersion(s Settings) int {
	if len(s.MainImages) == 0 {
		return 1
	}
	return SettingsSchemaVersion
}

// Migrate reshapes s into the current schema. It is pure and idempotent:
// a value that already has images passes through unchanged.
func Migrate(s Settings) Settings {
	out := s.Clone()
	if SchemaVersion(out) == SettingsSchemaVersion {
		return out
	}
	image := strings.TrimSpace(out.MainImageURL)
	if image == "" {
		image = DefaultSettings().MainImageURL
	}
	out.MainImages = []string{image}
	return out
}
