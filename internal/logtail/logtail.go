package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one parsed log record.
type Entry struct {
	Time      time.Time
	Level     string
	Component string
	Key       string
	Message   string
	Error     string
}

type record struct {
	Time      string `json:"time"`
	Level     string `json:"level"`
	Component string `json:"component"`
	Key       string `json:"key"`
	Message   string `json:"message"`
	Error     string `json:"error"`
}

// Parse decodes a zerolog JSON line. Anything else becomes a bare message.
func Parse(line string) Entry {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return Entry{Message: trimmed}
	}
	var rec record
	if err := json.Unmarshal([]byte(trimmed), &rec); err != nil {
		return Entry{Message: trimmed}
	}
	e := Entry{
		Level:     strings.ToLower(rec.Level),
		Component: rec.Component,
		Key:       rec.Key,
		Message:   rec.Message,
		Error:     rec.Error,
	}
	if ts, err := time.Parse(time.RFC3339, rec.Time); err == nil {
		e.Time = ts
	}
	return e
}

// ReadEntries parses the last maxLines records. When minLevel is set, records
// below it are dropped; unparsed lines are always kept.
func ReadEntries(path string, maxLines int, minLevel string) ([]Entry, error) {
	lines, err := Read(path, maxLines)
	if err != nil {
		return nil, err
	}
	threshold := levelRank(minLevel)
	entries := make([]Entry, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e := Parse(line)
		if e.Level != "" && levelRank(e.Level) < threshold {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// String renders e as a single display line.
func (e Entry) String() string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("2006-01-02 15:04:05"))
		b.WriteByte(' ')
	}
	if e.Level != "" {
		b.WriteString(strings.ToUpper(e.Level))
		b.WriteByte(' ')
	}
	if e.Component != "" {
		b.WriteString("[" + e.Component + "] ")
	}
	b.WriteString(e.Message)
	if e.Key != "" {
		b.WriteString(" key=" + e.Key)
	}
	if e.Error != "" {
		b.WriteString(" – " + e.Error)
	}
	return strings.TrimSpace(b.String())
}

func levelRank(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return -1
	case "debug":
		return 0
	case "info":
		return 1
	case "warn", "warning":
		return 2
	case "error":
		return 3
	case "fatal":
		return 4
	case "panic":
		return 5
	default:
		return -1
	}
}
