package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"
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

// Line is one decoded zerolog record.
type Line struct {
	Time      time.Time
	Level     string
	Component string
	Message   string
	Error     string
	Fields    []Field
}

// Field is an extra key/value on a record, in key order.
type Field struct {
	Key   string
	Value string
}

var reservedKeys = map[string]bool{
	"time":      true,
	"level":     true,
	"message":   true,
	"component": true,
	"error":     true,
}

// Parse decodes a JSON log line. Lines that are not JSON objects are
// returned as the message with ok=false.
func Parse(raw string) (Line, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !gjson.Valid(trimmed) {
		return Line{Message: raw}, false
	}
	doc := gjson.Parse(trimmed)
	if !doc.IsObject() {
		return Line{Message: raw}, false
	}

	line := Line{
		Level:     strings.ToUpper(doc.Get("level").String()),
		Component: doc.Get("component").String(),
		Message:   doc.Get("message").String(),
		Error:     doc.Get("error").String(),
	}
	if ts := doc.Get("time").String(); ts != "" {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			line.Time = parsed
		}
	}
	if line.Level == "" {
		line.Level = "INFO"
	}
	doc.ForEach(func(key, value gjson.Result) bool {
		if !reservedKeys[key.String()] {
			line.Fields = append(line.Fields, Field{Key: key.String(), Value: value.String()})
		}
		return true
	})
	sort.Slice(line.Fields, func(i, j int) bool { return line.Fields[i].Key < line.Fields[j].Key })
	return line, true
}

// Format renders a raw log line in the human layout used by the log view:
//
//	2025-10-08 21:01:05 WARN [leaderboard] – global leaderboard fetch failed
//	    - error: connection refused
//	    - failures: 2
func Format(raw string) string {
	line, ok := Parse(raw)
	if !ok {
		return raw
	}

	parts := make([]string, 0, 3)
	if !line.Time.IsZero() {
		parts = append(parts, line.Time.In(time.Local).Format("2006-01-02 15:04:05"))
	}
	parts = append(parts, line.Level)
	if line.Component != "" {
		parts = append(parts, "["+line.Component+"]")
	}
	header := strings.Join(parts, " ")
	if line.Message != "" {
		header += " – " + line.Message
	}

	var builder strings.Builder
	builder.WriteString(header)
	if line.Error != "" {
		builder.WriteString("\n    - error: ")
		builder.WriteString(line.Error)
	}
	for _, f := range line.Fields {
		if strings.TrimSpace(f.Value) == "" {
			continue
		}
		builder.WriteString("\n    - ")
		builder.WriteString(f.Key)
		builder.WriteString(": ")
		builder.WriteString(f.Value)
	}
	return builder.String()
}

// FormatLines formats each raw line, splitting multi-line results so every
// returned string is one display row.
func FormatLines(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		out = append(out, strings.Split(Format(r), "\n")...)
	}
	return out
}
