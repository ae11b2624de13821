package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Discord timestamp styles
const (
	StyleRelative = "R"
	StyleFull     = "F"
	StyleShort    = "f"
)

// Timestamp renders a Discord timestamp tag such as <t:1700000000:R>
func Timestamp(t time.Time, style string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), style)
}

// Duration renders a duration the way a person would say it: "1 day, 2 hours and 5 minutes"
func Duration(d time.Duration) string {
	if d < time.Second {
		return "0 seconds"
	}

	units := []struct {
		name string
		size time.Duration
	}{
		{"week", 7 * 24 * time.Hour},
		{"day", 24 * time.Hour},
		{"hour", time.Hour},
		{"minute", time.Minute},
		{"second", time.Second},
	}

	var parts []string
	for _, u := range units {
		n := d / u.size
		if n == 0 {
			continue
		}
		d -= n * u.size

		name := u.name
		if n != 1 {
			name += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, name))
	}

	return List(parts)
}

// List joins items as "a, b and c"
func List(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

var numbers = message.NewPrinter(language.English)

// Number renders an integer with thousands separators
func Number(n int64) string {
	return numbers.Sprintf("%d", n)
}

// Bool renders a setting toggle
func Bool(v bool) string {
	if v {
		return "Enabled"
	}
	return "Disabled"
}

// Truncate shortens s to at most n runes
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
