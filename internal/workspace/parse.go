package workspace

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	groupPattern = regexp.MustCompile(`^([A-Za-z0-9_-]+):$`)
	itemPattern  = regexp.MustCompile(`^[ \t]+([A-Za-z0-9_-]+):[ \t]*(.*)$`)
)

// MalformedLineError reports a config line that matches neither the group
// nor the item grammar. It is only surfaced in strict mode; Parse drops such
// lines silently.
type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed config line %d: %q", e.Line, e.Text)
}

// Parse turns declarative workspace text into a Config. It is total:
// malformed lines are silently dropped, never rejected. A repeated group
// header reopens the existing group and appends to it.
func Parse(text string) Config {
	cfg, _ := parse(text, false)
	return cfg
}

// ParseStrict parses like Parse but returns a *MalformedLineError for the
// first line that would have been dropped.
func ParseStrict(text string) (Config, error) {
	return parse(text, true)
}

func parse(text string, strict bool) (Config, error) {
	var cfg Config
	groups := make(map[string]*Group)

	var current *Group
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimRightFunc(stripComment(raw), unicode.IsSpace)
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := groupPattern.FindStringSubmatch(line); m != nil {
			name := m[1]
			if g, ok := groups[name]; ok {
				current = g
			} else {
				current = &Group{Name: name}
				groups[name] = current
				cfg.Groups = append(cfg.Groups, current)
			}
			continue
		}

		if m := itemPattern.FindStringSubmatch(line); m != nil && current != nil {
			current.Items = append(current.Items, Item{Name: m[1], Path: m[2]})
			continue
		}

		// Unmatched line, or an indented item with no open group.
		if strict {
			return Config{}, &MalformedLineError{Line: i + 1, Text: raw}
		}
	}

	return cfg, nil
}

// stripComment removes a trailing "# ..." comment. A '#' only starts a
// comment at the beginning of the line or after whitespace, so paths
// containing '#' survive.
func stripComment(line string) string {
	for i, r := range line {
		if r != '#' {
			continue
		}
		if i == 0 || unicode.IsSpace(rune(line[i-1])) {
			return line[:i]
		}
	}
	return line
}
