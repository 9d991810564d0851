package songs

import (
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Song files use an iTrans-style markup where each metadata line looks like
// \film{Dil Se}% or \singer{Lata Mangeshkar, Udit Narayan}%.
var (
	filmPattern = regexp.MustCompile(`\\film\{(.+?)\}%`)
	yearPattern = regexp.MustCompile(`\\year\{(.+?)\}%`)

	peoplePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\\starring\{(.+?)\}%`),
		regexp.MustCompile(`\\singer\{(.+?)\}%`),
		regexp.MustCompile(`\\music\{(.+?)\}%`),
		regexp.MustCompile(`\\lyrics\{(.+?)\}%`),
	}
)

// Parse extracts a Record from the raw text of one song file.
func Parse(id int, text string) Record {
	rec := Record{ID: id}

	if film := extractField(filmPattern, text); film != "" {
		rec.Film = &film
	}

	if yearStr := extractField(yearPattern, text); yearStr != "" {
		if isDigits(yearStr) {
			year, _ := strconv.Atoi(yearStr)
			rec.Year = &year
		} else {
			slog.Warn("Non-digit year in song file", "id", id, "year", yearStr)
		}
	}

	seen := make(map[string]struct{})
	for _, pattern := range peoplePatterns {
		for _, name := range extractPeopleField(pattern, text) {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			rec.People = append(rec.People, name)
		}
	}
	sort.Strings(rec.People)

	return rec
}

// isDigits reports whether s is non-empty and all ASCII digits.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// extractField returns the trimmed first group of the pattern, or "".
func extractField(pattern *regexp.Regexp, text string) string {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// extractPeopleField splits a comma-separated credit line into trimmed names.
func extractPeopleField(pattern *regexp.Regexp, text string) []string {
	raw := extractField(pattern, text)
	if raw == "" {
		return nil
	}

	var names []string
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
