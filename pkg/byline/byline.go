// Package byline recovers journalist names from article text using
// indicator-phrase and name-shape heuristics. It is best effort: false
// negatives are expected, and a miss is reported rather than guessed.
package byline

import (
	"regexp"
	"strings"
	"unicode"
)

// indicators are phrases that typically precede a byline, in match priority order.
var indicators = []string{
	`by\s+`,
	`written\s+by\s+`,
	`reported\s+by\s+`,
	`author[:\s]+`,
	`correspondent[:\s]+`,
	`staff\s+writer[:\s]+`,
	`byline[:\s]+`,
	`\|\s+`,
}

// namePatterns capture word sequences shaped like personal names. Matching is
// case-insensitive; capitalization is enforced during validation instead.
var namePatterns = []string{
	`([A-Z][a-z]+(?:\s+[A-Z]\.?\s+)?[A-Z][a-z]+(?:-[A-Z][a-z]+)?)`, // First (Middle) Last(-Last)
	`([A-Z][a-z]+\s+[a-z]+\s+[A-Z][a-z]+)`,                         // First van/de/la Last
}

// blocklist disqualifies matches that are outlet or wire-service names rather
// than people.
var blocklist = []string{
	"news", "times", "post", "reuters", "associated", "press", "agency",
	"today", "yesterday", "tomorrow", "google", "facebook", "twitter",
	"breaking", "exclusive", "update", "latest", "report", "copyright",
}

var searchPatterns = compilePatterns()

func compilePatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(indicators)*len(namePatterns))
	for _, ind := range indicators {
		for _, name := range namePatterns {
			patterns = append(patterns, regexp.MustCompile(`(?i)`+ind+name))
		}
	}
	return patterns
}

const bodyWindow = 500

// Extract searches the title, then the start of the body, then the end of the
// body for a validated journalist name. It returns the first hit and stops.
func Extract(title, body string) (string, bool) {
	if name, ok := search(title); ok {
		return name, true
	}

	if body == "" {
		return "", false
	}

	start := body
	if len(start) > bodyWindow {
		start = start[:bodyWindow]
	}
	if name, ok := search(start); ok {
		return name, true
	}

	if len(body) > bodyWindow {
		if name, ok := search(body[len(body)-bodyWindow:]); ok {
			return name, true
		}
	}

	return "", false
}

func search(text string) (string, bool) {
	for _, re := range searchPatterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			if validName(match[1]) {
				return match[1], true
			}
		}
	}
	return "", false
}

// validName rejects candidates that are too long, contain blocklisted terms,
// have an implausible word count, or are not capitalized like a proper name.
func validName(name string) bool {
	if len(name) > 40 {
		return false
	}

	lower := strings.ToLower(name)
	for _, term := range blocklist {
		if strings.Contains(lower, term) {
			return false
		}
	}

	words := strings.Fields(name)
	if len(words) < 1 || len(words) > 4 {
		return false
	}

	for _, word := range words {
		if len(word) > 1 && !unicode.IsUpper([]rune(word)[0]) {
			return false
		}
	}

	return true
}
