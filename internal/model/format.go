package model

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countPrinter = message.NewPrinter(language.English)

// FormatCount renders an engagement counter with thousands separators ("12,345").
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// FormatTopicName capitalizes the first letter of every space-separated word and leaves the
// rest of each word untouched ("machine learning" -> "Machine Learning", "NeurIPS" stays).
func FormatTopicName(topic string) string {
	words := strings.Split(topic, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

var authorSeparators = regexp.MustCompile(`,|;|\band\b`)

// FormatAuthors shortens an author list: "Last", "Last1 and Last2", or "Last1 et al.".
func FormatAuthors(authors string) string {
	if authors == "" {
		return ""
	}
	var names []string
	for _, a := range authorSeparators.Split(authors, -1) {
		if a = strings.TrimSpace(a); a != "" {
			names = append(names, a)
		}
	}
	switch len(names) {
	case 0:
		return authors
	case 1:
		return LastName(names[0])
	case 2:
		return LastName(names[0]) + " and " + LastName(names[1])
	default:
		return LastName(names[0]) + " et al."
	}
}

// LastName extracts a family name from "First Last" or "Last, First".
func LastName(full string) string {
	full = strings.TrimSpace(full)
	if full == "" {
		return ""
	}
	if before, _, ok := strings.Cut(full, ","); ok {
		return strings.TrimSpace(before)
	}
	parts := strings.Fields(full)
	return parts[len(parts)-1]
}
