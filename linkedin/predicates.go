package linkedin

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	personNameRe  = regexp.MustCompile(`^\p{Lu}\p{Ll}+ \p{Lu}\p{Ll}+$`)
	leadingYearRe = regexp.MustCompile(`^\d{4}`)
	phoneRe       = regexp.MustCompile(`^\+?[\d\s().-]{7,}$`)
	skillSplitRe  = regexp.MustCompile(`\s*[•·|,;]\s*`)
)

// LooksLikePersonName reports whether line is two capitalized words with no
// contact markers and a rune length in [minLen, maxLen).
func LooksLikePersonName(line string, minLen, maxLen int) bool {
	if !runeLenWithin(line, minLen, maxLen) {
		return false
	}
	if LooksLikeContactLine(line) {
		return false
	}
	return personNameRe.MatchString(line)
}

// LooksLikeContactLine reports email addresses, web links and phone numbers.
func LooksLikeContactLine(line string) bool {
	lower := strings.ToLower(line)
	switch {
	case strings.Contains(lower, "@"),
		strings.Contains(lower, "www"),
		strings.Contains(lower, "http://"),
		strings.Contains(lower, "https://"),
		strings.Contains(lower, "linkedin.com"):
		return true
	}
	return phoneRe.MatchString(line) && countDigits(line) >= 9
}

// DurationPattern compiles the "YEAR ... connective" matcher for a word list.
func DurationPattern(words []string) *regexp.Regexp {
	alts := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		q := regexp.QuoteMeta(w)
		if isWordish(w) {
			q = `\b` + q + `\b`
		}
		alts = append(alts, q)
	}
	if len(alts) == 0 {
		alts = append(alts, "-")
	}
	return regexp.MustCompile(`(?i)\d{4}.*(?:` + strings.Join(alts, "|") + `)`)
}

// LooksLikeDurationLine reports whether line is a date range such as
// "2020 - Present" or "januari 2019 tot heden".
func LooksLikeDurationLine(line string, pattern *regexp.Regexp) bool {
	if pattern == nil {
		return false
	}
	return pattern.MatchString(line)
}

// CompanyRules holds the vocabulary a company line is judged against.
type CompanyRules struct {
	MinLen        int
	MaxLen        int
	Months        []string
	LocationWords []string
}

// LooksLikeCompanyLine reports whether line can open an experience entry: a
// bounded length, no leading year, no month names and none of the characters
// or words that mark dates and locations.
func LooksLikeCompanyLine(line string, rules CompanyRules) bool {
	if !runeLenWithin(line, rules.MinLen, rules.MaxLen) {
		return false
	}
	if leadingYearRe.MatchString(line) {
		return false
	}
	if strings.ContainsAny(line, ",()•") {
		return false
	}
	tokens := words(foldLine(line))
	for _, w := range tokens {
		if containsString(rules.Months, w) {
			return false
		}
	}
	padded := " " + strings.Join(tokens, " ") + " "
	for _, loc := range rules.LocationWords {
		if strings.Contains(padded, " "+strings.Join(words(loc), " ")+" ") {
			return false
		}
	}
	return true
}

// HasAvailabilityMarker reports whether any phrase occurs in the lines,
// case-insensitively. Lines are joined so a phrase broken by the PDF
// converter still matches.
func HasAvailabilityMarker(lines []string, phrases []string) bool {
	if len(lines) == 0 || len(phrases) == 0 {
		return false
	}
	joined := foldLine(strings.Join(lines, " "))
	for _, p := range phrases {
		if p != "" && strings.Contains(joined, p) {
			return true
		}
	}
	return false
}

// SplitSkillLine splits a line on bullets, pipes, commas and semicolons.
func SplitSkillLine(line string) []string {
	parts := skillSplitRe.Split(line, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// DedupeSkills drops case-insensitive repeats, keeping the first spelling.
func DedupeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		key := foldLine(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func runeLenWithin(s string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(s)
	if n < minLen {
		return false
	}
	return maxLen <= 0 || n < maxLen
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func isWordish(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
