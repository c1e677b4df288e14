package linkedin

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\u2028", "\n", "\u2029", "\n", "\f", "\n")

// NormalizeLines splits raw export text into trimmed, non-empty lines.
// NFKC folds the compatibility forms PDF converters emit (ligatures, full-width
// letters, non-breaking spaces) so the heuristics see plain text.
func NormalizeLines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	text = norm.NFKC.String(text)
	text = lineBreaks.Replace(text)
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = collapseSpaces(strings.TrimSpace(l))
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

func collapseSpaces(s string) string {
	if !strings.Contains(s, "  ") && !strings.Contains(s, "\t") {
		return s
	}
	return strings.Join(strings.Fields(s), " ")
}

// foldLine lowers a line for case-insensitive comparison. A Caser keeps state,
// so one is built per call.
func foldLine(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "\u2019", "'")
	return cases.Fold().String(s)
}

// foldedPrefixLen returns the byte length of the shortest prefix of s whose
// folded form equals prefix. Folding can change byte lengths, so the offset
// is found on s itself.
func foldedPrefixLen(s, prefix string) (int, bool) {
	if prefix == "" {
		return 0, true
	}
	fold := cases.Fold()
	for end := 0; end < len(s); {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
		f := fold.String(s[:end])
		if f == prefix {
			return end, true
		}
		if !strings.HasPrefix(prefix, f) {
			return 0, false
		}
	}
	return 0, false
}
