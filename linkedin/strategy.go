package linkedin

import (
	"regexp"
	"strings"
)

// Strategy reads one export layout: a locale's header vocabulary or a
// greeting template.
type Strategy interface {
	Name() string
	// DetectSections locates the section headers of this layout.
	DetectSections(lines []string) Boundaries
	// DetectIdentity finds the first name line and the headline after it.
	DetectIdentity(lines []string) Identity
	// IsHeader reports whether line is one of this layout's section headers.
	IsHeader(line string) bool
	// CompanyRules and DurationPattern feed the experience scan.
	CompanyRules() CompanyRules
	DurationPattern() *regexp.Regexp
}

// StrategiesFor builds the strategies of v in priority order. Every strategy
// refuses to read another layout's header as a name or headline.
func StrategiesFor(v Vocabulary) []Strategy {
	reserved := make(map[string]struct{})
	for _, t := range v.Strategies {
		for _, h := range t.Headers.all() {
			reserved[h] = struct{}{}
		}
	}
	out := make([]Strategy, 0, len(v.Strategies))
	for _, t := range v.Strategies {
		switch t.Kind {
		case KindHeaders:
			out = append(out, newHeaderStrategy(t, v.Limits, reserved))
		case KindTemplate:
			out = append(out, newTemplateStrategy(t, v.Limits, reserved))
		}
	}
	return out
}

func (h Headers) all() []string {
	var out []string
	out = append(out, h.Summary...)
	out = append(out, h.Experience...)
	out = append(out, h.Education...)
	out = append(out, h.Skills...)
	out = append(out, h.Contact...)
	out = append(out, h.Other...)
	return out
}

type headerStrategy struct {
	table    StrategyTable
	limits   Limits
	reserved map[string]struct{}
	own      map[string]struct{}
	duration *regexp.Regexp
}

func newHeaderStrategy(t StrategyTable, lim Limits, reserved map[string]struct{}) *headerStrategy {
	own := make(map[string]struct{})
	for _, h := range t.Headers.all() {
		own[h] = struct{}{}
	}
	return &headerStrategy{
		table:    t,
		limits:   lim,
		reserved: reserved,
		own:      own,
		duration: DurationPattern(t.DurationWords),
	}
}

func (s *headerStrategy) Name() string { return s.table.Name }

func (s *headerStrategy) IsHeader(line string) bool {
	_, ok := s.own[foldLine(line)]
	return ok
}

// DetectSections records the first occurrence of each header kind.
func (s *headerStrategy) DetectSections(lines []string) Boundaries {
	b := NoBoundaries()
	for i, line := range lines {
		key := foldLine(line)
		switch {
		case b.Summary < 0 && containsString(s.table.Headers.Summary, key):
			b.Summary = i
		case b.Experience < 0 && containsString(s.table.Headers.Experience, key):
			b.Experience = i
		case b.Education < 0 && containsString(s.table.Headers.Education, key):
			b.Education = i
		case b.Skills < 0 && containsString(s.table.Headers.Skills, key):
			b.Skills = i
		case b.Contact < 0 && containsString(s.table.Headers.Contact, key):
			b.Contact = i
		}
	}
	return b
}

func (s *headerStrategy) DetectIdentity(lines []string) Identity {
	for i, line := range lines {
		if s.isReserved(line) {
			continue
		}
		if !LooksLikePersonName(line, s.limits.NameMinLen, s.limits.NameMaxLen) {
			continue
		}
		return Identity{Name: line, Headline: headlineAfter(lines, i, s.isReserved), Line: i}
	}
	return noIdentity()
}

func (s *headerStrategy) CompanyRules() CompanyRules {
	return CompanyRules{
		MinLen:        s.limits.CompanyMinLen,
		MaxLen:        s.limits.CompanyMaxLen,
		Months:        s.table.Months,
		LocationWords: s.table.LocationWords,
	}
}

func (s *headerStrategy) DurationPattern() *regexp.Regexp { return s.duration }

func (s *headerStrategy) isReserved(line string) bool {
	_, ok := s.reserved[foldLine(line)]
	return ok
}

// templateStrategy reads published portfolio text that opens with a
// greeting such as "Hi there, I'm Jane Doe". It has no section headers.
type templateStrategy struct {
	table    StrategyTable
	limits   Limits
	reserved map[string]struct{}
}

func newTemplateStrategy(t StrategyTable, lim Limits, reserved map[string]struct{}) *templateStrategy {
	return &templateStrategy{table: t, limits: lim, reserved: reserved}
}

func (s *templateStrategy) Name() string { return s.table.Name }

func (s *templateStrategy) IsHeader(string) bool { return false }

func (s *templateStrategy) DetectSections([]string) Boundaries { return NoBoundaries() }

func (s *templateStrategy) DetectIdentity(lines []string) Identity {
	for i, line := range lines {
		name := s.greetingName(line)
		if name == "" {
			continue
		}
		return Identity{Name: name, Headline: headlineAfter(lines, i, s.isReserved), Line: i}
	}
	return noIdentity()
}

func (s *templateStrategy) greetingName(line string) string {
	line = strings.ReplaceAll(line, "\u2019", "'")
	folded := foldLine(line)
	for _, g := range s.table.Greetings {
		if !strings.HasPrefix(folded, g) {
			continue
		}
		n, ok := foldedPrefixLen(line, g)
		if !ok {
			continue
		}
		rest := strings.TrimSpace(line[n:])
		rest = strings.TrimRight(rest, ".!,; ")
		if rest == "" || LooksLikeContactLine(rest) {
			return ""
		}
		if s.limits.NameMaxLen > 0 && !runeLenWithin(rest, 1, s.limits.NameMaxLen) {
			return ""
		}
		return rest
	}
	return ""
}

func (s *templateStrategy) CompanyRules() CompanyRules {
	return CompanyRules{MinLen: s.limits.CompanyMinLen, MaxLen: s.limits.CompanyMaxLen}
}

func (s *templateStrategy) DurationPattern() *regexp.Regexp { return nil }

func (s *templateStrategy) isReserved(line string) bool {
	_, ok := s.reserved[foldLine(line)]
	return ok
}

// headlineAfter returns the line after the name when it is neither a header
// nor contact details.
func headlineAfter(lines []string, nameIdx int, isHeader func(string) bool) string {
	next := nameIdx + 1
	if next >= len(lines) {
		return ""
	}
	line := lines[next]
	if isHeader(line) || LooksLikeContactLine(line) {
		return ""
	}
	return line
}
