package linkedin

import (
	"strings"
)

// DefaultAboutSeparator joins the lines of the summary section.
const DefaultAboutSeparator = " "

// Extractor segments export text. It is immutable once built and safe for
// concurrent use.
type Extractor struct {
	vocab      Vocabulary
	strategies []Strategy
	explicit   bool
	aboutSep   string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithVocabulary replaces the embedded vocabulary. Strategies are rebuilt
// from it unless WithStrategies is also given, in any order.
func WithVocabulary(v Vocabulary) Option {
	return func(e *Extractor) { e.vocab = v }
}

// WithStrategies sets the strategies and their priority order explicitly.
func WithStrategies(strategies ...Strategy) Option {
	return func(e *Extractor) {
		e.strategies = append([]Strategy(nil), strategies...)
		e.explicit = true
	}
}

// WithAboutSeparator changes how summary lines are joined.
func WithAboutSeparator(sep string) Option {
	return func(e *Extractor) { e.aboutSep = sep }
}

// NewExtractor builds an Extractor over the embedded vocabulary by default.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		vocab:    DefaultVocabulary(),
		aboutSep: DefaultAboutSeparator,
	}
	for _, opt := range opts {
		opt(e)
	}
	if !e.explicit {
		e.strategies = StrategiesFor(e.vocab)
	}
	return e
}

var defaultExtractor = NewExtractor()

// Extract runs the default extractor over text.
func Extract(text string) Result {
	return defaultExtractor.Extract(text)
}

// Strategies returns the strategy names in priority order.
func (e *Extractor) Strategies() []string {
	names := make([]string, 0, len(e.strategies))
	for _, s := range e.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Extract never fails: text it cannot read yields empty fields.
func (e *Extractor) Extract(text string) Result {
	res := emptyResult()
	lines := NormalizeLines(text)
	if len(lines) == 0 {
		return res
	}

	res.Profile.Available = HasAvailabilityMarker(lines, e.vocab.Availability)

	sections, bounds := e.pickSections(lines)
	id := e.pickIdentity(lines)
	res.Profile.Name = id.Name
	res.Profile.Headline = id.Headline

	if sections == nil {
		return res
	}
	res.Strategy = sections.Name()
	res.Confidence = float64(bounds.Found()) / 4

	if bounds.Summary >= 0 {
		end := e.regionEnd(lines, bounds.Summary+1)
		res.Profile.About = strings.Join(lines[bounds.Summary+1:end], e.aboutSep)
	}
	if bounds.Experience >= 0 {
		end := e.regionEnd(lines, bounds.Experience+1)
		res.Experiences = scanExperience(lines[bounds.Experience+1:end], sections)
	}
	if bounds.Skills >= 0 {
		res.Skills = e.scanSkills(lines, bounds.Skills+1)
	}
	return res
}

// pickSections returns the first strategy in priority order that finds any
// section header. Mixed-locale documents are read with that one vocabulary.
func (e *Extractor) pickSections(lines []string) (Strategy, Boundaries) {
	for _, s := range e.strategies {
		b := s.DetectSections(lines)
		if b.Found() > 0 {
			return s, b
		}
	}
	return nil, NoBoundaries()
}

// pickIdentity asks every strategy and keeps the earliest name line.
func (e *Extractor) pickIdentity(lines []string) Identity {
	best := noIdentity()
	for _, s := range e.strategies {
		id := s.DetectIdentity(lines)
		if id.Line < 0 {
			continue
		}
		if best.Line < 0 || id.Line < best.Line {
			best = id
		}
	}
	return best
}

// isHeader reports a header of any strategy. Sections start at the winning
// strategy's headers but end at the next header of any layout.
func (e *Extractor) isHeader(line string) bool {
	for _, s := range e.strategies {
		if s.IsHeader(line) {
			return true
		}
	}
	return false
}

func (e *Extractor) regionEnd(lines []string, from int) int {
	for i := from; i < len(lines); i++ {
		if e.isHeader(lines[i]) {
			return i
		}
	}
	return len(lines)
}

func (e *Extractor) scanSkills(lines []string, start int) []string {
	lim := e.vocab.Limits
	end := start + lim.SkillsLineCap
	if end > len(lines) {
		end = len(lines)
	}
	var skills []string
	for i := start; i < end; i++ {
		line := lines[i]
		if e.isHeader(line) || LooksLikePersonName(line, lim.NameMinLen, lim.NameMaxLen) {
			break
		}
		for _, tok := range SplitSkillLine(line) {
			if strings.Contains(tok, "@") || !runeLenWithin(tok, lim.SkillMinLen, lim.SkillMaxLen) {
				continue
			}
			skills = append(skills, tok)
		}
	}
	return DedupeSkills(skills)
}
