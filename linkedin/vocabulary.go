package linkedin

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabularyYAML []byte

const (
	KindHeaders  = "headers"
	KindTemplate = "template"
)

// Limits bounds the heuristics. Lengths count runes, Min is inclusive and Max exclusive.
type Limits struct {
	SkillsLineCap int `yaml:"skillsLineCap" json:"skillsLineCap"`
	SkillMinLen   int `yaml:"skillMinLen" json:"skillMinLen"`
	SkillMaxLen   int `yaml:"skillMaxLen" json:"skillMaxLen"`
	CompanyMinLen int `yaml:"companyMinLen" json:"companyMinLen"`
	CompanyMaxLen int `yaml:"companyMaxLen" json:"companyMaxLen"`
	NameMinLen    int `yaml:"nameMinLen" json:"nameMinLen"`
	NameMaxLen    int `yaml:"nameMaxLen" json:"nameMaxLen"`
}

// Headers lists the standalone header lines of one export locale.
type Headers struct {
	Summary    []string `yaml:"summary" json:"summary"`
	Experience []string `yaml:"experience" json:"experience"`
	Education  []string `yaml:"education" json:"education"`
	Skills     []string `yaml:"skills" json:"skills"`
	Contact    []string `yaml:"contact" json:"contact"`
	Other      []string `yaml:"other" json:"other"`
}

// StrategyTable is the configuration data behind one named strategy.
type StrategyTable struct {
	Name          string   `yaml:"name" json:"name"`
	Kind          string   `yaml:"kind" json:"kind"`
	Headers       Headers  `yaml:"headers" json:"headers"`
	Months        []string `yaml:"months" json:"months"`
	DurationWords []string `yaml:"durationWords" json:"durationWords"`
	LocationWords []string `yaml:"locationWords" json:"locationWords"`
	Greetings     []string `yaml:"greetings" json:"greetings"`
}

// Vocabulary is the full set of tables the extractor reads.
type Vocabulary struct {
	Limits       Limits          `yaml:"limits" json:"limits"`
	Availability []string        `yaml:"availability" json:"availability"`
	Strategies   []StrategyTable `yaml:"strategies" json:"strategies"`
}

// DefaultVocabulary returns a fresh copy of the embedded tables.
func DefaultVocabulary() Vocabulary {
	v, err := LoadVocabulary(bytes.NewReader(defaultVocabularyYAML))
	if err != nil {
		panic(fmt.Sprintf("linkedin: embedded vocabulary invalid: %v", err))
	}
	return v
}

// LoadVocabulary decodes a YAML vocabulary. Missing limits fall back to the defaults.
func LoadVocabulary(r io.Reader) (Vocabulary, error) {
	var v Vocabulary
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil {
		return Vocabulary{}, fmt.Errorf("decode vocabulary: %w", err)
	}
	v.Limits = v.Limits.withDefaults()
	if err := v.Validate(); err != nil {
		return Vocabulary{}, err
	}
	v.lower()
	return v, nil
}

// Validate checks that every strategy is named and of a known kind.
func (v Vocabulary) Validate() error {
	if len(v.Strategies) == 0 {
		return fmt.Errorf("vocabulary: no strategies")
	}
	seen := make(map[string]struct{}, len(v.Strategies))
	for i, s := range v.Strategies {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("vocabulary: strategy %d has no name", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("vocabulary: duplicate strategy %q", name)
		}
		seen[name] = struct{}{}
		switch s.Kind {
		case KindHeaders:
			if len(s.Headers.Summary)+len(s.Headers.Experience)+len(s.Headers.Skills) == 0 {
				return fmt.Errorf("vocabulary: strategy %q has no section headers", name)
			}
		case KindTemplate:
			if len(s.Greetings) == 0 {
				return fmt.Errorf("vocabulary: strategy %q has no greetings", name)
			}
		default:
			return fmt.Errorf("vocabulary: strategy %q has unknown kind %q", name, s.Kind)
		}
	}
	return nil
}

func (l Limits) withDefaults() Limits {
	if l.SkillsLineCap <= 0 {
		l.SkillsLineCap = 10
	}
	if l.SkillMaxLen <= 0 {
		l.SkillMinLen, l.SkillMaxLen = 2, 50
	}
	if l.CompanyMaxLen <= 0 {
		l.CompanyMinLen, l.CompanyMaxLen = 2, 50
	}
	if l.NameMaxLen <= 0 {
		l.NameMinLen, l.NameMaxLen = 4, 50
	}
	return l
}

// lower folds every match word so lookups compare against lowered lines.
func (v *Vocabulary) lower() {
	v.Availability = lowerAll(v.Availability)
	for i := range v.Strategies {
		s := &v.Strategies[i]
		s.Headers.Summary = lowerAll(s.Headers.Summary)
		s.Headers.Experience = lowerAll(s.Headers.Experience)
		s.Headers.Education = lowerAll(s.Headers.Education)
		s.Headers.Skills = lowerAll(s.Headers.Skills)
		s.Headers.Contact = lowerAll(s.Headers.Contact)
		s.Headers.Other = lowerAll(s.Headers.Other)
		s.Months = lowerAll(s.Months)
		s.DurationWords = lowerAll(s.DurationWords)
		s.LocationWords = lowerAll(s.LocationWords)
		s.Greetings = lowerAll(s.Greetings)
	}
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := foldLine(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
