package linkedin

import (
	"reflect"
	"testing"
)

func TestLooksLikePersonName(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"Jane Doe", true},
		{"Émile Zola", true},
		{"jane doe", false},
		{"Jane", false},
		{"Jane van Doe", false},
		{"Jane Doe-Smith", false},
		{"JANE DOE", false},
	}
	for _, tc := range cases {
		if got := LooksLikePersonName(tc.line, 4, 50); got != tc.want {
			t.Fatalf("LooksLikePersonName(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
	if LooksLikePersonName("Al Bo", 6, 50) {
		t.Fatal("expected short name to fail the length bound")
	}
	if LooksLikePersonName("Jane Doe", 4, 8) {
		t.Fatal("expected max length to be exclusive")
	}
}

func TestLooksLikeContactLine(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"jane@example.com", true},
		{"www.janedoe.dev", true},
		{"https://janedoe.dev", true},
		{"linkedin.com/in/janedoe", true},
		{"+31 6 12345678", true},
		{"2019 - 2023", false},
		{"Software Engineer", false},
	}
	for _, tc := range cases {
		if got := LooksLikeContactLine(tc.line); got != tc.want {
			t.Fatalf("LooksLikeContactLine(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestLooksLikeDurationLine(t *testing.T) {
	english := DurationPattern([]string{"-", "–", "to", "present", "now"})
	dutch := DurationPattern([]string{"-", "tot", "heden"})

	cases := []struct {
		line string
		re   string
		want bool
	}{
		{"2020 - Present", "en", true},
		{"May 2018 – Jun 2020 (2 years 2 months)", "en", true},
		{"2015 to 2017", "en", true},
		{"Since 2019, now remote", "en", true},
		{"Present", "en", false},
		{"Engineer", "en", false},
		{"2019 Tokyo", "en", false},
		{"januari 2019 tot heden", "nl", true},
		{"2019 heden", "nl", true},
		{"Ontwikkelaar", "nl", false},
	}
	for _, tc := range cases {
		re := english
		if tc.re == "nl" {
			re = dutch
		}
		if got := LooksLikeDurationLine(tc.line, re); got != tc.want {
			t.Fatalf("LooksLikeDurationLine(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
	if LooksLikeDurationLine("2020 - 2021", nil) {
		t.Fatal("expected nil pattern to match nothing")
	}
}

func TestLooksLikeCompanyLine(t *testing.T) {
	rules := CompanyRules{
		MinLen:        2,
		MaxLen:        50,
		Months:        []string{"januari", "mei", "may"},
		LocationWords: []string{"nederland", "area"},
	}
	cases := []struct {
		line string
		want bool
	}{
		{"Acme Corp", true},
		{"Meijer BV", true},
		{"Clearance Partners", true},
		{"2020 - Present", false},
		{"januari 2020 - heden", false},
		{"Mei 2019", false},
		{"Amsterdam, Nederland", false},
		{"Utrecht Nederland", false},
		{"Bay Area", false},
		{"Acme (Holding)", false},
		{"• Built things", false},
		{"A", false},
		{"This company name is far too long to be a company line really", false},
	}
	for _, tc := range cases {
		if got := LooksLikeCompanyLine(tc.line, rules); got != tc.want {
			t.Fatalf("LooksLikeCompanyLine(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestHasAvailabilityMarker(t *testing.T) {
	phrases := []string{"open to new opportunities"}
	if !HasAvailabilityMarker([]string{"Open to new", "opportunities"}, phrases) {
		t.Fatal("expected marker split over lines to match")
	}
	if HasAvailabilityMarker([]string{"Closed"}, phrases) {
		t.Fatal("expected no match")
	}
	if HasAvailabilityMarker(nil, phrases) {
		t.Fatal("expected no match on empty lines")
	}
}

func TestSplitSkillLine(t *testing.T) {
	cases := map[string][]string{
		"Python, Go, Rust":       {"Python", "Go", "Rust"},
		"Go • Docker · Helm":     {"Go", "Docker", "Helm"},
		"SQL | NoSQL; GraphQL":   {"SQL", "NoSQL", "GraphQL"},
		"Node.js":                {"Node.js"},
		" , React ,":             {"React"},
		"Continuous Integration": {"Continuous Integration"},
	}
	for line, want := range cases {
		if got := SplitSkillLine(line); !reflect.DeepEqual(got, want) {
			t.Fatalf("SplitSkillLine(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestDedupeSkills(t *testing.T) {
	got := DedupeSkills([]string{"Go", "go", "GO", "Rust", "rust", "Straße", "STRASSE"})
	want := []string{"Go", "Rust", "Straße"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNormalizeLines(t *testing.T) {
	got := NormalizeLines("  Jane   Doe \r\n\r\n\tEngineer ﬁnance team\n\n")
	want := []string{"Jane Doe", "Engineer finance team"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := NormalizeLines(""); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
