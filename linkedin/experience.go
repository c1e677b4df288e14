package linkedin

type experienceState int

const (
	awaitCompany experienceState = iota
	awaitTitle
)

// scanExperience walks the experience region. A line that passes the company
// rules opens an entry, the following line is always its title and an
// optional third line is its duration. Lines that open nothing are skipped;
// a company with no title line before the region ends is dropped.
func scanExperience(region []string, s Strategy) []Experience {
	out := []Experience{}
	rules := s.CompanyRules()
	duration := s.DurationPattern()

	state := awaitCompany
	var company string
	for i := 0; i < len(region); {
		line := region[i]
		switch state {
		case awaitCompany:
			if LooksLikeCompanyLine(line, rules) {
				company = line
				state = awaitTitle
			}
			i++
		case awaitTitle:
			entry := Experience{Company: company, Title: line}
			i++
			if i < len(region) && LooksLikeDurationLine(region[i], duration) {
				entry.Duration = region[i]
				i++
			}
			out = append(out, entry)
			state = awaitCompany
		}
	}
	return out
}
