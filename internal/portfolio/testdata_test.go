package portfolio

import (
	"fmt"
	"time"
)

const exportText = "Jane Doe\nSoftware Engineer\n\nSummary\nI build things.\n\nExperience\nAcme Corp\nEngineer\n2020 - Present\nGlobex\nStaff Engineer\n2016 - 2020\n\nSkills\nGo, Rust\nSQL"

var fixedNow = time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)

func newTestService(repo Repo) *Service {
	n := 0
	return &Service{
		Repo:         repo,
		MaxTextBytes: 4 << 10,
		Now:          func() time.Time { return fixedNow },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}
