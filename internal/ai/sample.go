package ai

import (
	"github.com/resumehub/resume-builder/internal/types"
)

// SampleResumeData is the canned document substituted when PDF extraction
// produces output that cannot be parsed. The user lands in the builder with
// something editable instead of an error.
func SampleResumeData() types.ResumeData {
	return types.ResumeData{
		Personal: types.PersonalInfo{
			Name:    "Alex Morgan",
			Email:   "alex.morgan@example.com",
			Phone:   "(555) 010-4477",
			Address: "Portland, OR",
			Summary: "Software engineer with five years of experience building web applications and internal tools.",
		},
		Experience: []types.ExperienceEntry{
			{
				ID:          1,
				Title:       "Software Engineer",
				Company:     "Acme Corp",
				Location:    "Portland, OR",
				StartDate:   "2021-03",
				Current:     true,
				Description: "Build and maintain customer-facing web services. Led migration of the billing system to a new payment provider.",
			},
			{
				ID:          2,
				Title:       "Junior Developer",
				Company:     "Bright Labs",
				Location:    "Seattle, WA",
				StartDate:   "2019-06",
				EndDate:     "2021-02",
				Description: "Implemented features across the stack and wrote integration tests for the public API.",
			},
		},
		Education: []types.EducationEntry{
			{
				ID:        1,
				Degree:    "B.S. Computer Science",
				School:    "University of Washington",
				Location:  "Seattle, WA",
				StartDate: "2015",
				EndDate:   "2019",
			},
		},
		Skills: []string{"Go", "TypeScript", "PostgreSQL", "Docker"},
	}
}
