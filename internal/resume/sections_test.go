package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumehub/resume-builder/internal/types"
)

func TestNextExperienceID(t *testing.T) {
	tests := []struct {
		name     string
		entries  []types.ExperienceEntry
		expected int
	}{
		{
			name:     "empty list starts at 1",
			entries:  nil,
			expected: 1,
		},
		{
			name:     "sequential ids",
			entries:  []types.ExperienceEntry{{ID: 1}, {ID: 2}},
			expected: 3,
		},
		{
			name:     "gap after removal does not reuse ids",
			entries:  []types.ExperienceEntry{{ID: 1}, {ID: 5}},
			expected: 6,
		},
		{
			name:     "unordered list",
			entries:  []types.ExperienceEntry{{ID: 3}, {ID: 1}, {ID: 2}},
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextExperienceID(tt.entries))
		})
	}
}

func TestAddExperience(t *testing.T) {
	data := types.ResumeData{
		Experience: []types.ExperienceEntry{{ID: 1, Title: "Engineer"}},
	}

	out := AddExperience(data, types.ExperienceEntry{ID: 99, Title: "Senior Engineer"})

	require.Len(t, out.Experience, 2)
	assert.Equal(t, 2, out.Experience[1].ID, "incoming id must be ignored")
	assert.Equal(t, "Senior Engineer", out.Experience[1].Title)

	// Input untouched
	assert.Len(t, data.Experience, 1)
}

func TestAddExperienceCurrentClearsEndDate(t *testing.T) {
	out := AddExperience(types.ResumeData{}, types.ExperienceEntry{
		Title:   "Engineer",
		Current: true,
		EndDate: "2024-01",
	})

	require.Len(t, out.Experience, 1)
	assert.True(t, out.Experience[0].Current)
	assert.Empty(t, out.Experience[0].EndDate)
}

func TestIDsUniqueUnderAddRemoveMix(t *testing.T) {
	data := types.ResumeData{}
	data = AddExperience(data, types.ExperienceEntry{Title: "A"}) // id 1
	data = AddExperience(data, types.ExperienceEntry{Title: "B"}) // id 2
	data = AddExperience(data, types.ExperienceEntry{Title: "C"}) // id 3
	data = RemoveExperience(data, 2)
	data = AddExperience(data, types.ExperienceEntry{Title: "D"}) // id 4, not 2

	seen := make(map[int]bool)
	for _, e := range data.Experience {
		assert.False(t, seen[e.ID], "duplicate id %d", e.ID)
		seen[e.ID] = true
	}
	require.Len(t, data.Experience, 3)
	assert.Equal(t, 4, data.Experience[2].ID)
}

func TestRemoveExperience(t *testing.T) {
	data := types.ResumeData{
		Experience: []types.ExperienceEntry{{ID: 1}, {ID: 2}, {ID: 3}},
	}

	out := RemoveExperience(data, 2)
	require.Len(t, out.Experience, 2)
	assert.Equal(t, 1, out.Experience[0].ID)
	assert.Equal(t, 3, out.Experience[1].ID)

	// Unknown id is a no-op
	out = RemoveExperience(data, 42)
	assert.Len(t, out.Experience, 3)
}

func TestUpdateExperience(t *testing.T) {
	data := types.ResumeData{
		Experience: []types.ExperienceEntry{
			{ID: 1, Title: "Engineer", EndDate: "2023-06"},
			{ID: 2, Title: "Manager", EndDate: "2024-01"},
		},
	}

	out := UpdateExperience(data, types.ExperienceEntry{ID: 1, Title: "Staff Engineer", Current: true, EndDate: "2023-06"})

	require.Len(t, out.Experience, 2)
	assert.Equal(t, "Staff Engineer", out.Experience[0].Title)
	assert.Empty(t, out.Experience[0].EndDate, "current entry must lose its end date")

	// Only the targeted entry changes
	assert.Equal(t, "Manager", out.Experience[1].Title)
	assert.Equal(t, "2024-01", out.Experience[1].EndDate)
}

func TestSetExperienceCurrent(t *testing.T) {
	data := types.ResumeData{
		Experience: []types.ExperienceEntry{
			{ID: 1, EndDate: "2023-06"},
			{ID: 2, EndDate: "2024-01"},
		},
	}

	out := SetExperienceCurrent(data, 1, true)
	assert.True(t, out.Experience[0].Current)
	assert.Empty(t, out.Experience[0].EndDate)
	assert.Equal(t, "2024-01", out.Experience[1].EndDate)

	// Turning the flag off keeps whatever end date is present
	out = SetExperienceCurrent(out, 1, false)
	assert.False(t, out.Experience[0].Current)
}

func TestAddEducation(t *testing.T) {
	data := types.ResumeData{
		Education: []types.EducationEntry{{ID: 7, School: "MIT"}},
	}

	out := AddEducation(data, types.EducationEntry{School: "Stanford"})
	require.Len(t, out.Education, 2)
	assert.Equal(t, 8, out.Education[1].ID)
}

func TestRemoveEducation(t *testing.T) {
	data := types.ResumeData{
		Education: []types.EducationEntry{{ID: 1}, {ID: 2}},
	}

	out := RemoveEducation(data, 1)
	require.Len(t, out.Education, 1)
	assert.Equal(t, 2, out.Education[0].ID)
}

func TestUpdateEducation(t *testing.T) {
	data := types.ResumeData{
		Education: []types.EducationEntry{{ID: 1, Degree: "BS"}, {ID: 2, Degree: "MS"}},
	}

	out := UpdateEducation(data, types.EducationEntry{ID: 2, Degree: "PhD"})
	assert.Equal(t, "BS", out.Education[0].Degree)
	assert.Equal(t, "PhD", out.Education[1].Degree)
}

func TestAddRemoveProject(t *testing.T) {
	data := types.ResumeData{}
	data = AddProject(data, types.ProjectEntry{Title: "One"})
	data = AddProject(data, types.ProjectEntry{Title: "Two"})
	require.Len(t, data.Projects, 2)
	assert.Equal(t, 1, data.Projects[0].ID)
	assert.Equal(t, 2, data.Projects[1].ID)

	data = RemoveProject(data, 1)
	require.Len(t, data.Projects, 1)
	assert.Equal(t, "Two", data.Projects[0].Title)
}
