// Package resume implements the pure document operations behind the section
// editors: list entry add/remove/update with stable ids, customization
// merging, and section-order resolution. Every operation returns a new copy
// and never mutates its input.
package resume

import (
	"github.com/resumehub/resume-builder/internal/types"
)

// NextExperienceID returns the id a newly added experience entry receives:
// max(existing ids)+1, or 1 for an empty list. Ids are stable identifiers for
// in-place editing and removal, independent of list position.
func NextExperienceID(entries []types.ExperienceEntry) int {
	maxID := 0
	for _, e := range entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

// NextEducationID returns the id for a new education entry. Same rule as
// NextExperienceID.
func NextEducationID(entries []types.EducationEntry) int {
	maxID := 0
	for _, e := range entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

// NextProjectID returns the id for a new project entry.
func NextProjectID(entries []types.ProjectEntry) int {
	maxID := 0
	for _, e := range entries {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}

// AddExperience appends entry to the experience list with a freshly assigned
// id, returning a new document. The entry's incoming ID field is ignored.
func AddExperience(data types.ResumeData, entry types.ExperienceEntry) types.ResumeData {
	entry.ID = NextExperienceID(data.Experience)
	if entry.Current {
		entry.EndDate = ""
	}
	out := data
	out.Experience = append(append([]types.ExperienceEntry(nil), data.Experience...), entry)
	return out
}

// RemoveExperience filters the entry with the given id out of the experience
// list. Removing an unknown id is a no-op.
func RemoveExperience(data types.ResumeData, id int) types.ResumeData {
	out := data
	out.Experience = make([]types.ExperienceEntry, 0, len(data.Experience))
	for _, e := range data.Experience {
		if e.ID != id {
			out.Experience = append(out.Experience, e)
		}
	}
	return out
}

// UpdateExperience replaces the entry with updated's id. Setting Current on
// an entry clears its EndDate: a current job has no end date. Entries with
// other ids are left untouched.
func UpdateExperience(data types.ResumeData, updated types.ExperienceEntry) types.ResumeData {
	if updated.Current {
		updated.EndDate = ""
	}
	out := data
	out.Experience = make([]types.ExperienceEntry, len(data.Experience))
	for i, e := range data.Experience {
		if e.ID == updated.ID {
			out.Experience[i] = updated
		} else {
			out.Experience[i] = e
		}
	}
	return out
}

// SetExperienceCurrent toggles the current flag on one entry, clearing the
// end date when the flag turns on.
func SetExperienceCurrent(data types.ResumeData, id int, current bool) types.ResumeData {
	out := data
	out.Experience = make([]types.ExperienceEntry, len(data.Experience))
	for i, e := range data.Experience {
		if e.ID == id {
			e.Current = current
			if current {
				e.EndDate = ""
			}
		}
		out.Experience[i] = e
	}
	return out
}

// AddEducation appends entry to the education list with a fresh id.
func AddEducation(data types.ResumeData, entry types.EducationEntry) types.ResumeData {
	entry.ID = NextEducationID(data.Education)
	out := data
	out.Education = append(append([]types.EducationEntry(nil), data.Education...), entry)
	return out
}

// RemoveEducation filters the entry with the given id out of the education list.
func RemoveEducation(data types.ResumeData, id int) types.ResumeData {
	out := data
	out.Education = make([]types.EducationEntry, 0, len(data.Education))
	for _, e := range data.Education {
		if e.ID != id {
			out.Education = append(out.Education, e)
		}
	}
	return out
}

// UpdateEducation replaces the entry with updated's id.
func UpdateEducation(data types.ResumeData, updated types.EducationEntry) types.ResumeData {
	out := data
	out.Education = make([]types.EducationEntry, len(data.Education))
	for i, e := range data.Education {
		if e.ID == updated.ID {
			out.Education[i] = updated
		} else {
			out.Education[i] = e
		}
	}
	return out
}

// AddProject appends entry to the projects list with a fresh id.
func AddProject(data types.ResumeData, entry types.ProjectEntry) types.ResumeData {
	entry.ID = NextProjectID(data.Projects)
	out := data
	out.Projects = append(append([]types.ProjectEntry(nil), data.Projects...), entry)
	return out
}

// RemoveProject filters the entry with the given id out of the projects list.
func RemoveProject(data types.ResumeData, id int) types.ResumeData {
	out := data
	out.Projects = make([]types.ProjectEntry, 0, len(data.Projects))
	for _, e := range data.Projects {
		if e.ID != id {
			out.Projects = append(out.Projects, e)
		}
	}
	return out
}
