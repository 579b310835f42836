// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

// PersonalInfo holds the identity block of a resume. All fields are free-form
// strings; Name is the only field the save gate cares about.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Summary  string `json:"summary,omitempty"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// ExperienceEntry is one job in the experience list. ID is unique within the
// list and stable across reordering, so clients can edit and remove entries
// in place.
type ExperienceEntry struct {
	ID          int    `json:"id"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one school in the education list. Same ID-uniqueness
// invariant as ExperienceEntry.
type EducationEntry struct {
	ID          int    `json:"id"`
	Degree      string `json:"degree,omitempty"`
	School      string `json:"school,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectEntry is one project in the optional projects list.
type ProjectEntry struct {
	ID           int      `json:"id"`
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
}

// CertificationEntry is one certification in the optional certifications list.
type CertificationEntry struct {
	ID     int    `json:"id"`
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// VolunteerEntry is one volunteer role in the optional volunteer list.
type VolunteerEntry struct {
	ID           int    `json:"id"`
	Role         string `json:"role,omitempty"`
	Organization string `json:"organization,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Description  string `json:"description,omitempty"`
}

// LanguageEntry is one language in the optional languages list.
type LanguageEntry struct {
	ID          int    `json:"id"`
	Name        string `json:"name,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Font size choices for Customization.FontSize.
const (
	FontSizeSmall  = "small"
	FontSizeMedium = "medium"
	FontSizeLarge  = "large"
)

// Spacing choices for Customization.Spacing.
const (
	SpacingCompact  = "compact"
	SpacingNormal   = "normal"
	SpacingSpacious = "spacious"
)

// Layout choices for Customization.LayoutType.
const (
	LayoutStandard = "standard"
	LayoutCompact  = "compact"
	LayoutMinimal  = "minimal"
	LayoutCreative = "creative"
)

// FontFamilies is the enumerated set of font choices exposed by the
// customization panel.
var FontFamilies = []string{"Helvetica", "Georgia", "Courier New", "Inter", "Lora"}

// Customization holds the visual options applied on top of a template.
// Updates replace the whole sub-record; unset fields fall back to defaults.
type Customization struct {
	PrimaryColor    string `json:"primaryColor,omitempty"`
	SecondaryColor  string `json:"secondaryColor,omitempty"`
	AccentColor     string `json:"accentColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
	FontSize        string `json:"fontSize,omitempty"`
	Spacing         string `json:"spacing,omitempty"`
	LayoutType      string `json:"layoutType,omitempty"`
	ShowPhoto       bool   `json:"showPhoto,omitempty"`
}

// ResumeData is the aggregate document edited by the user. It is stored as an
// opaque JSON column on the resumes table and mirrored per-user in the draft
// table while unsaved.
type ResumeData struct {
	Personal       PersonalInfo         `json:"personal"`
	Experience     []ExperienceEntry    `json:"experience,omitempty"`
	Education      []EducationEntry     `json:"education,omitempty"`
	Skills         []string             `json:"skills,omitempty"`
	Projects       []ProjectEntry       `json:"projects,omitempty"`
	Certifications []CertificationEntry `json:"certifications,omitempty"`
	Volunteer      []VolunteerEntry     `json:"volunteer,omitempty"`
	Languages      []LanguageEntry      `json:"languages,omitempty"`
	Customization  Customization        `json:"customization"`
}

// IsEmpty reports whether the resume has no content worth rendering: no
// personal name and no experience entry with a title or company. The builder
// shows a placeholder state instead of invoking a template for such resumes.
func (r *ResumeData) IsEmpty() bool {
	if r == nil {
		return true
	}
	if r.Personal.Name != "" {
		return false
	}
	for _, exp := range r.Experience {
		if exp.Title != "" || exp.Company != "" {
			return false
		}
	}
	return true
}

// Section names used in sectionOrder and hiddenSections.
const (
	SectionPersonal       = "personal"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionVolunteer      = "volunteer"
	SectionLanguages      = "languages"
)

// KnownSections lists every section name the renderer understands, in the
// default order used when a template does not override it.
var KnownSections = []string{
	SectionPersonal,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
	SectionVolunteer,
	SectionLanguages,
}
