package render

import (
	"html/template"
	"strings"

	"github.com/resumehub/resume-builder/internal/resume"
	"github.com/resumehub/resume-builder/internal/types"
)

// Template keys selecting a rendering variant.
const (
	TemplateModern   = "modern"
	TemplateClassic  = "classic"
	TemplateMinimal  = "minimal"
	TemplateCreative = "creative"
)

// TemplateKeys is the fixed set of available template variants.
var TemplateKeys = []string{TemplateModern, TemplateClassic, TemplateMinimal, TemplateCreative}

// defaultOrders maps each template key to the section order used when the
// caller does not supply one.
var defaultOrders = map[string][]string{
	TemplateModern:   {types.SectionPersonal, types.SectionExperience, types.SectionEducation, types.SectionSkills, types.SectionProjects, types.SectionCertifications, types.SectionVolunteer, types.SectionLanguages},
	TemplateClassic:  {types.SectionPersonal, types.SectionEducation, types.SectionExperience, types.SectionSkills, types.SectionProjects, types.SectionCertifications, types.SectionVolunteer, types.SectionLanguages},
	TemplateMinimal:  {types.SectionPersonal, types.SectionExperience, types.SectionSkills, types.SectionEducation, types.SectionProjects, types.SectionCertifications, types.SectionVolunteer, types.SectionLanguages},
	TemplateCreative: {types.SectionPersonal, types.SectionSkills, types.SectionExperience, types.SectionProjects, types.SectionEducation, types.SectionCertifications, types.SectionVolunteer, types.SectionLanguages},
}

// fontSizes maps the fontSize enum to a base CSS size.
var fontSizes = map[string]string{
	types.FontSizeSmall:  "12px",
	types.FontSizeMedium: "14px",
	types.FontSizeLarge:  "16px",
}

// sectionGaps maps the spacing enum to the gap between sections.
var sectionGaps = map[string]string{
	types.SpacingCompact:  "8px",
	types.SpacingNormal:   "16px",
	types.SpacingSpacious: "28px",
}

// pageData is the root value handed to the HTML templates.
type pageData struct {
	Resume   *types.ResumeData
	Sections []string
	Style    styleVars
}

// styleVars carries the customization choices as CSS-ready values.
type styleVars struct {
	Primary     string
	Secondary   string
	Accent      string
	Background  string
	FontFamily  string
	FontSize    string
	SectionGap  string
	LayoutClass string
	ShowPhoto   bool
}

var templates map[string]*template.Template

func init() {
	funcs := template.FuncMap{
		"join": strings.Join,
		"dateRange": func(start, end string, current bool) string {
			switch {
			case current && start != "":
				return start + " – Present"
			case current:
				return "Present"
			case start != "" && end != "":
				return start + " – " + end
			case start != "":
				return start
			default:
				return end
			}
		},
	}

	templates = make(map[string]*template.Template, len(TemplateKeys))
	for key, body := range templateSources {
		t := template.Must(template.New(key).Funcs(funcs).Parse(sectionBlocks))
		template.Must(t.Parse(body))
		templates[key] = t
	}
}

// DefaultSectionOrder returns the section order a template falls back to.
// Unknown keys get the global known-section order.
func DefaultSectionOrder(key string) []string {
	if order, ok := defaultOrders[key]; ok {
		return append([]string(nil), order...)
	}
	return append([]string(nil), types.KnownSections...)
}

// Render produces the HTML document for a resume. It is deterministic: the
// same (data, key, order, hidden) inputs yield byte-identical output. An
// empty resume renders the placeholder page without invoking the template.
func Render(data *types.ResumeData, key string, order, hidden []string) (string, error) {
	tmpl, ok := templates[key]
	if !ok {
		return "", &UnknownTemplateError{Key: key}
	}

	if data.IsEmpty() {
		return emptyStateHTML, nil
	}

	sections := resume.EffectiveSections(order, hidden, defaultOrders[key])
	cust := resume.NormalizeCustomization(data.Customization)

	page := pageData{
		Resume:   data,
		Sections: sections,
		Style: styleVars{
			Primary:     cust.PrimaryColor,
			Secondary:   cust.SecondaryColor,
			Accent:      cust.AccentColor,
			Background:  cust.BackgroundColor,
			FontFamily:  cust.FontFamily,
			FontSize:    fontSizes[cust.FontSize],
			SectionGap:  sectionGaps[cust.Spacing],
			LayoutClass: cust.LayoutType,
			ShowPhoto:   cust.ShowPhoto,
		},
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, &page); err != nil {
		return "", &TemplateError{Message: "failed to execute template " + key, Cause: err}
	}
	return out.String(), nil
}
