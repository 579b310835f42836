package render

// emptyStateHTML is returned instead of a template rendering when the resume
// has no name and no experience content.
const emptyStateHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Resume</title></head>
<body>
<div class="empty-state" style="display:flex;align-items:center;justify-content:center;height:100vh;font-family:Helvetica,sans-serif;color:#6b7280;">
  <p>Start filling in your information to see your resume here.</p>
</div>
</body>
</html>
`

// sectionBlocks holds the shared section templates. Each template variant
// wraps them in its own page skeleton; the "sections" template dispatches on
// the resolved visible order.
const sectionBlocks = `
{{define "sections"}}{{$p := .}}{{range .Sections}}{{if eq . "personal"}}{{template "sec_personal" $p}}{{else if eq . "experience"}}{{template "sec_experience" $p}}{{else if eq . "education"}}{{template "sec_education" $p}}{{else if eq . "skills"}}{{template "sec_skills" $p}}{{else if eq . "projects"}}{{template "sec_projects" $p}}{{else if eq . "certifications"}}{{template "sec_certifications" $p}}{{else if eq . "volunteer"}}{{template "sec_volunteer" $p}}{{else if eq . "languages"}}{{template "sec_languages" $p}}{{end}}{{end}}{{end}}

{{define "sec_personal"}}
<header class="section section-personal">
  {{if and .Style.ShowPhoto .Resume.Personal.Name}}<div class="photo" aria-hidden="true"></div>{{end}}
  <h1>{{.Resume.Personal.Name}}</h1>
  <p class="contact">
    {{with .Resume.Personal.Email}}<span>{{.}}</span>{{end}}
    {{with .Resume.Personal.Phone}}<span>{{.}}</span>{{end}}
    {{with .Resume.Personal.Address}}<span>{{.}}</span>{{end}}
    {{with .Resume.Personal.Website}}<span>{{.}}</span>{{end}}
    {{with .Resume.Personal.LinkedIn}}<span>{{.}}</span>{{end}}
  </p>
  {{with .Resume.Personal.Summary}}<p class="summary">{{.}}</p>{{end}}
</header>
{{end}}

{{define "sec_experience"}}{{if .Resume.Experience}}
<section class="section section-experience">
  <h2>Experience</h2>
  {{range .Resume.Experience}}
  <div class="entry">
    <div class="entry-head">
      <span class="title">{{.Title}}</span>
      {{with .Company}}<span class="org">{{.}}</span>{{end}}
      {{with .Location}}<span class="loc">{{.}}</span>{{end}}
      <span class="dates">{{dateRange .StartDate .EndDate .Current}}</span>
    </div>
    {{with .Description}}<p class="desc">{{.}}</p>{{end}}
  </div>
  {{end}}
</section>
{{end}}{{end}}

{{define "sec_education"}}{{if .Resume.Education}}
<section class="section section-education">
  <h2>Education</h2>
  {{range .Resume.Education}}
  <div class="entry">
    <div class="entry-head">
      <span class="title">{{.Degree}}</span>
      {{with .School}}<span class="org">{{.}}</span>{{end}}
      {{with .Location}}<span class="loc">{{.}}</span>{{end}}
      <span class="dates">{{dateRange .StartDate .EndDate false}}</span>
    </div>
    {{with .Description}}<p class="desc">{{.}}</p>{{end}}
  </div>
  {{end}}
</section>
{{end}}{{end}}

{{define "sec_skills"}}{{if .Resume.Skills}}
<section class="section section-skills">
  <h2>Skills</h2>
  <p class="skills">{{join .Resume.Skills ", "}}</p>
</section>
{{end}}{{end}}

{{define "sec_projects"}}{{if .Resume.Projects}}
<section class="section section-projects">
  <h2>Projects</h2>
  {{range .Resume.Projects}}
  <div class="entry">
    <div class="entry-head">
      <span class="title">{{.Title}}</span>
      {{with .Link}}<span class="link">{{.}}</span>{{end}}
    </div>
    {{with .Description}}<p class="desc">{{.}}</p>{{end}}
    {{with .Technologies}}<p class="tech">{{join . ", "}}</p>{{end}}
  </div>
  {{end}}
</section>
{{end}}{{end}}

{{define "sec_certifications"}}{{if .Resume.Certifications}}
<section class="section section-certifications">
  <h2>Certifications</h2>
  {{range .Resume.Certifications}}
  <div class="entry">
    <span class="title">{{.Name}}</span>
    {{with .Issuer}}<span class="org">{{.}}</span>{{end}}
    {{with .Date}}<span class="dates">{{.}}</span>{{end}}
  </div>
  {{end}}
</section>
{{end}}{{end}}

{{define "sec_volunteer"}}{{if .Resume.Volunteer}}
<section class="section section-volunteer">
  <h2>Volunteer</h2>
  {{range .Resume.Volunteer}}
  <div class="entry">
    <div class="entry-head">
      <span class="title">{{.Role}}</span>
      {{with .Organization}}<span class="org">{{.}}</span>{{end}}
      <span class="dates">{{dateRange .StartDate .EndDate false}}</span>
    </div>
    {{with .Description}}<p class="desc">{{.}}</p>{{end}}
  </div>
  {{end}}
</section>
{{end}}{{end}}

{{define "sec_languages"}}{{if .Resume.Languages}}
<section class="section section-languages">
  <h2>Languages</h2>
  {{range .Resume.Languages}}
  <div class="entry">
    <span class="title">{{.Name}}</span>
    {{with .Proficiency}}<span class="org">{{.}}</span>{{end}}
  </div>
  {{end}}
</section>
{{end}}{{end}}
`

// templateSources maps each template key to its page skeleton. The variants
// differ in chrome (header treatment, accents, column layout) but all
// delegate section content to the shared blocks.
var templateSources = map[string]string{
	TemplateModern: `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Resume</title>
<style>
  :root {
    --primary: {{.Style.Primary}};
    --secondary: {{.Style.Secondary}};
    --accent: {{.Style.Accent}};
    --background: {{.Style.Background}};
    --section-gap: {{.Style.SectionGap}};
  }
  body { margin: 0; background: var(--background); color: var(--primary); font-family: "{{.Style.FontFamily}}", sans-serif; font-size: {{.Style.FontSize}}; }
  .page { max-width: 800px; margin: 0 auto; padding: 40px; }
  .section { margin-bottom: var(--section-gap); }
  .section-personal { border-bottom: 3px solid var(--accent); padding-bottom: 12px; }
  h1 { margin: 0; font-size: 2em; color: var(--primary); }
  h2 { color: var(--accent); text-transform: uppercase; letter-spacing: 0.08em; font-size: 1em; margin-bottom: 6px; }
  .contact span + span::before { content: " \2022 "; color: var(--secondary); }
  .entry-head .title { font-weight: 700; }
  .entry-head .org::before { content: " \2014 "; }
  .entry-head .dates { float: right; color: var(--secondary); }
  .desc, .tech, .skills, .summary { color: var(--secondary); margin: 4px 0 0; }
  .photo { width: 72px; height: 72px; border-radius: 50%; background: var(--secondary); float: right; }
</style>
</head>
<body>
<div class="page template-modern layout-{{.Style.LayoutClass}}">
{{template "sections" .}}
</div>
</body>
</html>
`,
	TemplateClassic: `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Resume</title>
<style>
  :root {
    --primary: {{.Style.Primary}};
    --secondary: {{.Style.Secondary}};
    --accent: {{.Style.Accent}};
    --background: {{.Style.Background}};
    --section-gap: {{.Style.SectionGap}};
  }
  body { margin: 0; background: var(--background); color: var(--primary); font-family: "{{.Style.FontFamily}}", Georgia, serif; font-size: {{.Style.FontSize}}; }
  .page { max-width: 760px; margin: 0 auto; padding: 48px; }
  .section { margin-bottom: var(--section-gap); }
  .section-personal { text-align: center; }
  h1 { margin: 0; font-size: 1.8em; font-variant: small-caps; }
  h2 { border-bottom: 1px solid var(--primary); font-size: 1.05em; }
  .contact span + span::before { content: " | "; }
  .entry-head .title { font-style: italic; }
  .entry-head .org { font-weight: 700; }
  .entry-head .org::before { content: ", "; }
  .entry-head .dates { float: right; }
  .desc, .tech, .skills, .summary { margin: 4px 0 0; }
  .photo { display: none; }
</style>
</head>
<body>
<div class="page template-classic layout-{{.Style.LayoutClass}}">
{{template "sections" .}}
</div>
</body>
</html>
`,
	TemplateMinimal: `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Resume</title>
<style>
  :root {
    --primary: {{.Style.Primary}};
    --secondary: {{.Style.Secondary}};
    --accent: {{.Style.Accent}};
    --background: {{.Style.Background}};
    --section-gap: {{.Style.SectionGap}};
  }
  body { margin: 0; background: var(--background); color: var(--primary); font-family: "{{.Style.FontFamily}}", sans-serif; font-size: {{.Style.FontSize}}; line-height: 1.5; }
  .page { max-width: 680px; margin: 0 auto; padding: 56px 32px; }
  .section { margin-bottom: var(--section-gap); }
  h1 { margin: 0; font-size: 1.5em; font-weight: 500; }
  h2 { font-size: 0.85em; font-weight: 600; color: var(--secondary); text-transform: uppercase; }
  .contact { color: var(--secondary); }
  .contact span + span::before { content: " / "; }
  .entry-head .title { font-weight: 600; }
  .entry-head .org::before { content: ", "; }
  .entry-head .dates { color: var(--secondary); margin-left: 8px; }
  .desc, .tech, .skills, .summary { margin: 2px 0 0; }
  .photo { display: none; }
</style>
</head>
<body>
<div class="page template-minimal layout-{{.Style.LayoutClass}}">
{{template "sections" .}}
</div>
</body>
</html>
`,
	TemplateCreative: `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Resume</title>
<style>
  :root {
    --primary: {{.Style.Primary}};
    --secondary: {{.Style.Secondary}};
    --accent: {{.Style.Accent}};
    --background: {{.Style.Background}};
    --section-gap: {{.Style.SectionGap}};
  }
  body { margin: 0; background: var(--background); color: var(--primary); font-family: "{{.Style.FontFamily}}", sans-serif; font-size: {{.Style.FontSize}}; }
  .page { max-width: 820px; margin: 0 auto; padding: 32px; }
  .section { margin-bottom: var(--section-gap); padding-left: 16px; border-left: 4px solid var(--accent); }
  .section-personal { background: var(--accent); color: var(--background); padding: 24px; border-left: none; border-radius: 8px; }
  .section-personal .contact, .section-personal .summary { color: var(--background); }
  h1 { margin: 0; font-size: 2.2em; }
  h2 { color: var(--accent); font-size: 1.1em; }
  .contact span + span::before { content: " \2022 "; }
  .entry-head .title { font-weight: 700; color: var(--accent); }
  .entry-head .org::before { content: " @ "; }
  .entry-head .dates { float: right; color: var(--secondary); }
  .desc, .tech, .skills, .summary { color: var(--secondary); margin: 4px 0 0; }
  .photo { width: 88px; height: 88px; border-radius: 8px; background: var(--background); float: right; }
</style>
</head>
<body>
<div class="page template-creative layout-{{.Style.LayoutClass}}">
{{template "sections" .}}
</div>
</body>
</html>
`,
}
