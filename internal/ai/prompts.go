package ai

import "fmt"

// enhancePrompt wraps user text with instructions for a concise rewrite.
func enhancePrompt(text string) string {
	return fmt.Sprintf(`You are helping someone improve their resume. Rewrite the following text to be clear, specific, and professional. Keep it roughly the same length, use active voice, and do not invent facts. Return only the rewritten text with no preamble.

Text:
%s`, text)
}

// extractPrompt instructs the model to turn an uploaded resume PDF into the
// structured document shape the builder edits.
func extractPrompt() string {
	return `Extract the content of this resume PDF into JSON with this exact shape:
{
  "personal": {"name": "", "email": "", "phone": "", "address": "", "summary": "", "website": "", "linkedin": ""},
  "experience": [{"id": 1, "title": "", "company": "", "location": "", "startDate": "", "endDate": "", "current": false, "description": ""}],
  "education": [{"id": 1, "degree": "", "school": "", "location": "", "startDate": "", "endDate": "", "description": ""}],
  "skills": [""],
  "projects": [{"id": 1, "title": "", "description": "", "technologies": [""], "link": ""}]
}
Number ids from 1 within each list. Omit fields you cannot find. Return only JSON.`
}
