package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/resumehub/resume-builder/internal/schemas"
	"github.com/resumehub/resume-builder/internal/types"
)

// ParseResumeJSON turns raw model output into a resume document. It tolerates
// markdown code fences around the JSON but rejects anything that fails to
// unmarshal or violates the document schema.
func ParseResumeJSON(raw string) (*types.ResumeData, error) {
	cleaned := stripCodeFence(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("model output is empty")
	}

	var data types.ResumeData
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("model output is not valid JSON: %w", err)
	}

	// Re-marshal through the typed struct so unknown fields are dropped
	// before the schema check.
	normalized, err := json.Marshal(&data)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize document: %w", err)
	}
	if err := schemas.ValidateResumeData(normalized); err != nil {
		return nil, err
	}

	return &data, nil
}

// stripCodeFence removes a surrounding markdown code fence, if present.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
