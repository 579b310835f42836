package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resumehub/resume-builder/internal/types"
)

func TestEffectiveSectionsHiddenWins(t *testing.T) {
	out := EffectiveSections(
		[]string{"personal", "experience", "skills", "education"},
		[]string{"skills"},
		types.KnownSections,
	)
	assert.Equal(t, []string{"personal", "experience", "education"}, out)
}

func TestEffectiveSectionsDefaultOrder(t *testing.T) {
	out := EffectiveSections(nil, nil, []string{"personal", "education", "experience"})
	assert.Equal(t, []string{"personal", "education", "experience"}, out)
}

func TestEffectiveSectionsHiddenAppliesToDefaultOrder(t *testing.T) {
	out := EffectiveSections(nil, []string{"education"}, []string{"personal", "education", "experience"})
	assert.Equal(t, []string{"personal", "experience"}, out)
}

func TestEffectiveSectionsDropsUnknownAndDuplicates(t *testing.T) {
	out := EffectiveSections(
		[]string{"personal", "bogus", "experience", "personal"},
		nil,
		types.KnownSections,
	)
	assert.Equal(t, []string{"personal", "experience"}, out)
}

func TestEffectiveSectionsAllHidden(t *testing.T) {
	out := EffectiveSections(
		[]string{"personal", "experience"},
		[]string{"personal", "experience"},
		types.KnownSections,
	)
	assert.Empty(t, out)
}
