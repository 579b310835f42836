package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/resumehub/resume-builder/internal/types"
)

func TestApplyCustomizationMergesSetFields(t *testing.T) {
	data := types.ResumeData{Customization: DefaultCustomization()}

	out := ApplyCustomization(data, types.Customization{
		PrimaryColor: "#dc2626",
		FontSize:     types.FontSizeLarge,
	})

	assert.Equal(t, "#dc2626", out.Customization.PrimaryColor)
	assert.Equal(t, types.FontSizeLarge, out.Customization.FontSize)
	// Unset fields keep their current values
	assert.Equal(t, "#4b5563", out.Customization.SecondaryColor)
	assert.Equal(t, "Helvetica", out.Customization.FontFamily)
}

func TestApplyCustomizationShowPhotoAlwaysTaken(t *testing.T) {
	data := types.ResumeData{Customization: types.Customization{ShowPhoto: true}}

	out := ApplyCustomization(data, types.Customization{})
	assert.False(t, out.Customization.ShowPhoto, "showPhoto is a plain bool, not merged")

	out = ApplyCustomization(out, types.Customization{ShowPhoto: true})
	assert.True(t, out.Customization.ShowPhoto)
}

func TestApplyCustomizationDoesNotMutateInput(t *testing.T) {
	data := types.ResumeData{Customization: DefaultCustomization()}
	_ = ApplyCustomization(data, types.Customization{PrimaryColor: "#000000"})
	assert.Equal(t, "#1f2937", data.Customization.PrimaryColor)
}

func TestNormalizeCustomizationFillsDefaults(t *testing.T) {
	out := NormalizeCustomization(types.Customization{FontFamily: "Lora"})

	assert.Equal(t, "Lora", out.FontFamily)
	assert.Equal(t, types.FontSizeMedium, out.FontSize)
	assert.Equal(t, types.SpacingNormal, out.Spacing)
	assert.Equal(t, types.LayoutStandard, out.LayoutType)
	assert.Equal(t, "#ffffff", out.BackgroundColor)
}
