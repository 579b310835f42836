package resume

import (
	"github.com/resumehub/resume-builder/internal/types"
)

// DefaultCustomization returns the customization applied to a fresh resume.
func DefaultCustomization() types.Customization {
	return types.Customization{
		PrimaryColor:    "#1f2937",
		SecondaryColor:  "#4b5563",
		AccentColor:     "#2563eb",
		BackgroundColor: "#ffffff",
		FontFamily:      "Helvetica",
		FontSize:        types.FontSizeMedium,
		Spacing:         types.SpacingNormal,
		LayoutType:      types.LayoutStandard,
		ShowPhoto:       false,
	}
}

// PresetPalette is the shared color palette offered by every color picker in
// the customization panel.
var PresetPalette = []string{
	"#1f2937", "#2563eb", "#dc2626", "#16a34a",
	"#9333ea", "#ea580c", "#0d9488", "#4b5563",
}

// ApplyCustomization replaces the document's customization sub-record with a
// shallow merge of next over the current values: set fields in next win,
// empty string fields keep the current value. ShowPhoto is a plain boolean
// and always taken from next.
func ApplyCustomization(data types.ResumeData, next types.Customization) types.ResumeData {
	merged := data.Customization
	if next.PrimaryColor != "" {
		merged.PrimaryColor = next.PrimaryColor
	}
	if next.SecondaryColor != "" {
		merged.SecondaryColor = next.SecondaryColor
	}
	if next.AccentColor != "" {
		merged.AccentColor = next.AccentColor
	}
	if next.BackgroundColor != "" {
		merged.BackgroundColor = next.BackgroundColor
	}
	if next.FontFamily != "" {
		merged.FontFamily = next.FontFamily
	}
	if next.FontSize != "" {
		merged.FontSize = next.FontSize
	}
	if next.Spacing != "" {
		merged.Spacing = next.Spacing
	}
	if next.LayoutType != "" {
		merged.LayoutType = next.LayoutType
	}
	merged.ShowPhoto = next.ShowPhoto

	out := data
	out.Customization = merged
	return out
}

// NormalizeCustomization fills unset enum fields with defaults so the
// renderer never sees an empty font size, spacing, or layout.
func NormalizeCustomization(c types.Customization) types.Customization {
	def := DefaultCustomization()
	if c.PrimaryColor == "" {
		c.PrimaryColor = def.PrimaryColor
	}
	if c.SecondaryColor == "" {
		c.SecondaryColor = def.SecondaryColor
	}
	if c.AccentColor == "" {
		c.AccentColor = def.AccentColor
	}
	if c.BackgroundColor == "" {
		c.BackgroundColor = def.BackgroundColor
	}
	if c.FontFamily == "" {
		c.FontFamily = def.FontFamily
	}
	if c.FontSize == "" {
		c.FontSize = def.FontSize
	}
	if c.Spacing == "" {
		c.Spacing = def.Spacing
	}
	if c.LayoutType == "" {
		c.LayoutType = def.LayoutType
	}
	return c
}
