package tui

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xala-technologies/xala-cli/internal/domain/theme"
)

type optionPair struct {
	Key   string
	Value string
}

func optionsToPairs(options []huh.Option[string]) []optionPair {
	pairs := make([]optionPair, 0, len(options))
	for _, option := range options {
		pairs = append(pairs, optionPair{Key: option.Key, Value: option.Value})
	}
	return pairs
}

func TestIndustryOptionsNameTheTypeface(t *testing.T) {
	t.Parallel()

	expected := []optionPair{
		{Key: "healthcare (Source Sans Pro)", Value: "healthcare"},
		{Key: "finance (IBM Plex Sans)", Value: "finance"},
		{Key: "education (Open Sans)", Value: "education"},
		{Key: "other (Inter)", Value: "other"},
	}
	if diff := cmp.Diff(expected, optionsToPairs(IndustryOptions("finance"))); diff != "" {
		t.Errorf("unexpected industry options (-want +got):\n%s", diff)
	}
}

func TestIndustryOptionsKeepUnknownSelection(t *testing.T) {
	t.Parallel()

	pairs := optionsToPairs(IndustryOptions("government"))
	require.Len(t, pairs, 5)
	assert.Equal(t, optionPair{Key: "government (Inter)", Value: "government"}, pairs[3])
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	prefill := theme.Config{Name: "Acme Corp", Brand: "Acme", Features: []string{"rtl", theme.FeatureDarkMode}}
	cfg := Assemble(prefill, "other", " #0891b2 ", "teal", "AAA", false, "nb-NO, , en-US,nb-NO")

	assert.Equal(t, "acme-corp", cfg.Name)
	assert.Equal(t, "Acme", cfg.Brand)
	assert.Empty(t, cfg.Industry)
	assert.Equal(t, map[string]string{"primary": "#0891b2", "secondary": "teal"}, cfg.Colors)
	assert.Equal(t, theme.AccessibilityAAA, cfg.Accessibility)
	assert.Equal(t, []string{"rtl"}, cfg.Features)
	assert.Equal(t, []string{"nb-NO", "en-US"}, cfg.Locales)
	require.NoError(t, theme.Validate(cfg))

	dark := Assemble(theme.Config{Name: "acme"}, "healthcare", "#000", "#fff", "AA", true, "")
	assert.Equal(t, []string{theme.FeatureDarkMode}, dark.Features)
	assert.Equal(t, []string{"en-US"}, dark.Locales)
	assert.Equal(t, "healthcare", dark.Industry)
}

func TestFieldValidators(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateName("Acme"))
	assert.Error(t, ValidateName("  --  "))

	assert.NoError(t, ValidateColour("#0891b2"))
	assert.NoError(t, ValidateColour("teal"))
	assert.Error(t, ValidateColour("not-a-colour"))
}
