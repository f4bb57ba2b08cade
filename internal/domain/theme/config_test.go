package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xerrors "github.com/xala-technologies/xala-cli/pkg/errors"
)

func TestNormalizeAppliesDefaultsAndDedupes(t *testing.T) {
	t.Parallel()

	in := Config{
		Name:     " acme ",
		Features: []string{"darkMode", "rtl", "darkMode", " "},
		Locales:  []string{"nb-NO", "en-US", "nb-NO"},
		Colors:   map[string]string{"primary": "#0891b2"},
	}
	out := in.Normalize()

	assert.Equal(t, "acme", out.Name)
	assert.Equal(t, "acme", out.Brand)
	assert.Equal(t, AccessibilityAA, out.Accessibility)
	assert.Equal(t, []string{"darkMode", "rtl"}, out.Features)
	assert.Equal(t, []string{"nb-NO", "en-US"}, out.Locales)

	out.Colors["primary"] = "#000000"
	assert.Equal(t, "#0891b2", in.Colors["primary"], "Normalize must not alias the input map")
}

func TestNormalizeDefaultsLocale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"en-US"}, Config{Name: "x"}.Normalize().Locales)
}

func TestHasFeature(t *testing.T) {
	t.Parallel()

	cfg := Config{Features: []string{FeatureDarkMode}}
	assert.True(t, cfg.HasFeature(FeatureDarkMode))
	assert.False(t, cfg.HasFeature("highContrast"))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"valid", Config{Name: "acme-health", Accessibility: AccessibilityAAA}, ""},
		{"missing name", Config{}, "name"},
		{"bad slug", Config{Name: "Acme Health"}, "name"},
		{"bad accessibility", Config{Name: "acme", Accessibility: "A"}, "accessibility"},
		{"invalid color is fine", Config{Name: "acme", Colors: map[string]string{"primary": "blurple"}}, ""},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tc.cfg)
			if tc.field == "" {
				require.NoError(t, err)
				return
			}
			var verr *xerrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestPresets(t *testing.T) {
	t.Parallel()

	names := PresetNames()
	require.Contains(t, names, DefaultPresetName)
	assert.IsIncreasing(t, names)

	for _, name := range names {
		cfg, ok := Preset(name)
		require.True(t, ok)
		assert.Equal(t, name, cfg.Name)
		require.NoError(t, Validate(cfg), "preset %s must validate", name)
	}

	_, ok := Preset("does-not-exist")
	assert.False(t, ok)
}
