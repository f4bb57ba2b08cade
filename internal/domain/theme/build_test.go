package theme

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xala-technologies/xala-cli/internal/palette"
)

func acmeConfig() Config {
	return Config{
		Name:          "acme",
		Brand:         "Acme",
		Industry:      "healthcare",
		Colors:        map[string]string{"primary": "#0891b2"},
		Accessibility: AccessibilityAAA,
		Features:      []string{},
		Locales:       []string{"en-US"},
	}
}

func TestBuildAcmeHealthcare(t *testing.T) {
	t.Parallel()

	tokens := Build(acmeConfig())

	primary500, ok := tokens.Color.Primary.Shade(palette.Step500)
	require.True(t, ok)
	assert.Equal(t, "#0891b2", primary500)

	sans, ok := tokens.Font.Family.Get("sans")
	require.True(t, ok)
	assert.Contains(t, sans, "Source Sans Pro")
	assert.Equal(t, "Source Sans Pro", SansFamily("healthcare"))
}

func TestBuildDefaultsMissingColors(t *testing.T) {
	t.Parallel()

	tokens := Build(Config{Name: "bare"})
	assert.Equal(t, DefaultPrimary, tokens.Color.Primary.Base())
	assert.Equal(t, DefaultSecondary, tokens.Color.Secondary.Base())
	assert.Equal(t, DefaultNeutral, tokens.Color.Neutral.Base())
	assert.Equal(t, DefaultSuccess, tokens.Color.Success.Base())
	assert.Equal(t, DefaultWarning, tokens.Color.Warning.Base())
	assert.Equal(t, DefaultError, tokens.Color.Error.Base())
	assert.Equal(t, DefaultInfo, tokens.Color.Info.Base())
}

func TestBuildKeepsPrimaryInputVerbatim(t *testing.T) {
	t.Parallel()

	tokens := Build(Config{Name: "padded", Colors: map[string]string{"primary": " #0891b2", "secondary": "   "}})
	assert.Equal(t, " #0891b2", tokens.Color.Primary.Base())
	assert.Equal(t, palette.Derive("#0891b2").At(palette.Step100), tokens.Color.Primary.At(palette.Step100))
	assert.Equal(t, DefaultSecondary, tokens.Color.Secondary.Base(), "blank colours fall back")
}

func TestBuildIgnoresOverridesForFixedScales(t *testing.T) {
	t.Parallel()

	cfg := acmeConfig()
	cfg.Colors = map[string]string{"primary": "#0891b2", "neutral": "#000000", "success": "#111111"}
	tokens := Build(cfg)
	assert.Equal(t, DefaultNeutral, tokens.Color.Neutral.Base())
	assert.Equal(t, DefaultSuccess, tokens.Color.Success.Base())
}

func TestSemanticMapping(t *testing.T) {
	t.Parallel()

	tokens := Build(acmeConfig())
	c := tokens.Color

	cases := []struct {
		group Group
		key   string
		scale palette.Scale
		step  palette.Step
	}{
		{c.Text, "primary", c.Neutral, palette.Step900},
		{c.Text, "secondary", c.Neutral, palette.Step600},
		{c.Text, "muted", c.Neutral, palette.Step500},
		{c.Text, "disabled", c.Neutral, palette.Step400},
		{c.Text, "inverse", c.Neutral, palette.Step50},
		{c.Text, "link", c.Primary, palette.Step600},
		{c.Background, "primary", c.Neutral, palette.Step25},
		{c.Background, "secondary", c.Neutral, palette.Step50},
		{c.Background, "tertiary", c.Neutral, palette.Step100},
		{c.Background, "inverse", c.Neutral, palette.Step900},
		{c.Background, "brand", c.Primary, palette.Step500},
		{c.Surface, "default", c.Neutral, palette.Step25},
		{c.Surface, "raised", c.Neutral, palette.Step50},
		{c.Surface, "overlay", c.Neutral, palette.Step100},
		{c.Surface, "sunken", c.Neutral, palette.Step200},
		{c.Border, "default", c.Neutral, palette.Step200},
		{c.Border, "strong", c.Neutral, palette.Step300},
		{c.Border, "subtle", c.Neutral, palette.Step100},
		{c.Border, "focus", c.Primary, palette.Step500},
		{c.Border, "error", c.Error, palette.Step500},
	}
	for _, tc := range cases {
		got, ok := tc.group.Get(tc.key)
		require.True(t, ok, "missing %s", tc.key)
		assert.Equal(t, tc.scale.At(tc.step), got, "%s mapping", tc.key)
	}
	assert.Len(t, c.Text, 6)
	assert.Len(t, c.Background, 5)
	assert.Len(t, c.Surface, 4)
	assert.Len(t, c.Border, 5)
}

func TestIndustryTypography(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"healthcare": "Source Sans Pro",
		"finance":    "IBM Plex Sans",
		"education":  "Open Sans",
		"government": "Inter",
		"":           "Inter",
		"aerospace":  "Inter",
	}
	for industry, want := range cases {
		assert.Equal(t, want, SansFamily(industry), "industry %q", industry)
	}

	tokens := Build(Config{Name: "x", Industry: "  Finance "})
	sans, _ := tokens.Font.Family.Get("sans")
	assert.Contains(t, sans, "IBM Plex Sans", "industry is matched case-insensitively after trimming")
}

func TestAccessibilityAdjustsBaseSize(t *testing.T) {
	t.Parallel()

	aa := Build(Config{Name: "x", Accessibility: AccessibilityAA})
	aaa := Build(Config{Name: "x", Accessibility: AccessibilityAAA})

	aaBase, _ := aa.Font.Size.Get("base")
	aaaBase, _ := aaa.Font.Size.Get("base")
	assert.Equal(t, "1rem", aaBase)
	assert.Equal(t, "1.125rem", aaaBase)
}

func TestSpacingAndRadiusScales(t *testing.T) {
	t.Parallel()

	tokens := Build(acmeConfig())
	require.Len(t, tokens.Space, 11)
	assert.Equal(t, Token{Key: "0", Value: "0"}, tokens.Space[0])
	assert.Equal(t, Token{Key: "10", Value: "80px"}, tokens.Space[10])
	require.Len(t, tokens.Radius, 6)
	full, _ := tokens.Radius.Get("full")
	assert.Equal(t, "9999px", full)
}

func TestBuildIsDeterministic(t *testing.T) {
	t.Parallel()

	first := Build(acmeConfig())
	second := Build(acmeConfig())

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	if diff := cmp.Diff(string(a), string(b)); diff != "" {
		t.Fatalf("token sets differ (-first +second):\n%s", diff)
	}
}

func TestBuildReturnsIndependentGroups(t *testing.T) {
	t.Parallel()

	first := Build(acmeConfig())
	first.Space[1].Value = "mutated"

	second := Build(acmeConfig())
	assert.Equal(t, "8px", second.Space[1].Value)
}

func TestColorScaleUnknownFallsBackToPrimary(t *testing.T) {
	t.Parallel()

	tokens := Build(acmeConfig())
	assert.Equal(t, tokens.Color.Primary, tokens.Color.Scale("tertiary"))
	assert.Equal(t, tokens.Color.Error, tokens.Color.Scale(ScaleError))
	assert.Len(t, tokens.Color.Scales(), 7)
}

func TestTokenSetJSONShape(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Build(acmeConfig()))
	require.NoError(t, err)

	var tree map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &tree))
	assert.ElementsMatch(t, []string{"color", "space", "font", "radius"}, keys(tree))
	assert.Len(t, tree["color"], 11)
	assert.Len(t, tree["font"], 4)
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
