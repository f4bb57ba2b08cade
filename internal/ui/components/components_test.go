package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xala-technologies/xala-cli/internal/domain/theme"
	"github.com/xala-technologies/xala-cli/internal/palette"
)

func acmeTokens() theme.TokenSet {
	return theme.Build(theme.Config{Name: "acme", Colors: map[string]string{"primary": "#0891b2"}})
}

func TestFromTokensUsesScaleMidpoints(t *testing.T) {
	t.Parallel()

	th := FromTokens(acmeTokens().Color)
	assert.Equal(t, lipgloss.Color("#0891b2"), th.Palette.Primary.Base)
	assert.Equal(t, lipgloss.Color(theme.DefaultNeutral), th.Palette.Neutral.Base)
	assert.Equal(t, th.Palette.Error, th.Palette.Set(SlotError))
	assert.Equal(t, th.Palette.Neutral, th.Palette.Set(Slot(99)))
	assert.NotEmpty(t, th.Text)
}

func TestOnColourContrast(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.Color("#000000"), onColour("#f8fafc"))
	assert.Equal(t, lipgloss.Color("#ffffff"), onColour("#0f172a"))
}

func TestScaleSwatchListsEveryStep(t *testing.T) {
	t.Parallel()

	scale := palette.Derive("#0891b2")
	out := NewScaleSwatch("primary", scale).WithHex(true).View()

	assert.Contains(t, out, "primary")
	for _, entry := range scale.Entries() {
		assert.Contains(t, out, entry.Step.String())
		assert.Contains(t, out, entry.Color)
	}
}

func TestTokenTableRendersRows(t *testing.T) {
	t.Parallel()

	tokens := acmeTokens()
	out := NewTokenTable("space", tokens.Space).ViewWithContext(DefaultContext().WithWidth(40))

	assert.Contains(t, out, "space")
	assert.Contains(t, out, "80px")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}

	chips := NewTokenTable("text", tokens.Color.Text).WithChips(true).View()
	value, ok := tokens.Color.Text.Get("primary")
	require.True(t, ok)
	assert.Contains(t, chips, value)
}

func TestAlertShowsItems(t *testing.T) {
	t.Parallel()

	out := NewAlert("2 problems", SlotError).WithItems("name: is required", "ui.platform: unsupported").View()

	assert.Contains(t, out, "✗ 2 problems")
	assert.Contains(t, out, "• name: is required")
	assert.Contains(t, out, "• ui.platform: unsupported")
}

func TestStackGap(t *testing.T) {
	t.Parallel()

	a := NewHeader("one")
	b := NewHeader("two")

	tight := VStack(a, b).View()
	spaced := VStack(a, b).WithGap(2).View()

	assert.Equal(t, 2, strings.Count(tight, "\n")+1)
	assert.Equal(t, 4, strings.Count(spaced, "\n")+1)

	row := HStack(NewBadge("a", SlotPrimary), NewBadge("b", SlotSuccess)).WithGap(1).View()
	assert.Equal(t, " a   b ", row)
}

func TestHeaderSubtitle(t *testing.T) {
	t.Parallel()

	out := NewHeader("Acme").WithSubtitle("acme · healthcare").View()
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "acme · healthcare")
}

func TestHeaderTruncatesToContextWidth(t *testing.T) {
	t.Parallel()

	out := NewHeader("Acme").
		WithSubtitle("acme · healthcare · Source Sans Pro · WCAG AAA").
		ViewWithContext(DefaultContext().WithWidth(12))

	assert.Contains(t, out, "…")
	assert.NotContains(t, out, "WCAG")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 12)
	}
}
