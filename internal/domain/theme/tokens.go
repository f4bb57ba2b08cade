package theme

import (
	"bytes"
	"encoding/json"

	"github.com/xala-technologies/xala-cli/internal/palette"
)

// Token is a single named value.
type Token struct {
	Key   string
	Value string
}

// Group is an ordered list of tokens. It marshals to a JSON object that keeps
// the declared order.
type Group []Token

// Get returns the value stored under key.
func (g Group) Get(key string) (string, bool) {
	for _, t := range g {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}

// MarshalJSON implements json.Marshaler.
func (g Group) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, t := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(t.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(t.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Scale names in emission order.
const (
	ScalePrimary   = "primary"
	ScaleSecondary = "secondary"
	ScaleNeutral   = "neutral"
	ScaleSuccess   = "success"
	ScaleWarning   = "warning"
	ScaleError     = "error"
	ScaleInfo      = "info"
)

// NamedScale pairs a scale with its category name.
type NamedScale struct {
	Name  string
	Scale palette.Scale
}

// NamedGroup pairs a token group with its category name.
type NamedGroup struct {
	Name  string
	Group Group
}

// ColorTokens holds the seven derived scales and the semantic buckets that
// reference them.
type ColorTokens struct {
	Primary    palette.Scale `json:"primary"`
	Secondary  palette.Scale `json:"secondary"`
	Neutral    palette.Scale `json:"neutral"`
	Success    palette.Scale `json:"success"`
	Warning    palette.Scale `json:"warning"`
	Error      palette.Scale `json:"error"`
	Info       palette.Scale `json:"info"`
	Text       Group         `json:"text"`
	Background Group         `json:"background"`
	Surface    Group         `json:"surface"`
	Border     Group         `json:"border"`
}

// Scales lists the seven scales in emission order.
func (c ColorTokens) Scales() []NamedScale {
	return []NamedScale{
		{Name: ScalePrimary, Scale: c.Primary},
		{Name: ScaleSecondary, Scale: c.Secondary},
		{Name: ScaleNeutral, Scale: c.Neutral},
		{Name: ScaleSuccess, Scale: c.Success},
		{Name: ScaleWarning, Scale: c.Warning},
		{Name: ScaleError, Scale: c.Error},
		{Name: ScaleInfo, Scale: c.Info},
	}
}

// Scale returns the scale for name; unknown names get the primary scale.
func (c ColorTokens) Scale(name string) palette.Scale {
	for _, s := range c.Scales() {
		if s.Name == name {
			return s.Scale
		}
	}
	return c.Primary
}

// Semantic lists the four semantic buckets in emission order.
func (c ColorTokens) Semantic() []NamedGroup {
	return []NamedGroup{
		{Name: "text", Group: c.Text},
		{Name: "background", Group: c.Background},
		{Name: "surface", Group: c.Surface},
		{Name: "border", Group: c.Border},
	}
}

// FontTokens holds typography scales.
type FontTokens struct {
	Family     Group `json:"family"`
	Size       Group `json:"size"`
	Weight     Group `json:"weight"`
	LineHeight Group `json:"lineHeight"`
}

// Groups lists the typography groups in emission order.
func (f FontTokens) Groups() []NamedGroup {
	return []NamedGroup{
		{Name: "family", Group: f.Family},
		{Name: "size", Group: f.Size},
		{Name: "weight", Group: f.Weight},
		{Name: "lineHeight", Group: f.LineHeight},
	}
}

// TokenSet is the complete derived token tree of a theme. Build returns a
// fresh value on every call and nothing mutates it afterwards.
type TokenSet struct {
	Color  ColorTokens `json:"color"`
	Space  Group       `json:"space"`
	Font   FontTokens  `json:"font"`
	Radius Group       `json:"radius"`
}
