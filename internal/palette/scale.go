// Package palette expands a single base colour into the twelve-step scale
// (25–950) every theme token is built from.
//
// Blending happens in HSL: lightening moves lightness towards 1 and darkening
// towards 0 by a fixed fraction of the remaining distance, keeping hue and
// saturation. Step 500 is always the caller's input string, untouched.
package palette

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Step identifies one shade of a Scale.
type Step int

const (
	Step25  Step = 25
	Step50  Step = 50
	Step100 Step = 100
	Step200 Step = 200
	Step300 Step = 300
	Step400 Step = 400
	Step500 Step = 500
	Step600 Step = 600
	Step700 Step = 700
	Step800 Step = 800
	Step900 Step = 900
	Step950 Step = 950
)

const stepCount = 12

var steps = [stepCount]Step{
	Step25, Step50, Step100, Step200, Step300, Step400,
	Step500, Step600, Step700, Step800, Step900, Step950,
}

// adjustment describes how a step is derived from the base colour.
type adjustment struct {
	lighten bool
	amount  float64
}

var adjustments = [stepCount]adjustment{
	{lighten: true, amount: 0.95},
	{lighten: true, amount: 0.90},
	{lighten: true, amount: 0.80},
	{lighten: true, amount: 0.60},
	{lighten: true, amount: 0.40},
	{lighten: true, amount: 0.20},
	{},
	{amount: 0.20},
	{amount: 0.40},
	{amount: 0.60},
	{amount: 0.80},
	{amount: 0.90},
}

// Steps returns the scale keys in ascending order.
func Steps() []Step {
	out := make([]Step, stepCount)
	copy(out, steps[:])
	return out
}

// String renders the step as its numeric key.
func (s Step) String() string {
	return strconv.Itoa(int(s))
}

func stepIndex(step Step) int {
	for i, candidate := range steps {
		if candidate == step {
			return i
		}
	}
	return -1
}

// Entry is a single step/colour pair.
type Entry struct {
	Step  Step
	Color string
}

// Scale is an immutable set of twelve shades.
type Scale struct {
	shades [stepCount]string
}

// Derive builds the scale for base. Unparseable input yields a scale whose
// every step equals base.
func Derive(base string) Scale {
	var scale Scale
	for i, adj := range adjustments {
		switch {
		case steps[i] == Step500:
			scale.shades[i] = base
		case adj.lighten:
			scale.shades[i] = Lighten(base, adj.amount)
		default:
			scale.shades[i] = Darken(base, adj.amount)
		}
	}
	return scale
}

// Shade returns the colour for step. Unknown steps report false.
func (s Scale) Shade(step Step) (string, bool) {
	index := stepIndex(step)
	if index < 0 {
		return "", false
	}
	return s.shades[index], true
}

// At returns the colour for step, falling back to the base colour for steps
// outside the scale.
func (s Scale) At(step Step) string {
	if color, ok := s.Shade(step); ok {
		return color
	}
	return s.Base()
}

// Base returns step 500.
func (s Scale) Base() string {
	return s.shades[stepIndex(Step500)]
}

// Entries lists the scale in ascending step order.
func (s Scale) Entries() []Entry {
	out := make([]Entry, stepCount)
	for i, step := range steps {
		out[i] = Entry{Step: step, Color: s.shades[i]}
	}
	return out
}

// MarshalJSON writes the scale as an object keyed by step, in step order.
func (s Scale) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, step := range steps {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(step.String())
		value, err := json.Marshal(s.shades[i])
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
