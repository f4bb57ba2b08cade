package render

import (
	"regexp"
	"strings"
	"text/template"
	"unicode"

	"github.com/xala-technologies/xala-cli/internal/domain/theme"
	"github.com/xala-technologies/xala-cli/internal/palette"
)

var (
	identPattern   = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	numericPattern = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)
)

var funcs = template.FuncMap{
	"js":        jsString,
	"key":       jsKey,
	"camel":     camel,
	"pascal":    pascal,
	"object":    object,
	"scale":     scaleObject,
	"shape":     typeShape,
	"list":      jsList,
	"stack":     fontStack,
	"join":      strings.Join,
	"stepUnion": stepUnion,
}

// jsString quotes s as a single-quoted JavaScript string literal.
func jsString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)
	return "'" + r.Replace(s) + "'"
}

// jsKey leaves identifiers and integer keys bare and quotes the rest.
func jsKey(k string) string {
	if identPattern.MatchString(k) || numericPattern.MatchString(k) {
		return k
	}
	return jsString(k)
}

func words(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// camel turns a slug such as "acme-health" into "acmeHealth".
func camel(name string) string {
	p := pascal(name)
	if p == "" {
		return "theme"
	}
	if p[0] == '_' {
		return p
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// pascal turns a slug such as "acme-health" into "AcmeHealth".
func pascal(name string) string {
	var b strings.Builder
	for _, w := range words(name) {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	out := b.String()
	if out != "" && unicode.IsDigit(rune(out[0])) {
		out = "_" + out
	}
	return out
}

func indent(n int) string {
	return strings.Repeat(" ", n)
}

// object renders g as a multi-line object literal whose closing brace sits at
// the given indentation.
func object(g theme.Group, depth int) string {
	if len(g) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, t := range g {
		b.WriteString(indent(depth + 2))
		b.WriteString(jsKey(t.Key))
		b.WriteString(": ")
		b.WriteString(jsString(t.Value))
		b.WriteString(",\n")
	}
	b.WriteString(indent(depth))
	b.WriteString("}")
	return b.String()
}

func scaleObject(s palette.Scale, depth int) string {
	entries := s.Entries()
	g := make(theme.Group, len(entries))
	for i, e := range entries {
		g[i] = theme.Token{Key: e.Step.String(), Value: e.Color}
	}
	return object(g, depth)
}

// typeShape renders the keys of g as an inline TypeScript object type.
func typeShape(g theme.Group) string {
	parts := make([]string, len(g))
	for i, t := range g {
		parts[i] = jsKey(t.Key) + ": string"
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func jsList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = jsString(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// fontStack splits a CSS font-family value into its entries.
func fontStack(family string) string {
	parts := strings.Split(family, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `'"`)
		if p != "" {
			out = append(out, p)
		}
	}
	return jsList(out)
}

func stepUnion() string {
	steps := palette.Steps()
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, " | ")
}
