// Package variant holds product variant authoring: SKU suggestions and the
// variant and attribute forms.
package variant

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

const (
	base36     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	suffixSize = 4
)

// Attribute is a (name, value) pair such as Color/Red.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Generator suggests SKUs. Suggestions carry a random suffix, so two calls
// with the same input differ; uniqueness is enforced by the remote API.
type Generator struct {
	// Rand returns a uniform int in [0, n). Defaults to math/rand/v2.
	Rand func(n int) int
}

var defaultGenerator = Generator{}

// GenerateSKU suggests a SKU with the default random source.
func GenerateSKU(productName string, attrs []Attribute) string {
	return defaultGenerator.SKU(productName, attrs)
}

// SKU builds NAME-AT-VAL-...-RAND: the product name without whitespace,
// one code per attribute (2 name chars, a hyphen, 3 value chars) and a 4
// character base36 suffix, all upper case.
func (g Generator) SKU(productName string, attrs []Attribute) string {
	parts := make([]string, 0, len(attrs)+2)
	parts = append(parts, strings.ToUpper(stripSpace(productName)))
	for _, a := range attrs {
		parts = append(parts, strings.ToUpper(prefix(a.Name, 2))+"-"+strings.ToUpper(prefix(a.Value, 3)))
	}
	parts = append(parts, g.suffix())
	return strings.Join(parts, "-")
}

func (g Generator) suffix() string {
	intn := g.Rand
	if intn == nil {
		intn = rand.IntN
	}
	var b strings.Builder
	b.Grow(suffixSize)
	for i := 0; i < suffixSize; i++ {
		b.WriteByte(base36[intn(len(base36))])
	}
	return b.String()
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// prefix returns the first n runes of s.
func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
