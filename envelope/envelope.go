// Package envelope pulls the geometry out of an exported SVG document and
// wraps the rescaled path in the fixed 24px Material Symbols template.
//
// Extraction is pattern based, not an XML parser. A "<path ... d=" lookalike
// inside a comment, CDATA or another attribute value is picked up as well.
package envelope

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"materialize/pathdata"
)

const (
	// DefaultWidth is assumed when the source has no usable viewBox.
	DefaultWidth = 24

	FillColor = "#1f1f1f"
)

var ErrNoPathFound = errors.New("no <path> elements found")

var (
	viewBoxPattern = regexp.MustCompile(`viewBox="([\d.\s-]+)"`)
	pathPattern    = regexp.MustCompile(`<path[^>]*\bd="([^"]*)"`)
)

// ExtractViewBoxWidth returns the third viewBox number. A missing or
// unusable viewBox yields DefaultWidth.
func ExtractViewBoxWidth(svg string) float64 {
	m := viewBoxPattern.FindStringSubmatch(svg)
	if m == nil {
		return DefaultWidth
	}
	parts := strings.Fields(m[1])
	if len(parts) < 3 {
		return DefaultWidth
	}
	w, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// ExtractPathData returns every path d attribute in document order.
func ExtractPathData(svg string) []string {
	var paths []string
	for _, m := range pathPattern.FindAllStringSubmatch(svg, -1) {
		paths = append(paths, m[1])
	}
	return paths
}

// HasEvenOdd reports whether "evenodd" appears anywhere in the document. It
// does not check that the match is a fill-rule value.
func HasEvenOdd(svg string) bool {
	return strings.Contains(svg, "evenodd")
}

// Render builds the output document around already transformed path data.
func Render(d string, evenOdd bool) string {
	fr := ""
	if evenOdd {
		fr = ` fill-rule="evenodd"`
	}
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" height="24px" viewBox="0 -960 960 960" width="24px" fill="%v"><path%v d="%v"/></svg>`,
		FillColor, fr, d)
}

// Converter turns arbitrary SVG icons into Material Symbols documents.
type Converter struct {
	scanner  *pathdata.Scanner
	commands *pathdata.CommandTable
}

func NewConverter() *Converter {
	return &Converter{
		scanner:  pathdata.NewPathScanner(),
		commands: pathdata.NewCommandTable(),
	}
}

// Convert merges all paths of svg into one and rescales it onto the 960 unit
// grid. It fails only with ErrNoPathFound.
func (c *Converter) Convert(svg string) (string, error) {
	paths := ExtractPathData(svg)
	if len(paths) == 0 {
		return "", ErrNoPathFound
	}

	ctx := pathdata.MaterialContext(ExtractViewBoxWidth(svg))
	tokens := c.scanner.Scan(strings.Join(paths, ""))
	d := pathdata.Compact(pathdata.NewTransformer(c.commands, ctx).Transform(tokens))

	return Render(d, HasEvenOdd(svg)), nil
}

// Convert uses a fresh Converter.
func Convert(svg string) (string, error) {
	return NewConverter().Convert(svg)
}
