package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/opencode-ai/ansitheme/internal/colorspace"
)

// Arity is the number of channels a role is published with.
type Arity int

const (
	RGB  Arity = 3
	RGBA Arity = 4
)

// Swatch is a single derived role color.
type Swatch struct {
	Color colorspace.Color
	Alpha float64
	Arity Arity
}

// Values returns the channels in the role's arity.
func (s Swatch) Values() []float64 {
	if s.Arity == RGBA {
		return []float64{s.Color.R, s.Color.G, s.Color.B, s.Alpha}
	}
	return s.Color.Values()
}

func (s Swatch) String() string {
	if s.Arity == RGBA {
		return fmt.Sprintf("%s a=%.2f", s.Color.Hex(), s.Alpha)
	}
	return s.Color.Hex()
}

// Palette is the derived UI scheme.
type Palette struct {
	Dark     bool
	Swatches map[string]Swatch
	Sets     map[string][]colorspace.Color
}

// Color returns the color of a swatch role.
func (p *Palette) Color(name string) (colorspace.Color, bool) {
	s, ok := p.Swatches[name]
	return s.Color, ok
}

// Set returns a categorical color list.
func (p *Palette) Set(name string) ([]colorspace.Color, bool) {
	s, ok := p.Sets[name]
	return s, ok
}

// Names returns all role and set names, sorted.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.Swatches)+len(p.Sets))
	for name := range p.Swatches {
		names = append(names, name)
	}
	for name := range p.Sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Flat returns the palette as role name to channel values: swatches map to
// []float64 of their arity, sets to [][]float64, and "dark" to a bool.
func (p *Palette) Flat() map[string]any {
	out := make(map[string]any, len(p.Swatches)+len(p.Sets)+1)
	out["dark"] = p.Dark
	for name, s := range p.Swatches {
		out[name] = s.Values()
	}
	for name, set := range p.Sets {
		values := make([][]float64, len(set))
		for i, c := range set {
			values[i] = c.Values()
		}
		out[name] = values
	}
	return out
}

// Hex returns the palette as role name to hex strings.
func (p *Palette) Hex() map[string]any {
	out := make(map[string]any, len(p.Swatches)+len(p.Sets)+1)
	out["dark"] = p.Dark
	for name, s := range p.Swatches {
		out[name] = s.String()
	}
	for name, set := range p.Sets {
		values := make([]string, len(set))
		for i, c := range set {
			values[i] = c.Hex()
		}
		out[name] = values
	}
	return out
}

// Summary renders one line per swatch role for debugging.
func (p *Palette) Summary() string {
	names := make([]string, 0, len(p.Swatches))
	for name := range p.Swatches {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	mode := "light"
	if p.Dark {
		mode = "dark"
	}
	fmt.Fprintf(&b, "  %-28s = %s\n", "mode", mode)
	for _, name := range names {
		fmt.Fprintf(&b, "  %-28s = %s\n", name, p.Swatches[name])
	}
	return b.String()
}
