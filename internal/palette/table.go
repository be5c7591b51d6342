package palette

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/ansitheme/internal/colorspace"
)

// Table errors.
var (
	ErrDuplicateRole   = errors.New("duplicate role")
	ErrUnknownRole     = errors.New("unknown role")
	ErrDependencyCycle = errors.New("dependency cycle")
	ErrEmptyRule       = errors.New("rule derives nothing")
	ErrUndeclaredRead  = errors.New("rule reads undeclared dependency")
)

type deriveFunc func(e *env) colorspace.Color

type deriveSetFunc func(e *env) []colorspace.Color

// rule derives one role from the source and previously derived roles.
type rule struct {
	name  string
	arity Arity
	alpha float64
	deps  []string
	color deriveFunc
	set   deriveSetFunc
}

func color(name string, f deriveFunc, deps ...string) rule {
	return rule{name: name, arity: RGB, alpha: 1, deps: deps, color: f}
}

func colorAlpha(name string, alpha float64, f deriveFunc, deps ...string) rule {
	return rule{name: name, arity: RGBA, alpha: alpha, deps: deps, color: f}
}

func colorSet(name string, f deriveSetFunc, deps ...string) rule {
	return rule{name: name, deps: deps, set: f}
}

// same publishes another role's color under a new name.
func same(name, source string) rule {
	return color(name, func(e *env) colorspace.Color { return e.c(source) }, source)
}

// RoleInfo describes a role in the derivation table.
type RoleInfo struct {
	Name  string   `json:"name"`
	Arity Arity    `json:"arity"`
	Set   bool     `json:"set"`
	Deps  []string `json:"deps,omitempty"`
}

// Table is an ordered, validated set of derivation rules.
type Table struct {
	rules []rule
	index map[string]int
}

func newTable(groups ...[]rule) (*Table, error) {
	var all []rule
	for _, g := range groups {
		all = append(all, g...)
	}

	index := make(map[string]int, len(all))
	for i, r := range all {
		if r.color == nil && r.set == nil {
			return nil, fmt.Errorf("%w: %s", ErrEmptyRule, r.name)
		}
		if _, exists := index[r.name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRole, r.name)
		}
		index[r.name] = i
	}

	ordered, err := topoSort(all, index)
	if err != nil {
		return nil, err
	}

	t := &Table{rules: ordered, index: make(map[string]int, len(ordered))}
	for i, r := range ordered {
		t.index[r.name] = i
	}
	return t, nil
}

// topoSort orders rules so every dependency precedes its dependents, keeping
// declaration order among independent rules.
func topoSort(rules []rule, index map[string]int) ([]rule, error) {
	pending := make([]int, len(rules))
	dependents := make([][]int, len(rules))
	for i, r := range rules {
		for _, dep := range r.deps {
			j, ok := index[dep]
			if !ok {
				return nil, fmt.Errorf("%w: %s depends on %s", ErrUnknownRole, r.name, dep)
			}
			pending[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	ordered := make([]rule, 0, len(rules))
	done := make([]bool, len(rules))
	for len(ordered) < len(rules) {
		progressed := false
		for i, r := range rules {
			if done[i] || pending[i] > 0 {
				continue
			}
			done[i] = true
			progressed = true
			ordered = append(ordered, r)
			for _, d := range dependents[i] {
				pending[d]--
			}
		}
		if !progressed {
			for i, r := range rules {
				if !done[i] {
					return nil, fmt.Errorf("%w: involving %s", ErrDependencyCycle, r.name)
				}
			}
		}
	}
	return ordered, nil
}

// Roles lists the table in evaluation order.
func (t *Table) Roles() []RoleInfo {
	out := make([]RoleInfo, len(t.rules))
	for i, r := range t.rules {
		out[i] = RoleInfo{
			Name:  r.name,
			Arity: r.arity,
			Set:   r.set != nil,
			Deps:  append([]string(nil), r.deps...),
		}
	}
	return out
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// Has reports whether the table defines name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

func (t *Table) evaluate(src Source, logger zerolog.Logger) *Palette {
	e := &env{
		src:      src,
		dark:     colorspace.IsDark(src.Background),
		swatches: make(map[string]Swatch, len(t.rules)),
		sets:     make(map[string][]colorspace.Color),
		logger:   logger,
	}

	for i := range t.rules {
		r := &t.rules[i]
		e.bind(r)
		if r.set != nil {
			e.sets[r.name] = r.set(e)
			continue
		}
		e.swatches[r.name] = Swatch{Color: r.color(e), Alpha: r.alpha, Arity: r.arity}
	}

	return &Palette{Dark: e.dark, Swatches: e.swatches, Sets: e.sets}
}

// Validate evaluates every rule against a dark and a light reference palette and
// reports the first rule that reads a role it did not declare.
func (t *Table) Validate() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUndeclaredRead, r)
		}
	}()
	for _, src := range referenceSources() {
		t.evaluate(src, zerolog.Nop())
	}
	return nil
}

// referenceSources returns the classic VGA palette over a black and a white
// background.
func referenceSources() []Source {
	hexes := [16]string{
		"#000000", "#aa0000", "#00aa00", "#aa5500", "#0000aa", "#aa00aa", "#00aaaa", "#aaaaaa",
		"#555555", "#ff5555", "#55ff55", "#ffff55", "#5555ff", "#ff55ff", "#55ffff", "#ffffff",
	}
	var ansi [16]colorspace.Color
	for i, h := range hexes {
		ansi[i] = colorspace.MustParseHex(h)
	}
	return []Source{
		{ANSI: ansi, Background: ansi[Black], Foreground: ansi[White]},
		{ANSI: ansi, Background: ansi[BrightWhite], Foreground: ansi[Black]},
	}
}
