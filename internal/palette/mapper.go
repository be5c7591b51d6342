package palette

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/ansitheme/internal/colorspace"
	"github.com/opencode-ai/ansitheme/internal/logging"
)

var (
	defaultTableOnce sync.Once
	defaultTable     *Table
)

// DefaultTable returns the built-in derivation table. It panics if the
// static rule set is inconsistent.
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		t, err := newTable(
			semanticRules(),
			surfaceRules(),
			textRules(),
			accentRules(),
			widgetRules(),
			stateRules(),
			viewportRules(),
			animationRules(),
			editorRules(),
			categoricalRules(),
			iconRules(),
		)
		if err == nil {
			err = t.Validate()
		}
		if err != nil {
			panic(fmt.Sprintf("palette: invalid derivation table: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Mapper turns a Source into a Palette. It holds no per-call state and is
// safe for concurrent use.
type Mapper struct {
	table  *Table
	logger zerolog.Logger
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the logger used for contrast diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Mapper) {
		m.logger = logger
	}
}

// NewMapper creates a Mapper over the default table.
func NewMapper(opts ...Option) *Mapper {
	m := &Mapper{
		table:  DefaultTable(),
		logger: logging.Component("mapper"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Map derives the palette for src.
func Map(src Source) *Palette {
	return NewMapper().Map(src)
}

// Map derives the palette for src.
func (m *Mapper) Map(src Source) *Palette {
	return m.table.evaluate(src, m.logger)
}

// Table returns the mapper's derivation table.
func (m *Mapper) Table() *Table {
	return m.table
}

// env is the evaluation context handed to rules.
type env struct {
	src      Source
	dark     bool
	swatches map[string]Swatch
	sets     map[string][]colorspace.Color
	logger   zerolog.Logger

	current *rule
	allowed map[string]struct{}
}

func (e *env) bind(r *rule) {
	e.current = r
	e.allowed = make(map[string]struct{}, len(r.deps))
	for _, dep := range r.deps {
		e.allowed[dep] = struct{}{}
	}
}

func (e *env) checkDep(name string) {
	if _, ok := e.allowed[name]; !ok {
		panic(fmt.Sprintf("palette: role %q reads undeclared dependency %q", e.current.name, name))
	}
}

// c returns a derived swatch color.
func (e *env) c(name string) colorspace.Color {
	e.checkDep(name)
	s, ok := e.swatches[name]
	if !ok {
		panic(fmt.Sprintf("palette: role %q read %q before it was derived", e.current.name, name))
	}
	return s.Color
}

// list returns a derived categorical set.
func (e *env) list(name string) []colorspace.Color {
	e.checkDep(name)
	s, ok := e.sets[name]
	if !ok {
		panic(fmt.Sprintf("palette: role %q read set %q before it was derived", e.current.name, name))
	}
	return s
}

func (e *env) ansi(i int) colorspace.Color {
	return e.src.ANSI[i]
}

// mode returns d for dark themes and l for light ones.
func (e *env) mode(d, l float64) float64 {
	if e.dark {
		return d
	}
	return l
}

// raise moves c away from the background pole: lighter on dark themes,
// darker on light ones.
func (e *env) raise(c colorspace.Color, amount float64) colorspace.Color {
	if e.dark {
		return colorspace.Lighten(c, amount)
	}
	return colorspace.Darken(c, amount)
}

// sink moves c toward the background pole.
func (e *env) sink(c colorspace.Color, amount float64) colorspace.Color {
	return e.raise(c, -amount)
}

// pole is the text pole for the mode: white on dark themes, black on light.
func (e *env) pole() colorspace.Color {
	if e.dark {
		return colorspace.White
	}
	return colorspace.Black
}

// contrast runs the bounded contrast search and reports unmet targets.
func (e *env) contrast(fg, bg colorspace.Color, minRatio float64) colorspace.Color {
	c, res := colorspace.SeekContrast(fg, bg, minRatio)
	if !res.Met {
		e.logger.Debug().
			Str("role", e.current.name).
			Float64("target", minRatio).
			Float64("achieved", res.Ratio).
			Msg("contrast target not reached")
	}
	return c
}

// readable resolves text for bg, preferring the given color and falling back
// to white or black.
func (e *env) readable(bg, preferred colorspace.Color, minRatio float64) colorspace.Color {
	c := colorspace.ReadableOn(bg, preferred, minRatio)
	if r := colorspace.ContrastRatio(c, bg); r < minRatio {
		e.logger.Debug().
			Str("role", e.current.name).
			Float64("target", minRatio).
			Float64("achieved", r).
			Msg("readable text target not reached")
	}
	return c
}
