package formdef

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/dshills/maskform/internal/mask"
)

// Errors returned by form definition handling.
var (
	ErrNoFields       = errors.New("form defines no fields")
	ErrUnknownFormat  = errors.New("unknown form file format")
	ErrDuplicateField = errors.New("duplicate field name")
)

// FieldDef describes one masked input field of a form.
type FieldDef struct {
	Name    string `yaml:"name" toml:"name"`
	Label   string `yaml:"label" toml:"label"`
	Mask    string `yaml:"mask" toml:"mask"`
	Locale  string `yaml:"locale,omitempty" toml:"locale,omitempty"`
	Initial string `yaml:"initial,omitempty" toml:"initial,omitempty"`
}

// Symbols resolves the field's symbol table from its locale tag. An
// empty or unparsable locale yields the canonical symbols.
func (d *FieldDef) Symbols() mask.Symbols {
	if d.Locale == "" {
		return mask.DefaultSymbols()
	}
	tag, err := language.Parse(d.Locale)
	if err != nil {
		return mask.DefaultSymbols()
	}
	return mask.SymbolsFor(tag)
}

// Form is a named collection of masked fields.
type Form struct {
	Title  string     `yaml:"title" toml:"title"`
	Fields []FieldDef `yaml:"fields" toml:"fields"`
}

// Validate checks the form for structural problems and compiles every
// mask pattern so bad patterns surface at load time, not at render time.
func (f *Form) Validate() error {
	if len(f.Fields) == 0 {
		return ErrNoFields
	}
	seen := make(map[string]bool, len(f.Fields))
	for i := range f.Fields {
		d := &f.Fields[i]
		if d.Name == "" {
			return fmt.Errorf("field %d: missing name", i)
		}
		if seen[d.Name] {
			return fmt.Errorf("field %q: %w", d.Name, ErrDuplicateField)
		}
		seen[d.Name] = true
		if _, err := mask.Compile(d.Mask, d.Symbols()); err != nil {
			return fmt.Errorf("field %q: %w", d.Name, err)
		}
	}
	return nil
}
