package formdef

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) Open(name string) (fs.File, error) {
	return nil, fs.ErrNotExist
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

const invoiceYAML = `
title: Invoice
fields:
  - name: amount
    label: Amount
    mask: "###,##0.0##"
  - name: date
    label: Due date
    mask: "99\\/99\\/9999"
    locale: de-DE
`

const invoiceTOML = `
title = "Invoice"

[[fields]]
name = "amount"
label = "Amount"
mask = "###,##0.0##"

[[fields]]
name = "date"
mask = '99\/99\/9999'
`

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/invoice.yaml", invoiceYAML)

	form, err := NewYAMLLoaderWithFS(memfs, "/invoice.yaml").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if form.Title != "Invoice" {
		t.Errorf("Title = %q, want %q", form.Title, "Invoice")
	}
	if len(form.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(form.Fields))
	}
	if form.Fields[0].Mask != "###,##0.0##" {
		t.Errorf("field 0 mask = %q", form.Fields[0].Mask)
	}
	if form.Fields[1].Mask != `99\/99\/9999` {
		t.Errorf("field 1 mask = %q", form.Fields[1].Mask)
	}

	// The German locale swaps the decimal separator.
	sym := form.Fields[1].Symbols()
	if sym.Decimal != ',' {
		t.Errorf("de-DE decimal = %q, want ','", sym.Decimal)
	}
}

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/invoice.toml", invoiceTOML)

	form, err := NewTOMLLoaderWithFS(memfs, "/invoice.toml").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if form.Title != "Invoice" || len(form.Fields) != 2 {
		t.Fatalf("form = %+v", form)
	}
	if form.Fields[1].Mask != `99\/99\/9999` {
		t.Errorf("field 1 mask = %q", form.Fields[1].Mask)
	}
}

func TestLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.yaml", "title: [unterminated")

	_, err := NewYAMLLoaderWithFS(memfs, "/bad.yaml").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load err = %v, want ParseError", err)
	}
	if perr.Path != "/bad.yaml" {
		t.Errorf("ParseError path = %q", perr.Path)
	}
}

func TestLoader_BadMask(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.yaml", `
fields:
  - name: x
    mask: "##\\"
`)
	if _, err := NewYAMLLoaderWithFS(memfs, "/bad.yaml").Load(); err == nil {
		t.Error("Load with an invalid mask pattern should fail")
	}
}

func TestForm_Validate(t *testing.T) {
	if err := (&Form{}).Validate(); !errors.Is(err, ErrNoFields) {
		t.Errorf("empty form err = %v, want ErrNoFields", err)
	}

	dup := &Form{Fields: []FieldDef{
		{Name: "a", Mask: "#"},
		{Name: "a", Mask: "#"},
	}}
	if err := dup.Validate(); !errors.Is(err, ErrDuplicateField) {
		t.Errorf("duplicate err = %v, want ErrDuplicateField", err)
	}

	anon := &Form{Fields: []FieldDef{{Mask: "#"}}}
	if err := anon.Validate(); err == nil || !strings.Contains(err.Error(), "missing name") {
		t.Errorf("unnamed field err = %v", err)
	}
}

func TestFieldDef_Symbols(t *testing.T) {
	d := &FieldDef{Locale: ""}
	if sym := d.Symbols(); sym.Decimal != '.' {
		t.Errorf("default decimal = %q", sym.Decimal)
	}
	d = &FieldDef{Locale: "not a tag"}
	if sym := d.Symbols(); sym.Decimal != '.' {
		t.Errorf("bad locale should fall back, got %q", sym.Decimal)
	}
}

func TestForPath(t *testing.T) {
	for path, want := range map[string]string{
		"form.yaml": "*formdef.YAMLLoader",
		"form.yml":  "*formdef.YAMLLoader",
		"form.toml": "*formdef.TOMLLoader",
	} {
		l, err := ForPath(path)
		if err != nil {
			t.Fatalf("ForPath(%q): %v", path, err)
		}
		switch want {
		case "*formdef.YAMLLoader":
			if _, ok := l.(*YAMLLoader); !ok {
				t.Errorf("ForPath(%q) = %T", path, l)
			}
		case "*formdef.TOMLLoader":
			if _, ok := l.(*TOMLLoader); !ok {
				t.Errorf("ForPath(%q) = %T", path, l)
			}
		}
	}

	if _, err := ForPath("form.json"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ForPath(form.json) err = %v, want ErrUnknownFormat", err)
	}
}
