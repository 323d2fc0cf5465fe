package configuration

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

type hclFile struct {
	Sections []*hclSection `hcl:"section,block"`
}

type hclSection struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// HCLLoader reads sections declared as labelled blocks:
//
//	section "Cache" {
//	  size = 128
//	  ttl  = "5m"
//	}
//
// Attribute values are converted to strings. Expressions cannot reference
// variables or functions.
type HCLLoader struct {
	sections map[string]*Section
}

// LoadHCLFile parses the HCL file at path.
func LoadHCLFile(path string) (*HCLLoader, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "unable to parse %s", path)
	}

	return newHCLLoader(file.Body)
}

// ParseHCL parses src. filename is only used in error messages.
func ParseHCL(src []byte, filename string) (*HCLLoader, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "unable to parse %s", filename)
	}

	return newHCLLoader(file.Body)
}

func newHCLLoader(body hcl.Body) (*HCLLoader, error) {
	var content hclFile

	diags := gohcl.DecodeBody(body, nil, &content)
	if diags.HasErrors() {
		return nil, errors.Wrap(diags, "unable to decode sections")
	}

	loader := &HCLLoader{sections: make(map[string]*Section, len(content.Sections))}
	for _, block := range content.Sections {
		if _, ok := loader.sections[block.Name]; ok {
			return nil, errors.Errorf("section %q is declared more than once", block.Name)
		}

		values, err := sectionValues(block)
		if err != nil {
			return nil, err
		}

		loader.sections[block.Name] = NewSection(block.Name, values)
	}

	return loader, nil
}

func sectionValues(block *hclSection) (map[string]string, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "unable to read section %q", block.Name)
	}

	values := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		value, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.Wrapf(diags, "unable to evaluate %s.%s", block.Name, name)
		}

		str, err := convert.Convert(value, cty.String)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to convert %s.%s to a string", block.Name, name)
		}

		if str.IsNull() {
			values[name] = ""

			continue
		}

		values[name] = str.AsString()
	}

	return values, nil
}

func (l *HCLLoader) GetSection(name string) (*Section, error) {
	section, ok := l.sections[name]
	if !ok {
		return nil, ErrSectionNotFound
	}

	return section, nil
}

var _ Loader = (*HCLLoader)(nil)
