// Package manifest compiles YAML field manifests into decodable schemas.
//
// A manifest declares the fields of a record without a compiled Go type:
//
//	version: "1"
//	fields:
//	  - name: id
//	    kind: int32
//	  - name: first_name
//	    kind: string
//	  - name: gender
//	    kind: enum
//	    members:
//	      Male: 0
//	      Female: 1
//
// Descriptors built from a manifest decode into Record values, keyed by the
// declared field names.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"row-caster/primitive"
)

// File is a parsed manifest.
type File struct {
	Version string  `yaml:"version"`
	Fields  []Field `yaml:"fields"`
}

// Field declares one decodable field: its name, its semantic kind, and for
// enum fields the member name table.
type Field struct {
	Name    string           `yaml:"name"`
	Kind    string           `yaml:"kind"`
	Members map[string]int32 `yaml:"members,omitempty"`
}

// kindNames maps manifest kind spellings to semantic kinds.
var kindNames = map[string]primitive.KindEnum{
	"int16":   primitive.KindInt16,
	"int32":   primitive.KindInt32,
	"int64":   primitive.KindInt64,
	"float32": primitive.KindFloat32,
	"float64": primitive.KindFloat64,
	"string":  primitive.KindString,
	"enum":    primitive.KindEnum32,
}

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File and validates it.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&f)

	if err := f.validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// validate checks the manifest structurally, collecting every problem into
// one error message instead of stopping at the first.
func (f *File) validate() error {
	var problems []string

	seen := map[string]struct{}{}

	for i, fd := range f.Fields {
		where := fmt.Sprintf("fields[%d]", i)

		if fd.Name == "" {
			problems = append(problems, where+": missing name")
		} else if _, dup := seen[fd.Name]; dup {
			problems = append(problems, fmt.Sprintf("%s: duplicate field %q", where, fd.Name))
		} else {
			seen[fd.Name] = struct{}{}
		}

		kind, ok := kindNames[fd.Kind]
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: unknown kind %q", where, fd.Kind))
			continue
		}

		if kind == primitive.KindEnum32 && len(fd.Members) == 0 {
			problems = append(problems, fmt.Sprintf("%s: enum field %q has no members", where, fd.Name))
		}

		if kind != primitive.KindEnum32 && len(fd.Members) > 0 {
			problems = append(problems, fmt.Sprintf("%s: members given for non-enum field %q", where, fd.Name))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid manifest: %s", joinProblems(problems))
	}

	return nil
}

func joinProblems(problems []string) string {
	out := problems[0]
	for _, p := range problems[1:] {
		out += "; " + p
	}

	return out
}
