package mask

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fieldMapDocument is the on-disk shape of a field map:
//
//	fields:
//	  id_billing_cep: cep
//	  id_owner_cpf: cpf
type fieldMapDocument struct {
	Fields map[string]string `yaml:"fields"`
}

// LoadFields decodes a YAML field map and merges it over DefaultFields.
// An empty document yields the defaults.
func LoadFields(r io.Reader) (Fields, error) {
	var doc fieldMapDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidFieldMap, err)
	}

	extra := make(Fields, len(doc.Fields))
	for id, name := range doc.Fields {
		if id == "" {
			return nil, fmt.Errorf("%w: empty element id", ErrInvalidFieldMap)
		}
		kind, err := ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", id, err)
		}
		extra[id] = kind
	}

	return DefaultFields().Merge(extra), nil
}

// LoadFieldsFile is LoadFields for a file path. An empty path yields the defaults.
func LoadFieldsFile(path string) (Fields, error) {
	if path == "" {
		return DefaultFields(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrInvalidFieldMap, err)
	}
	defer f.Close()

	return LoadFields(f)
}
