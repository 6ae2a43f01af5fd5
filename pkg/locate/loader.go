package locate

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is one operations file: the sheet to load and the operations to
// run against it.
type Document struct {
	Sheet      string      `yaml:"sheet,omitempty" json:"sheet,omitempty"`
	Operations []Operation `yaml:"operations" json:"operations"`
}

// ParseDocument parses an operations document from YAML bytes. Unknown keys
// are ignored so documents may carry annotations.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse operations YAML: %w", err)
	}
	return &doc, nil
}

// LoadDocumentFile loads an operations document from a YAML file path.
func LoadDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return ParseDocument(data)
}

// LoadDocumentFS loads an operations document from a filesystem.
func LoadDocumentFS(fsys fs.FS, path string) (*Document, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseDocument(data)
}

// Validate reports the first operation whose kind is not supported. Running
// such an operation only records a miss; validating up front lets callers
// reject a typo before touching the workbook.
func (d *Document) Validate() error {
	for i, op := range d.Operations {
		if !op.Kind.Valid() {
			name := op.Name
			if name == "" {
				name = fmt.Sprintf("operation %d", i)
			}
			return fmt.Errorf("%w: %q (%s)", ErrUnknownKind, op.Kind, name)
		}
	}
	return nil
}
