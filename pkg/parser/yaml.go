package parser

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// ParseYAMLFile opens a YAML file from fsys and decodes it into out.
// Unknown keys are rejected so typos in a config file surface as errors.
// An empty file leaves out untouched.
func ParseYAMLFile(fsys fs.FS, filename string, out interface{}, dir ...string) error {
	fullPath := filename
	if len(dir) > 0 {
		fullPath = path.Join(dir[0], filename)
	}

	file, err := fsys.Open(fullPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", fullPath, err)
	}
	defer file.Close()

	if err := DecodeYAML(file, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", fullPath, err)
	}

	return nil
}

// DecodeYAML strictly decodes a single YAML document from r into out.
func DecodeYAML(r io.Reader, out interface{}) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	return nil
}
