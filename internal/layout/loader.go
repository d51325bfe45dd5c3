package layout

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads a TOML layout definition from path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout file %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadFromReader reads a TOML layout definition from r.
func LoadFromReader(r io.Reader) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	return parse("<reader>", data)
}

// parse unmarshals and validates a definition.
func parse(source string, data []byte) (*Definition, error) {
	var def Definition
	if err := toml.Unmarshal(data, &def); err != nil {
		return nil, &ParseError{
			Path:    source,
			Message: "invalid TOML",
			Err:     err,
		}
	}
	if err := def.validate(source); err != nil {
		return nil, err
	}
	return &def, nil
}
