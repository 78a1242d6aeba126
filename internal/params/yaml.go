package params

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/roach88/zonebuilder/internal/clockboard"
)

type yamlFile struct {
	Clockboard *document `yaml:"clockboard"`
}

// LoadYAML resolves YAML source against base. Unknown fields are rejected.
func LoadYAML(data []byte, filename string, base clockboard.Params) (clockboard.Params, error) {
	var f yamlFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return clockboard.Params{}, &CompileError{
			Field:   "clockboard",
			Message: fmt.Sprintf("failed to parse YAML: %v", err),
			File:    filename,
			Line:    yamlErrorLine(err),
		}
	}
	if f.Clockboard == nil {
		return clockboard.Params{}, &CompileError{
			Field:   "clockboard",
			Message: "clockboard is required",
			File:    filename,
		}
	}
	return resolve(*f.Clockboard, base, filename)
}

// yamlErrorLine extracts the line of the first type error, if any.
func yamlErrorLine(err error) int {
	var te *yaml.TypeError
	if !errors.As(err, &te) || len(te.Errors) == 0 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(te.Errors[0], "line %d:", &line); scanErr != nil {
		return 0
	}
	return line
}
