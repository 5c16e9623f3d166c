package flow

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/flowdot/flowdot/pkg/errors"
)

// Format identifies a supported input encoding.
type Format string

// Supported input encodings. All three decode to the identical document
// shape; the choice is made from the file extension, not the content.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// DetectFormat maps a file path to its input format based on extension.
// Recognized extensions: .json, .yaml, .yml, .toml.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unrecognized extension %q (supported: .json, .yaml, .yml, .toml)", filepath.Ext(path))
	}
}

// Wire representation of the document. Pointer fields distinguish a missing
// required array from an empty one; unknown fields are ignored by all three
// decoders.
type document struct {
	Data      *[]dataEntry     `json:"data" yaml:"data" toml:"data"`
	Functions *[]functionEntry `json:"functions" yaml:"functions" toml:"functions"`
}

type dataEntry struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Source      string `json:"source" yaml:"source" toml:"source"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

type functionEntry struct {
	Name    string    `json:"name" yaml:"name" toml:"name"`
	Owner   string    `json:"owner" yaml:"owner" toml:"owner"`
	Inputs  *[]string `json:"inputs" yaml:"inputs" toml:"inputs"`
	Outputs *[]string `json:"outputs" yaml:"outputs" toml:"outputs"`
}

// Read decodes a dataflow specification from r using the given format.
//
// Read returns a MALFORMED_INPUT error if the content does not decode, if a
// required field is missing (the top-level "data" and "functions" arrays;
// "name" and "source" per data entry; "name", "owner", "inputs" and
// "outputs" per function entry), or if a value has the wrong type. No
// partial graph is returned on failure.
//
// Read does not validate that input/output references resolve to declared
// artifacts; see the package comment.
func Read(r io.Reader, f Format) (*Graph, error) {
	var doc document
	var err error
	switch f {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", string(f))
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "decode %s", string(f))
	}
	return doc.graph()
}

// Import reads the specification file at path, picks the decoder from the
// file extension, and returns the decoded graph.
func Import(path string) (*Graph, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeInputNotFound, err, "could not read file '%s'", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInputUnreadable, err, "could not read file '%s'", path)
	}
	defer f.Close()

	g, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// graph validates required fields and builds the immutable model.
func (d *document) graph() (*Graph, error) {
	if d.Data == nil {
		return nil, errors.New(errors.ErrCodeMalformedInput, "missing data field")
	}
	if d.Functions == nil {
		return nil, errors.New(errors.ErrCodeMalformedInput, "missing functions field")
	}

	g := &Graph{
		Data:      make([]Data, len(*d.Data)),
		Functions: make([]Function, len(*d.Functions)),
	}
	for i, e := range *d.Data {
		if e.Name == "" {
			return nil, errors.New(errors.ErrCodeMalformedInput, "data[%d]: missing name field", i)
		}
		if e.Source == "" {
			return nil, errors.New(errors.ErrCodeMalformedInput, "data[%d] (%s): missing source field", i, e.Name)
		}
		g.Data[i] = Data{Name: e.Name, Source: e.Source, Description: e.Description}
	}
	for i, e := range *d.Functions {
		if e.Name == "" {
			return nil, errors.New(errors.ErrCodeMalformedInput, "functions[%d]: missing name field", i)
		}
		if e.Owner == "" {
			return nil, errors.New(errors.ErrCodeMalformedInput, "functions[%d] (%s): missing owner field", i, e.Name)
		}
		if e.Inputs == nil {
			return nil, errors.New(errors.ErrCodeMalformedInput, "functions[%d] (%s): missing inputs field", i, e.Name)
		}
		if e.Outputs == nil {
			return nil, errors.New(errors.ErrCodeMalformedInput, "functions[%d] (%s): missing outputs field", i, e.Name)
		}
		g.Functions[i] = Function{Name: e.Name, Owner: e.Owner, Inputs: *e.Inputs, Outputs: *e.Outputs}
	}
	return g, nil
}
