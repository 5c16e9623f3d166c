package flow

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flowdot/flowdot/pkg/errors"
)

const sampleJSON = `{
  "data": [
    {"name": "A", "source": "warehouse"},
    {"name": "B", "source": "warehouse", "description": "derived table"}
  ],
  "functions": [
    {"name": "F", "owner": "svc1", "inputs": ["A"], "outputs": ["B"]}
  ]
}`

const sampleYAML = `data:
  - name: A
    source: warehouse
  - name: B
    source: warehouse
    description: derived table
functions:
  - name: F
    owner: svc1
    inputs: [A]
    outputs: [B]
`

const sampleTOML = `[[data]]
name = "A"
source = "warehouse"

[[data]]
name = "B"
source = "warehouse"
description = "derived table"

[[functions]]
name = "F"
owner = "svc1"
inputs = ["A"]
outputs = ["B"]
`

func checkSample(t *testing.T, g *Graph) {
	t.Helper()
	if len(g.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(g.Data))
	}
	if g.Data[0].Name != "A" || g.Data[0].Source != "warehouse" {
		t.Errorf("Data[0] = %+v, want name A, source warehouse", g.Data[0])
	}
	if g.Data[1].Description != "derived table" {
		t.Errorf("Data[1].Description = %q, want %q", g.Data[1].Description, "derived table")
	}
	if len(g.Functions) != 1 {
		t.Fatalf("len(Functions) = %d, want 1", len(g.Functions))
	}
	f := g.Functions[0]
	if f.Name != "F" || f.Owner != "svc1" {
		t.Errorf("Functions[0] = %+v, want name F, owner svc1", f)
	}
	if len(f.Inputs) != 1 || f.Inputs[0] != "A" {
		t.Errorf("Inputs = %v, want [A]", f.Inputs)
	}
	if len(f.Outputs) != 1 || f.Outputs[0] != "B" {
		t.Errorf("Outputs = %v, want [B]", f.Outputs)
	}
}

func TestRead_AllFormats(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		content string
	}{
		{"json", FormatJSON, sampleJSON},
		{"yaml", FormatYAML, sampleYAML},
		{"toml", FormatTOML, sampleTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Read(strings.NewReader(tt.content), tt.format)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			checkSample(t, g)
		})
	}
}

func TestRead_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "missing functions",
			content: `{"data": []}`,
			wantMsg: "missing functions field",
		},
		{
			name:    "missing data",
			content: `{"functions": []}`,
			wantMsg: "missing data field",
		},
		{
			name:    "data entry missing name",
			content: `{"data": [{"source": "s"}], "functions": []}`,
			wantMsg: "missing name field",
		},
		{
			name:    "data entry missing source",
			content: `{"data": [{"name": "A"}], "functions": []}`,
			wantMsg: "missing source field",
		},
		{
			name:    "function missing owner",
			content: `{"data": [], "functions": [{"name": "F", "inputs": [], "outputs": []}]}`,
			wantMsg: "missing owner field",
		},
		{
			name:    "function missing inputs",
			content: `{"data": [], "functions": [{"name": "F", "owner": "svc1", "outputs": []}]}`,
			wantMsg: "missing inputs field",
		},
		{
			name:    "function missing outputs",
			content: `{"data": [], "functions": [{"name": "F", "owner": "svc1", "inputs": []}]}`,
			wantMsg: "missing outputs field",
		},
		{
			name:    "wrong value type",
			content: `{"data": "nope", "functions": []}`,
			wantMsg: "decode json",
		},
		{
			name:    "not json at all",
			content: `digraph G {}`,
			wantMsg: "decode json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Read(strings.NewReader(tt.content), FormatJSON)
			if err == nil {
				t.Fatal("Read() error = nil, want decode failure")
			}
			if g != nil {
				t.Error("Read() returned a partial graph on failure")
			}
			if !errors.Is(err, errors.ErrCodeMalformedInput) {
				t.Errorf("error code = %v, want MALFORMED_INPUT", errors.GetCode(err))
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRead_UnknownFieldsIgnored(t *testing.T) {
	content := `{
  "data": [{"name": "A", "source": "s", "steward": "ignored"}],
  "functions": [{"name": "F", "owner": "svc1", "inputs": [], "outputs": [], "sla": "24h"}],
  "version": 2
}`
	g, err := Read(strings.NewReader(content), FormatJSON)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(g.Data) != 1 || len(g.Functions) != 1 {
		t.Errorf("got %d data, %d functions, want 1 and 1", len(g.Data), len(g.Functions))
	}
}

func TestRead_EmptyArraysAreValid(t *testing.T) {
	g, err := Read(strings.NewReader(`{"data": [], "functions": []}`), FormatJSON)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if g.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d, want 0", g.NodeCount())
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"spec.json", FormatJSON, false},
		{"spec.yaml", FormatYAML, false},
		{"spec.yml", FormatYAML, false},
		{"spec.toml", FormatTOML, false},
		{"SPEC.JSON", FormatJSON, false},
		{"spec.xml", "", true},
		{"spec", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DetectFormat(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("error code = %v, want INVALID_FORMAT", errors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := Import(path)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	checkSample(t, g)
}

func TestImport_NotFound(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("Import() error = nil, want not-found failure")
	}
	if !errors.Is(err, errors.ErrCodeInputNotFound) {
		t.Errorf("error code = %v, want INPUT_NOT_FOUND", errors.GetCode(err))
	}
	if !strings.Contains(err.Error(), "missing.json") {
		t.Errorf("error %q does not mention the path", err.Error())
	}
}

func TestImport_MalformedMentionsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("functions:\n  - name: F\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Import(path)
	if err == nil {
		t.Fatal("Import() error = nil, want decode failure")
	}
	if !errors.Is(err, errors.ErrCodeMalformedInput) {
		t.Errorf("error code = %v, want MALFORMED_INPUT", errors.GetCode(err))
	}
	if !strings.Contains(err.Error(), "broken.yaml") {
		t.Errorf("error %q does not mention the path", err.Error())
	}
}
