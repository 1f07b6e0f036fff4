package cli

import (
	"testing"

	"github.com/matzehuels/gamegrid/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to json", "", []string{"json"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "json,dot,png", []string{"json", "dot", "png"}},
		{"spaces trimmed", "svg, text", []string{"svg", "text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
				return
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidFormatsMap(t *testing.T) {
	for _, f := range []string{"json", "dot", "svg", "png", "text"} {
		if !pipeline.ValidFormats[f] {
			t.Errorf("ValidFormats[%q] = false, want true", f)
		}
	}
	if pipeline.ValidFormats["pdf"] {
		t.Error("ValidFormats[pdf] should be false")
	}
}

func TestOutputBase(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"output wins", "out/grid.svg", "in.layout.json", "out/grid"},
		{"from input", "", "data/home.layout.json", "data/home"},
		{"plain input", "", "home.json", "home"},
		{"default", "", "", defaultOutputBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputBase(tt.output, tt.input); got != tt.want {
				t.Errorf("outputBase(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"json": "json",
		"dot":  "dot",
		"svg":  "svg",
		"png":  "png",
		"text": "txt",
	}
	for format, want := range tests {
		if got := extension(format); got != want {
			t.Errorf("extension(%q) = %q, want %q", format, got, want)
		}
	}
}
