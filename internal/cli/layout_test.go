package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blydeben/sankey-app/pkg/diagram"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestLayoutCommandCSV(t *testing.T) {
	input := writeTempFile(t, "edges.csv", strings.Join([]string{
		"source,target,value",
		"Steam,Process A,100",
		"Steam,Process B,200",
		"Process A,Losses,50",
	}, "\n"))
	output := filepath.Join(t.TempDir(), "out.json")

	err := runCommand(t, "layout", input, "-o", output, "--round-factor", "1", "--units", "kWh")
	if err != nil {
		t.Fatalf("layout command error: %v", err)
	}

	d, err := diagram.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(d.Nodes) != 4 {
		t.Fatalf("got %d nodes, want 4", len(d.Nodes))
	}
	if d.Nodes[0].ID != "Steam" || d.Nodes[0].Label != "300 kWh" {
		t.Errorf("first node = %q (%q), want Steam (300 kWh)", d.Nodes[0].ID, d.Nodes[0].Label)
	}
}

func TestLayoutCommandJSON(t *testing.T) {
	input := writeTempFile(t, "edges.json", `{"edges": [
		{"source": "A", "target": "B", "value": 10}
	]}`)

	// Default output lands next to the input.
	if err := runCommand(t, "layout", input); err != nil {
		t.Fatalf("layout command error: %v", err)
	}

	output := strings.TrimSuffix(input, ".json") + ".diagram.json"
	if _, err := os.Stat(output); err != nil {
		t.Errorf("default output missing: %v", err)
	}
}

func TestLayoutCommandConfigFile(t *testing.T) {
	input := writeTempFile(t, "edges.csv", "A,B,100\n")
	config := writeTempFile(t, "sankey.toml", strings.Join([]string{
		`title = "Configured"`,
		`mode = "percentages"`,
		`decimals = 1`,
	}, "\n"))
	output := filepath.Join(t.TempDir(), "out.json")

	err := runCommand(t, "layout", input, "-o", output, "--config", config)
	if err != nil {
		t.Fatalf("layout command error: %v", err)
	}

	d, err := diagram.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if d.Title != "Configured" {
		t.Errorf("title = %q, want %q", d.Title, "Configured")
	}
	if d.Nodes[0].Label != "100.0%" {
		t.Errorf("label = %q, want %q", d.Nodes[0].Label, "100.0%")
	}
}

func TestLayoutCommandFlagBeatsConfig(t *testing.T) {
	input := writeTempFile(t, "edges.csv", "A,B,100\n")
	config := writeTempFile(t, "sankey.toml", `title = "Configured"`)
	output := filepath.Join(t.TempDir(), "out.json")

	err := runCommand(t, "layout", input, "-o", output, "--config", config, "--title", "Flagged")
	if err != nil {
		t.Fatalf("layout command error: %v", err)
	}

	d, err := diagram.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if d.Title != "Flagged" {
		t.Errorf("title = %q, want %q", d.Title, "Flagged")
	}
}

func TestLayoutCommandUnsupportedExtension(t *testing.T) {
	input := writeTempFile(t, "edges.txt", "A,B,100\n")

	err := runCommand(t, "layout", input)
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !strings.Contains(err.Error(), "unsupported input format") {
		t.Errorf("error = %v, want unsupported input format", err)
	}
}

func TestLayoutCommandCyclicInput(t *testing.T) {
	input := writeTempFile(t, "edges.csv", strings.Join([]string{
		"A,B,1",
		"B,A,1",
	}, "\n"))

	err := runCommand(t, "layout", input)
	if err == nil {
		t.Fatal("expected error for cyclic input")
	}
}

func TestReadEdgesCSVHeader(t *testing.T) {
	input := writeTempFile(t, "edges.csv", strings.Join([]string{
		"source,target,value",
		"A,B,1.5",
	}, "\n"))

	edges, err := readEdges(input)
	if err != nil {
		t.Fatalf("readEdges error: %v", err)
	}
	if len(edges) != 1 || edges[0].Value != 1.5 {
		t.Errorf("edges = %+v, want one A→B 1.5 edge", edges)
	}
}

func TestPalettesCommand(t *testing.T) {
	// Smoke test: listing palettes must not error.
	if err := runCommand(t, "palettes"); err != nil {
		t.Fatalf("palettes command error: %v", err)
	}
}

func TestCachePathCommand(t *testing.T) {
	if err := runCommand(t, "cache", "path"); err != nil {
		t.Fatalf("cache path command error: %v", err)
	}
}

func TestRootHelp(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})
	if err := root.Execute(); err != nil {
		t.Fatalf("help error: %v", err)
	}
	for _, cmd := range []string{"layout", "serve", "palettes", "cache"} {
		if !strings.Contains(out.String(), cmd) {
			t.Errorf("help output missing %q", cmd)
		}
	}
}
