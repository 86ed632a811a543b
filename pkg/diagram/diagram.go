// Package diagram defines the serializable Sankey layout description.
//
// A Diagram is the engine's complete output: positioned, labeled, colored
// nodes plus indexed, colored links. It is what a rendering collaborator
// (a charting frontend, an HTML exporter) consumes; the engine itself never
// draws pixels. The format is designed for round-trip fidelity so cached
// and freshly computed layouts are interchangeable.
package diagram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Node is a positioned, labeled node in the diagram.
// X and Y are normalized to [0,1]; Tier is the node's column. Label holds
// the formatted value string (the identifier and value stay separate so the
// renderer controls how the two lines compose).
type Node struct {
	ID    string  `json:"id"`
	Tier  int     `json:"tier"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Value float64 `json:"value"`
	Label string  `json:"label"`
	Color string  `json:"color"`
}

// DisplayLabel returns the two-line node text: the identifier with the
// formatted value underneath.
func (n Node) DisplayLabel() string {
	return n.ID + "\n(" + n.Label + ")"
}

// Link is a flow between two nodes, referenced by builder-order index.
// Color is the translucent rgba() variant of the source node's color.
type Link struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Value  float64 `json:"value"`
	Color  string  `json:"color"`
}

// Diagram is the complete layout description for one edge list and one
// options record.
type Diagram struct {
	Title string `json:"title,omitempty"`
	Units string `json:"units,omitempty"`
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Marshal encodes the diagram as indented JSON.
func Marshal(d Diagram) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON bytes into a Diagram.
func Unmarshal(data []byte) (Diagram, error) {
	var d Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return Diagram{}, fmt.Errorf("decode: %w", err)
	}
	return d, nil
}

// Write encodes the diagram as indented JSON to w.
func Write(d Diagram, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes the diagram to a JSON file at path.
func WriteFile(d Diagram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(d, f)
}

// Read decodes a JSON diagram from r.
func Read(r io.Reader) (Diagram, error) {
	var d Diagram
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Diagram{}, fmt.Errorf("decode: %w", err)
	}
	return d, nil
}

// ReadFile reads a JSON diagram file at path.
func ReadFile(path string) (Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return Diagram{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
