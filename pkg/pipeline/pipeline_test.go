package pipeline

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/blydeben/sankey-app/pkg/cache"
	apperrors "github.com/blydeben/sankey-app/pkg/errors"
	"github.com/blydeben/sankey-app/pkg/flow"
	"github.com/blydeben/sankey-app/pkg/palette"
)

// testEdges is the A→B, A→C, B→D graph used throughout: tiers
// {A:0, B:1, C:1, D:2}, aggregated values {A:300, B:100, C:200, D:50}.
func testEdges() []flow.Edge {
	return []flow.Edge{
		{Source: "A", Target: "B", Value: 100},
		{Source: "A", Target: "C", Value: 200},
		{Source: "B", Target: "D", Value: 50},
	}
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults error: %v", err)
	}

	if opts.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", opts.Title, DefaultTitle)
	}
	if opts.Units != DefaultUnits {
		t.Errorf("Units = %q, want %q", opts.Units, DefaultUnits)
	}
	if opts.Mode != ModeValues {
		t.Errorf("Mode = %q, want %q", opts.Mode, ModeValues)
	}
	if opts.RoundFactor != DefaultRoundFactor {
		t.Errorf("RoundFactor = %d, want %d", opts.RoundFactor, DefaultRoundFactor)
	}
	if opts.Palette != DefaultPalette {
		t.Errorf("Palette = %q, want %q", opts.Palette, DefaultPalette)
	}
	if opts.Display() == nil {
		t.Error("Display() = nil after validation")
	}
}

func TestOptionsInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code apperrors.Code
	}{
		{"unknown mode", Options{Mode: "fractions"}, apperrors.ErrCodeInvalidOption},
		{"bad round factor", Options{RoundFactor: 7}, apperrors.ErrCodeInvalidOption},
		{"bad decimals", Options{Mode: ModePercentages, Decimals: 4}, apperrors.ErrCodeInvalidOption},
		{"unknown palette", Options{Palette: "vaporwave"}, apperrors.ErrCodeInvalidOption},
		{"bad custom color", Options{Colors: []string{"red"}}, apperrors.ErrCodeInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := apperrors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s", got, tt.code)
			}
		})
	}
}

func TestComputeValues(t *testing.T) {
	d, err := Compute(testEdges(), Options{RoundFactor: 1, Units: "kWh"})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	if d.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", d.Title, DefaultTitle)
	}
	if len(d.Nodes) != 4 || len(d.Links) != 3 {
		t.Fatalf("got %d nodes, %d links, want 4 and 3", len(d.Nodes), len(d.Links))
	}

	wantNodes := []struct {
		id    string
		tier  int
		x     float64
		value float64
		label string
	}{
		{"A", 0, 0, 300, "300 kWh"},
		{"B", 1, 0.5, 100, "100 kWh"},
		{"C", 1, 0.5, 200, "200 kWh"},
		{"D", 2, 1, 50, "50 kWh"},
	}
	def := palette.Default()
	for i, want := range wantNodes {
		n := d.Nodes[i]
		if n.ID != want.id || n.Tier != want.tier || n.X != want.x || n.Value != want.value || n.Label != want.label {
			t.Errorf("node[%d] = %+v, want %+v", i, n, want)
		}
		if n.Color != def.Color(i) {
			t.Errorf("node[%d] color = %q, want %q", i, n.Color, def.Color(i))
		}
	}

	// Links reference nodes by builder index and take the source's color
	// at 0.3 alpha.
	wantLinks := []struct {
		src, tgt int
	}{{0, 1}, {0, 2}, {1, 3}}
	for i, want := range wantLinks {
		l := d.Links[i]
		if l.Source != want.src || l.Target != want.tgt {
			t.Errorf("link[%d] = %d→%d, want %d→%d", i, l.Source, l.Target, want.src, want.tgt)
		}
		rgba, err := palette.LinkRGBA(def.Color(want.src))
		if err != nil {
			t.Fatalf("LinkRGBA error: %v", err)
		}
		if l.Color != rgba {
			t.Errorf("link[%d] color = %q, want %q", i, l.Color, rgba)
		}
	}
}

func TestComputePercentages(t *testing.T) {
	d, err := Compute(testEdges(), Options{Mode: ModePercentages, Decimals: 1})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	// Tier-0 outflow is 300, so shares are value/300.
	want := []string{"100.0%", "33.3%", "66.7%", "16.7%"}
	for i, label := range want {
		if d.Nodes[i].Label != label {
			t.Errorf("node[%d] label = %q, want %q", i, d.Nodes[i].Label, label)
		}
	}
}

func TestComputeCustomColors(t *testing.T) {
	colors := []string{"#ff0000", "#00ff00"}
	d, err := Compute(testEdges(), Options{Colors: colors})
	if err != nil {
		t.Fatalf("Compute error: %v", err)
	}

	// Two colors cycle across four nodes.
	want := []string{"#ff0000", "#00ff00", "#ff0000", "#00ff00"}
	for i, c := range want {
		if d.Nodes[i].Color != c {
			t.Errorf("node[%d] color = %q, want %q", i, d.Nodes[i].Color, c)
		}
	}
}

func TestComputeErrors(t *testing.T) {
	tests := []struct {
		name  string
		edges []flow.Edge
		opts  Options
		code  apperrors.Code
	}{
		{
			name: "empty edge list",
			code: apperrors.ErrCodeNoData,
		},
		{
			name:  "blank endpoint",
			edges: []flow.Edge{{Source: "", Target: "B", Value: 1}},
			code:  apperrors.ErrCodeInvalidInput,
		},
		{
			name:  "negative value",
			edges: []flow.Edge{{Source: "A", Target: "B", Value: -1}},
			code:  apperrors.ErrCodeInvalidInput,
		},
		{
			name: "no roots",
			edges: []flow.Edge{
				{Source: "A", Target: "B", Value: 1},
				{Source: "B", Target: "A", Value: 1},
			},
			code: apperrors.ErrCodeNoRoots,
		},
		{
			name: "cycle below root",
			edges: []flow.Edge{
				{Source: "R", Target: "A", Value: 1},
				{Source: "A", Target: "B", Value: 1},
				{Source: "B", Target: "A", Value: 1},
			},
			code: apperrors.ErrCodeCyclicGraph,
		},
		{
			name:  "zero denominator in percentage mode",
			edges: []flow.Edge{{Source: "A", Target: "B", Value: 0}},
			opts:  Options{Mode: ModePercentages},
			code:  apperrors.ErrCodeZeroDenominator,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.edges, tt.opts)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := apperrors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s (err: %v)", got, tt.code, err)
			}
		})
	}
}

func TestRunnerCaching(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	r := NewRunner(fc, quietLogger())
	defer r.Close()

	first, err := r.Execute(ctx, testEdges(), Options{})
	if err != nil {
		t.Fatalf("first Execute error: %v", err)
	}
	if first.CacheHit {
		t.Error("first run reported a cache hit")
	}
	if first.Stats.NodeCount != 4 || first.Stats.EdgeCount != 3 {
		t.Errorf("stats = %d nodes, %d edges, want 4 and 3", first.Stats.NodeCount, first.Stats.EdgeCount)
	}

	second, err := r.Execute(ctx, testEdges(), Options{})
	if err != nil {
		t.Fatalf("second Execute error: %v", err)
	}
	if !second.CacheHit {
		t.Error("second run missed the cache")
	}
	if len(second.Diagram.Nodes) != len(first.Diagram.Nodes) {
		t.Errorf("cached diagram has %d nodes, want %d", len(second.Diagram.Nodes), len(first.Diagram.Nodes))
	}
	if second.InputHash != first.InputHash {
		t.Errorf("input hash changed between identical runs")
	}

	// Different options must key differently.
	other, err := r.Execute(ctx, testEdges(), Options{Mode: ModePercentages})
	if err != nil {
		t.Fatalf("Execute with other options error: %v", err)
	}
	if other.CacheHit {
		t.Error("different options hit the cache")
	}

	// Refresh bypasses the cache even on identical input.
	forced, err := r.Execute(ctx, testEdges(), Options{Refresh: true})
	if err != nil {
		t.Fatalf("Execute with refresh error: %v", err)
	}
	if forced.CacheHit {
		t.Error("refresh run reported a cache hit")
	}
}

func TestRunnerNilCache(t *testing.T) {
	r := NewRunner(nil, quietLogger())
	defer r.Close()

	res, err := r.Execute(context.Background(), testEdges(), Options{})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if res.CacheHit {
		t.Error("null cache reported a hit")
	}
	if len(res.Diagram.Nodes) != 4 {
		t.Errorf("got %d nodes, want 4", len(res.Diagram.Nodes))
	}
}
