package engine

import (
	"strings"
	"testing"

	"github.com/chazu/storey/pkg/building"
)

// ---------------------------------------------------------------------------
// Preprocessing tests
// ---------------------------------------------------------------------------

func TestPreprocessKeywords(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "simple keyword",
			input:  `(name :title "pagoda")`,
			expect: `(name "__kw_title" "pagoda")`,
		},
		{
			name:   "multiple keywords",
			input:  `(level :height 2 :radius 1)`,
			expect: `(level "__kw_height" 2 "__kw_radius" 1)`,
		},
		{
			name:   "keyword in string preserved",
			input:  `"thing with :keyword inside"`,
			expect: `"thing with :keyword inside"`,
		},
		{
			name:   "assignment operator preserved",
			input:  `(def x := 10)`,
			expect: `(def x := 10)`,
		},
		{
			name:   "kebab-case identifier",
			input:  `(def eave-radius :top-radius)`,
			expect: `(def eave_radius "__kw_top-radius")`,
		},
		{
			name:   "minus operator preserved",
			input:  `(- 10 5)`,
			expect: `(- 10 5)`,
		},
		{
			name:   "comment converted to // style",
			input:  `;; comment with :keyword`,
			expect: `// comment with :keyword`,
		},
		{
			name:   "single semicolon comment",
			input:  `; simple comment`,
			expect: `// simple comment`,
		},
		{
			name:   "hyphen in keyword preserved",
			input:  `:base-radius`,
			expect: `"__kw_base-radius"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocessSource(tt.input)
			if got != tt.expect {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Building DSL tests
// ---------------------------------------------------------------------------

func mustEvaluate(t *testing.T, source string) *building.Params {
	t.Helper()
	p, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("eval errors: %v", evalErrs)
	}
	if p == nil {
		t.Fatal("expected non-nil params")
	}
	return p
}

func TestCylinderScript(t *testing.T) {
	p := mustEvaluate(t, `(sides 4) (level :height 1 :radius 1)`)

	if p.Sides != 4 {
		t.Errorf("expected sides=4, got %d", p.Sides)
	}
	if len(p.Levels) != 1 {
		t.Fatalf("expected 1 level, got %d", len(p.Levels))
	}
	want := building.Level{Height: 1, BaseRadius: 1, TopRadius: 1}
	if p.Levels[0] != want {
		t.Errorf("level = %+v, want %+v", p.Levels[0], want)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestPagodaScript(t *testing.T) {
	source := `
;; three tiers
(name "pagoda")
(sides 8)
(def eave 1.6)
(level :height 2 :base 1.5 :top 1.2)
(level :height 0.5 :base eave :top 1.0)
(level :height 1.5 :base 1.0 :top 0.25)
`
	p := mustEvaluate(t, source)

	if p.Name != "pagoda" {
		t.Errorf("expected name=pagoda, got %q", p.Name)
	}
	if p.Sides != 8 {
		t.Errorf("expected sides=8, got %d", p.Sides)
	}
	if len(p.Levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(p.Levels))
	}
	if p.Levels[1].BaseRadius != 1.6 {
		t.Errorf("expected base=1.6 (from variable), got %f", p.Levels[1].BaseRadius)
	}
	if p.Height() != 4 {
		t.Errorf("expected total height 4, got %f", p.Height())
	}
}

func TestElevationBuiltin(t *testing.T) {
	source := `
(level :height 2 :radius 1)
(level :height (elevation) :radius 0.5)
`
	p := mustEvaluate(t, source)
	if len(p.Levels) != 2 || p.Levels[1].Height != 2 {
		t.Errorf("expected second level height 2, got %+v", p.Levels)
	}
}

func TestScriptWithoutSides(t *testing.T) {
	p := mustEvaluate(t, `(level :height 1 :base 2 :top 1)`)
	if p.Sides != 0 {
		t.Errorf("expected unset sides, got %d", p.Sides)
	}
}

func TestBuiltinErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"sides out of range", `(sides 40)`, "sides"},
		{"sides not integer", `(sides 4.5)`, "integer"},
		{"name not string", `(name 3)`, "string"},
		{"missing height", `(level :base 1 :top 1)`, "height"},
		{"missing top", `(level :height 1 :base 1)`, "top"},
		{"radius clash", `(level :height 1 :radius 1 :base 2)`, "radius"},
		{"non-positive radius", `(level :height 1 :radius 0)`, "positive"},
		{"negative height", `(level :height -1 :radius 1)`, "positive"},
		{"positional arg", `(level 1 2 3)`, "positional"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, evalErrs, err := NewEngine().Evaluate(tt.source)
			if err != nil {
				t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
			}
			if p != nil {
				t.Fatal("expected nil params on eval error")
			}
			if len(evalErrs) == 0 {
				t.Fatal("expected at least one eval error")
			}
			if !strings.Contains(evalErrs[0].Message, tt.want) {
				t.Errorf("message = %q, want containing %q", evalErrs[0].Message, tt.want)
			}
		})
	}
}
