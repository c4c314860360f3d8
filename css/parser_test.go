package css_test

import (
	"reflect"
	"testing"

	"go.uber.org/zap"

	"cssmix/css"
)

const exampleCSS = `/* Root level comment */
body {
    color: #2A2A2A;
    /* Block level comment */
    font-size: 17px;
    line-height: 26px;
}

/* Another root level comment */
h1 {
    color: #473247; /* Inline block level comment */
    font-size: 40px;
    line-height: 48px;
}

.my-class .another-class {
    color: red;
    padding: 0 0.4em 0 0.4em;
}
`

func findRule(sheet *css.Sheet, selectors []css.Selector) *css.Rule {
	for i := range sheet.Rules {
		if sheet.Rules[i].SameSelectors(selectors) {
			return &sheet.Rules[i]
		}
	}
	return nil
}

func TestParser_Example(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	sheet := p.Parse([]byte(exampleCSS), "example")

	if len(sheet.Rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(sheet.Rules))
	}

	body := findRule(sheet, sel("body"))
	if body == nil {
		t.Fatal("expected 'body' rule")
	}
	want := []css.Property{
		prop("color", "#2A2A2A"),
		prop("font-size", "17px"),
		prop("line-height", "26px"),
	}
	if !reflect.DeepEqual(body.Properties, want) {
		t.Errorf("body properties = %v, want %v", body.Properties, want)
	}

	h1 := findRule(sheet, sel("h1"))
	if h1 == nil {
		t.Fatal("expected 'h1' rule")
	}
	want = []css.Property{
		prop("color", "#473247"),
		prop("font-size", "40px"),
		prop("line-height", "48px"),
	}
	if !reflect.DeepEqual(h1.Properties, want) {
		t.Errorf("h1 properties = %v, want %v", h1.Properties, want)
	}

	compound := findRule(sheet, sel(".my-class", ".another-class"))
	if compound == nil {
		t.Fatal("expected compound selector rule")
	}
	want = []css.Property{
		prop("color", "red"),
		prop("padding", "0 0.4em 0 0.4em"),
	}
	if !reflect.DeepEqual(compound.Properties, want) {
		t.Errorf("compound properties = %v, want %v", compound.Properties, want)
	}
}

func TestParser_CommentsProduceNoTokens(t *testing.T) {
	p := css.NewParser(nil)
	sheet := p.Parse([]byte(`/* c */ .a { k: v; }`))

	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	rule := sheet.Rules[0]
	if !rule.SameSelectors(sel(".a")) {
		t.Errorf("selectors = %v, want [.a]", rule.Selectors)
	}
	if !reflect.DeepEqual(rule.Properties, []css.Property{prop("k", "v")}) {
		t.Errorf("properties = %v, want [k: v]", rule.Properties)
	}
}

func TestParser_ValueWithoutSemicolon(t *testing.T) {
	p := css.NewParser(nil)
	sheet := p.Parse([]byte(`.a { font-weight: bold }`))

	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	props := sheet.Rules[0].Properties
	if len(props) != 1 {
		t.Fatalf("expected property finalized at closing brace, got %v", props)
	}
	if props[0] != prop("font-weight", "bold") {
		t.Errorf("property = %v, want font-weight: bold (trailing whitespace trimmed)", props[0])
	}
}

func TestParser_EmptyBlock(t *testing.T) {
	p := css.NewParser(nil)
	sheet := p.Parse([]byte(`.chroma .x {  }`))

	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	rule := sheet.Rules[0]
	if !rule.SameSelectors(sel(".chroma", ".x")) {
		t.Errorf("selectors = %v, want [.chroma .x]", rule.Selectors)
	}
	if len(rule.Properties) != 0 {
		t.Errorf("expected empty rule to be kept without properties, got %v", rule.Properties)
	}
}

func TestParser_TruncatedInput(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	tests := []struct {
		name  string
		input string
		rules int
	}{
		{"mid block", ".a { color: red", 0},
		{"mid comment", ".a { color: red; /* never closed", 0},
		{"mid selector", ".a", 0},
		{"complete then truncated", ".a { color: red; }\n.b { color:", 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sheet := p.Parse([]byte(tc.input))
			if len(sheet.Rules) != tc.rules {
				t.Errorf("Parse(%q) produced %d rules, want %d", tc.input, len(sheet.Rules), tc.rules)
			}
		})
	}
}

func TestParser_FreshStatePerCall(t *testing.T) {
	p := css.NewParser(nil)

	// truncated parse must not leak state into the next call
	_ = p.Parse([]byte(".leak { color:"))
	sheet := p.Parse([]byte(".a { k: v }"))

	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}
	if !sheet.Rules[0].SameSelectors(sel(".a")) {
		t.Errorf("selectors = %v, want [.a]", sheet.Rules[0].Selectors)
	}
}
