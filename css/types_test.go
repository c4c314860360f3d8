package css_test

import (
	"testing"

	"cssmix/css"
)

func sel(names ...string) []css.Selector {
	out := make([]css.Selector, len(names))
	for i, n := range names {
		out[i] = css.Selector{Name: n}
	}
	return out
}

func prop(name, value string) css.Property {
	return css.Property{Name: name, Value: value}
}

// threeRuleSheet is shared by lookup tests.
func threeRuleSheet() *css.Sheet {
	return &css.Sheet{Rules: []css.Rule{
		{Selectors: sel(".a", ".b"), Properties: []css.Property{
			prop("color", "#FF00FF"),
			prop("background-color", "#FF0000"),
		}},
		{Selectors: sel(".a", ".c"), Properties: []css.Property{
			prop("color", "#0000FF"),
			prop("background-color", "#00FF00"),
		}},
		{Selectors: sel(".d", ".c"), Properties: []css.Property{
			prop("color", "#FFFF00"),
			prop("background-color", "#00FFFF"),
		}},
	}}
}

func TestSheet_HasProperty(t *testing.T) {
	sheet := threeRuleSheet()

	if !sheet.HasProperty(sel(".a", ".b"), prop("color", "#FF00FF"), true) {
		t.Error("expected value-compared lookup to match")
	}
	if sheet.HasProperty(sel(".a", ".b"), prop("color", "#ABCDEF"), true) {
		t.Error("expected value-compared lookup with wrong value to miss")
	}
	if !sheet.HasProperty(sel(".a", ".b"), prop("color", "#ABCDEF"), false) {
		t.Error("expected name-only lookup to match regardless of value")
	}
	if sheet.HasProperty(sel(".a"), prop("color", "#FF00FF"), true) {
		t.Error("partial selector list must not match")
	}
	if sheet.HasProperty(sel(".b", ".a"), prop("color", "#FF00FF"), true) {
		t.Error("selector list order must be significant")
	}
}

func TestSheet_AppendProperty(t *testing.T) {
	sheet := &css.Sheet{}

	sheet.AppendProperty(sel(".a"), prop("color", "red"))
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules))
	}

	// same selector list - appended to the existing rule
	sheet.AppendProperty(sel(".a"), prop("padding", "0"))
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected append to reuse the rule, got %d rules", len(sheet.Rules))
	}
	if len(sheet.Rules[0].Properties) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(sheet.Rules[0].Properties))
	}

	// duplicates by name are allowed
	sheet.AppendProperty(sel(".a"), prop("color", "blue"))
	if len(sheet.Rules[0].Properties) != 3 {
		t.Fatalf("expected duplicate property name to be kept, got %d properties", len(sheet.Rules[0].Properties))
	}

	// different order means a different rule
	sheet.AppendProperty(sel(".b", ".a"), prop("color", "red"))
	sheet.AppendProperty(sel(".a", ".b"), prop("color", "red"))
	if len(sheet.Rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(sheet.Rules))
	}
}

func TestSheet_Clone(t *testing.T) {
	orig := threeRuleSheet()
	clone := orig.Clone()

	clone.Rules[0].Properties[0].Value = "changed"
	clone.Rules[0].Selectors[0].Name = ".changed"
	if orig.Rules[0].Properties[0].Value != "#FF00FF" {
		t.Error("clone shares property storage with original")
	}
	if orig.Rules[0].Selectors[0].Name != ".a" {
		t.Error("clone shares selector storage with original")
	}
}

func TestSheet_CloneWithValue(t *testing.T) {
	orig := threeRuleSheet()
	unset := orig.CloneWithValue("unset")

	for _, rule := range unset.Rules {
		for _, p := range rule.Properties {
			if p.Value != "unset" {
				t.Errorf("expected every value overridden, got %q", p.Value)
			}
		}
	}
	if orig.Rules[0].Properties[0].Value != "#FF00FF" {
		t.Error("original modified by CloneWithValue")
	}
}
