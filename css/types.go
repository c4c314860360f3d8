package css

import (
	"fmt"
	"strings"
)

// Selector is a single selector token of a rule, e.g. ".chroma" or "body".
// Equality is structural (by name).
type Selector struct {
	Name string
}

func (s Selector) String() string {
	return s.Name
}

// Property is one name/value declaration inside a rule.
type Property struct {
	Name  string
	Value string
}

func (p Property) String() string {
	return p.Name + ": " + p.Value
}

// Rule is an ordered selector list paired with an ordered declaration list.
//
// The selector list is order-significant: [.a .b] and [.b .a] identify
// different rules. Properties keep insertion order and duplicate names are
// allowed.
type Rule struct {
	Selectors  []Selector
	Properties []Property
}

// SameSelectors reports whether the rule is identified by exactly the given
// ordered selector list.
func (r Rule) SameSelectors(selectors []Selector) bool {
	if len(r.Selectors) != len(selectors) {
		return false
	}
	for i, s := range r.Selectors {
		if s != selectors[i] {
			return false
		}
	}
	return true
}

func (r Rule) String() string {
	var sb strings.Builder
	for i, s := range r.Selectors {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.Name)
	}
	sb.WriteString(" { ")
	for i, p := range r.Properties {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// Sheet is an ordered collection of rules - the unit of algebraic
// combination. Rules are identified by their exact ordered selector list,
// uniqueness is not enforced.
//
// Sheets coming out of the parser or out of algebra operations are never
// shared: every combination operator deep-copies what it keeps, so a Sheet
// can be treated as a value after construction.
type Sheet struct {
	Rules []Rule
}

// HasProperty reports whether the sheet contains a property under the exact
// given selector list. When compareValue is set the property value must match
// as well, otherwise name match is enough.
func (s *Sheet) HasProperty(selectors []Selector, prop Property, compareValue bool) bool {
	for _, rule := range s.Rules {
		if !rule.SameSelectors(selectors) {
			continue
		}
		for _, p := range rule.Properties {
			if p.Name != prop.Name {
				continue
			}
			if !compareValue || p.Value == prop.Value {
				return true
			}
		}
	}
	return false
}

// AppendProperty appends the property to the first rule with a matching
// selector list, creating a new rule when none exists. It is the only
// mutation primitive and is used while building derived sheets.
func (s *Sheet) AppendProperty(selectors []Selector, prop Property) {
	for i := range s.Rules {
		if s.Rules[i].SameSelectors(selectors) {
			s.Rules[i].Properties = append(s.Rules[i].Properties, prop)
			return
		}
	}
	s.Rules = append(s.Rules, Rule{
		Selectors:  append([]Selector(nil), selectors...),
		Properties: []Property{prop},
	})
}

// Clone returns a deep copy of the sheet.
func (s *Sheet) Clone() *Sheet {
	out := &Sheet{Rules: make([]Rule, len(s.Rules))}
	for i, rule := range s.Rules {
		out.Rules[i] = Rule{
			Selectors:  append([]Selector(nil), rule.Selectors...),
			Properties: append([]Property(nil), rule.Properties...),
		}
	}
	return out
}

// CloneWithValue returns a deep copy of the sheet with every property value
// replaced by the given literal. Used to produce placeholder sheets.
func (s *Sheet) CloneWithValue(value string) *Sheet {
	out := s.Clone()
	for i := range out.Rules {
		for j := range out.Rules[i].Properties {
			out.Rules[i].Properties[j].Value = value
		}
	}
	return out
}

// String dumps rules one per line. Debug helper, not a serializer - see
// OutputSheet and OutputVars for proper CSS output.
func (s *Sheet) String() string {
	var sb strings.Builder
	for _, rule := range s.Rules {
		fmt.Fprintf(&sb, "%s\n", rule)
	}
	return sb.String()
}
