package css

import (
	"errors"
	"fmt"
)

// ErrRuleConflict is returned by UnionStrict when both sheets declare a
// property of the same name under the same selector list.
var ErrRuleConflict = errors.New("property exists in both sheets")

// Intersect returns a new sheet with every (selectors, property) pair of s
// that other also has with an equal value. Neither operand is modified.
func (s *Sheet) Intersect(other *Sheet) *Sheet {
	out := &Sheet{}
	for _, rule := range s.Rules {
		for _, prop := range rule.Properties {
			if other.HasProperty(rule.Selectors, prop, true) {
				out.AppendProperty(rule.Selectors, prop)
			}
		}
	}
	return out
}

// Subtract returns a new sheet with every (selectors, property) pair of s
// that other does not have value-equal. Neither operand is modified.
func (s *Sheet) Subtract(other *Sheet) *Sheet {
	out := &Sheet{}
	for _, rule := range s.Rules {
		for _, prop := range rule.Properties {
			if !other.HasProperty(rule.Selectors, prop, true) {
				out.AppendProperty(rule.Selectors, prop)
			}
		}
	}
	return out
}

// merge unions s into a deep copy of other. Conflicts are detected by
// selector list and property name only, values are ignored. When
// overwriteWithOther is set the value already in other wins and the pair
// from s is dropped, otherwise the conflict is an error.
func (s *Sheet) merge(other *Sheet, overwriteWithOther bool) (*Sheet, error) {
	out := other.Clone()
	for _, rule := range s.Rules {
		for _, prop := range rule.Properties {
			if out.HasProperty(rule.Selectors, prop, false) {
				if !overwriteWithOther {
					return nil, fmt.Errorf("%w: selectors=%v, property=%s", ErrRuleConflict, rule.Selectors, prop)
				}
				continue
			}
			out.AppendProperty(rule.Selectors, prop)
		}
	}
	return out, nil
}

// UnionStrict returns a new sheet with the pairs of both operands. The
// property name sets must be disjoint per selector list - any overlap
// returns an error wrapping ErrRuleConflict.
func (s *Sheet) UnionStrict(other *Sheet) (*Sheet, error) {
	return s.merge(other, false)
}

// UnionPreferOther returns a new sheet with the pairs of both operands.
// Where both declare the same property name under the same selector list,
// other's value is kept.
func (s *Sheet) UnionPreferOther(other *Sheet) *Sheet {
	out, err := s.merge(other, true)
	if err != nil {
		// merge cannot fail when overwriting
		panic(err)
	}
	return out
}
