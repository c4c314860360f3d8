package css

import (
	"errors"
	"slices"
	"strings"
)

// ErrNoPrefix is returned when variable naming is requested without a
// variable prefix.
var ErrNoPrefix = errors.New("must supply a prefix")

// SelectorsName flattens a selector list into a single token usable inside a
// custom property name: leading dots are stripped and names are joined
// with '-'.
func SelectorsName(selectors []Selector) string {
	parts := make([]string, len(selectors))
	for i, s := range selectors {
		parts[i] = strings.TrimLeft(s.Name, ".")
	}
	return strings.Join(parts, "-")
}

// VarName builds the custom property name for a declaration:
// --{prefix}-{selectors-name}-{property-name}. The format is part of the
// external interface - consumers reference these names directly.
func VarName(prefix, selectorsName, propName string) string {
	return "--" + prefix + "-" + selectorsName + "-" + propName
}

// VarRef wraps the custom property name in a var() reference.
func VarRef(prefix, selectorsName, propName string) string {
	return "var(" + VarName(prefix, selectorsName, propName) + ")"
}

// OutputVars serializes every declaration of the sheet as a custom property
// inside a :root block. When prefersColorScheme is non-empty the block is
// additionally wrapped in a matching @media query. The prefix is required.
func (s *Sheet) OutputVars(prefix, prefersColorScheme string) (string, error) {
	if len(prefix) == 0 {
		return "", ErrNoPrefix
	}

	var sb strings.Builder

	indent := "  "
	if len(prefersColorScheme) == 0 {
		sb.WriteString(":root {\n")
	} else {
		sb.WriteString("@media (prefers-color-scheme: " + prefersColorScheme + ") {\n")
		sb.WriteString("  :root {\n")
		indent = "    "
	}

	for _, rule := range s.Rules {
		selectorsName := SelectorsName(rule.Selectors)
		for _, prop := range rule.Properties {
			sb.WriteString(indent)
			sb.WriteString(VarName(prefix, selectorsName, prop.Name))
			sb.WriteString(": ")
			sb.WriteString(prop.Value)
			sb.WriteString(";\n")
		}
	}

	if len(prefersColorScheme) == 0 {
		sb.WriteString("}\n")
	} else {
		sb.WriteString("  }\n")
		sb.WriteString("}\n")
	}
	return sb.String(), nil
}

// OutputSheet serializes the sheet as ordinary CSS rule blocks, one rule per
// line. When asTemplate is set, values listed in templateValues (or all
// values, when templateValues is nil) are replaced by var() references to
// their corresponding custom properties - this requires a prefix.
func (s *Sheet) OutputSheet(prefix string, asTemplate bool, templateValues []string) (string, error) {
	if asTemplate && len(prefix) == 0 {
		return "", ErrNoPrefix
	}

	value := func(selectorsName string, prop Property) string {
		if !asTemplate {
			return prop.Value
		}
		if templateValues == nil || slices.Contains(templateValues, prop.Value) {
			return VarRef(prefix, selectorsName, prop.Name)
		}
		return prop.Value
	}

	var sb strings.Builder
	for _, rule := range s.Rules {
		selectorsName := SelectorsName(rule.Selectors)
		for i, sel := range rule.Selectors {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(sel.Name)
		}
		sb.WriteString(" { ")
		for i, prop := range rule.Properties {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(prop.Name)
			sb.WriteString(": ")
			sb.WriteString(value(selectorsName, prop))
		}
		sb.WriteString(" }\n")
	}
	return sb.String(), nil
}
