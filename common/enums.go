// Enums live in their own package so that configuration and command
// implementations can share them without import cycles.
package common

//go:generate go tool go-enum --marshal

// Color scheme targeted by a set of theme variables. Values match what the
// prefers-color-scheme media feature accepts.
// ENUM(light, dark)
type ColorScheme int

// Other returns the opposite scheme.
func (c ColorScheme) Other() ColorScheme {
	if c == ColorSchemeLight {
		return ColorSchemeDark
	}
	return ColorSchemeLight
}
