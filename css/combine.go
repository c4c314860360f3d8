package css

import (
	"fmt"
)

// DefaultPlaceholder is the literal marking declarations whose value differs
// between themes. The combined template substitutes a var() reference for
// every declaration carrying it.
const DefaultPlaceholder = "unset"

// CombineThemes splits two themes into the parts they share and the parts in
// which they differ.
//
// It returns three new sheets: the light and dark variable sheets, each
// carrying the theme's own values for every differing declaration and the
// placeholder for declarations only the other theme sets, and the combined
// template sheet, in which shared declarations stay literal and differing
// ones carry the placeholder. None of the inputs are modified.
//
// By construction the shared sheet and the placeholder sheet are disjoint,
// so the final strict union cannot conflict. The invariant is still checked
// rather than assumed: a change upstream would surface here as an error
// instead of corrupting output.
func CombineThemes(light, dark *Sheet, placeholder string) (varsLight, varsDark, combined *Sheet, err error) {
	if len(placeholder) == 0 {
		placeholder = DefaultPlaceholder
	}

	both := light.Intersect(dark)

	uniqueLight := light.Subtract(both)
	uniqueDark := dark.Subtract(both)

	unsetLight := uniqueLight.CloneWithValue(placeholder)
	unsetDark := uniqueDark.CloneWithValue(placeholder)

	// Both sides hold the same placeholder literal, so it does not matter
	// which one wins where they overlap.
	unsetBoth := unsetLight.UnionPreferOther(unsetDark)

	varsLight = unsetBoth.UnionPreferOther(uniqueLight)
	varsDark = unsetBoth.UnionPreferOther(uniqueDark)

	combined, err = both.UnionStrict(unsetBoth)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("combining shared and placeholder declarations: %w", err)
	}
	return varsLight, varsDark, combined, nil
}
