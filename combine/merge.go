package combine

import (
	"fmt"

	"go.uber.org/zap"

	"cssmix/common"
	"cssmix/css"
)

// Options for a single merge.
type Options struct {
	// Prefix for generated custom property names. Required.
	Prefix string
	// Placeholder literal marking theme-varying declarations, defaults to
	// css.DefaultPlaceholder.
	Placeholder string
	// MediaScheme selects which theme's variables go inside the @media
	// block. The other theme becomes the default :root block.
	MediaScheme common.ColorScheme
}

// Merge parses the light and dark theme sources and produces the final
// stylesheet text: default variables, media-wrapped variables and the
// combined rule template, concatenated in that order.
func Merge(light, dark []byte, opts Options, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	placeholder := opts.Placeholder
	if len(placeholder) == 0 {
		placeholder = css.DefaultPlaceholder
	}

	parser := css.NewParser(log)
	sheetLight := parser.Parse(light, common.ColorSchemeLight.String())
	sheetDark := parser.Parse(dark, common.ColorSchemeDark.String())

	varsLight, varsDark, combined, err := css.CombineThemes(sheetLight, sheetDark, placeholder)
	if err != nil {
		return "", fmt.Errorf("unable to combine themes: %w", err)
	}
	log.Debug("Combined themes",
		zap.Int("light rules", len(varsLight.Rules)),
		zap.Int("dark rules", len(varsDark.Rules)),
		zap.Int("combined rules", len(combined.Rules)))

	defaultVars, mediaVars := varsLight, varsDark
	if opts.MediaScheme == common.ColorSchemeLight {
		defaultVars, mediaVars = varsDark, varsLight
	}

	head, err := defaultVars.OutputVars(opts.Prefix, "")
	if err != nil {
		return "", fmt.Errorf("unable to render default variables: %w", err)
	}
	media, err := mediaVars.OutputVars(opts.Prefix, opts.MediaScheme.String())
	if err != nil {
		return "", fmt.Errorf("unable to render %s variables: %w", opts.MediaScheme, err)
	}
	tmpl, err := combined.OutputSheet(opts.Prefix, true, []string{placeholder})
	if err != nil {
		return "", fmt.Errorf("unable to render combined template: %w", err)
	}
	return head + media + tmpl, nil
}
