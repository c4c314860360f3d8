package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	tdcss "github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Checker scans a stylesheet with a full CSS tokenizer and reports
// constructs the minimal rule parser ignores or mangles. It never changes
// how the input is parsed - it only produces warnings so the caller can
// tell whether a theme is within the supported grammar.
type Checker struct {
	log *zap.Logger
}

// NewChecker creates a new input checker.
func NewChecker(log *zap.Logger) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{log: log.Named("css-checker")}
}

// Check returns one warning per questionable construct, in source order.
// The optional source parameter identifies what is being checked.
func (c *Checker) Check(data []byte, source ...string) []string {
	if len(source) > 0 && source[0] != "" {
		c.log.Debug("Checking CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	var warnings []string
	warn := func(msg string) {
		warnings = append(warnings, msg)
		c.log.Debug("CSS check warning", zap.String("warning", msg))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := tdcss.NewParser(input, false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case tdcss.ErrorGrammar:
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				c.log.Debug("CSS scan error", zap.Error(parser.Err()))
			}
			return warnings

		case tdcss.BeginAtRuleGrammar:
			warn("at-rule block is not understood: " + string(data))
			c.skipAtRuleBlock(parser)

		case tdcss.AtRuleGrammar:
			warn("at-rule is not understood: " + string(data))

		case tdcss.BeginRulesetGrammar, tdcss.QualifiedRuleGrammar:
			c.checkSelectors(selectorString(data, parser.Values()), warn)

		case tdcss.CustomPropertyGrammar:
			warn("input already declares a custom property: " + string(data))
		}
	}
}

// checkSelectors flags selector syntax outside the whitespace-separated
// simple token grammar.
func (c *Checker) checkSelectors(sel string, warn func(string)) {
	if strings.Contains(sel, ",") {
		warn("comma-grouped selectors are treated as one compound selector: " + sel)
	}
	if strings.ContainsAny(sel, "+~>") {
		warn("combinator selector: " + sel)
	}
	if strings.Contains(sel, "[") {
		warn("attribute selector: " + sel)
	}
	if strings.Contains(sel, ":") {
		warn("pseudo selector produces an invalid variable name: " + sel)
	}
}

// selectorString rebuilds the full selector text from grammar data and
// pending tokens.
func selectorString(data []byte, values []tdcss.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.TrimSpace(sb.String())
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (c *Checker) skipAtRuleBlock(parser *tdcss.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case tdcss.ErrorGrammar:
			return
		case tdcss.BeginAtRuleGrammar, tdcss.BeginRulesetGrammar:
			depth++
		case tdcss.EndAtRuleGrammar, tdcss.EndRulesetGrammar:
			depth--
		}
	}
}
