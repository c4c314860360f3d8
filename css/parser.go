package css

import (
	"strings"

	"go.uber.org/zap"
)

// Parser state. The whole grammar is whitespace- and brace-delimited tokens
// with single-level comment skipping, so an explicit state loop over the
// input buffer is all we need.
type parserState int

const (
	stateRoot parserState = iota
	stateRootComment
	stateSelector
	stateBlock
	stateBlockComment
	stateBlockPropName
	stateBlockGap
	stateBlockPropValue
)

func (s parserState) String() string {
	switch s {
	case stateRoot:
		return "ROOT"
	case stateRootComment:
		return "ROOT_COMMENT"
	case stateSelector:
		return "SELECTOR"
	case stateBlock:
		return "BLOCK"
	case stateBlockComment:
		return "BLOCK_COMMENT"
	case stateBlockPropName:
		return "BLOCK_PROP_NAME"
	case stateBlockGap:
		return "BLOCK_GAP"
	case stateBlockPropValue:
		return "BLOCK_PROP_VALUE"
	default:
		return "UNKNOWN"
	}
}

// Parser parses CSS stylesheets into sheets of rules.
//
// It is intentionally minimal: simple selector tokens separated by
// whitespace, property declarations, and /* ... */ comments. There is no
// error reporting - malformed input produces a best-effort partial sheet.
// A rule still open when input ends is dropped.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// isGap reports whether c separates tokens. Note that the grammar treats
// only space and newline as separators.
func isGap(c byte) bool {
	return c == ' ' || c == '\n'
}

// Parse parses CSS text into a Sheet. The optional source parameter
// identifies what is being parsed (for debug logging). Parse never fails.
func (p *Parser) Parse(data []byte, source ...string) *Sheet {
	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	var (
		state = stateRoot
		sheet = &Sheet{}

		selectors  []Selector // pending selector list for the current rule
		properties []Property // pending declarations for the current rule
		selName    []byte
		propName   []byte
		propValue  []byte
	)

	finishSelector := func() {
		selectors = append(selectors, Selector{Name: string(selName)})
		selName = selName[:0]
	}
	finishProperty := func() {
		// A blank name means a stray separator, not a declaration.
		if len(propName) > 0 {
			properties = append(properties, Property{
				Name:  string(propName),
				Value: strings.TrimRight(string(propValue), " \t\r\n"),
			})
		}
		propName = propName[:0]
		propValue = propValue[:0]
	}
	finishRule := func() {
		sheet.Rules = append(sheet.Rules, Rule{Selectors: selectors, Properties: properties})
		selectors = nil
		properties = nil
	}

	for i := 0; i < len(data); i++ {
		c := data[i]
		// Bounds-checked one byte lookahead for comment delimiters.
		var cn byte
		if i+1 < len(data) {
			cn = data[i+1]
		}

		switch state {
		case stateRoot:
			switch {
			case isGap(c):
			case c == '/' && cn == '*':
				state = stateRootComment
			case c == '{':
				state = stateBlock
			default:
				selName = append(selName, c)
				state = stateSelector
			}

		case stateRootComment:
			if c == '*' && cn == '/' {
				i++ // skip the closing '/'
				state = stateRoot
			}

		case stateSelector:
			if isGap(c) {
				finishSelector()
				state = stateRoot
			} else {
				selName = append(selName, c)
			}

		case stateBlock:
			switch {
			case isGap(c):
			case c == '/' && cn == '*':
				state = stateBlockComment
			case c == '}':
				finishRule()
				propName = propName[:0]
				propValue = propValue[:0]
				state = stateRoot
			default:
				propName = append(propName, c)
				state = stateBlockPropName
			}

		case stateBlockComment:
			if c == '*' && cn == '/' {
				i++ // skip the closing '/'
				state = stateBlock
			}

		case stateBlockPropName:
			if c == ':' {
				state = stateBlockGap
			} else {
				propName = append(propName, c)
			}

		case stateBlockGap:
			if !isGap(c) {
				propValue = append(propValue, c)
				state = stateBlockPropValue
			}

		case stateBlockPropValue:
			switch c {
			case ';':
				finishProperty()
				state = stateBlock
			case '}':
				finishProperty()
				finishRule()
				state = stateRoot
			default:
				propValue = append(propValue, c)
			}
		}
	}

	if state != stateRoot {
		// Input ended mid-construct - whatever was in flight is dropped.
		p.log.Debug("CSS input ended unexpectedly", zap.Stringer("state", state))
	}
	p.log.Debug("Parsed CSS", zap.Int("rules", len(sheet.Rules)))
	return sheet
}
