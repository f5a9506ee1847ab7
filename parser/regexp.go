package parser

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/t14raptor/jsparse/ast"
)

// validateRegExp compiles a scanned regular-expression literal with regexp2,
// the only engine in the ecosystem that implements the .NET-style
// backreference and lookaround syntax ECMAScript regexes allow, surfacing an
// invalid pattern or an unknown flag as a recoverable error rather than
// letting it through uninspected (spec.md C8, Testable Property 6).
func (p *parser) validateRegExp(pattern, flags string, idx ast.Idx) {
	opts := regexp2.None
	for _, f := range flags {
		switch f {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			opts |= regexp2.Singleline
		case 'u', 'v':
			opts |= regexp2.Unicode
		case 'g', 'y', 'd':
			// Global, sticky, and hasIndices are match-time/result concerns
			// regexp2 has no compile option for; tracked on the flag string
			// and otherwise left to whatever consumes the literal.
		default:
			p.errorAt(idx, "Invalid regular expression flag '%c'", f)
			return
		}
	}
	if strings.ContainsRune(flags, 'u') && strings.ContainsRune(flags, 'v') {
		p.errorAt(idx, "Invalid regular expression: u and v flags are mutually exclusive")
		return
	}
	if _, err := regexp2.Compile(pattern, opts); err != nil {
		p.errorAt(idx, "Invalid regular expression: %s", err.Error())
	}
}
