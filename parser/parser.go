package parser

import (
	"strings"

	"github.com/t14raptor/jsparse/ast"
	"github.com/t14raptor/jsparse/parser/scanner"
	"github.com/t14raptor/jsparse/token"
)

// parser ...
type parser struct {
	token scanner.Token
	str   string

	scanner *scanner.Scanner

	scope             *scope
	privateNames      *privateNameFrame
	implicitSemicolon bool // An implicit semicolon exists

	inModule   bool
	blockDepth int

	exportedNames    map[string]ast.Idx
	undefinedExports map[string]ast.Idx

	// shorthandAssign records the position of the most recent shorthand
	// property default ({a = 1}) parsed as a plain value, so it can be
	// promoted to an error if the enclosing object literal is never
	// reinterpreted as a destructuring pattern. Zero means none pending.
	shorthandAssign ast.Idx

	// doubleProto records the position of a repeated non-computed
	// "__proto__" value property, the same delayed-until-committed
	// treatment as shorthandAssign.
	doubleProto ast.Idx

	opts Options

	errors error

	recover struct {
		// Scratch when trying to seek to the next statement, etc.
		idx   ast.Idx
		count int
	}

	alloc nodeAllocator

	exprBuf []ast.Expression
	propBuf []ast.Property
	declBuf []ast.VariableDeclarator
}

// Options configures a parse beyond its source text. The zero value
// parses a non-strict script with every early-error rule on.
type Options struct {
	// SourceType selects "script" or "module" grammar; a module is
	// implicitly strict and allows import/export statements.
	SourceType string

	AllowReturnOutsideFunction  bool
	AllowImportExportEverywhere bool
	AllowAwaitOutsideFunction   bool
	AllowSuperOutsideMethod     bool
	AllowHashBang               bool
}

// newParser ...
func newParser(src string, opts Options) *parser {
	if opts.AllowHashBang && strings.HasPrefix(src, "#!") {
		if i := strings.IndexByte(src, '\n'); i >= 0 {
			src = src[i:]
		} else {
			src = ""
		}
	}
	p := &parser{
		str:  src,
		opts: opts,

		alloc: newNodeAllocator(),
	}
	p.scanner = scanner.NewScanner(src)
	return p
}

// ParseFile parses the source code of a single JavaScript/ECMAScript source file and returns
// the corresponding ast.Program node.
func ParseFile(src string) (*ast.Program, error) {
	return newParser(src, Options{}).parse()
}

// ParseFileWithOptions parses src under the given Options.
func ParseFileWithOptions(src string, opts Options) (*ast.Program, error) {
	return newParser(src, opts).parse()
}

// parse ...
func (p *parser) parse() (*ast.Program, error) {
	p.openFunctionScope()
	p.scope.allowAwait = p.opts.AllowAwaitOutsideFunction
	p.scope.allowSuper = p.opts.AllowSuperOutsideMethod
	p.inModule = p.opts.SourceType == "module"
	p.scope.strict = p.inModule
	p.exportedNames = make(map[string]ast.Idx)
	p.undefinedExports = make(map[string]ast.Idx)
	p.next()
	program := p.parseProgram()
	program.SourceType = p.opts.SourceType
	if program.SourceType == "" {
		program.SourceType = "script"
	}
	p.checkUndefinedExports()
	p.closeScope()
	if p.scope != nil {
		p.errorf("unbalanced scope stack at end of parse")
	}
	if p.privateNames != nil {
		p.errorf("unbalanced private-name stack at end of parse")
	}
	return program, p.errors
}

// next ...
func (p *parser) next() {
	p.scanner.Next()
	p.token = p.scanner.Token
}

type parserState struct {
	c scanner.Checkpoint

	tok scanner.Token

	errors error
}

func (p *parser) mark() parserState {
	return parserState{
		c:      p.scanner.Checkpoint(),
		tok:    p.token,
		errors: p.errors,
	}
}

func (p *parser) restore(state parserState) {
	p.scanner.Rewind(state.c)
	p.token = state.tok
	// Truncate parser errors back to checkpoint state
	p.errors = state.errors
}

func (p *parser) peek() scanner.Token {
	st := p.mark()
	p.scanner.Next()
	tok := p.scanner.Token
	p.restore(st)
	return tok
}

func (p *parser) currentString() string {
	return p.token.String(*p.scanner)
}

func (p *parser) currentKind() token.Token {
	return p.token.Kind
}

func (p *parser) currentOffset() ast.Idx {
	return p.token.Idx0
}

func (p *parser) canInsertSemicolon() bool {
	kind := p.currentKind()
	return kind == token.Semicolon || kind == token.RightBrace /*|| p.scanner.EOF()*/ || p.token.OnNewLine
}

func (p *parser) semicolon() bool {
	if !p.canInsertSemicolon() {
		return false
	}

	if p.currentKind() == token.Semicolon {
		p.next()
	}
	return true
}

func (p *parser) idxOf(offset int) ast.Idx {
	return ast.Idx(1 + offset)
}

func (p *parser) expect(value token.Token) ast.Idx {
	idx := p.scanner.Offset()
	if p.token.Kind != value {
		p.errorUnexpectedToken(p.token.Kind)
	}
	p.next()
	return idx
}
