package parser

import (
	"github.com/t14raptor/jsparse/ast"
	"github.com/t14raptor/jsparse/token"
)

// isContextualKeyword reports whether the current token is the identifier
// s, the pattern this codebase already uses for "get"/"set"/"target" rather
// than minting dedicated token kinds for every contextual keyword.
func (p *parser) isContextualKeyword(s string) bool {
	return p.currentKind() == token.Identifier && p.currentString() == s
}

func (p *parser) expectContextualKeyword(s string) {
	if !p.isContextualKeyword(s) {
		p.errorUnexpectedToken(p.currentKind())
		return
	}
	p.next()
}

// parseModuleStringSource parses the string-literal module specifier shared
// by import declarations and re-exporting export declarations.
func (p *parser) parseModuleStringSource() *ast.StringLiteral {
	idx := p.currentOffset()
	if p.currentKind() != token.String {
		p.expect(token.String)
		return p.alloc.StringLiteral(idx, "", "")
	}
	value := p.currentString()
	raw := p.token.Raw(*p.scanner)
	p.next()
	return p.alloc.StringLiteral(idx, value, raw)
}

// checkModuleDeclarationPlacement enforces that import/export declarations
// sit at the top level of a module, unless Options.AllowImportExportEverywhere
// opts out of that restriction (spec.md C1, C9).
func (p *parser) checkModuleDeclarationPlacement(pos ast.Idx) {
	if p.opts.AllowImportExportEverywhere {
		return
	}
	if p.blockDepth != 0 {
		p.errorAt(pos, "'import' and 'export' may only appear at the top level")
	}
	if !p.inModule {
		p.errorAt(pos, "'import' and 'export' may appear only with 'sourceType: module'")
	}
}

// recordExport registers name as exported at pos, raising a recoverable
// error on a duplicate export name (spec.md C9).
func (p *parser) recordExport(name string, pos ast.Idx) {
	if _, ok := p.exportedNames[name]; ok {
		p.errorAt(pos, "Duplicate export '%s'", name)
		return
	}
	p.exportedNames[name] = pos
}

// parseImportDeclaration parses every import form: a bare side-effect
// import, a default specifier, a namespace specifier, a named specifier
// list, or a default specifier combined with one of the latter two.
func (p *parser) parseImportDeclaration() ast.Stmt {
	start := p.expect(token.Import)
	p.checkModuleDeclarationPlacement(start)
	node := &ast.ImportDeclaration{Import: start}

	if p.currentKind() == token.String {
		node.Source = p.parseModuleStringSource()
		p.semicolon()
		return node
	}

	if p.currentKind() == token.Identifier {
		name := p.parseIdentifier()
		p.declareName(name.Name, bindLexical, name.Idx)
		node.Default = name
		if p.currentKind() == token.Comma {
			p.next()
		}
	}

	switch p.currentKind() {
	case token.Multiply:
		p.next()
		p.expectContextualKeyword("as")
		name := p.parseIdentifier()
		p.declareName(name.Name, bindLexical, name.Idx)
		node.Namespace = name
	case token.LeftBrace:
		node.Named = p.parseImportSpecifiers()
	}

	p.expectContextualKeyword("from")
	node.Source = p.parseModuleStringSource()
	p.semicolon()
	return node
}

// parseImportSpecifiers parses the {a, b as c} clause of a named import.
func (p *parser) parseImportSpecifiers() []ast.ImportSpecifier {
	p.expect(token.LeftBrace)
	var specs []ast.ImportSpecifier
	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		importedIdx := p.currentOffset()
		imported := p.currentString()
		p.next()

		var local *ast.Identifier
		if p.isContextualKeyword("as") {
			p.next()
			local = p.parseIdentifier()
		} else {
			local = p.alloc.Identifier(importedIdx, imported)
		}
		p.declareName(local.Name, bindLexical, local.Idx)
		specs = append(specs, ast.ImportSpecifier{Imported: imported, Local: local})

		if p.currentKind() == token.Comma {
			p.next()
		}
	}
	p.expect(token.RightBrace)
	return specs
}

// parseExportDeclaration dispatches on every export form: default, *, a
// var/let/const/function/class declaration, or a named specifier list with
// an optional re-export source.
func (p *parser) parseExportDeclaration() ast.Stmt {
	start := p.expect(token.Export)
	p.checkModuleDeclarationPlacement(start)

	switch p.currentKind() {
	case token.Default:
		return p.parseExportDefaultDeclaration(start)
	case token.Multiply:
		return p.parseExportAllDeclaration(start)
	case token.Var, token.Let, token.Const:
		tok := p.currentKind()
		decl := p.parseLexicalDeclaration(tok)
		for _, d := range decl.List {
			walkBindingNames(d.Target.Target, func(name string, idx ast.Idx) {
				p.recordExport(name, idx)
			})
		}
		return &ast.ExportNamedDeclaration{Export: start, Declaration: decl}
	case token.Function:
		f := p.parseFunction(true, false, p.currentOffset())
		if f.Name.Name != "" {
			p.declareName(f.Name.Name, bindFunction, f.Name.Idx)
			p.recordExport(f.Name.Name, f.Name.Idx)
		}
		return &ast.ExportNamedDeclaration{Export: start, Declaration: &ast.FunctionDeclaration{Function: f}}
	case token.Class:
		c := p.parseClass(true)
		if c.Name.Name != "" {
			p.declareName(c.Name.Name, bindLexical, c.Name.Idx)
			p.recordExport(c.Name.Name, c.Name.Idx)
		}
		return &ast.ExportNamedDeclaration{Export: start, Declaration: &ast.ClassDeclaration{Class: c}}
	case token.Async:
		if f := p.parseMaybeAsyncFunction(true); f != nil {
			if f.Name.Name != "" {
				p.declareName(f.Name.Name, bindFunction, f.Name.Idx)
				p.recordExport(f.Name.Name, f.Name.Idx)
			}
			return &ast.ExportNamedDeclaration{Export: start, Declaration: &ast.FunctionDeclaration{Function: f}}
		}
		p.errorUnexpectedToken(p.currentKind())
		return &ast.BadStatement{From: start, To: p.currentOffset()}
	default:
		return p.parseExportNamedSpecifiers(start)
	}
}

// parseExportDefaultDeclaration parses "export default expr|function|class".
// Functions and classes may be anonymous here; a plain expression is wrapped
// in an ExpressionStatement so ExportDefaultDeclaration.Declaration can hold
// either uniformly.
func (p *parser) parseExportDefaultDeclaration(start ast.Idx) ast.Stmt {
	p.expect(token.Default)

	if p.currentKind() == token.Function {
		f := p.parseFunction(false, false, p.currentOffset())
		if f.Name.Name != "" {
			p.declareName(f.Name.Name, bindLexical, f.Name.Idx)
		}
		p.recordExport("default", start)
		return &ast.ExportDefaultDeclaration{Export: start, Declaration: &ast.FunctionDeclaration{Function: f}}
	}
	if p.currentKind() == token.Async {
		if f := p.parseMaybeAsyncFunction(false); f != nil {
			if f.Name.Name != "" {
				p.declareName(f.Name.Name, bindLexical, f.Name.Idx)
			}
			p.recordExport("default", start)
			return &ast.ExportDefaultDeclaration{Export: start, Declaration: &ast.FunctionDeclaration{Function: f}}
		}
	}
	if p.currentKind() == token.Class {
		c := p.parseClass(false)
		if c.Name.Name != "" {
			p.declareName(c.Name.Name, bindLexical, c.Name.Idx)
		}
		p.recordExport("default", start)
		return &ast.ExportDefaultDeclaration{Export: start, Declaration: &ast.ClassDeclaration{Class: c}}
	}

	expr := p.parseAssignmentExpression()
	p.semicolon()
	p.recordExport("default", start)
	return &ast.ExportDefaultDeclaration{
		Export:      start,
		Declaration: p.alloc.ExpressionStatement(expr),
	}
}

// parseExportAllDeclaration parses "export * from 'src'" and
// "export * as n from 'src'".
func (p *parser) parseExportAllDeclaration(start ast.Idx) ast.Stmt {
	p.expect(token.Multiply)
	node := &ast.ExportAllDeclaration{Export: start}
	if p.isContextualKeyword("as") {
		p.next()
		node.As = p.parseIdentifier()
		p.recordExport(node.As.Name, node.As.Idx)
	}
	p.expectContextualKeyword("from")
	node.Source = p.parseModuleStringSource()
	p.semicolon()
	return node
}

// parseExportNamedSpecifiers parses "export { a, b as c } [from 'src']".
// Without a from clause, each local name must resolve to a binding already
// declared in the top-level scope by the time the program finishes parsing;
// unresolved names are tracked in p.undefinedExports and checked by
// checkUndefinedExports.
func (p *parser) parseExportNamedSpecifiers(start ast.Idx) ast.Stmt {
	p.expect(token.LeftBrace)
	node := &ast.ExportNamedDeclaration{Export: start}

	type localRef struct {
		name string
		idx  ast.Idx
	}
	var locals []localRef

	for p.currentKind() != token.RightBrace && p.currentKind() != token.Eof {
		localIdx := p.currentOffset()
		local := p.currentString()
		p.next()

		exported := local
		if p.isContextualKeyword("as") {
			p.next()
			exported = p.currentString()
			p.next()
		}

		node.Specifiers = append(node.Specifiers, ast.ExportSpecifier{Local: local, Exported: exported})
		p.recordExport(exported, localIdx)
		locals = append(locals, localRef{local, localIdx})

		if p.currentKind() == token.Comma {
			p.next()
		}
	}
	p.expect(token.RightBrace)

	if p.isContextualKeyword("from") {
		p.next()
		node.Source = p.parseModuleStringSource()
	} else {
		for _, l := range locals {
			if _, ok := p.scope.lexical[l.name]; !ok {
				p.undefinedExports[l.name] = l.idx
			}
		}
	}
	p.semicolon()
	return node
}

// parseExprImport parses the two expression-position uses of the import
// keyword: dynamic import(source) and import.meta.
func (p *parser) parseExprImport(idx ast.Idx) *ast.Expression {
	p.expect(token.Import)

	if p.currentKind() == token.Period {
		p.next()
		if p.currentString() != "meta" {
			p.errorUnexpectedToken(token.Identifier)
		}
		p.next()
		return p.alloc.Expression(ast.NewImportMetaExpr(&ast.ImportMetaExpression{Idx: idx}))
	}

	p.expect(token.LeftParenthesis)
	source := p.parseAssignmentExpression()
	if p.currentKind() == token.Comma {
		p.next()
		if p.currentKind() != token.RightParenthesis {
			p.errorf("Unexpected token, expected ')'")
		}
	}
	p.expect(token.RightParenthesis)
	return p.alloc.Expression(ast.NewImportExpr(&ast.ImportExpression{Import: idx, Source: source}))
}

// checkUndefinedExports raises "Export '%s' is not defined" for every local
// name an "export {...}" without a from clause named but that never resolved
// to a top-level binding (spec.md C9).
func (p *parser) checkUndefinedExports() {
	for name, idx := range p.undefinedExports {
		if _, ok := p.scope.lexical[name]; ok {
			continue
		}
		p.errorAt(idx, "Export '%s' is not defined", name)
	}
}
