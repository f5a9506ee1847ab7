package parser

import "github.com/t14raptor/jsparse/ast"

// applyDirectivePrologue walks the leading string-literal expression
// statements of a Program or function body, stamping each one's Directive
// field with its inner text (spec.md §4.C10, Testable Property 5). A
// directive whose raw source is exactly "use strict" or 'use strict'
// switches the current scope to strict mode for the remainder of the body;
// escaped or concatenated string literals ("use\x20strict") never count,
// matching the source-text check real engines perform.
func (p *parser) applyDirectivePrologue(body ast.Statements) {
	for i := range body {
		exprStmt, ok := body[i].Stmt.(*ast.ExpressionStatement)
		if !ok {
			return
		}
		strLit, ok := exprStmt.Expression.Expr.(*ast.StringLiteral)
		if !ok {
			return
		}
		exprStmt.Directive = strLit.Value
		if strLit.Raw != nil && (*strLit.Raw == `"use strict"` || *strLit.Raw == `'use strict'`) {
			p.scope.strict = true
		}
	}
}
