package ast

type (
	// ImportDeclaration covers every import form:
	//   import 'src'
	//   import x from 'src'
	//   import * as n from 'src'
	//   import {a, b as c} from 'src'
	// and any combination of a default specifier with a named/namespace
	// clause.
	ImportDeclaration struct {
		Import    Idx
		Default   *Identifier `optional:"true"`
		Namespace *Identifier `optional:"true"`
		Named     []ImportSpecifier
		Source    *StringLiteral
	}

	ImportSpecifier struct {
		// Imported is the exported name on the other side; it may be a
		// string literal under the ES2022 module-export-names extension.
		Imported string
		Local    *Identifier
	}

	// ExportNamedDeclaration covers:
	//   export var|let|const|function|class ...
	//   export { a, b as c } [from 'src']
	ExportNamedDeclaration struct {
		Export      Idx
		Declaration Stmt `optional:"true"`
		Specifiers  []ExportSpecifier
		Source      *StringLiteral `optional:"true"`
	}

	ExportSpecifier struct {
		Local    string
		Exported string
	}

	// ExportDefaultDeclaration covers:
	//   export default expr|function|class
	// A plain expression default is wrapped in an ExpressionStatement so
	// the field can hold either a declaration or an expression uniformly.
	ExportDefaultDeclaration struct {
		Export      Idx
		Declaration Stmt
	}

	// ExportAllDeclaration covers:
	//   export * from 'src'
	//   export * as n from 'src'
	ExportAllDeclaration struct {
		Export Idx
		As     *Identifier `optional:"true"`
		Source *StringLiteral
	}

	// ImportExpression is the dynamic import() call form.
	ImportExpression struct {
		Import Idx
		Source *Expression
	}

	// ImportMetaExpression is import.meta.
	ImportMetaExpression struct {
		Idx Idx
	}
)

func (*ImportDeclaration) _stmt()       {}
func (*ExportNamedDeclaration) _stmt()  {}
func (*ExportDefaultDeclaration) _stmt() {}
func (*ExportAllDeclaration) _stmt()    {}

func (*ImportExpression) _expr()     {}
func (*ImportMetaExpression) _expr() {}

func (n *ImportDeclaration) Idx0() Idx { return n.Import }
func (n *ImportDeclaration) Idx1() Idx { return n.Source.Idx1() }

func (n *ExportNamedDeclaration) Idx0() Idx { return n.Export }
func (n *ExportNamedDeclaration) Idx1() Idx {
	if n.Source != nil {
		return n.Source.Idx1()
	}
	if n.Declaration != nil {
		return n.Declaration.Idx1()
	}
	return n.Export + 6
}

func (n *ExportDefaultDeclaration) Idx0() Idx { return n.Export }
func (n *ExportDefaultDeclaration) Idx1() Idx { return n.Declaration.Idx1() }

func (n *ExportAllDeclaration) Idx0() Idx { return n.Export }
func (n *ExportAllDeclaration) Idx1() Idx { return n.Source.Idx1() }

func (n *ImportExpression) Idx0() Idx { return n.Import }
func (n *ImportExpression) Idx1() Idx { return n.Source.Idx1() }

func (n *ImportMetaExpression) Idx0() Idx { return n.Idx }
func (n *ImportMetaExpression) Idx1() Idx { return n.Idx + Idx(len("import.meta")) }
