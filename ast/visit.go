package ast

// Visitor is called back once per concrete node kind encountered during a
// walk. Embed NoopVisitor and override only the methods a given visitor
// cares about; the default behaviour is to recurse into children.
type Visitor interface {
	VisitProgram(node *Program)
	VisitStatement(node *Statement)
	VisitStatements(node *Statements)
	VisitExpression(node *Expression)
	VisitExpressions(node *Expressions)

	VisitBadStatement(node *BadStatement)
	VisitBlockStatement(node *BlockStatement)
	VisitBreakStatement(node *BreakStatement)
	VisitContinueStatement(node *ContinueStatement)
	VisitCaseStatement(node *CaseStatement)
	VisitCatchStatement(node *CatchStatement)
	VisitDebuggerStatement(node *DebuggerStatement)
	VisitDoWhileStatement(node *DoWhileStatement)
	VisitEmptyStatement(node *EmptyStatement)
	VisitExpressionStatement(node *ExpressionStatement)
	VisitForInStatement(node *ForInStatement)
	VisitForOfStatement(node *ForOfStatement)
	VisitForStatement(node *ForStatement)
	VisitIfStatement(node *IfStatement)
	VisitLabelledStatement(node *LabelledStatement)
	VisitReturnStatement(node *ReturnStatement)
	VisitSwitchStatement(node *SwitchStatement)
	VisitThrowStatement(node *ThrowStatement)
	VisitTryStatement(node *TryStatement)
	VisitWhileStatement(node *WhileStatement)
	VisitWithStatement(node *WithStatement)

	VisitFunctionDeclaration(node *FunctionDeclaration)
	VisitClassDeclaration(node *ClassDeclaration)
	VisitVariableDeclaration(node *VariableDeclaration)
	VisitBinding(node *VariableDeclarator)

	VisitImportDeclaration(node *ImportDeclaration)
	VisitExportNamedDeclaration(node *ExportNamedDeclaration)
	VisitExportDefaultDeclaration(node *ExportDefaultDeclaration)
	VisitExportAllDeclaration(node *ExportAllDeclaration)

	VisitYieldExpression(node *YieldExpression)
	VisitAwaitExpression(node *AwaitExpression)
	VisitArrayLiteral(node *ArrayLiteral)
	VisitArrayPattern(node *ArrayPattern)
	VisitAssignExpression(node *AssignExpression)
	VisitInvalidExpression(node *InvalidExpression)
	VisitBinaryExpression(node *BinaryExpression)
	VisitBooleanLiteral(node *BooleanLiteral)
	VisitMemberExpression(node *MemberExpression)
	VisitCallExpression(node *CallExpression)
	VisitConditionalExpression(node *ConditionalExpression)
	VisitPrivateDotExpression(node *PrivateDotExpression)
	VisitOptionalChain(node *OptionalChain)
	VisitOptional(node *Optional)
	VisitFunctionLiteral(node *FunctionLiteral)
	VisitClassLiteral(node *ClassLiteral)
	VisitArrowFunctionLiteral(node *ArrowFunctionLiteral)
	VisitIdentifier(node *Identifier)
	VisitPrivateIdentifier(node *PrivateIdentifier)
	VisitNewExpression(node *NewExpression)
	VisitNullLiteral(node *NullLiteral)
	VisitNumberLiteral(node *NumberLiteral)
	VisitStringLiteral(node *StringLiteral)
	VisitRegExpLiteral(node *RegExpLiteral)
	VisitObjectLiteral(node *ObjectLiteral)
	VisitObjectPattern(node *ObjectPattern)
	VisitParameterList(node *ParameterList)
	VisitPropertyShort(node *PropertyShort)
	VisitPropertyKeyed(node *PropertyKeyed)
	VisitSpreadElement(node *SpreadElement)
	VisitTemplateLiteral(node *TemplateLiteral)
	VisitThisExpression(node *ThisExpression)
	VisitSuperExpression(node *SuperExpression)
	VisitUnaryExpression(node *UnaryExpression)
	VisitUpdateExpression(node *UpdateExpression)
	VisitMetaProperty(node *MetaProperty)
	VisitSequenceExpression(node *SequenceExpression)
	VisitImportExpression(node *ImportExpression)
	VisitImportMetaExpression(node *ImportMetaExpression)

	VisitFieldDefinition(node *FieldDefinition)
	VisitMethodDefinition(node *MethodDefinition)
	VisitClassStaticBlock(node *ClassStaticBlock)
}

// NoopVisitor recurses into every node's children without otherwise
// acting on them. Embed it and override the methods you need.
type NoopVisitor struct {
	// V is the outermost visitor; children dispatch through it so that
	// overrides on an embedding type are still honored during recursion.
	V Visitor
}

func (nv *NoopVisitor) self() Visitor {
	if nv.V != nil {
		return nv.V
	}
	return nv
}

func (nv *NoopVisitor) VisitProgram(n *Program)       { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitStatement(n *Statement)   { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitStatements(n *Statements) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitExpression(n *Expression) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitExpressions(n *Expressions) { n.VisitChildrenWith(nv.self()) }

func (nv *NoopVisitor) VisitBadStatement(n *BadStatement)             {}
func (nv *NoopVisitor) VisitBlockStatement(n *BlockStatement)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitBreakStatement(n *BreakStatement)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitContinueStatement(n *ContinueStatement)   { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitCaseStatement(n *CaseStatement)           { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitCatchStatement(n *CatchStatement)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitDebuggerStatement(n *DebuggerStatement)   {}
func (nv *NoopVisitor) VisitDoWhileStatement(n *DoWhileStatement)     { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitEmptyStatement(n *EmptyStatement)         {}
func (nv *NoopVisitor) VisitExpressionStatement(n *ExpressionStatement) {
	n.VisitChildrenWith(nv.self())
}
func (nv *NoopVisitor) VisitForInStatement(n *ForInStatement) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitForOfStatement(n *ForOfStatement) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitForStatement(n *ForStatement)     { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitIfStatement(n *IfStatement)       { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitLabelledStatement(n *LabelledStatement) {
	n.VisitChildrenWith(nv.self())
}
func (nv *NoopVisitor) VisitReturnStatement(n *ReturnStatement) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitSwitchStatement(n *SwitchStatement) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitThrowStatement(n *ThrowStatement)   { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitTryStatement(n *TryStatement)       { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitWhileStatement(n *WhileStatement)   { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitWithStatement(n *WithStatement)     { n.VisitChildrenWith(nv.self()) }

func (nv *NoopVisitor) VisitFunctionDeclaration(n *FunctionDeclaration) {
	n.VisitChildrenWith(nv.self())
}
func (nv *NoopVisitor) VisitClassDeclaration(n *ClassDeclaration) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitVariableDeclaration(n *VariableDeclaration) {
	n.VisitChildrenWith(nv.self())
}
func (nv *NoopVisitor) VisitBinding(n *VariableDeclarator) { n.VisitChildrenWith(nv.self()) }

func (nv *NoopVisitor) VisitImportDeclaration(n *ImportDeclaration) {}
func (nv *NoopVisitor) VisitExportNamedDeclaration(n *ExportNamedDeclaration) {
	if n.Declaration != nil {
		n.Declaration.(VisitableNode).VisitWith(nv.self())
	}
}
func (nv *NoopVisitor) VisitExportDefaultDeclaration(n *ExportDefaultDeclaration) {
	n.Declaration.(VisitableNode).VisitWith(nv.self())
}
func (nv *NoopVisitor) VisitExportAllDeclaration(n *ExportAllDeclaration) {}

func (nv *NoopVisitor) VisitYieldExpression(n *YieldExpression)   { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitAwaitExpression(n *AwaitExpression)   { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitArrayLiteral(n *ArrayLiteral)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitArrayPattern(n *ArrayPattern)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitAssignExpression(n *AssignExpression) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitInvalidExpression(n *InvalidExpression) {}
func (nv *NoopVisitor) VisitBinaryExpression(n *BinaryExpression) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitBooleanLiteral(n *BooleanLiteral)     {}
func (nv *NoopVisitor) VisitMemberExpression(n *MemberExpression) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitCallExpression(n *CallExpression)     { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitConditionalExpression(n *ConditionalExpression) {
	n.VisitChildrenWith(nv.self())
}
func (nv *NoopVisitor) VisitPrivateDotExpression(n *PrivateDotExpression) {
	n.VisitChildrenWith(nv.self())
}
func (nv *NoopVisitor) VisitOptionalChain(n *OptionalChain) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitOptional(n *Optional)           { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitFunctionLiteral(n *FunctionLiteral) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitClassLiteral(n *ClassLiteral)       { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitArrowFunctionLiteral(n *ArrowFunctionLiteral) {
	n.VisitChildrenWith(nv.self())
}
func (nv *NoopVisitor) VisitIdentifier(n *Identifier)               {}
func (nv *NoopVisitor) VisitPrivateIdentifier(n *PrivateIdentifier) {}
func (nv *NoopVisitor) VisitNewExpression(n *NewExpression)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitNullLiteral(n *NullLiteral)             {}
func (nv *NoopVisitor) VisitNumberLiteral(n *NumberLiteral)         {}
func (nv *NoopVisitor) VisitStringLiteral(n *StringLiteral)         {}
func (nv *NoopVisitor) VisitRegExpLiteral(n *RegExpLiteral)         {}
func (nv *NoopVisitor) VisitObjectLiteral(n *ObjectLiteral)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitObjectPattern(n *ObjectPattern)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitParameterList(n *ParameterList)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitPropertyShort(n *PropertyShort)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitPropertyKeyed(n *PropertyKeyed)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitSpreadElement(n *SpreadElement)         { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitTemplateLiteral(n *TemplateLiteral)     { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitThisExpression(n *ThisExpression)       {}
func (nv *NoopVisitor) VisitSuperExpression(n *SuperExpression)     {}
func (nv *NoopVisitor) VisitUnaryExpression(n *UnaryExpression)     { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitUpdateExpression(n *UpdateExpression)   { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitMetaProperty(n *MetaProperty)           {}
func (nv *NoopVisitor) VisitSequenceExpression(n *SequenceExpression) {
	n.VisitChildrenWith(nv.self())
}
func (nv *NoopVisitor) VisitImportExpression(n *ImportExpression) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitImportMetaExpression(n *ImportMetaExpression) {}

func (nv *NoopVisitor) VisitFieldDefinition(n *FieldDefinition)   { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitMethodDefinition(n *MethodDefinition) { n.VisitChildrenWith(nv.self()) }
func (nv *NoopVisitor) VisitClassStaticBlock(n *ClassStaticBlock) { n.VisitChildrenWith(nv.self()) }

// --- wrapper dispatch -------------------------------------------------

func (n *Program) VisitWith(v Visitor)         { v.VisitProgram(n) }
func (n *Program) VisitChildrenWith(v Visitor) { n.Body.VisitWith(v) }

func (n *Statement) VisitWith(v Visitor) { v.VisitStatement(n) }
func (n *Statement) VisitChildrenWith(v Visitor) {
	if n.Stmt != nil {
		n.Stmt.(VisitableNode).VisitWith(v)
	}
}

func (n *Statements) VisitWith(v Visitor) { v.VisitStatements(n) }
func (n *Statements) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

func (n *Expression) VisitWith(v Visitor) { v.VisitExpression(n) }
func (n *Expression) VisitChildrenWith(v Visitor) {
	if n.Expr != nil {
		n.Expr.(VisitableNode).VisitWith(v)
	}
}

func (n *Expressions) VisitWith(v Visitor) { v.VisitExpressions(n) }
func (n *Expressions) VisitChildrenWith(v Visitor) {
	for i := range *n {
		(*n)[i].VisitWith(v)
	}
}

// --- statements --------------------------------------------------------

func (n *BadStatement) VisitWith(v Visitor)         { v.VisitBadStatement(n) }
func (n *BadStatement) VisitChildrenWith(v Visitor) {}

func (n *BlockStatement) VisitWith(v Visitor) { v.VisitBlockStatement(n) }
func (n *BlockStatement) VisitChildrenWith(v Visitor) {
	n.List.VisitWith(v)
}

func (n *BreakStatement) VisitWith(v Visitor) { v.VisitBreakStatement(n) }
func (n *BreakStatement) VisitChildrenWith(v Visitor) {
	if n.Label != nil {
		n.Label.VisitWith(v)
	}
}

func (n *ContinueStatement) VisitWith(v Visitor) { v.VisitContinueStatement(n) }
func (n *ContinueStatement) VisitChildrenWith(v Visitor) {
	if n.Label != nil {
		n.Label.VisitWith(v)
	}
}

func (n *CaseStatement) VisitWith(v Visitor) { v.VisitCaseStatement(n) }
func (n *CaseStatement) VisitChildrenWith(v Visitor) {
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	n.Consequent.VisitWith(v)
}

func (n *CatchStatement) VisitWith(v Visitor) { v.VisitCatchStatement(n) }
func (n *CatchStatement) VisitChildrenWith(v Visitor) {
	if n.Parameter != nil {
		n.Parameter.Target.(VisitableNode).VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *DebuggerStatement) VisitWith(v Visitor)         { v.VisitDebuggerStatement(n) }
func (n *DebuggerStatement) VisitChildrenWith(v Visitor) {}

func (n *DoWhileStatement) VisitWith(v Visitor) { v.VisitDoWhileStatement(n) }
func (n *DoWhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *EmptyStatement) VisitWith(v Visitor)         { v.VisitEmptyStatement(n) }
func (n *EmptyStatement) VisitChildrenWith(v Visitor) {}

func (n *ExpressionStatement) VisitWith(v Visitor) { v.VisitExpressionStatement(n) }
func (n *ExpressionStatement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *ForInStatement) VisitWith(v Visitor) { v.VisitForInStatement(n) }
func (n *ForInStatement) VisitChildrenWith(v Visitor) {
	n.Into.Into.(VisitableNode).VisitWith(v)
	n.Source.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForOfStatement) VisitWith(v Visitor) { v.VisitForOfStatement(n) }
func (n *ForOfStatement) VisitChildrenWith(v Visitor) {
	n.Into.Into.(VisitableNode).VisitWith(v)
	n.Source.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ForStatement) VisitWith(v Visitor) { v.VisitForStatement(n) }
func (n *ForStatement) VisitChildrenWith(v Visitor) {
	if n.Initializer != nil {
		n.Initializer.Initializer.(VisitableNode).VisitWith(v)
	}
	if n.Test != nil {
		n.Test.VisitWith(v)
	}
	if n.Update != nil {
		n.Update.VisitWith(v)
	}
	n.Body.VisitWith(v)
}

func (n *IfStatement) VisitWith(v Visitor) { v.VisitIfStatement(n) }
func (n *IfStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	if n.Alternate != nil {
		n.Alternate.VisitWith(v)
	}
}

func (n *LabelledStatement) VisitWith(v Visitor) { v.VisitLabelledStatement(n) }
func (n *LabelledStatement) VisitChildrenWith(v Visitor) {
	n.Label.VisitWith(v)
	n.Statement.VisitWith(v)
}

func (n *ReturnStatement) VisitWith(v Visitor) { v.VisitReturnStatement(n) }
func (n *ReturnStatement) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *SwitchStatement) VisitWith(v Visitor) { v.VisitSwitchStatement(n) }
func (n *SwitchStatement) VisitChildrenWith(v Visitor) {
	n.Discriminant.VisitWith(v)
	for i := range n.Body {
		n.Body[i].VisitWith(v)
	}
}

func (n *ThrowStatement) VisitWith(v Visitor) { v.VisitThrowStatement(n) }
func (n *ThrowStatement) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *TryStatement) VisitWith(v Visitor) { v.VisitTryStatement(n) }
func (n *TryStatement) VisitChildrenWith(v Visitor) {
	n.Body.VisitWith(v)
	if n.Catch != nil {
		n.Catch.VisitWith(v)
	}
	if n.Finally != nil {
		n.Finally.VisitWith(v)
	}
}

func (n *WhileStatement) VisitWith(v Visitor) { v.VisitWhileStatement(n) }
func (n *WhileStatement) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *WithStatement) VisitWith(v Visitor) { v.VisitWithStatement(n) }
func (n *WithStatement) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Body.VisitWith(v)
}

// --- declarations -------------------------------------------------------

func (n *FunctionDeclaration) VisitWith(v Visitor) { v.VisitFunctionDeclaration(n) }
func (n *FunctionDeclaration) VisitChildrenWith(v Visitor) {
	n.Function.VisitWith(v)
}

func (n *ClassDeclaration) VisitWith(v Visitor) { v.VisitClassDeclaration(n) }
func (n *ClassDeclaration) VisitChildrenWith(v Visitor) {
	n.Class.VisitWith(v)
}

func (n *VariableDeclaration) VisitWith(v Visitor) { v.VisitVariableDeclaration(n) }
func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
}

func (n *VariableDeclarator) VisitWith(v Visitor) { v.VisitBinding(n) }
func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	n.Target.Target.(VisitableNode).VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

// --- modules -------------------------------------------------------------

func (n *ImportDeclaration) VisitWith(v Visitor)         { v.VisitImportDeclaration(n) }
func (n *ImportDeclaration) VisitChildrenWith(v Visitor) {}

func (n *ExportNamedDeclaration) VisitWith(v Visitor) { v.VisitExportNamedDeclaration(n) }
func (n *ExportNamedDeclaration) VisitChildrenWith(v Visitor) {
	if n.Declaration != nil {
		n.Declaration.(VisitableNode).VisitWith(v)
	}
}

func (n *ExportDefaultDeclaration) VisitWith(v Visitor) { v.VisitExportDefaultDeclaration(n) }
func (n *ExportDefaultDeclaration) VisitChildrenWith(v Visitor) {
	n.Declaration.(VisitableNode).VisitWith(v)
}

func (n *ExportAllDeclaration) VisitWith(v Visitor)         { v.VisitExportAllDeclaration(n) }
func (n *ExportAllDeclaration) VisitChildrenWith(v Visitor) {}

// --- expressions ---------------------------------------------------------

func (n *YieldExpression) VisitWith(v Visitor) { v.VisitYieldExpression(n) }
func (n *YieldExpression) VisitChildrenWith(v Visitor) {
	if n.Argument != nil {
		n.Argument.VisitWith(v)
	}
}

func (n *AwaitExpression) VisitWith(v Visitor) { v.VisitAwaitExpression(n) }
func (n *AwaitExpression) VisitChildrenWith(v Visitor) {
	n.Argument.VisitWith(v)
}

func (n *ArrayLiteral) VisitWith(v Visitor) { v.VisitArrayLiteral(n) }
func (n *ArrayLiteral) VisitChildrenWith(v Visitor) {
	n.Value.VisitWith(v)
}

func (n *ArrayPattern) VisitWith(v Visitor) { v.VisitArrayPattern(n) }
func (n *ArrayPattern) VisitChildrenWith(v Visitor) {
	n.Elements.VisitWith(v)
	if n.Rest != nil {
		n.Rest.VisitWith(v)
	}
}

func (n *AssignExpression) VisitWith(v Visitor) { v.VisitAssignExpression(n) }
func (n *AssignExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *InvalidExpression) VisitWith(v Visitor)         { v.VisitInvalidExpression(n) }
func (n *InvalidExpression) VisitChildrenWith(v Visitor) {}

func (n *BinaryExpression) VisitWith(v Visitor) { v.VisitBinaryExpression(n) }
func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
	n.Right.VisitWith(v)
}

func (n *BooleanLiteral) VisitWith(v Visitor)         { v.VisitBooleanLiteral(n) }
func (n *BooleanLiteral) VisitChildrenWith(v Visitor) {}

func (n *MemberExpression) VisitWith(v Visitor) { v.VisitMemberExpression(n) }
func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	n.Object.VisitWith(v)
	n.Property.VisitWith(v)
}

func (n *CallExpression) VisitWith(v Visitor) { v.VisitCallExpression(n) }
func (n *CallExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *ConditionalExpression) VisitWith(v Visitor) { v.VisitConditionalExpression(n) }
func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	n.Test.VisitWith(v)
	n.Consequent.VisitWith(v)
	n.Alternate.VisitWith(v)
}

func (n *PrivateDotExpression) VisitWith(v Visitor) { v.VisitPrivateDotExpression(n) }
func (n *PrivateDotExpression) VisitChildrenWith(v Visitor) {
	n.Left.VisitWith(v)
}

func (n *OptionalChain) VisitWith(v Visitor) { v.VisitOptionalChain(n) }
func (n *OptionalChain) VisitChildrenWith(v Visitor) {
	n.Base.VisitWith(v)
}

func (n *Optional) VisitWith(v Visitor) { v.VisitOptional(n) }
func (n *Optional) VisitChildrenWith(v Visitor) {
	n.Expr.VisitWith(v)
}

func (n *FunctionLiteral) VisitWith(v Visitor) { v.VisitFunctionLiteral(n) }
func (n *FunctionLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	n.ParameterList.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ClassLiteral) VisitWith(v Visitor) { v.VisitClassLiteral(n) }
func (n *ClassLiteral) VisitChildrenWith(v Visitor) {
	if n.Name != nil {
		n.Name.VisitWith(v)
	}
	if n.SuperClass != nil {
		n.SuperClass.VisitWith(v)
	}
	for i := range n.Body {
		n.Body[i].Element.(VisitableNode).VisitWith(v)
	}
}

func (n *ArrowFunctionLiteral) VisitWith(v Visitor) { v.VisitArrowFunctionLiteral(n) }
func (n *ArrowFunctionLiteral) VisitChildrenWith(v Visitor) {
	n.ParameterList.VisitWith(v)
	n.Body.Body.(VisitableNode).VisitWith(v)
}

func (n *Identifier) VisitWith(v Visitor)         { v.VisitIdentifier(n) }
func (n *Identifier) VisitChildrenWith(v Visitor) {}

func (n *PrivateIdentifier) VisitWith(v Visitor)         { v.VisitPrivateIdentifier(n) }
func (n *PrivateIdentifier) VisitChildrenWith(v Visitor) {}

func (n *NewExpression) VisitWith(v Visitor) { v.VisitNewExpression(n) }
func (n *NewExpression) VisitChildrenWith(v Visitor) {
	n.Callee.VisitWith(v)
	n.ArgumentList.VisitWith(v)
}

func (n *NullLiteral) VisitWith(v Visitor)         { v.VisitNullLiteral(n) }
func (n *NullLiteral) VisitChildrenWith(v Visitor) {}

func (n *NumberLiteral) VisitWith(v Visitor)         { v.VisitNumberLiteral(n) }
func (n *NumberLiteral) VisitChildrenWith(v Visitor) {}

func (n *StringLiteral) VisitWith(v Visitor)         { v.VisitStringLiteral(n) }
func (n *StringLiteral) VisitChildrenWith(v Visitor) {}

func (n *RegExpLiteral) VisitWith(v Visitor)         { v.VisitRegExpLiteral(n) }
func (n *RegExpLiteral) VisitChildrenWith(v Visitor) {}

func (n *ObjectLiteral) VisitWith(v Visitor) { v.VisitObjectLiteral(n) }
func (n *ObjectLiteral) VisitChildrenWith(v Visitor) {
	for i := range n.Value {
		n.Value[i].Prop.VisitWith(v)
	}
}

func (n *ObjectPattern) VisitWith(v Visitor) { v.VisitObjectPattern(n) }
func (n *ObjectPattern) VisitChildrenWith(v Visitor) {
	for i := range n.Properties {
		n.Properties[i].Prop.VisitWith(v)
	}
	if n.Rest != nil {
		n.Rest.(VisitableNode).VisitWith(v)
	}
}

func (n *ParameterList) VisitWith(v Visitor) { v.VisitParameterList(n) }
func (n *ParameterList) VisitChildrenWith(v Visitor) {
	for i := range n.List {
		n.List[i].VisitWith(v)
	}
	if n.Rest != nil {
		n.Rest.(VisitableNode).VisitWith(v)
	}
}

func (n *PropertyShort) VisitWith(v Visitor) { v.VisitPropertyShort(n) }
func (n *PropertyShort) VisitChildrenWith(v Visitor) {
	n.Name.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *PropertyKeyed) VisitWith(v Visitor) { v.VisitPropertyKeyed(n) }
func (n *PropertyKeyed) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Value.VisitWith(v)
}

func (n *SpreadElement) VisitWith(v Visitor) { v.VisitSpreadElement(n) }
func (n *SpreadElement) VisitChildrenWith(v Visitor) {
	n.Expression.VisitWith(v)
}

func (n *TemplateLiteral) VisitWith(v Visitor) { v.VisitTemplateLiteral(n) }
func (n *TemplateLiteral) VisitChildrenWith(v Visitor) {
	if n.Tag != nil {
		n.Tag.VisitWith(v)
	}
	n.Expressions.VisitWith(v)
}

func (n *ThisExpression) VisitWith(v Visitor)         { v.VisitThisExpression(n) }
func (n *ThisExpression) VisitChildrenWith(v Visitor) {}

func (n *SuperExpression) VisitWith(v Visitor)         { v.VisitSuperExpression(n) }
func (n *SuperExpression) VisitChildrenWith(v Visitor) {}

func (n *UnaryExpression) VisitWith(v Visitor) { v.VisitUnaryExpression(n) }
func (n *UnaryExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *UpdateExpression) VisitWith(v Visitor) { v.VisitUpdateExpression(n) }
func (n *UpdateExpression) VisitChildrenWith(v Visitor) {
	n.Operand.VisitWith(v)
}

func (n *MetaProperty) VisitWith(v Visitor)         { v.VisitMetaProperty(n) }
func (n *MetaProperty) VisitChildrenWith(v Visitor) {}

func (n *SequenceExpression) VisitWith(v Visitor) { v.VisitSequenceExpression(n) }
func (n *SequenceExpression) VisitChildrenWith(v Visitor) {
	n.Sequence.VisitWith(v)
}

func (n *ImportExpression) VisitWith(v Visitor) { v.VisitImportExpression(n) }
func (n *ImportExpression) VisitChildrenWith(v Visitor) {
	n.Source.VisitWith(v)
}

func (n *ImportMetaExpression) VisitWith(v Visitor)         { v.VisitImportMetaExpression(n) }
func (n *ImportMetaExpression) VisitChildrenWith(v Visitor) {}

// --- class elements -------------------------------------------------------

func (n *FieldDefinition) VisitWith(v Visitor) { v.VisitFieldDefinition(n) }
func (n *FieldDefinition) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	if n.Initializer != nil {
		n.Initializer.VisitWith(v)
	}
}

func (n *MethodDefinition) VisitWith(v Visitor) { v.VisitMethodDefinition(n) }
func (n *MethodDefinition) VisitChildrenWith(v Visitor) {
	n.Key.VisitWith(v)
	n.Body.VisitWith(v)
}

func (n *ClassStaticBlock) VisitWith(v Visitor) { v.VisitClassStaticBlock(n) }
func (n *ClassStaticBlock) VisitChildrenWith(v Visitor) {
	n.Block.VisitWith(v)
}
