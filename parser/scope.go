package parser

import "github.com/t14raptor/jsparse/ast"

// walkBindingNames walks a binding target — an identifier or an arbitrarily
// nested array/object destructuring pattern — invoking fn with every name
// it binds, in source order.
func walkBindingNames(e ast.Expr, fn func(name string, idx ast.Idx)) {
	switch t := e.(type) {
	case nil:
	case *ast.Identifier:
		fn(t.Name, t.Idx)
	case *ast.ArrayPattern:
		for _, el := range t.Elements {
			walkBindingNames(el.Expr, fn)
		}
		if t.Rest != nil {
			walkBindingNames(t.Rest.Expr, fn)
		}
	case *ast.ObjectPattern:
		for _, prop := range t.Properties {
			switch pp := prop.Prop.(type) {
			case *ast.PropertyShort:
				if pp.Name != nil {
					fn(pp.Name.Name, pp.Name.Idx)
				}
			case *ast.PropertyKeyed:
				if pp.Value != nil {
					walkBindingNames(pp.Value.Expr, fn)
				}
			}
		}
		if t.Rest != nil {
			walkBindingNames(t.Rest, fn)
		}
	case *ast.AssignExpression:
		if t.Left != nil {
			walkBindingNames(t.Left.Expr, fn)
		}
	}
}

// declareBindingTarget walks a binding target, declaring every name it
// binds under kind.
func (p *parser) declareBindingTarget(target ast.Target, kind bindingKind) {
	if target == nil {
		return
	}
	walkBindingNames(target, func(name string, idx ast.Idx) {
		p.declareName(name, kind, idx)
	})
}

// bindingKind classifies a declareName call so duplicate-binding rules can
// be enforced: let/const may not repeat in their scope, var may, and a var
// colliding with an outer let/const is an early error.
type bindingKind int

const (
	bindNone bindingKind = iota // assignment target, not a declaration
	bindVar
	bindLexical
	bindFunction
	bindOutside // function name bound in its own enclosing scope
	bindSimpleCatch
)

type labelKind int

const (
	labelPlain labelKind = iota
	labelLoop
	labelSwitch
)

type label struct {
	name          string
	kind          labelKind
	statementStart ast.Idx
}

type scope struct {
	outer *scope

	isFunction   bool
	isStaticBlock bool

	allowIn      bool
	allowLet     bool
	inIteration  bool
	inSwitch     bool
	inFuncParams bool
	inFunction   bool
	inAsync      bool
	inClassField bool
	allowAwait   bool
	allowYield   bool
	allowSuper   bool
	allowDirectSuper bool

	// strict is this scope's effective strict-mode flag: inherited from
	// the enclosing scope at openScope time, and flipped on by a leading
	// "use strict" directive in the scope's own body.
	strict bool

	labels []label

	lexical map[string]bindingKind
	varLike map[string]bool
}

func (p *parser) openScope() {
	outer := p.scope
	sc := &scope{
		outer:   outer,
		allowIn: true,
		lexical: make(map[string]bindingKind),
		varLike: make(map[string]bool),
	}
	if outer != nil {
		sc.strict = outer.strict
	}
	p.scope = sc
}

func (p *parser) openFunctionScope() {
	p.openScope()
	p.scope.isFunction = true
	p.scope.inFunction = true
}

func (p *parser) closeScope() {
	p.scope = p.scope.outer
}

// currentThisScope walks up to the nearest function or class-static-block
// scope, the frame that owns `this`/`arguments`.
func (s *scope) currentThisScope() *scope {
	for sc := s; sc != nil; sc = sc.outer {
		if sc.isFunction || sc.isStaticBlock {
			return sc
		}
	}
	return s
}

func (s *scope) hasLabel(name string) bool {
	for _, l := range s.labels {
		if l.name == name {
			return true
		}
	}
	if s.outer != nil && !s.isFunction {
		return s.outer.hasLabel(name)
	}
	return false
}

// hasLoopLabel reports whether name is bound to an enclosing loop label,
// the stricter requirement continue imposes over break.
func (s *scope) hasLoopLabel(name string) bool {
	for _, l := range s.labels {
		if l.name == name {
			return l.kind == labelLoop
		}
	}
	if s.outer != nil && !s.isFunction {
		return s.outer.hasLoopLabel(name)
	}
	return false
}

// declareName records a binding in the correct scope frame: var-like
// bindings hoist to the nearest function scope and may repeat there;
// lexical bindings (let/const/class/function-in-block) stay in their own
// block and may not repeat; a var colliding with an outer let/const is a
// hard error. Reports via p.error and returns false on conflict.
func (p *parser) declareName(name string, kind bindingKind, pos ast.Idx) bool {
	if kind == bindNone || name == "" {
		return true
	}
	if kind == bindVar {
		target := p.scope.currentThisScope()
		for sc := p.scope; sc != target; sc = sc.outer {
			if _, ok := sc.lexical[name]; ok {
				p.errorAt(pos, "Identifier '%s' has already been declared", name)
				return false
			}
		}
		if existing, ok := target.lexical[name]; ok && existing != bindVar && existing != bindFunction {
			p.errorAt(pos, "Identifier '%s' has already been declared", name)
			return false
		}
		target.varLike[name] = true
		target.lexical[name] = bindVar
		return true
	}

	if existing, ok := p.scope.lexical[name]; ok {
		if kind == bindSimpleCatch && existing == bindVar {
			return true
		}
		p.errorAt(pos, "Identifier '%s' has already been declared", name)
		return false
	}
	p.scope.lexical[name] = kind
	return true
}

// privateNameFrame is C4: a per-class set of declared private names plus
// forward references awaiting resolution against an enclosing class.
type privateNameFrame struct {
	outer    *privateNameFrame
	declared map[string]string // name -> slot ("true", "iget", "iset", "sget", "sset")
	used     []privateNameUse
}

type privateNameUse struct {
	name string
	pos  ast.Idx
}

func (p *parser) enterClassBody() {
	p.privateNames = &privateNameFrame{
		outer:    p.privateNames,
		declared: make(map[string]string),
	}
}

// declarePrivateName registers #name with the given slot, raising a
// recoverable error on an incompatible redeclaration. Identical slots
// conflict; iget/iset and sget/sset pair up; anything else duplicates.
func (p *parser) declarePrivateName(name, slot string, pos ast.Idx) {
	frame := p.privateNames
	existing, ok := frame.declared[name]
	if !ok {
		frame.declared[name] = slot
		return
	}
	if compatiblePrivateSlots(existing, slot) {
		frame.declared[name] = "true"
		return
	}
	p.errorAt(pos, "Identifier '#%s' has already been declared", name)
}

func compatiblePrivateSlots(a, b string) bool {
	pairs := map[string]string{"iget": "iset", "iset": "iget", "sget": "sset", "sset": "sget"}
	return pairs[a] == b
}

func (p *parser) usePrivateName(name string, pos ast.Idx) {
	p.privateNames.used = append(p.privateNames.used, privateNameUse{name: name, pos: pos})
}

// exitClassBody propagates any unresolved private-name references to the
// parent frame, or raises if there is none.
func (p *parser) exitClassBody() {
	frame := p.privateNames
	p.privateNames = frame.outer
	for _, use := range frame.used {
		if _, ok := frame.declared[use.name]; ok {
			continue
		}
		if p.privateNames != nil {
			p.privateNames.used = append(p.privateNames.used, use)
			continue
		}
		p.errorAt(use.pos, "Private field '#%s' must be declared in an enclosing class", use.name)
	}
}
