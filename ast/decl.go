package ast

import "github.com/t14raptor/jsparse/token"

type (
	FunctionDeclaration struct {
		Function *FunctionLiteral
	}

	ClassDeclaration struct {
		Class *ClassLiteral
	}

	VariableDeclaration struct {
		List    VariableDeclarators
		Comment string

		Idx   Idx
		Token token.Token
	}

	VariableDeclarators []VariableDeclarator

	VariableDeclarator struct {
		Target      *BindingTarget
		Initializer *Expression `optional:"true"`
	}
)

func (*FunctionDeclaration) _stmt() {}
func (*ClassDeclaration) _stmt()    {}
func (*VariableDeclaration) _stmt() {}
