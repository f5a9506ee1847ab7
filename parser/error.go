package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/t14raptor/jsparse/ast"
	"github.com/t14raptor/jsparse/token"
)

const (
	errUnexpectedToken      = "Unexpected token %v"
	errUnexpectedEndOfInput = "Unexpected end of input"
)

// errorf ...
func (p *parser) errorf(msg string, msgValues ...any) error {
	err := fmt.Errorf(msg, msgValues...)
	p.errors = errors.Join(p.errors, err)
	return err
}

// error reports a recoverable error at the current token position.
func (p *parser) error(msg string, msgValues ...any) error {
	return p.errorAt(p.currentOffset(), msg, msgValues...)
}

// errorAt reports a recoverable error at a specific input offset.
func (p *parser) errorAt(at ast.Idx, msg string, msgValues ...any) error {
	line := 1
	if int(at) <= len(p.str) {
		line += strings.Count(p.str[:at], "\n")
	}
	err := fmt.Errorf("Line %d: %s", line, fmt.Sprintf(msg, msgValues...))
	p.errors = errors.Join(p.errors, err)
	return err
}

// errorUnexpected ...
func (p *parser) errorUnexpected(chr rune) error {
	if chr == -1 {
		return p.errorf(errUnexpectedEndOfInput)
	}
	return p.errorf(errUnexpectedToken, token.Illegal)
}

func (p *parser) errorUnexpectedToken(tkn token.Token) error {
	switch tkn {
	case token.Eof:
		return p.errorf(errUnexpectedEndOfInput)
	case token.Boolean, token.Null:
		//value = p.literal TODO
	case token.Identifier:
		return p.errorf("Unexpected identifier")
	case token.Keyword:
		// TODO Might be a future reserved word
		return p.errorf("Unexpected reserved word")
	case token.EscapedReservedWord:
		return p.errorf("Keyword must not contain escaped characters")
	case token.Number:
		return p.errorf("Unexpected number")
	case token.String:
		return p.errorf("Unexpected string")
	}
	return p.errorf(errUnexpectedToken, tkn.String())
}
