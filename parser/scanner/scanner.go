package scanner

import (
	"github.com/t14raptor/jsparse/ast"
)

type Scanner struct {
	Token Token

	// EscapedStr holds the unescaped text of the most recently scanned
	// string/template/identifier token when it contained an escape
	// sequence; Token.String and friends return it instead of re-slicing
	// the raw source.
	EscapedStr string

	Errors []Error

	src *Source
}

func (s *Scanner) error(e Error) {
	s.Errors = append(s.Errors, e)
}

func (s *Scanner) unterminatedRange() (ast.Idx, ast.Idx) {
	return s.Token.Idx0, s.src.Offset()
}

func NewScanner(src string) *Scanner {
	s := NewSource(src)
	return &Scanner{
		src: &s,
	}
}

type Checkpoint struct {
	pos ast.Idx
	tok Token
	// TODO errors
}

func (s *Scanner) Checkpoint() Checkpoint {
	return Checkpoint{
		pos: s.src.pos,
		tok: s.Token,
	}
}

func (s *Scanner) Rewind(c Checkpoint) {
	s.src.pos = c.pos
	s.Token = c.tok
}

func (s *Scanner) Offset() ast.Idx {
	return s.src.Offset()
}

func (s *Scanner) NextRune() (rune, bool) {
	return s.src.NextRune()
}

func (s *Scanner) NextByte() (byte, bool) {
	return s.src.NextByte()
}

func (s *Scanner) ConsumeRune() rune {
	r, _ := s.src.NextRune()
	return r
}

func (s *Scanner) ConsumeByte() byte {
	return s.src.NextByteUnchecked()
}

func (s *Scanner) PeekRune() (rune, bool) {
	return s.src.PeekRune()
}

func (s *Scanner) PeekByte() (byte, bool) {
	return s.src.PeekByte()
}

func (s *Scanner) AdvanceIfByteEquals(b byte) bool {
	return s.src.AdvanceIfByteEquals(b)
}
