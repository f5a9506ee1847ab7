package scanner

func isLineTerminator(chr rune) bool {
	switch chr {
	case '\u000a', '\u000d', '\u2028', '\u2029':
		return true
	}
	return false
}

func (s *Scanner) skipSingleLineComment() {
	for {
		p, ok := s.PeekRune()
		if !ok {
			break
		}
		if isLineTerminator(p) {
			break
		}
		s.ConsumeRune()
	}
}

func (s *Scanner) skipMultiLineComment() (hasLineTerminator bool) {
	for {
		p, ok := s.NextRune()
		if !ok {
			break
		}

		if p == '\r' || p == '\n' || p == '\u2028' || p == '\u2029' {
			hasLineTerminator = true
			continue
		}

		if p == '*' && s.AdvanceIfByteEquals('/') {
			return
		}
	}
	return
}
