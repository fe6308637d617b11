package vartext

import (
	"github.com/gateboxlab/variant/internal/varview"
)

func charViewOf(u []uint16) varview.CharView { return varview.NewCharView(u) }

func (p *charParser) parseQuotedString(quoteChar uint16) (string, error) {
	p.advance()
	start := p.pos
	for {
		if p.eof() {
			return "", p.errorf("unterminated string")
		}
		c := p.peek()
		if c == quoteChar {
			s := p.cache.GetChars(charViewOf(p.buf[start:p.pos]))
			p.advance()
			return s, nil
		}
		if c == '\\' {
			return p.parseEscapedString(quoteChar, start)
		}
		p.advance()
	}
}

func (p *charParser) parseEscapedString(quoteChar uint16, bufStart int) (string, error) {
	var out []uint16
	out = append(out, p.buf[bufStart:p.pos]...)
	for {
		if p.eof() {
			return "", p.errorf("unterminated string")
		}
		c := p.peek()
		if c == quoteChar {
			p.advance()
			return charViewOf(out).ToString(), nil
		}
		if c != '\\' {
			start := p.pos
			for !p.eof() && p.peek() != quoteChar && p.peek() != '\\' {
				p.advance()
			}
			out = append(out, p.buf[start:p.pos]...)
			continue
		}
		p.advance()
		if p.eof() {
			return "", p.errorf("unterminated escape sequence")
		}
		esc := p.advance()
		switch esc {
		case '"', '\'', '\\', '/':
			out = append(out, esc)
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case '\n':
			// line continuation: emit nothing
		case '\r':
			if p.peek() == '\n' {
				p.advance()
			}
		case 'u':
			unit, err := p.decodeEscapedUnit()
			if err != nil {
				return "", err
			}
			out = append(out, unit)
		default:
			// Lenient grammar: any escape not recognized above decodes to
			// the escaped character itself, not an error.
			out = append(out, esc)
		}
	}
}

func (p *charParser) decodeEscapedUnit() (uint16, error) {
	if p.pos+4 > len(p.buf) {
		return 0, p.errorf("truncated \\u escape")
	}
	var v int32
	for i := 0; i < 4; i++ {
		c := p.advance()
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= int32(c - '0')
		case c >= 'a' && c <= 'f':
			v |= int32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= int32(c-'A') + 10
		default:
			return 0, p.errorf("invalid hex digit in \\u escape")
		}
	}
	return uint16(v), nil
}
