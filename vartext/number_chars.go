package vartext

import (
	"strconv"

	"github.com/gateboxlab/variant"
)

func (p *charParser) parseNumber() (variant.Variant, error) {
	start := p.pos
	isFloat := false

	if p.peek() == '-' || p.peek() == '+' {
		p.advance()
	}
	for !p.eof() && isDigitUnit(p.peek()) {
		p.advance()
	}
	if p.peek() == '.' {
		isFloat = true
		p.advance()
		for !p.eof() && isDigitUnit(p.peek()) {
			p.advance()
		}
	}
	if p.peek() == 'e' || p.peek() == 'E' {
		isFloat = true
		p.advance()
		if p.peek() == '+' || p.peek() == '-' {
			p.advance()
		}
		for !p.eof() && isDigitUnit(p.peek()) {
			p.advance()
		}
	}
	text := charViewOf(p.buf[start:p.pos]).ToString()
	if text == "" || text == "-" || text == "+" {
		return variant.Variant{}, p.errorf("malformed number")
	}
	if !isFloat {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return variant.NewInt(n), nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return variant.Variant{}, p.errorf("malformed number " + strconv.Quote(text))
	}
	return variant.NewFloat(f), nil
}

func isDigitUnit(c uint16) bool { return c >= '0' && c <= '9' }
