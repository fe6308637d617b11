package vartext

import (
	"strconv"

	"github.com/gateboxlab/variant"
)

func (p *byteParser) parseNumber() (variant.Variant, error) {
	start := p.pos
	isFloat := false

	if p.peek() == '-' || p.peek() == '+' {
		p.advance()
	}
	for !p.eof() && isDigit(p.peek()) {
		p.advance()
	}
	if p.peek() == '.' {
		isFloat = true
		p.advance()
		for !p.eof() && isDigit(p.peek()) {
			p.advance()
		}
	}
	if p.peek() == 'e' || p.peek() == 'E' {
		isFloat = true
		p.advance()
		if p.peek() == '+' || p.peek() == '-' {
			p.advance()
		}
		for !p.eof() && isDigit(p.peek()) {
			p.advance()
		}
	}
	text := string(p.buf[start:p.pos])
	if text == "" || text == "-" || text == "+" {
		return variant.Variant{}, p.errorf("malformed number")
	}
	if !isFloat {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return variant.NewInt(n), nil
		}
		// overflows int64: fall through to float, matching the
		// leniency the rest of the parser extends to oversized input.
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return variant.Variant{}, p.errorf("malformed number " + strconv.Quote(text))
	}
	return variant.NewFloat(f), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
