package vartext

import (
	"math"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/gateboxlab/variant/internal/varview"
)

func viewOf(b []byte) varview.ByteView { return varview.NewByteView(b) }

func nan() float64   { return math.NaN() }
func inf(sign int) float64 { return math.Inf(sign) }

// parseQuotedString consumes a quoted string starting at the current
// position (the opening quote must equal quoteChar, ' or ") and returns
// its decoded value. The fast path, when no escape appears, interns
// directly off the source bytes (the other quote character is an ordinary
// character here); any escape falls back to a decode-into-scratch-buffer
// path.
func (p *byteParser) parseQuotedString(quoteChar byte) (string, error) {
	p.advance() // opening quote
	start := p.pos
	for {
		if p.eof() {
			return "", p.errorf("unterminated string")
		}
		c := p.peek()
		if c == quoteChar {
			s := p.cache.GetBytes(viewOf(p.buf[start:p.pos]))
			p.advance() // closing quote
			return s, nil
		}
		if c == '\\' {
			return p.parseEscapedString(quoteChar, start)
		}
		p.advance()
	}
}

// parseEscapedString is reached once an escape sequence is found inside a
// string that started at bufStart; it decodes the whole string into a
// scratch buffer rather than interning the raw source bytes.
func (p *byteParser) parseEscapedString(quoteChar byte, bufStart int) (string, error) {
	var out []byte
	out = append(out, p.buf[bufStart:p.pos]...)
	for {
		if p.eof() {
			return "", p.errorf("unterminated string")
		}
		c := p.peek()
		if c == quoteChar {
			p.advance()
			return string(out), nil
		}
		if c != '\\' {
			start := p.pos
			for !p.eof() && p.peek() != quoteChar && p.peek() != '\\' {
				p.advance()
			}
			out = append(out, p.buf[start:p.pos]...)
			continue
		}
		p.advance() // consume backslash
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
			// backslash-newline line continuation: emit nothing.
		case '\r':
			if p.peek() == '\n' {
				p.advance()
			}
		case 'u':
			r, err := p.decodeEscapedUnit()
			if err != nil {
				return "", err
			}
			if utf16.IsSurrogate(r) {
				if p.peek() == '\\' && p.peekAt(1) == 'u' {
					save := p.pos
					p.advance()
					p.advance()
					r2, err := p.decodeEscapedUnit()
					if err == nil {
						if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
							out = appendRune(out, combined)
							continue
						}
					}
					p.pos = save
				}
				out = appendRune(out, utf8.RuneError)
				continue
			}
			out = appendRune(out, r)
		default:
			// Lenient grammar: any escape not recognized above decodes to
			// the escaped character itself, not an error.
			out = append(out, esc)
		}
	}
}

func appendRune(out []byte, r rune) []byte {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	return append(out, tmp[:n]...)
}

func (p *byteParser) decodeEscapedUnit() (rune, error) {
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
	return rune(v), nil
}
