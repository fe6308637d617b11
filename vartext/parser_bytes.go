package vartext

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/gateboxlab/variant"
	"github.com/gateboxlab/variant/internal/varintern"
	"github.com/gateboxlab/variant/internal/varliteral"
)

// ParseBytes parses data as lenient JSON text in the UTF-8 byte alphabet,
// returning the resulting Variant tree. Each call uses a fresh, unshared
// string-interning cache; use ParseBytesWithCache to share interned
// strings across many parses.
func ParseBytes(data []byte) (variant.Variant, error) {
	c := varintern.NewTemporary()
	defer c.Release()
	return ParseBytesWithCache(data, c)
}

// ParseBytesWithCache parses data using an explicitly supplied
// string-interning cache, letting the caller share interned keys and
// values across many parses via a cache built with varintern.NewShared.
func ParseBytesWithCache(data []byte, cache *varintern.Cache) (v variant.Variant, err error) {
	p := &byteParser{buf: data, line: 1, cache: cache, maxDepth: DefaultMaxDepth}
	// A malformed pooled buffer handed back by the string cache, or any
	// other internal invariant violation, surfaces as a panic rather
	// than corrupting the result; recover it into an ordinary error
	// instead of letting it escape to the caller.
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(p.errorf("internal parser failure"), "recovered panic: %v", r)
		}
	}()
	p.skipBOM()
	p.skipSpaceAndComments()
	v, err = p.parseValue(0)
	if err != nil {
		return variant.Variant{}, err
	}
	p.skipSpaceAndComments()
	if p.pos != len(p.buf) {
		return variant.Variant{}, p.errorf("unexpected trailing data")
	}
	return v, nil
}

type byteParser struct {
	buf      []byte
	pos      int
	line     int
	col      int
	cache    *varintern.Cache
	maxDepth int
}

func (p *byteParser) errorf(msg string) error {
	return newParseError(p.line, p.col, int64(p.pos), msg)
}

func (p *byteParser) eof() bool { return p.pos >= len(p.buf) }

func (p *byteParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.buf[p.pos]
}

func (p *byteParser) peekAt(off int) byte {
	if p.pos+off >= len(p.buf) {
		return 0
	}
	return p.buf[p.pos+off]
}

func (p *byteParser) advance() byte {
	c := p.buf[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
		p.col = 0
	} else {
		p.col++
	}
	return c
}

func (p *byteParser) skipBOM() {
	if len(p.buf) >= 3 && p.buf[0] == 0xEF && p.buf[1] == 0xBB && p.buf[2] == 0xBF {
		p.pos = 3
	}
}

func (p *byteParser) skipSpaceAndComments() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n':
			p.advance()
		case '/':
			if p.peekAt(1) == '/' {
				for !p.eof() && p.peek() != '\n' {
					p.advance()
				}
				continue
			}
			if p.peekAt(1) == '*' {
				p.advance()
				p.advance()
				for !p.eof() && !(p.peek() == '*' && p.peekAt(1) == '/') {
					p.advance()
				}
				if !p.eof() {
					p.advance()
					p.advance()
				}
				continue
			}
			return
		default:
			return
		}
	}
}

func (p *byteParser) parseValue(depth int) (variant.Variant, error) {
	if depth > p.maxDepth {
		return variant.Variant{}, p.errorf("maximum nesting depth exceeded")
	}
	p.skipSpaceAndComments()
	if p.eof() {
		return variant.Variant{}, p.errorf("unexpected end of input")
	}
	switch c := p.peek(); {
	case c == '{':
		return p.parseObject(depth)
	case c == '[':
		return p.parseArray(depth)
	case c == '"' || c == '\'':
		s, err := p.parseQuotedString(c)
		if err != nil {
			return variant.Variant{}, err
		}
		return variant.NewString(s), nil
	case c == '-' && p.peekAt(1) == 'I':
		return p.parseNegInfinity()
	case c == '-' || c == '+' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return p.parseLiteralOrBareword()
	}
}

func (p *byteParser) parseObject(depth int) (variant.Variant, error) {
	p.advance() // '{'
	result := variant.NewObject()
	obj := result.AsObject()
	p.skipSpaceAndComments()
	if p.peek() == '}' {
		p.advance()
		return result, nil
	}
	for {
		p.skipSpaceAndComments()
		key, err := p.parseObjectKey()
		if err != nil {
			return variant.Variant{}, err
		}
		p.skipSpaceAndComments()
		if p.eof() || p.peek() != ':' {
			return variant.Variant{}, p.errorf("expected ':' after object key")
		}
		p.advance()
		val, err := p.parseValue(depth + 1)
		if err != nil {
			return variant.Variant{}, err
		}
		obj.Set(key, val)
		p.skipSpaceAndComments()
		switch {
		case p.eof():
			return variant.Variant{}, p.errorf("unterminated object")
		case p.peek() == ',':
			p.advance()
			p.skipSpaceAndComments()
			if p.peek() == '}' { // trailing comma
				p.advance()
				return result, nil
			}
		case p.peek() == '}':
			p.advance()
			return result, nil
		default:
			return variant.Variant{}, p.errorf("expected ',' or '}' in object")
		}
	}
}

func (p *byteParser) parseObjectKey() (string, error) {
	if p.eof() {
		return "", p.errorf("expected an object key")
	}
	if c := p.peek(); c == '"' || c == '\'' {
		return p.parseQuotedString(c)
	}
	start := p.pos
	for !p.eof() && isBarewordByte(p.peek()) {
		p.advance()
	}
	if p.pos == start {
		return "", p.errorf("expected an object key")
	}
	return p.cache.GetBytes(viewOf(p.buf[start:p.pos])), nil
}

// isBarewordByte reports whether c may appear in an unquoted object key or
// a bare literal token (null/true/false/NaN/Infinity/-Infinity): ASCII
// letters, digits, and + - . _ per the lenient grammar's unquoted-key
// rule.
func isBarewordByte(c byte) bool {
	return c == '_' || c == '+' || c == '-' || c == '.' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (p *byteParser) parseArray(depth int) (variant.Variant, error) {
	p.advance() // '['
	result := variant.NewArray()
	arr := result.AsArray()
	p.skipSpaceAndComments()
	if p.peek() == ']' {
		p.advance()
		return result, nil
	}
	for {
		val, err := p.parseValue(depth + 1)
		if err != nil {
			return variant.Variant{}, err
		}
		arr.Add(val)
		p.skipSpaceAndComments()
		switch {
		case p.eof():
			return variant.Variant{}, p.errorf("unterminated array")
		case p.peek() == ',':
			p.advance()
			p.skipSpaceAndComments()
			if p.peek() == ']' { // trailing comma
				p.advance()
				return result, nil
			}
		case p.peek() == ']':
			p.advance()
			return result, nil
		default:
			return variant.Variant{}, p.errorf("expected ',' or ']' in array")
		}
	}
}

// parseNegInfinity handles the "-Infinity" literal, which parseValue
// would otherwise misroute into parseNumber (a lone leading '-' with no
// digits after it is a malformed number, not a bareword).
func (p *byteParser) parseNegInfinity() (variant.Variant, error) {
	start := p.pos
	p.advance() // '-'
	for !p.eof() && isBarewordByte(p.peek()) {
		p.advance()
	}
	word := p.buf[start:p.pos]
	lit, ok := varliteral.Lookup(word)
	if !ok || lit != varliteral.NegInfinity {
		return variant.Variant{}, p.errorf("unrecognized token " + strconv.Quote(string(word)))
	}
	return variant.NewFloat(inf(-1)), nil
}

func (p *byteParser) parseLiteralOrBareword() (variant.Variant, error) {
	start := p.pos
	for !p.eof() && isBarewordByte(p.peek()) {
		p.advance()
	}
	if p.pos == start {
		return variant.Variant{}, p.errorf("unexpected character")
	}
	word := p.buf[start:p.pos]
	lit, ok := varliteral.Lookup(word)
	if !ok {
		return variant.Variant{}, p.errorf("unrecognized token " + strconv.Quote(string(word)))
	}
	switch lit {
	case varliteral.Null:
		return variant.NewNull(), nil
	case varliteral.True:
		return variant.NewBool(true), nil
	case varliteral.False:
		return variant.NewBool(false), nil
	case varliteral.NaN:
		return variant.NewFloat(nan()), nil
	case varliteral.PosInfinity:
		return variant.NewFloat(inf(1)), nil
	case varliteral.NegInfinity:
		return variant.NewFloat(inf(-1)), nil
	default:
		return variant.Variant{}, p.errorf("unrecognized literal")
	}
}
