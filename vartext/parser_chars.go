package vartext

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/gateboxlab/variant"
	"github.com/gateboxlab/variant/internal/varintern"
	"github.com/gateboxlab/variant/internal/varliteral"
)

// ParseChars parses units as lenient JSON text in the UTF-16 char
// alphabet, returning the resulting Variant tree. This is the parser's
// other concrete alphabet implementation; see ParseBytes for the UTF-8
// byte alphabet.
func ParseChars(units []uint16) (variant.Variant, error) {
	c := varintern.NewTemporary()
	defer c.Release()
	return ParseCharsWithCache(units, c)
}

// ParseCharsWithCache is the ParseChars analogue of ParseBytesWithCache.
func ParseCharsWithCache(units []uint16, cache *varintern.Cache) (v variant.Variant, err error) {
	p := &charParser{buf: units, line: 1, cache: cache, maxDepth: DefaultMaxDepth}
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

type charParser struct {
	buf      []uint16
	pos      int
	line     int
	col      int
	cache    *varintern.Cache
	maxDepth int
}

func (p *charParser) errorf(msg string) error {
	return newParseError(p.line, p.col, int64(p.pos), msg)
}

func (p *charParser) eof() bool { return p.pos >= len(p.buf) }

func (p *charParser) peek() uint16 {
	if p.eof() {
		return 0
	}
	return p.buf[p.pos]
}

func (p *charParser) peekAt(off int) uint16 {
	if p.pos+off >= len(p.buf) {
		return 0
	}
	return p.buf[p.pos+off]
}

func (p *charParser) advance() uint16 {
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

func (p *charParser) skipBOM() {
	if len(p.buf) >= 1 && p.buf[0] == 0xFEFF {
		p.pos = 1
	}
}

func (p *charParser) skipSpaceAndComments() {
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

func (p *charParser) parseValue(depth int) (variant.Variant, error) {
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

func (p *charParser) parseObject(depth int) (variant.Variant, error) {
	p.advance()
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
			if p.peek() == '}' {
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

func (p *charParser) parseObjectKey() (string, error) {
	if p.eof() {
		return "", p.errorf("expected an object key")
	}
	if c := p.peek(); c == '"' || c == '\'' {
		return p.parseQuotedString(c)
	}
	start := p.pos
	for !p.eof() && isBarewordUnit(p.peek()) {
		p.advance()
	}
	if p.pos == start {
		return "", p.errorf("expected an object key")
	}
	return p.cache.GetChars(charViewOf(p.buf[start:p.pos])), nil
}

// isBarewordUnit is the char-alphabet analogue of isBarewordByte.
func isBarewordUnit(c uint16) bool {
	return c == '_' || c == '+' || c == '-' || c == '.' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (p *charParser) parseArray(depth int) (variant.Variant, error) {
	p.advance()
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
			if p.peek() == ']' {
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

// parseNegInfinity handles the "-Infinity" literal; see the byte parser's
// parseNegInfinity for why parseValue cannot simply fall through to
// parseNumber for a leading '-'.
func (p *charParser) parseNegInfinity() (variant.Variant, error) {
	start := p.pos
	p.advance() // '-'
	for !p.eof() && isBarewordUnit(p.peek()) {
		p.advance()
	}
	word := p.buf[start:p.pos]
	lit, ok := varliteral.LookupChars(word)
	if !ok || lit != varliteral.NegInfinity {
		return variant.Variant{}, p.errorf("unrecognized token " + strconv.Quote(charViewOf(word).ToString()))
	}
	return variant.NewFloat(inf(-1)), nil
}

func (p *charParser) parseLiteralOrBareword() (variant.Variant, error) {
	start := p.pos
	for !p.eof() && isBarewordUnit(p.peek()) {
		p.advance()
	}
	if p.pos == start {
		return variant.Variant{}, p.errorf("unexpected character")
	}
	word := p.buf[start:p.pos]
	lit, ok := varliteral.LookupChars(word)
	if !ok {
		return variant.Variant{}, p.errorf("unrecognized token " + strconv.Quote(charViewOf(word).ToString()))
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
