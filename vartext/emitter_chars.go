package vartext

import (
	"math"
	"strconv"
	"unicode/utf16"

	"github.com/gateboxlab/variant"
)

// EmitChars renders v as JSON text in the UTF-16 char alphabet according
// to policy. This is the emitter's other concrete alphabet
// implementation; see EmitBytes for the UTF-8 byte alphabet.
func EmitChars(v variant.Variant, policy FormatPolicy) ([]uint16, error) {
	e := &charEmitter{policy: policy}
	if err := e.emitValue(v, 0); err != nil {
		return nil, err
	}
	out := make([]uint16, len(e.buf))
	copy(out, e.buf)
	return out, nil
}

type charEmitter struct {
	policy FormatPolicy
	buf    []uint16
}

func (e *charEmitter) writeString(s string) {
	for i := 0; i < len(s); i++ {
		e.buf = append(e.buf, uint16(s[i]))
	}
}

func (e *charEmitter) writeIndent(level int) {
	e.buf = append(e.buf, '\n')
	for i := 0; i < level; i++ {
		e.writeString(e.policy.Indent)
	}
}

func (e *charEmitter) emitValue(v variant.Variant, depth int) error {
	if depth > e.policy.maxDepth() {
		if e.policy.Logger != nil {
			e.policy.Logger.Debugf("vartext: depth guard tripped at %d", depth)
		}
		return newFormatError(depth, "maximum nesting depth exceeded")
	}
	switch v.Kind() {
	case variant.Null:
		e.writeString("null")
	case variant.Boolean:
		if v.AsBool() {
			e.writeString("true")
		} else {
			e.writeString("false")
		}
	case variant.Integer:
		e.writeString(strconv.FormatInt(v.AsLong(), 10))
	case variant.Float:
		return e.emitFloat(v.AsDouble(), depth)
	case variant.String:
		e.emitString(v.AsString())
	case variant.ArrayKind:
		return e.emitArray(v.AsArray(), depth)
	case variant.ObjectKind:
		return e.emitObject(v.AsObject(), depth)
	}
	return nil
}

func (e *charEmitter) emitFloat(f float64, depth int) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		switch e.policy.SpecialFloat {
		case SpecialFloatThrow:
			return newFormatError(depth, "non-finite float under SpecialFloatThrow")
		case SpecialFloatAsJSLiteral:
			switch {
			case math.IsNaN(f):
				e.writeString("NaN")
			case f > 0:
				e.writeString("Infinity")
			default:
				e.writeString("-Infinity")
			}
			return nil
		default:
			e.emitString(strconv.FormatFloat(f, 'g', -1, 64))
			return nil
		}
	}
	e.writeString(strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}

func (e *charEmitter) emitString(s string) {
	e.buf = append(e.buf, '"')
	for _, r := range s {
		switch {
		case r == '"':
			e.writeString(`\"`)
		case r == '\\':
			e.writeString(`\\`)
		case r == '\n':
			e.writeString(`\n`)
		case r == '\r':
			e.writeString(`\r`)
		case r == '\t':
			e.writeString(`\t`)
		case r < 0x20:
			e.appendUnicodeEscape(uint16(r))
		case r < 0x80:
			e.buf = append(e.buf, uint16(r))
		case !e.policy.EscapeUnicode:
			if r <= 0xFFFF {
				e.buf = append(e.buf, uint16(r))
			} else {
				hi, lo := utf16.EncodeRune(r)
				e.buf = append(e.buf, uint16(hi), uint16(lo))
			}
		case r <= 0xFFFF:
			e.appendUnicodeEscape(uint16(r))
		default:
			hi, lo := utf16.EncodeRune(r)
			e.appendUnicodeEscape(uint16(hi))
			e.appendUnicodeEscape(uint16(lo))
		}
	}
	e.buf = append(e.buf, '"')
}

func (e *charEmitter) appendUnicodeEscape(v uint16) {
	e.writeString(`\u`)
	e.writeString(string(hexDigits[(v>>12)&0xF]) + string(hexDigits[(v>>8)&0xF]) + string(hexDigits[(v>>4)&0xF]) + string(hexDigits[v&0xF]))
}

func (e *charEmitter) emitArray(arr variant.Array, depth int) error {
	n := arr.Count()
	breaks := e.policy.breaksChildren(n == 0, !arr.IsSimple())
	e.buf = append(e.buf, '[')
	for i := 0; i < n; i++ {
		if i > 0 {
			e.buf = append(e.buf, ',')
			if !breaks {
				e.buf = append(e.buf, ' ')
			}
		}
		if breaks {
			e.writeIndent(depth + 1)
		}
		if err := e.emitValue(arr.Get(i), depth+1); err != nil {
			return err
		}
	}
	if breaks && n > 0 {
		e.writeIndent(depth)
	}
	e.buf = append(e.buf, ']')
	return nil
}

func (e *charEmitter) emitObject(obj variant.Object, depth int) error {
	keys := obj.Keys()
	breaks := e.policy.breaksChildren(len(keys) == 0, !obj.IsSimple())
	e.buf = append(e.buf, '{')
	for i, k := range keys {
		if i > 0 {
			e.buf = append(e.buf, ',')
			if !breaks {
				e.buf = append(e.buf, ' ')
			}
		}
		if breaks {
			e.writeIndent(depth + 1)
		}
		e.emitString(k)
		e.buf = append(e.buf, ':', ' ')
		if err := e.emitValue(obj.Get(k), depth+1); err != nil {
			return err
		}
	}
	if breaks && len(keys) > 0 {
		e.writeIndent(depth)
	}
	e.buf = append(e.buf, '}')
	return nil
}
