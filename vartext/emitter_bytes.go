package vartext

import (
	"math"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/gateboxlab/variant"
)

// EmitBytes renders v as JSON text in the UTF-8 byte alphabet according
// to policy.
func EmitBytes(v variant.Variant, policy FormatPolicy) ([]byte, error) {
	pb := getEmitBuffer()
	e := &byteEmitter{policy: policy, buf: pb.buf}
	if err := e.emitValue(v, 0); err != nil {
		pb.buf = e.buf
		putEmitBuffer(pb, len(e.buf))
		return nil, err
	}
	out := make([]byte, len(e.buf))
	copy(out, e.buf)
	pb.buf = e.buf
	putEmitBuffer(pb, len(e.buf))
	return out, nil
}

// EmitString is a convenience wrapper returning EmitBytes' result as a
// string.
func EmitString(v variant.Variant, policy FormatPolicy) (string, error) {
	b, err := EmitBytes(v, policy)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type byteEmitter struct {
	policy FormatPolicy
	buf    []byte
}

func (e *byteEmitter) writeIndent(level int) {
	e.buf = append(e.buf, '\n')
	for i := 0; i < level; i++ {
		e.buf = append(e.buf, e.policy.Indent...)
	}
}

func (e *byteEmitter) emitValue(v variant.Variant, depth int) error {
	if depth > e.policy.maxDepth() {
		if e.policy.Logger != nil {
			e.policy.Logger.Debugf("vartext: depth guard tripped at %d", depth)
		}
		return newFormatError(depth, "maximum nesting depth exceeded")
	}
	switch v.Kind() {
	case variant.Null:
		e.buf = append(e.buf, "null"...)
	case variant.Boolean:
		if v.AsBool() {
			e.buf = append(e.buf, "true"...)
		} else {
			e.buf = append(e.buf, "false"...)
		}
	case variant.Integer:
		e.buf = strconv.AppendInt(e.buf, v.AsLong(), 10)
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

func (e *byteEmitter) emitFloat(f float64, depth int) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		switch e.policy.SpecialFloat {
		case SpecialFloatThrow:
			return newFormatError(depth, "non-finite float under SpecialFloatThrow")
		case SpecialFloatAsJSLiteral:
			switch {
			case math.IsNaN(f):
				e.buf = append(e.buf, "NaN"...)
			case f > 0:
				e.buf = append(e.buf, "Infinity"...)
			default:
				e.buf = append(e.buf, "-Infinity"...)
			}
			return nil
		default: // SpecialFloatAsString
			e.emitString(strconv.FormatFloat(f, 'g', -1, 64))
			return nil
		}
	}
	e.buf = strconv.AppendFloat(e.buf, f, 'g', -1, 64)
	return nil
}

func (e *byteEmitter) emitString(s string) {
	e.buf = append(e.buf, '"')
	for _, r := range s {
		switch {
		case r == '"':
			e.buf = append(e.buf, `\"`...)
		case r == '\\':
			e.buf = append(e.buf, `\\`...)
		case r == '\n':
			e.buf = append(e.buf, `\n`...)
		case r == '\r':
			e.buf = append(e.buf, `\r`...)
		case r == '\t':
			e.buf = append(e.buf, `\t`...)
		case r < 0x20:
			e.buf = append(e.buf, `\u`...)
			e.buf = appendHex4(e.buf, uint16(r))
		case r < 0x80:
			e.buf = append(e.buf, byte(r))
		case !e.policy.EscapeUnicode:
			var tmp [utf8.UTFMax]byte
			n := utf8.EncodeRune(tmp[:], r)
			e.buf = append(e.buf, tmp[:n]...)
		case r <= 0xFFFF:
			e.buf = append(e.buf, `\u`...)
			e.buf = appendHex4(e.buf, uint16(r))
		default:
			hi, lo := utf16.EncodeRune(r)
			e.buf = append(e.buf, `\u`...)
			e.buf = appendHex4(e.buf, uint16(hi))
			e.buf = append(e.buf, `\u`...)
			e.buf = appendHex4(e.buf, uint16(lo))
		}
	}
	e.buf = append(e.buf, '"')
}

const hexDigits = "0123456789abcdef"

func appendHex4(buf []byte, v uint16) []byte {
	return append(buf, hexDigits[(v>>12)&0xF], hexDigits[(v>>8)&0xF], hexDigits[(v>>4)&0xF], hexDigits[v&0xF])
}

func (e *byteEmitter) emitArray(arr variant.Array, depth int) error {
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

func (e *byteEmitter) emitObject(obj variant.Object, depth int) error {
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

// breaksChildren decides whether a container's members are each placed on
// their own (indented) line. notSimple is the container's own !IsSimple():
// under ReturnSimple, a container whose IsSimple predicate holds stays
// inline regardless of the regime that would otherwise apply.
func (p FormatPolicy) breaksChildren(empty, notSimple bool) bool {
	switch p.Return {
	case ReturnEvery:
		return true
	case ReturnExceptEmpty:
		return !empty
	case ReturnSimple:
		return !empty && notSimple
	default: // ReturnNever
		return false
	}
}
