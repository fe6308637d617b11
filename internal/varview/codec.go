package varview

import "unicode/utf16"

// encodeUTF16 encodes a Go (UTF-8) string as UTF-16 code units.
func encodeUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// decodeUTF16 decodes UTF-16 code units into a Go (UTF-8) string.
func decodeUTF16(u []uint16) string {
	return string(utf16.Decode(u))
}
