package variant

// sentinel is the concrete type behind the package's category sentinel
// error. Every typed error this module defines (ParseError, FormatError,
// ConversionError, in the vartext and varconv packages) implements Is so
// that errors.Is(err, variant.Error) reports true regardless of which
// concrete type actually fired.
type sentinel string

func (s sentinel) Error() string { return string(s) }

// Error is the sentinel that every error type defined across this module
// is comparable against via errors.Is, independent of which package or
// concrete type produced it.
const Error = sentinel("variant: error")
