package errors

// MissingField reports that a required metadata field is absent.
func MissingField(name string) *Error {
	return New(ErrCodeMissingField, "missing field: %s", name)
}

// MalformedNumber reports that a metadata field could not be parsed as a number.
func MalformedNumber(name string, cause error) *Error {
	return Wrap(ErrCodeMalformedNumber, cause, "malformed number in field %s", name)
}

// MalformedHandedness reports an unrecognised handedness token.
func MalformedHandedness(token string) *Error {
	return New(ErrCodeMalformedHandedness, "malformed handedness %q (must be 'right' or 'left')", token)
}

// NoMetadata reports that a document carries no fretboard description.
func NoMetadata() *Error {
	return New(ErrCodeNoMetadata, "document contains no fretboard metadata")
}
