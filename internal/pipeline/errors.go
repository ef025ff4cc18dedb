package pipeline

import "fmt"

// SourceReadError covers a source file that is missing, unreadable, or not
// valid JSON at all. No output is written when it occurs.
type SourceReadError struct {
	Path string
	Err  error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("read source %s: %v", e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }

// SourceSchemaError covers structurally valid JSON whose shape does not match
// the vocabulary source: wrong top-level type, or a field of the wrong type.
// Null or absent values in the null-tolerant text fields never raise it.
type SourceSchemaError struct {
	Path string
	Err  error
}

func (e *SourceSchemaError) Error() string {
	return fmt.Sprintf("source schema %s: %v", e.Path, e.Err)
}

func (e *SourceSchemaError) Unwrap() error { return e.Err }

// DestinationWriteError covers failures to create or write the destination
// file. A partially written destination is left as-is.
type DestinationWriteError struct {
	Path string
	Err  error
}

func (e *DestinationWriteError) Error() string {
	return fmt.Sprintf("write destination %s: %v", e.Path, e.Err)
}

func (e *DestinationWriteError) Unwrap() error { return e.Err }
