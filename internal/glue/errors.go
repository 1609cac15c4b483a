package glue

import "fmt"

// MalformedPatternError is returned when a step annotation does not carry
// a '^'...'$' delimited match pattern.
type MalformedPatternError struct {
	Annotation string
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("glue code is expected to start with '^' and end with '$', examine %q", e.Annotation)
}

// MalformedMethodError is returned when a method declaration does not carry
// a usable parameter definition.
type MalformedMethodError struct {
	Method string
}

func (e *MalformedMethodError) Error() string {
	return fmt.Sprintf("method declaration does not contain a proper parameter definition, examine %q", e.Method)
}
