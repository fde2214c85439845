package argv

import "strings"

// ErrorKind categorizes parse and configuration failures.
// The kind drives suggestion generation and lets embedders map
// failures to exit codes or user-facing messages.
type ErrorKind string

const (
	ErrUnrecognizedArgument      ErrorKind = "unrecognized_argument"
	ErrMissingRequiredOption     ErrorKind = "missing_required_option"
	ErrMissingRequiredPositional ErrorKind = "missing_required_positional"
	ErrAmbiguousOption           ErrorKind = "ambiguous_option"
	ErrInvalidOptionValue        ErrorKind = "invalid_option_value"
	ErrMissingOptionValue        ErrorKind = "missing_option_value"
	ErrResponseFileNotFound      ErrorKind = "response_file_not_found"
	ErrInvalidConfiguration      ErrorKind = "invalid_configuration"
)

// ParseError is the structured failure returned by the parser and by
// configuration validation. Token carries the offending argument verbatim;
// Suggestions is populated only when the configuration enables it and the
// kind is suggestion-worthy.
type ParseError struct {
	Kind        ErrorKind
	Token       string
	Message     string
	Suggestions []string
	Command     *Command // active command when the error occurred
	cause       error
}

func (e *ParseError) Error() string {
	if len(e.Suggestions) == 0 {
		return e.Message
	}
	var b strings.Builder
	b.WriteString(e.Message)
	b.WriteString(" (did you mean ")
	for i, s := range e.Suggestions {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("'")
		b.WriteString(s)
		b.WriteString("'")
	}
	b.WriteString("?)")
	return b.String()
}

// Unwrap exposes the underlying cause, if any (IO errors from response
// file reads, value parser rejections).
func (e *ParseError) Unwrap() error {
	return e.cause
}

// newParseError creates a ParseError with the given kind and message.
func newParseError(kind ErrorKind, message string) *ParseError {
	return &ParseError{Kind: kind, Message: message}
}

func (e *ParseError) withToken(token string) *ParseError {
	e.Token = token
	return e
}

func (e *ParseError) withCause(err error) *ParseError {
	e.cause = err
	return e
}

func (e *ParseError) withCommand(cmd *Command) *ParseError {
	e.Command = cmd
	return e
}
