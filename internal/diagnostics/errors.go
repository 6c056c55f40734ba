// Package diagnostics holds the error taxonomy shared by the kernel and its
// drivers, together with source locations and the console renderer.
package diagnostics

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrorKind is one of the closed set of failure kinds below.
type ErrorKind interface {
	// Name is the kind as printed before the message, e.g. "NoBinding".
	Name() string
	Message() string
}

type FileOpenFailure struct {
	Filename string
	Err      error
}

type FileReadFailure struct {
	Filename string
	Line     int
	Err      error
}

type UnexpectedToken struct {
	Found    string
	Expected []string
}

type NoBinding struct {
	Ident string
}

type BindingExists struct {
	Ident string
}

type ITypeMismatch struct {
	Found    string
	Expected string
}

type MTypeMismatch struct {
	Found    string
	Expected string
}

type UnboundImplication struct{}

type UnboundTheorem struct{}

func (FileOpenFailure) Name() string    { return "FileOpenFailure" }
func (FileReadFailure) Name() string    { return "FileReadFailure" }
func (UnexpectedToken) Name() string    { return "UnexpectedToken" }
func (NoBinding) Name() string          { return "NoBinding" }
func (BindingExists) Name() string      { return "BindingExists" }
func (ITypeMismatch) Name() string      { return "ITypeMismatch" }
func (MTypeMismatch) Name() string      { return "MTypeMismatch" }
func (UnboundImplication) Name() string { return "UnboundImplication" }
func (UnboundTheorem) Name() string     { return "UnboundTheorem" }

func (k FileOpenFailure) Message() string {
	return fmt.Sprintf("could not open source file \"%s\" because of error `%s`", k.Filename, ioClass(k.Err))
}

func (k FileReadFailure) Message() string {
	return fmt.Sprintf("could not read source file \"%s\" at line %d because of error `%s`", k.Filename, k.Line, ioClass(k.Err))
}

func (k UnexpectedToken) Message() string {
	quoted := make([]string, len(k.Expected))
	for i, e := range k.Expected {
		quoted[i] = fmt.Sprintf("%q", e)
	}
	return fmt.Sprintf("found token \"%s\", expected one of [%s]", k.Found, strings.Join(quoted, ", "))
}

func (k NoBinding) Message() string {
	return fmt.Sprintf("no binding found for `%s`", k.Ident)
}

func (k BindingExists) Message() string {
	return fmt.Sprintf("duplicate binding of `%s`", k.Ident)
}

func (k ITypeMismatch) Message() string {
	return fmt.Sprintf("found type `%s`, expected type `%s`", k.Found, k.Expected)
}

func (k MTypeMismatch) Message() string {
	return fmt.Sprintf("found metalogical type `%s`, expected metalogical type `%s`", k.Found, k.Expected)
}

func (UnboundImplication) Message() string { return "implication between non-nullary formulae" }

func (UnboundTheorem) Message() string { return "axiom/theorem accepts logical arguments" }

// ioClass names the OS error category the way the console reports it.
func ioClass(err error) string {
	switch {
	case err == nil:
		return "Other"
	case errors.Is(err, fs.ErrNotExist):
		return "NotFound"
	case errors.Is(err, fs.ErrPermission):
		return "PermissionDenied"
	case errors.Is(err, fs.ErrExist):
		return "AlreadyExists"
	case errors.Is(err, fs.ErrInvalid):
		return "InvalidInput"
	default:
		return "Other"
	}
}

// Error is a located failure. It is always returned, never panicked.
type Error struct {
	Kind     ErrorKind
	Location FileLocation
}

func New(kind ErrorKind, loc FileLocation) *Error {
	return &Error{Kind: kind, Location: loc}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s : %s", e.Location, e.Kind.Name(), e.Kind.Message())
}

// Unwrap exposes the OS error behind I/O failures.
func (e *Error) Unwrap() error {
	switch k := e.Kind.(type) {
	case FileOpenFailure:
		return k.Err
	case FileReadFailure:
		return k.Err
	}
	return nil
}

// KindName returns the kind name of err if it is (or wraps) an *Error.
func KindName(err error) string {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Kind.Name()
	}
	return ""
}
