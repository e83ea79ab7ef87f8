package services

import "errors"

// Kind classifies a service failure so the HTTP layer can pick a status
// without inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindBadRequest
)

// Error is the typed error returned by every service operation that fails a
// guard clause. Infrastructure failures are wrapped with KindInternal so
// callers can tell them apart from business-rule rejections.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "erro interno"
}

func (e *Error) Unwrap() error { return e.Err }

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Erro interno do servidor.", Err: err}
}

// KindOf reports the kind of a service error, or KindInternal for anything
// that did not come out of this package.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}
