package Models

// ErrorKind discriminates the failure stages of one send request.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindCredentialsMissing
	KindRelayFailure
	KindPersistence
)

// RequestError carries a failure kind together with the underlying cause
// text. The detail string is passed through untouched so callers can
// surface it verbatim.
type RequestError struct {
	Kind   ErrorKind
	Detail string
}

func (e *RequestError) Error() string {
	return e.Detail
}

func NewRequestError(kind ErrorKind, detail string) *RequestError {
	return &RequestError{Kind: kind, Detail: detail}
}
