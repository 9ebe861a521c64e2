package application

// ErrorKind tags every domain failure so the HTTP boundary can match
// exhaustively and pick a status without inspecting message strings.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindDuplicateEmail
	KindVerification
	KindEmailNotRegistered
	KindWrongPassword
	KindEmailNotVerified
	KindBadToken
	KindUnknownToken
	KindDuplicateTitle
	KindNotFound
)

// Error is the tagged failure returned by all services.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// User-facing failures, worded as the product always has.
var (
	ErrNameLength         = newError(KindValidation, "Name must have 6-40 characters.")
	ErrNameCharset        = newError(KindValidation, "Name must contain only letters and spaces.")
	ErrPasswordsMismatch  = newError(KindValidation, "Passwords do not match!")
	ErrPasswordLength     = newError(KindValidation, "Password must be 6-30 characters long.")
	ErrEmailInUse         = newError(KindDuplicateEmail, "This email is already in use! You must sign in with your password to use TodoLists.")
	ErrCodeWrongOrExpired = newError(KindVerification, "The code entered is either wrong or expired.")
	ErrEmailNotRegistered = newError(KindEmailNotRegistered, "The email entered is not registered.")
	ErrWrongPassword      = newError(KindWrongPassword, "The password entered is wrong!")
	ErrEmailNotVerified   = newError(KindEmailNotVerified, "Your email was not verified.")
	ErrBadToken           = newError(KindBadToken, "Bad token.")
	ErrUnknownToken       = newError(KindUnknownToken, "Wrong/expired token.")
	ErrDuplicateTitle     = newError(KindDuplicateTitle, "You cannot create another TodoList with this title.")
	ErrListNotFound       = newError(KindNotFound, "TodoList not found.")
	ErrTaskNotFound       = newError(KindNotFound, "Task not found.")
)
