package entity

// Kind classifies a domain failure so the transport layer can pick a status code.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
	KindUpstream
)

// Error is a domain failure whose Msg is safe to show to clients.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func newError(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

var (
	ErrMissingToken = newError(KindAuth, "No token, authorization denied")
	ErrInvalidToken = newError(KindAuth, "Token is not valid")

	ErrUserExists         = newError(KindValidation, "User already exists")
	ErrInvalidCredentials = newError(KindValidation, "Invalid Credentials")
	ErrUserNotFound       = newError(KindNotFound, "User not found")

	ErrNotAuthorized          = newError(KindForbidden, "User not authorized")
	ErrPostDeleteForbidden    = newError(KindForbidden, "Authorization Failed")
	ErrCommentDeleteForbidden = newError(KindForbidden, "Not Authorized")

	ErrProfileNotFound    = newError(KindNotFound, "There is no profile for this user")
	ErrExperienceNotFound = newError(KindNotFound, "Experience not found")
	ErrEducationNotFound  = newError(KindNotFound, "Education not found")

	ErrPostNotFound     = newError(KindNotFound, "Post not found")
	ErrCommentNotFound  = newError(KindNotFound, "Comment is not exist")
	ErrPostAlreadyLiked = newError(KindConflict, "Post Already like")
	ErrPostNotLiked     = newError(KindConflict, "Post has not yet been liked")

	ErrGithubNotFound = newError(KindUpstream, "No Github profile found")
)
