/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both internally
within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrValidationFailed indicates that one or more request fields failed schema validation.
	// Errors of this kind carry field-level details.
	ErrValidationFailed = 1005

	// ErrMissingFields indicates that one or more required request fields were absent.
	ErrMissingFields = 1006
)

// 2xxx: Account Business Logic Errors
const (
	// ErrEmailTaken indicates that the email address is already registered.
	ErrEmailTaken = 2001

	// ErrUserNotFound indicates that the targeted account does not exist.
	ErrUserNotFound = 2002

	// ErrNoUsersFound indicates that the all-users listing matched no accounts.
	ErrNoUsersFound = 2003

	// ErrNoUpdateFields indicates that a profile update supplied no updatable fields.
	ErrNoUpdateFields = 2004

	// ErrMissingTargetID indicates that an operation requiring a target account id received none.
	ErrMissingTargetID = 2005

	// ErrWeakPassword indicates that the supplied password does not meet the strength policy.
	ErrWeakPassword = 2006
)

// 3xxx: Authentication and Session Errors
const (
	// ErrUnauthenticated indicates a missing, malformed, or badly signed session token.
	ErrUnauthenticated = 3001

	// ErrTokenExpired indicates a well-formed session token past its validity window.
	ErrTokenExpired = 3002

	// ErrForbidden indicates a verified identity whose role does not permit the action.
	ErrForbidden = 3003

	// ErrInvalidCredentials indicates a login attempt with a wrong password.
	ErrInvalidCredentials = 3004

	// ErrNotLoggedIn indicates a logout attempt without an active session cookie.
	ErrNotLoggedIn = 3005
)

// 4xxx: Avatar Storage Errors
const (
	// ErrAvatarTypeInvalid indicates an avatar upload request for a non-image MIME type.
	ErrAvatarTypeInvalid = 4001

	// ErrAvatarTooLarge indicates an avatar upload request exceeding the size cap.
	ErrAvatarTooLarge = 4002

	// ErrStorageFailed indicates that the avatar storage backend rejected the operation
	// or is not configured.
	ErrStorageFailed = 4003
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
