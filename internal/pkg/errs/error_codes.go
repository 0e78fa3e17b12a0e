/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
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

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1005

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1006
)

// 2xxx: Profile and Social Graph Errors
const (
	// ErrProfileNotFound indicates that the requested player profile does not exist.
	ErrProfileNotFound = 2101

	// ErrNoUserInformation indicates that neither a route identity nor a signed-in
	// user was available to resolve a profile.
	ErrNoUserInformation = 2102

	// ErrSkillNotFound indicates that the endorsed skill is not part of the profile.
	ErrSkillNotFound = 2201

	// ErrRecommendationNotFound indicates that the liked recommendation does not exist.
	ErrRecommendationNotFound = 2202

	// ErrSelfConnection indicates an attempt to connect a player with themselves.
	ErrSelfConnection = 2301
)

// 3xxx: Account, Session, and Security Errors
const (
	// ErrAlreadyLoggedIn indicates that the caller already holds a valid identity token.
	ErrAlreadyLoggedIn = 3001

	// ErrInvalidCredentials indicates that no account matches the supplied email/username pair.
	ErrInvalidCredentials = 3002

	// ErrEmailInUse indicates that the signup email is already registered.
	ErrEmailInUse = 3003

	// ErrUsernameTaken indicates that the requested username collides with an existing account.
	ErrUsernameTaken = 3004

	// ErrInvalidUsername indicates that the requested username fails format validation.
	ErrInvalidUsername = 3005

	// ErrInvalidPassword indicates that the supplied password fails length validation.
	ErrInvalidPassword = 3006

	// ErrUserNotFound indicates that the account referenced by a token no longer exists.
	ErrUserNotFound = 3007

	// ErrUnauthorized indicates that the request carries no valid identity.
	ErrUnauthorized = 3008
)

// 4xxx: Storage Errors
const (
	// ErrAvatarStorageFailed indicates that an avatar upload URL could not be produced.
	ErrAvatarStorageFailed = 4001

	// ErrAvatarStorageUnavailable indicates that no avatar storage backend is configured.
	ErrAvatarStorageUnavailable = 4002
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
