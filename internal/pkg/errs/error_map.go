/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large."},
	ErrRateLimitExceeded:     {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Profile and Social Graph Errors
	ErrProfileNotFound:        {Code: ErrProfileNotFound, Message: "User not found", Status: http.StatusNotFound},
	ErrNoUserInformation:      {Code: ErrNoUserInformation, Message: "No user information", Status: http.StatusBadRequest},
	ErrSkillNotFound:          {Code: ErrSkillNotFound, Message: "Skill not found", Status: http.StatusNotFound},
	ErrRecommendationNotFound: {Code: ErrRecommendationNotFound, Message: "Recommendation not found", Status: http.StatusNotFound},
	ErrSelfConnection:         {Code: ErrSelfConnection, Message: "You cannot connect with yourself."},

	// 3xxx: Account, Session, and Security Errors
	ErrAlreadyLoggedIn:    {Code: ErrAlreadyLoggedIn, Message: "You are already signed in."},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Invalid credentials", Status: http.StatusUnauthorized},
	ErrEmailInUse:         {Code: ErrEmailInUse, Message: "Email already in use", Status: http.StatusConflict},
	ErrUsernameTaken:      {Code: ErrUsernameTaken, Message: "Username already taken", Status: http.StatusConflict},
	ErrInvalidUsername:    {Code: ErrInvalidUsername, Message: "Invalid username."},
	ErrInvalidPassword:    {Code: ErrInvalidPassword, Message: "Invalid password."},
	ErrUserNotFound:       {Code: ErrUserNotFound, Message: "User not found", Status: http.StatusNotFound},
	ErrUnauthorized:       {Code: ErrUnauthorized, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},

	// 4xxx: Storage Errors
	ErrAvatarStorageFailed:      {Code: ErrAvatarStorageFailed, Message: "Avatar upload failed. Please try again."},
	ErrAvatarStorageUnavailable: {Code: ErrAvatarStorageUnavailable, Message: "Avatar storage is not available.", Status: http.StatusServiceUnavailable},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
