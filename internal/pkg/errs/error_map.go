/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to
standardize HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrValidationFailed:     {Code: ErrValidationFailed, Message: "Invalid data.", Status: http.StatusBadRequest},
	ErrMissingFields:        {Code: ErrMissingFields, Message: "All fields are required.", Status: http.StatusBadRequest},

	// 2xxx: Account Business Logic Errors
	ErrEmailTaken:     {Code: ErrEmailTaken, Message: "User already exists.", Status: http.StatusBadRequest},
	ErrUserNotFound:   {Code: ErrUserNotFound, Message: "User not found.", Status: http.StatusNotFound},
	ErrNoUsersFound:   {Code: ErrNoUsersFound, Message: "No users found.", Status: http.StatusNotFound},
	ErrNoUpdateFields: {Code: ErrNoUpdateFields, Message: "No fields provided to update.", Status: http.StatusBadRequest},
	ErrMissingTargetID: {Code: ErrMissingTargetID, Message: "User ID is required.", Status: http.StatusBadRequest},
	ErrWeakPassword:    {Code: ErrWeakPassword, Message: "Password must be at least 8 characters and contain a letter, a number, and a special character.", Status: http.StatusBadRequest},

	// 3xxx: Authentication and Session Errors
	ErrUnauthenticated:    {Code: ErrUnauthenticated, Message: "Please sign in to continue.", Status: http.StatusUnauthorized},
	ErrTokenExpired:       {Code: ErrTokenExpired, Message: "Your session has expired. Please sign in again.", Status: http.StatusUnauthorized},
	ErrForbidden:          {Code: ErrForbidden, Message: "You do not have permission to perform this action.", Status: http.StatusForbidden},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Incorrect email or password.", Status: http.StatusBadRequest},
	ErrNotLoggedIn:        {Code: ErrNotLoggedIn, Message: "You are not signed in.", Status: http.StatusBadRequest},

	// 4xxx: Avatar Storage Errors
	ErrAvatarTypeInvalid: {Code: ErrAvatarTypeInvalid, Message: "Avatar must be an image.", Status: http.StatusBadRequest},
	ErrAvatarTooLarge:    {Code: ErrAvatarTooLarge, Message: "Avatar file is too large.", Status: http.StatusBadRequest},
	ErrStorageFailed:     {Code: ErrStorageFailed, Message: "Avatar upload is unavailable. Please try again later.", Status: http.StatusInternalServerError},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
