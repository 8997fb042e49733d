package domain

import "errors"

var (
	// ErrDuplicateIdentity is returned when registering an email that
	// already has an account.
	ErrDuplicateIdentity = errors.New("email already registered")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrMissingRefreshToken = errors.New("refresh token not found in cookie")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrRefreshTokenInvalid = errors.New("refresh token invalid or revoked")

	// Codec-level verdicts, shared by the refresh flow and the bearer gate.
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	// ErrSubjectNotFound means a token verified but its subject no longer
	// exists in the user store. Treated as unauthorized, not a server error.
	ErrSubjectNotFound = errors.New("user not found")

	ErrStorageUnavailable = errors.New("storage unavailable")
)
