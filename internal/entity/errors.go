package entity

import "errors"

// Domain error taxonomy. Every one of these is recoverable: the transport
// layer maps them to a structured response and the process keeps running.
var (
	// ErrUnauthorized means the actor lacks the required role or ownership.
	ErrUnauthorized = errors.New("not authorized")
	// ErrInvalidState means the action is not allowed from the current status.
	ErrInvalidState = errors.New("invalid state for this action")
	// ErrInvalidTransition means the requested moderation transition is not permitted.
	ErrInvalidTransition = errors.New("invalid moderation transition")
	// ErrAlreadyVoted means a vote already exists for this (user, artwork) pair.
	ErrAlreadyVoted = errors.New("already voted on this artwork")
	// ErrInvalidAction means the request carried an unusable value, for
	// example a vote direction that is neither up nor down.
	ErrInvalidAction = errors.New("invalid action")
	// ErrMissingReason means a vote reset was attempted without a reason.
	ErrMissingReason = errors.New("a reason is required")
	// ErrInvalidFormat means the uploaded image has an unsupported extension or
	// cannot be decoded.
	ErrInvalidFormat = errors.New("unsupported or undecodable image")
	// ErrDuplicateIdentity means the username or email is already taken.
	ErrDuplicateIdentity = errors.New("username or email already exists")
	// ErrEmailNotVerified means login was attempted before email verification.
	ErrEmailNotVerified = errors.New("email not verified")
	// ErrInvalidCredentials means the login identifier or password is wrong.
	ErrInvalidCredentials = errors.New("invalid login credentials")
	// ErrTokenInvalid means a verification or reset token is expired or tampered.
	ErrTokenInvalid = errors.New("token is invalid or has expired")
	// ErrNotFound means a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
)
