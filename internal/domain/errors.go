package domain

import "errors"

var (
	ErrSecretNotFound     = errors.New("secret not found")
	ErrInvalidTagMode     = errors.New("invalid tagging mode")
	ErrRateLimited        = errors.New("rate limited")
	ErrMissingPostID      = errors.New("post response missing identifier")
	ErrSubscriptionClosed = errors.New("event subscription closed")
)
