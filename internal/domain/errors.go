package domain

import "errors"

var (
	ErrEmptyMessage      = errors.New("empty message")
	ErrNotConfigured     = errors.New("api key not configured")
	ErrEmptyGeneration   = errors.New("model returned empty text")
	ErrMalformedResponse = errors.New("unexpected response shape")
)
