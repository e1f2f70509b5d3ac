package models

import (
	"errors"
)

var (
	ErrValidation = errors.New("validation error")

	// ErrTaggerUnavailable means titles cannot be tagged; classification
	// degrades to "not blocked".
	ErrTaggerUnavailable = errors.New("tagger unavailable")
	ErrMalformedInput    = errors.New("malformed input")
	ErrInvalidVideoID    = errors.New("invalid video id")
)
