package domain

import "errors"

var (
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrUnknownModel    = errors.New("unknown model")
)
