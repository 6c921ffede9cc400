package domain

import "errors"

var (
	ErrExpertNotFound    = errors.New("expert not found")
	ErrKeyNotFound       = errors.New("key not found")
	ErrInvalidSearchMode = errors.New("invalid search mode")
	ErrEmptyMessage      = errors.New("message is empty")
)
