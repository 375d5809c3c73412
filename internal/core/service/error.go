package service

import "errors"

var (
	ErrInvalidTask   = errors.New("invalid task")
	ErrInvalidStatus = errors.New("invalid status")
)
