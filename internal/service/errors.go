package service

import "errors"

var (
	ErrMissingInput = errors.New("missing input")
	ErrNotFound     = errors.New("not found")
	ErrNotTrained   = errors.New("classifier not trained")
)
