package models

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid recommendation request")
	ErrInvalidFileType   = errors.New("unsupported file_type")
	ErrMalformedResponse = errors.New("malformed recommendation response")
)
