package guide

import (
	"errors"
)

var (
	ErrInvalidURL         = errors.New("invalid spreadsheet URL")
	ErrUnknownCredentials = errors.New("unrecognised credentials")
	ErrUnknownFormat      = errors.New("unknown format")
	ErrUnknownLanguage    = errors.New("unknown sample language")
)
