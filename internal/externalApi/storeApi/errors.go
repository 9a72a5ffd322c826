package storeApi

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBadStatus          = errors.New("response status not ok")
)
