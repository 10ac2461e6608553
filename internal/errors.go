package internal

import "errors"

var (
	ErrNetwork = errors.New("network error")
	ErrParse   = errors.New("parse error")
	ErrIO      = errors.New("io error")
)
