package xdoc

import "errors"

var (
	ErrParse     = errors.New("parse error")
	ErrNamespace = errors.New("namespace error")
)
