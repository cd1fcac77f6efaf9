package xmledit

import "errors"

var (
	ErrTargetType = errors.New("target type error")
	ErrMutation   = errors.New("mutation error")
)
