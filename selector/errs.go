package selector

import "errors"

var ErrSelector = errors.New("selector error")
