package childspec

import "errors"

var ErrChildSpec = errors.New("invalid child spec")
