package tvd

import "errors"

// ErrBadOption reports a solver option outside its valid range.
var ErrBadOption = errors.New("tvd: bad option")
