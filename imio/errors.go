package imio

import "errors"

// ErrUnknownFormat reports a file extension with no known image encoder.
var ErrUnknownFormat = errors.New("imio: unknown image format")
