package memo

import "errors"

// ErrUnsupportedN is returned by Build when asked for an N that does not
// match the N the package was compiled for (see geometry.NColors and the
// n3/n4/n5 build tags).
var ErrUnsupportedN = errors.New("memo: requested N does not match the build's geometry.NColors")
