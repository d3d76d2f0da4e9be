package directory

import "errors"

// ErrInvalidArgument marks malformed criteria or parameters rejected at
// the API boundary. Absent lookup results are represented by a false
// second return value, not an error.
var ErrInvalidArgument = errors.New("invalid argument")
