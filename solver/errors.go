package solver

import "errors"

// ErrMalformedInput is wrapped by any error ParseCNF returns because
// of a token that isn't a well-formed signed integer or a clause
// missing its terminating zero. Malformed input is rejected outright
// rather than silently treated as UNSAT-equivalent.
var ErrMalformedInput = errors.New("malformed DIMACS input")
