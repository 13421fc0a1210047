package quality

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprimer/pkg/errcode"
)

// InvalidWeightsError creates an error for score weights that are negative
// or all zero.
func InvalidWeightsError(w Weights) error {
	msg := `Scoring weights must be non-negative with a positive sum

<em>Sum of weights:</em> %.3f`

	vars := []any{w.Sum()}

	return &gn.Error{
		Code: errcode.ConfigurationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid scoring weights: %+v", w),
	}
}

// InvalidIdealsError creates an error for inconsistent ideal parameters.
func InvalidIdealsError(i Ideals) error {
	msg := `Scoring ideals need positive scales and caps, ordered ranges
and a floor between 0 and 1`

	return &gn.Error{
		Code: errcode.ConfigurationError,
		Msg:  msg,
		Err:  fmt.Errorf("invalid scoring ideals: %+v", i),
	}
}
