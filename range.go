// Copyright 2024 Gleb Gorelov. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetimeutils

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned by the range membership checks when the
// start of the range is after its end.
var ErrInvalidRange = errors.New("start date must be earlier or equal to the end date")

// IsWithinRange reports whether input lies within the range bounded
// by start and end, inclusive of both ends. The bounds are validated
// before any comparison: a start after end yields ErrInvalidRange no
// matter where input falls.
func IsWithinRange(input, start, end Instant) (bool, error) {
	if start.After(end) {
		return false, fmt.Errorf("%v > %v: %w", start, end, ErrInvalidRange)
	}
	return !(input.Before(start) || input.After(end)), nil
}

// IsNotWithinRange is the logical negation of IsWithinRange. It
// shares the same precondition: a start after end yields the
// identical ErrInvalidRange rather than an inverted result.
func IsNotWithinRange(input, start, end Instant) (bool, error) {
	within, err := IsWithinRange(input, start, end)
	if err != nil {
		return false, err
	}
	return !within, nil
}
