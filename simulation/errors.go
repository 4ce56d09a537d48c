// SPDX-License-Identifier: MIT

package simulation

import "errors"

var (
	// ErrInvalidConfiguration marks a run that must not start: S < 1, a nil
	// model, or model parameters out of range. It is also reported when a
	// generator hits a zero total degree during attachment.
	ErrInvalidConfiguration = errors.New("simulation: invalid configuration")

	// ErrAlreadyRun is returned by a second call to Runner.Run.
	ErrAlreadyRun = errors.New("simulation: runner already used")
)
