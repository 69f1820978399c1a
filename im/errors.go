// SPDX-License-Identifier: MIT

package im

import (
	"errors"
	"fmt"
)

// ErrSyntax is returned by Parse when the literal is neither a float nor a
// float followed by the imaginary unit marker.
var ErrSyntax = errors.New("im: invalid number literal")

const opParse = "Parse"

// imErrorf wraps err with an operation tag, preserving it for errors.Is.
func imErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
