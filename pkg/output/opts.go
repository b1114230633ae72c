package output

import (
	// Packages
	errors "github.com/djthorpe/go-errors"
)

//////////////////////////////////////////////////////////////////////////////
// TYPES

type Opt func(*Writer) error

//////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Set the function used to name files
func OptName(fn NameFunc) Opt {
	return func(w *Writer) error {
		if fn == nil {
			return errors.ErrBadParameter.With("OptName")
		}
		w.name = fn
		return nil
	}
}
