// Package options provides shared input validation for keycase entry points.
package options

import "errors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// sources holds one flag per possible source, true when that source is set.
// noSourceMsg and multiSourceMsg become the error text for zero and for
// several sources.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}

	switch {
	case count == 0:
		return errors.New(noSourceMsg)
	case count > 1:
		return errors.New(multiSourceMsg)
	}
	return nil
}
