package validators

import "errors"

// joinErrors returns nil for an empty slice and the single error unchanged,
// so callers can compare simple failures directly.
func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}
