package lifecycle

// ErrDistributionNotFound returns an error when a requested name has no
// handle in the current registered list.
type distributionNotFoundError struct{ name string }

func (e distributionNotFoundError) Error() string { return "distribution not found: " + e.name }

func ErrDistributionNotFound(name string) error { return distributionNotFoundError{name: name} }

// IsDistributionNotFound reports whether the error indicates a missing
// registered distribution.
func IsDistributionNotFound(err error) bool {
	_, ok := err.(distributionNotFoundError)
	return ok
}
