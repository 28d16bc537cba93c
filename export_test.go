package jsonext

// NewError exports the newError function for tests.
func NewError(message string, err error) error {
	return newError(message, err)
}
