package errors

// PreparationError signals that a validated request could not be shaped into
// the model's input vector.
type PreparationError struct {
	Field    string
	ErrorMsg string
}

func (m *PreparationError) Error() string {
	return m.ErrorMsg
}

// InvocationError wraps a failure reported by the model runtime during a
// forward pass. ErrorMsg is the fixed user-facing message; Details carries the
// underlying runtime error for diagnostics.
type InvocationError struct {
	ErrorMsg string
	Details  string
}

func (m *InvocationError) Error() string {
	return m.ErrorMsg
}
