package onnx

// Tensor is a dense float32 tensor in row-major order.
type Tensor struct {
	Shape []int64
	Data  []float32
}

// Session is a loaded, ready-to-execute model handle. Implementations must be
// safe for concurrent Run calls; the handle is shared read-only by all
// requests for the process lifetime.
type Session interface {
	// InputNames returns the model's declared input names in declaration
	// order.
	InputNames() []string
	// Run executes one forward pass with the given named feeds and returns
	// the first declared output.
	Run(feeds map[string]Tensor) (Tensor, error)
	// Close releases the underlying runtime resources.
	Close() error
}
