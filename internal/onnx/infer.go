package onnx

import (
	"fmt"

	apperrors "github.com/reactorml/reactorserve/internal/errors"
	"github.com/reactorml/reactorserve/internal/feature"
)

// UserFacingError is the fixed message returned to callers when the model
// runtime rejects an input.
const UserFacingError = "Invalid input for the ONNX model"

// Invoker runs forward passes against an injected session. It binds feature
// row i to the session's i-th declared input; the row order of
// feature.Vector must therefore match the model's input declaration order. A
// reordering of same-arity inputs cannot be detected here and would silently
// produce wrong predictions.
type Invoker struct {
	session Session
}

func NewInvoker(session Session) *Invoker {
	return &Invoker{session: session}
}

// Infer executes exactly one synchronous forward pass and converts the first
// declared output into a nested list of numbers. Any runtime failure is
// returned as an InvocationError; the session is never mutated.
func (iv *Invoker) Infer(vec *feature.Vector) (interface{}, error) {
	names := iv.session.InputNames()
	if len(names) != feature.Rows {
		return nil, &apperrors.InvocationError{
			ErrorMsg: UserFacingError,
			Details:  fmt.Sprintf("model declares %d inputs, expected %d", len(names), feature.Rows),
		}
	}

	feeds := make(map[string]Tensor, len(names))
	for i, name := range names {
		feeds[name] = Tensor{
			Shape: []int64{1, 1},
			Data:  []float32{vec[i][0]},
		}
	}

	out, err := iv.session.Run(feeds)
	if err != nil {
		return nil, &apperrors.InvocationError{
			ErrorMsg: UserFacingError,
			Details:  err.Error(),
		}
	}
	return nestByShape(out.Data, out.Shape), nil
}

// nestByShape folds a flat row-major buffer into nested lists following the
// given dimensions, mirroring numpy's tolist.
func nestByShape(data []float32, shape []int64) interface{} {
	if len(shape) == 0 {
		if len(data) == 0 {
			return nil
		}
		return data[0]
	}
	if len(shape) == 1 {
		return data
	}
	outer := int(shape[0])
	result := make([]interface{}, outer)
	if outer == 0 {
		return result
	}
	stride := len(data) / outer
	for i := 0; i < outer; i++ {
		result[i] = nestByShape(data[i*stride:(i+1)*stride], shape[1:])
	}
	return result
}
