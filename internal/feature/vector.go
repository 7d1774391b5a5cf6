package feature

import (
	"fmt"

	"github.com/rs/zerolog/log"

	apperrors "github.com/reactorml/reactorserve/internal/errors"
	"github.com/reactorml/reactorserve/internal/schema"
)

// Rows is the number of feature rows the model expects, one per required
// field. Must equal len(schema.RequiredFields).
const Rows = 4

// Vector is the dense (Rows, 1) input assembled from a validated request.
// Row order follows schema.RequiredFields and must match the model's input
// declaration order; the invoker binds row i to the i-th declared input.
type Vector [Rows][1]float32

// Assemble extracts the scalar at position [0][0] of each field, in model
// input order, into a (Rows, 1) float32 vector. If any field's outer or inner
// sequence is empty the operation fails as a whole; no partial vector is
// returned.
func Assemble(req *schema.PredictRequest) (*Vector, error) {
	var vec Vector
	for i, values := range req.Fields() {
		if len(values) == 0 || len(values[0]) == 0 {
			field := schema.RequiredFields[i]
			return nil, &apperrors.PreparationError{
				Field:    field,
				ErrorMsg: fmt.Sprintf("no scalar at position [0][0] of field %s", field),
			}
		}
		vec[i][0] = float32(values[0][0])
	}
	log.Debug().Msgf("Prepared feature vector %v", vec)
	return &vec, nil
}
