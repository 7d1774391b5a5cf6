package schema

const (
	msgFieldRequired = "Field required"
	msgTypeMismatch  = "Input should be a valid list of lists of numbers"
)

// ValidatePredictInput checks an untyped JSON object against the predict
// schema. Errors are accumulated across all required fields in one pass; the
// returned list contains one entry per offending field. Unknown keys are
// ignored. Exactly one of the return values is non-empty.
func ValidatePredictInput(raw map[string]interface{}) (*PredictRequest, []FieldError) {
	var fieldErrors []FieldError
	values := make(map[string][][]float64, len(RequiredFields))

	for _, field := range RequiredFields {
		value, present := raw[field]
		if !present {
			fieldErrors = append(fieldErrors, FieldError{
				Kind:    KindMissing,
				Loc:     []string{field},
				Message: msgFieldRequired,
				Input:   raw,
			})
			continue
		}
		nested, ok := asNestedNumbers(value)
		if !ok {
			fieldErrors = append(fieldErrors, FieldError{
				Kind:    KindTypeError,
				Loc:     []string{field},
				Message: msgTypeMismatch,
				Input:   value,
			})
			continue
		}
		values[field] = nested
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return &PredictRequest{
		MaterialACharged: values[FieldMaterialACharged],
		MaterialBCharged: values[FieldMaterialBCharged],
		ReactorVolume:    values[FieldReactorVolume],
		MaterialAPrev:    values[FieldMaterialAPrev],
	}, nil
}

// asNestedNumbers converts a decoded JSON value into a sequence of sequences
// of numbers. Any other shape (scalar, string, object, flat array, non-numeric
// leaf) fails the conversion as a whole.
func asNestedNumbers(value interface{}) ([][]float64, bool) {
	outer, ok := value.([]interface{})
	if !ok {
		return nil, false
	}
	nested := make([][]float64, len(outer))
	for i, element := range outer {
		inner, ok := element.([]interface{})
		if !ok {
			return nil, false
		}
		row := make([]float64, len(inner))
		for j, leaf := range inner {
			number, ok := leaf.(float64)
			if !ok {
				return nil, false
			}
			row[j] = number
		}
		nested[i] = row
	}
	return nested, true
}
