package schema

// Required input fields, in the order the model declares its inputs. The
// feature vector is assembled row by row in this exact order.
const (
	FieldMaterialACharged = "Material_A_Charged_Amount"
	FieldMaterialBCharged = "Material_B_Charged_Amount"
	FieldReactorVolume    = "Reactor_Volume"
	FieldMaterialAPrev    = "Material_A_Final_Concentration_Previous_Batch"
)

var RequiredFields = []string{
	FieldMaterialACharged,
	FieldMaterialBCharged,
	FieldReactorVolume,
	FieldMaterialAPrev,
}

// PredictRequest is the validated form of a /predict payload. Each field is a
// nested numeric sequence as submitted; emptiness of the inner sequences is a
// preparation concern, not a validation one.
type PredictRequest struct {
	MaterialACharged [][]float64
	MaterialBCharged [][]float64
	ReactorVolume    [][]float64
	MaterialAPrev    [][]float64
}

// Fields returns the request's values in model input order.
func (r *PredictRequest) Fields() [][][]float64 {
	return [][][]float64{
		r.MaterialACharged,
		r.MaterialBCharged,
		r.ReactorVolume,
		r.MaterialAPrev,
	}
}

const (
	KindMissing   = "missing"
	KindTypeError = "type_error"
)

// FieldError describes one validation failure on one required field.
type FieldError struct {
	Kind    string      `json:"type"`
	Loc     []string    `json:"loc"`
	Message string      `json:"msg"`
	Input   interface{} `json:"input"`
}
