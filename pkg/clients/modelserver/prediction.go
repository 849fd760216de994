package modelserver

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/api"
)

// DefaultOutputKey is the key the server wraps predictions in.
const DefaultOutputKey = "predictions"

// PredictionInput is the serialized model input. The client passes it through
// untouched.
type PredictionInput string

// NewPredictionInput encodes columnar features, one slice of values per
// feature name, e.g. {"island": ["Biscoe"], "bill_length_mm": [39.1]}.
func NewPredictionInput(features map[string][]any) (PredictionInput, error) {
	data, err := json.Marshal(features)
	if err != nil {
		return "", fmt.Errorf("failed to encode prediction input: %w", err)
	}
	return PredictionInput(data), nil
}

func (p PredictionInput) String() string {
	return string(p)
}

// Prediction is a row per input record and a column per output value.
//
// The server returns it as a JSON object with exactly one key whose value is
// the matrix, e.g. {"predictions": [[0.1, 0.9], [0.8, 0.2]]}. A bare array,
// more than one key, non numeric cells or rows of different length are
// rejected with a decode error.
type Prediction struct {
	outputKey string
	values    [][]float64
}

// NewPrediction wraps values under DefaultOutputKey.
func NewPrediction(values [][]float64) Prediction {
	return Prediction{outputKey: DefaultOutputKey, values: values}
}

// DecodePrediction parses the server output. Errors are *api.Error of kind
// KindDecode.
func DecodePrediction(raw []byte) (Prediction, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Prediction{}, api.NewDecodeError(opPredict, "empty prediction output", nil)
	}
	if trimmed[0] != '{' {
		return Prediction{}, api.NewDecodeError(opPredict, "prediction output is not a JSON object", nil)
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return Prediction{}, api.NewDecodeError(opPredict, "malformed prediction output", err)
	}
	if len(wrapper) != 1 {
		return Prediction{}, api.NewDecodeError(opPredict, fmt.Sprintf("prediction output must have exactly one key, got %d", len(wrapper)), nil)
	}
	var p Prediction
	var cells [][]*float64
	for key, value := range wrapper {
		p.outputKey = key
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return Prediction{}, api.NewDecodeError(opPredict, fmt.Sprintf("%q is null", key), nil)
		}
		if err := json.Unmarshal(value, &cells); err != nil {
			return Prediction{}, api.NewDecodeError(opPredict, fmt.Sprintf("%q is not a matrix of numbers", key), err)
		}
	}
	p.values = make([][]float64, len(cells))
	for i, row := range cells {
		if row == nil {
			return Prediction{}, api.NewDecodeError(opPredict, fmt.Sprintf("row %d is null", i), nil)
		}
		if len(row) != len(cells[0]) {
			return Prediction{}, api.NewDecodeError(opPredict, fmt.Sprintf("row %d has %d values, row 0 has %d", i, len(row), len(cells[0])), nil)
		}
		p.values[i] = make([]float64, len(row))
		for j, cell := range row {
			if cell == nil {
				return Prediction{}, api.NewDecodeError(opPredict, fmt.Sprintf("cell [%d][%d] is null", i, j), nil)
			}
			p.values[i][j] = *cell
		}
	}
	return p, nil
}

// OutputKey is the key the matrix was wrapped in.
func (p Prediction) OutputKey() string {
	return p.outputKey
}

// Values returns the matrix. Callers must not modify it.
func (p Prediction) Values() [][]float64 {
	return p.values
}

func (p Prediction) Rows() int {
	return len(p.values)
}

func (p Prediction) Cols() int {
	if len(p.values) == 0 {
		return 0
	}
	return len(p.values[0])
}

// ArgMax returns the index of the largest value in every row, e.g. the
// predicted class of a multi class model. Empty rows yield -1.
func (p Prediction) ArgMax() []int {
	out := make([]int, len(p.values))
	for i, row := range p.values {
		out[i] = -1
		for j, v := range row {
			if out[i] == -1 || v > row[out[i]] {
				out[i] = j
			}
		}
	}
	return out
}

// MarshalJSON encodes the prediction in the same shape DecodePrediction reads.
func (p Prediction) MarshalJSON() ([]byte, error) {
	key := p.outputKey
	if key == "" {
		key = DefaultOutputKey
	}
	values := p.values
	if values == nil {
		values = [][]float64{}
	}
	return json.Marshal(map[string][][]float64{key: values})
}
