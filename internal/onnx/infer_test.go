package onnx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/reactorml/reactorserve/internal/errors"
	"github.com/reactorml/reactorserve/internal/feature"
)

// stubSession is a Session substitute recording the feeds it was run with.
type stubSession struct {
	inputNames []string
	output     Tensor
	runErr     error
	lastFeeds  map[string]Tensor
}

func (s *stubSession) InputNames() []string {
	return s.inputNames
}

func (s *stubSession) Run(feeds map[string]Tensor) (Tensor, error) {
	s.lastFeeds = feeds
	if s.runErr != nil {
		return Tensor{}, s.runErr
	}
	return s.output, nil
}

func (s *stubSession) Close() error {
	return nil
}

func fourInputStub() *stubSession {
	return &stubSession{
		inputNames: []string{"in_a", "in_b", "in_volume", "in_prev"},
		output:     Tensor{Shape: []int64{1, 1}, Data: []float32{0.42}},
	}
}

func TestInfer_BindsRowsToDeclaredInputs(t *testing.T) {
	session := fourInputStub()
	invoker := NewInvoker(session)
	vec := &feature.Vector{{10}, {20}, {30}, {40}}

	_, err := invoker.Infer(vec)

	require.NoError(t, err)
	require.Len(t, session.lastFeeds, 4)
	expected := map[string]float32{
		"in_a":      10,
		"in_b":      20,
		"in_volume": 30,
		"in_prev":   40,
	}
	for name, value := range expected {
		feed, ok := session.lastFeeds[name]
		require.True(t, ok, "input %s not bound", name)
		assert.Equal(t, []int64{1, 1}, feed.Shape)
		assert.Equal(t, []float32{value}, feed.Data)
	}
}

func TestInfer_NestsOutputByShape(t *testing.T) {
	session := fourInputStub()
	session.output = Tensor{Shape: []int64{2, 3}, Data: []float32{1, 2, 3, 4, 5, 6}}
	invoker := NewInvoker(session)

	result, err := invoker.Infer(&feature.Vector{{10}, {20}, {30}, {40}})

	require.NoError(t, err)
	assert.Equal(t, []interface{}{
		[]float32{1, 2, 3},
		[]float32{4, 5, 6},
	}, result)
}

func TestInfer_SingleScoreOutput(t *testing.T) {
	invoker := NewInvoker(fourInputStub())

	result, err := invoker.Infer(&feature.Vector{{10}, {20}, {30}, {40}})

	require.NoError(t, err)
	assert.Equal(t, []interface{}{[]float32{0.42}}, result)
}

func TestInfer_InputCountMismatchFails(t *testing.T) {
	session := fourInputStub()
	session.inputNames = []string{"in_a", "in_b", "in_volume"}
	invoker := NewInvoker(session)

	result, err := invoker.Infer(&feature.Vector{{10}, {20}, {30}, {40}})

	assert.Nil(t, result)
	var invErr *apperrors.InvocationError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, UserFacingError, invErr.ErrorMsg)
}

func TestInfer_RuntimeFailureWrapped(t *testing.T) {
	session := fourInputStub()
	session.runErr = errors.New("unexpected input data type")
	invoker := NewInvoker(session)

	result, err := invoker.Infer(&feature.Vector{{10}, {20}, {30}, {40}})

	assert.Nil(t, result)
	var invErr *apperrors.InvocationError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, UserFacingError, invErr.ErrorMsg)
	assert.Equal(t, "unexpected input data type", invErr.Details)
}

func TestInfer_Deterministic(t *testing.T) {
	invoker := NewInvoker(fourInputStub())
	vec := &feature.Vector{{10}, {20}, {30}, {40}}

	first, err := invoker.Infer(vec)
	require.NoError(t, err)
	second, err := invoker.Infer(vec)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNestByShape_Scalar(t *testing.T) {
	assert.Equal(t, float32(7), nestByShape([]float32{7}, nil))
}

func TestNestByShape_OneDimensional(t *testing.T) {
	assert.Equal(t, []float32{1, 2, 3}, nestByShape([]float32{1, 2, 3}, []int64{3}))
}
