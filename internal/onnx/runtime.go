package onnx

import (
	"fmt"

	"github.com/rs/zerolog/log"
	ort "github.com/yalue/onnxruntime_go"
)

// RuntimeSession is a Session backed by an ONNX Runtime inference session.
// ONNX Runtime documents Run as thread-safe on a single session, so one
// RuntimeSession serves all concurrent requests without locking.
type RuntimeSession struct {
	session     *ort.DynamicAdvancedSession
	inputNames  []string
	outputNames []string
}

// Load initializes the ONNX Runtime environment (once per process) and loads
// the model at modelPath. sharedLibPath optionally points at the onnxruntime
// shared library; when empty the binding's default location is used.
func Load(modelPath, sharedLibPath string) (*RuntimeSession, error) {
	if sharedLibPath != "" {
		ort.SetSharedLibraryPath(sharedLibPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("initializing onnxruntime environment: %w", err)
		}
	}

	inputInfos, outputInfos, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("reading model metadata from %s: %w", modelPath, err)
	}
	inputNames := make([]string, len(inputInfos))
	for i, info := range inputInfos {
		inputNames[i] = info.Name
	}
	outputNames := make([]string, len(outputInfos))
	for i, info := range outputInfos {
		outputNames[i] = info.Name
	}

	session, err := ort.NewDynamicAdvancedSession(modelPath, inputNames, outputNames, nil)
	if err != nil {
		return nil, fmt.Errorf("creating inference session for %s: %w", modelPath, err)
	}

	log.Info().Msgf("Loaded ONNX model %s with inputs %v and outputs %v", modelPath, inputNames, outputNames)
	return &RuntimeSession{
		session:     session,
		inputNames:  inputNames,
		outputNames: outputNames,
	}, nil
}

func (s *RuntimeSession) InputNames() []string {
	return s.inputNames
}

// Run executes one forward pass. Every declared input must have a feed; the
// first declared output is copied out and returned.
func (s *RuntimeSession) Run(feeds map[string]Tensor) (Tensor, error) {
	inputs := make([]ort.Value, len(s.inputNames))
	defer func() {
		for _, input := range inputs {
			if input != nil {
				input.Destroy()
			}
		}
	}()
	for i, name := range s.inputNames {
		feed, ok := feeds[name]
		if !ok {
			return Tensor{}, fmt.Errorf("no tensor bound for model input %q", name)
		}
		tensor, err := ort.NewTensor(ort.NewShape(feed.Shape...), feed.Data)
		if err != nil {
			return Tensor{}, fmt.Errorf("building tensor for input %q: %w", name, err)
		}
		inputs[i] = tensor
	}

	// nil entries are allocated by the runtime and must be destroyed here
	outputs := make([]ort.Value, len(s.outputNames))
	if err := s.session.Run(inputs, outputs); err != nil {
		return Tensor{}, err
	}
	defer func() {
		for _, output := range outputs {
			if output != nil {
				output.Destroy()
			}
		}
	}()

	first, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return Tensor{}, fmt.Errorf("model output %q is not a float32 tensor", s.outputNames[0])
	}
	out := Tensor{
		Shape: append([]int64(nil), first.GetShape()...),
		Data:  append([]float32(nil), first.GetData()...),
	}
	return out, nil
}

func (s *RuntimeSession) Close() error {
	return s.session.Destroy()
}
