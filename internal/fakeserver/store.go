package fakeserver

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/api"
	"github.com/Meesho/BharatMLStack/modelserver-client/pkg/enums"
)

const (
	rfc2822       = "Mon, 2 Jan 2006 15:04:05 -0700"
	modelStoreDir = "/models"
)

type model struct {
	name        string
	framework   enums.Framework
	path        string
	lastUpdated time.Time
}

// store is the in-memory model registry plus the knobs tests use to shape
// responses. It is shared by the HTTP and gRPC handlers.
type store struct {
	mu        sync.RWMutex
	models    map[string]model
	latency   time.Duration
	rawOutput *string
	failure   *api.Error
	callerID  string
	calls     int
}

func newStore() *store {
	return &store{models: make(map[string]model)}
}

// begin records the call, applies the injected latency and returns the
// injected failure, if any.
func (s *store) begin(ctx context.Context, op, callerID string) *api.Error {
	s.mu.Lock()
	s.calls++
	s.callerID = callerID
	latency := s.latency
	failure := s.failure
	s.mu.Unlock()

	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return &api.Error{Kind: api.KindCanceled, Op: op, Message: ctx.Err().Error()}
		}
	}
	if failure != nil {
		f := *failure
		f.Op = op
		return &f
	}
	return nil
}

func (s *store) predict(modelName, input string) (string, *api.Error) {
	s.mu.RLock()
	_, ok := s.models[modelName]
	raw := s.rawOutput
	s.mu.RUnlock()
	if !ok {
		return "", api.NewNotFoundError("predict", fmt.Sprintf("model %s is not loaded", modelName))
	}
	if raw != nil {
		return *raw, nil
	}
	rows, err := countRecords(input)
	if err != nil {
		return "", api.NewInvalidInput("predict", err.Error())
	}
	values := make([][]float64, rows)
	for i := range values {
		p := 1 / float64(i+2)
		values[i] = []float64{p, 1 - p}
	}
	out, _ := json.Marshal(map[string][][]float64{"predictions": values})
	return string(out), nil
}

// countRecords returns the number of records in a columnar input such as
// {"a": [1, 2], "b": [3, 4]}.
func countRecords(input string) (int, error) {
	var features map[string][]json.RawMessage
	if err := json.Unmarshal([]byte(input), &features); err != nil {
		return 0, fmt.Errorf("input is not a columnar JSON object: %w", err)
	}
	if len(features) == 0 {
		return 0, fmt.Errorf("input has no features")
	}
	rows := -1
	for name, values := range features {
		if rows == -1 {
			rows = len(values)
		}
		if len(values) != rows {
			return 0, fmt.Errorf("feature %s has %d values, expected %d", name, len(values), rows)
		}
	}
	return rows, nil
}

func (s *store) addModel(prefixed string) *api.Error {
	framework, name, err := enums.SplitModelName(prefixed)
	if err != nil {
		return api.NewInvalidInput("add_model", err.Error())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.models[name]; ok {
		return api.NewAlreadyExistsError("add_model", fmt.Sprintf("model %s is already loaded", name))
	}
	s.models[name] = newModel(framework, name)
	return nil
}

func (s *store) updateModel(prefixed string) *api.Error {
	framework, name, err := enums.SplitModelName(prefixed)
	if err != nil {
		return api.NewInvalidInput("update_model", err.Error())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.models[name]; !ok {
		return api.NewNotFoundError("update_model", fmt.Sprintf("model %s is not loaded", name))
	}
	s.models[name] = newModel(framework, name)
	return nil
}

func (s *store) deleteModel(name string) *api.Error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.models[name]; !ok {
		return api.NewNotFoundError("delete_model", fmt.Sprintf("model %s is not loaded", name))
	}
	delete(s.models, name)
	return nil
}

// list returns the loaded models sorted by name.
func (s *store) list() []model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model, 0, len(s.models))
	for _, m := range s.models {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func newModel(framework enums.Framework, name string) model {
	return model{
		name:        name,
		framework:   framework,
		path:        modelStoreDir + "/" + framework.ModelName(name) + framework.ArtifactExt(),
		lastUpdated: time.Now(),
	}
}
