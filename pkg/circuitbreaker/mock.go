package circuitbreaker

import (
	"github.com/stretchr/testify/mock"
)

var (
	_ CircuitBreaker[any, any] = (*MockCircuitBreaker[any, any])(nil)
	_ ManualCircuitBreaker     = (*MockManualCircuitBreaker)(nil)
)

// MockCircuitBreaker records Execute calls. Configure it with
// On("Execute", request, mock.Anything).Return(response, err); the task is
// never run.
type MockCircuitBreaker[Request any, Response any] struct {
	mock.Mock
}

func (m *MockCircuitBreaker[Request, Response]) Execute(request Request, task func(Request) (Response, error)) (Response, error) {
	args := m.Called(request, task)
	resp, _ := args.Get(0).(Response)
	return resp, args.Error(1)
}

// MockManualCircuitBreaker is a testify mock of the permit API.
type MockManualCircuitBreaker struct {
	mock.Mock
}

func (m *MockManualCircuitBreaker) IsAllowed() bool { return m.Called().Bool(0) }
func (m *MockManualCircuitBreaker) RecordSuccess()  { m.Called() }
func (m *MockManualCircuitBreaker) RecordFailure()  { m.Called() }
