package llm

import "context"

// MockHealthChecker permite tests sin latencia ni azar.
type MockHealthChecker struct {
	Health Health
	Err    error
	Calls  int
}

func (m *MockHealthChecker) CheckHealth(ctx context.Context) (Health, error) {
	m.Calls++
	return m.Health, m.Err
}
