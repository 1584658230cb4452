package usecase

import (
	"context"

	"financial-assistant/internal/model"
	"financial-assistant/internal/sqlgen"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock SQL generation use case for testing
type mockSQLGen struct {
	generateFunc func(question string) (string, error)
	runFunc      func(query string) (model.ResultSet, error)
	explainFunc  func(in sqlgen.ExplainInput) (string, error)
	runCalls     int
}

func (m *mockSQLGen) GenerateSQL(ctx context.Context, question string) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(question)
	}
	return "SELECT 1", nil
}

func (m *mockSQLGen) RunSQL(ctx context.Context, query string) (model.ResultSet, error) {
	m.runCalls++
	if m.runFunc != nil {
		return m.runFunc(query)
	}
	return model.ResultSet{}, nil
}

func (m *mockSQLGen) Explain(ctx context.Context, in sqlgen.ExplainInput) (string, error) {
	if m.explainFunc != nil {
		return m.explainFunc(in)
	}
	return "explanation", nil
}

func (m *mockSQLGen) Train(ctx context.Context, items []sqlgen.TrainingItem) (int, error) {
	return len(items), nil
}

// Mock online search for testing
type mockSearch struct {
	searchFunc func(question string) (string, error)
}

func (m *mockSearch) Search(ctx context.Context, question string) (string, error) {
	if m.searchFunc != nil {
		return m.searchFunc(question)
	}
	return "search answer", nil
}

func (m *mockSearch) Model() string { return "test-model" }
