package usecase

import (
	"context"

	"financial-assistant/internal/model"
	"financial-assistant/internal/sqlgen"
	"financial-assistant/internal/sqlgen/repository"
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

// Mock vector repository for testing
type mockVectorRepo struct {
	searchFunc func(opt repository.SearchSimilarOptions) ([]repository.RetrievedItem, error)
	storeFunc  func(item sqlgen.TrainingItem) error
	stored     []sqlgen.TrainingItem
}

func (m *mockVectorRepo) EnsureCollection(ctx context.Context) error { return nil }

func (m *mockVectorRepo) StoreTrainingItem(ctx context.Context, item sqlgen.TrainingItem) error {
	if m.storeFunc != nil {
		if err := m.storeFunc(item); err != nil {
			return err
		}
	}
	m.stored = append(m.stored, item)
	return nil
}

func (m *mockVectorRepo) SearchSimilar(ctx context.Context, opt repository.SearchSimilarOptions) ([]repository.RetrievedItem, error) {
	if m.searchFunc != nil {
		return m.searchFunc(opt)
	}
	return nil, nil
}

// Mock data repository for testing
type mockDataRepo struct {
	runFunc func(query string) (model.ResultSet, error)
}

func (m *mockDataRepo) RunQuery(ctx context.Context, query string) (model.ResultSet, error) {
	if m.runFunc != nil {
		return m.runFunc(query)
	}
	return model.ResultSet{}, nil
}
