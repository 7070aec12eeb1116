package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/divsmith/zmk-keymap-tools/internal/keymap"
)

// MockManager is a testify mock for the Manager interface.
type MockManager struct {
	mock.Mock
}

func (m *MockManager) FormatFiles(ctx context.Context, paths []string) []keymap.FileResult {
	args := m.Called(ctx, paths)
	res, _ := args.Get(0).([]keymap.FileResult)
	return res
}

func (m *MockManager) ValidateFile(ctx context.Context, path string, opts ValidateOptions) error {
	args := m.Called(ctx, path, opts)
	return args.Error(0)
}

func (m *MockManager) WatchValidation(ctx context.Context, path string,
	opts ValidateOptions, readyChan chan<- struct{},
) error {
	args := m.Called(ctx, path, opts, readyChan)
	return args.Error(0)
}

// mockEnvProvider serves env values from a map without touching the
// process environment.
type mockEnvProvider struct {
	values map[string]string
}

func (m *mockEnvProvider) Get(key string) string {
	return m.values[key]
}
