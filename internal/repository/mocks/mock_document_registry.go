package mocks

import (
	"doccatalog/internal/model"
	"doccatalog/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockDocumentRegistry struct {
	mock.Mock
}

var _ repository.DocumentRegistry = (*MockDocumentRegistry)(nil)

func (m *MockDocumentRegistry) Add(doc model.Document) {
	m.Called(doc)
}

func (m *MockDocumentRegistry) ListAll() []model.Entry {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Entry)
}

func (m *MockDocumentRegistry) Info(index int) (model.Entry, error) {
	args := m.Called(index)
	return args.Get(0).(model.Entry), args.Error(1)
}

func (m *MockDocumentRegistry) Count() int {
	args := m.Called()
	return args.Int(0)
}
