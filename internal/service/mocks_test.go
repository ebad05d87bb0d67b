package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/money-tracker/internal/operator/actions"
)

type mockProcessor struct {
	mock.Mock
	// assignID is copied into create actions, standing in for storage.
	assignID uuid.UUID
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	if err := args.Error(0); err != nil {
		return err
	}
	switch a := action.(type) {
	case *actions.CreateTransaction:
		a.ID = m.assignID
	case *actions.CreateGoal:
		a.ID = m.assignID
	}
	return nil
}

type mockPreferenceTable struct {
	mock.Mock
}

func (m *mockPreferenceTable) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockPreferenceTable) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
