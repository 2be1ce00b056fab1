// Package mocks notification 패키지 테스트용 Mock 구현체를 제공합니다.
package mocks

import (
	"context"

	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockRepository 알림 저장소 Mock
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) InsertNotification(ctx context.Context, n contract.Notification) (int64, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(int64), args.Error(1)
}

// MockNotifier 외부 채널 Notifier Mock
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockNotifier) Notify(ctx context.Context, n contract.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
