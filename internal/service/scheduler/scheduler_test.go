package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/rank-tracker/internal/config"
	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type fakeRunner struct {
	mu      sync.Mutex
	calls   []time.Time
	runBys  []contract.RunBy
	summary *autosearch.BatchSummary
	called  chan struct{}
}

func (f *fakeRunner) RunDue(ctx context.Context, now time.Time) *autosearch.BatchSummary {
	f.mu.Lock()
	f.calls = append(f.calls, now)
	f.runBys = append(f.runBys, contract.RunByFromContext(ctx))
	summary := f.summary
	f.mu.Unlock()

	if f.called != nil {
		select {
		case f.called <- struct{}{}:
		default:
		}
	}

	if summary == nil {
		return &autosearch.BatchSummary{}
	}
	return summary
}

type mockPruner struct {
	mock.Mock
}

func (m *mockPruner) DeleteRunLogsBefore(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type recordingSink struct {
	mu  sync.Mutex
	got []contract.Notification
}

func (s *recordingSink) Emit(_ context.Context, n contract.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
	return nil
}

func testConfig() config.SchedulerConfig {
	return config.SchedulerConfig{
		Runnable:          true,
		TimeSpec:          "0 */10 * * * *",
		RetentionTimeSpec: "0 0 4 * * *",
		LogRetentionDays:  7,
	}
}

func newTestScheduler(c config.SchedulerConfig) (*Scheduler, *fakeRunner, *mockPruner, *recordingSink) {
	runner := &fakeRunner{}
	pruner := &mockPruner{}
	sink := &recordingSink{}

	s := NewService(c, runner, pruner, sink)
	s.now = func() time.Time { return fixedNow }

	return s, runner, pruner, sink
}

func TestNewService(t *testing.T) {
	assert.PanicsWithValue(t, "DueRunner는 필수입니다", func() {
		NewService(testConfig(), nil, &mockPruner{}, nil)
	})
	assert.PanicsWithValue(t, "LogPruner는 필수입니다", func() {
		NewService(testConfig(), &fakeRunner{}, nil, nil)
	})
	assert.NotPanics(t, func() {
		NewService(testConfig(), &fakeRunner{}, &mockPruner{}, nil)
	})
}

func TestScheduler_Lifecycle(t *testing.T) {
	s, _, _, _ := newTestScheduler(testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))
	assert.True(t, s.running)
	assert.Len(t, s.cron.Entries(), 2)

	// 중복 호출 시 WaitGroup만 정리합니다.
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	cancel()
	wg.Wait()

	assert.False(t, s.running)
	assert.Nil(t, s.cron)
}

func TestScheduler_RetentionDisabled(t *testing.T) {
	c := testConfig()
	c.RetentionTimeSpec = ""
	s, _, _, _ := newTestScheduler(c)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	assert.Len(t, s.cron.Entries(), 1)

	cancel()
	wg.Wait()
}

func TestScheduler_InvalidTimeSpec(t *testing.T) {
	c := testConfig()
	c.TimeSpec = "*/10 * * * *"
	s, _, _, _ := newTestScheduler(c)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	err := s.Start(context.Background(), wg)

	require.Error(t, err)
	assert.Equal(t, apperrors.InvalidInput, apperrors.TypeOf(err))
	assert.Contains(t, err.Error(), "auto_search")
	assert.False(t, s.running)

	// Start가 실패해도 WaitGroup은 정리되어야 합니다.
	wg.Wait()
}

func TestScheduler_FiresAutoSearch(t *testing.T) {
	c := testConfig()
	c.TimeSpec = "* * * * * *"
	s, runner, _, _ := newTestScheduler(c)
	runner.called = make(chan struct{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	select {
	case <-runner.called:
	case <-time.After(3 * time.Second):
		t.Fatal("auto search job was not fired")
	}

	cancel()
	wg.Wait()

	runner.mu.Lock()
	defer runner.mu.Unlock()
	require.NotEmpty(t, runner.runBys)
	assert.Equal(t, contract.RunByScheduler, runner.runBys[0])
}

func TestRunDue(t *testing.T) {
	t.Run("실행 주체와 현재 시각을 전달", func(t *testing.T) {
		s, runner, _, sink := newTestScheduler(testConfig())
		runner.summary = &autosearch.BatchSummary{Attempted: []int64{1, 2}, Succeeded: []int64{1, 2}, Results: 3}

		s.runDue(context.Background())

		assert.Equal(t, []time.Time{fixedNow}, runner.calls)
		assert.Equal(t, []contract.RunBy{contract.RunByScheduler}, runner.runBys)
		assert.Empty(t, sink.got)
	})

	t.Run("설정별 실패는 엔진이 알리므로 추가 알림 없음", func(t *testing.T) {
		s, runner, _, sink := newTestScheduler(testConfig())
		runner.summary = &autosearch.BatchSummary{
			Attempted: []int64{1},
			Failed:    []autosearch.BatchFailure{{ConfigID: 1, Error: "boom"}},
		}

		s.runDue(context.Background())

		assert.Empty(t, sink.got)
	})

	t.Run("목록 조회 실패는 오류 알림", func(t *testing.T) {
		s, runner, _, sink := newTestScheduler(testConfig())
		runner.summary = &autosearch.BatchSummary{ListError: "database is locked"}

		s.runDue(context.Background())

		require.Len(t, sink.got, 1)
		assert.Equal(t, contract.NotificationError, sink.got[0].Type)
		assert.Equal(t, contract.PriorityHigh, sink.got[0].Priority)
		assert.Contains(t, sink.got[0].Message, "database is locked")
	})
}

func TestPruneLogs(t *testing.T) {
	t.Run("보존 기간 이전 로그 삭제", func(t *testing.T) {
		s, _, pruner, sink := newTestScheduler(testConfig())
		pruner.On("DeleteRunLogsBefore", mock.Anything, fixedNow.AddDate(0, 0, -7)).Return(int64(12), nil).Once()

		s.pruneLogs(context.Background())

		pruner.AssertExpectations(t)
		assert.Empty(t, sink.got)
	})

	t.Run("삭제 실패 시 오류 알림", func(t *testing.T) {
		s, _, pruner, sink := newTestScheduler(testConfig())
		pruner.On("DeleteRunLogsBefore", mock.Anything, mock.Anything).Return(int64(0), errors.New("disk I/O error")).Once()

		s.pruneLogs(context.Background())

		require.Len(t, sink.got, 1)
		assert.Contains(t, sink.got[0].Message, "disk I/O error")
	})
}
