package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/rank-tracker/internal/service/api/httputil"
	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	"github.com/darkkaiser/rank-tracker/internal/store/sqlite"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// fakeRunner 실행 엔진 호출 인자를 기록하고 미리 지정된 결과를 반환합니다.
type fakeRunner struct {
	mu sync.Mutex

	runResult *autosearch.RunResult
	runErr    error

	summary *autosearch.BatchSummary

	lookupResult *autosearch.LookupResult
	lookupErr    error

	gotConfigID  int64
	gotProfileID *int64
	gotRunBy     contract.RunBy
	gotLookup    autosearch.LookupRequest
}

func (f *fakeRunner) RunOnce(ctx context.Context, configID int64, profileID *int64) (*autosearch.RunResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gotConfigID = configID
	f.gotProfileID = profileID
	f.gotRunBy = contract.RunByFromContext(ctx)
	return f.runResult, f.runErr
}

func (f *fakeRunner) RunAllActive(ctx context.Context, profileID *int64) *autosearch.BatchSummary {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gotProfileID = profileID
	f.gotRunBy = contract.RunByFromContext(ctx)
	if f.summary == nil {
		return &autosearch.BatchSummary{}
	}
	return f.summary
}

func (f *fakeRunner) Lookup(ctx context.Context, req autosearch.LookupRequest) (*autosearch.LookupResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.gotLookup = req
	f.gotRunBy = contract.RunByFromContext(ctx)
	return f.lookupResult, f.lookupErr
}

type testEnv struct {
	e      *echo.Echo
	h      *Handler
	store  *sqlite.Store
	runner *fakeRunner
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// 핸들러 로그가 테스트 출력에 섞이지 않도록 버립니다.
	logger := applog.StandardLogger()
	prevOut, prevFormatter := logger.Out, logger.Formatter
	logger.SetOutput(new(bytes.Buffer))
	logger.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() {
		logger.SetOutput(prevOut)
		logger.SetFormatter(prevFormatter)
	})

	store, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	runner := &fakeRunner{}
	h := NewHandler(runner, store, 7)
	h.now = func() time.Time { return fixedNow }

	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler

	e.POST("/auto-search/run", h.RunHandler)
	e.POST("/auto-search/run-all", h.RunAllHandler)
	e.GET("/auto-search/configs", h.ListConfigsHandler)
	e.POST("/auto-search/configs", h.CreateConfigHandler)
	e.GET("/auto-search/configs/:id", h.GetConfigHandler)
	e.PUT("/auto-search/configs/:id", h.UpdateConfigHandler)
	e.DELETE("/auto-search/configs/:id", h.DeleteConfigHandler)
	e.GET("/auto-search/history/:id", h.HistoryHandler)
	e.GET("/auto-search/logs/:id", h.RunLogsHandler)
	e.GET("/auto-search/dashboard", h.DashboardHandler)
	e.POST("/search", h.SearchHandler)
	e.GET("/notifications", h.ListNotificationsHandler)
	e.DELETE("/notifications", h.DeleteAllNotificationsHandler)
	e.POST("/notifications/read-all", h.MarkAllNotificationsReadHandler)
	e.PATCH("/notifications/:id/read", h.MarkNotificationReadHandler)
	e.GET("/credentials", h.ListCredentialsHandler)
	e.POST("/credentials", h.CreateCredentialHandler)
	e.DELETE("/credentials/:id", h.DeleteCredentialHandler)
	e.POST("/cleanup-logs", h.CleanupLogsHandler)

	return &testEnv{e: e, h: h, store: store, runner: runner}
}

func (env *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (env *testEnv) createConfig(t *testing.T, name string, active bool) *autosearch.SearchConfig {
	t.Helper()

	c := &autosearch.SearchConfig{
		Name:              name,
		SearchQuery:       "무선 이어폰",
		TargetProductName: "갤럭시 버즈",
		MaxPages:          10,
		IntervalHours:     6,
		IsActive:          active,
	}
	require.NoError(t, env.store.CreateConfig(context.Background(), c))
	return c
}

func (env *testEnv) createRunLog(t *testing.T, configID int64, startedAt time.Time, status autosearch.RunStatus) int64 {
	t.Helper()

	ctx := context.Background()
	id, err := env.store.CreateRunLog(ctx, &autosearch.RunLog{
		ConfigID:  configID,
		RunID:     startedAt.Format("20060102150405"),
		Trigger:   "user",
		StartedAt: startedAt,
	})
	require.NoError(t, err)

	if status != autosearch.RunStatusRunning {
		require.NoError(t, env.store.CompleteRunLog(ctx, id, autosearch.RunCompletion{
			Status:      status,
			CompletedAt: startedAt.Add(time.Second),
			DurationMs:  1000,
		}))
	}
	return id
}
