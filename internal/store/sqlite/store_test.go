package sqlite

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	s.now = func() time.Time { return baseTime }
	return s
}

func createConfig(t *testing.T, s *Store, name string, active bool) *autosearch.SearchConfig {
	t.Helper()

	c := &autosearch.SearchConfig{
		Name:              name,
		SearchQuery:       "무선 이어폰",
		TargetProductName: "무선 이어폰 프로",
		MaxPages:          5,
		IsActive:          active,
	}
	require.NoError(t, s.CreateConfig(context.Background(), c))
	return c
}

func sampleResults(configID int64, runID string, at time.Time, ranks ...int) []autosearch.MatchedResult {
	results := make([]autosearch.MatchedResult, 0, len(ranks))
	for _, rank := range ranks {
		r := autosearch.Remap(1, rank-1)
		results = append(results, autosearch.MatchedResult{
			ConfigID:        configID,
			RunID:           runID,
			SearchQuery:     "무선 이어폰",
			TotalRank:       r.TotalRank,
			WebPage:         r.WebPage,
			RankInWebPage:   r.RankInWebPage,
			ProductTitle:    fmt.Sprintf("무선 이어폰 프로 %d", rank),
			MallName:        "네이버",
			Brand:           "Sony",
			Price:           129000,
			IsExactMatch:    true,
			MatchConfidence: 1,
			CheckDate:       at.Format(time.DateOnly),
			CreatedAt:       at,
		})
	}
	return results
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, s.migrate(context.Background()))

	var versions int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&versions))
	assert.Equal(t, 1, versions)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestOpen_EmptyPath(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), " ")
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
}

func TestParseMigrationVersion(t *testing.T) {
	t.Parallel()

	v, err := parseMigrationVersion("012_add_index.sql")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	_, err = parseMigrationVersion("init.sql")
	assert.Error(t, err)
	_, err = parseMigrationVersion("abc_init.sql")
	assert.Error(t, err)
}

func TestStore_ConfigCRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	c := createConfig(t, s, "이어폰", true)
	require.NotZero(t, c.ID)
	assert.Equal(t, baseTime, c.CreatedAt)

	got, err := s.GetConfig(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "무선 이어폰 프로", got.TargetProductName)
	assert.Equal(t, 5, got.MaxPages)
	assert.True(t, got.IsActive)
	assert.Nil(t, got.CredentialProfileID)
	assert.Nil(t, got.LastRunAt)

	got.Name = "이어폰 (수정)"
	got.IsActive = false
	got.IntervalHours = 1.5
	require.NoError(t, s.UpdateConfig(ctx, got))

	updated, err := s.GetConfig(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "이어폰 (수정)", updated.Name)
	assert.Equal(t, 1.5, updated.IntervalHours)

	_, err = s.GetActiveConfig(ctx, c.ID)
	assert.True(t, apperrors.Is(err, apperrors.NotFound), "비활성 설정은 활성 조회에서 제외됩니다")

	all, err := s.ListConfigs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.DeleteConfig(ctx, c.ID))
	_, err = s.GetConfig(ctx, c.ID)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))

	assert.True(t, apperrors.Is(s.DeleteConfig(ctx, c.ID), apperrors.NotFound))
	assert.True(t, apperrors.Is(s.UpdateConfig(ctx, c), apperrors.NotFound))
}

func TestStore_ListActiveConfigs(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	a := createConfig(t, s, "a", true)
	createConfig(t, s, "b", false)
	c := createConfig(t, s, "c", true)

	configs, err := s.ListActiveConfigs(context.Background())
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, a.ID, configs[0].ID)
	assert.Equal(t, c.ID, configs[1].ID)
}

func TestStore_RunCounters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	c := createConfig(t, s, "이어폰", true)

	at := baseTime.Add(time.Minute)
	require.NoError(t, s.RecordRunSuccess(ctx, c.ID, at))
	require.NoError(t, s.RecordRunFailure(ctx, c.ID, at.Add(time.Minute), "검색 API 호출 실패"))
	require.NoError(t, s.RecordRunSuccess(ctx, c.ID, at.Add(2*time.Minute)))

	got, err := s.GetConfig(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.RunCount)
	assert.Equal(t, int64(2), got.SuccessCount)
	assert.Equal(t, int64(1), got.ErrorCount)
	assert.Equal(t, "검색 API 호출 실패", got.LastError)
	require.NotNil(t, got.LastRunAt)
	assert.Equal(t, at.Add(2*time.Minute), *got.LastRunAt)

	assert.True(t, apperrors.Is(s.RecordRunSuccess(ctx, 999, at), apperrors.NotFound))
}

func TestStore_RunCounters_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	c := createConfig(t, s, "이어폰", true)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				assert.NoError(t, s.RecordRunSuccess(ctx, c.ID, baseTime))
			} else {
				assert.NoError(t, s.RecordRunFailure(ctx, c.ID, baseTime, "x"))
			}
		}(i)
	}
	wg.Wait()

	got, err := s.GetConfig(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), got.RunCount)
	assert.Equal(t, got.RunCount, got.SuccessCount+got.ErrorCount)
}

func TestStore_CredentialProfiles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.GetDefaultCredentialProfile(ctx, autosearch.APITypeShopping)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))

	first := &autosearch.CredentialProfile{Name: "첫번째", ClientID: "id-1", ClientSecret: "secret-1", IsActive: true, IsDefault: true}
	require.NoError(t, s.CreateCredentialProfile(ctx, first))
	assert.Equal(t, autosearch.APITypeShopping, first.APIType)

	second := &autosearch.CredentialProfile{Name: "두번째", ClientID: "id-2", ClientSecret: "secret-2", IsActive: true, IsDefault: true}
	require.NoError(t, s.CreateCredentialProfile(ctx, second))

	def, err := s.GetDefaultCredentialProfile(ctx, autosearch.APITypeShopping)
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID, "새 기본 프로필이 이전 기본 지정을 해제합니다")

	got, err := s.GetCredentialProfile(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
	assert.Equal(t, "secret-1", got.ClientSecret)

	profiles, err := s.ListCredentialProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 2)

	// 프로필을 삭제하면 연결된 설정은 연결이 해제됩니다.
	c := createConfig(t, s, "이어폰", true)
	c.CredentialProfileID = &second.ID
	require.NoError(t, s.UpdateConfig(ctx, c))
	require.NoError(t, s.DeleteCredentialProfile(ctx, second.ID))

	cfg, err := s.GetConfig(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, cfg.CredentialProfileID)

	_, err = s.GetCredentialProfile(ctx, second.ID)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
}

func TestStore_RunLogLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	c := createConfig(t, s, "이어폰", true)

	id, err := s.CreateRunLog(ctx, &autosearch.RunLog{ConfigID: c.ID, RunID: "run-1", Trigger: "scheduler", StartedAt: baseTime})
	require.NoError(t, err)

	logs, err := s.ListRunLogs(ctx, c.ID, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, autosearch.RunStatusRunning, logs[0].Status)
	assert.Nil(t, logs[0].CompletedAt)

	sample := sampleResults(c.ID, "run-1", baseTime, 3)
	require.NoError(t, s.CompleteRunLog(ctx, id, autosearch.RunCompletion{
		Status:       autosearch.RunStatusSuccess,
		CompletedAt:  baseTime.Add(1500 * time.Millisecond),
		DurationMs:   1500,
		ResultsCount: 1,
		ResultSample: sample,
	}))

	logs, err = s.ListRunLogs(ctx, c.ID, 0)
	require.NoError(t, err)
	l := logs[0]
	assert.Equal(t, autosearch.RunStatusSuccess, l.Status)
	assert.Equal(t, "run-1", l.RunID)
	assert.Equal(t, "scheduler", l.Trigger)
	assert.Equal(t, int64(1500), l.DurationMs)
	require.NotNil(t, l.CompletedAt)
	assert.Equal(t, baseTime.Add(1500*time.Millisecond), *l.CompletedAt)
	require.Len(t, l.ResultSample, 1)
	assert.Equal(t, 3, l.ResultSample[0].TotalRank)

	// 종료된 로그는 다시 전이되지 않습니다.
	err = s.CompleteRunLog(ctx, id, autosearch.RunCompletion{Status: autosearch.RunStatusError, CompletedAt: baseTime})
	assert.True(t, apperrors.Is(err, apperrors.Conflict))

	err = s.CompleteRunLog(ctx, id, autosearch.RunCompletion{Status: autosearch.RunStatusRunning})
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
}

func TestStore_DeleteRunLogsBefore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	c := createConfig(t, s, "이어폰", true)

	old, err := s.CreateRunLog(ctx, &autosearch.RunLog{ConfigID: c.ID, RunID: "old", StartedAt: baseTime.AddDate(0, 0, -10)})
	require.NoError(t, err)
	require.NoError(t, s.CompleteRunLog(ctx, old, autosearch.RunCompletion{Status: autosearch.RunStatusError, CompletedAt: baseTime.AddDate(0, 0, -10)}))

	_, err = s.CreateRunLog(ctx, &autosearch.RunLog{ConfigID: c.ID, RunID: "stuck", StartedAt: baseTime.AddDate(0, 0, -9)})
	require.NoError(t, err)

	recent, err := s.CreateRunLog(ctx, &autosearch.RunLog{ConfigID: c.ID, RunID: "recent", StartedAt: baseTime.AddDate(0, 0, -1)})
	require.NoError(t, err)
	require.NoError(t, s.CompleteRunLog(ctx, recent, autosearch.RunCompletion{Status: autosearch.RunStatusSuccess, CompletedAt: baseTime}))

	require.NoError(t, s.InsertResults(ctx, sampleResults(c.ID, "old", baseTime.AddDate(0, 0, -10), 1)))

	n, err := s.DeleteRunLogsBefore(ctx, baseTime.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	logs, err := s.ListRunLogs(ctx, c.ID, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "recent", logs[0].RunID)
	assert.Equal(t, "stuck", logs[1].RunID)

	_, total, err := s.QueryResults(ctx, c.ID, autosearch.HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total, "검색 결과는 보존 정책의 대상이 아닙니다")
}

func TestStore_InsertResults_AppendOnly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	c := createConfig(t, s, "이어폰", true)

	require.NoError(t, s.InsertResults(ctx, nil))
	require.NoError(t, s.InsertResults(ctx, sampleResults(c.ID, "run-1", baseTime, 1, 41)))
	require.NoError(t, s.InsertResults(ctx, sampleResults(c.ID, "run-2", baseTime.Add(time.Hour), 1, 41)))

	results, total, err := s.QueryResults(ctx, c.ID, autosearch.HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, results, 4)
	assert.Equal(t, "run-2", results[0].RunID)
	assert.Equal(t, 2, results[1].WebPage)
	assert.Equal(t, 1, results[1].RankInWebPage)
	assert.Equal(t, baseTime.Add(time.Hour), results[0].CreatedAt)
}

func TestStore_InsertResults_RollsBackOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	c := createConfig(t, s, "이어폰", true)

	results := sampleResults(c.ID, "run-1", baseTime, 1, 2)
	results[1].ConfigID = 9999 // 외래 키 위반

	err := s.InsertResults(ctx, results)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.System))

	_, total, err := s.QueryResults(ctx, c.ID, autosearch.HistoryFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestStore_QueryResults_Filters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	c := createConfig(t, s, "이어폰", true)

	old := sampleResults(c.ID, "run-old", baseTime.AddDate(0, 0, -10), 1)
	old[0].MallName = "쿠팡"
	recent := sampleResults(c.ID, "run-new", baseTime, 2, 3)
	recent[1].Brand = "Apple"
	recent[1].ProductTitle = "100% 정품 이어폰"
	recent[1].IsExactMatch = false
	require.NoError(t, s.InsertResults(ctx, append(old, recent...)))

	tests := []struct {
		name   string
		filter autosearch.HistoryFilter
		want   int
	}{
		{"조건 없음", autosearch.HistoryFilter{}, 3},
		{"기간", autosearch.HistoryFilter{SinceDays: 7}, 2},
		{"쇼핑몰", autosearch.HistoryFilter{Mall: "쿠팡"}, 1},
		{"브랜드 대소문자 무시", autosearch.HistoryFilter{Brand: "apple"}, 1},
		{"와일드카드 문자 이스케이프", autosearch.HistoryFilter{Query: "100%"}, 1},
		{"정확 일치만", autosearch.HistoryFilter{ExactOnly: true}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, total, err := s.QueryResults(ctx, c.ID, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
		})
	}

	page, total, err := s.QueryResults(ctx, c.ID, autosearch.HistoryFilter{Page: 2, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "run-old", page[0].RunID)
}

func TestStore_QueryResults_PagesByExecution(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	c := createConfig(t, s, "이어폰", true)

	require.NoError(t, s.InsertResults(ctx, sampleResults(c.ID, "run-1", baseTime.Add(-2*time.Hour), 1, 2, 3)))
	require.NoError(t, s.InsertResults(ctx, sampleResults(c.ID, "run-2", baseTime.Add(-time.Hour), 4, 5, 6)))
	require.NoError(t, s.InsertResults(ctx, sampleResults(c.ID, "", baseTime, 7, 8)))

	runIDs := func(results []autosearch.MatchedResult) []string {
		ids := make([]string, len(results))
		for i, r := range results {
			ids[i] = r.RunID
		}
		return ids
	}

	tests := []struct {
		name   string
		filter autosearch.HistoryFilter
		want   []string
	}{
		{"실행 ID가 없는 결과는 생성 시각으로 묶음", autosearch.HistoryFilter{Page: 1, PageSize: 1}, []string{"", ""}},
		{"한 실행의 결과는 나뉘지 않음", autosearch.HistoryFilter{Page: 2, PageSize: 1}, []string{"run-2", "run-2", "run-2"}},
		{"두 실행", autosearch.HistoryFilter{Page: 2, PageSize: 2}, []string{"run-1", "run-1", "run-1"}},
		{"범위 밖", autosearch.HistoryFilter{Page: 4, PageSize: 1}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, total, err := s.QueryResults(ctx, c.ID, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, 8, total)
			assert.Equal(t, tt.want, runIDs(results))
		})
	}

	h, err := s.History(ctx, c.ID, autosearch.HistoryFilter{PageSize: 1, Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 8, h.TotalResults)
	assert.Equal(t, 3, h.TotalRuns)
	require.Len(t, h.Days, 1)
	require.Len(t, h.Days[0].Executions, 1)
	assert.Len(t, h.Days[0].Executions[0].Results, 3)
}

func TestStore_History(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	c := createConfig(t, s, "이어폰", true)

	require.NoError(t, s.InsertResults(ctx, sampleResults(c.ID, "run-1", baseTime.Add(-24*time.Hour), 5)))
	require.NoError(t, s.InsertResults(ctx, sampleResults(c.ID, "run-2", baseTime, 7, 2)))
	_, err := s.CreateRunLog(ctx, &autosearch.RunLog{ConfigID: c.ID, RunID: "run-2", StartedAt: baseTime})
	require.NoError(t, err)

	h, err := s.History(ctx, c.ID, autosearch.HistoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, c.ID, h.Config.ID)
	assert.Equal(t, 3, h.TotalResults)
	assert.Equal(t, 2, h.TotalRuns)
	assert.Equal(t, 1, h.Page)
	assert.Equal(t, autosearch.DefaultHistoryPageSize, h.PageSize)
	assert.Len(t, h.Logs, 1)

	require.Len(t, h.Days, 2)
	assert.Equal(t, "2025-03-10", h.Days[0].Date)
	require.Len(t, h.Days[0].Executions, 1)
	assert.Equal(t, []int{2, 7}, []int{h.Days[0].Executions[0].Results[0].TotalRank, h.Days[0].Executions[0].Results[1].TotalRank})

	_, err = s.History(ctx, 999, autosearch.HistoryFilter{})
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
}

func TestStore_Notifications(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	c := createConfig(t, s, "이어폰", true)

	id1, err := s.InsertNotification(ctx, contract.Notification{
		Type: contract.NotificationSuccess, Title: "자동 검색 완료", Message: "ok", ConfigID: c.ID, Priority: contract.PriorityNormal,
	})
	require.NoError(t, err)
	_, err = s.InsertNotification(ctx, contract.Notification{
		Type: contract.NotificationError, Title: "자동 검색 실패", Message: "fail", Priority: contract.PriorityHigh,
	})
	require.NoError(t, err)

	records, err := s.ListNotifications(ctx, NotificationFilter{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, contract.NotificationError, records[0].Type)
	assert.Nil(t, records[0].ConfigID)
	require.NotNil(t, records[1].ConfigID)
	assert.Equal(t, c.ID, *records[1].ConfigID)
	assert.False(t, records[1].Read)

	require.NoError(t, s.MarkNotificationRead(ctx, id1))
	assert.True(t, apperrors.Is(s.MarkNotificationRead(ctx, 999), apperrors.NotFound))

	unread, err := s.ListNotifications(ctx, NotificationFilter{UnreadOnly: true})
	require.NoError(t, err)
	assert.Len(t, unread, 1)

	count, err := s.CountUnreadNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	n, err := s.MarkAllNotificationsRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.DeleteAllNotifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	records, err = s.ListNotifications(ctx, NotificationFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_Dashboard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)

	a := createConfig(t, s, "a", true)
	b := createConfig(t, s, "b", true)
	createConfig(t, s, "c", false)

	require.NoError(t, s.RecordRunSuccess(ctx, a.ID, baseTime))
	require.NoError(t, s.RecordRunSuccess(ctx, a.ID, baseTime))
	require.NoError(t, s.RecordRunFailure(ctx, a.ID, baseTime, "x"))
	require.NoError(t, s.RecordRunSuccess(ctx, b.ID, baseTime))

	require.NoError(t, s.InsertResults(ctx, sampleResults(a.ID, "r1", baseTime.Add(-time.Hour), 10)))
	require.NoError(t, s.InsertResults(ctx, sampleResults(a.ID, "r2", baseTime, 4, 9)))
	_, err := s.CreateRunLog(ctx, &autosearch.RunLog{ConfigID: a.ID, RunID: "r2", StartedAt: baseTime})
	require.NoError(t, err)

	d, err := s.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, d.TotalConfigs)
	assert.Equal(t, 2, d.ActiveConfigs)
	assert.Equal(t, int64(4), d.TotalRuns)
	assert.Equal(t, int64(3), d.SuccessRuns)
	assert.Equal(t, int64(1), d.ErrorRuns)
	assert.Equal(t, int64(3), d.TotalResults)

	require.Len(t, d.RecentActivity, 1)
	assert.Equal(t, "a", d.RecentActivity[0].ConfigName)
	assert.Equal(t, "r2", d.RecentActivity[0].RunID)

	require.Len(t, d.TopConfigs, 3)
	assert.Equal(t, a.ID, d.TopConfigs[0].ID)
	assert.Equal(t, 67, d.TopConfigs[0].SuccessRate)
	assert.Equal(t, 100, d.TopConfigs[1].SuccessRate)
	assert.Equal(t, 0, d.TopConfigs[2].SuccessRate)

	require.Len(t, d.Rankings, 2)
	byID := map[int64]autosearch.DashboardRanking{}
	for _, r := range d.Rankings {
		byID[r.ConfigID] = r
	}
	require.NotNil(t, byID[a.ID].Latest)
	assert.Equal(t, 4, byID[a.ID].Latest.TotalRank, "가장 최근 실행의 최고 순위")
	assert.Nil(t, byID[b.ID].Latest)
}
