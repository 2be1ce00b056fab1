package autosearch

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	"github.com/darkkaiser/rank-tracker/internal/service/shopping"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

// memStore 테스트용 메모리 저장소
type memStore struct {
	mu sync.Mutex

	configs  map[int64]*SearchConfig
	profiles map[int64]*CredentialProfile
	runLogs  map[int64]*RunLog
	results  []MatchedResult

	nextLogID   int64
	insertCalls int

	listErr      error
	createLogErr error
	insertErr    error

	recordSuccessErr error
}

func newMemStore() *memStore {
	return &memStore{
		configs:  make(map[int64]*SearchConfig),
		profiles: make(map[int64]*CredentialProfile),
		runLogs:  make(map[int64]*RunLog),
	}
}

func (s *memStore) addConfig(c *SearchConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[c.ID] = c
}

func (s *memStore) addProfile(p *CredentialProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = p
}

func (s *memStore) config(id int64) SearchConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.configs[id]
}

func (s *memStore) logs() []RunLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.runLogs))
	for id := range s.runLogs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	logs := make([]RunLog, 0, len(ids))
	for _, id := range ids {
		logs = append(logs, *s.runLogs[id])
	}
	return logs
}

func (s *memStore) allResults() []MatchedResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.results)
}

func (s *memStore) GetActiveConfig(_ context.Context, id int64) (*SearchConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.configs[id]
	if !ok || !c.IsActive {
		return nil, apperrors.Newf(apperrors.NotFound, "config %d not found", id)
	}
	cp := *c
	return &cp, nil
}

func (s *memStore) ListActiveConfigs(_ context.Context) ([]*SearchConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listErr != nil {
		return nil, s.listErr
	}

	var out []*SearchConfig
	for _, c := range s.configs {
		if c.IsActive {
			cp := *c
			out = append(out, &cp)
		}
	}
	slices.SortFunc(out, func(a, b *SearchConfig) int { return int(a.ID - b.ID) })
	return out, nil
}

func (s *memStore) GetCredentialProfile(_ context.Context, id int64) (*CredentialProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles[id]
	if !ok {
		return nil, apperrors.Newf(apperrors.NotFound, "profile %d not found", id)
	}
	cp := *p
	return &cp, nil
}

func (s *memStore) GetDefaultCredentialProfile(_ context.Context, apiType string) (*CredentialProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.profiles {
		if p.IsDefault && p.IsActive && p.APIType == apiType {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperrors.New(apperrors.NotFound, "default profile not found")
}

func (s *memStore) CreateRunLog(_ context.Context, log *RunLog) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createLogErr != nil {
		return 0, s.createLogErr
	}

	s.nextLogID++
	cp := *log
	cp.ID = s.nextLogID
	s.runLogs[cp.ID] = &cp
	return cp.ID, nil
}

func (s *memStore) CompleteRunLog(_ context.Context, id int64, c RunCompletion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.runLogs[id]
	if !ok {
		return apperrors.New(apperrors.NotFound, "run log not found")
	}
	if l.Status != RunStatusRunning {
		return fmt.Errorf("run log %d already completed", id)
	}

	completedAt := c.CompletedAt
	l.Status = c.Status
	l.CompletedAt = &completedAt
	l.DurationMs = c.DurationMs
	l.ResultsCount = c.ResultsCount
	l.ErrorMessage = c.ErrorMessage
	l.ResultSample = slices.Clone(c.ResultSample)
	return nil
}

func (s *memStore) InsertResults(_ context.Context, results []MatchedResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.insertCalls++
	if s.insertErr != nil {
		return s.insertErr
	}
	s.results = append(s.results, results...)
	return nil
}

func (s *memStore) RecordRunSuccess(_ context.Context, configID int64, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recordSuccessErr != nil {
		return s.recordSuccessErr
	}

	c := s.configs[configID]
	c.RunCount++
	c.SuccessCount++
	c.LastRunAt = &at
	return nil
}

func (s *memStore) RecordRunFailure(_ context.Context, configID int64, at time.Time, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.configs[configID]
	c.RunCount++
	c.ErrorCount++
	c.LastRunAt = &at
	c.LastError = message
	return nil
}

// pageFunc start 값에 대한 응답을 만듭니다.
type pageFunc func(start int) (*shopping.Page, error)

// fakeSearcher 호출된 start 값을 기록하는 검색 API 대역
type fakeSearcher struct {
	mu     sync.Mutex
	starts []int
	creds  []shopping.Credentials
	fn     pageFunc
}

func (f *fakeSearcher) FetchPage(_ context.Context, creds shopping.Credentials, req shopping.PageRequest) (*shopping.Page, error) {
	f.mu.Lock()
	f.starts = append(f.starts, req.Start)
	f.creds = append(f.creds, creds)
	fn := f.fn
	f.mu.Unlock()

	return fn(req.Start)
}

func (f *fakeSearcher) calls() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.starts)
}

// recordingSink 전달된 알림을 기록합니다.
type recordingSink struct {
	mu  sync.Mutex
	got []contract.Notification
	err error
}

func (s *recordingSink) Emit(_ context.Context, n contract.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
	return s.err
}

func (s *recordingSink) notifications() []contract.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.got)
}

const targetTitle = "<b>무선</b> 이어폰 프로"

// makePage n개의 상품을 만들고 matchAt 위치에는 대상 상품을 놓습니다.
func makePage(n int, matchAt ...int) *shopping.Page {
	items := make([]shopping.Item, n)
	for i := range items {
		items[i] = shopping.Item{
			Title:     fmt.Sprintf("다른 상품 %d", i),
			MallName:  "기타몰",
			ProductID: fmt.Sprintf("p-%d", i),
			LowPrice:  int64(1000 + i),
		}
	}
	for _, i := range matchAt {
		items[i] = shopping.Item{
			Title:     targetTitle,
			MallName:  "네이버",
			Brand:     "<b>Sony</b>",
			ProductID: fmt.Sprintf("target-%d", i),
			Link:      "https://search.shopping.naver.com/catalog/1",
			LowPrice:  129000,
			Category1: "디지털/가전",
		}
	}
	return &shopping.Page{Total: 5000, Display: n, Items: items}
}

func fullPages(matchAt ...int) pageFunc {
	return func(start int) (*shopping.Page, error) {
		p := makePage(ItemsPerAPIPage, matchAt...)
		p.Start = start
		return p, nil
	}
}

func upstreamErr(status int, code string) error {
	return &shopping.UpstreamError{StatusCode: status, Code: code, Message: "upstream failure", Attempts: 4}
}

func int64Ptr(v int64) *int64 { return &v }

// newFixture 기본 설정(id=1), 기본 인증 프로필(id=10)을 가진 테스트 환경을 구성합니다.
func newFixture(fn pageFunc, opts ...Option) (*Engine, *memStore, *fakeSearcher, *recordingSink) {
	store := newMemStore()
	store.addConfig(&SearchConfig{
		ID:                1,
		Name:              "이어폰 순위",
		SearchQuery:       "무선 이어폰",
		TargetProductName: "무선 이어폰 프로",
		MaxPages:          5,
		IsActive:          true,
	})
	store.addProfile(&CredentialProfile{
		ID:           10,
		Name:         "기본",
		ClientID:     "default-client",
		ClientSecret: "default-secret",
		APIType:      APITypeShopping,
		IsActive:     true,
		IsDefault:    true,
	})

	searcher := &fakeSearcher{fn: fn}
	sink := &recordingSink{}

	runSeq := 0
	base := []Option{
		WithClock(func() time.Time { return testNow }),
		WithSleeper(func(time.Duration) {}),
		WithRunIDGenerator(func() string {
			runSeq++
			return fmt.Sprintf("run-%d", runSeq)
		}),
	}

	return NewEngine(store, searcher, sink, append(base, opts...)...), store, searcher, sink
}
