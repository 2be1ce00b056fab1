package autosearch

import (
	"cmp"
	"slices"
	"strings"
	"time"
)

const (
	// 검색 이력의 페이지 크기는 결과 행이 아닌 실행 수입니다.
	DefaultHistoryPageSize = 200
	MaxHistoryPageSize     = 500
)

// HistoryFilter 검색 이력 조회 조건. 문자열 조건은 대소문자를 구분하지 않는 부분 일치입니다.
type HistoryFilter struct {
	SinceDays int
	Query     string
	Mall      string
	Brand     string
	ExactOnly bool
	Page      int
	PageSize  int
}

// Normalized 범위를 벗어난 페이지 값을 보정한 사본을 반환합니다.
func (f HistoryFilter) Normalized() HistoryFilter {
	f.Query = strings.TrimSpace(f.Query)
	f.Mall = strings.TrimSpace(f.Mall)
	f.Brand = strings.TrimSpace(f.Brand)
	if f.SinceDays < 0 {
		f.SinceDays = 0
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultHistoryPageSize
	}
	f.PageSize = min(f.PageSize, MaxHistoryPageSize)
	return f
}

// Offset 조회 시작 위치
func (f HistoryFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// HistoryExecution 한 번의 실행에서 찾은 결과 묶음
type HistoryExecution struct {
	RunID     string          `json:"run_id"`
	Timestamp time.Time       `json:"timestamp"`
	Results   []MatchedResult `json:"results"`
}

// HistoryDay 확인 날짜별 실행 목록
type HistoryDay struct {
	Date       string             `json:"date"`
	Executions []HistoryExecution `json:"executions"`
}

// History 설정 1건의 검색 이력
type History struct {
	Config       *SearchConfig `json:"config"`
	Days         []HistoryDay  `json:"history"`
	Logs         []RunLog      `json:"logs"`
	TotalResults int           `json:"total_results"`
	TotalRuns    int           `json:"total_runs"`
	Page         int           `json:"page"`
	PageSize     int           `json:"page_size"`
}

// GroupHistory 결과를 확인 날짜와 실행 ID 기준으로 묶습니다.
// 날짜와 실행은 최신순, 실행 내부의 결과는 순위 오름차순으로 정렬됩니다.
func GroupHistory(results []MatchedResult) []HistoryDay {
	byDate := make(map[string]*HistoryDay)
	byRun := make(map[string]int)
	var order []string

	// 실행 ID가 없는 과거 데이터는 초 단위 생성 시각으로 실행을 구분합니다.
	runKey := func(r MatchedResult) string {
		if r.RunID != "" {
			return r.CheckDate + "|" + r.RunID
		}
		return r.CheckDate + "|" + r.CreatedAt.UTC().Format(time.DateTime)
	}

	for _, r := range results {
		day, ok := byDate[r.CheckDate]
		if !ok {
			day = &HistoryDay{Date: r.CheckDate}
			byDate[r.CheckDate] = day
			order = append(order, r.CheckDate)
		}

		key := runKey(r)
		idx, ok := byRun[key]
		if !ok {
			day.Executions = append(day.Executions, HistoryExecution{RunID: r.RunID, Timestamp: r.CreatedAt})
			idx = len(day.Executions) - 1
			byRun[key] = idx
		}

		exec := &day.Executions[idx]
		exec.Results = append(exec.Results, r)
		if r.CreatedAt.Before(exec.Timestamp) {
			exec.Timestamp = r.CreatedAt
		}
	}

	days := make([]HistoryDay, 0, len(order))
	for _, date := range order {
		days = append(days, *byDate[date])
	}

	slices.SortFunc(days, func(a, b HistoryDay) int { return cmp.Compare(b.Date, a.Date) })
	for i := range days {
		slices.SortFunc(days[i].Executions, func(a, b HistoryExecution) int { return b.Timestamp.Compare(a.Timestamp) })
		for j := range days[i].Executions {
			slices.SortStableFunc(days[i].Executions[j].Results, func(a, b MatchedResult) int { return cmp.Compare(a.TotalRank, b.TotalRank) })
		}
	}

	return days
}

// DashboardActivity 최근 실행 기록
type DashboardActivity struct {
	RunLog
	ConfigName  string `json:"config_name"`
	SearchQuery string `json:"search_query"`
}

// DashboardTopConfig 실행 횟수 기준 상위 설정
type DashboardTopConfig struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SearchQuery  string `json:"search_query"`
	RunCount     int64  `json:"run_count"`
	SuccessCount int64  `json:"success_count"`
	SuccessRate  int    `json:"success_rate"`
}

// DashboardRanking 활성 설정별 가장 최근 순위
type DashboardRanking struct {
	ConfigID    int64          `json:"config_id"`
	ConfigName  string         `json:"config_name"`
	SearchQuery string         `json:"search_query"`
	Target      Target         `json:"target"`
	Latest      *MatchedResult `json:"latest,omitempty"`
}

// Dashboard 전체 현황 요약
type Dashboard struct {
	TotalConfigs   int                  `json:"total_configs"`
	ActiveConfigs  int                  `json:"active_configs"`
	TotalRuns      int64                `json:"total_runs"`
	SuccessRuns    int64                `json:"success_runs"`
	ErrorRuns      int64                `json:"error_runs"`
	TotalResults   int64                `json:"total_results"`
	RecentActivity []DashboardActivity  `json:"recent_activity"`
	TopConfigs     []DashboardTopConfig `json:"top_configs"`
	Rankings       []DashboardRanking   `json:"rankings"`
}

// SuccessRate 성공률(%)을 반올림한 정수로 반환합니다. 실행 이력이 없으면 0입니다.
func SuccessRate(success, total int64) int {
	if total <= 0 {
		return 0
	}
	return int((success*200 + total) / (total * 2))
}
