package autosearch

import (
	"time"

	"github.com/darkkaiser/rank-tracker/internal/service/contract"
)

// APITypeShopping 네이버 쇼핑 검색 API용 인증 프로필 유형
const APITypeShopping = "shopping"

// SearchConfig 저장된 자동 검색 설정
type SearchConfig struct {
	ID                  int64      `json:"id"`
	Name                string     `json:"name"`
	SearchQuery         string     `json:"search_query"`
	TargetProductName   string     `json:"target_product_name,omitempty"`
	TargetMallName      string     `json:"target_mall_name,omitempty"`
	TargetBrand         string     `json:"target_brand,omitempty"`
	MaxPages            int        `json:"max_pages"`
	CredentialProfileID *int64     `json:"credential_profile_id,omitempty"`
	IntervalHours       float64    `json:"interval_hours"`
	IsActive            bool       `json:"is_active"`
	RunCount            int64      `json:"run_count"`
	SuccessCount        int64      `json:"success_count"`
	ErrorCount          int64      `json:"error_count"`
	LastRunAt           *time.Time `json:"last_run_at,omitempty"`
	LastError           string     `json:"last_error,omitempty"`
	Description         string     `json:"description,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// Target 설정의 검색 대상 조건을 반환합니다.
func (c *SearchConfig) Target() Target {
	return Target{ProductName: c.TargetProductName, MallName: c.TargetMallName, Brand: c.TargetBrand}
}

// Due now 기준으로 실행 주기가 도래했는지 판정합니다.
// 주기가 0 이하인 설정은 수동 실행 전용으로 간주합니다.
func (c *SearchConfig) Due(now time.Time) bool {
	if !c.IsActive || c.IntervalHours <= 0 {
		return false
	}
	if c.LastRunAt == nil {
		return true
	}
	interval := time.Duration(c.IntervalHours * float64(time.Hour))
	return now.Sub(*c.LastRunAt) >= interval
}

// CredentialProfile 네이버 API 인증 프로필
type CredentialProfile struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ClientID     string    `json:"client_id"`
	ClientSecret string    `json:"client_secret"`
	APIType      string    `json:"api_type"`
	IsActive     bool      `json:"is_active"`
	IsDefault    bool      `json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
}

// RunStatus 실행 로그 상태
type RunStatus string

const (
	RunStatusRunning RunStatus = "running"
	RunStatusSuccess RunStatus = "success"
	RunStatusError   RunStatus = "error"
)

// RunLog 설정 1회 실행 기록. running에서 success 또는 error로 한 번만 전이됩니다.
type RunLog struct {
	ID           int64           `json:"id"`
	ConfigID     int64           `json:"config_id"`
	RunID        string          `json:"run_id"`
	Trigger      string          `json:"trigger"`
	Status       RunStatus       `json:"status"`
	StartedAt    time.Time       `json:"started_at"`
	CompletedAt  *time.Time      `json:"completed_at,omitempty"`
	DurationMs   int64           `json:"duration_ms"`
	ResultsCount int             `json:"results_count"`
	ErrorMessage string          `json:"error_message,omitempty"`
	ResultSample []MatchedResult `json:"result_sample,omitempty"`
}

// MatchedResult 실행 중 발견한 일치 상품 1건. 실행마다 새로 추가되며 수정되지 않습니다.
type MatchedResult struct {
	ID                int64     `json:"id"`
	ConfigID          int64     `json:"config_id"`
	RunID             string    `json:"run_id"`
	SearchQuery       string    `json:"search_query"`
	TargetProductName string    `json:"target_product_name,omitempty"`
	TargetMallName    string    `json:"target_mall_name,omitempty"`
	TargetBrand       string    `json:"target_brand,omitempty"`
	TotalRank         int       `json:"total_rank"`
	WebPage           int       `json:"web_page"`
	RankInWebPage     int       `json:"rank_in_web_page"`
	ProductTitle      string    `json:"product_title"`
	MallName          string    `json:"mall_name"`
	Brand             string    `json:"brand,omitempty"`
	Price             int64     `json:"price"`
	ProductLink       string    `json:"product_link"`
	ProductID         string    `json:"product_id"`
	Category1         string    `json:"category1,omitempty"`
	Category2         string    `json:"category2,omitempty"`
	Category3         string    `json:"category3,omitempty"`
	IsExactMatch      bool      `json:"is_exact_match"`
	MatchConfidence   float64   `json:"match_confidence"`
	CheckDate         string    `json:"check_date"`
	CreatedAt         time.Time `json:"created_at"`
}

// RunResult RunOnce 결과
type RunResult struct {
	ConfigID     int64          `json:"config_id"`
	RunLogID     int64          `json:"run_log_id"`
	RunID        string         `json:"run_id"`
	Trigger      contract.RunBy `json:"-"`
	Status       RunStatus      `json:"status"`
	ResultsCount int            `json:"results_count"`
	PagesFetched int            `json:"pages_fetched"`
	PageErrors   int            `json:"page_errors"`
	Duration     time.Duration  `json:"-"`
	DurationMs   int64          `json:"duration_ms"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

// BatchFailure 일괄 실행 중 실패한 설정
type BatchFailure struct {
	ConfigID int64  `json:"config_id"`
	Error    string `json:"error"`
}

// BatchSummary 일괄 실행 결과. 모든 설정을 시도한 뒤에만 반환됩니다.
type BatchSummary struct {
	Attempted []int64        `json:"attempted"`
	Succeeded []int64        `json:"succeeded"`
	Failed    []BatchFailure `json:"failed"`
	Skipped   int            `json:"skipped"`
	Results   int            `json:"results"`
	ListError string         `json:"list_error,omitempty"`
}
