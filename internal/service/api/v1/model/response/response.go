// Package response v1 API 응답 모델을 정의합니다.
package response

import (
	"time"

	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	"github.com/darkkaiser/rank-tracker/pkg/strutil"
)

// RunResponse 설정 1건 실행 결과
type RunResponse struct {
	Success bool                  `json:"success" example:"true"`
	Message string                `json:"message" example:"자동 검색이 성공적으로 완료되었습니다"`
	Result  *autosearch.RunResult `json:"result"`
}

// RunAllResponse 활성 설정 전체 실행 결과
type RunAllResponse struct {
	Success bool                     `json:"success" example:"true"`
	Summary *autosearch.BatchSummary `json:"summary"`
}

// ConfigResponse 설정 1건
type ConfigResponse struct {
	Config *autosearch.SearchConfig `json:"config"`
}

// ConfigListResponse 설정 목록
type ConfigListResponse struct {
	Configs []*autosearch.SearchConfig `json:"configs"`
}

// RunLogListResponse 실행 로그 목록
type RunLogListResponse struct {
	ConfigID int64               `json:"config_id" example:"1"`
	Logs     []autosearch.RunLog `json:"logs"`
}

// NotificationListResponse 알림 목록
type NotificationListResponse struct {
	Notifications []contract.NotificationRecord `json:"notifications"`
	UnreadCount   int                           `json:"unread_count" example:"3"`
}

// AffectedResponse 일괄 변경 결과
type AffectedResponse struct {
	Success  bool  `json:"success" example:"true"`
	Affected int64 `json:"affected" example:"5"`
}

// CleanupResponse 실행 로그 정리 결과
type CleanupResponse struct {
	Success       bool      `json:"success" example:"true"`
	DeletedCount  int64     `json:"deleted_count" example:"12"`
	RetentionDays int       `json:"retention_days" example:"7"`
	Before        time.Time `json:"before"`
}

// Credential 인증 정보가 마스킹된 인증 프로필
type Credential struct {
	ID           int64     `json:"id" example:"1"`
	Name         string    `json:"name" example:"기본 키"`
	ClientID     string    `json:"client_id" example:"abcd***wxyz"`
	ClientSecret string    `json:"client_secret" example:"abcd***wxyz"`
	APIType      string    `json:"api_type" example:"shopping"`
	IsActive     bool      `json:"is_active" example:"true"`
	IsDefault    bool      `json:"is_default" example:"true"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewCredential Client ID와 Secret을 마스킹한 응답을 생성합니다.
func NewCredential(p *autosearch.CredentialProfile) Credential {
	return Credential{
		ID:           p.ID,
		Name:         p.Name,
		ClientID:     strutil.Mask(p.ClientID),
		ClientSecret: strutil.Mask(p.ClientSecret),
		APIType:      p.APIType,
		IsActive:     p.IsActive,
		IsDefault:    p.IsDefault,
		CreatedAt:    p.CreatedAt,
	}
}

// CredentialListResponse 인증 프로필 목록
type CredentialListResponse struct {
	Credentials []Credential `json:"credentials"`
}
