// Package request v1 API 요청 본문 모델을 정의합니다.
package request

import (
	"strings"

	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
)

const (
	// DefaultConfigMaxPages 설정 생성 시 max_pages를 생략하면 사용하는 값
	DefaultConfigMaxPages = 10

	// DefaultIntervalHours 설정 생성 시 interval_hours를 생략하면 사용하는 값
	DefaultIntervalHours = 6.0
)

// RunRequest 자동 검색 설정 1건 실행 요청
type RunRequest struct {
	// 실행할 설정 ID
	ConfigID int64 `json:"config_id" validate:"required,gt=0" korean:"설정 ID" example:"1"`
	// 설정에 연결된 인증 프로필 대신 사용할 프로필 ID
	ProfileID *int64 `json:"profile_id,omitempty" validate:"omitempty,gt=0" korean:"인증 프로필 ID" example:"2"`
}

// RunAllRequest 활성 설정 전체 실행 요청
type RunAllRequest struct {
	ProfileID *int64 `json:"profile_id,omitempty" validate:"omitempty,gt=0" korean:"인증 프로필 ID" example:"2"`
}

// ConfigRequest 자동 검색 설정 생성/수정 요청
type ConfigRequest struct {
	Name              string   `json:"name" validate:"required,max=100" korean:"설정 이름" example:"무선 이어폰 순위"`
	SearchQuery       string   `json:"search_query" validate:"required,max=100" korean:"검색어" example:"무선 이어폰"`
	TargetProductName string   `json:"target_product_name" validate:"required_without_all=TargetMallName TargetBrand,max=200" korean:"상품명" example:"갤럭시 버즈3 프로"`
	TargetMallName    string   `json:"target_mall_name" validate:"max=100" korean:"쇼핑몰명" example:"삼성전자 공식몰"`
	TargetBrand       string   `json:"target_brand" validate:"max=100" korean:"브랜드" example:"삼성"`
	MaxPages          int      `json:"max_pages" validate:"omitempty,min=1,max=100" korean:"최대 페이지" example:"10"`
	ProfileID         *int64   `json:"profile_id,omitempty" validate:"omitempty,gt=0" korean:"인증 프로필 ID"`
	IntervalHours     *float64 `json:"interval_hours,omitempty" validate:"omitempty,gte=0.5,lte=8760" korean:"실행 주기(시간)" example:"6"`
	IsActive          *bool    `json:"is_active,omitempty" korean:"활성 여부"`
	Description       string   `json:"description" validate:"max=500" korean:"설명"`
}

// Normalize 문자열 항목의 앞뒤 공백을 제거합니다. 검증 전에 호출해야 합니다.
func (r *ConfigRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.SearchQuery = strings.TrimSpace(r.SearchQuery)
	r.TargetProductName = strings.TrimSpace(r.TargetProductName)
	r.TargetMallName = strings.TrimSpace(r.TargetMallName)
	r.TargetBrand = strings.TrimSpace(r.TargetBrand)
	r.Description = strings.TrimSpace(r.Description)
}

// ApplyTo 요청 값을 설정에 반영합니다. 생략된 값은 기본값을 사용합니다.
// 실행 카운터와 최근 실행 정보는 변경하지 않습니다.
func (r *ConfigRequest) ApplyTo(c *autosearch.SearchConfig) {
	c.Name = r.Name
	c.SearchQuery = r.SearchQuery
	c.TargetProductName = r.TargetProductName
	c.TargetMallName = r.TargetMallName
	c.TargetBrand = r.TargetBrand
	c.CredentialProfileID = r.ProfileID
	c.Description = r.Description

	c.MaxPages = r.MaxPages
	if c.MaxPages == 0 {
		c.MaxPages = DefaultConfigMaxPages
	}

	c.IntervalHours = DefaultIntervalHours
	if r.IntervalHours != nil {
		c.IntervalHours = *r.IntervalHours
	}

	c.IsActive = true
	if r.IsActive != nil {
		c.IsActive = *r.IsActive
	}
}

// CredentialRequest 검색 API 인증 프로필 등록 요청
type CredentialRequest struct {
	Name         string `json:"name" validate:"required,max=100" korean:"프로필 이름" example:"기본 키"`
	ClientID     string `json:"client_id" validate:"required,max=200" korean:"Client ID"`
	ClientSecret string `json:"client_secret" validate:"required,max=200" korean:"Client Secret"`
	IsDefault    bool   `json:"is_default" korean:"기본 프로필 여부"`
}

// Normalize 문자열 항목의 앞뒤 공백을 제거합니다.
func (r *CredentialRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.ClientID = strings.TrimSpace(r.ClientID)
	r.ClientSecret = strings.TrimSpace(r.ClientSecret)
}

// SearchRequest 저장하지 않는 일회성 순위 확인 요청
type SearchRequest struct {
	SearchQuery       string `json:"search_query" validate:"required,max=100" korean:"검색어" example:"무선 이어폰"`
	TargetProductName string `json:"target_product_name" validate:"required_without_all=TargetMallName TargetBrand,max=200" korean:"상품명"`
	TargetMallName    string `json:"target_mall_name" validate:"max=100" korean:"쇼핑몰명"`
	TargetBrand       string `json:"target_brand" validate:"max=100" korean:"브랜드"`
	MaxPages          int    `json:"max_pages" validate:"omitempty,min=1,max=100" korean:"최대 페이지" example:"10"`
	ProfileID         *int64 `json:"profile_id,omitempty" validate:"omitempty,gt=0" korean:"인증 프로필 ID"`
}

// Normalize 문자열 항목의 앞뒤 공백을 제거합니다.
func (r *SearchRequest) Normalize() {
	r.SearchQuery = strings.TrimSpace(r.SearchQuery)
	r.TargetProductName = strings.TrimSpace(r.TargetProductName)
	r.TargetMallName = strings.TrimSpace(r.TargetMallName)
	r.TargetBrand = strings.TrimSpace(r.TargetBrand)
}

// LookupRequest 엔진의 순위 확인 요청으로 변환합니다.
func (r *SearchRequest) LookupRequest() autosearch.LookupRequest {
	return autosearch.LookupRequest{
		Query: r.SearchQuery,
		Target: autosearch.Target{
			ProductName: r.TargetProductName,
			MallName:    r.TargetMallName,
			Brand:       r.TargetBrand,
		},
		MaxPages:  r.MaxPages,
		ProfileID: r.ProfileID,
	}
}
