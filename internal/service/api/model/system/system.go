// Package system 시스템 엔드포인트(/health, /version) 응답 모델을 정의합니다.
package system

// HealthResponse 헬스체크 응답
type HealthResponse struct {
	// Status 전체 서버 상태 (healthy, unhealthy)
	Status string `json:"status" example:"healthy"`

	// Uptime 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`

	// Dependencies 외부 의존성별 상태
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// DependencyStatus 외부 의존성 1개의 상태
type DependencyStatus struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message,omitempty" example:"정상 작동 중"`
}

// VersionResponse 빌드 정보 응답
type VersionResponse struct {
	Version   string `json:"version" example:"1.0.0"`
	Commit    string `json:"commit" example:"a1b2c3d"`
	BuildDate string `json:"build_date" example:"2025-03-10T09:00:00Z"`
	GoVersion string `json:"go_version" example:"go1.24.0"`
	Platform  string `json:"platform" example:"linux/amd64"`
}
