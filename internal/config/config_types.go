package config

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/pkg/validation"
	"github.com/go-playground/validator/v10"
)

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug     bool            `json:"debug"`
	Database  DatabaseConfig  `json:"database"`
	Naver     NaverConfig     `json:"naver"`
	Scheduler SchedulerConfig `json:"scheduler"`
	Notifiers NotifierConfig  `json:"notifiers"`
	API       APIConfig       `json:"api"`
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := c.Database.validate(); err != nil {
		return err
	}
	if err := c.Naver.validate(v); err != nil {
		return err
	}
	if err := c.Scheduler.validate(v); err != nil {
		return err
	}
	if err := c.Notifiers.validate(v); err != nil {
		return err
	}
	return c.API.validate(v)
}

// VerifyRecommendations 서비스 구동을 막지는 않지만 운영상 주의가 필요한 설정에 대한 경고 목록을 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.API.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.API.ListenPort))
	}
	if len(c.API.Applications) == 0 {
		warnings = append(warnings, "등록된 애플리케이션(api.applications)이 없어 모든 /api/v1 요청이 거부됩니다")
	}
	if len(c.Notifiers.Telegrams) == 0 {
		warnings = append(warnings, "텔레그램 알림 채널이 설정되지 않아 알림은 데이터베이스에만 저장됩니다")
	}
	if c.Database.Path == validation.MemoryDatabasePath {
		warnings = append(warnings, "메모리 데이터베이스를 사용하도록 설정되어 프로세스 종료 시 모든 검색 이력이 사라집니다")
	}

	return warnings
}

// DatabaseConfig SQLite 데이터베이스 설정
type DatabaseConfig struct {
	Path string `json:"path"`
}

func (c *DatabaseConfig) validate() error {
	if err := validation.ValidateDatabasePath(c.Path); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "데이터베이스 경로(database.path) 설정이 올바르지 않습니다")
	}
	return nil
}

// NaverConfig 네이버 쇼핑 검색 API 호출 설정
type NaverConfig struct {
	Endpoint    string          `json:"endpoint"`
	Timeout     time.Duration   `json:"timeout" validate:"gt=0"`
	PageDelay   time.Duration   `json:"page_delay" validate:"gte=0"`
	RetryDelays []time.Duration `json:"retry_delays" validate:"max=10,dive,gt=0"`
	MaxPages    int             `json:"max_pages" validate:"min=1,max=25"`
}

func (c *NaverConfig) validate(v *validator.Validate) error {
	if err := validation.ValidateEndpointURL(c.Endpoint); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "네이버 API 엔드포인트(naver.endpoint) 설정이 올바르지 않습니다")
	}
	return checkStruct(v, c, "네이버 API 설정(naver)")
}

// SchedulerConfig 자동 검색 및 실행 로그 정리 스케줄 설정
type SchedulerConfig struct {
	Runnable          bool   `json:"runnable"`
	TimeSpec          string `json:"time_spec" validate:"required_if=Runnable true,omitempty,cron_spec"`
	RetentionTimeSpec string `json:"retention_time_spec" validate:"required_if=Runnable true,omitempty,cron_spec"`
	LogRetentionDays  int    `json:"log_retention_days" validate:"min=1"`
}

func (c *SchedulerConfig) validate(v *validator.Validate) error {
	return checkStruct(v, c, "스케줄러 설정(scheduler)")
}

// NotifierConfig 알림 채널 설정
type NotifierConfig struct {
	Telegrams []TelegramConfig `json:"telegrams"`
}

func (c *NotifierConfig) validate(v *validator.Validate) error {
	if err := checkUniqueField(v, c.Telegrams, "ID", "Notifier"); err != nil {
		return err
	}
	for _, t := range c.Telegrams {
		if err := checkStruct(v, t, fmt.Sprintf("Telegram Notifier['%s']", t.ID)); err != nil {
			return err
		}
	}
	return nil
}

// TelegramConfig 텔레그램 봇 토큰 및 채팅 ID 정보를 담는 설정 구조체
type TelegramConfig struct {
	ID       string `json:"id" validate:"required"`
	BotToken string `json:"bot_token" validate:"required,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required"`
}

// APIConfig REST API 서버 설정
type APIConfig struct {
	ListenPort   int                 `json:"listen_port" validate:"min=1,max=65535"`
	CORS         CORSConfig          `json:"cors"`
	Applications []ApplicationConfig `json:"applications"`
}

func (c *APIConfig) validate(v *validator.Validate) error {
	if err := validation.ValidatePort(c.ListenPort); err != nil {
		return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(api.listen_port)는 1에서 65535 사이의 값이어야 합니다")
	}
	if err := c.CORS.validate(v); err != nil {
		return err
	}

	if err := checkUniqueField(v, c.Applications, "ID", "Application"); err != nil {
		return err
	}
	for _, app := range c.Applications {
		if err := checkStruct(v, app, fmt.Sprintf("Application['%s']", app.ID)); err != nil {
			return err
		}
	}
	if err := checkUniqueField(v, c.Applications, "AppKey", "Application"); err != nil {
		return err
	}

	return nil
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책 설정
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}
	for _, origin := range c.AllowOrigins {
		if strings.TrimSpace(origin) == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return checkStruct(v, c, "CORS 설정")
}

// ApplicationConfig API를 호출할 수 있는 클라이언트 애플리케이션의 인증 정보
type ApplicationConfig struct {
	ID     string `json:"id" validate:"required"`
	Title  string `json:"title"`
	AppKey string `json:"app_key" validate:"required"`
}
