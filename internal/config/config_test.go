package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBotToken = "123456789:ABCdefGhIjklMnOpQrStUvWxYz0123456789"

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadWithFile_Defaults(t *testing.T) {
	path := writeConfigFile(t, `{"database": {"path": ":memory:"}}`)

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, DefaultNaverEndpoint, cfg.Naver.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Naver.Timeout)
	assert.Equal(t, 200*time.Millisecond, cfg.Naver.PageDelay)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, cfg.Naver.RetryDelays)
	assert.Equal(t, MaxPagesCeiling, cfg.Naver.MaxPages)
	assert.True(t, cfg.Scheduler.Runnable)
	assert.Equal(t, "0 */10 * * * *", cfg.Scheduler.TimeSpec)
	assert.Equal(t, "0 0 4 * * *", cfg.Scheduler.RetentionTimeSpec)
	assert.Equal(t, 7, cfg.Scheduler.LogRetentionDays)
	assert.Equal(t, 8080, cfg.API.ListenPort)
	assert.Equal(t, []string{"*"}, cfg.API.CORS.AllowOrigins)
}

func TestLoadWithFile_FullConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, `{
		"debug": true,
		"database": {"path": "`+filepath.ToSlash(filepath.Join(dir, "rank.db"))+`"},
		"naver": {"timeout": "10s", "page_delay": "0s", "retry_delays": ["500ms", "1s"], "max_pages": 5},
		"scheduler": {"runnable": false, "log_retention_days": 14},
		"notifiers": {"telegrams": [{"id": "ops", "bot_token": "`+validBotToken+`", "chat_id": 1234}]},
		"api": {
			"listen_port": 2443,
			"cors": {"allow_origins": ["https://rank.example.com"]},
			"applications": [{"id": "dashboard", "title": "대시보드", "app_key": "secret-key"}]
		}
	}`)

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 10*time.Second, cfg.Naver.Timeout)
	assert.Zero(t, cfg.Naver.PageDelay)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, time.Second}, cfg.Naver.RetryDelays)
	assert.Equal(t, 5, cfg.Naver.MaxPages)
	assert.False(t, cfg.Scheduler.Runnable)
	assert.Equal(t, 14, cfg.Scheduler.LogRetentionDays)
	require.Len(t, cfg.Notifiers.Telegrams, 1)
	assert.Equal(t, int64(1234), cfg.Notifiers.Telegrams[0].ChatID)
	require.Len(t, cfg.API.Applications, 1)
	assert.Equal(t, "secret-key", cfg.API.Applications[0].AppKey)
	assert.Empty(t, cfg.VerifyRecommendations())
}

// 환경 변수를 변경하므로 병렬로 실행하지 않습니다.
func TestLoadWithFile_EnvOverride(t *testing.T) {
	path := writeConfigFile(t, `{"database": {"path": ":memory:"}, "naver": {"max_pages": 3}}`)

	t.Setenv("RANK_TRACKER_NAVER__MAX_PAGES", "12")
	t.Setenv("RANK_TRACKER_API__LISTEN_PORT", "9090")
	t.Setenv("RANK_TRACKER_NAVER__RETRY_DELAYS", "3s,6s")

	cfg, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Naver.MaxPages)
	assert.Equal(t, 9090, cfg.API.ListenPort)
	assert.Equal(t, []time.Duration{3 * time.Second, 6 * time.Second}, cfg.Naver.RetryDelays)
}

func TestLoadWithFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantType apperrors.ErrorType
		wantMsg  string
	}{
		{
			name:     "잘못된 JSON",
			content:  `{"debug": `,
			wantType: apperrors.InvalidInput,
			wantMsg:  "설정 파일 로드 중 오류",
		},
		{
			name:     "알 수 없는 키",
			content:  `{"database": {"path": ":memory:"}, "unknown_key": 1}`,
			wantType: apperrors.System,
			wantMsg:  "변환하는데 실패",
		},
		{
			name:     "max_pages 상한 초과",
			content:  `{"database": {"path": ":memory:"}, "naver": {"max_pages": 26}}`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "max_pages",
		},
		{
			name:     "잘못된 엔드포인트",
			content:  `{"database": {"path": ":memory:"}, "naver": {"endpoint": "openapi.naver.com"}}`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "naver.endpoint",
		},
		{
			name:     "잘못된 cron 표현식",
			content:  `{"database": {"path": ":memory:"}, "scheduler": {"time_spec": "*/5 * * * *"}}`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "cron 표현식",
		},
		{
			name:     "잘못된 봇 토큰",
			content:  `{"database": {"path": ":memory:"}, "notifiers": {"telegrams": [{"id": "a", "bot_token": "invalid", "chat_id": 1}]}}`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "텔레그램 봇 토큰",
		},
		{
			name:     "중복 텔레그램 ID",
			content:  `{"database": {"path": ":memory:"}, "notifiers": {"telegrams": [{"id": "a", "bot_token": "` + validBotToken + `", "chat_id": 1}, {"id": "a", "bot_token": "` + validBotToken + `", "chat_id": 2}]}}`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "중복된 Notifier",
		},
		{
			name:     "앱 키 누락",
			content:  `{"database": {"path": ":memory:"}, "api": {"applications": [{"id": "dashboard"}]}}`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "필수 항목",
		},
		{
			name:     "와일드카드와 도메인 혼용",
			content:  `{"database": {"path": ":memory:"}, "api": {"cors": {"allow_origins": ["*", "https://a.com"]}}}`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "와일드카드",
		},
		{
			name:     "잘못된 CORS Origin",
			content:  `{"database": {"path": ":memory:"}, "api": {"cors": {"allow_origins": ["https://a.com/path"]}}}`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "CORS Origin 형식",
		},
		{
			name:     "포트 범위 초과",
			content:  `{"database": {"path": ":memory:"}, "api": {"listen_port": 70000}}`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "listen_port",
		},
		{
			name:     "데이터베이스 디렉터리 없음",
			content:  `{"database": {"path": "/nonexistent-dir-for-test/rank.db"}}`,
			wantType: apperrors.InvalidInput,
			wantMsg:  "database.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWithFile(writeConfigFile(t, tt.content))
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, tt.wantType), "error type: %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadWithFile_FileNotFound(t *testing.T) {
	_, err := LoadWithFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.System))
	assert.Contains(t, err.Error(), "설정 파일을 찾을 수 없습니다")
}

func TestAppConfig_VerifyRecommendations(t *testing.T) {
	t.Parallel()

	cfg := &AppConfig{
		Database: DatabaseConfig{Path: ":memory:"},
		API:      APIConfig{ListenPort: 80},
	}

	warnings := cfg.VerifyRecommendations()
	assert.Len(t, warnings, 4)
	assert.Contains(t, warnings[0], "시스템 예약 포트")
}
