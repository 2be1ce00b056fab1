// Package config 애플리케이션 설정 파일을 로드하고 검증합니다.
//
// 설정은 다음 순서로 병합되며 뒤에 로드된 값이 앞의 값을 덮어씁니다.
//
//  1. 기본값
//  2. JSON 설정 파일 (기본: rank-tracker.json)
//  3. 환경 변수 (접두사 RANK_TRACKER_, 계층 구분자 "__")
//
// 예: RANK_TRACKER_NAVER__MAX_PAGES=10 -> naver.max_pages
package config

import (
	"fmt"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "rank-tracker"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 로드하는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정값을 덮어쓰는 환경 변수의 접두사입니다.
	EnvPrefix = "RANK_TRACKER_"

	// DefaultNaverEndpoint 네이버 쇼핑 검색 API 엔드포인트입니다.
	DefaultNaverEndpoint = "https://openapi.naver.com/v1/search/shop.json"

	// MaxPagesCeiling 네이버 쇼핑 검색 API가 허용하는 최대 페이지 수(100개 단위)입니다.
	MaxPagesCeiling = 25
)

// defaults 설정 파일에 값이 없을 때 적용되는 기본값입니다.
func defaults() map[string]any {
	return map[string]any{
		"database.path": AppName + ".db",

		"naver.endpoint":     DefaultNaverEndpoint,
		"naver.timeout":      "30s",
		"naver.page_delay":   "200ms",
		"naver.retry_delays": []any{"1s", "2s", "4s"},
		"naver.max_pages":    MaxPagesCeiling,

		"scheduler.runnable":            true,
		"scheduler.time_spec":           "0 */10 * * * *",
		"scheduler.retention_time_spec": "0 0 4 * * *",
		"scheduler.log_retention_days":  7,

		"api.listen_port":       8080,
		"api.cors.allow_origins": []any{"*"},
	}
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. 환경 변수 로드
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.StringToTimeDurationHookFunc(),
			),
			ErrorUnused:      true, // 구조체에 없는 키가 설정되어 있으면 오타로 간주합니다.
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
