// Package cronx robfig/cron 위에서 애플리케이션 공통 cron 표현식 형식을 정의합니다.
package cronx

import "github.com/robfig/cron/v3"

// StandardParser 초 단위를 포함하는 6필드 cron 파서를 반환합니다.
//
// 필드 순서는 [초] [분] [시] [일] [월] [요일]이며 @daily, @every 1h 같은 Descriptor도 허용합니다.
// 5필드 표준 형식은 허용하지 않습니다.
//
// 예시:
//   - "0 */10 * * * *" : 10분마다 (자동 검색 기본 주기)
//   - "0 0 4 * * *"    : 매일 04:00:00 (실행 로그 정리)
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}
