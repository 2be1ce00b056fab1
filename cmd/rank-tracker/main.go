package main

import (
	"fmt"
	"os"
)

// @title Rank Tracker API
// @version 1.0.0
// @description 네이버 쇼핑 검색 결과에서 상품의 노출 순위를 주기적으로 추적하는 서버의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 자동 검색 설정 관리 및 즉시 실행
// @description - 날짜/실행별 순위 이력 조회와 대시보드
// @description - 실행 결과 알림 조회 (Telegram 전달 포함)
// @description - 검색 API 인증 프로필 관리
// @description
// @description ## 인증 방법
// @description 설정 파일(rank-tracker.json)의 api.applications에 등록한 app_key를
// @description X-App-Key 헤더로 전달합니다. /health, /version, /swagger는 인증 없이 호출할 수 있습니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-App-Key
// @description Application Key for authentication

const banner = `
  ____                 _      _____                 _
 |  _ \ __ _ _ __  | | __ |_   _| __ __ _  ___| | _____ _ __
 | |_) / _' | '_ \ | |/ /   | || '__/ _' |/ __| |/ / _ \ '__|
 |  _ < (_| | | | ||   <    | || | | (_| | (__|   <  __/ |
 |_| \_\__,_|_| |_||_|\_\   |_||_|  \__,_|\___|_|\_\___|_|
                                                        %s
                                                developed by DarkKaiser
--------------------------------------------------------------------------------
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(1)
	}
}
