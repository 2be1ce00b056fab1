package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/darkkaiser/rank-tracker/internal/config"
	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	"github.com/darkkaiser/rank-tracker/internal/service/notification"
	"github.com/darkkaiser/rank-tracker/internal/service/notification/telegram"
	"github.com/darkkaiser/rank-tracker/internal/service/shopping"
	"github.com/darkkaiser/rank-tracker/internal/store/sqlite"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
)

const component = "main"

// app 명령 실행에 공통으로 필요한 설정, 로거, 저장소를 묶습니다.
type app struct {
	config *config.AppConfig
	store  *sqlite.Store

	logCloser io.Closer
}

// bootstrap 설정 로드, 로그 초기화, 데이터베이스 연결을 순서대로 수행합니다.
// 설정은 로그 설정에 필요하므로 가장 먼저 로드합니다.
func bootstrap(ctx context.Context, configFile string) (*app, error) {
	appConfig, err := config.LoadWithFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("환경설정 로드 실패: %w", err)
	}

	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}
	logCloser, err := applog.Setup(logOpts)
	if err != nil {
		return nil, fmt.Errorf("로그 시스템 초기화 실패: %w", err)
	}
	applog.SetDebugMode(appConfig.Debug)

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(component).Warn(warning)
	}

	store, err := sqlite.Open(ctx, appConfig.Database.Path)
	if err != nil {
		logCloser.Close()
		return nil, err
	}

	return &app{
		config: appConfig,
		store:  store,

		logCloser: logCloser,
	}, nil
}

// newNotificationService 설정된 텔레그램 채널로 알림을 전달하는 알림 서비스를 생성합니다.
func (a *app) newNotificationService() (*notification.Service, error) {
	notifiers := make([]notification.Notifier, 0, len(a.config.Notifiers.Telegrams))
	for _, t := range a.config.Notifiers.Telegrams {
		n, err := telegram.New(t, a.config.Debug)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
	}

	return notification.NewService(a.store, notifiers), nil
}

// newEngine 네이버 쇼핑 검색 API 클라이언트를 사용하는 실행 엔진을 생성합니다.
func (a *app) newEngine(sink contract.NotificationSink) (*autosearch.Engine, error) {
	client, err := shopping.NewClient(
		shopping.WithEndpoint(a.config.Naver.Endpoint),
		shopping.WithTimeout(a.config.Naver.Timeout),
		shopping.WithRetryDelays(a.config.Naver.RetryDelays),
	)
	if err != nil {
		return nil, err
	}

	return autosearch.NewEngine(a.store, client, sink,
		autosearch.WithPageDelay(a.config.Naver.PageDelay),
		autosearch.WithMaxPages(a.config.Naver.MaxPages),
	), nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Warn("데이터베이스 종료 중 오류 발생")
	}
	if err := a.logCloser.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "로그 파일 종료 중 오류 발생: %v\n", err)
	}
}
