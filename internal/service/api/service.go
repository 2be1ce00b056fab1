package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/rank-tracker/docs"
	"github.com/darkkaiser/rank-tracker/internal/config"
	"github.com/darkkaiser/rank-tracker/internal/pkg/version"
	apiauth "github.com/darkkaiser/rank-tracker/internal/service/api/auth"
	"github.com/darkkaiser/rank-tracker/internal/service/api/constants"
	"github.com/darkkaiser/rank-tracker/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/rank-tracker/internal/service/api/v1"
	v1handler "github.com/darkkaiser/rank-tracker/internal/service/api/v1/handler"
	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
	"github.com/labstack/echo/v4"
)

// Store API 서비스가 사용하는 저장소. 헬스체크를 위해 Ping도 제공해야 합니다.
type Store interface {
	v1handler.Store
	system.HealthChecker
}

// Service REST API 서버의 생명주기를 관리하는 서비스입니다.
//
// Start로 시작하면 별도 고루틴에서 HTTP 서버를 실행하고,
// 전달받은 Context가 취소되면 Graceful Shutdown을 수행합니다.
// 서버가 예기치 않게 종료되면 오류 알림을 남깁니다.
type Service struct {
	appConfig *config.AppConfig

	runner v1handler.Runner
	store  Store
	sink   contract.NotificationSink

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, runner v1handler.Runner, store Store, sink contract.NotificationSink, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}
	if runner == nil {
		panic("Runner는 필수입니다")
	}
	if store == nil {
		panic("Store는 필수입니다")
	}
	if sink == nil {
		panic("NotificationSink는 필수입니다")
	}

	return &Service{
		appConfig: appConfig,

		runner: runner,
		store:  store,
		sink:   sink,

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 즉시 반환되며 실제 서버는 고루틴에서 실행됩니다.
// 서비스가 완전히 종료되면 serviceStopWG.Done()이 호출됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 인증, 핸들러, 미들웨어, 라우트를 구성한 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	authenticator := apiauth.NewAuthenticator(s.appConfig.API)

	systemHandler := system.NewHandler(s.store, s.buildInfo)
	v1Handler := v1handler.NewHandler(s.runner, s.store, s.appConfig.Scheduler.LogRetentionDays)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		AllowOrigins: s.appConfig.API.CORS.AllowOrigins,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler, authenticator)

	return e
}

// startHTTPServer HTTP 서버를 시작하고, 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.API.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Info(constants.LogMsgHTTPServerStarting)

	s.handleServerError(e.Start(fmt.Sprintf(":%d", port)))
}

// handleServerError 서버 종료 원인을 처리합니다.
// Graceful Shutdown이 아닌 종료는 오류 알림으로 남깁니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.API.ListenPort,
		"error": err,
	}).Error(constants.LogMsgHTTPServerFatalError)

	n := contract.Notification{
		Type:     contract.NotificationError,
		Title:    "API 서버 오류",
		Message:  fmt.Sprintf("%s\n\n%s", constants.LogMsgHTTPServerFatalError, err),
		Priority: contract.PriorityHigh,
	}
	if emitErr := s.sink.Emit(context.Background(), n); emitErr != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": emitErr,
		}).Warn("API 서버 오류 알림 접수 실패")
	}
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 이미 종료되었으므로 Shutdown은 호출하지 않습니다.
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
