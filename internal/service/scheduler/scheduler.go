package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/darkkaiser/rank-tracker/internal/config"
	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	"github.com/darkkaiser/rank-tracker/pkg/cronx"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

const (
	jobAutoSearch = "auto_search"
	jobRetention  = "log_retention"
)

// retentionTimeout 실행 로그 정리 1회에 허용하는 최대 시간
const retentionTimeout = 1 * time.Minute

// DueRunner 실행 주기가 도래한 자동 검색 설정을 실행합니다.
type DueRunner interface {
	RunDue(ctx context.Context, now time.Time) *autosearch.BatchSummary
}

// LogPruner 보존 기간이 지난 실행 로그를 삭제합니다.
type LogPruner interface {
	DeleteRunLogsBefore(ctx context.Context, before time.Time) (int64, error)
}

// Scheduler 주기적으로 자동 검색을 실행하고 오래된 실행 로그를 정리하는 서비스입니다.
type Scheduler struct {
	config config.SchedulerConfig

	cron *cron.Cron

	runner DueRunner
	pruner LogPruner

	// sink 스케줄러 자체의 오류(설정 목록 조회 실패 등)를 알립니다. 설정별 실행 결과 알림은 엔진이 보냅니다.
	sink contract.NotificationSink

	now func() time.Time

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
func NewService(c config.SchedulerConfig, runner DueRunner, pruner LogPruner, sink contract.NotificationSink) *Scheduler {
	if runner == nil {
		panic("DueRunner는 필수입니다")
	}
	if pruner == nil {
		panic("LogPruner는 필수입니다")
	}

	return &Scheduler{
		config: c,

		runner: runner,
		pruner: pruner,

		sink: sink,

		now: time.Now,
	}
}

// Start 스케줄러를 시작하고 자동 검색 및 로그 정리 작업을 Cron 엔진에 등록합니다.
//
// 호출자는 serviceStopWG.Add(1)을 먼저 호출해야 하며, serviceStopCtx가 취소되면 실행 중인 작업이 끝날 때까지 기다린 뒤 Done이 호출됩니다.
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Scheduler 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// - Recover: 작업 중 패닉이 발생해도 다른 작업에 영향을 주지 않음
	// - SkipIfStillRunning: 이전 실행이 끝나지 않았으면 이번 실행을 건너뜀
	logger := cron.VerbosePrintfLogger(applog.StandardLogger())
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(logger),
		cron.WithChain(
			cron.Recover(logger),
			cron.SkipIfStillRunning(logger),
		),
	)

	if err := s.registerJobs(serviceStopCtx); err != nil {
		s.cron = nil
		serviceStopWG.Done()
		return err
	}

	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"registered_schedules": len(s.cron.Entries()),
		"time_spec":            s.config.TimeSpec,
		"retention_time_spec":  s.config.RetentionTimeSpec,
	}).Info("서비스 시작 완료: Scheduler 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.stop()
	}()

	return nil
}

// stop 실행 중인 스케줄러를 중지하고 진행 중인 작업의 완료를 기다립니다.
func (s *Scheduler) stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Scheduler 서비스 중지 시그널을 수신했습니다")

	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

func (s *Scheduler) registerJobs(serviceStopCtx context.Context) error {
	if _, err := s.cron.AddFunc(s.config.TimeSpec, func() { s.runDue(serviceStopCtx) }); err != nil {
		return newErrInvalidCronSpec(jobAutoSearch, s.config.TimeSpec, err)
	}

	if s.config.RetentionTimeSpec != "" && s.config.LogRetentionDays > 0 {
		if _, err := s.cron.AddFunc(s.config.RetentionTimeSpec, func() { s.pruneLogs(serviceStopCtx) }); err != nil {
			return newErrInvalidCronSpec(jobRetention, s.config.RetentionTimeSpec, err)
		}
	}

	return nil
}

// runDue 주기가 도래한 설정을 실행합니다.
// 서비스 종료 시그널을 받으면 아직 시작하지 않은 설정은 건너뜁니다.
func (s *Scheduler) runDue(serviceStopCtx context.Context) {
	ctx := contract.WithRunBy(serviceStopCtx, contract.RunByScheduler)
	now := s.now()

	summary := s.runner.RunDue(ctx, now)

	fields := applog.Fields{
		"attempted": len(summary.Attempted),
		"succeeded": len(summary.Succeeded),
		"failed":    len(summary.Failed),
		"skipped":   summary.Skipped,
		"results":   summary.Results,
	}

	if summary.ListError != "" {
		s.logAndNotifyError(serviceStopCtx, jobAutoSearch, "자동 검색 설정 목록을 조회하지 못해 이번 주기를 건너뜁니다", summary.ListError)
		return
	}

	if len(summary.Attempted) == 0 {
		applog.WithComponentAndFields(component, fields).Debug("실행 주기가 도래한 자동 검색 설정이 없습니다")
		return
	}

	applog.WithComponentAndFields(component, fields).Info("자동 검색 주기 실행 완료")
}

// pruneLogs 보존 기간이 지난 실행 로그를 삭제합니다.
func (s *Scheduler) pruneLogs(serviceStopCtx context.Context) {
	ctx, cancel := context.WithTimeout(serviceStopCtx, retentionTimeout)
	defer cancel()

	before := s.now().AddDate(0, 0, -s.config.LogRetentionDays)

	deleted, err := s.pruner.DeleteRunLogsBefore(ctx, before)
	if err != nil {
		s.logAndNotifyError(serviceStopCtx, jobRetention, "오래된 실행 로그를 정리하지 못했습니다", err.Error())
		return
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"deleted":        deleted,
		"before":         before.Format(time.RFC3339),
		"retention_days": s.config.LogRetentionDays,
	}).Info("오래된 실행 로그 정리 완료")
}

// logAndNotifyError 스케줄러 작업 중 발생한 오류를 로깅하고 관리자에게 알림을 전송합니다.
func (s *Scheduler) logAndNotifyError(serviceStopCtx context.Context, job, message, cause string) {
	applog.WithComponentAndFields(component, applog.Fields{
		"job":    job,
		"run_by": contract.RunByScheduler,
		"error":  cause,
	}).Error(message)

	if s.sink == nil {
		return
	}

	if err := s.sink.Emit(context.WithoutCancel(serviceStopCtx), contract.Notification{
		Type:     contract.NotificationError,
		Title:    "스케줄러 오류",
		Message:  fmt.Sprintf("%s: %s", message, cause),
		Priority: contract.PriorityHigh,
	}); err != nil {
		applog.WithComponent(component).WithError(err).Warn("스케줄러 오류 알림을 저장하지 못했습니다")
	}
}
