package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/darkkaiser/rank-tracker/internal/config"
	"github.com/darkkaiser/rank-tracker/internal/pkg/version"
	"github.com/darkkaiser/rank-tracker/internal/service"
	"github.com/darkkaiser/rank-tracker/internal/service/api"
	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	"github.com/darkkaiser/rank-tracker/internal/service/scheduler"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "네이버 쇼핑 상품 노출 순위 추적 서버",
		SilenceUsage:  true,
		SilenceErrors: true,
		// 하위 명령 없이 실행하면 서버를 구동합니다.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configFile)
		},
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFilename, "설정 파일 경로")

	root.AddCommand(
		newServeCmd(&configFile),
		newRunCmd(&configFile),
		newCleanupCmd(&configFile),
		newVersionCmd(),
	)

	return root
}

// --- serve ---

func newServeCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "스케줄러와 REST API 서버를 구동합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(*configFile)
		},
	}
}

func runServe(configFile string) error {
	a, err := bootstrap(context.Background(), configFile)
	if err != nil {
		return err
	}
	defer a.close()

	buildInfo := version.Get()

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields(component, applog.Fields(buildInfo.Fields())).Info("서버 초기화 시작")

	notificationService, err := a.newNotificationService()
	if err != nil {
		return err
	}
	engine, err := a.newEngine(notificationService)
	if err != nil {
		return err
	}
	schedulerService := scheduler.NewService(a.config.Scheduler, engine, a.store, notificationService)
	apiService := api.NewService(a.config, engine, a.store, notificationService, buildInfo)

	// 알림 서비스는 다른 서비스가 모두 멈춘 뒤에 종료해야 마지막 실행 결과 알림까지 전달됩니다.
	notifyStopCtx, stopNotify := context.WithCancel(context.Background())
	notifyStopWG := &sync.WaitGroup{}
	notifyStopWG.Add(1)
	if err := notificationService.Start(notifyStopCtx, notifyStopWG); err != nil {
		stopNotify()
		notifyStopWG.Wait()
		return err
	}

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	shutdown := func() {
		cancel()
		serviceStopWG.Wait()

		stopNotify()
		notifyStopWG.Wait()
	}

	services := []service.Service{schedulerService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			shutdown()

			return fmt.Errorf("서비스 초기화 실패: %w", err)
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent(component).Info("서버 가동 완료")

	<-termC

	applog.WithComponent(component).Info("종료 시그널 수신")

	shutdown()

	return nil
}

// --- run ---

func newRunCmd(configFile *string) *cobra.Command {
	var profileID int64

	cmd := &cobra.Command{
		Use:   "run [config-id]",
		Short: "자동 검색 설정을 즉시 실행합니다",
		Long: `자동 검색 설정을 즉시 실행하고 결과를 JSON으로 출력합니다.
설정 ID를 생략하면 활성 상태인 모든 설정을 실행합니다.

Examples:
  rank-tracker run 3
  rank-tracker run 3 --profile 2
  rank-tracker run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var configID int64
			if len(args) == 1 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil || id <= 0 {
					return fmt.Errorf("설정 ID는 1 이상의 정수여야 합니다: '%s'", args[0])
				}
				configID = id
			}

			var profile *int64
			if cmd.Flags().Changed("profile") {
				profile = &profileID
			}

			return runOnce(*configFile, configID, profile)
		},
	}
	cmd.Flags().Int64Var(&profileID, "profile", 0, "설정에 연결된 인증 프로필 대신 사용할 프로필 ID")

	return cmd
}

func runOnce(configFile string, configID int64, profileID *int64) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx, configFile)
	if err != nil {
		return err
	}
	defer a.close()

	notificationService, err := a.newNotificationService()
	if err != nil {
		return err
	}
	engine, err := a.newEngine(notificationService)
	if err != nil {
		return err
	}

	notifyStopCtx, stopNotify := context.WithCancel(context.Background())
	notifyStopWG := &sync.WaitGroup{}
	notifyStopWG.Add(1)
	if err := notificationService.Start(notifyStopCtx, notifyStopWG); err != nil {
		stopNotify()
		notifyStopWG.Wait()
		return err
	}
	defer func() {
		stopNotify()
		notifyStopWG.Wait()
	}()

	runCtx := contract.WithRunBy(ctx, contract.RunByCLI)

	if configID == 0 {
		summary := engine.RunAllActive(runCtx, profileID)
		if err := printJSON(summary); err != nil {
			return err
		}
		if summary.ListError != "" {
			return fmt.Errorf("활성 설정 목록 조회 실패: %s", summary.ListError)
		}
		if len(summary.Failed) > 0 {
			return fmt.Errorf("%d개 설정의 실행이 실패했습니다", len(summary.Failed))
		}
		return nil
	}

	result, err := engine.RunOnce(runCtx, configID, profileID)
	if result != nil {
		if printErr := printJSON(result); printErr != nil {
			return printErr
		}
	}
	return err
}

// --- cleanup ---

func newCleanupCmd(configFile *string) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "보존 기간이 지난 실행 로그를 삭제합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a, err := bootstrap(ctx, *configFile)
			if err != nil {
				return err
			}
			defer a.close()

			if !cmd.Flags().Changed("days") {
				days = a.config.Scheduler.LogRetentionDays
			}
			if days < 1 {
				return fmt.Errorf("보존 기간(--days)은 1 이상이어야 합니다: %d", days)
			}

			before := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
			deleted, err := a.store.DeleteRunLogsBefore(ctx, before)
			if err != nil {
				return err
			}

			applog.WithComponentAndFields(component, applog.Fields{
				"retention_days": days,
				"deleted":        deleted,
			}).Info("오래된 실행 로그 정리 완료")

			fmt.Printf("%d개의 실행 로그를 삭제했습니다 (보존 기간: %d일)\n", deleted, days)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "보존 기간(일), 생략하면 설정 파일의 scheduler.log_retention_days")

	return cmd
}

// --- version ---

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "빌드 정보를 출력합니다",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
