package notification

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
)

const component = "notification.service"

const (
	// DefaultQueueSize 외부 채널 전송 대기열의 기본 크기
	DefaultQueueSize = 100

	// DefaultDrainTimeout 서비스 종료 시 대기열에 남은 알림을 전송하기 위해 기다리는 최대 시간
	DefaultDrainTimeout = 30 * time.Second
)

// Repository 알림을 영구 저장하는 저장소
type Repository interface {
	InsertNotification(ctx context.Context, n contract.Notification) (int64, error)
}

// Notifier 알림을 외부 채널(텔레그램 등)로 전달합니다.
type Notifier interface {
	ID() string
	Notify(ctx context.Context, n contract.Notification) error
}

// Service 알림을 저장한 뒤 등록된 Notifier들에게 비동기로 전달합니다.
//
// Emit은 저장이 끝나면 즉시 반환하며, 외부 채널 전송은 Start로 시작된 고루틴이 처리합니다.
// 대기열이 가득 찬 경우 해당 알림의 외부 전송은 포기하지만 저장된 기록은 유지됩니다.
type Service struct {
	repo      Repository
	notifiers []Notifier

	queue        chan contract.Notification
	drainTimeout time.Duration

	mu      sync.RWMutex
	running bool
}

// Option Service 생성 옵션
type Option func(*Service)

func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queue = make(chan contract.Notification, size)
		}
	}
}

func WithDrainTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.drainTimeout = d
		}
	}
}

func NewService(repo Repository, notifiers []Notifier, opts ...Option) *Service {
	if repo == nil {
		panic("notification: Repository는 필수입니다")
	}

	s := &Service{
		repo:         repo,
		notifiers:    notifiers,
		queue:        make(chan contract.Notification, DefaultQueueSize),
		drainTimeout: DefaultDrainTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Emit 알림을 저장하고 외부 채널 전송 대기열에 등록합니다.
func (s *Service) Emit(ctx context.Context, n contract.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	if n.Priority == "" {
		n.Priority = contract.PriorityNormal
	}

	id, err := s.repo.InsertNotification(ctx, n)
	if err != nil {
		return apperrors.Wrap(err, apperrors.System, "알림을 저장하지 못했습니다")
	}

	s.enqueue(id, n)

	return nil
}

func (s *Service) enqueue(id int64, n contract.Notification) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.running || len(s.notifiers) == 0 {
		return
	}

	select {
	case s.queue <- n:
	default:
		applog.WithComponentAndFields(component, applog.Fields{
			"notification_id": id,
			"config_id":       n.ConfigID,
			"queue_size":      cap(s.queue),
		}).Warn("알림 전송 대기열이 가득 차서 외부 채널 전송을 건너뜁니다")
	}
}

// Start 외부 채널 전송 고루틴을 시작합니다.
// 호출자는 serviceStopWG.Add(1)을 먼저 호출해야 하며, 서비스가 완전히 중지되면 Done이 호출됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	applog.WithComponent(component).Info("Notification 서비스 시작중...")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(component).Warn("Notification 서비스가 이미 시작됨!!!")
		return nil
	}

	s.running = true

	go s.run(serviceStopCtx, serviceStopWG)

	applog.WithComponentAndFields(component, applog.Fields{
		"notifiers": len(s.notifiers),
	}).Info("Notification 서비스 시작됨")

	return nil
}

func (s *Service) run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	for {
		select {
		case n := <-s.queue:
			s.dispatch(serviceStopCtx, n)

		case <-serviceStopCtx.Done():
			applog.WithComponent(component).Info("Notification 서비스 중지중...")

			// 이후의 Emit은 대기열에 알림을 넣지 않습니다.
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()

			s.drain()

			applog.WithComponent(component).Info("Notification 서비스 중지됨")
			return
		}
	}
}

// drain 대기열에 남은 알림을 제한 시간 안에서 최대한 전송합니다.
func (s *Service) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
	defer cancel()

	for {
		select {
		case n := <-s.queue:
			if ctx.Err() != nil {
				applog.WithComponentAndFields(component, applog.Fields{
					"timeout":   s.drainTimeout,
					"remaining": len(s.queue) + 1,
				}).Warn("종료 대기 시간이 초과되어 남은 알림을 폐기합니다")
				return
			}
			s.dispatch(ctx, n)

		default:
			return
		}
	}
}

func (s *Service) dispatch(ctx context.Context, n contract.Notification) {
	for _, notifier := range s.notifiers {
		s.notify(ctx, notifier, n)
	}
}

// notify 개별 Notifier의 실패나 패닉이 다른 Notifier에 영향을 주지 않도록 격리합니다.
func (s *Service) notify(ctx context.Context, notifier Notifier, n contract.Notification) {
	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"notifier_id": notifier.ID(),
				"config_id":   n.ConfigID,
				"panic":       r,
			}).Error("알림 전송 중 패닉이 발생하였습니다")
		}
	}()

	if err := notifier.Notify(ctx, n); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": notifier.ID(),
			"config_id":   n.ConfigID,
			"type":        n.Type,
		}).WithError(err).Warn("알림 전송에 실패하였습니다")
	}
}
