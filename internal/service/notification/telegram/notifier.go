// Package telegram 자동 검색 알림을 텔레그램 채팅방으로 전송합니다.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/darkkaiser/rank-tracker/internal/config"
	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/pkg/mark"
	"github.com/darkkaiser/rank-tracker/internal/service/contract"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
	"github.com/darkkaiser/rank-tracker/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const component = "notification.telegram"

const (
	// messageMaxLength 텔레그램 공식 제한(4096자)보다 여유를 둔 메시지 최대 길이
	messageMaxLength = 3900

	maxRetries = 3

	defaultRetryDelay = 1 * time.Second

	httpClientTimeout = 30 * time.Second

	// 텔레그램은 같은 채팅방에 대해 초당 1건 정도의 전송을 권장합니다.
	defaultRateLimit = 1
	defaultRateBurst = 5

	titleFormat = "<b>【 %s 】</b>%s\n\n%s"
	errorFormat = "%s\n\n*** 오류가 발생하였습니다. ***"
)

// botClient 텔레그램 봇 API 중 메시지 전송 기능만 추상화한 인터페이스입니다.
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier 텔레그램 채팅방 1곳으로 알림을 전송합니다.
type Notifier struct {
	id     string
	chatID int64

	client     botClient
	limiter    *rate.Limiter
	retryDelay time.Duration
}

// New 봇 토큰으로 텔레그램 API 클라이언트를 생성합니다. 생성 시 봇 정보를 조회하므로 네트워크 연결이 필요합니다.
func New(c config.TelegramConfig, debug bool) (*Notifier, error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"notifier_id": c.ID,
		"bot_token":   strutil.Mask(c.BotToken),
		"chat_id":     c.ChatID,
	}).Debug("텔레그램 봇 API 클라이언트 생성 시작")

	// 기본 http.Client는 타임아웃이 없어 장애 시 전송 고루틴이 멈출 수 있습니다.
	httpClient := &http.Client{Timeout: httpClientTimeout}

	botAPI, err := tgbotapi.NewBotAPIWithClient(c.BotToken, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다(notifier: %s). BotToken이 올바른지 확인해주세요", c.ID)
	}
	botAPI.Debug = debug

	return newNotifier(c.ID, c.ChatID, botAPI), nil
}

func newNotifier(id string, chatID int64, client botClient) *Notifier {
	return &Notifier{
		id:         id,
		chatID:     chatID,
		client:     client,
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), defaultRateBurst),
		retryDelay: defaultRetryDelay,
	}
}

func (n *Notifier) ID() string {
	return n.id
}

// Notify 알림을 HTML 메시지로 변환하여 전송합니다. 긴 메시지는 여러 건으로 나누어 보냅니다.
func (n *Notifier) Notify(ctx context.Context, notification contract.Notification) error {
	for _, message := range buildMessages(notification) {
		if err := n.send(ctx, message, true); err != nil {
			return err
		}
	}
	return nil
}

// buildMessages 본문을 길이 제한에 맞게 나누고, 첫 메시지에는 알림 종류의 마크를 붙인 제목을,
// 마지막 메시지에는 오류 문구를 붙입니다.
func buildMessages(notification contract.Notification) []string {
	title := html.EscapeString(strings.TrimSpace(notification.Title))
	chunks := splitMessage(notification.Message, messageMaxLength-utf8.RuneCountInString(title)-64)

	messages := make([]string, len(chunks))
	for i, chunk := range chunks {
		message := html.EscapeString(chunk)
		if i == 0 && title != "" {
			message = fmt.Sprintf(titleFormat, title, titleMark(notification.Type).WithSpace(), message)
		}
		if i == len(chunks)-1 && notification.Type == contract.NotificationError {
			message = fmt.Sprintf(errorFormat, message)
		}
		messages[i] = message
	}
	return messages
}

func titleMark(t contract.NotificationType) mark.Mark {
	switch t {
	case contract.NotificationSuccess:
		return mark.Success
	case contract.NotificationError:
		return mark.Alert
	default:
		return ""
	}
}

// splitMessage 줄 단위로 최대 limit 글자(rune)씩 나눕니다. 한 줄이 limit보다 길면 글자 단위로 자릅니다.
// HTML 이스케이프 이후 길이가 늘어날 수 있으므로 호출자는 여유를 두고 limit을 정해야 합니다.
func splitMessage(message string, limit int) []string {
	if limit < 1 {
		limit = 1
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, line := range strings.SplitAfter(message, "\n") {
		lineLen := utf8.RuneCountInString(line)
		if currentLen+lineLen <= limit {
			current.WriteString(line)
			currentLen += lineLen
			continue
		}

		flush()
		for lineLen > limit {
			runes := []rune(line)
			chunks = append(chunks, string(runes[:limit]))
			line = string(runes[limit:])
			lineLen -= limit
		}
		current.WriteString(line)
		currentLen = lineLen
	}
	flush()

	if len(chunks) == 0 {
		return []string{message}
	}
	return chunks
}

// send 메시지 1건을 전송합니다. HTML 파싱 오류(400)가 발생하면 일반 텍스트로 다시 보내고,
// 429 또는 5xx 오류는 재시도합니다.
func (n *Notifier) send(ctx context.Context, message string, useHTML bool) error {
	messageConfig := tgbotapi.NewMessage(n.chatID, message)
	if useHTML {
		messageConfig.ParseMode = tgbotapi.ModeHTML
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.Timeout, "텔레그램 전송 속도 제한 대기 중 취소되었습니다")
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return apperrors.Wrap(err, apperrors.Timeout, "텔레그램 메시지 전송이 취소되었습니다")
		}

		_, err := n.client.Send(messageConfig)
		if err == nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"notifier_id": n.id,
				"chat_id":     n.chatID,
				"attempt":     attempt,
			}).Debug("텔레그램 메시지 전송 성공")
			return nil
		}
		lastErr = err

		code, retryAfter := extractErrorCode(err)

		applog.WithComponentAndFields(component, applog.Fields{
			"notifier_id": n.id,
			"chat_id":     n.chatID,
			"attempt":     attempt,
			"code":        code,
		}).WithError(err).Warn("텔레그램 메시지 전송 실패")

		if useHTML && code == http.StatusBadRequest {
			return n.send(ctx, stripTags(message), false)
		}
		if !shouldRetry(code) || attempt == maxRetries {
			break
		}

		wait := n.retryDelay
		if retryAfter > 0 {
			wait = time.Duration(retryAfter) * time.Second
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return apperrors.Wrap(ctx.Err(), apperrors.Timeout, "텔레그램 메시지 재전송 대기 중 취소되었습니다")
		case <-timer.C:
		}
	}

	return apperrors.Wrapf(lastErr, apperrors.Unavailable, "텔레그램 메시지 전송에 실패했습니다(notifier: %s)", n.id)
}

func extractErrorCode(err error) (code int, retryAfter int) {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.ResponseParameters.RetryAfter
	}
	var apiErrValue tgbotapi.Error
	if errors.As(err, &apiErrValue) {
		return apiErrValue.Code, apiErrValue.ResponseParameters.RetryAfter
	}
	return 0, 0
}

// shouldRetry 429를 제외한 4xx는 재시도해도 성공할 수 없습니다.
func shouldRetry(code int) bool {
	if code >= 400 && code < 500 {
		return code == http.StatusTooManyRequests
	}
	return true
}

// stripTags 일반 텍스트 재전송용으로 메시지의 태그를 제거하고 엔티티를 복원합니다.
func stripTags(message string) string {
	message = strings.NewReplacer("<b>", "", "</b>", "").Replace(message)
	return html.UnescapeString(message)
}
