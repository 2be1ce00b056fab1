// Package auth API 클라이언트 애플리케이션 인증을 담당합니다.
package auth

import (
	"crypto/subtle"

	"github.com/darkkaiser/rank-tracker/internal/config"
)

// Application 인증에 성공한 클라이언트 애플리케이션
type Application struct {
	ID    string
	Title string
}

type registeredApplication struct {
	Application
	appKey []byte
}

// Authenticator 설정 파일에 등록된 애플리케이션의 app_key로 요청을 인증합니다.
// 생성 이후 변경되지 않으므로 동시에 사용해도 안전합니다.
type Authenticator struct {
	applications []registeredApplication
}

// NewAuthenticator 설정에 등록된 애플리케이션 목록으로 Authenticator를 생성합니다.
func NewAuthenticator(c config.APIConfig) *Authenticator {
	applications := make([]registeredApplication, 0, len(c.Applications))
	for _, app := range c.Applications {
		applications = append(applications, registeredApplication{
			Application: Application{ID: app.ID, Title: app.Title},
			appKey:      []byte(app.AppKey),
		})
	}

	return &Authenticator{applications: applications}
}

// Authenticate app_key에 해당하는 애플리케이션을 찾습니다.
//
// 키 비교는 상수 시간으로 수행하며, 일치 여부와 관계없이 등록된 모든 애플리케이션을 비교합니다.
func (a *Authenticator) Authenticate(appKey string) (*Application, error) {
	if appKey == "" {
		return nil, ErrAppKeyRequired
	}

	key := []byte(appKey)

	var found *Application
	for i := range a.applications {
		if subtle.ConstantTimeCompare(a.applications[i].appKey, key) == 1 && found == nil {
			found = &a.applications[i].Application
		}
	}
	if found == nil {
		return nil, ErrInvalidAppKey
	}

	app := *found
	return &app, nil
}
