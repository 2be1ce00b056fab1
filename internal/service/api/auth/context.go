package auth

import (
	"fmt"

	"github.com/darkkaiser/rank-tracker/internal/service/api/constants"
	"github.com/labstack/echo/v4"
)

// contextKeyApplication 다른 패키지의 Context 키와 충돌하지 않도록 패키지 경로를 포함합니다.
const contextKeyApplication = "darkkaiser/rank-tracker/api/auth/AuthenticatedApplication"

// SetApplication 인증된 애플리케이션을 요청 Context에 저장합니다.
func SetApplication(c echo.Context, app *Application) {
	c.Set(contextKeyApplication, app)
	c.Set(constants.ContextKeyApplicationID, app.ID)
}

// GetApplication 요청 Context에서 인증된 애플리케이션을 꺼냅니다.
func GetApplication(c echo.Context) (*Application, error) {
	val := c.Get(contextKeyApplication)
	if val == nil {
		return nil, ErrApplicationMissingInContext
	}

	app, ok := val.(*Application)
	if !ok {
		return nil, ErrApplicationTypeMismatch
	}

	return app, nil
}

// MustGetApplication 인증 미들웨어가 적용된 핸들러에서만 사용해야 합니다.
func MustGetApplication(c echo.Context) *Application {
	app, err := GetApplication(c)
	if err != nil {
		panic(fmt.Sprintf("Auth: Context에서 애플리케이션 정보를 가져올 수 없습니다. 인증 미들웨어가 적용되었는지 확인해주세요. (원인: %v)", err))
	}
	return app
}
