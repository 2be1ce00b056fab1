package cronx

import (
	"fmt"
	"strings"
)

// Validate 표현식이 StandardParser 형식(6필드 또는 Descriptor)을 만족하는지 검사합니다.
// 앞뒤 공백은 무시합니다.
func Validate(spec string) error {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return fmt.Errorf("cron 표현식이 비어 있습니다")
	}

	if _, err := StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("잘못된 cron 표현식입니다(spec=%q): %w", spec, err)
	}

	return nil
}
