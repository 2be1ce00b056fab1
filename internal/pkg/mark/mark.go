// Package mark 알림 제목에 붙이는 이모지 상수를 관리합니다.
package mark

import (
	"fmt"
	"slices"
)

// Mark 이모지 상수를 위한 타입입니다.
type Mark string

const (
	// 실행 완료
	Success Mark = "✅"

	// 오류
	Alert Mark = "🚨"
)

var all = []Mark{Success, Alert}

// Values 정의된 모든 마크의 복사본을 반환합니다.
func Values() []Mark {
	return slices.Clone(all)
}

// Parse 문자열을 정의된 마크로 변환합니다. 앞뒤 공백이 있으면 실패합니다.
func Parse(s string) (Mark, error) {
	m := Mark(s)
	if !m.IsValid() {
		return "", fmt.Errorf("알 수 없는 마크입니다: %q", s)
	}
	return m, nil
}

func (m Mark) IsValid() bool {
	return slices.Contains(all, m)
}

// WithSpace 마크 앞에 구분용 공백을 붙여 반환합니다. 빈 마크는 빈 문자열을 반환합니다.
func (m Mark) WithSpace() string {
	if m == "" {
		return ""
	}
	return " " + string(m)
}

func (m Mark) String() string {
	return string(m)
}
