package strutil

import "strings"

// KeywordMatcher 대소문자를 구분하지 않는 포함(contains) 기반 키워드 매처입니다.
//
// 자동 검색의 정확 일치(exact match) 판정과 달리, 일회성 순위 확인처럼
// 느슨한 부분 일치가 필요한 곳에서 사용합니다.
type KeywordMatcher struct {
	// includedGroups 포함 키워드 그룹 (그룹 간 AND, 그룹 내부는 파이프(|)로 구분된 OR)
	includedGroups [][]string

	// excluded 하나라도 포함되면 매칭 실패로 간주하는 키워드 목록
	excluded []string
}

// NewKeywordMatcher 포함/제외 키워드로 KeywordMatcher를 생성합니다.
// 키워드는 생성 시점에 소문자로 변환되며 빈 키워드는 무시됩니다.
func NewKeywordMatcher(included, excluded []string) *KeywordMatcher {
	m := &KeywordMatcher{
		includedGroups: make([][]string, 0, len(included)),
		excluded:       make([]string, 0, len(excluded)),
	}

	for _, k := range excluded {
		if k = strings.TrimSpace(k); k != "" {
			m.excluded = append(m.excluded, strings.ToLower(k))
		}
	}

	for _, k := range included {
		group := SplitAndTrim(k, "|")
		if len(group) == 0 {
			continue
		}
		for i, v := range group {
			group[i] = strings.ToLower(v)
		}
		m.includedGroups = append(m.includedGroups, group)
	}

	return m
}

// Empty 포함 키워드 그룹이 하나도 없는지 여부를 반환합니다.
func (m *KeywordMatcher) Empty() bool {
	return len(m.includedGroups) == 0
}

// Match 대상 문자열이 제외 키워드를 포함하지 않고 모든 포함 그룹을 만족하면 true를 반환합니다.
func (m *KeywordMatcher) Match(s string) bool {
	for _, k := range m.excluded {
		if containsFold(s, k) {
			return false
		}
	}

	for _, group := range m.includedGroups {
		matched := false
		for _, k := range group {
			if containsFold(s, k) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// containsFold 문자열 s가 substr을 대소문자 구분 없이 포함하는지 검사합니다.
// 복사본 할당을 피하기 위해 룬 경계마다 부분 문자열을 EqualFold로 비교합니다.
// 대소문자 변환 시 바이트 길이가 달라지는 문자(터키어 İ 등)에는 정확하지 않을 수 있습니다.
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}

	for i := range s {
		if i+len(substr) > len(s) {
			break
		}
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return true
		}
	}

	return false
}
