package autosearch

import (
	"regexp"
	"strings"

	"github.com/darkkaiser/rank-tracker/pkg/strutil"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
	urlPattern     = regexp.MustCompile(`https?://\S+`)
)

// Normalize 비교용 문자열을 만듭니다.
//
// 처리 순서:
//  1. HTML 태그 제거
//  2. http(s) URL 제거
//  3. '@'가 있으면 마지막 '@' 뒤의 문자열만 남김 (카테고리 접두어가 붙은 상품명)
//  4. 연속 공백 축약 및 앞뒤 공백 제거
//  5. 소문자 변환
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := htmlTagPattern.ReplaceAllString(text, "")
	s = urlPattern.ReplaceAllString(s, "")
	if i := strings.LastIndex(s, "@"); i != -1 {
		s = s[i+1:]
	}
	s = strutil.NormalizeSpaces(s)

	// Caser는 상태를 가지므로 호출마다 새로 생성합니다.
	return cases.Lower(language.Und).String(s)
}

// StripHTML 화면 표시용으로 HTML 태그만 제거하고 공백을 정리합니다. 대소문자는 유지합니다.
func StripHTML(text string) string {
	return strutil.NormalizeSpaces(htmlTagPattern.ReplaceAllString(text, ""))
}
