package autosearch

import (
	"strings"

	"github.com/darkkaiser/rank-tracker/internal/service/shopping"
	"github.com/darkkaiser/rank-tracker/pkg/strutil"
)

// Target 찾으려는 상품의 조건입니다. 빈 필드는 검사하지 않습니다.
type Target struct {
	ProductName string `json:"product_name,omitempty"`
	MallName    string `json:"mall_name,omitempty"`
	Brand       string `json:"brand,omitempty"`
}

// Empty 정규화 후 세 조건이 모두 비어 있는지 여부를 반환합니다.
func (t Target) Empty() bool {
	return Normalize(t.ProductName) == "" && Normalize(t.MallName) == "" && Normalize(t.Brand) == ""
}

// IsExactMatch 상품이 조건과 정확히 일치하는지 판정합니다.
//
// 비어 있지 않은 조건은 모두 정규화 후 상품 필드와 같아야 합니다(부분 일치 아님).
// 조건이 하나도 없으면 어떤 상품과도 일치하지 않습니다.
func IsExactMatch(item shopping.Item, target Target) bool {
	name, mall, brand := Normalize(target.ProductName), Normalize(target.MallName), Normalize(target.Brand)
	if name == "" && mall == "" && brand == "" {
		return false
	}

	if name != "" && Normalize(item.Title) != name {
		return false
	}
	if mall != "" && Normalize(item.MallName) != mall {
		return false
	}
	if brand != "" && Normalize(item.Brand) != brand {
		return false
	}

	return true
}

// LooseMatcher 일회성 순위 확인에 쓰는 부분 일치 매처입니다.
//
// 상품명 조건은 공백으로 나눈 모든 단어가 상품명에 포함되어야 하고,
// 쇼핑몰명 조건은 쇼핑몰명에, 브랜드 조건은 브랜드 또는 제조사에 포함되기만 하면 됩니다.
// 자동 검색 기록에는 사용하지 않습니다.
type LooseMatcher struct {
	title *strutil.KeywordMatcher
	mall  string
	brand string
	empty bool
}

func NewLooseMatcher(target Target) *LooseMatcher {
	m := &LooseMatcher{
		title: strutil.NewKeywordMatcher(strings.Fields(Normalize(target.ProductName)), nil),
		mall:  Normalize(target.MallName),
		brand: Normalize(target.Brand),
	}
	m.empty = m.title.Empty() && m.mall == "" && m.brand == ""

	return m
}

func (m *LooseMatcher) Match(item shopping.Item) bool {
	if m.empty {
		return false
	}
	if !m.title.Match(Normalize(item.Title)) {
		return false
	}
	if m.mall != "" && !strings.Contains(Normalize(item.MallName), m.mall) {
		return false
	}
	if m.brand != "" && !strings.Contains(Normalize(item.Brand), m.brand) && !strings.Contains(Normalize(item.Maker), m.brand) {
		return false
	}
	return true
}
