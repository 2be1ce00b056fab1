package autosearch

import (
	"testing"

	"github.com/darkkaiser/rank-tracker/internal/service/shopping"
	"github.com/stretchr/testify/assert"
)

func TestIsExactMatch(t *testing.T) {
	t.Parallel()

	item := shopping.Item{
		Title:    "<b>무선</b> 이어폰 프로",
		MallName: "네이버",
		Brand:    "Sony",
	}

	tests := []struct {
		name   string
		target Target
		want   bool
	}{
		{"조건 없음", Target{}, false},
		{"공백뿐인 조건", Target{ProductName: "  ", MallName: "<b></b>"}, false},
		{"상품명만 일치", Target{ProductName: "무선 이어폰 프로"}, true},
		{"상품명 대소문자 및 공백 무시", Target{ProductName: "  무선   이어폰   프로 "}, true},
		{"상품명 부분 일치는 불일치", Target{ProductName: "무선 이어폰"}, false},
		{"쇼핑몰명만 일치", Target{MallName: "네이버"}, true},
		{"브랜드 대소문자 무시", Target{Brand: "SONY"}, true},
		{"모든 조건 일치", Target{ProductName: "무선 이어폰 프로", MallName: "네이버", Brand: "sony"}, true},
		{"하나라도 불일치", Target{ProductName: "무선 이어폰 프로", MallName: "쿠팡"}, false},
		{"카테고리 접두어 조건", Target{ProductName: "이어폰@무선 이어폰 프로"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsExactMatch(item, tt.target))
		})
	}
}

func TestIsExactMatch_EmptyItemField(t *testing.T) {
	t.Parallel()

	// 브랜드 정보가 없는 상품은 브랜드 조건을 만족하지 않습니다.
	assert.False(t, IsExactMatch(shopping.Item{Title: "상품", MallName: "몰"}, Target{Brand: "소니"}))
	assert.True(t, IsExactMatch(shopping.Item{Title: "상품", MallName: "몰"}, Target{ProductName: "상품"}))
}

func TestLooseMatcher(t *testing.T) {
	t.Parallel()

	item := shopping.Item{
		Title:    "<b>Sony</b> WH-1000XM5 무선 헤드폰 블랙",
		MallName: "소니스토어 공식",
		Brand:    "",
		Maker:    "소니",
	}

	tests := []struct {
		name   string
		target Target
		want   bool
	}{
		{"조건 없음", Target{}, false},
		{"상품명 단어 순서 무관", Target{ProductName: "헤드폰 sony"}, true},
		{"상품명 단어 하나 누락", Target{ProductName: "sony 이어폰"}, false},
		{"쇼핑몰명 부분 일치", Target{MallName: "소니스토어"}, true},
		{"브랜드는 제조사로도 일치", Target{Brand: "소니"}, true},
		{"브랜드 불일치", Target{Brand: "애플"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewLooseMatcher(tt.target).Match(item))
		})
	}
}
