package shopping

import "strings"

const (
	// MaxDisplay 요청 한 번에 받을 수 있는 최대 상품 수입니다.
	MaxDisplay = 100

	// MaxStart start 매개변수가 가질 수 있는 최댓값입니다.
	MaxStart = 1000

	// DefaultSort 유사도순 정렬
	DefaultSort = "sim"
)

// Credentials 네이버 오픈 API 애플리케이션 인증 정보
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Valid 두 값이 모두 채워져 있는지 여부를 반환합니다.
func (c Credentials) Valid() bool {
	return strings.TrimSpace(c.ClientID) != "" && strings.TrimSpace(c.ClientSecret) != ""
}

// PageRequest 검색 API 1회 호출 매개변수입니다. Display와 Sort가 비어 있으면 기본값을 사용합니다.
type PageRequest struct {
	Query   string
	Display int
	Start   int
	Sort    string
}

// Page 검색 API 1회 호출 결과입니다.
//
// 응답은 성공(200)했지만 items 배열이 없거나 본문이 JSON이 아니면 Malformed가 true이고 Items는 비어 있습니다.
type Page struct {
	Total     int
	Start     int
	Display   int
	Items     []Item
	Malformed bool
}

// Item 검색 결과 상품 1건입니다. Title에는 API가 붙인 <b> 태그가 그대로 남아 있습니다.
type Item struct {
	Title       string
	Link        string
	Image       string
	LowPrice    int64
	HighPrice   int64
	MallName    string
	ProductID   string
	ProductType string
	Brand       string
	Maker       string
	Category1   string
	Category2   string
	Category3   string
	Category4   string
}
