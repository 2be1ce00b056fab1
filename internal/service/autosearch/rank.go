package autosearch

const (
	// ItemsPerAPIPage 검색 API 1회 호출로 받는 상품 수
	ItemsPerAPIPage = 100

	// ItemsPerWebPage 네이버 쇼핑 웹 화면의 한 페이지 상품 수
	ItemsPerWebPage = 40
)

// Rank 웹 화면 기준 순위
type Rank struct {
	TotalRank     int `json:"total_rank"`
	WebPage       int `json:"web_page"`
	RankInWebPage int `json:"rank_in_web_page"`
}

// Remap API 페이지 번호(1부터)와 페이지 내 인덱스(0부터)를 웹 화면 기준 순위로 변환합니다.
func Remap(apiPage, index int) Rank {
	return RemapWith(apiPage, index, ItemsPerAPIPage, ItemsPerWebPage)
}

// RemapWith 페이지 크기를 지정하여 순위를 변환합니다.
func RemapWith(apiPage, index, perAPIPage, perWebPage int) Rank {
	total := (apiPage-1)*perAPIPage + index + 1

	return Rank{
		TotalRank:     total,
		WebPage:       (total-1)/perWebPage + 1,
		RankInWebPage: (total-1)%perWebPage + 1,
	}
}
