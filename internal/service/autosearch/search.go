package autosearch

import (
	"context"
	"strings"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/service/shopping"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
)

// DefaultLookupPages 일회성 순위 확인의 기본 페이지 수
const DefaultLookupPages = 10

// LookupRequest 일회성 순위 확인 요청
type LookupRequest struct {
	Query     string
	Target    Target
	MaxPages  int
	ProfileID *int64
}

// LookupProduct 순위 확인에서 찾은 상품
type LookupProduct struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Image     string `json:"image,omitempty"`
	Price     int64  `json:"price"`
	MallName  string `json:"mall_name"`
	Brand     string `json:"brand,omitempty"`
	Maker     string `json:"maker,omitempty"`
	ProductID string `json:"product_id"`
	Category1 string `json:"category1,omitempty"`
	Category2 string `json:"category2,omitempty"`
	Category3 string `json:"category3,omitempty"`
}

// LookupResult 일회성 순위 확인 결과
type LookupResult struct {
	Found         bool           `json:"found"`
	Query         string         `json:"search_query"`
	Rank          *Rank          `json:"rank,omitempty"`
	Product       *LookupProduct `json:"product,omitempty"`
	SearchedPages int            `json:"searched_pages"`
}

// Lookup 조건에 부분 일치하는 첫 번째 상품의 순위를 찾습니다.
//
// 결과를 저장하거나 설정 카운터를 변경하지 않습니다.
// 실패한 페이지는 건너뛰고, 빈 페이지를 받으면 더 이상 찾지 않습니다.
func (e *Engine) Lookup(ctx context.Context, req LookupRequest) (*LookupResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, apperrors.New(apperrors.InvalidInput, "검색어가 비어 있습니다")
	}
	if req.Target.Empty() {
		return nil, apperrors.New(apperrors.InvalidInput, "상품명, 쇼핑몰명, 브랜드 중 하나 이상을 입력해야 합니다")
	}

	pages := req.MaxPages
	if pages <= 0 {
		pages = DefaultLookupPages
	}
	pages = min(pages, e.maxPages)

	creds, err := e.resolveCredentials(ctx, &SearchConfig{}, req.ProfileID)
	if err != nil {
		return nil, err
	}

	matcher := NewLooseMatcher(req.Target)
	result := &LookupResult{Query: query}

	for p := 1; p <= pages; p++ {
		start := (p-1)*ItemsPerAPIPage + 1
		if e.startCeiling > 0 && start > e.startCeiling {
			break
		}
		if p > 1 && e.pageDelay > 0 {
			e.sleep(e.pageDelay)
		}

		result.SearchedPages = p
		page, err := e.searcher.FetchPage(ctx, creds, shopping.PageRequest{
			Query:   query,
			Display: ItemsPerAPIPage,
			Start:   start,
			Sort:    shopping.DefaultSort,
		})
		if err != nil {
			if !shopping.IsUpstreamError(err) {
				return nil, err
			}
			applog.WithComponentAndFields(component, applog.Fields{
				"query": query,
				"page":  p,
			}).WithError(err).Warn("순위 확인 중 페이지 호출 실패")
			continue
		}
		if page.Malformed || len(page.Items) == 0 {
			break
		}

		for idx, item := range page.Items {
			if !matcher.Match(item) {
				continue
			}

			rank := Remap(p, idx)
			result.Found = true
			result.Rank = &rank
			result.Product = &LookupProduct{
				Title:     StripHTML(item.Title),
				Link:      item.Link,
				Image:     item.Image,
				Price:     displayPrice(item),
				MallName:  StripHTML(item.MallName),
				Brand:     displayBrand(item),
				Maker:     StripHTML(item.Maker),
				ProductID: item.ProductID,
				Category1: item.Category1,
				Category2: item.Category2,
				Category3: item.Category3,
			}
			return result, nil
		}

		if len(page.Items) < ItemsPerAPIPage {
			break
		}
	}

	return result, nil
}
