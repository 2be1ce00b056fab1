package sqlite

import (
	"context"
	"database/sql"
	"slices"
	"strings"
	"time"

	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
)

const resultColumns = `id, config_id, run_id, search_query, target_product_name, target_mall_name, target_brand,
	total_rank, web_page, rank_in_web_page, product_title, mall_name, brand, price, product_link, product_id,
	category1, category2, category3, is_exact_match, match_confidence, check_date, created_at`

func scanResult(row rowScanner) (*autosearch.MatchedResult, error) {
	var (
		r         autosearch.MatchedResult
		createdAt string
	)
	if err := row.Scan(
		&r.ID, &r.ConfigID, &r.RunID, &r.SearchQuery, &r.TargetProductName, &r.TargetMallName, &r.TargetBrand,
		&r.TotalRank, &r.WebPage, &r.RankInWebPage, &r.ProductTitle, &r.MallName, &r.Brand, &r.Price, &r.ProductLink, &r.ProductID,
		&r.Category1, &r.Category2, &r.Category3, &r.IsExactMatch, &r.MatchConfidence, &r.CheckDate, &createdAt,
	); err != nil {
		return nil, err
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// InsertResults 결과를 하나의 트랜잭션으로 추가합니다. 기존 행은 삭제하거나 수정하지 않습니다.
func (s *Store) InsertResults(ctx context.Context, results []autosearch.MatchedResult) error {
	if len(results) == 0 {
		return nil
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO matched_results
			(config_id, run_id, search_query, target_product_name, target_mall_name, target_brand,
			 total_rank, web_page, rank_in_web_page, product_title, mall_name, brand, price, product_link, product_id,
			 category1, category2, category3, is_exact_match, match_confidence, check_date, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, r := range results {
			createdAt := r.CreatedAt
			if createdAt.IsZero() {
				createdAt = s.now()
			}
			if _, err := stmt.ExecContext(ctx,
				r.ConfigID, r.RunID, r.SearchQuery, r.TargetProductName, r.TargetMallName, r.TargetBrand,
				r.TotalRank, r.WebPage, r.RankInWebPage, r.ProductTitle, r.MallName, r.Brand, r.Price, r.ProductLink, r.ProductID,
				r.Category1, r.Category2, r.Category3, boolInt(r.IsExactMatch), r.MatchConfidence, r.CheckDate, formatTime(createdAt),
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return wrapQueryErr(err, "검색 결과 추가")
	}

	return nil
}

// executionKey 검색 결과가 속한 실행을 구분하는 SQL 식입니다.
// 실행 ID가 없는 과거 데이터는 초 단위 생성 시각으로 구분합니다.
const executionKey = "COALESCE(NULLIF(run_id, ''), substr(created_at, 1, 19))"

// resultFilter 검색 이력 필터를 WHERE 절과 인자로 변환합니다.
func (s *Store) resultFilter(configID int64, filter autosearch.HistoryFilter) (string, []any) {
	var (
		where strings.Builder
		args  = []any{configID}
	)
	where.WriteString(" WHERE config_id = ?")

	if filter.SinceDays > 0 {
		where.WriteString(" AND created_at >= ?")
		args = append(args, formatTime(s.now().Add(-time.Duration(filter.SinceDays)*24*time.Hour)))
	}
	likes := []struct{ column, value string }{
		{"product_title", filter.Query},
		{"mall_name", filter.Mall},
		{"brand", filter.Brand},
	}
	for _, l := range likes {
		if l.value == "" {
			continue
		}
		where.WriteString(" AND " + l.column + ` LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(l.value))
	}
	if filter.ExactOnly {
		where.WriteString(" AND is_exact_match = 1")
	}

	return where.String(), args
}

// QueryResults 필터에 맞는 설정의 검색 결과를 실행 단위로 한 페이지 반환합니다.
//
// 페이지 크기는 실행 수입니다. 한 실행의 결과는 여러 페이지로 나뉘지 않으며, 실행은 가장 최근 결과 기준 최신순입니다.
// total은 페이지 적용 전 전체 결과 개수입니다.
func (s *Store) QueryResults(ctx context.Context, configID int64, filter autosearch.HistoryFilter) ([]autosearch.MatchedResult, int, error) {
	filter = filter.Normalized()
	where, args := s.resultFilter(configID, filter)

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM matched_results"+where, args...).Scan(&total); err != nil {
		return nil, 0, wrapQueryErr(err, "검색 결과 개수 조회")
	}

	pageArgs := append(slices.Clone(args), args...)
	pageArgs = append(pageArgs, filter.PageSize, filter.Offset())

	rows, err := s.db.QueryContext(ctx,
		"SELECT "+resultColumns+" FROM matched_results"+where+
			" AND "+executionKey+" IN ("+
			"SELECT "+executionKey+" FROM matched_results"+where+
			" GROUP BY "+executionKey+" ORDER BY MAX(created_at) DESC, "+executionKey+" DESC LIMIT ? OFFSET ?"+
			") ORDER BY created_at DESC, id ASC",
		pageArgs...)
	if err != nil {
		return nil, 0, wrapQueryErr(err, "검색 결과 조회")
	}
	defer rows.Close()

	results := []autosearch.MatchedResult{}
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, 0, wrapQueryErr(err, "검색 결과 조회")
		}
		results = append(results, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapQueryErr(err, "검색 결과 조회")
	}

	return results, total, nil
}

// countExecutions 필터에 맞는 결과가 있는 실행의 수를 반환합니다.
func (s *Store) countExecutions(ctx context.Context, configID int64, filter autosearch.HistoryFilter) (int, error) {
	where, args := s.resultFilter(configID, filter)

	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT "+executionKey+") FROM matched_results"+where, args...).Scan(&n); err != nil {
		return 0, wrapQueryErr(err, "실행 개수 조회")
	}
	return n, nil
}

// History 설정 정보, 날짜/실행별로 묶은 검색 결과, 실행 로그를 함께 조회합니다.
func (s *Store) History(ctx context.Context, configID int64, filter autosearch.HistoryFilter) (*autosearch.History, error) {
	cfg, err := s.GetConfig(ctx, configID)
	if err != nil {
		return nil, err
	}

	filter = filter.Normalized()
	results, total, err := s.QueryResults(ctx, configID, filter)
	if err != nil {
		return nil, err
	}
	executions, err := s.countExecutions(ctx, configID, filter)
	if err != nil {
		return nil, err
	}

	logs, err := s.ListRunLogs(ctx, configID, 0)
	if err != nil {
		return nil, err
	}

	return &autosearch.History{
		Config:       cfg,
		Days:         autosearch.GroupHistory(results),
		Logs:         logs,
		TotalResults: total,
		TotalRuns:    executions,
		Page:         filter.Page,
		PageSize:     filter.PageSize,
	}, nil
}
