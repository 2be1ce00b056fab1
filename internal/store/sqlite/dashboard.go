package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
)

const (
	dashboardRecentLimit = 10
	dashboardTopLimit    = 5
)

// Dashboard 전체 설정과 실행 현황을 요약합니다.
func (s *Store) Dashboard(ctx context.Context) (*autosearch.Dashboard, error) {
	d := &autosearch.Dashboard{
		RecentActivity: []autosearch.DashboardActivity{},
		TopConfigs:     []autosearch.DashboardTopConfig{},
		Rankings:       []autosearch.DashboardRanking{},
	}

	if err := s.db.QueryRowContext(ctx, `SELECT
			COUNT(*),
			COALESCE(SUM(is_active), 0),
			COALESCE(SUM(run_count), 0),
			COALESCE(SUM(success_count), 0),
			COALESCE(SUM(error_count), 0)
		FROM search_configs`).Scan(&d.TotalConfigs, &d.ActiveConfigs, &d.TotalRuns, &d.SuccessRuns, &d.ErrorRuns); err != nil {
		return nil, wrapQueryErr(err, "설정 통계 조회")
	}

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM matched_results").Scan(&d.TotalResults); err != nil {
		return nil, wrapQueryErr(err, "검색 결과 개수 조회")
	}

	if err := s.recentActivity(ctx, d); err != nil {
		return nil, err
	}
	if err := s.topConfigs(ctx, d); err != nil {
		return nil, err
	}
	if err := s.latestRankings(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Store) recentActivity(ctx context.Context, d *autosearch.Dashboard) error {
	rows, err := s.db.QueryContext(ctx, `SELECT
			l.id, l.config_id, l.run_id, l.trigger_by, l.status, l.started_at, l.completed_at,
			l.duration_ms, l.results_count, l.error_message, l.result_sample,
			c.name, c.search_query
		FROM run_logs l JOIN search_configs c ON c.id = l.config_id
		ORDER BY l.started_at DESC, l.id DESC LIMIT ?`, dashboardRecentLimit)
	if err != nil {
		return wrapQueryErr(err, "최근 실행 조회")
	}
	defer rows.Close()

	for rows.Next() {
		var a autosearch.DashboardActivity
		l, err := scanRunLog(scanFunc(func(dest ...any) error {
			return rows.Scan(append(dest, &a.ConfigName, &a.SearchQuery)...)
		}))
		if err != nil {
			return wrapQueryErr(err, "최근 실행 조회")
		}
		// 목록에서는 견본을 내려보내지 않습니다.
		l.ResultSample = nil
		a.RunLog = *l
		d.RecentActivity = append(d.RecentActivity, a)
	}
	if err := rows.Err(); err != nil {
		return wrapQueryErr(err, "최근 실행 조회")
	}
	return nil
}

func (s *Store) topConfigs(ctx context.Context, d *autosearch.Dashboard) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, search_query, run_count, success_count
		FROM search_configs ORDER BY run_count DESC, id ASC LIMIT ?`, dashboardTopLimit)
	if err != nil {
		return wrapQueryErr(err, "상위 설정 조회")
	}
	defer rows.Close()

	for rows.Next() {
		var c autosearch.DashboardTopConfig
		if err := rows.Scan(&c.ID, &c.Name, &c.SearchQuery, &c.RunCount, &c.SuccessCount); err != nil {
			return wrapQueryErr(err, "상위 설정 조회")
		}
		c.SuccessRate = autosearch.SuccessRate(c.SuccessCount, c.RunCount)
		d.TopConfigs = append(d.TopConfigs, c)
	}
	if err := rows.Err(); err != nil {
		return wrapQueryErr(err, "상위 설정 조회")
	}
	return nil
}

func (s *Store) latestRankings(ctx context.Context, d *autosearch.Dashboard) error {
	configs, err := s.queryConfigs(ctx, "SELECT "+configColumns+" FROM search_configs WHERE is_active = 1 ORDER BY created_at DESC, id DESC")
	if err != nil {
		return err
	}

	for _, c := range configs {
		ranking := autosearch.DashboardRanking{
			ConfigID:    c.ID,
			ConfigName:  c.Name,
			SearchQuery: c.SearchQuery,
			Target:      c.Target(),
		}

		r, err := scanResult(s.db.QueryRowContext(ctx, "SELECT "+resultColumns+` FROM matched_results
			WHERE config_id = ? ORDER BY created_at DESC, total_rank ASC LIMIT 1`, c.ID))
		switch {
		case err == nil:
			ranking.Latest = r
		case errors.Is(err, sql.ErrNoRows):
		default:
			return wrapQueryErr(err, "최신 순위 조회")
		}

		d.Rankings = append(d.Rankings, ranking)
	}
	return nil
}

// scanFunc 함수를 rowScanner로 사용합니다.
type scanFunc func(dest ...any) error

func (f scanFunc) Scan(dest ...any) error { return f(dest...) }
