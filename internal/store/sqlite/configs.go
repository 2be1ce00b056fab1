package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
)

const configColumns = `id, name, search_query, target_product_name, target_mall_name, target_brand,
	max_pages, credential_profile_id, interval_hours, is_active, run_count, success_count, error_count,
	last_run_at, last_error, description, created_at, updated_at`

func scanConfig(row rowScanner) (*autosearch.SearchConfig, error) {
	var (
		c                    autosearch.SearchConfig
		profileID            sql.NullInt64
		lastRunAt            sql.NullString
		createdAt, updatedAt string
	)

	if err := row.Scan(
		&c.ID, &c.Name, &c.SearchQuery, &c.TargetProductName, &c.TargetMallName, &c.TargetBrand,
		&c.MaxPages, &profileID, &c.IntervalHours, &c.IsActive, &c.RunCount, &c.SuccessCount, &c.ErrorCount,
		&lastRunAt, &c.LastError, &c.Description, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	c.CredentialProfileID = int64Ptr(profileID)
	c.LastRunAt = timePtr(lastRunAt)
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)

	return &c, nil
}

// CreateConfig 설정을 추가하고 생성된 ID와 시각을 c에 채웁니다. 실행 카운터는 0으로 시작합니다.
func (s *Store) CreateConfig(ctx context.Context, c *autosearch.SearchConfig) error {
	now := s.now()

	res, err := s.db.ExecContext(ctx, `INSERT INTO search_configs
		(name, search_query, target_product_name, target_mall_name, target_brand, max_pages,
		 credential_profile_id, interval_hours, is_active, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.SearchQuery, c.TargetProductName, c.TargetMallName, c.TargetBrand, c.MaxPages,
		nullInt64(c.CredentialProfileID), c.IntervalHours, boolInt(c.IsActive), c.Description,
		formatTime(now), formatTime(now),
	)
	if err != nil {
		return wrapQueryErr(err, "설정 추가")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return wrapQueryErr(err, "설정 추가")
	}

	c.ID = id
	c.RunCount, c.SuccessCount, c.ErrorCount = 0, 0, 0
	c.LastRunAt, c.LastError = nil, ""
	c.CreatedAt, c.UpdatedAt = now.UTC().Truncate(time.Millisecond), now.UTC().Truncate(time.Millisecond)

	return nil
}

// UpdateConfig 사용자가 편집할 수 있는 항목만 갱신합니다. 실행 카운터와 최근 실행 정보는 변경하지 않습니다.
func (s *Store) UpdateConfig(ctx context.Context, c *autosearch.SearchConfig) error {
	res, err := s.db.ExecContext(ctx, `UPDATE search_configs SET
		name = ?, search_query = ?, target_product_name = ?, target_mall_name = ?, target_brand = ?,
		max_pages = ?, credential_profile_id = ?, interval_hours = ?, is_active = ?, description = ?, updated_at = ?
		WHERE id = ?`,
		c.Name, c.SearchQuery, c.TargetProductName, c.TargetMallName, c.TargetBrand,
		c.MaxPages, nullInt64(c.CredentialProfileID), c.IntervalHours, boolInt(c.IsActive), c.Description,
		formatTime(s.now()), c.ID,
	)
	if err != nil {
		return wrapQueryErr(err, "설정 수정")
	}

	return expectAffected(res, "자동 검색 설정을 찾을 수 없습니다(id=%d)", c.ID)
}

// DeleteConfig 설정을 삭제합니다. 해당 설정의 실행 로그와 검색 결과도 함께 삭제됩니다.
func (s *Store) DeleteConfig(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM search_configs WHERE id = ?", id)
	if err != nil {
		return wrapQueryErr(err, "설정 삭제")
	}
	return expectAffected(res, "자동 검색 설정을 찾을 수 없습니다(id=%d)", id)
}

// GetConfig 활성 여부와 관계없이 설정을 조회합니다.
func (s *Store) GetConfig(ctx context.Context, id int64) (*autosearch.SearchConfig, error) {
	c, err := scanConfig(s.db.QueryRowContext(ctx, "SELECT "+configColumns+" FROM search_configs WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Newf(apperrors.NotFound, "자동 검색 설정을 찾을 수 없습니다(id=%d)", id)
		}
		return nil, wrapQueryErr(err, "설정 조회")
	}
	return c, nil
}

// GetActiveConfig 활성 상태인 설정을 조회합니다. 없거나 비활성이면 apperrors.NotFound 에러를 반환합니다.
func (s *Store) GetActiveConfig(ctx context.Context, id int64) (*autosearch.SearchConfig, error) {
	c, err := scanConfig(s.db.QueryRowContext(ctx, "SELECT "+configColumns+" FROM search_configs WHERE id = ? AND is_active = 1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Newf(apperrors.NotFound, "활성 상태인 자동 검색 설정을 찾을 수 없습니다(id=%d)", id)
		}
		return nil, wrapQueryErr(err, "활성 설정 조회")
	}
	return c, nil
}

// ListConfigs 모든 설정을 최신 생성순으로 반환합니다.
func (s *Store) ListConfigs(ctx context.Context) ([]*autosearch.SearchConfig, error) {
	return s.queryConfigs(ctx, "SELECT "+configColumns+" FROM search_configs ORDER BY created_at DESC, id DESC")
}

// ListActiveConfigs 활성 설정을 ID 순서대로 반환합니다.
func (s *Store) ListActiveConfigs(ctx context.Context) ([]*autosearch.SearchConfig, error) {
	return s.queryConfigs(ctx, "SELECT "+configColumns+" FROM search_configs WHERE is_active = 1 ORDER BY id")
}

func (s *Store) queryConfigs(ctx context.Context, query string, args ...any) ([]*autosearch.SearchConfig, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryErr(err, "설정 목록 조회")
	}
	defer rows.Close()

	configs := []*autosearch.SearchConfig{}
	for rows.Next() {
		c, err := scanConfig(rows)
		if err != nil {
			return nil, wrapQueryErr(err, "설정 목록 조회")
		}
		configs = append(configs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "설정 목록 조회")
	}

	return configs, nil
}

// RecordRunSuccess 실행 횟수와 성공 횟수를 한 번의 UPDATE로 함께 증가시킵니다.
func (s *Store) RecordRunSuccess(ctx context.Context, configID int64, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `UPDATE search_configs SET
		run_count = run_count + 1, success_count = success_count + 1, last_run_at = ?, updated_at = ?
		WHERE id = ?`, formatTime(at), formatTime(s.now()), configID)
	if err != nil {
		return wrapQueryErr(err, "실행 성공 기록")
	}
	return expectAffected(res, "자동 검색 설정을 찾을 수 없습니다(id=%d)", configID)
}

// RecordRunFailure 실행 횟수와 오류 횟수를 한 번의 UPDATE로 함께 증가시키고 마지막 오류를 기록합니다.
func (s *Store) RecordRunFailure(ctx context.Context, configID int64, at time.Time, message string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE search_configs SET
		run_count = run_count + 1, error_count = error_count + 1, last_run_at = ?, last_error = ?, updated_at = ?
		WHERE id = ?`, formatTime(at), message, formatTime(s.now()), configID)
	if err != nil {
		return wrapQueryErr(err, "실행 실패 기록")
	}
	return expectAffected(res, "자동 검색 설정을 찾을 수 없습니다(id=%d)", configID)
}

func expectAffected(res sql.Result, format string, args ...any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return wrapQueryErr(err, "변경 행 수 확인")
	}
	if n == 0 {
		return apperrors.Newf(apperrors.NotFound, format, args...)
	}
	return nil
}
