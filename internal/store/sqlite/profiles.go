package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
)

const profileColumns = "id, name, client_id, client_secret, api_type, is_active, is_default, created_at"

func scanProfile(row rowScanner) (*autosearch.CredentialProfile, error) {
	var (
		p         autosearch.CredentialProfile
		createdAt string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.ClientID, &p.ClientSecret, &p.APIType, &p.IsActive, &p.IsDefault, &createdAt); err != nil {
		return nil, err
	}
	p.CreatedAt = parseTime(createdAt)
	return &p, nil
}

// CreateCredentialProfile 인증 프로필을 추가합니다.
// 기본 프로필로 지정하면 같은 API 유형의 다른 프로필은 기본 지정이 해제됩니다.
func (s *Store) CreateCredentialProfile(ctx context.Context, p *autosearch.CredentialProfile) error {
	if strings.TrimSpace(p.APIType) == "" {
		p.APIType = autosearch.APITypeShopping
	}
	now := s.now()

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if p.IsDefault {
			if _, err := tx.ExecContext(ctx, "UPDATE credential_profiles SET is_default = 0 WHERE api_type = ?", p.APIType); err != nil {
				return err
			}
		}

		res, err := tx.ExecContext(ctx, `INSERT INTO credential_profiles
			(name, client_id, client_secret, api_type, is_active, is_default, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.Name, p.ClientID, p.ClientSecret, p.APIType, boolInt(p.IsActive), boolInt(p.IsDefault), formatTime(now))
		if err != nil {
			return err
		}

		p.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return wrapQueryErr(err, "인증 프로필 추가")
	}

	p.CreatedAt = now.UTC().Truncate(time.Millisecond)
	return nil
}

// GetCredentialProfile 인증 프로필을 조회합니다. 비활성 프로필도 반환하므로 호출자가 IsActive를 확인해야 합니다.
func (s *Store) GetCredentialProfile(ctx context.Context, id int64) (*autosearch.CredentialProfile, error) {
	p, err := scanProfile(s.db.QueryRowContext(ctx, "SELECT "+profileColumns+" FROM credential_profiles WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Newf(apperrors.NotFound, "인증 프로필을 찾을 수 없습니다(id=%d)", id)
		}
		return nil, wrapQueryErr(err, "인증 프로필 조회")
	}
	return p, nil
}

// GetDefaultCredentialProfile API 유형의 활성 기본 프로필을 조회합니다.
func (s *Store) GetDefaultCredentialProfile(ctx context.Context, apiType string) (*autosearch.CredentialProfile, error) {
	p, err := scanProfile(s.db.QueryRowContext(ctx, "SELECT "+profileColumns+` FROM credential_profiles
		WHERE api_type = ? AND is_default = 1 AND is_active = 1
		ORDER BY id DESC LIMIT 1`, apiType))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Newf(apperrors.NotFound, "'%s' 유형의 활성 기본 인증 프로필이 없습니다", apiType)
		}
		return nil, wrapQueryErr(err, "기본 인증 프로필 조회")
	}
	return p, nil
}

// ListCredentialProfiles 모든 인증 프로필을 ID 순서대로 반환합니다.
func (s *Store) ListCredentialProfiles(ctx context.Context) ([]*autosearch.CredentialProfile, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+profileColumns+" FROM credential_profiles ORDER BY id")
	if err != nil {
		return nil, wrapQueryErr(err, "인증 프로필 목록 조회")
	}
	defer rows.Close()

	profiles := []*autosearch.CredentialProfile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, wrapQueryErr(err, "인증 프로필 목록 조회")
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "인증 프로필 목록 조회")
	}

	return profiles, nil
}

// DeleteCredentialProfile 인증 프로필을 삭제합니다. 이 프로필에 연결된 설정은 기본 프로필을 사용하게 됩니다.
func (s *Store) DeleteCredentialProfile(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM credential_profiles WHERE id = ?", id)
	if err != nil {
		return wrapQueryErr(err, "인증 프로필 삭제")
	}
	return expectAffected(res, "인증 프로필을 찾을 수 없습니다(id=%d)", id)
}
