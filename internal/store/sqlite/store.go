// Package sqlite 자동 검색 설정, 실행 로그, 검색 결과, 알림을 SQLite 데이터베이스에 저장합니다.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/rank-tracker/internal/pkg/errors"
	"github.com/darkkaiser/rank-tracker/internal/service/autosearch"
	applog "github.com/darkkaiser/rank-tracker/pkg/log"
	"github.com/darkkaiser/rank-tracker/pkg/validation"

	_ "modernc.org/sqlite"
)

const component = "store.sqlite"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// timeLayout 문자열 비교로 시간 순서를 판단할 수 있도록 UTC 고정 길이 형식을 사용합니다.
const timeLayout = "2006-01-02T15:04:05.000Z"

// Store SQLite 기반 저장소
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ autosearch.Store = (*Store)(nil)

// Open 데이터베이스를 열고(없으면 생성) 적용되지 않은 마이그레이션을 실행합니다.
// path가 ":memory:"이면 메모리 데이터베이스를 사용합니다.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, apperrors.New(apperrors.InvalidInput, "데이터베이스 경로가 비어 있습니다")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "데이터베이스를 열 수 없습니다")
	}

	// 단일 연결로 제한하여 "database is locked" 에러를 피하고 메모리 데이터베이스를 하나로 유지합니다.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, apperrors.Wrap(err, apperrors.System, "데이터베이스에 연결할 수 없습니다")
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	if path != validation.MemoryDatabasePath {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, apperrors.Wrapf(err, apperrors.System, "데이터베이스 설정(%s)에 실패했습니다", p)
		}
	}

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"path": path,
	}).Info("데이터베이스 초기화 완료")

	return s, nil
}

// Close 데이터베이스 연결을 닫습니다.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping 데이터베이스 연결 상태를 확인합니다.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate 내장된 SQL 파일 중 아직 적용되지 않은 것을 파일명 순서대로 적용합니다.
func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (
		version    INTEGER PRIMARY KEY,
		applied_at TEXT NOT NULL
	)`); err != nil {
		return apperrors.Wrap(err, apperrors.System, "schema_version 테이블 생성에 실패했습니다")
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return apperrors.Wrap(err, apperrors.Internal, "마이그레이션 디렉터리를 읽을 수 없습니다")
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, err := parseMigrationVersion(entry.Name())
		if err != nil {
			return err
		}

		var applied int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_version WHERE version = ?", version).Scan(&applied); err != nil {
			return apperrors.Wrapf(err, apperrors.System, "마이그레이션 %d 적용 여부 확인에 실패했습니다", version)
		}
		if applied > 0 {
			continue
		}

		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return apperrors.Wrapf(err, apperrors.Internal, "마이그레이션 파일(%s)을 읽을 수 없습니다", entry.Name())
		}

		err = s.withTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, string(content)); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version, applied_at) VALUES (?, ?)", version, formatTime(s.now()))
			return err
		})
		if err != nil {
			return apperrors.Wrapf(err, apperrors.System, "마이그레이션 %d 적용에 실패했습니다", version)
		}

		applog.WithComponentAndFields(component, applog.Fields{
			"version": version,
			"file":    entry.Name(),
		}).Info("데이터베이스 마이그레이션 적용")
	}

	return nil
}

// parseMigrationVersion "001_init.sql" 형식의 파일명에서 버전 번호를 추출합니다.
func parseMigrationVersion(name string) (int, error) {
	prefix, _, ok := strings.Cut(name, "_")
	if !ok {
		return 0, apperrors.Newf(apperrors.Internal, "마이그레이션 파일명 형식이 올바르지 않습니다: %s", name)
	}
	v, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, apperrors.Wrapf(err, apperrors.Internal, "마이그레이션 파일명 형식이 올바르지 않습니다: %s", name)
	}
	return v, nil
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// rowScanner *sql.Row와 *sql.Rows의 공통 인터페이스
type rowScanner interface {
	Scan(dest ...any) error
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

func timePtr(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	t := parseTime(ns.String)
	return &t
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// likePattern LIKE 검색용 패턴을 만듭니다. 와일드카드 문자는 이스케이프합니다.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

func wrapQueryErr(err error, op string) error {
	return apperrors.Wrapf(err, apperrors.System, "데이터베이스 작업에 실패했습니다(%s)", op)
}
