package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MemoryDatabasePath 파일 대신 메모리에 생성되는 SQLite 데이터베이스를 가리키는 경로입니다.
const MemoryDatabasePath = ":memory:"

// ValidateDatabasePath 데이터베이스 파일을 생성하거나 열 수 있는 경로인지 검증합니다.
//
// 파일 자체는 아직 없어도 되지만 상위 디렉터리는 존재해야 하며, 경로가 디렉터리를 가리키면 안 됩니다.
func ValidateDatabasePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("데이터베이스 경로가 비어 있습니다")
	}
	if path == MemoryDatabasePath {
		return nil
	}

	path = filepath.Clean(path)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("데이터베이스 경로가 디렉터리를 가리킵니다 (path=%q)", path)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("데이터베이스 디렉터리가 존재하지 않습니다 (dir=%q)", dir)
		}
		return fmt.Errorf("데이터베이스 디렉터리 정보를 확인하는 중 오류가 발생했습니다 (dir=%q): %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("데이터베이스 경로의 상위 항목이 디렉터리가 아닙니다 (dir=%q)", dir)
	}

	return nil
}
