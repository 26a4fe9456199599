package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Schema local para snapshots del hato (mismas tablas que lee sqldb.HerdRepo).
const schema = `
CREATE TABLE IF NOT EXISTS stables (
	id      INTEGER PRIMARY KEY,
	name    TEXT NOT NULL DEFAULT '',
	"limit" INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS bovines (
	id         INTEGER PRIMARY KEY,
	name       TEXT,
	breed      TEXT,
	gender     TEXT,
	birth_date TEXT,
	weight     REAL,
	stable_id  INTEGER
);

CREATE TABLE IF NOT EXISTS vaccines (
	id           INTEGER PRIMARY KEY,
	name         TEXT,
	vaccine_type TEXT,
	vaccine_date TEXT,
	bovine_id    INTEGER
);
`

// IsDSN reconoce DSNs que apuntan a un archivo sqlite.
func IsDSN(dsn string) bool {
	d := strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(d, "sqlite:") ||
		strings.HasPrefix(d, "file:") ||
		strings.HasSuffix(d, ".db") ||
		strings.HasSuffix(d, ".sqlite")
}

// PathFromDSN quita el prefijo sqlite:/file: (y un posible "//").
func PathFromDSN(dsn string) string {
	p := strings.TrimSpace(dsn)
	for _, prefix := range []string{"sqlite:", "file:"} {
		if len(p) >= len(prefix) && strings.EqualFold(p[:len(prefix)], prefix) {
			p = p[len(prefix):]
			break
		}
	}
	return strings.TrimPrefix(p, "//")
}

// Open abre (o crea) el archivo y asegura el schema.
func Open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db path: %w", err)
	}

	// busy_timeout: espera de locks; WAL permite leer mientras otro proceso escribe el snapshot
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", filepath.Clean(dbPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return db, nil
}
