package trace

// Dialect names the SQL backend SQLRecorder talks to. The two dialects
// differ in their CREATE TABLE / autoincrement syntax and in their upsert
// clause (ON DUPLICATE KEY UPDATE vs ON CONFLICT ... DO UPDATE); the
// columns written and the retry behavior are identical.
type Dialect int

const (
	// DialectSQLite targets a modernc.org/sqlite-backed *sql.DB.
	DialectSQLite Dialect = iota
	// DialectMySQL targets a go-sql-driver/mysql-backed *sql.DB.
	DialectMySQL
)

func (d Dialect) createTableSQL() string {
	switch d {
	case DialectMySQL:
		return `
			CREATE TABLE IF NOT EXISTS propagation_records (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				propagation_id VARCHAR(64) NOT NULL UNIQUE,
				seeds JSON NOT NULL,
				executed JSON NOT NULL,
				barrier_coalesced INT NOT NULL,
				failures INT NOT NULL,
				duration_ns BIGINT NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`
	default:
		return `
			CREATE TABLE IF NOT EXISTS propagation_records (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				propagation_id TEXT NOT NULL UNIQUE,
				seeds TEXT NOT NULL,
				executed TEXT NOT NULL,
				barrier_coalesced INTEGER NOT NULL,
				failures INTEGER NOT NULL,
				duration_ns INTEGER NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)
		`
	}
}

func (d Dialect) upsertSQL() string {
	switch d {
	case DialectMySQL:
		return `
			INSERT INTO propagation_records
				(propagation_id, seeds, executed, barrier_coalesced, failures, duration_ns)
			VALUES (?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE
				seeds = VALUES(seeds),
				executed = VALUES(executed),
				barrier_coalesced = VALUES(barrier_coalesced),
				failures = VALUES(failures),
				duration_ns = VALUES(duration_ns)
		`
	default:
		return `
			INSERT INTO propagation_records
				(propagation_id, seeds, executed, barrier_coalesced, failures, duration_ns)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(propagation_id) DO UPDATE SET
				seeds = excluded.seeds,
				executed = excluded.executed,
				barrier_coalesced = excluded.barrier_coalesced,
				failures = excluded.failures,
				duration_ns = excluded.duration_ns
		`
	}
}
