package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	charengine "github.com/chessmates/character-engine-go"
)

// SQLiteKnowledgeStore implements charengine.KnowledgeStore on a local
// SQLite file, for deployments that want AddKnowledge to survive restarts
// without a server dependency.
type SQLiteKnowledgeStore struct {
	db       *sql.DB
	maxFacts int
}

// OpenSQLite opens (or creates) the knowledge database in dataDir. Pass
// ":memory:" for an in-memory database (used by tests). maxFacts <= 0
// uses charengine.DefaultMaxFactsPerTopic.
func OpenSQLite(dataDir string, maxFacts int) (*SQLiteKnowledgeStore, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlite knowledge: creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "knowledge.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite knowledge: opening database: %w", err)
	}

	// Single connection avoids "database is locked" under concurrent use.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite knowledge: setting busy timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite knowledge: setting journal mode: %w", err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS facts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	topic TEXT NOT NULL,
	fact TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_facts_topic ON facts(topic);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite knowledge: creating schema: %w", err)
	}

	if maxFacts <= 0 {
		maxFacts = charengine.DefaultMaxFactsPerTopic
	}
	return &SQLiteKnowledgeStore{db: db, maxFacts: maxFacts}, nil
}

// Close releases the database handle.
func (s *SQLiteKnowledgeStore) Close() error {
	return s.db.Close()
}

// Facts returns all facts for a topic, oldest first.
func (s *SQLiteKnowledgeStore) Facts(topic string) ([]string, error) {
	rows, err := s.db.Query(`SELECT fact FROM facts WHERE topic = ? ORDER BY id`, topic)
	if err != nil {
		return nil, fmt.Errorf("sqlite knowledge: query %s: %w", topic, err)
	}
	defer rows.Close()

	var facts []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, fmt.Errorf("sqlite knowledge: scan: %w", err)
		}
		facts = append(facts, f)
	}
	return facts, rows.Err()
}

// Append inserts facts and evicts the oldest rows past the per-topic bound.
func (s *SQLiteKnowledgeStore) Append(topic string, facts []string) error {
	if topic == "" || len(facts) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite knowledge: begin: %w", err)
	}
	defer tx.Rollback()

	for _, f := range facts {
		if _, err := tx.Exec(`INSERT INTO facts (topic, fact) VALUES (?, ?)`, topic, f); err != nil {
			return fmt.Errorf("sqlite knowledge: insert %s: %w", topic, err)
		}
	}
	if _, err := tx.Exec(`
DELETE FROM facts WHERE topic = ? AND id NOT IN (
	SELECT id FROM facts WHERE topic = ? ORDER BY id DESC LIMIT ?
)`, topic, topic, s.maxFacts); err != nil {
		return fmt.Errorf("sqlite knowledge: trim %s: %w", topic, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite knowledge: commit: %w", err)
	}
	return nil
}

// Topics lists all known topics.
func (s *SQLiteKnowledgeStore) Topics() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT topic FROM facts ORDER BY topic`)
	if err != nil {
		return nil, fmt.Errorf("sqlite knowledge: topics: %w", err)
	}
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("sqlite knowledge: scan: %w", err)
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// Seed loads domains whose topics are still empty.
func (s *SQLiteKnowledgeStore) Seed(domains map[string][]string) error {
	for topic, facts := range domains {
		var n int
		if err := s.db.QueryRow(`SELECT COUNT(*) FROM facts WHERE topic = ?`, topic).Scan(&n); err != nil {
			return fmt.Errorf("sqlite knowledge: count %s: %w", topic, err)
		}
		if n > 0 {
			continue
		}
		if err := s.Append(topic, facts); err != nil {
			return err
		}
	}
	return nil
}

var _ charengine.KnowledgeStore = (*SQLiteKnowledgeStore)(nil)
