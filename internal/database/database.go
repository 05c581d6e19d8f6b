package database

import (
	"database/sql"
	"fmt"
	"sync"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const tableName = "duels"

const selectColumns = "id, created_at, player1, player2, mode, p1_life, p2_life, winner, reason, rounds"

type Service struct {
	db         *sql.DB
	m          sync.Mutex
	table_name string
	logger     *zap.Logger
}

// New opens the sqlite database at dsn and creates the history table.
func New(dsn string, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Service{db: db, table_name: tableName, logger: logger}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("database connected", zap.String("dsn", dsn))
	return s, nil
}

func (s *Service) migrate() error {
	_, err := s.db.Exec(`
	create table if not exists ` + s.table_name + ` (
		id text not null primary key,
		created_at text not null,
		player1 text not null,
		player2 text not null,
		mode text not null,
		p1_life integer not null,
		p2_life integer not null,
		winner text not null default '',
		reason text not null,
		rounds integer not null
	);`)
	return err
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) Insert(result DuelResult) error {
	s.m.Lock()
	defer s.m.Unlock()
	_, err := s.db.Exec("INSERT INTO "+s.table_name+
		" ("+selectColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		result.ID,
		result.CreatedAt,
		result.Player1,
		result.Player2,
		result.Mode,
		result.P1Life,
		result.P2Life,
		result.Winner,
		result.Reason,
		result.Rounds)
	if err != nil {
		return fmt.Errorf("failed to insert duel %s: %w", result.ID, err)
	}
	s.logger.Debug("duel stored", zap.String("duel_id", result.ID))
	return nil
}

func (s *Service) GetAll() ([]DuelResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query("SELECT " + selectColumns + " FROM " + s.table_name + " ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanResults(rows)
}

func (s *Service) GetByID(id string) (DuelResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	var result DuelResult
	err := s.db.QueryRow("SELECT "+selectColumns+" FROM "+s.table_name+" WHERE id = ?", id).Scan(
		&result.ID,
		&result.CreatedAt,
		&result.Player1,
		&result.Player2,
		&result.Mode,
		&result.P1Life,
		&result.P2Life,
		&result.Winner,
		&result.Reason,
		&result.Rounds)
	if err != nil {
		return DuelResult{}, err
	}
	return result, nil
}

// GetByPlayer returns every duel the named player took part in, or sql.ErrNoRows.
func (s *Service) GetByPlayer(playerName string) ([]DuelResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query("SELECT "+selectColumns+" FROM "+s.table_name+
		" WHERE player1 = ? OR player2 = ? ORDER BY created_at",
		playerName,
		playerName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results, err := scanResults(rows)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, sql.ErrNoRows
	}
	return results, nil
}

func scanResults(rows *sql.Rows) ([]DuelResult, error) {
	var results []DuelResult
	for rows.Next() {
		var result DuelResult
		if err := rows.Scan(
			&result.ID,
			&result.CreatedAt,
			&result.Player1,
			&result.Player2,
			&result.Mode,
			&result.P1Life,
			&result.P2Life,
			&result.Winner,
			&result.Reason,
			&result.Rounds); err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}
