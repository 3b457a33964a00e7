// Package db provides a pgxpool-based connection pool with prepared statement
// registration, schema bootstrap and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/h2h-league/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// The games table must exist before statements referencing it are prepared.
	if err := bootstrap(ctx, poolCfg.ConnConfig); err != nil {
		return nil, err
	}

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

func bootstrap(ctx context.Context, connCfg *pgx.ConnConfig) error {
	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer conn.Close(ctx)
	return EnsureSchema(ctx, conn)
}

// Execer is satisfied by *pgx.Conn, *pgxpool.Pool and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// EnsureSchema creates the game log table when it is missing.
func EnsureSchema(ctx context.Context, db Execer) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS `+config.GamesTable+` (
			id            BIGSERIAL PRIMARY KEY,
			canonical_key TEXT NOT NULL UNIQUE,
			season        INTEGER NOT NULL,
			game_date     TEXT NOT NULL,
			team_a        TEXT NOT NULL,
			team_b        TEXT NOT NULL,
			score_a       DOUBLE PRECISION NOT NULL,
			score_b       DOUBLE PRECISION NOT NULL,
			week          INTEGER,
			round         TEXT NOT NULL DEFAULT '',
			game_type     TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("ensure %s table: %w", config.GamesTable, err)
	}
	return nil
}

// registerPreparedStatements registers the statements the API and the
// publish command use.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		"health_check": "SELECT 1",

		"load_games": `SELECT season, game_date, team_a, team_b, score_a, score_b,
			COALESCE(week, 0), round, game_type
			FROM ` + config.GamesTable + ` ORDER BY id`,

		// xmax = 0 only for freshly inserted rows.
		"upsert_game": `INSERT INTO ` + config.GamesTable + ` (
				canonical_key, season, game_date, team_a, team_b,
				score_a, score_b, week, round, game_type
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
			ON CONFLICT (canonical_key) DO UPDATE SET
				week = EXCLUDED.week,
				updated_at = NOW()
			RETURNING (xmax = 0)`,
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
