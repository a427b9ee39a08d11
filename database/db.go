package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"

	"tripchat/flights"
)

// ErrNotFound is returned when no search has the requested id.
var ErrNotFound = errors.New("search not found")

// ─── Models ──────────────────────────────────────────────────────────────────

// Search is one answered POST /api/flights call. Budget is nil when the
// search had no upper bound.
type Search struct {
	ID          string          `json:"id"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	DepartDate  string          `json:"depart_date"`
	ReturnDate  string          `json:"return_date,omitempty"`
	Budget      *int            `json:"budget,omitempty"`
	Transport   string          `json:"transport,omitempty"`
	Message     string          `json:"message,omitempty"`
	Source      string          `json:"source"`
	Offers      []flights.Offer `json:"offers"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Store is the search history kept in PostgreSQL.
type Store struct {
	db *sql.DB
}

// ─── Init ─────────────────────────────────────────────────────────────────────

// Open connects to dsn, waiting for the server to come up, and migrates the
// schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	const attempts = 10
	for i := 0; i < attempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		log.Printf("⏳ Waiting for database... attempt %d/%d: %v", i+1, attempts, err)
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database after retries: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	log.Println("✅ Database connected and migrated")
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ─── Migrations ───────────────────────────────────────────────────────────────

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS searches (
		id          TEXT PRIMARY KEY,
		origin      TEXT NOT NULL,
		destination TEXT NOT NULL,
		depart_date TEXT NOT NULL,
		return_date TEXT NOT NULL DEFAULT '',
		budget      INTEGER,
		transport   TEXT NOT NULL DEFAULT '',
		message     TEXT NOT NULL DEFAULT '',
		source      TEXT NOT NULL,
		offers_json TEXT NOT NULL,
		created_at  TIMESTAMPTZ DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_searches_created_at
		ON searches(created_at DESC)`,
}

func (s *Store) migrate(ctx context.Context) error {
	for _, m := range migrations {
		if _, err := s.db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── CRUD ─────────────────────────────────────────────────────────────────────

func (s *Store) SaveSearch(ctx context.Context, search *Search) error {
	offers, err := encodeOffers(search.Offers)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO searches (id, origin, destination, depart_date, return_date, budget, transport, message, source, offers_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		search.ID, search.Origin, search.Destination, search.DepartDate, search.ReturnDate,
		nullInt(search.Budget), search.Transport, search.Message, search.Source, offers)
	if err != nil {
		return fmt.Errorf("save search: %w", err)
	}
	return nil
}

const selectSearch = `
	SELECT id, origin, destination, depart_date, return_date, budget, transport, message, source, offers_json, created_at
	FROM searches`

func (s *Store) GetSearch(ctx context.Context, id string) (*Search, error) {
	search, err := scanSearch(s.db.QueryRowContext(ctx, selectSearch+` WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return search, err
}

// RecentSearches returns up to limit searches, newest first.
func (s *Store) RecentSearches(ctx context.Context, limit int) ([]Search, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, selectSearch+` ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list searches: %w", err)
	}
	defer rows.Close()

	out := []Search{}
	for rows.Next() {
		search, err := scanSearch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *search)
	}
	return out, rows.Err()
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

type scanner interface {
	Scan(dest ...any) error
}

func scanSearch(row scanner) (*Search, error) {
	var (
		search Search
		budget sql.NullInt64
		offers string
	)
	err := row.Scan(&search.ID, &search.Origin, &search.Destination, &search.DepartDate, &search.ReturnDate,
		&budget, &search.Transport, &search.Message, &search.Source, &offers, &search.CreatedAt)
	if err != nil {
		return nil, err
	}
	if budget.Valid {
		b := int(budget.Int64)
		search.Budget = &b
	}
	if search.Offers, err = decodeOffers(offers); err != nil {
		return nil, err
	}
	return &search, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func encodeOffers(offers []flights.Offer) (string, error) {
	if offers == nil {
		offers = []flights.Offer{}
	}
	data, err := json.Marshal(offers)
	if err != nil {
		return "", fmt.Errorf("encode offers: %w", err)
	}
	return string(data), nil
}

func decodeOffers(data string) ([]flights.Offer, error) {
	offers := []flights.Offer{}
	if data == "" {
		return offers, nil
	}
	if err := json.Unmarshal([]byte(data), &offers); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}
	return offers, nil
}
