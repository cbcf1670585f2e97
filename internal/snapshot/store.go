package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"qbank/internal/question"
)

// Driver names a database/sql driver that can hold snapshots.
type Driver string

const (
	DriverDuckDB Driver = "duckdb"
	DriverSQLite Driver = "sqlite"
)

// timeLayout is fixed-width so text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var (
	// ErrSnapshotNotFound indicates the requested snapshot id is absent.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrNotSnapshotDatabase indicates a database without the snapshot tables.
	ErrNotSnapshotDatabase = errors.New("not a qbank snapshot database")
)

// ParseDriver resolves a driver name.
func ParseDriver(name string) (Driver, error) {
	switch Driver(strings.ToLower(strings.TrimSpace(name))) {
	case DriverDuckDB:
		return DriverDuckDB, nil
	case DriverSQLite:
		return DriverSQLite, nil
	default:
		return "", fmt.Errorf("snapshot: unknown driver %q (expected duckdb|sqlite)", name)
	}
}

// Info describes a stored snapshot.
type Info struct {
	ID          string
	Fingerprint string
	RecordCount int
	CreatedAt   time.Time
	Reused      bool
}

// Store reads and writes collection snapshots in a SQL database.
type Store struct {
	db     *sql.DB
	driver Driver
	now    func() time.Time
}

// Open connects to a database, verifies it responds, and applies the schema.
func Open(ctx context.Context, driver Driver, dsn string) (*Store, error) {
	store, err := open(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(ctx, store.db); err != nil {
		_ = store.db.Close()
		return nil, err
	}
	return store, nil
}

// OpenExisting connects to a database that already holds snapshots.
// The schema is never created; ErrNotSnapshotDatabase is returned when the
// snapshot tables are missing.
func OpenExisting(ctx context.Context, driver Driver, dsn string) (*Store, error) {
	store, err := open(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	for _, table := range []string{"snapshots", "snapshot_questions"} {
		rows, err := store.db.QueryContext(ctx, `SELECT 1 FROM `+table+` LIMIT 1`)
		if err != nil {
			_ = store.db.Close()
			return nil, fmt.Errorf("%w: table %s: %v", ErrNotSnapshotDatabase, table, err)
		}
		_ = rows.Close()
	}
	return store, nil
}

func open(ctx context.Context, driver Driver, dsn string) (*Store, error) {
	if ctx == nil {
		return nil, errors.New("snapshot: context is nil")
	}
	if _, err := ParseDriver(string(driver)); err != nil {
		return nil, err
	}
	db, err := sql.Open(string(driver), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	// One connection keeps in-memory databases shared and writes serialized.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return &Store{db: db, driver: driver, now: time.Now}, nil
}

// Driver returns the driver backing the store.
func (s *Store) Driver() Driver {
	return s.driver
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Write stores the collection as a new snapshot in one transaction.
// A snapshot with the same fingerprint is returned instead of writing a duplicate.
func (s *Store) Write(ctx context.Context, c *question.Collection) (Info, error) {
	if ctx == nil {
		return Info{}, errors.New("snapshot: context is nil")
	}
	if c == nil {
		return Info{}, errors.New("snapshot: collection is nil")
	}
	fingerprint := c.Fingerprint()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Info{}, fmt.Errorf("begin snapshot: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	existing, err := findByFingerprint(ctx, tx, fingerprint)
	if err == nil {
		existing.Reused = true
		return existing, nil
	}
	if !errors.Is(err, ErrSnapshotNotFound) {
		return Info{}, err
	}

	info := Info{
		ID:          uuid.NewString(),
		Fingerprint: fingerprint,
		RecordCount: c.Len(),
		CreatedAt:   s.now().UTC(),
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO snapshots (snapshot_id, fingerprint, record_count, created_at)
		 VALUES (?, ?, ?, ?)`,
		info.ID,
		info.Fingerprint,
		info.RecordCount,
		info.CreatedAt.Format(timeLayout),
	); err != nil {
		_ = tx.Rollback()
		// Another writer committed the same content first.
		if existing, lookupErr := findByFingerprint(ctx, s.db, fingerprint); lookupErr == nil {
			existing.Reused = true
			return existing, nil
		}
		return Info{}, fmt.Errorf("insert snapshot: %w", err)
	}
	for position, record := range c.Records() {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO snapshot_questions (snapshot_id, ordinal, question_id, question_text, difficulty, topic, ideal_answer)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			info.ID,
			position,
			record.ID,
			record.Text,
			string(record.Difficulty),
			record.Topic,
			record.IdealAnswer,
		); err != nil {
			return Info{}, fmt.Errorf("insert question %q: %w", record.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return Info{}, fmt.Errorf("commit snapshot: %w", err)
	}
	return info, nil
}

// Read rebuilds and revalidates the collection stored under snapshotID.
func (s *Store) Read(ctx context.Context, snapshotID string) (*question.Collection, error) {
	if ctx == nil {
		return nil, errors.New("snapshot: context is nil")
	}
	info, err := lookup(ctx, s.db, `WHERE snapshot_id = ?`, snapshotID)
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT question_id, question_text, difficulty, topic, ideal_answer
		 FROM snapshot_questions
		 WHERE snapshot_id = ?
		 ORDER BY ordinal`,
		snapshotID,
	)
	if err != nil {
		return nil, fmt.Errorf("query snapshot questions: %w", err)
	}
	defer rows.Close()

	records := make([]question.Question, 0, info.RecordCount)
	for rows.Next() {
		var (
			record     question.Question
			difficulty string
		)
		if err := rows.Scan(&record.ID, &record.Text, &difficulty, &record.Topic, &record.IdealAnswer); err != nil {
			return nil, fmt.Errorf("scan snapshot question: %w", err)
		}
		record.Difficulty = question.Difficulty(difficulty)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot questions: %w", err)
	}
	if len(records) != info.RecordCount {
		return nil, fmt.Errorf("snapshot %s is incomplete: expected %d records, found %d", snapshotID, info.RecordCount, len(records))
	}
	collection, err := question.NewCollection(records)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", snapshotID, err)
	}
	return collection, nil
}

// List returns stored snapshots, newest first.
func (s *Store) List(ctx context.Context) ([]Info, error) {
	if ctx == nil {
		return nil, errors.New("snapshot: context is nil")
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT snapshot_id, fingerprint, record_count, created_at
		 FROM snapshots
		 ORDER BY created_at DESC, snapshot_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	out := []Info{}
	for rows.Next() {
		info, err := scanInfo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return out, nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func findByFingerprint(ctx context.Context, q queryer, fingerprint string) (Info, error) {
	return lookup(ctx, q, `WHERE fingerprint = ?`, fingerprint)
}

func lookup(ctx context.Context, q queryer, clause string, arg string) (Info, error) {
	row := q.QueryRowContext(
		ctx,
		`SELECT snapshot_id, fingerprint, record_count, created_at FROM snapshots `+clause,
		arg,
	)
	info, err := scanInfo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Info{}, fmt.Errorf("%w: %s", ErrSnapshotNotFound, arg)
	}
	if err != nil {
		return Info{}, err
	}
	return info, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInfo(row scanner) (Info, error) {
	var (
		info      Info
		createdAt string
	)
	if err := row.Scan(&info.ID, &info.Fingerprint, &info.RecordCount, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Info{}, err
		}
		return Info{}, fmt.Errorf("scan snapshot: %w", err)
	}
	parsed, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return Info{}, fmt.Errorf("parse snapshot time %q: %w", createdAt, err)
	}
	info.CreatedAt = parsed
	return info, nil
}
