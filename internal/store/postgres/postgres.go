package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
	"github.com/ronojoykumar/travel-itinerary-app/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// New opens a Postgres-backed store and applies the embedded schema.
func New(dsn string) (store.Store, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &pgStore{db: db}, nil
}

// NewWithDB constructs a native Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Trips() store.Trips { return &trips{db: s.db} }

func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *pgStore) Close() error { return s.db.Close() }

type trips struct{ db *sql.DB }

func (t *trips) Save(ctx context.Context, in *model.SavedTrip) (*model.SavedTrip, error) {
	out := *in
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	dests, err := json.Marshal(out.Destinations)
	if err != nil {
		return nil, err
	}
	interests, err := json.Marshal(out.Interests)
	if err != nil {
		return nil, err
	}
	itin, err := json.Marshal(out.Itinerary)
	if err != nil {
		return nil, err
	}
	var created time.Time
	row := t.db.QueryRowContext(ctx, `
        INSERT INTO trips (trip_id, user_id, trip_type, destinations, start_date, end_date, budget, interests, itinerary)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING creation_time
    `, out.ID, out.UserID, string(out.TripType), dests, out.StartDate, out.EndDate, out.Budget, interests, itin)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out.CreationTime = created
	return &out, nil
}

func (t *trips) Get(ctx context.Context, userID, tripID string) (*model.SavedTrip, error) {
	row := t.db.QueryRowContext(ctx, `
        SELECT trip_id, user_id, trip_type, destinations, start_date, end_date, budget, interests, itinerary, creation_time
        FROM trips WHERE user_id=$1 AND trip_id=$2
    `, userID, tripID)
	out, err := scanTrip(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	return out, err
}

func (t *trips) List(ctx context.Context, userID string) ([]*model.SavedTrip, error) {
	rows, err := t.db.QueryContext(ctx, `
        SELECT trip_id, user_id, trip_type, destinations, start_date, end_date, budget, interests, itinerary, creation_time
        FROM trips WHERE user_id=$1 ORDER BY creation_time DESC
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []*model.SavedTrip
	for rows.Next() {
		st, err := scanTrip(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, st)
	}
	return res, rows.Err()
}

func (t *trips) Delete(ctx context.Context, userID, tripID string) error {
	res, err := t.db.ExecContext(ctx, `DELETE FROM trips WHERE user_id=$1 AND trip_id=$2`, userID, tripID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanTrip(scan func(dest ...any) error) (*model.SavedTrip, error) {
	var out model.SavedTrip
	var tripType string
	var dests, interests, itin []byte
	if err := scan(&out.ID, &out.UserID, &tripType, &dests, &out.StartDate, &out.EndDate, &out.Budget, &interests, &itin, &out.CreationTime); err != nil {
		return nil, err
	}
	out.TripType = model.TripType(tripType)
	if err := json.Unmarshal(dests, &out.Destinations); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(interests, &out.Interests); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itin, &out.Itinerary); err != nil {
		return nil, err
	}
	return &out, nil
}
