package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ronojoykumar/travel-itinerary-app/internal/model"
	"github.com/ronojoykumar/travel-itinerary-app/internal/store"
)

// New opens a SQLite-backed store at path and applies the embedded schema.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// NewWithDB wraps an already-open connection. Used by tests that manage
// the connection lifecycle themselves.
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Trips() store.Trips { return &trips{db: s.db} }

func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqliteStore) Close() error { return s.db.Close() }

type trips struct{ db *sql.DB }

func (t *trips) Save(ctx context.Context, in *model.SavedTrip) (*model.SavedTrip, error) {
	out := *in
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	if out.CreationTime.IsZero() {
		out.CreationTime = time.Now().UTC()
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
	_, err = t.db.ExecContext(ctx, `
        INSERT INTO trips (trip_id, user_id, trip_type, destinations, start_date, end_date, budget, interests, itinerary, creation_time)
        VALUES (?,?,?,?,?,?,?,?,?,?)
    `, out.ID, out.UserID, string(out.TripType), string(dests), out.StartDate, out.EndDate, out.Budget, string(interests), string(itin), out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *trips) Get(ctx context.Context, userID, tripID string) (*model.SavedTrip, error) {
	row := t.db.QueryRowContext(ctx, `
        SELECT trip_id, user_id, trip_type, destinations, start_date, end_date, budget, interests, itinerary, creation_time
        FROM trips WHERE user_id=? AND trip_id=?
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
        FROM trips WHERE user_id=? ORDER BY creation_time DESC
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
	res, err := t.db.ExecContext(ctx, `DELETE FROM trips WHERE user_id=? AND trip_id=?`, userID, tripID)
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
	var tripType, dests, interests, itin string
	if err := scan(&out.ID, &out.UserID, &tripType, &dests, &out.StartDate, &out.EndDate, &out.Budget, &interests, &itin, &out.CreationTime); err != nil {
		return nil, err
	}
	out.TripType = model.TripType(tripType)
	if err := json.Unmarshal([]byte(dests), &out.Destinations); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(interests), &out.Interests); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(itin), &out.Itinerary); err != nil {
		return nil, err
	}
	return &out, nil
}
