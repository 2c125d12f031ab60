package pgsql

import (
	"context"

	"github.com/google/uuid"
)

const boothColumns = `id, venue, name, capacity, (hourly_rate * 100)::bigint, opens_at, closes_at, is_available`

func scanBooth(row interface{ Scan(...any) error }) (Booth, error) {
	var b Booth
	err := row.Scan(&b.ID, &b.Venue, &b.Name, &b.Capacity, &b.HourlyRateCents, &b.OpensAt, &b.ClosesAt, &b.IsAvailable)
	return b, err
}

const getBoothByID = `SELECT ` + boothColumns + ` FROM booths WHERE id = $1`

func (q *Queries) GetBoothByID(ctx context.Context, db DBTX, id uuid.UUID) (Booth, error) {
	return scanBooth(db.QueryRow(ctx, getBoothByID, id))
}

const listAvailableBoothsByVenue = `SELECT ` + boothColumns + `
FROM booths
WHERE venue = $1 AND is_available AND capacity >= $2
ORDER BY capacity, name`

func (q *Queries) ListAvailableBoothsByVenue(ctx context.Context, db DBTX, venue string, minCapacity int32) ([]Booth, error) {
	rows, err := db.Query(ctx, listAvailableBoothsByVenue, venue, minCapacity)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Booth
	for rows.Next() {
		b, err := scanBooth(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}
