package pgsql

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateNotificationJobParams struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   pgtype.Timestamptz
	Status  string
}

const createNotificationJob = `INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg CreateNotificationJobParams) error {
	_, err := db.Exec(ctx, createNotificationJob, arg.Kind, arg.Topic, arg.Payload, arg.RunAt, arg.Status)
	return err
}

// Must run inside a transaction so the row locks hold until the status update.
const claimQueuedNotificationJobs = `SELECT id, kind, topic, payload, attempts
FROM notification_jobs
WHERE status = 'queued' AND run_at <= now()
ORDER BY run_at
LIMIT $1
FOR UPDATE SKIP LOCKED`

func (q *Queries) ClaimQueuedNotificationJobs(ctx context.Context, db DBTX, limit int32) ([]NotificationJob, error) {
	rows, err := db.Query(ctx, claimQueuedNotificationJobs, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []NotificationJob
	for rows.Next() {
		var j NotificationJob
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.Attempts); err != nil {
			return nil, err
		}
		items = append(items, j)
	}
	return items, rows.Err()
}

type UpdateNotificationJobStatusParams struct {
	ID        uuid.UUID
	Status    string
	LastError pgtype.Text
	RunAt     pgtype.Timestamptz
}

const updateNotificationJobStatus = `UPDATE notification_jobs
SET status = $2, last_error = $3, attempts = attempts + 1, run_at = COALESCE($4, run_at), updated_at = now()
WHERE id = $1`

func (q *Queries) UpdateNotificationJobStatus(ctx context.Context, db DBTX, arg UpdateNotificationJobStatusParams) error {
	_, err := db.Exec(ctx, updateNotificationJobStatus, arg.ID, arg.Status, arg.LastError, arg.RunAt)
	return err
}
