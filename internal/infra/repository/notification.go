package repository

import (
	"context"
	"time"

	"booth-booking/internal/infra"
	"booth-booking/internal/infra/pgsql"
	"booth-booking/internal/pkg/pgconv"
	"booth-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	jobStatusQueued = "queued"
	jobStatusSent   = "sent"
	jobStatusFailed = "failed"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateNotificationJobParams) error
	ClaimQueuedNotificationJobs(ctx context.Context, db pgsql.DBTX, limit int32) ([]pgsql.NotificationJob, error)
	UpdateNotificationJobStatus(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateNotificationJobStatusParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx pgsql.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := pgsql.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  jobStatusQueued,
	}

	if err := r.queries.CreateNotificationJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimQueued locks due jobs; rows stay claimed until the surrounding transaction ends.
func (r *NotificationRepository) ClaimQueued(ctx context.Context, tx pgsql.DBTX, limit int) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimQueuedNotificationJobs(ctx, tx, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, len(rows))
	for i, row := range rows {
		jobs[i] = shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: int(row.Attempts),
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx pgsql.DBTX, id uuid.UUID) error {
	return r.updateStatus(ctx, tx, pgsql.UpdateNotificationJobStatusParams{
		ID:     id,
		Status: jobStatusSent,
	})
}

// Reschedule returns a job to the queue after a failed delivery attempt.
func (r *NotificationRepository) Reschedule(ctx context.Context, tx pgsql.DBTX, id uuid.UUID, cause string, runAt time.Time) error {
	return r.updateStatus(ctx, tx, pgsql.UpdateNotificationJobStatusParams{
		ID:        id,
		Status:    jobStatusQueued,
		LastError: pgtype.Text{String: cause, Valid: true},
		RunAt:     pgconv.TimeToPgtype(runAt),
	})
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, tx pgsql.DBTX, id uuid.UUID, cause string) error {
	return r.updateStatus(ctx, tx, pgsql.UpdateNotificationJobStatusParams{
		ID:        id,
		Status:    jobStatusFailed,
		LastError: pgtype.Text{String: cause, Valid: true},
	})
}

func (r *NotificationRepository) updateStatus(ctx context.Context, tx pgsql.DBTX, params pgsql.UpdateNotificationJobStatusParams) error {
	if err := r.queries.UpdateNotificationJobStatus(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}
