//go:build unit

package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"booth-booking/internal/infra/worker"
	"booth-booking/internal/pkg/clock"
	"booth-booking/internal/usecase/shared"
	sharedmock "booth-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var relayNow = time.Date(2026, 3, 14, 17, 0, 0, 0, time.UTC)

type published struct {
	topic string
	body  string
}

type fakePublisher struct {
	mu   sync.Mutex
	fail map[string]error
	sent []published
}

func (p *fakePublisher) Publish(_ context.Context, queue string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err, ok := p.fail[string(body)]; ok {
		return err
	}
	p.sent = append(p.sent, published{topic: queue, body: string(body)})
	return nil
}

func newRelay(t *testing.T, jobs []shared.NotificationJob, pub *fakePublisher) (*worker.OutboxRelay, *sharedmock.MockNotificationRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	notifications := sharedmock.NewMockNotificationRepository(ctrl)

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		})
	tx.EXPECT().DB().Return(nil).AnyTimes()
	tx.EXPECT().Notifications().Return(notifications).AnyTimes()
	notifications.EXPECT().ClaimQueued(gomock.Any(), gomock.Any(), 10).Return(jobs, nil)

	relay := worker.NewOutboxRelay(uow, pub, clock.NewMockClock(relayNow), worker.RelayConfig{
		Interval:  time.Second,
		BatchSize: 10,
	})
	return relay, notifications
}

func TestOutboxRelay_RunOnce(t *testing.T) {
	brokerDown := errors.New("connection refused")

	t.Run("publishes and marks jobs sent", func(t *testing.T) {
		jobs := []shared.NotificationJob{
			{ID: uuid.New(), Kind: "booking.confirmed", Topic: "booking.confirmed", Payload: []byte(`{"n":1}`)},
			{ID: uuid.New(), Kind: "booking.confirmed", Topic: "booking.confirmed", Payload: []byte(`{"n":2}`)},
		}
		pub := &fakePublisher{}
		relay, notifications := newRelay(t, jobs, pub)
		notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), jobs[0].ID).Return(nil)
		notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), jobs[1].ID).Return(nil)

		n, err := relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []published{
			{topic: "booking.confirmed", body: `{"n":1}`},
			{topic: "booking.confirmed", body: `{"n":2}`},
		}, pub.sent)
	})

	t.Run("reschedules with quadratic backoff on publish failure", func(t *testing.T) {
		job := shared.NotificationJob{ID: uuid.New(), Kind: "booking.confirmed", Topic: "booking.confirmed", Payload: []byte(`{"n":1}`), Attempts: 1}
		pub := &fakePublisher{fail: map[string]error{`{"n":1}`: brokerDown}}
		relay, notifications := newRelay(t, []shared.NotificationJob{job}, pub)
		notifications.EXPECT().Reschedule(gomock.Any(), gomock.Any(), job.ID, brokerDown.Error(), relayNow.Add(4*time.Second)).Return(nil)

		n, err := relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		job := shared.NotificationJob{ID: uuid.New(), Kind: "booking.confirmed", Topic: "booking.confirmed", Payload: []byte(`{"n":1}`), Attempts: 4}
		pub := &fakePublisher{fail: map[string]error{`{"n":1}`: brokerDown}}
		relay, notifications := newRelay(t, []shared.NotificationJob{job}, pub)
		notifications.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), job.ID, brokerDown.Error()).Return(nil)

		n, err := relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("one failing job does not block the batch", func(t *testing.T) {
		jobs := []shared.NotificationJob{
			{ID: uuid.New(), Kind: "booking.confirmed", Topic: "booking.confirmed", Payload: []byte(`{"n":1}`)},
			{ID: uuid.New(), Kind: "booking.confirmed", Topic: "booking.confirmed", Payload: []byte(`{"n":2}`)},
		}
		pub := &fakePublisher{fail: map[string]error{`{"n":1}`: brokerDown}}
		relay, notifications := newRelay(t, jobs, pub)
		notifications.EXPECT().Reschedule(gomock.Any(), gomock.Any(), jobs[0].ID, brokerDown.Error(), relayNow.Add(time.Second)).Return(nil)
		notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), jobs[1].ID).Return(nil)

		n, err := relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("bookkeeping failure aborts the pass", func(t *testing.T) {
		job := shared.NotificationJob{ID: uuid.New(), Kind: "booking.confirmed", Topic: "booking.confirmed", Payload: []byte(`{"n":1}`)}
		relay, notifications := newRelay(t, []shared.NotificationJob{job}, &fakePublisher{})
		notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), job.ID).Return(errors.New("db gone"))

		_, err := relay.RunOnce(context.Background())

		assert.Error(t, err)
	})
}
