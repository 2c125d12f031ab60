//go:build unit

package errs_test

import (
	"testing"

	"booth-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errHoldTaken := errs.New("hold taken")

	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{name: "marked conflict", err: errs.Mark(errHoldTaken, errs.ErrConflict), want: errs.KindConflict},
		{name: "double mark keeps both", err: errs.Mark(errs.Mark(errHoldTaken, errs.ErrValidation), errs.ErrConflict), want: errs.KindValidation},
		{name: "wrapped mark", err: errs.Wrap(errs.Mark(errHoldTaken, errs.ErrExpiredState), "finalize"), want: errs.KindExpiredState},
		{name: "unmarked", err: errHoldTaken, want: errs.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
		})
	}
}

func TestMarkAll(t *testing.T) {
	errBoothNotFound := errs.New("booth not found")

	t.Run("nil error takes the first mark", func(t *testing.T) {
		err := errs.MarkAll(nil, errBoothNotFound, errs.ErrNotFound)
		assert.True(t, errs.Is(err, errBoothNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("cause keeps its message", func(t *testing.T) {
		cause := errs.New("no rows in result set")
		err := errs.MarkAll(cause, errBoothNotFound, errs.ErrNotFound)
		assert.True(t, errs.Is(err, errBoothNotFound))
		assert.Contains(t, err.Error(), "no rows")
	})
}
