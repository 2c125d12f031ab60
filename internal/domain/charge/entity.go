package charge

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"booth-booking/internal/domain/booking"
	"booth-booking/internal/domain/timeslot"

	"github.com/google/uuid"
)

// MaxIdempotencyKeyLength fits every gateway we have integrated with.
const MaxIdempotencyKeyLength = 45

var (
	ErrEmptyTransactionID = errors.New("transaction id cannot be empty")
	ErrEmptyCurrency      = errors.New("currency cannot be empty")
)

// Charge is one captured payment. Several bookings may point at the same charge.
type Charge struct {
	id             uuid.UUID
	holdID         uuid.UUID
	transactionID  string
	idempotencyKey string
	amount         booking.Money
	currency       string
}

func New(holdID uuid.UUID, transactionID, idempotencyKey string, amount booking.Money, currency string) (*Charge, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, ErrEmptyTransactionID
	}
	if strings.TrimSpace(currency) == "" {
		return nil, ErrEmptyCurrency
	}
	return &Charge{
		id:             uuid.New(),
		holdID:         holdID,
		transactionID:  transactionID,
		idempotencyKey: idempotencyKey,
		amount:         amount,
		currency:       strings.ToLower(currency),
	}, nil
}

// IdempotencyKey is stable for the same hold, slot and ticket count, so a retried checkout reuses it.
func IdempotencyKey(holdID, boothID uuid.UUID, date time.Time, session timeslot.Interval, ticketQuantity int) string {
	raw := fmt.Sprintf("%s|%s|%s|%s-%s|%d",
		holdID, boothID, date.Format(timeslot.DateLayout),
		session.StartClock(), session.EndClock(), ticketQuantity)
	sum := sha256.Sum256([]byte(raw))
	key := hex.EncodeToString(sum[:])
	return key[:MaxIdempotencyKeyLength]
}

// RefundKey derives the refund idempotency key from the charge key.
func RefundKey(chargeKey string) string {
	sum := sha256.Sum256([]byte("refund|" + chargeKey))
	return hex.EncodeToString(sum[:])[:MaxIdempotencyKeyLength]
}

func (c *Charge) ID() uuid.UUID          { return c.id }
func (c *Charge) HoldID() uuid.UUID      { return c.holdID }
func (c *Charge) TransactionID() string  { return c.transactionID }
func (c *Charge) IdempotencyKey() string { return c.idempotencyKey }
func (c *Charge) Amount() booking.Money  { return c.amount }
func (c *Charge) Currency() string       { return c.currency }
