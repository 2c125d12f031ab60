package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"booth-booking/internal/domain/booking"
	"booth-booking/internal/domain/charge"
	"booth-booking/internal/domain/hold"
	"booth-booking/internal/domain/timeslot"
	"booth-booking/internal/infra"
	"booth-booking/internal/infra/metrics"
	"booth-booking/internal/pkg/clock"
	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	constraintReferenceCode = "bookings_reference_code_key"

	EventBookingConfirmed = "booking.confirmed"
)

var errHoldLapsedAfterCharge = errs.New("hold lapsed while the charge was in flight")

type FinalizeInput struct {
	HoldID         uuid.UUID
	SessionID      string
	CustomerName   string
	Email          string
	Phone          *string
	GuestCount     int
	PaymentToken   string
	TicketQuantity int
}

type BookingRef struct {
	BookingID     uuid.UUID
	ReferenceCode string
}

type FinalizeResult struct {
	BookingID      uuid.UUID
	ReferenceCode  string
	TransactionID  string
	GuestListToken string
	TicketBooking  *BookingRef
	TotalCents     int64
	Currency       string
	Replayed       bool

	chargeID uuid.UUID
}

type CheckoutConfig struct {
	Currency              string
	MerchantLocation      string
	PaymentTimeout        time.Duration
	ReferenceCodeAttempts int
}

type CheckoutCommands interface {
	Finalize(ctx context.Context, in FinalizeInput) (*FinalizeResult, error)
}

type checkoutUseCaseImpl struct {
	uow            shared.UnitOfWork
	gateway        PaymentGateway
	prices         booking.PriceCalculator
	references     booking.ReferenceGenerator
	tokens         GuestTokenIssuer
	reconciliation ReconciliationHook
	clock          clock.Clock
	cfg            CheckoutConfig
}

func NewCheckoutUseCase(
	uow shared.UnitOfWork,
	gateway PaymentGateway,
	prices booking.PriceCalculator,
	references booking.ReferenceGenerator,
	tokens GuestTokenIssuer,
	reconciliation ReconciliationHook,
	clk clock.Clock,
	cfg CheckoutConfig,
) CheckoutCommands {
	if cfg.ReferenceCodeAttempts <= 0 {
		cfg.ReferenceCodeAttempts = 5
	}
	return &checkoutUseCaseImpl{
		uow:            uow,
		gateway:        gateway,
		prices:         prices,
		references:     references,
		tokens:         tokens,
		reconciliation: reconciliation,
		clock:          clk,
		cfg:            cfg,
	}
}

// checkoutPlan is everything decided before money moves.
type checkoutPlan struct {
	hold     *hold.Hold
	customer booking.Customer
	quote    booking.Quote
	key      string
}

func (uc *checkoutUseCaseImpl) Finalize(ctx context.Context, in FinalizeInput) (*FinalizeResult, error) {
	result, err := uc.finalize(ctx, in)
	switch {
	case err == nil && result.Replayed:
		metrics.CheckoutOutcomes.WithLabelValues("replayed").Inc()
	case err == nil:
		metrics.CheckoutOutcomes.WithLabelValues("booked").Inc()
	default:
		metrics.CheckoutOutcomes.WithLabelValues(string(errs.KindOf(err))).Inc()
	}
	return result, err
}

func (uc *checkoutUseCaseImpl) finalize(ctx context.Context, in FinalizeInput) (*FinalizeResult, error) {
	if in.SessionID == "" {
		return nil, validation(hold.ErrEmptySession)
	}
	if in.PaymentToken == "" {
		return nil, validation(errs.New("payment token is required"))
	}
	if in.GuestCount < 1 {
		return nil, validation(booking.ErrInvalidGuestCount)
	}
	if in.TicketQuantity < 0 {
		return nil, validation(booking.ErrNegativeTicketCount)
	}
	customer, err := booking.NewCustomer(in.CustomerName, in.Email, in.Phone)
	if err != nil {
		return nil, validation(err)
	}

	h, err := uc.uow.CommandReads().HoldByID(ctx, in.HoldID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, holdLookupErr(err)
		}
		return nil, datastore(err)
	}

	if h.Status() == hold.StatusConverted {
		if !h.OwnedBy(in.SessionID) {
			return nil, errs.MarkAll(nil, ErrHoldNotOwned, errs.ErrForbidden)
		}
		return uc.replay(ctx, h)
	}
	if err := h.RequireConvertible(in.SessionID, uc.clock.Now()); err != nil {
		return nil, holdStateErr(err)
	}

	plan, err := uc.plan(ctx, h, customer, in.TicketQuantity)
	if err != nil {
		return nil, err
	}

	receipt, err := uc.charge(ctx, plan, in)
	if err != nil {
		return nil, err
	}

	result, err := uc.persistWithRetry(ctx, plan, in, receipt)
	if err != nil {
		return nil, uc.compensate(ctx, plan, receipt, err)
	}
	if result.Replayed {
		if result.TransactionID != receipt.TransactionID {
			// Another checkout converted the hold with a different charge; ours is surplus.
			uc.refundSurplus(ctx, plan, receipt)
		}
		return result, nil
	}

	uc.afterCommit(ctx, h, customer, result)
	return result, nil
}

func (uc *checkoutUseCaseImpl) plan(ctx context.Context, h *hold.Hold, customer booking.Customer, ticketQuantity int) (*checkoutPlan, error) {
	b, err := uc.uow.CommandReads().BoothByID(ctx, h.BoothID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.MarkAll(err, ErrBoothNotFound, errs.ErrNotFound)
		}
		return nil, datastore(err)
	}
	if err := b.RequireRate(); err != nil {
		return nil, errs.MarkAll(err, ErrRateNotConfigured, errs.ErrValidation)
	}
	if err := hold.ValidateDuration(h.Interval()); err != nil {
		return nil, validation(err)
	}

	quote, err := uc.prices.Quote(b.HourlyRateCents(), h.Interval(), ticketQuantity)
	if err != nil {
		return nil, validation(err)
	}

	return &checkoutPlan{
		hold:     h,
		customer: customer,
		quote:    quote,
		key:      charge.IdempotencyKey(h.ID(), h.BoothID(), h.Date(), h.Interval(), ticketQuantity),
	}, nil
}

// charge runs outside any transaction so no row lock is held across the gateway call.
func (uc *checkoutUseCaseImpl) charge(ctx context.Context, plan *checkoutPlan, in FinalizeInput) (*ChargeReceipt, error) {
	payCtx := ctx
	if uc.cfg.PaymentTimeout > 0 {
		var cancel context.CancelFunc
		payCtx, cancel = context.WithTimeout(ctx, uc.cfg.PaymentTimeout)
		defer cancel()
	}

	receipt, err := uc.gateway.Charge(payCtx, ChargeRequest{
		AmountCents:      plan.quote.Total.Cents(),
		Currency:         uc.cfg.Currency,
		PaymentToken:     in.PaymentToken,
		IdempotencyKey:   plan.key,
		MerchantLocation: uc.cfg.MerchantLocation,
		Metadata: map[string]string{
			"hold_id":  plan.hold.ID().String(),
			"booth_id": plan.hold.BoothID().String(),
		},
	})
	if err != nil {
		slog.Warn("charge failed",
			"hold_id", plan.hold.ID().String(),
			"idempotency_key", plan.key,
			"error", err.Error())
		return nil, errs.MarkAll(err, ErrPaymentFailed, errs.ErrUpstream)
	}
	return receipt, nil
}

func (uc *checkoutUseCaseImpl) persistWithRetry(ctx context.Context, plan *checkoutPlan, in FinalizeInput, receipt *ChargeReceipt) (*FinalizeResult, error) {
	ch, err := charge.New(plan.hold.ID(), receipt.TransactionID, plan.key, plan.quote.Total, uc.cfg.Currency)
	if err != nil {
		return nil, err
	}
	slot := booking.Slot{
		BoothID:  plan.hold.BoothID(),
		Venue:    plan.hold.Venue(),
		Date:     plan.hold.Date(),
		Interval: plan.hold.Interval(),
	}

	ref, err := uc.references.Generate()
	if err != nil {
		return nil, err
	}
	session, err := booking.NewKaraokeSession(slot, plan.hold.ID(), ch.ID(), plan.customer, in.GuestCount, in.TicketQuantity, plan.quote.Booth, ref)
	if err != nil {
		return nil, err
	}
	var tickets *booking.Booking
	if in.TicketQuantity > 0 {
		if ref, err = uc.references.Generate(); err != nil {
			return nil, err
		}
		if tickets, err = booking.NewTicketEntry(slot, ch.ID(), plan.customer, in.TicketQuantity, plan.quote.Tickets, ref); err != nil {
			return nil, err
		}
	}

	for attempt := 1; ; attempt++ {
		result, err := uc.persist(ctx, plan, ch, session, tickets)
		if err == nil {
			return result, nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) ||
			infra.ViolatedConstraint(err) != constraintReferenceCode ||
			attempt >= uc.cfg.ReferenceCodeAttempts {
			return nil, err
		}

		slog.Info("reference code collision, regenerating", "attempt", attempt)
		if err := uc.rekey(session); err != nil {
			return nil, err
		}
		if tickets != nil {
			if err := uc.rekey(tickets); err != nil {
				return nil, err
			}
		}
	}
}

func (uc *checkoutUseCaseImpl) rekey(b *booking.Booking) error {
	ref, err := uc.references.Generate()
	if err != nil {
		return err
	}
	return b.Rekey(ref)
}

func (uc *checkoutUseCaseImpl) persist(
	ctx context.Context,
	plan *checkoutPlan,
	ch *charge.Charge,
	session, tickets *booking.Booking,
) (*FinalizeResult, error) {
	var result *FinalizeResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		locked, err := tx.Holds().GetForUpdate(ctx, tx.DB(), plan.hold.ID())
		if err != nil {
			return err
		}
		if locked.Status() == hold.StatusConverted {
			record, err := tx.Reads().CheckoutByHoldID(ctx, locked.ID())
			if err != nil {
				return err
			}
			result = resultFromRecord(record)
			return nil
		}
		if !locked.IsBlocking(uc.clock.Now()) {
			return errHoldLapsedAfterCharge
		}

		converted, err := tx.Holds().UpdateStatus(ctx, tx.DB(), locked.ID(), hold.StatusActive, hold.StatusConverted, nil)
		if err != nil {
			return err
		}
		if !converted {
			return errHoldLapsedAfterCharge
		}
		if err := tx.Charges().Create(ctx, tx.DB(), ch); err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, tx.DB(), session); err != nil {
			return err
		}
		if tickets != nil {
			if err := tx.Bookings().Create(ctx, tx.DB(), tickets); err != nil {
				return err
			}
		}

		result = &FinalizeResult{
			BookingID:     session.ID(),
			ReferenceCode: session.ReferenceCode(),
			TransactionID: ch.TransactionID(),
			TotalCents:    ch.Amount().Cents(),
			Currency:      ch.Currency(),
			chargeID:      ch.ID(),
		}
		if tickets != nil {
			result.TicketBooking = &BookingRef{BookingID: tickets.ID(), ReferenceCode: tickets.ReferenceCode()}
		}

		payload, err := json.Marshal(confirmedEvent(plan, result))
		if err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), EventBookingConfirmed, EventBookingConfirmed, payload, uc.clock.Now())
	})
	return result, err
}

// compensate refunds a charge whose bookings could not be stored and raises the reconciliation alarm.
func (uc *checkoutUseCaseImpl) compensate(ctx context.Context, plan *checkoutPlan, receipt *ChargeReceipt, cause error) error {
	// The caller may have gone away; the refund must still be attempted.
	refundCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.refundTimeout())
	defer cancel()

	refundErr := uc.gateway.Refund(refundCtx, receipt.TransactionID, charge.RefundKey(plan.key))
	refunded := refundErr == nil
	if !refunded {
		metrics.RefundFailures.Inc()
	}

	uc.reconciliation.PaidUnbooked(refundCtx, PaidUnbooked{
		HoldID:         plan.hold.ID(),
		TransactionID:  receipt.TransactionID,
		IdempotencyKey: plan.key,
		AmountCents:    plan.quote.Total.Cents(),
		Currency:       uc.cfg.Currency,
		CustomerEmail:  plan.customer.Email(),
		Refunded:       refunded,
		Cause:          cause.Error(),
		RefundError:    errString(refundErr),
		OccurredAt:     uc.clock.Now(),
	})

	msg := "booking could not be saved; the charge was refunded"
	if !refunded {
		msg = "booking could not be saved and the refund failed; staff have been alerted"
	}
	return errs.MarkAll(errs.Wrap(cause, msg), ErrBookingNotSaved, errs.ErrPersistence)
}

func (uc *checkoutUseCaseImpl) refundSurplus(ctx context.Context, plan *checkoutPlan, receipt *ChargeReceipt) {
	refundCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.refundTimeout())
	defer cancel()

	if err := uc.gateway.Refund(refundCtx, receipt.TransactionID, charge.RefundKey(plan.key)); err != nil {
		metrics.RefundFailures.Inc()
		slog.Error("surplus charge refund failed",
			"hold_id", plan.hold.ID().String(),
			"transaction_id", receipt.TransactionID,
			"error", err.Error())
	}
}

func (uc *checkoutUseCaseImpl) refundTimeout() time.Duration {
	if uc.cfg.PaymentTimeout > 0 {
		return uc.cfg.PaymentTimeout
	}
	return 20 * time.Second
}

// afterCommit runs the secondary writes. Their failures are logged, never returned.
func (uc *checkoutUseCaseImpl) afterCommit(ctx context.Context, h *hold.Hold, customer booking.Customer, result *FinalizeResult) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Guests().CreateOrganiser(ctx, tx.DB(), result.BookingID, customer.Name(), customer.Email())
		return err
	})
	if err != nil {
		slog.Error("failed to add organiser to guest list",
			"booking_id", result.BookingID.String(),
			"error", err.Error())
	}

	result.GuestListToken = uc.issueGuestToken(ctx, result, h.Date())
}

func (uc *checkoutUseCaseImpl) issueGuestToken(ctx context.Context, result *FinalizeResult, date time.Time) string {
	token, err := uc.tokens.Issue(result.BookingID, date.Format(timeslot.DateLayout))
	if err != nil {
		slog.Error("failed to sign guest-list token", "booking_id", result.BookingID.String(), "error", err.Error())
		return ""
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Charges().SetGuestToken(ctx, tx.DB(), result.chargeID, token)
	})
	if err != nil {
		slog.Warn("failed to store guest-list token", "booking_id", result.BookingID.String(), "error", err.Error())
	}
	return token
}

// replay answers a finalize for a hold that an earlier call already converted.
func (uc *checkoutUseCaseImpl) replay(ctx context.Context, h *hold.Hold) (*FinalizeResult, error) {
	record, err := uc.uow.CommandReads().CheckoutByHoldID(ctx, h.ID())
	if err != nil {
		return nil, datastore(err)
	}
	result := resultFromRecord(record)
	if result.GuestListToken == "" {
		result.GuestListToken = uc.issueGuestToken(ctx, result, h.Date())
	}
	return result, nil
}

func resultFromRecord(record *shared.CheckoutRecord) *FinalizeResult {
	result := &FinalizeResult{
		BookingID:      record.Session.ID,
		ReferenceCode:  record.Session.ReferenceCode,
		TransactionID:  record.TransactionID,
		GuestListToken: record.GuestListToken,
		TotalCents:     record.AmountCents,
		Currency:       record.Currency,
		Replayed:       true,
		chargeID:       record.ChargeID,
	}
	if record.Tickets != nil {
		result.TicketBooking = &BookingRef{BookingID: record.Tickets.ID, ReferenceCode: record.Tickets.ReferenceCode}
	}
	return result
}

type bookingConfirmed struct {
	Event           string     `json:"event"`
	BookingID       uuid.UUID  `json:"booking_id"`
	ReferenceCode   string     `json:"reference_code"`
	TicketBookingID *uuid.UUID `json:"ticket_booking_id,omitempty"`
	HoldID          uuid.UUID  `json:"hold_id"`
	Venue           string     `json:"venue"`
	BoothID         uuid.UUID  `json:"booth_id"`
	Date            string     `json:"date"`
	Start           string     `json:"start"`
	End             string     `json:"end"`
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	TotalCents      int64      `json:"total_cents"`
	Currency        string     `json:"currency"`
	TransactionID   string     `json:"transaction_id"`
}

func confirmedEvent(plan *checkoutPlan, result *FinalizeResult) bookingConfirmed {
	iv := plan.hold.Interval()
	ev := bookingConfirmed{
		Event:         EventBookingConfirmed,
		BookingID:     result.BookingID,
		ReferenceCode: result.ReferenceCode,
		HoldID:        plan.hold.ID(),
		Venue:         plan.hold.Venue(),
		BoothID:       plan.hold.BoothID(),
		Date:          plan.hold.Date().Format(timeslot.DateLayout),
		Start:         iv.StartClock().String(),
		End:           iv.EndClock().String(),
		CustomerName:  plan.customer.Name(),
		CustomerEmail: plan.customer.Email(),
		TotalCents:    result.TotalCents,
		Currency:      result.Currency,
		TransactionID: result.TransactionID,
	}
	if result.TicketBooking != nil {
		id := result.TicketBooking.BookingID
		ev.TicketBookingID = &id
	}
	return ev
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
