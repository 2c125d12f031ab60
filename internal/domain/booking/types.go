package booking

type Category string

const (
	CategoryKaraokeSession Category = "karaoke_session"
	CategoryTicketEntry    Category = "ticket_entry"
	CategoryVenueHire      Category = "venue_hire"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryKaraokeSession, CategoryTicketEntry, CategoryVenueHire:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

func (p PaymentStatus) String() string {
	return string(p)
}
