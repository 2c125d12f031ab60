package hold

type Status string

const (
	StatusActive    Status = "active"
	StatusReleased  Status = "released"
	StatusExpired   Status = "expired"
	StatusConverted Status = "converted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusReleased, StatusExpired, StatusConverted:
		return true
	default:
		return false
	}
}
