package hold

import "time"

// TTLPolicy resolves a requested hold lifetime in minutes.
type TTLPolicy struct {
	Default time.Duration
	Max     time.Duration
}

func (p TTLPolicy) Resolve(minutes int) time.Duration {
	if minutes <= 0 {
		return p.Default
	}
	ttl := time.Duration(minutes) * time.Minute
	if p.Max > 0 && ttl > p.Max {
		return p.Max
	}
	return ttl
}
