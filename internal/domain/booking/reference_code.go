package booking

//go:generate mockgen -destination=../../../tests/mock/booking/booking.go -package=bookingmock . ReferenceGenerator

import (
	"crypto/rand"
	"io"
	"math/big"
	"regexp"
)

// ReferenceAlphabet leaves out 0/O, 1/I/L.
const (
	ReferenceAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	ReferenceCodeLength = 8
)

var ReferenceCodePattern = regexp.MustCompile(`^[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{8}$`)

type ReferenceGenerator interface {
	Generate() (string, error)
}

type RandomReferenceGenerator struct {
	src io.Reader
}

func NewRandomReferenceGenerator() *RandomReferenceGenerator {
	return &RandomReferenceGenerator{src: rand.Reader}
}

func (g *RandomReferenceGenerator) Generate() (string, error) {
	max := big.NewInt(int64(len(ReferenceAlphabet)))
	out := make([]byte, ReferenceCodeLength)
	for i := range out {
		n, err := rand.Int(g.src, max)
		if err != nil {
			return "", err
		}
		out[i] = ReferenceAlphabet[n.Int64()]
	}
	return string(out), nil
}
