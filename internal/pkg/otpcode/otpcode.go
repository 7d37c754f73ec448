package otpcode

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	digitAlphabet  = "0123456789"
	letterAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Generator defines an interface for producing one-time passcodes.
type Generator interface {
	// Generate returns a code of the given length, drawn from digits when
	// digits is true and from uppercase letters otherwise.
	Generate(length uint, digits bool) (string, error)
}

// Random generates codes using crypto/rand.
type Random struct{}

// NewRandom returns a Random code generator.
func NewRandom() *Random {
	return &Random{}
}

// Generate produces a code of length characters chosen uniformly at random
// from the selected alphabet.
func (g *Random) Generate(length uint, digits bool) (string, error) {
	alphabet := letterAlphabet
	if digits {
		alphabet = digitAlphabet
	}

	var sb strings.Builder
	sb.Grow(int(length))

	for range length {
		idx, err := randInt(len(alphabet))
		if err != nil {
			return "", err
		}
		sb.WriteByte(alphabet[idx])
	}

	return sb.String(), nil
}

func randInt(max int) (int, error) {
	num, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(num.Int64()), nil
}
