// Package random supplies the digit entropy used by the generators.
package random

import (
	"crypto/rand"
	"math/big"

	"github.com/brianvoe/gofakeit/v7"
)

// DigitSource yields uniformly distributed decimal digits.
// Implementations must be safe for concurrent use.
type DigitSource interface {
	Digit() int
}

var ten = big.NewInt(10)

// CryptoSource draws digits from crypto/rand. Every call is independent of
// every other call, including calls from other goroutines.
type CryptoSource struct{}

func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

func (CryptoSource) Digit() int {
	n, err := rand.Int(rand.Reader, ten)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is gone
		panic("random: crypto digit source ran out of entropy: " + err.Error())
	}
	return int(n.Int64())
}

// FakerSource draws digits from a gofakeit PCG generator. A zero seed picks a
// crypto-random seed; any other seed gives a reproducible sequence.
type FakerSource struct {
	faker *gofakeit.Faker
}

func NewSource(seed uint64) *FakerSource {
	return &FakerSource{faker: gofakeit.New(seed)}
}

// NewSourceFromFaker shares an existing faker so digits and other fake data
// come from the same stream.
func NewSourceFromFaker(f *gofakeit.Faker) *FakerSource {
	return &FakerSource{faker: f}
}

func (s *FakerSource) Digit() int {
	return s.faker.Number(0, 9)
}

// Faker exposes the underlying generator.
func (s *FakerSource) Faker() *gofakeit.Faker {
	return s.faker
}

// Digits returns n digits drawn from src as a string.
func Digits(src DigitSource, n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('0' + src.Digit())
	}
	return string(buf)
}
