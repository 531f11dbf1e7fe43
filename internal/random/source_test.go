package random_test

import (
	"sync"
	"testing"

	"github.com/DanielPopoola/ficmart-testdata/internal/random"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
)

func TestCryptoSource_Digit(t *testing.T) {
	src := random.NewCryptoSource()

	counts := make(map[int]int)
	for i := 0; i < 2000; i++ {
		d := src.Digit()
		assert.GreaterOrEqual(t, d, 0)
		assert.LessOrEqual(t, d, 9)
		counts[d]++
	}

	assert.Len(t, counts, 10, "all ten digits should appear in 2000 draws")
}

func TestFakerSource(t *testing.T) {
	t.Run("same seed gives same digits", func(t *testing.T) {
		a := random.NewSource(7)
		b := random.NewSource(7)

		assert.Equal(t, random.Digits(a, 32), random.Digits(b, 32))
	})

	t.Run("digits stay in range", func(t *testing.T) {
		src := random.NewSource(0)

		for i := 0; i < 500; i++ {
			d := src.Digit()
			assert.True(t, d >= 0 && d <= 9, d)
		}
	})

	t.Run("shares a faker stream", func(t *testing.T) {
		f := gofakeit.New(99)
		src := random.NewSourceFromFaker(f)

		assert.Same(t, f, src.Faker())
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		src := random.NewSource(0)

		var wg sync.WaitGroup
		for w := 0; w < 8; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = random.Digits(src, 100)
			}()
		}
		wg.Wait()
	})
}

func TestDigits(t *testing.T) {
	src := random.NewSource(1)

	assert.Empty(t, random.Digits(src, 0))
	assert.Empty(t, random.Digits(src, -3))

	got := random.Digits(src, 12)
	assert.Len(t, got, 12)
	assert.Regexp(t, `^[0-9]{12}$`, got)
}
