package card_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/DanielPopoola/ficmart-testdata/internal/card"
	"github.com/DanielPopoola/ficmart-testdata/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceSource replays a fixed digit sequence.
type sequenceSource struct {
	mu     sync.Mutex
	digits []int
	next   int
}

func (s *sequenceSource) Digit() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.digits[s.next%len(s.digits)]
	s.next++
	return d
}

func assertWellFormed(t *testing.T, spec card.CardTypeSpec, number string) {
	t.Helper()

	require.Len(t, number, spec.Length)
	assert.True(t, strings.HasPrefix(number, spec.Prefix), "number %s lacks prefix %s", number, spec.Prefix)
	for i := 0; i < len(number); i++ {
		require.True(t, number[i] >= '0' && number[i] <= '9', "non-digit in %s", number)
	}

	check, err := card.CalculateCheckDigit(number[:len(number)-1])
	require.NoError(t, err)
	assert.Equal(t, byte('0'+check), number[len(number)-1])
}

func TestGenerator_Generate(t *testing.T) {
	t.Run("every catalog entry yields a well-formed number", func(t *testing.T) {
		gen := card.NewGenerator(random.NewCryptoSource())

		for _, cardType := range card.Types() {
			spec, err := card.Lookup(cardType)
			require.NoError(t, err)

			number, err := gen.Generate(cardType)

			require.NoError(t, err, cardType)
			assertWellFormed(t, spec, number)
			assert.True(t, card.Valid(number), "%s: %s", cardType, number)
		}
	})

	t.Run("uses the digit source for the fill", func(t *testing.T) {
		gen := card.NewGenerator(&sequenceSource{digits: []int{1, 2, 3, 4}})

		number, err := gen.Generate(card.Visa)

		require.NoError(t, err)
		assert.Equal(t, "4230600000012345", number)
	})

	t.Run("seeded sources reproduce the same numbers", func(t *testing.T) {
		first := card.NewGenerator(random.NewSource(42))
		second := card.NewGenerator(random.NewSource(42))

		for i := 0; i < 10; i++ {
			a, err := first.Generate(card.Maestro18)
			require.NoError(t, err)
			b, err := second.Generate(card.Maestro18)
			require.NoError(t, err)

			assert.Equal(t, a, b)
		}
	})

	t.Run("rejects unknown card type without a partial result", func(t *testing.T) {
		gen := card.NewGenerator(nil)

		number, err := gen.Generate(card.CardType("UNIONPAY"))

		assert.ErrorIs(t, err, card.ErrUnknownCardType)
		assert.Empty(t, number)
	})
}

func TestGenerator_GenerateFromSpec(t *testing.T) {
	t.Run("refuses prefix that fills the whole number", func(t *testing.T) {
		gen := card.NewGenerator(nil)

		number, err := gen.GenerateFromSpec(card.CardTypeSpec{Prefix: "4111111111111111", Length: 16})

		assert.ErrorIs(t, err, card.ErrInvalidCardTypeSpec)
		assert.Empty(t, number)
	})

	t.Run("refuses prefix longer than the number", func(t *testing.T) {
		gen := card.NewGenerator(nil)

		number, err := gen.GenerateFromSpec(card.CardTypeSpec{Prefix: "41111111111111111", Length: 16})

		assert.ErrorIs(t, err, card.ErrInvalidCardTypeSpec)
		assert.Empty(t, number)
	})

	t.Run("prefix leaving room only for the check digit", func(t *testing.T) {
		gen := card.NewGenerator(nil)

		number, err := gen.GenerateFromSpec(card.CardTypeSpec{Prefix: "5", Length: 2})

		require.NoError(t, err)
		assert.Equal(t, "59", number)
	})

	t.Run("odd total length keeps left-anchored weighting", func(t *testing.T) {
		gen := card.NewGenerator(&sequenceSource{digits: []int{0}})

		number, err := gen.GenerateFromSpec(card.CardTypeSpec{Prefix: "12", Length: 3})

		require.NoError(t, err)
		assert.Equal(t, "126", number)
	})
}

func TestGenerateCardNumber(t *testing.T) {
	t.Run("repeated calls vary but all validate", func(t *testing.T) {
		spec, err := card.Lookup(card.VisaCreditInternational)
		require.NoError(t, err)

		seen := make(map[string]struct{})
		for i := 0; i < 1000; i++ {
			number, err := card.GenerateCardNumber(card.VisaCreditInternational)
			require.NoError(t, err)

			assertWellFormed(t, spec, number)
			seen[number] = struct{}{}
		}

		assert.Greater(t, len(seen), 1)
	})

	t.Run("concurrent callers draw independent digits", func(t *testing.T) {
		const workers = 8
		const perWorker = 50

		var wg sync.WaitGroup
		results := make(chan string, workers*perWorker)

		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < perWorker; i++ {
					number, err := card.GenerateCardNumber(card.Mastercard)
					if err != nil {
						t.Error(err)
						return
					}
					results <- number
				}
			}()
		}

		wg.Wait()
		close(results)

		seen := make(map[string]struct{})
		for number := range results {
			assert.True(t, card.Valid(number), number)
			seen[number] = struct{}{}
		}

		// 9 random digits per number; a collision among 400 is ~1e-4 likely
		assert.Greater(t, len(seen), workers*perWorker-5)
	})

	t.Run("unknown card type", func(t *testing.T) {
		number, err := card.GenerateCardNumber("JCB")

		assert.ErrorIs(t, err, card.ErrUnknownCardType)
		assert.Empty(t, number)
	})

	t.Run("must variant panics on unknown card type", func(t *testing.T) {
		assert.Panics(t, func() { card.MustGenerateCardNumber("JCB") })
		assert.NotPanics(t, func() { card.MustGenerateCardNumber(card.Amex) })
	})
}
