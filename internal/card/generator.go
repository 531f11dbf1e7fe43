package card

import (
	"strconv"

	"github.com/DanielPopoola/ficmart-testdata/internal/random"
)

// Generator builds card numbers from catalog entries using an injected digit source.
type Generator struct {
	src random.DigitSource
}

func NewGenerator(src random.DigitSource) *Generator {
	if src == nil {
		src = random.NewCryptoSource()
	}
	return &Generator{src: src}
}

// Generate returns a Luhn-valid number of the shape registered for cardType.
// The number is well-formed only; it is not an issued card.
func (g *Generator) Generate(cardType CardType) (string, error) {
	spec, err := Lookup(cardType)
	if err != nil {
		return "", err
	}
	return g.GenerateFromSpec(spec)
}

// GenerateFromSpec fills spec.Length-len(spec.Prefix)-1 random digits after the
// prefix and appends the check digit.
func (g *Generator) GenerateFromSpec(spec CardTypeSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	partial := spec.Prefix + random.Digits(g.src, spec.Length-len(spec.Prefix)-1)

	checkDigit, err := CalculateCheckDigit(partial)
	if err != nil {
		return "", err
	}

	return partial + strconv.Itoa(checkDigit), nil
}

var defaultGenerator = NewGenerator(random.NewCryptoSource())

// GenerateCardNumber generates a card number for cardType with crypto-random fill digits.
func GenerateCardNumber(cardType CardType) (string, error) {
	return defaultGenerator.Generate(cardType)
}

// MustGenerateCardNumber is like GenerateCardNumber but panics on error.
// Intended for test setup where a bad catalog entry is a programming error.
func MustGenerateCardNumber(cardType CardType) string {
	number, err := GenerateCardNumber(cardType)
	if err != nil {
		panic(err)
	}
	return number
}
