// Package card builds brand-shaped, Luhn-valid payment card numbers for test fixtures.
package card

import (
	"fmt"

	"github.com/go-playground/validator"
)

// CardType identifies an entry in the card catalog
type CardType string

const (
	Visa                    CardType = "VISA"
	Mastercard              CardType = "MASTERCARD"
	Maestro16               CardType = "MAESTRO_16"
	Maestro18               CardType = "MAESTRO_18"
	Amex                    CardType = "AMEX"
	VisaElectron            CardType = "VISA_ELECTRON"
	VisaDebitInternational  CardType = "VISA_DEBIT_INTERNATIONAL"
	VisaCreditInternational CardType = "VISA_CREDIT_INTERNATIONAL"
)

// CardTypeSpec describes how numbers of one card type are shaped.
// SampleNumber is reference data only; generation never reads it.
type CardTypeSpec struct {
	Prefix       string `validate:"required"`
	Length       int    `validate:"gt=0"`
	SampleNumber string `validate:"omitempty,numeric"`
}

var types = []CardType{
	Visa,
	Mastercard,
	Maestro16,
	Maestro18,
	Amex,
	VisaElectron,
	VisaDebitInternational,
	VisaCreditInternational,
}

var catalog = map[CardType]CardTypeSpec{
	Visa:                    {Prefix: "42306000000", Length: 16, SampleNumber: "4520444037505818"},
	Mastercard:              {Prefix: "535666", Length: 16, SampleNumber: "5555555555554444"},
	Maestro16:               {Prefix: "67771300000", Length: 16},
	Maestro18:               {Prefix: "67771300000", Length: 18},
	Amex:                    {Prefix: "37005500000", Length: 16, SampleNumber: "378282246310005"},
	VisaElectron:            {Prefix: "491754", Length: 16},
	VisaDebitInternational:  {Prefix: "40360500000", Length: 16},
	VisaCreditInternational: {Prefix: "40219300000", Length: 16},
}

var validate = validator.New()

// Types returns every catalog identifier in declaration order.
func Types() []CardType {
	out := make([]CardType, len(types))
	copy(out, types)
	return out
}

// IsValid reports whether t names a catalog entry.
func (t CardType) IsValid() bool {
	_, ok := catalog[t]
	return ok
}

// Lookup returns the spec registered for cardType.
func Lookup(cardType CardType) (CardTypeSpec, error) {
	spec, ok := catalog[cardType]
	if !ok {
		return CardTypeSpec{}, NewUnknownCardTypeError(cardType)
	}
	return spec, nil
}

// ParseCardType accepts a catalog identifier such as "VISA" or "MAESTRO_16".
func ParseCardType(s string) (CardType, error) {
	t := CardType(s)
	if !t.IsValid() {
		return "", NewUnknownCardTypeError(t)
	}
	return t, nil
}

// Validate enforces that the prefix is all digits and leaves room for the check digit.
func (s CardTypeSpec) Validate() error {
	if err := validate.Struct(s); err != nil {
		e := NewInvalidCardTypeSpecError("malformed card type spec")
		e.Err = fmt.Errorf("%w: %v", ErrInvalidCardTypeSpec, err)
		return e
	}
	if !isDigits(s.Prefix) {
		return NewInvalidCardTypeSpecError(fmt.Sprintf("prefix %q must contain only digits", s.Prefix))
	}
	if len(s.Prefix) >= s.Length {
		return NewInvalidCardTypeSpecError(fmt.Sprintf(
			"prefix %q has %d digits, total length %d leaves no room for the check digit",
			s.Prefix, len(s.Prefix), s.Length,
		))
	}
	return nil
}
