// Package fakedata produces synthetic personal and banking values for test payloads.
package fakedata

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/DanielPopoola/ficmart-testdata/internal/card"
	"github.com/DanielPopoola/ficmart-testdata/internal/random"
)

const (
	mobilePattern        = "07[0-9]{9}"
	passwordPattern      = "[A-Z]{2}[a-z]{2}[0-9]{2}[!@#$%^*_()?]{2}[a-z]{5}"
	sortCodePattern      = "[0-9]{2}-[1-9]{2}-[1-9]{2}"
	accountNumberPattern = "[1-9]{1}[0-9]{7}"

	minAge = 25
	maxAge = 70
)

var emailUnsafe = regexp.MustCompile(`[^a-zA-Z0-9@.]`)

type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// Generator is safe for concurrent use; it holds a locked gofakeit stream.
type Generator struct {
	faker       *gofakeit.Faker
	cards       *card.Generator
	emailDomain string
	now         func() time.Time
}

// New returns a generator seeded with seed (0 for crypto-random).
// emailDomain is appended to generated mailbox names and should start with "@".
func New(seed uint64, emailDomain string) *Generator {
	return NewWithFaker(gofakeit.New(seed), emailDomain)
}

func NewWithFaker(f *gofakeit.Faker, emailDomain string) *Generator {
	return &Generator{
		faker:       f,
		cards:       card.NewGenerator(random.NewSourceFromFaker(f)),
		emailDomain: emailDomain,
		now:         time.Now,
	}
}

// FirstName strips apostrophes, which some form fields reject.
func (g *Generator) FirstName() string {
	return strings.ReplaceAll(g.faker.FirstName(), "'", "")
}

func (g *Generator) LastName() string {
	return strings.ReplaceAll(g.faker.LastName(), "'", "")
}

// MobileNumber returns a UK mobile number: 07 followed by nine digits.
func (g *Generator) MobileNumber() string {
	return g.faker.Regex(mobilePattern)
}

// DateOfBirth formats a birthday for someone aged 25 to 70 using a Go time layout.
func (g *Generator) DateOfBirth(layout string) string {
	now := g.now()
	return g.faker.DateRange(now.AddDate(-maxAge, 0, 0), now.AddDate(-minAge, 0, 0)).Format(layout)
}

// Password is 13 characters and always starts with an upper-case letter.
func (g *Generator) Password() string {
	return g.faker.Regex(passwordPattern)
}

func (g *Generator) Address() Address {
	a := g.faker.Address()
	return Address{
		Street:   a.Street,
		City:     a.City,
		State:    a.State,
		Postcode: a.Zip,
		Country:  a.Country,
	}
}

// BankSortCode returns a six digit sort code such as 04-25-67.
func (g *Generator) BankSortCode() string {
	return g.faker.Regex(sortCodePattern)
}

// BankAccountNumber returns eight digits with a non-zero first digit.
func (g *Generator) BankAccountNumber() string {
	return g.faker.Regex(accountNumberPattern)
}

// RandomNumber returns an integer in [min, max].
func (g *Generator) RandomNumber(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("invalid range: min %d is greater than max %d", min, max)
	}
	return g.faker.Number(min, max), nil
}

// MailosaurEmail builds first.lastNN@domain, dropping anything other than
// letters, digits, '@' and '.' and lower-casing the result.
func (g *Generator) MailosaurEmail(firstName, lastName string) (string, error) {
	if g.emailDomain == "" {
		return "", errors.New("email domain is not configured")
	}
	address := firstName + "." + lastName + g.faker.Numerify("##") + g.emailDomain
	return strings.ToLower(emailUnsafe.ReplaceAllString(address, "")), nil
}

// Reference returns prefix-<uuid>, unique per call.
func (g *Generator) Reference(prefix string) string {
	return prefix + "-" + uuid.New().String()
}

// CardNumber draws its fill digits from the same stream as the other values.
func (g *Generator) CardNumber(cardType card.CardType) (string, error) {
	return g.cards.Generate(cardType)
}
