package fakedata

import (
	"fmt"

	"github.com/DanielPopoola/ficmart-testdata/internal/card"
)

const DateOfBirthLayout = "2006-01-02"

// Person bundles one consistent set of synthetic values for a test account.
type Person struct {
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Email             string  `json:"email"`
	MobileNumber      string  `json:"mobile_number"`
	DateOfBirth       string  `json:"date_of_birth"`
	Password          string  `json:"password"`
	Address           Address `json:"address"`
	SortCode          string  `json:"sort_code"`
	AccountNumber     string  `json:"account_number"`
	CardType          string  `json:"card_type"`
	CardNumber        string  `json:"card_number"`
	CustomerReference string  `json:"customer_reference"`
}

func (g *Generator) Person(cardType card.CardType) (*Person, error) {
	first := g.FirstName()
	last := g.LastName()

	email, err := g.MailosaurEmail(first, last)
	if err != nil {
		return nil, err
	}

	number, err := g.CardNumber(cardType)
	if err != nil {
		return nil, fmt.Errorf("generate card number: %w", err)
	}

	return &Person{
		FirstName:         first,
		LastName:          last,
		Email:             email,
		MobileNumber:      g.MobileNumber(),
		DateOfBirth:       g.DateOfBirth(DateOfBirthLayout),
		Password:          g.Password(),
		Address:           g.Address(),
		SortCode:          g.BankSortCode(),
		AccountNumber:     g.BankAccountNumber(),
		CardType:          string(cardType),
		CardNumber:        number,
		CustomerReference: g.Reference("cust"),
	}, nil
}

// Values flattens the person into template placeholder names.
func (p *Person) Values() map[string]any {
	return map[string]any{
		"firstName":         p.FirstName,
		"lastName":          p.LastName,
		"email":             p.Email,
		"mobileNumber":      p.MobileNumber,
		"dateOfBirth":       p.DateOfBirth,
		"password":          p.Password,
		"street":            p.Address.Street,
		"city":              p.Address.City,
		"state":             p.Address.State,
		"postcode":          p.Address.Postcode,
		"country":           p.Address.Country,
		"sortCode":          p.SortCode,
		"accountNumber":     p.AccountNumber,
		"cardType":          p.CardType,
		"cardNumber":        p.CardNumber,
		"customerReference": p.CustomerReference,
	}
}
