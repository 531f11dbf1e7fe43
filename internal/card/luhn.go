package card

import "fmt"

// CalculateCheckDigit returns the digit that completes digits into a card number.
//
// Positions are counted from the left of the partial number starting at 0, and
// digits at even positions are doubled. For even-length card numbers this agrees
// with the usual right-to-left Luhn weighting. Keep the left-anchored form.
func CalculateCheckDigit(digits string) (int, error) {
	if digits == "" {
		return 0, NewInvalidDigitStringError("digit string is empty")
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, NewInvalidDigitStringError(fmt.Sprintf("non-digit %q at position %d", c, i))
		}
		digit := int(c - '0')
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}

	return (10 - sum%10) % 10, nil
}

// Valid reports whether number passes the standard Luhn check, doubling every
// second digit counting from the rightmost one.
func Valid(number string) bool {
	if number == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
