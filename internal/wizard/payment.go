package wizard

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// DefaultTaxRate is the GST applied to package prices.
const DefaultTaxRate = 0.18

// DeclinedCard is the test card number the simulated processor always rejects.
const DeclinedCard = "4000000000000002"

// Quote is the price breakdown shown on the payment step.
type Quote struct {
	Subtotal int64
	Taxes    int64
	Total    int64
}

func NewQuote(price int64, taxRate float64) Quote {
	taxes := int64(math.Round(float64(price) * taxRate))
	return Quote{
		Subtotal: price,
		Taxes:    taxes,
		Total:    price + taxes,
	}
}

// PaymentForm is the card and billing data submitted on the payment step.
type PaymentForm struct {
	CardNumber     string
	ExpiryDate     string // MM/YY
	CVV            string
	CardholderName string
	BillingAddress string
	City           string
	ZipCode        string
}

func digitsOnly(s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
		default:
			return "", false
		}
	}
	return b.String(), true
}

// validate checks the form against now and returns the normalised card number.
func (f PaymentForm) validate(now time.Time) (string, error) {
	card, ok := digitsOnly(f.CardNumber)
	if !ok || len(card) < 13 || len(card) > 19 {
		return "", ErrInvalidCardNumber
	}

	mm, yy, found := strings.Cut(strings.TrimSpace(f.ExpiryDate), "/")
	if !found || len(mm) != 2 || len(yy) != 2 {
		return "", ErrInvalidExpiry
	}
	month, err := strconv.Atoi(mm)
	if err != nil || month < 1 || month > 12 {
		return "", ErrInvalidExpiry
	}
	year, err := strconv.Atoi(yy)
	if err != nil {
		return "", ErrInvalidExpiry
	}
	// Cards are valid through the last day of their expiry month.
	expires := time.Date(2000+year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	if !now.Before(expires) {
		return "", ErrCardExpired
	}

	if cvv, ok := digitsOnly(f.CVV); !ok || len(cvv) < 3 || len(cvv) > 4 || cvv != f.CVV {
		return "", ErrInvalidCVV
	}
	if strings.TrimSpace(f.CardholderName) == "" {
		return "", ErrCardholderMissing
	}
	if strings.TrimSpace(f.BillingAddress) == "" || strings.TrimSpace(f.City) == "" || strings.TrimSpace(f.ZipCode) == "" {
		return "", ErrBillingMissing
	}
	return card, nil
}

func (f PaymentForm) record(card string) PaymentRecord {
	return PaymentRecord{
		CardLast4:      card[len(card)-4:],
		CardholderName: strings.TrimSpace(f.CardholderName),
		BillingAddress: strings.TrimSpace(f.BillingAddress),
		City:           strings.TrimSpace(f.City),
		ZipCode:        strings.TrimSpace(f.ZipCode),
	}
}
