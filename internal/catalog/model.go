package catalog

import (
	"net/http"

	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "package not found")

// Package is a pre-paid bundle of nights redeemable at any bulk-enabled property.
type Package struct {
	ID                    int64
	Name                  string
	Description           string
	TotalNights           int
	Price                 int64
	OriginalNightlyRate   int64
	DiscountedNightlyRate int64
	ValidityMonths        int
	Features              []string
}

// Savings is what the package saves over paying the original rate every night.
func (p *Package) Savings() int64 {
	return int64(p.TotalNights)*p.OriginalNightlyRate - p.Price
}

// DiscountPercent is the whole-number discount against the original rate.
func (p *Package) DiscountPercent() int {
	full := int64(p.TotalNights) * p.OriginalNightlyRate
	if full <= 0 {
		return 0
	}
	return int(p.Savings() * 100 / full)
}
