package http

import (
	"github.com/nekogravitycat/bulkstay-backend/internal/catalog"
)

type PackageResponse struct {
	ID                    int64    `json:"id"`
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	TotalNights           int      `json:"total_nights"`
	Price                 int64    `json:"price"`
	OriginalNightlyRate   int64    `json:"original_nightly_rate"`
	DiscountedNightlyRate int64    `json:"discounted_nightly_rate"`
	ValidityMonths        int      `json:"validity_months"`
	Features              []string `json:"features"`
	Savings               int64    `json:"savings"`
	DiscountPercent       int      `json:"discount_percent"`
}

func NewPackageResponse(p *catalog.Package) PackageResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return PackageResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		Description:           p.Description,
		TotalNights:           p.TotalNights,
		Price:                 p.Price,
		OriginalNightlyRate:   p.OriginalNightlyRate,
		DiscountedNightlyRate: p.DiscountedNightlyRate,
		ValidityMonths:        p.ValidityMonths,
		Features:              features,
		Savings:               p.Savings(),
		DiscountPercent:       p.DiscountPercent(),
	}
}
