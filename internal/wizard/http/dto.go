package http

import (
	"github.com/nekogravitycat/bulkstay-backend/internal/calendar"
	calendarhttp "github.com/nekogravitycat/bulkstay-backend/internal/calendar/http"
	cataloghttp "github.com/nekogravitycat/bulkstay-backend/internal/catalog/http"
	propertyhttp "github.com/nekogravitycat/bulkstay-backend/internal/property/http"
	"github.com/nekogravitycat/bulkstay-backend/internal/wizard"
)

type CreateWizardRequest struct {
	PackageID      int64  `json:"package_id" binding:"required,min=1"`
	ChooseProperty bool   `json:"choose_property"`
	PropertyID     *int64 `json:"property_id" binding:"omitempty,min=1"`
}

type RegistrationRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	TravelFrequency string `json:"travel_frequency"`
}

type ClickRequest struct {
	Date string `json:"date" binding:"required"`
}

type ModeRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// PropertyRequest chooses a property, or skips the step when PropertyID is nil.
type PropertyRequest struct {
	PropertyID *int64 `json:"property_id" binding:"omitempty,min=1"`
}

type PaymentRequest struct {
	CardNumber     string `json:"card_number" binding:"required"`
	ExpiryDate     string `json:"expiry_date" binding:"required"`
	CVV            string `json:"cvv" binding:"required"`
	CardholderName string `json:"cardholder_name" binding:"required"`
	BillingAddress string `json:"billing_address" binding:"required"`
	City           string `json:"city" binding:"required"`
	ZipCode        string `json:"zip_code" binding:"required"`
}

func (r PaymentRequest) form() wizard.PaymentForm {
	return wizard.PaymentForm{
		CardNumber:     r.CardNumber,
		ExpiryDate:     r.ExpiryDate,
		CVV:            r.CVV,
		CardholderName: r.CardholderName,
		BillingAddress: r.BillingAddress,
		City:           r.City,
		ZipCode:        r.ZipCode,
	}
}

type GuestResponse struct {
	UserID          string `json:"user_id"`
	Email           string `json:"email"`
	TravelFrequency string `json:"travel_frequency,omitempty"`
}

type PaymentResponse struct {
	CardLast4      string `json:"card_last4"`
	CardholderName string `json:"cardholder_name"`
	City           string `json:"city"`
}

type QuoteResponse struct {
	Subtotal int64 `json:"subtotal"`
	Taxes    int64 `json:"taxes"`
	Total    int64 `json:"total"`
}

type StateResponse struct {
	ID             string                         `json:"id"`
	Step           string                         `json:"step"`
	StepNumber     int                            `json:"step_number"`
	TotalSteps     int                            `json:"total_steps"`
	Steps          []string                       `json:"steps"`
	Progress       int                            `json:"progress"`
	Package        cataloghttp.PackageResponse    `json:"package"`
	Property       *propertyhttp.PropertyResponse `json:"property,omitempty"`
	Guest          *GuestResponse                 `json:"guest,omitempty"`
	TentativeDates []string                       `json:"tentative_dates"`
	Payment        *PaymentResponse               `json:"payment,omitempty"`
	BookingID      string                         `json:"booking_id,omitempty"`
	TotalAmount    int64                          `json:"total_amount,omitempty"`
	Quote          QuoteResponse                  `json:"quote"`
	Calendar       *calendarhttp.PageResponse     `json:"calendar,omitempty"`
	AccessToken    string                         `json:"access_token,omitempty"`
}

func NewStateResponse(id string, st wizard.State) StateResponse {
	steps := make([]string, len(st.Steps))
	for i, s := range st.Steps {
		steps[i] = string(s)
	}

	resp := StateResponse{
		ID:             id,
		Step:           string(st.Step),
		StepNumber:     st.StepNumber,
		TotalSteps:     st.TotalSteps,
		Steps:          steps,
		Progress:       st.Progress(),
		Package:        cataloghttp.NewPackageResponse(st.Draft.Package),
		TentativeDates: calendar.Strings(st.Draft.TentativeDates),
		BookingID:      st.Draft.BookingID,
		TotalAmount:    st.Draft.TotalAmount,
		Quote: QuoteResponse{
			Subtotal: st.Quote.Subtotal,
			Taxes:    st.Quote.Taxes,
			Total:    st.Quote.Total,
		},
	}
	if p := st.Draft.Property; p != nil {
		pr := propertyhttp.NewPropertyResponse(p)
		resp.Property = &pr
	}
	if g := st.Draft.Guest; g != nil {
		resp.Guest = &GuestResponse{UserID: g.UserID, Email: g.Email, TravelFrequency: g.TravelFrequency}
	}
	if p := st.Draft.Payment; p != nil {
		resp.Payment = &PaymentResponse{CardLast4: p.CardLast4, CardholderName: p.CardholderName, City: p.City}
	}
	if st.Calendar != nil {
		page := calendarhttp.NewPageResponse(*st.Calendar)
		resp.Calendar = &page
	}
	return resp
}
