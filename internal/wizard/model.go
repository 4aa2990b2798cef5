package wizard

import (
	"net/http"
	"slices"

	"github.com/nekogravitycat/bulkstay-backend/internal/calendar"
	"github.com/nekogravitycat/bulkstay-backend/internal/catalog"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/apperror"
	"github.com/nekogravitycat/bulkstay-backend/internal/property"
	"github.com/nekogravitycat/bulkstay-backend/internal/session"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking wizard not found")
	ErrExited            = apperror.New(http.StatusConflict, "booking wizard has ended")
	ErrWrongStep         = apperror.New(http.StatusConflict, "action is not available at the current step")
	ErrCannotGoBack      = apperror.New(http.StatusConflict, "a confirmed booking cannot go back")
	ErrCalendarOpen      = apperror.New(http.StatusConflict, "close the calendar before continuing")
	ErrCalendarNotOpen   = apperror.New(http.StatusConflict, "calendar is not open")
	ErrPasswordMismatch  = apperror.New(http.StatusBadRequest, "passwords do not match")
	ErrDatesUnavailable  = apperror.New(http.StatusConflict, "some selected dates are already booked at this property")
	ErrPaymentDeclined   = apperror.New(http.StatusPaymentRequired, "payment failed, please try again")
	ErrInvalidCardNumber = apperror.New(http.StatusBadRequest, "card number must be 13 to 19 digits")
	ErrInvalidExpiry     = apperror.New(http.StatusBadRequest, "expiry date must be in MM/YY format")
	ErrCardExpired       = apperror.New(http.StatusBadRequest, "card has expired")
	ErrInvalidCVV        = apperror.New(http.StatusBadRequest, "cvv must be 3 or 4 digits")
	ErrCardholderMissing = apperror.New(http.StatusBadRequest, "cardholder name is required")
	ErrBillingMissing    = apperror.New(http.StatusBadRequest, "billing address, city and pin code are required")
)

// Step is a stage of the booking wizard.
type Step string

const (
	StepRegistration        Step = "registration"
	StepPackageConfirmation Step = "package_confirmation"
	StepPropertySelection   Step = "property_selection"
	StepPayment             Step = "payment"
	StepConfirmation        Step = "confirmation"
	StepExited              Step = "exited"
)

// PaymentRecord is what the draft keeps of a payment. The card number is
// reduced to its last four digits.
type PaymentRecord struct {
	CardLast4      string
	CardholderName string
	BillingAddress string
	City           string
	ZipCode        string
}

// Draft accumulates the results of completed steps.
type Draft struct {
	Package        *catalog.Package
	Property       *property.Property
	Guest          *session.Identity
	TentativeDates []calendar.Date
	Payment        *PaymentRecord
	BookingID      string
	TotalAmount    int64
}

func (d *Draft) merge(r StepResult) {
	r.apply(d)
}

func (d Draft) clone() Draft {
	cp := d
	cp.TentativeDates = slices.Clone(d.TentativeDates)
	if d.Guest != nil {
		g := *d.Guest
		cp.Guest = &g
	}
	if d.Payment != nil {
		p := *d.Payment
		cp.Payment = &p
	}
	return cp
}

// StepResult is the outcome of one step. Each variant belongs to exactly one
// step and is merged into the draft when that step completes.
type StepResult interface {
	step() Step
	apply(d *Draft)
}

type RegistrationResult struct {
	Identity session.Identity
}

func (RegistrationResult) step() Step { return StepRegistration }

func (r RegistrationResult) apply(d *Draft) {
	id := r.Identity
	d.Guest = &id
}

// PackageResult carries the tentative dates; none is a valid answer.
type PackageResult struct {
	Dates []calendar.Date
}

func (PackageResult) step() Step { return StepPackageConfirmation }

func (r PackageResult) apply(d *Draft) {
	d.TentativeDates = slices.Clone(r.Dates)
}

// PropertyResult carries the chosen property, or nil when skipped.
type PropertyResult struct {
	Property *property.Property
}

func (PropertyResult) step() Step { return StepPropertySelection }

func (r PropertyResult) apply(d *Draft) {
	d.Property = r.Property
}

type PaymentResult struct {
	Payment     PaymentRecord
	BookingID   string
	TotalAmount int64
}

func (PaymentResult) step() Step { return StepPayment }

func (r PaymentResult) apply(d *Draft) {
	p := r.Payment
	d.Payment = &p
	d.BookingID = r.BookingID
	d.TotalAmount = r.TotalAmount
}
