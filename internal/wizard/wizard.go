// Package wizard drives the guest booking flow: registration, package
// confirmation with optional tentative dates, optional property choice,
// payment and confirmation.
package wizard

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/nekogravitycat/bulkstay-backend/internal/booking"
	"github.com/nekogravitycat/bulkstay-backend/internal/calendar"
	"github.com/nekogravitycat/bulkstay-backend/internal/catalog"
	"github.com/nekogravitycat/bulkstay-backend/internal/mockstore"
	"github.com/nekogravitycat/bulkstay-backend/internal/property"
	"github.com/nekogravitycat/bulkstay-backend/internal/session"
	"github.com/nekogravitycat/bulkstay-backend/internal/user"
)

// Registrar creates guest accounts.
type Registrar interface {
	Register(ctx context.Context, req user.RegisterRequest) (*user.User, error)
}

type PropertyFinder interface {
	GetByID(ctx context.Context, id int64) (*property.Property, error)
}

// Bookings creates the booking at payment time and reports dates already
// taken at a property.
type Bookings interface {
	Create(ctx context.Context, req booking.CreateRequest) (*booking.Booking, error)
	BookedDates(ctx context.Context, propertyID int64) ([]calendar.Date, error)
}

// Deps are the collaborators shared by every wizard.
type Deps struct {
	Users      Registrar
	Properties PropertyFinder
	Bookings   Bookings
	Latency    mockstore.Latency
	Now        func() time.Time
	// TaxRate is applied as given; zero means no tax.
	TaxRate float64
}

// Options configure a single wizard.
type Options struct {
	// ChooseProperty adds the optional property selection step.
	ChooseProperty bool
	// Property pre-selects a property; its bookings are marked in the calendar.
	Property *property.Property
}

// Wizard is one guest's pass through the booking flow. It is safe for
// concurrent use.
type Wizard struct {
	mu         sync.Mutex
	deps       Deps
	session    *session.Session
	steps      []Step
	step       Step
	draft      Draft
	widget     *calendar.Widget
	lastActive time.Time
}

// New starts a wizard for pkg. A session that already holds a guest skips
// registration; a host identity cannot book.
func New(sess *session.Session, pkg *catalog.Package, deps Deps, opts Options) (*Wizard, error) {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if sess == nil {
		sess = session.New()
	}

	w := &Wizard{
		deps:    deps,
		session: sess,
		draft:   Draft{Package: pkg, Property: opts.Property},
	}

	id, signedIn := sess.Identity()
	if signedIn {
		if !id.IsGuest() {
			return nil, booking.ErrHostCannotBook
		}
		w.draft.Guest = &id
	} else {
		w.steps = append(w.steps, StepRegistration)
	}
	w.steps = append(w.steps, StepPackageConfirmation)
	if opts.ChooseProperty && opts.Property == nil {
		w.steps = append(w.steps, StepPropertySelection)
	}
	w.steps = append(w.steps, StepPayment, StepConfirmation)

	w.step = w.steps[0]
	w.touch()
	return w, nil
}

func (w *Wizard) touch() {
	w.lastActive = w.deps.Now()
}

// LastActive is when the wizard was last used.
func (w *Wizard) LastActive() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastActive
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Session is the identity context the wizard signs in on registration.
func (w *Wizard) Session() *session.Session {
	return w.session
}

// guard checks the wizard is alive and at want. Callers hold mu.
func (w *Wizard) guard(want Step) error {
	if w.step == StepExited {
		return ErrExited
	}
	if w.step != want {
		return ErrWrongStep
	}
	w.touch()
	return nil
}

// submit merges r into the draft and moves to the next step. Callers hold mu
// and have validated r.
func (w *Wizard) submit(r StepResult) error {
	if r.step() != w.step {
		return ErrWrongStep
	}
	w.draft.merge(r)
	i := slices.Index(w.steps, w.step)
	w.step = w.steps[i+1]
	return nil
}

// RegistrationForm is the guest sign-up form.
type RegistrationForm struct {
	Email           string
	Password        string
	ConfirmPassword string
	TravelFrequency string
}

// Register creates the guest account, signs the session in and advances.
func (w *Wizard) Register(ctx context.Context, form RegistrationForm) (*user.User, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guard(StepRegistration); err != nil {
		return nil, err
	}
	if strings.TrimSpace(form.Email) == "" {
		return nil, user.ErrEmailRequired
	}
	if form.Password != form.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(form.Password) < user.MinPasswordLength {
		return nil, user.ErrPasswordTooShort
	}
	if strings.TrimSpace(form.TravelFrequency) == "" {
		return nil, user.ErrTravelFrequencyRequired
	}

	u, err := w.deps.Users.Register(ctx, user.RegisterRequest{
		Email:           form.Email,
		Password:        form.Password,
		Role:            user.RoleGuest,
		TravelFrequency: form.TravelFrequency,
	})
	if err != nil {
		return nil, err
	}

	id := session.IdentityOf(u)
	w.session.Login(id)
	if err := w.submit(RegistrationResult{Identity: id}); err != nil {
		return nil, err
	}
	return u, nil
}

// OpenCalendar opens the date picker for the package, preloaded with any
// dates chosen earlier and capped at the package's nights.
func (w *Wizard) OpenCalendar(ctx context.Context) (calendar.Page, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guard(StepPackageConfirmation); err != nil {
		return calendar.Page{}, err
	}
	if w.widget != nil {
		return w.widget.Page(), nil
	}

	var booked []calendar.Date
	if p := w.draft.Property; p != nil {
		var err error
		if booked, err = w.deps.Bookings.BookedDates(ctx, p.ID); err != nil {
			return calendar.Page{}, err
		}
	}

	w.widget = calendar.NewWidget(calendar.Options{
		Mode:         calendar.ModeMultiple,
		Selected:     w.draft.TentativeDates,
		Availability: calendar.Availability{Booked: calendar.NewSet(booked...)},
		MaxSelected:  w.draft.Package.TotalNights,
		Now:          w.deps.Now,
	})
	return w.widget.Page(), nil
}

// withCalendar runs fn against the open calendar and returns the page after it.
func (w *Wizard) withCalendar(fn func(*calendar.Widget) error) (calendar.Page, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guard(StepPackageConfirmation); err != nil {
		return calendar.Page{}, err
	}
	if w.widget == nil {
		return calendar.Page{}, ErrCalendarNotOpen
	}
	if err := fn(w.widget); err != nil {
		return w.widget.Page(), err
	}
	return w.widget.Page(), nil
}

// Click toggles or extends the calendar selection. Clicks on unavailable
// dates leave it unchanged.
func (w *Wizard) Click(d calendar.Date) (calendar.Page, error) {
	return w.withCalendar(func(cw *calendar.Widget) error {
		_, err := cw.Click(d)
		return err
	})
}

func (w *Wizard) SetMode(m calendar.Mode) (calendar.Page, error) {
	return w.withCalendar(func(cw *calendar.Widget) error {
		return cw.SetMode(m)
	})
}

func (w *Wizard) NextMonth() (calendar.Page, error) {
	return w.withCalendar(func(cw *calendar.Widget) error {
		cw.Next()
		return nil
	})
}

func (w *Wizard) PrevMonth() (calendar.Page, error) {
	return w.withCalendar(func(cw *calendar.Widget) error {
		cw.Prev()
		return nil
	})
}

// ConfirmCalendar takes the calendar selection as the tentative dates and
// advances.
func (w *Wizard) ConfirmCalendar() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guard(StepPackageConfirmation); err != nil {
		return err
	}
	if w.widget == nil {
		return ErrCalendarNotOpen
	}
	dates, err := w.widget.Confirm()
	if err != nil {
		return err
	}
	w.widget = nil
	return w.submit(PackageResult{Dates: dates})
}

// CancelCalendar closes the calendar and stays on the package step with the
// draft untouched.
func (w *Wizard) CancelCalendar() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guard(StepPackageConfirmation); err != nil {
		return err
	}
	if w.widget == nil {
		return ErrCalendarNotOpen
	}
	_ = w.widget.Cancel()
	w.widget = nil
	return nil
}

// SkipDates continues from the package step without tentative dates,
// clearing any chosen earlier.
func (w *Wizard) SkipDates() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guard(StepPackageConfirmation); err != nil {
		return err
	}
	if w.widget != nil {
		return ErrCalendarOpen
	}
	return w.submit(PackageResult{})
}

// ChooseProperty attaches a bulk-enabled property to the booking.
func (w *Wizard) ChooseProperty(ctx context.Context, id int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guard(StepPropertySelection); err != nil {
		return err
	}
	p, err := w.deps.Properties.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.BulkBookingEnabled {
		return booking.ErrPropertyNotBookable
	}

	if len(w.draft.TentativeDates) > 0 {
		booked, err := w.deps.Bookings.BookedDates(ctx, p.ID)
		if err != nil {
			return err
		}
		taken := calendar.NewSet(booked...)
		for _, d := range w.draft.TentativeDates {
			if taken.Has(d) {
				return ErrDatesUnavailable
			}
		}
	}
	return w.submit(PropertyResult{Property: p})
}

func (w *Wizard) SkipProperty() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guard(StepPropertySelection); err != nil {
		return err
	}
	return w.submit(PropertyResult{})
}

// Quote prices the package with tax.
func (w *Wizard) Quote() Quote {
	w.mu.Lock()
	defer w.mu.Unlock()
	return NewQuote(w.draft.Package.Price, w.deps.TaxRate)
}

// Pay validates the card, simulates processing and creates the booking.
// Any failure leaves the wizard on the payment step with the draft unchanged.
func (w *Wizard) Pay(ctx context.Context, form PaymentForm) (*booking.Booking, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guard(StepPayment); err != nil {
		return nil, err
	}
	card, err := form.validate(w.deps.Now())
	if err != nil {
		return nil, err
	}

	if err := w.deps.Latency.Wait(ctx, mockstore.PaymentDelay); err != nil {
		return nil, err
	}
	if card == DeclinedCard {
		return nil, ErrPaymentDeclined
	}

	quote := NewQuote(w.draft.Package.Price, w.deps.TaxRate)
	req := booking.CreateRequest{
		UserID:      w.draft.Guest.UserID,
		PackageID:   w.draft.Package.ID,
		Dates:       w.draft.TentativeDates,
		TotalAmount: quote.Total,
	}
	if w.draft.Property != nil {
		id := w.draft.Property.ID
		req.PropertyID = &id
	}

	b, err := w.deps.Bookings.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := w.submit(PaymentResult{
		Payment:     form.record(card),
		BookingID:   b.ID,
		TotalAmount: quote.Total,
	}); err != nil {
		return nil, err
	}
	return b, nil
}

// Back returns to the previous step. An open calendar is closed first; from
// the first step the wizard exits.
func (w *Wizard) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepExited:
		return ErrExited
	case StepConfirmation:
		return ErrCannotGoBack
	}
	w.touch()

	if w.widget != nil {
		_ = w.widget.Cancel()
		w.widget = nil
		return nil
	}

	i := slices.Index(w.steps, w.step)
	if i == 0 {
		w.step = StepExited
		return nil
	}
	w.step = w.steps[i-1]
	return nil
}

// Finish leaves the confirmation page.
func (w *Wizard) Finish() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.guard(StepConfirmation); err != nil {
		return err
	}
	w.step = StepExited
	return nil
}

// State is a read-only view of the wizard.
type State struct {
	Step       Step
	StepNumber int // 1-based, 0 once exited
	TotalSteps int
	Steps      []Step
	Draft      Draft
	Quote      Quote
	Calendar   *calendar.Page
}

// Progress is the completed share of the flow in percent.
func (s State) Progress() int {
	if s.Step == StepExited {
		return 100
	}
	return s.StepNumber * 100 / s.TotalSteps
}

func (w *Wizard) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	st := State{
		Step:       w.step,
		StepNumber: slices.Index(w.steps, w.step) + 1,
		TotalSteps: len(w.steps),
		Steps:      slices.Clone(w.steps),
		Draft:      w.draft.clone(),
		Quote:      NewQuote(w.draft.Package.Price, w.deps.TaxRate),
	}
	if w.widget != nil {
		page := w.widget.Page()
		st.Calendar = &page
	}
	return st
}
