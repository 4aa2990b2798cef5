package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/bulkstay-backend/internal/auth"
	"github.com/nekogravitycat/bulkstay-backend/internal/booking"
	"github.com/nekogravitycat/bulkstay-backend/internal/calendar"
	"github.com/nekogravitycat/bulkstay-backend/internal/catalog"
	"github.com/nekogravitycat/bulkstay-backend/internal/mockstore"
	"github.com/nekogravitycat/bulkstay-backend/internal/property"
	"github.com/nekogravitycat/bulkstay-backend/internal/session"
	"github.com/nekogravitycat/bulkstay-backend/internal/user"
)

func fixedNow() time.Time {
	return time.Date(2025, time.September, 3, 10, 30, 0, 0, time.UTC)
}

type fixture struct {
	deps     Deps
	users    user.Service
	bookings booking.Service
	packages catalog.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	hasher := auth.NewBcryptPasswordHasherWithCost(4)
	seed, err := user.Seed(hasher)
	require.NoError(t, err)

	users := user.NewService(user.NewMemoryRepository(mockstore.None(), seed), hasher)
	packages := catalog.NewService(catalog.NewMemoryRepository(mockstore.None(), catalog.Seed()))
	properties := property.NewService(property.NewMemoryRepository(mockstore.None(), property.Seed()), nil, nil)
	bookings := booking.NewService(booking.NewMemoryRepository(mockstore.None(), booking.Seed()), users, packages, properties)

	return &fixture{
		deps: Deps{
			Users:      users,
			Properties: properties,
			Bookings:   bookings,
			Latency:    mockstore.None(),
			Now:        fixedNow,
			TaxRate:    DefaultTaxRate,
		},
		users:    users,
		bookings: bookings,
		packages: packages,
	}
}

func (f *fixture) pkg(t *testing.T, id int64) *catalog.Package {
	t.Helper()
	p, err := f.packages.GetByID(context.Background(), id)
	require.NoError(t, err)
	return p
}

func (f *fixture) guestSession(t *testing.T) *session.Session {
	t.Helper()
	u, err := f.users.GetByID(context.Background(), "1")
	require.NoError(t, err)
	return session.FromUser(u)
}

var validCard = PaymentForm{
	CardNumber:     "4242 4242 4242 4242",
	ExpiryDate:     "12/27",
	CVV:            "123",
	CardholderName: "Asha Rao",
	BillingAddress: "12 MG Road",
	City:           "Mumbai",
	ZipCode:        "400001",
}

func TestAnonymousWizardStartsAtRegistration(t *testing.T) {
	f := newFixture(t)
	w, err := New(session.New(), f.pkg(t, 1), f.deps, Options{})
	require.NoError(t, err)

	st := w.Snapshot()
	assert.Equal(t, StepRegistration, st.Step)
	assert.Equal(t, []Step{StepRegistration, StepPackageConfirmation, StepPayment, StepConfirmation}, st.Steps)
	assert.Equal(t, 25, st.Progress())
}

func TestSignedInGuestSkipsRegistration(t *testing.T) {
	f := newFixture(t)
	w, err := New(f.guestSession(t), f.pkg(t, 1), f.deps, Options{})
	require.NoError(t, err)

	st := w.Snapshot()
	assert.Equal(t, StepPackageConfirmation, st.Step)
	require.NotNil(t, st.Draft.Guest)
	assert.Equal(t, "guest@bulkstay.com", st.Draft.Guest.Email)
}

func TestHostCannotStartWizard(t *testing.T) {
	f := newFixture(t)
	host, err := f.users.GetByID(context.Background(), "2")
	require.NoError(t, err)

	_, err = New(session.FromUser(host), f.pkg(t, 1), f.deps, Options{})
	assert.ErrorIs(t, err, booking.ErrHostCannotBook)
}

func TestRegistrationValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w, err := New(nil, f.pkg(t, 1), f.deps, Options{})
	require.NoError(t, err)

	tests := []struct {
		name string
		form RegistrationForm
		want error
	}{
		{"mismatch", RegistrationForm{Email: "a@b.com", Password: "secret1", ConfirmPassword: "secret2", TravelFrequency: "weekly"}, ErrPasswordMismatch},
		{"short", RegistrationForm{Email: "a@b.com", Password: "abc", ConfirmPassword: "abc", TravelFrequency: "weekly"}, user.ErrPasswordTooShort},
		{"no frequency", RegistrationForm{Email: "a@b.com", Password: "secret1", ConfirmPassword: "secret1"}, user.ErrTravelFrequencyRequired},
		{"no email", RegistrationForm{Password: "secret1", ConfirmPassword: "secret1", TravelFrequency: "weekly"}, user.ErrEmailRequired},
		{"duplicate", RegistrationForm{Email: "guest@bulkstay.com", Password: "secret1", ConfirmPassword: "secret1", TravelFrequency: "weekly"}, user.ErrUserExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.Register(ctx, tt.form)
			assert.ErrorIs(t, err, tt.want)
			st := w.Snapshot()
			assert.Equal(t, StepRegistration, st.Step)
			assert.Nil(t, st.Draft.Guest)
		})
	}
}

func TestFullFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess := session.New()
	w, err := New(sess, f.pkg(t, 1), f.deps, Options{})
	require.NoError(t, err)

	u, err := w.Register(ctx, RegistrationForm{
		Email:           "traveller@bulkstay.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		TravelFrequency: "quarterly",
	})
	require.NoError(t, err)
	assert.Equal(t, StepPackageConfirmation, w.Step())

	id, ok := sess.Identity()
	require.True(t, ok)
	assert.Equal(t, u.ID, id.UserID)

	page, err := w.OpenCalendar(ctx)
	require.NoError(t, err)
	assert.Equal(t, "September 2025", page.Title)
	assert.Equal(t, 6, page.MaxSelected)

	_, err = w.SetMode(calendar.ModeRange)
	require.NoError(t, err)
	_, err = w.Click("2025-09-10")
	require.NoError(t, err)
	page, err = w.Click("2025-09-13")
	require.NoError(t, err)
	assert.Equal(t, []calendar.Date{"2025-09-10", "2025-09-11", "2025-09-12", "2025-09-13"}, page.Selected)
	assert.Equal(t, 2, page.Remaining)

	assert.ErrorIs(t, w.SkipDates(), ErrCalendarOpen)
	require.NoError(t, w.ConfirmCalendar())
	assert.Equal(t, StepPayment, w.Step())

	quote := w.Quote()
	assert.Equal(t, int64(4500), quote.Taxes)
	assert.Equal(t, int64(29499), quote.Total)

	b, err := w.Pay(ctx, validCard)
	require.NoError(t, err)
	assert.Equal(t, int64(29499), b.TotalAmount)
	assert.Len(t, b.TentativeDates, 4)

	st := w.Snapshot()
	assert.Equal(t, StepConfirmation, st.Step)
	assert.Equal(t, b.ID, st.Draft.BookingID)
	require.NotNil(t, st.Draft.Payment)
	assert.Equal(t, "4242", st.Draft.Payment.CardLast4)

	assert.ErrorIs(t, w.Back(), ErrCannotGoBack)
	require.NoError(t, w.Finish())
	assert.Equal(t, StepExited, w.Step())
	assert.ErrorIs(t, w.Finish(), ErrExited)

	mine, err := f.bookings.ListByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestCalendarCapAndCancel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w, err := New(f.guestSession(t), f.pkg(t, 1), f.deps, Options{})
	require.NoError(t, err)

	_, err = w.Click("2025-09-10")
	assert.ErrorIs(t, err, ErrCalendarNotOpen)

	_, err = w.OpenCalendar(ctx)
	require.NoError(t, err)
	for _, d := range calendar.Between("2025-09-10", "2025-09-15") {
		_, err := w.Click(d)
		require.NoError(t, err)
	}
	page, err := w.Click("2025-09-16")
	assert.ErrorIs(t, err, calendar.ErrSelectionLimit)
	assert.Len(t, page.Selected, 6)

	// Cancel keeps the step and leaves the draft without dates.
	require.NoError(t, w.CancelCalendar())
	st := w.Snapshot()
	assert.Equal(t, StepPackageConfirmation, st.Step)
	assert.Empty(t, st.Draft.TentativeDates)
	assert.Nil(t, st.Calendar)

	require.NoError(t, w.SkipDates())
	assert.Equal(t, StepPayment, w.Step())
}

func TestCalendarConfirmNeedsDates(t *testing.T) {
	f := newFixture(t)
	w, err := New(f.guestSession(t), f.pkg(t, 1), f.deps, Options{})
	require.NoError(t, err)

	_, err = w.OpenCalendar(context.Background())
	require.NoError(t, err)
	assert.ErrorIs(t, w.ConfirmCalendar(), calendar.ErrNothingSelected)
	assert.Equal(t, StepPackageConfirmation, w.Step())
}

func TestPreselectedPropertyMarksBookedDates(t *testing.T) {
	f := newFixture(t)
	villa, err := f.deps.Properties.GetByID(context.Background(), 1)
	require.NoError(t, err)

	w, err := New(f.guestSession(t), f.pkg(t, 2), f.deps, Options{Property: villa})
	require.NoError(t, err)

	_, err = w.OpenCalendar(context.Background())
	require.NoError(t, err)
	page, err := w.Click("2025-09-15")
	require.NoError(t, err)
	assert.Empty(t, page.Selected)

	for _, d := range page.Days {
		if d.Date == "2025-09-15" {
			assert.True(t, d.Booked)
		}
	}
}

func TestPropertySelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w, err := New(f.guestSession(t), f.pkg(t, 1), f.deps, Options{ChooseProperty: true})
	require.NoError(t, err)

	_, err = w.OpenCalendar(ctx)
	require.NoError(t, err)
	_, err = w.Click("2025-09-16")
	require.NoError(t, err)
	require.NoError(t, w.ConfirmCalendar())
	assert.Equal(t, StepPropertySelection, w.Step())

	assert.ErrorIs(t, w.ChooseProperty(ctx, 4), booking.ErrPropertyNotBookable)
	assert.ErrorIs(t, w.ChooseProperty(ctx, 99), property.ErrNotFound)
	assert.ErrorIs(t, w.ChooseProperty(ctx, 1), ErrDatesUnavailable)
	assert.Equal(t, StepPropertySelection, w.Step())

	require.NoError(t, w.ChooseProperty(ctx, 2))
	st := w.Snapshot()
	assert.Equal(t, StepPayment, st.Step)
	require.NotNil(t, st.Draft.Property)
	assert.Equal(t, "Mountain Retreat", st.Draft.Property.Name)

	b, err := w.Pay(ctx, validCard)
	require.NoError(t, err)
	require.NotNil(t, b.PropertyID)
	assert.Equal(t, int64(2), *b.PropertyID)
}

func TestSkipProperty(t *testing.T) {
	f := newFixture(t)
	w, err := New(f.guestSession(t), f.pkg(t, 1), f.deps, Options{ChooseProperty: true})
	require.NoError(t, err)

	require.NoError(t, w.SkipDates())
	require.NoError(t, w.SkipProperty())
	st := w.Snapshot()
	assert.Equal(t, StepPayment, st.Step)
	assert.Nil(t, st.Draft.Property)
}

func TestWrongStepIsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w, err := New(nil, f.pkg(t, 1), f.deps, Options{})
	require.NoError(t, err)

	_, err = w.Pay(ctx, validCard)
	assert.ErrorIs(t, err, ErrWrongStep)
	assert.ErrorIs(t, w.SkipDates(), ErrWrongStep)
	assert.ErrorIs(t, w.SkipProperty(), ErrWrongStep)
	assert.ErrorIs(t, w.submit(PaymentResult{}), ErrWrongStep)
	assert.Equal(t, StepRegistration, w.Step())
}

func TestBackNavigation(t *testing.T) {
	f := newFixture(t)
	w, err := New(f.guestSession(t), f.pkg(t, 1), f.deps, Options{})
	require.NoError(t, err)

	require.NoError(t, w.SkipDates())
	assert.Equal(t, StepPayment, w.Step())

	require.NoError(t, w.Back())
	assert.Equal(t, StepPackageConfirmation, w.Step())

	// An open calendar is closed before any step change.
	_, err = w.OpenCalendar(context.Background())
	require.NoError(t, err)
	require.NoError(t, w.Back())
	assert.Equal(t, StepPackageConfirmation, w.Step())
	assert.Nil(t, w.Snapshot().Calendar)

	require.NoError(t, w.Back())
	assert.Equal(t, StepExited, w.Step())
	assert.ErrorIs(t, w.Back(), ErrExited)
}

func TestSkipAfterBackClearsDates(t *testing.T) {
	f := newFixture(t)
	w, err := New(f.guestSession(t), f.pkg(t, 1), f.deps, Options{})
	require.NoError(t, err)

	_, err = w.OpenCalendar(context.Background())
	require.NoError(t, err)
	_, err = w.Click("2025-09-20")
	require.NoError(t, err)
	require.NoError(t, w.ConfirmCalendar())
	assert.Equal(t, []calendar.Date{"2025-09-20"}, w.Snapshot().Draft.TentativeDates)

	require.NoError(t, w.Back())
	require.NoError(t, w.SkipDates())

	st := w.Snapshot()
	assert.Equal(t, StepPayment, st.Step)
	assert.Empty(t, st.Draft.TentativeDates)
}

func TestPaymentFailuresKeepDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	w, err := New(f.guestSession(t), f.pkg(t, 1), f.deps, Options{})
	require.NoError(t, err)
	require.NoError(t, w.SkipDates())

	declined := validCard
	declined.CardNumber = "4000 0000 0000 0002"
	_, err = w.Pay(ctx, declined)
	assert.ErrorIs(t, err, ErrPaymentDeclined)

	expired := validCard
	expired.ExpiryDate = "08/25"
	_, err = w.Pay(ctx, expired)
	assert.ErrorIs(t, err, ErrCardExpired)

	st := w.Snapshot()
	assert.Equal(t, StepPayment, st.Step)
	assert.Nil(t, st.Draft.Payment)
	assert.Empty(t, st.Draft.BookingID)
}

func TestPaymentFormValidation(t *testing.T) {
	now := fixedNow()
	tests := []struct {
		name   string
		mutate func(*PaymentForm)
		want   error
	}{
		{"letters in card", func(f *PaymentForm) { f.CardNumber = "4242abcd42424242" }, ErrInvalidCardNumber},
		{"short card", func(f *PaymentForm) { f.CardNumber = "4242" }, ErrInvalidCardNumber},
		{"bad expiry", func(f *PaymentForm) { f.ExpiryDate = "1227" }, ErrInvalidExpiry},
		{"month 13", func(f *PaymentForm) { f.ExpiryDate = "13/27" }, ErrInvalidExpiry},
		{"expired", func(f *PaymentForm) { f.ExpiryDate = "08/25" }, ErrCardExpired},
		{"cvv", func(f *PaymentForm) { f.CVV = "12" }, ErrInvalidCVV},
		{"cardholder", func(f *PaymentForm) { f.CardholderName = " " }, ErrCardholderMissing},
		{"billing", func(f *PaymentForm) { f.ZipCode = "" }, ErrBillingMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validCard
			tt.mutate(&form)
			_, err := form.validate(now)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	thisMonth := validCard
	thisMonth.ExpiryDate = "09/25"
	card, err := thisMonth.validate(now)
	require.NoError(t, err)
	assert.Equal(t, "4242424242424242", card)
}

func TestQuote(t *testing.T) {
	assert.Equal(t, Quote{Subtotal: 24999, Taxes: 4500, Total: 29499}, NewQuote(24999, 0.18))
	assert.Equal(t, int64(88499), NewQuote(74999, 0.18).Total)
	assert.Equal(t, int64(147499), NewQuote(124999, 0.18).Total)
}

func TestZeroTaxRate(t *testing.T) {
	f := newFixture(t)
	f.deps.TaxRate = 0
	w, err := New(f.guestSession(t), f.pkg(t, 1), f.deps, Options{})
	require.NoError(t, err)

	assert.Equal(t, Quote{Subtotal: 24999, Taxes: 0, Total: 24999}, w.Quote())

	require.NoError(t, w.SkipDates())
	b, err := w.Pay(context.Background(), validCard)
	require.NoError(t, err)
	assert.Equal(t, int64(24999), b.TotalAmount)
}
