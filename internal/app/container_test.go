package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingHttp "github.com/nekogravitycat/bulkstay-backend/internal/booking/http"
	calendarHttp "github.com/nekogravitycat/bulkstay-backend/internal/calendar/http"
	catalogHttp "github.com/nekogravitycat/bulkstay-backend/internal/catalog/http"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/response"
	propertyHttp "github.com/nekogravitycat/bulkstay-backend/internal/property/http"
	userHttp "github.com/nekogravitycat/bulkstay-backend/internal/user/http"
	"github.com/nekogravitycat/bulkstay-backend/internal/wizard"
	wizardHttp "github.com/nekogravitycat/bulkstay-backend/internal/wizard/http"
)

var fixedNow = time.Date(2025, 9, 3, 10, 30, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	c, err := NewContainer(Config{
		JWTSecret:    "test-secret",
		JWTTTL:       30 * time.Minute,
		BcryptCost:   4, // Lower cost for testing purposes
		LatencyScale: 0,
		UploadDir:    t.TempDir(),
		TaxRate:      wizard.DefaultTaxRate,
		Now:          func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return c.Router
}

func executeRequest(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func login(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := executeRequest(r, "POST", "/v1/auth/login", userHttp.LoginRequest{Email: email, Password: "password"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[userHttp.AuthResponse](t, w).AccessToken
}

var validCard = wizardHttp.PaymentRequest{
	CardNumber:     "4242 4242 4242 4242",
	ExpiryDate:     "12/30",
	CVV:            "123",
	CardholderName: "Asha Rao",
	BillingAddress: "12 Beach Road",
	City:           "Panaji",
	ZipCode:        "403001",
}

func TestAuthAndCatalog(t *testing.T) {
	r := newTestRouter(t)

	t.Run("Login: Wrong password", func(t *testing.T) {
		w := executeRequest(r, "POST", "/v1/auth/login", userHttp.LoginRequest{Email: "guest@bulkstay.com", Password: "nope"}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Me: Requires token", func(t *testing.T) {
		w := executeRequest(r, "GET", "/v1/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Me: Seeded guest", func(t *testing.T) {
		token := login(t, r, "guest@bulkstay.com")
		w := executeRequest(r, "GET", "/v1/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		me := decode[userHttp.MeResponse](t, w)
		assert.Equal(t, "guest", me.User.Role)
	})

	t.Run("Packages: List", func(t *testing.T) {
		w := executeRequest(r, "GET", "/v1/packages", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		list := decode[response.ListResponse[catalogHttp.PackageResponse]](t, w)
		require.Len(t, list.Items, 3)
		assert.Equal(t, int64(24999), list.Items[0].Price)
	})

	t.Run("Packages: Not found", func(t *testing.T) {
		w := executeRequest(r, "GET", "/v1/packages/99", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Properties: Bulk only at a location", func(t *testing.T) {
		w := executeRequest(r, "GET", "/v1/properties?location=Alleppey%2C%20Kerala&bulk_only=true", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		list := decode[response.ListResponse[propertyHttp.PropertyResponse]](t, w)
		require.Len(t, list.Items, 1)
		assert.Equal(t, int64(6), list.Items[0].ID)
	})

	t.Run("Calendar: Month page", func(t *testing.T) {
		w := executeRequest(r, "GET", "/v1/calendar/month?year=2025&month=9", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		page := decode[calendarHttp.PageResponse](t, w)
		assert.Equal(t, "September 2025", page.Title)

		days := 0
		for _, d := range page.Days {
			if !d.Blank {
				days++
			}
		}
		assert.Equal(t, 30, days)
	})

	t.Run("Calendar: Invalid month", func(t *testing.T) {
		w := executeRequest(r, "GET", "/v1/calendar/month?year=2025&month=13", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWizardFlow(t *testing.T) {
	r := newTestRouter(t)

	var id, token string
	path := func(suffix string) string { return fmt.Sprintf("/v1/wizards/%s%s", id, suffix) }

	t.Run("Create", func(t *testing.T) {
		w := executeRequest(r, "POST", "/v1/wizards", wizardHttp.CreateWizardRequest{PackageID: 1, ChooseProperty: true}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		st := decode[wizardHttp.StateResponse](t, w)
		assert.Equal(t, "registration", st.Step)
		assert.Equal(t, 5, st.TotalSteps)
		id = st.ID
	})

	t.Run("Register: Password mismatch", func(t *testing.T) {
		w := executeRequest(r, "POST", path("/registration"), wizardHttp.RegistrationRequest{
			Email: "new@bulkstay.com", Password: "secret1", ConfirmPassword: "secret2", TravelFrequency: "weekly",
		}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Register", func(t *testing.T) {
		w := executeRequest(r, "POST", path("/registration"), wizardHttp.RegistrationRequest{
			Email: "new@bulkstay.com", Password: "secret1", ConfirmPassword: "secret1", TravelFrequency: "weekly",
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		st := decode[wizardHttp.StateResponse](t, w)
		assert.Equal(t, "package_confirmation", st.Step)
		require.NotEmpty(t, st.AccessToken)
		token = st.AccessToken
	})

	t.Run("Calendar: Select two dates", func(t *testing.T) {
		w := executeRequest(r, "POST", path("/calendar/open"), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		for _, d := range []string{"2025-09-10", "2025-09-11"} {
			w = executeRequest(r, "POST", path("/calendar/click"), wizardHttp.ClickRequest{Date: d}, "")
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		}
		st := decode[wizardHttp.StateResponse](t, w)
		require.NotNil(t, st.Calendar)
		assert.Equal(t, []string{"2025-09-10", "2025-09-11"}, st.Calendar.Selected)
		assert.Equal(t, 4, st.Calendar.Remaining)

		w = executeRequest(r, "POST", path("/calendar/confirm"), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		st = decode[wizardHttp.StateResponse](t, w)
		assert.Equal(t, "property_selection", st.Step)
		assert.Equal(t, []string{"2025-09-10", "2025-09-11"}, st.TentativeDates)
	})

	t.Run("Property: Not bulk enabled", func(t *testing.T) {
		pid := int64(4)
		w := executeRequest(r, "POST", path("/property"), wizardHttp.PropertyRequest{PropertyID: &pid}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	t.Run("Property: Choose", func(t *testing.T) {
		pid := int64(1)
		w := executeRequest(r, "POST", path("/property"), wizardHttp.PropertyRequest{PropertyID: &pid}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		st := decode[wizardHttp.StateResponse](t, w)
		assert.Equal(t, "payment", st.Step)
		require.NotNil(t, st.Property)
		assert.Equal(t, "Oceanview Villa", st.Property.Name)
	})

	t.Run("Payment: Declined", func(t *testing.T) {
		card := validCard
		card.CardNumber = "4000000000000002"
		w := executeRequest(r, "POST", path("/payment"), card, "")
		assert.Equal(t, http.StatusPaymentRequired, w.Code)

		st := decode[wizardHttp.StateResponse](t, executeRequest(r, "GET", path(""), nil, ""))
		assert.Equal(t, "payment", st.Step)
	})

	var bookingID string
	t.Run("Payment: Success", func(t *testing.T) {
		w := executeRequest(r, "POST", path("/payment"), validCard, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		st := decode[wizardHttp.StateResponse](t, w)
		assert.Equal(t, "confirmation", st.Step)
		assert.Equal(t, 100, st.Progress)
		require.NotEmpty(t, st.BookingID)
		require.NotNil(t, st.Payment)
		assert.Equal(t, "4242", st.Payment.CardLast4)
		assert.Equal(t, st.Quote.Total, st.TotalAmount)
		bookingID = st.BookingID
	})

	t.Run("Back: Not allowed after payment", func(t *testing.T) {
		w := executeRequest(r, "POST", path("/back"), nil, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Bookings: Visible to the new guest", func(t *testing.T) {
		w := executeRequest(r, "GET", "/v1/bookings/"+bookingID, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		b := decode[bookingHttp.BookingResponse](t, w)
		assert.Equal(t, "confirmed", b.Status)
		assert.Equal(t, []string{"2025-09-10", "2025-09-11"}, b.TentativeDates)
	})

	t.Run("Bookings: Hidden from other guests", func(t *testing.T) {
		other := login(t, r, "guest@bulkstay.com")
		w := executeRequest(r, "GET", "/v1/bookings/"+bookingID, nil, other)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Property calendar: Dates now booked", func(t *testing.T) {
		w := executeRequest(r, "GET", "/v1/properties/1/calendar?year=2025&month=9", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		page := decode[calendarHttp.PageResponse](t, w)
		booked := map[string]bool{}
		for _, d := range page.Days {
			if d.Booked {
				booked[d.Date] = true
			}
		}
		assert.True(t, booked["2025-09-10"])
		assert.True(t, booked["2025-09-15"])
		assert.False(t, booked["2025-09-12"])
	})

	t.Run("Finish", func(t *testing.T) {
		w := executeRequest(r, "POST", path("/finish"), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		st := decode[wizardHttp.StateResponse](t, w)
		assert.Equal(t, "exited", st.Step)
	})

	t.Run("Delete", func(t *testing.T) {
		w := executeRequest(r, "DELETE", path(""), nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		w = executeRequest(r, "GET", path(""), nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWizardSignedInGuest(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "guest@bulkstay.com")

	w := executeRequest(r, "POST", "/v1/wizards", wizardHttp.CreateWizardRequest{PackageID: 2}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	st := decode[wizardHttp.StateResponse](t, w)
	assert.Equal(t, "package_confirmation", st.Step)
	assert.Equal(t, 3, st.TotalSteps)

	w = executeRequest(r, "POST", "/v1/wizards/"+st.ID+"/package", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "payment", decode[wizardHttp.StateResponse](t, w).Step)

	w = executeRequest(r, "POST", "/v1/wizards/"+st.ID+"/back", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "package_confirmation", decode[wizardHttp.StateResponse](t, w).Step)
}

func TestHostRoutes(t *testing.T) {
	r := newTestRouter(t)
	host := login(t, r, "host@bulkstay.com")
	guest := login(t, r, "guest@bulkstay.com")

	t.Run("Wizard: Host cannot book", func(t *testing.T) {
		w := executeRequest(r, "POST", "/v1/wizards", wizardHttp.CreateWizardRequest{PackageID: 1}, host)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Bookings: Host cannot book", func(t *testing.T) {
		w := executeRequest(r, "POST", "/v1/bookings", bookingHttp.CreateBookingRequest{PackageID: 1, TotalAmount: 24999}, host)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Bulk toggle: Guest forbidden", func(t *testing.T) {
		enabled := false
		w := executeRequest(r, "PATCH", "/v1/properties/1/bulk-booking", propertyHttp.UpdateBulkBookingRequest{Enabled: &enabled}, guest)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Bulk toggle: Other host's property", func(t *testing.T) {
		enabled := false
		w := executeRequest(r, "PATCH", "/v1/properties/7/bulk-booking", propertyHttp.UpdateBulkBookingRequest{Enabled: &enabled}, host)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Bulk toggle: Enable property 4", func(t *testing.T) {
		enabled := true
		w := executeRequest(r, "PATCH", "/v1/properties/4/bulk-booking", propertyHttp.UpdateBulkBookingRequest{Enabled: &enabled}, host)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.True(t, decode[propertyHttp.PropertyResponse](t, w).BulkBookingEnabled)

		w = executeRequest(r, "GET", "/v1/properties/locations", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, decode[propertyHttp.LocationsResponse](t, w).Locations, "Kochi, Kerala")
	})

	t.Run("Summary", func(t *testing.T) {
		w := executeRequest(r, "GET", "/v1/properties/1/summary", nil, host)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		s := decode[bookingHttp.SummaryResponse](t, w)
		assert.Equal(t, 3, s.TotalBookings)
		assert.Equal(t, 2, s.Confirmed)
		assert.Equal(t, 1, s.Pending)
	})
}
