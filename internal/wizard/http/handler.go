package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nekogravitycat/bulkstay-backend/internal/auth"
	"github.com/nekogravitycat/bulkstay-backend/internal/calendar"
	"github.com/nekogravitycat/bulkstay-backend/internal/catalog"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/request"
	"github.com/nekogravitycat/bulkstay-backend/internal/pkg/response"
	"github.com/nekogravitycat/bulkstay-backend/internal/property"
	"github.com/nekogravitycat/bulkstay-backend/internal/session"
	"github.com/nekogravitycat/bulkstay-backend/internal/user"
	"github.com/nekogravitycat/bulkstay-backend/internal/wizard"
)

type WizardHandler struct {
	registry    *wizard.Registry
	deps        wizard.Deps
	pkgService  catalog.Service
	propService property.Service
	userService user.Service
	jwtManager  *auth.JWTManager
}

func NewHandler(
	registry *wizard.Registry,
	deps wizard.Deps,
	pkgService catalog.Service,
	propService property.Service,
	userService user.Service,
	jwtManager *auth.JWTManager,
) *WizardHandler {
	return &WizardHandler{
		registry:    registry,
		deps:        deps,
		pkgService:  pkgService,
		propService: propService,
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// load resolves the wizard addressed by the :id path parameter.
func (h *WizardHandler) load(c *gin.Context) (*wizard.Wizard, string, bool) {
	var req request.ByKeyRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, err)
		return nil, "", false
	}
	w, err := h.registry.Get(req.ID)
	if err != nil {
		response.Error(c, err)
		return nil, "", false
	}
	return w, req.ID, true
}

func (h *WizardHandler) respond(c *gin.Context, status int, id string, w *wizard.Wizard) {
	c.JSON(status, NewStateResponse(id, w.Snapshot()))
}

// Create starts a booking wizard. A bearer token, when present, signs the
// wizard's session in and skips registration.
func (h *WizardHandler) Create(c *gin.Context) {
	var req CreateWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	ctx := c.Request.Context()

	pkg, err := h.pkgService.GetByID(ctx, req.PackageID)
	if err != nil {
		response.Error(c, err)
		return
	}

	sess := session.New()
	if userID := auth.GetUserID(c); userID != "" {
		u, err := h.userService.GetByID(ctx, userID)
		if err != nil {
			response.Error(c, err)
			return
		}
		sess.Login(session.IdentityOf(u))
	}

	opts := wizard.Options{ChooseProperty: req.ChooseProperty}
	if req.PropertyID != nil {
		p, err := h.propService.GetByID(ctx, *req.PropertyID)
		if err != nil {
			response.Error(c, err)
			return
		}
		opts.Property = p
	}

	w, err := wizard.New(sess, pkg, h.deps, opts)
	if err != nil {
		response.Error(c, err)
		return
	}
	id := h.registry.Add(w)
	h.respond(c, http.StatusCreated, id, w)
}

func (h *WizardHandler) Get(c *gin.Context) {
	w, id, ok := h.load(c)
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id, w)
}

func (h *WizardHandler) Delete(c *gin.Context) {
	var req request.ByKeyRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.registry.Remove(req.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Register creates the guest account and returns an access token with the state.
func (h *WizardHandler) Register(c *gin.Context) {
	w, id, ok := h.load(c)
	if !ok {
		return
	}
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}

	u, err := w.Register(c.Request.Context(), wizard.RegistrationForm{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		TravelFrequency: req.TravelFrequency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(u.ID, string(u.Role))
	if err != nil {
		response.Error(c, err)
		return
	}
	resp := NewStateResponse(id, w.Snapshot())
	resp.AccessToken = token
	c.JSON(http.StatusOK, resp)
}

// SkipDates continues from package confirmation without opening the calendar.
func (h *WizardHandler) SkipDates(c *gin.Context) {
	h.run(c, func(w *wizard.Wizard) error { return w.SkipDates() })
}

func (h *WizardHandler) OpenCalendar(c *gin.Context) {
	h.run(c, func(w *wizard.Wizard) error {
		_, err := w.OpenCalendar(c.Request.Context())
		return err
	})
}

func (h *WizardHandler) Click(c *gin.Context) {
	var req ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	d, err := calendar.ParseDate(req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.run(c, func(w *wizard.Wizard) error {
		_, err := w.Click(d)
		return err
	})
}

func (h *WizardHandler) SetMode(c *gin.Context) {
	var req ModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	mode, err := calendar.ParseMode(req.Mode)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.run(c, func(w *wizard.Wizard) error {
		_, err := w.SetMode(mode)
		return err
	})
}

func (h *WizardHandler) NextMonth(c *gin.Context) {
	h.run(c, func(w *wizard.Wizard) error {
		_, err := w.NextMonth()
		return err
	})
}

func (h *WizardHandler) PrevMonth(c *gin.Context) {
	h.run(c, func(w *wizard.Wizard) error {
		_, err := w.PrevMonth()
		return err
	})
}

func (h *WizardHandler) ConfirmCalendar(c *gin.Context) {
	h.run(c, func(w *wizard.Wizard) error { return w.ConfirmCalendar() })
}

func (h *WizardHandler) CancelCalendar(c *gin.Context) {
	h.run(c, func(w *wizard.Wizard) error { return w.CancelCalendar() })
}

// ChooseProperty picks the property, or skips the step when none is given.
func (h *WizardHandler) ChooseProperty(c *gin.Context) {
	var req PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	h.run(c, func(w *wizard.Wizard) error {
		if req.PropertyID == nil {
			return w.SkipProperty()
		}
		return w.ChooseProperty(c.Request.Context(), *req.PropertyID)
	})
}

func (h *WizardHandler) Pay(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	h.run(c, func(w *wizard.Wizard) error {
		_, err := w.Pay(c.Request.Context(), req.form())
		return err
	})
}

func (h *WizardHandler) Back(c *gin.Context) {
	h.run(c, func(w *wizard.Wizard) error { return w.Back() })
}

func (h *WizardHandler) Finish(c *gin.Context) {
	h.run(c, func(w *wizard.Wizard) error { return w.Finish() })
}

// run applies fn to the addressed wizard and responds with its new state.
func (h *WizardHandler) run(c *gin.Context, fn func(*wizard.Wizard) error) {
	w, id, ok := h.load(c)
	if !ok {
		return
	}
	if err := fn(w); err != nil {
		response.Error(c, err)
		return
	}
	h.respond(c, http.StatusOK, id, w)
}
