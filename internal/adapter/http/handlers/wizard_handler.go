package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "truga_booking/internal/adapter/http/dto/request"
	response "truga_booking/internal/adapter/http/dto/response"
	"truga_booking/internal/domain/wizard"
	"truga_booking/internal/usecase"
	"truga_booking/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid session payload", http.StatusBadRequest)
	errInvalidActionPayload  = pkg.NewDomainErrorSimple("INVALID_ACTION", "Invalid wizard action payload", http.StatusBadRequest)
)

// WizardHandler handles HTTP requests for reservation wizard sessions.

type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

// OpenSession starts a new wizard session. An empty body opens an unseeded
// session.
func (h *WizardHandler) OpenSession(c *gin.Context) {
	var payload request.OpenSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
			return
		}
	}

	s, err := h.usecase.Open(c.Request.Context(), payload.BoxID)
	if err != nil {
		log.Printf("[wizard][handler] open failed err=%v", err)
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[wizard][handler] open success session=%s", s.ID)

	c.JSON(http.StatusCreated, response.FromSession(s))
}

func (h *WizardHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(s))
}

// ApplyAction dispatches one wizard action against a session.
func (h *WizardHandler) ApplyAction(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.WizardActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidActionPayload.HTTPStatus, errInvalidActionPayload.ToHTTPError())
		return
	}

	action, err := payload.ToAction()
	if err != nil {
		log.Printf("[wizard][handler] action rejected session=%s type=%s err=%v", sessionID, payload.Type, err)
		appErr := pkg.NewDomainError("INVALID_ACTION", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	s, err := h.usecase.Apply(c.Request.Context(), sessionID, action)
	if err != nil {
		log.Printf("[wizard][handler] apply failed session=%s type=%s err=%v", sessionID, payload.Type, err)
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(s))
}

// Quote returns the live price preview. An optional hover_end query parameter
// previews a not-yet-committed end date.
func (h *WizardHandler) Quote(c *gin.Context) {
	var hoverEnd time.Time
	if raw := c.Query("hover_end"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "hover_end must use the YYYY-MM-DD format", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		hoverEnd = parsed
	}

	q, err := h.usecase.Quote(c.Request.Context(), c.Param("session_id"), hoverEnd)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// Submit sends the reservation inquiry for a session on the summary step.
//
// A submit racing an in-flight one is acknowledged with 202 instead of an
// error, so an impatient double click never surfaces a failure.
func (h *WizardHandler) Submit(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[wizard][handler] submit start session=%s", sessionID)

	s, err := h.usecase.Submit(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, usecase.ErrSubmitInFlight) {
			log.Printf("[wizard][handler] submit already in flight session=%s", sessionID)
			c.JSON(http.StatusAccepted, response.FromSession(s))
			return
		}
		log.Printf("[wizard][handler] submit failed session=%s err=%v", sessionID, err)
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[wizard][handler] submit success session=%s", sessionID)

	c.JSON(http.StatusOK, response.FromSession(s))
}

// CloseSession discards a session.
func (h *WizardHandler) CloseSession(c *gin.Context) {
	if err := h.usecase.Close(c.Request.Context(), c.Param("session_id")); err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid session id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, wizard.ErrStepNotValid):
		return pkg.NewDomainErrorSimple("STEP_NOT_VALID", "Current step is not complete", http.StatusUnprocessableEntity)
	case errors.Is(err, wizard.ErrInvalidRoofType),
		errors.Is(err, wizard.ErrInvalidField),
		errors.Is(err, wizard.ErrInvalidDates),
		errors.Is(err, wizard.ErrInvalidStep),
		errors.Is(err, wizard.ErrInvalidAction):
		return pkg.NewDomainError("INVALID_ACTION", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotOnSummary):
		return pkg.NewDomainErrorSimple("NOT_ON_SUMMARY", "Submission is only available from the summary step", http.StatusConflict)
	case errors.Is(err, usecase.ErrEditingInProgress):
		return pkg.NewDomainErrorSimple("EDITING_IN_PROGRESS", "Finish editing before submitting", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadySubmitted):
		return pkg.NewDomainErrorSimple("ALREADY_SUBMITTED", "Inquiry already submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrInquirySendFailed):
		return pkg.NewDomainErrorSimple("INQUIRY_SEND_FAILED", "Inquiry could not be sent", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
