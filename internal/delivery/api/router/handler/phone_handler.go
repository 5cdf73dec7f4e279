package handler

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"booking/internal/delivery/api/response"
	"booking/internal/delivery/api/validator"
	"booking/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	// APIPrefix is the path the phone routes are mounted under
	APIPrefix = "/api"

	mimeMergePatchJSON = "application/merge-patch+json"
)

// PhoneHandlerParams holds dependencies for PhoneHandler, injected by Fx.
type PhoneHandlerParams struct {
	fx.In

	PhoneUC usecase.PhoneUsecase
	Logger  *slog.Logger
}

// PhoneHandler holds dependencies for phone-related handlers
type PhoneHandler struct {
	phoneUC usecase.PhoneUsecase
	logger  *slog.Logger
}

// NewPhoneHandler is the constructor for PhoneHandler
func NewPhoneHandler(params PhoneHandlerParams) *PhoneHandler {
	return &PhoneHandler{
		phoneUC: params.PhoneUC,
		logger:  params.Logger,
	}
}

// PhoneRequest represents the request body for creating or replacing a phone
type PhoneRequest struct {
	ID       *int64     `json:"id"`
	Name     string     `json:"name" validate:"required"`
	Brand    string     `json:"brand" validate:"required"`
	Device   string     `json:"device" validate:"required"`
	BookedOn *time.Time `json:"bookedOn"`
	BookedBy *int64     `json:"bookedBy"`
}

func (r *PhoneRequest) toInput() *usecase.PhoneInput {
	return &usecase.PhoneInput{
		ID:       r.ID,
		Name:     r.Name,
		Brand:    r.Brand,
		Device:   r.Device,
		BookedOn: r.BookedOn,
		BookedBy: r.BookedBy,
	}
}

// PhonePatchRequest represents the request body for a partial update.
// Absent or null fields are left unchanged.
type PhonePatchRequest struct {
	ID       *int64     `json:"id"`
	Name     *string    `json:"name" validate:"omitempty,min=1"`
	Brand    *string    `json:"brand" validate:"omitempty,min=1"`
	Device   *string    `json:"device" validate:"omitempty,min=1"`
	BookedOn *time.Time `json:"bookedOn"`
}

func (r *PhonePatchRequest) toPatch() *usecase.PhonePatch {
	return &usecase.PhonePatch{
		ID:       r.ID,
		Name:     r.Name,
		Brand:    r.Brand,
		Device:   r.Device,
		BookedOn: r.BookedOn,
	}
}

// CreatePhone handles POST /api/phones
func (h *PhoneHandler) CreatePhone(c echo.Context) error {
	var req PhoneRequest
	if err := bindBody(c, &req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid phone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	created, err := h.phoneUC.CreatePhone(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, APIPrefix+created.Location, created.Phone)
}

// UpdatePhone handles PUT /api/phones/:id
func (h *PhoneHandler) UpdatePhone(c echo.Context) error {
	id, err := parsePhoneID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid phone ID")
	}

	var req PhoneRequest
	if err := bindBody(c, &req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid phone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	phone, err := h.phoneUC.UpdatePhone(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, phone)
}

// PartialUpdatePhone handles PATCH /api/phones/:id
func (h *PhoneHandler) PartialUpdatePhone(c echo.Context) error {
	id, err := parsePhoneID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid phone ID")
	}

	var req PhonePatchRequest
	if err := bindBody(c, &req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid phone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.FieldErrors(err))
	}

	phone, err := h.phoneUC.PartialUpdatePhone(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, phone)
}

// ListPhones handles GET /api/phones, optionally filtered by ?bookedBy=<userId>
func (h *PhoneHandler) ListPhones(c echo.Context) error {
	ctx := c.Request().Context()

	bookedBy := c.QueryParam("bookedBy")
	if bookedBy == "" {
		phones, err := h.phoneUC.ListPhones(ctx)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, phones)
	}

	userID, err := strconv.ParseInt(bookedBy, 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid bookedBy user ID")
	}

	phones, err := h.phoneUC.ListPhonesBookedBy(ctx, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, phones)
}

// GetPhone handles GET /api/phones/:id
func (h *PhoneHandler) GetPhone(c echo.Context) error {
	id, err := parsePhoneID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid phone ID")
	}

	phone, err := h.phoneUC.GetPhone(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, phone)
}

// DeletePhone handles DELETE /api/phones/:id
func (h *PhoneHandler) DeletePhone(c echo.Context) error {
	id, err := parsePhoneID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid phone ID")
	}

	if err := h.phoneUC.DeletePhone(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func parsePhoneID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// bindBody decodes the JSON body. Merge-patch documents are decoded directly
// because echo's binder only accepts application/json.
func bindBody(c echo.Context, dst any) error {
	mediaType, _, _ := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
	if mediaType != mimeMergePatchJSON {
		return c.Bind(dst)
	}

	return json.NewDecoder(c.Request().Body).Decode(dst)
}
