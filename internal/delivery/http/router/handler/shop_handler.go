package handler

import (
	"log/slog"
	"net/http"

	"shopdir/internal/delivery/http/response"
	domainerrors "shopdir/internal/domain/errors"
	"shopdir/internal/domain/service"
	"shopdir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	QRCode service.QRCodeService
	Logger *slog.Logger
}

// ShopHandler holds dependencies for shop-related handlers
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	qrcode service.QRCodeService
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		qrcode: params.QRCode,
		logger: params.Logger,
	}
}

// ShopFormRequest represents the multipart form body for creating or
// replacing a shop. The optional file field "photo" is read separately.
type ShopFormRequest struct {
	OwnerName     string `form:"ownerName" validate:"required"`
	ContactNumber string `form:"contactNumber" validate:"required"`
	ShopNumber    string `form:"shopNumber" validate:"required"`
	Address       string `form:"address" validate:"required"`
	Description   string `form:"description" validate:"required"`
	Latitude      string `form:"latitude" validate:"required,numeric"`
	Longitude     string `form:"longitude" validate:"required,numeric"`
}

// ListShops handles retrieving the full shop directory
func (h *ShopHandler) ListShops(c echo.Context) error {
	shops, err := h.shopUC.ListShops(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops, "Shops retrieved successfully")
}

// GetShop handles retrieving a single shop by its external ID
func (h *ShopHandler) GetShop(c echo.Context) error {
	shop, err := h.shopUC.GetShop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop retrieved successfully")
}

// CreateShop handles creating a new shop from a multipart form
func (h *ShopHandler) CreateShop(c echo.Context) error {
	var req ShopFormRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	photo, closePhoto, err := h.stagedPhoto(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PHOTO", "Could not read photo upload")
	}
	defer closePhoto()

	input := &usecase.CreateShopInput{
		OwnerName:     req.OwnerName,
		ContactNumber: req.ContactNumber,
		ShopNumber:    req.ShopNumber,
		Address:       req.Address,
		Description:   req.Description,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Photo:         photo,
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shop, "Shop created successfully")
}

// UpdateShop handles replacing an existing shop from a multipart form
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	var req ShopFormRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	photo, closePhoto, err := h.stagedPhoto(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_PHOTO", "Could not read photo upload")
	}
	defer closePhoto()

	input := &usecase.UpdateShopInput{
		OwnerName:     req.OwnerName,
		ContactNumber: req.ContactNumber,
		ShopNumber:    req.ShopNumber,
		Address:       req.Address,
		Description:   req.Description,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Photo:         photo,
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop updated successfully")
}

// DeleteShop handles deleting a shop and its photo
func (h *ShopHandler) DeleteShop(c echo.Context) error {
	if err := h.shopUC.DeleteShop(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Shop deleted successfully"}, "Shop deleted successfully")
}

// GetShopQR handles generating a share QR code for a shop
func (h *ShopHandler) GetShopQR(c echo.Context) error {
	externalID := c.Param("id")

	// QR codes are only issued for shops that exist.
	if _, err := h.shopUC.GetShop(c.Request().Context(), externalID); err != nil {
		return h.handleAppError(c, err)
	}

	qrBytes, err := h.qrcode.GenerateShopQR(externalID)
	if err != nil {
		h.logger.Error("failed to generate shop QR code",
			slog.String("external_id", externalID),
			slog.Any("error", err),
		)

		return h.handleAppError(c, domainerrors.ErrQRCodeGenerationFailed)
	}

	return c.Blob(http.StatusOK, "image/png", qrBytes)
}

// stagedPhoto reads the optional "photo" file field. A missing field is not
// an error; it simply yields a nil upload.
func (h *ShopHandler) stagedPhoto(c echo.Context) (*service.StagedUpload, func(), error) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}

		return nil, func() {}, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, func() {}, err
	}

	upload := &service.StagedUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Content:  src,
	}

	return upload, func() { src.Close() }, nil
}

// handleAppError handles application errors
func (h *ShopHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
