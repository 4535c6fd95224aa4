package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vendir/internal/delivery/http/response"
	"vendir/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GalleryHandlerParams holds dependencies for GalleryHandler, injected by Fx.
type GalleryHandlerParams struct {
	fx.In

	GalleryUC usecase.GalleryUsecase
	Logger    *slog.Logger
}

// GalleryHandler serves the owner-side gallery endpoints.
type GalleryHandler struct {
	galleryUC usecase.GalleryUsecase
	logger    *slog.Logger
}

// NewGalleryHandler is the constructor for GalleryHandler.
func NewGalleryHandler(params GalleryHandlerParams) *GalleryHandler {
	return &GalleryHandler{
		galleryUC: params.GalleryUC,
		logger:    params.Logger,
	}
}

// UploadURLRequest records an externally hosted image without streaming bytes.
type UploadURLRequest struct {
	MediaURL string `json:"media_url" validate:"required,url"`
}

// ListImages returns the caller's gallery, oldest first.
func (h *GalleryHandler) ListImages(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	images, err := h.galleryUC.ListImages(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, images)
}

// UploadImage accepts either a multipart file under the "file" field or a
// JSON body carrying an external media URL.
func (h *GalleryHandler) UploadImage(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var input usecase.UploadImageInput

	if fileHeader, err := c.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return response.BadRequest(c, "INVALID_FILE", "could not read uploaded file")
		}
		defer file.Close()

		input = usecase.UploadImageInput{
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Body:        file,
		}
	} else {
		var req UploadURLRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "Invalid gallery input")
		}
		if err := c.Validate(&req); err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
		}
		input = usecase.UploadImageInput{MediaURL: req.MediaURL}
	}

	image, err := h.galleryUC.UploadImage(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, image)
}

// DeleteImage removes an owned image.
func (h *GalleryHandler) DeleteImage(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	imageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "image id must be an integer")
	}

	if err := h.galleryUC.DeleteImage(c.Request().Context(), userID, imageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Image deleted"})
}

// SetCoverImage makes an owned image the sole cover.
func (h *GalleryHandler) SetCoverImage(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	imageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "image id must be an integer")
	}

	if err := h.galleryUC.SetCoverImage(c.Request().Context(), userID, imageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cover image updated"})
}
