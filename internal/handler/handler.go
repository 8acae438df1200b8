package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "jobmatrix/internal/errors"
	"jobmatrix/internal/service"
)

// maxUploadSize caps a single uploaded file.
const maxUploadSize = 10 << 20

var errInvalidBody = apperrors.ErrorResponse{Error: "invalid request body", Code: "INVALID_REQUEST"}

// respondError converts err to the error envelope. Only unexpected errors are
// logged; the client gets a generic message for those.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		err = translateValidation(verrs)
	}
	he := apperrors.MapErrorToHTTP(err)
	if he.StatusCode >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err),
		)
	}
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// bindAndValidate binds the request into req and runs the struct validator.
func bindAndValidate(c echo.Context, log *zap.Logger, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errInvalidBody)
	}
	if err := c.Validate(req); err != nil {
		return respondError(c, log, err)
	}
	return nil
}

func translateValidation(verrs validator.ValidationErrors) *apperrors.ValidationError {
	out := &apperrors.ValidationError{}
	for _, fe := range verrs {
		out.Add(fe.Field(), validationMessage(fe))
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Ensure this field has at least " + fe.Param() + " characters."
	case "max":
		return "Ensure this field has no more than " + fe.Param() + " characters."
	case "oneof":
		return "Must be one of: " + fe.Param() + "."
	case "gte":
		return "Ensure this value is greater than or equal to " + fe.Param() + "."
	default:
		return "Invalid value."
	}
}

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// formUpload opens the multipart file named field. A missing file yields a
// nil upload. The caller must call the returned close function.
func formUpload(c echo.Context, field string) (*service.Upload, func(), error) {
	noop := func() {}
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		return nil, noop, apperrors.NewValidation(field, "Upload a valid file.")
	}
	if fh.Size > maxUploadSize {
		return nil, noop, apperrors.NewValidation(field, "File is too large.")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}
	up := &service.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Reader:      f,
	}
	return up, func() { _ = f.Close() }, nil
}
