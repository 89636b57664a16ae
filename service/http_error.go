package service

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler installs the frontend error handler on e.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), logger).Handler
}

// NewErrorCodeToStatusCodeMaps creates an error code to http status mapping.
func NewErrorCodeToStatusCodeMaps() map[string]int {
	var errorCodeToStatusCodeMaps = make(map[string]int)
	errorCodeToStatusCodeMaps[ErrMalformedInput] = http.StatusBadRequest
	errorCodeToStatusCodeMaps[ErrPoolExhausted] = http.StatusServiceUnavailable
	errorCodeToStatusCodeMaps[ErrDownstreamUnavailable] = http.StatusServiceUnavailable
	errorCodeToStatusCodeMaps[ErrMalformedResponse] = http.StatusBadGateway
	errorCodeToStatusCodeMaps[ErrRequestTimeout] = http.StatusGatewayTimeout
	errorCodeToStatusCodeMaps[ErrEntityNotFound] = http.StatusNotFound
	errorCodeToStatusCodeMaps[ErrInternalServerError] = http.StatusInternalServerError

	return errorCodeToStatusCodeMaps
}

// HTTPErrorHandler is an error handler.
type HTTPErrorHandler struct {
	errorCodeToHTTPStatusCodeMap map[string]int
	logger                       log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(errorCodeToStatusCodeMaps map[string]int, logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		errorCodeToHTTPStatusCodeMap: errorCodeToStatusCodeMaps,
		logger:                       logger,
	}
}

func (h *HTTPErrorHandler) getStatusCode(errorCode string) int {
	status, ok := h.errorCodeToHTTPStatusCodeMap[errorCode]
	if ok {
		return status
	}

	return http.StatusInternalServerError
}

// httpStatusToCode names the error of a bare echo.HTTPError (routing, binding).
func httpStatusToCode(status int) string {
	switch {
	case status == http.StatusNotFound:
		return ErrEntityNotFound
	case status >= 400 && status < 500:
		return ErrMalformedInput
	default:
		return ErrInternalServerError
	}
}

// Handler handles error returned by echo Handlers.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	meshErr, ok := ToMeshError(err)
	if !ok {
		meshErr = NewInternalServerError("an internal server error has occurred", err)
	}

	var statusCode int
	var he *echo.HTTPError
	if errors.As(err, &he) && !ok {
		codeStr := httpStatusToCode(he.Code)
		if he.Internal != nil {
			if herr, ok := he.Internal.(*echo.HTTPError); ok {
				he = herr
			}
			var requestError *openapi3filter.RequestError
			if errors.As(he.Internal, &requestError) {
				codeStr = ErrMalformedInput
			}
		}

		m, _ := he.Message.(string)
		if m == "" {
			m = http.StatusText(he.Code)
		}
		meshErr = MeshError{Code: codeStr, Message: m, Inner: err}
		statusCode = he.Code
	} else {
		he = nil
		statusCode = h.getStatusCode(meshErr.Code)
	}

	if statusCode >= http.StatusInternalServerError {
		level.Error(h.logger).Log("msg", "HTTP request error", "path", c.Path(), "error_code", meshErr.Code, "err", err)
	} else {
		level.Info(h.logger).Log("msg", "HTTP request rejected", "path", c.Path(), "error_code", meshErr.Code, "err", err)
	}

	if c.Request().Method == http.MethodHead && he != nil {
		_ = c.NoContent(he.Code)
	} else {
		_ = c.JSON(statusCode, ErrResponse{Error: &meshErr})
	}
}

// ErrResponse from server.
type ErrResponse struct {
	Error *MeshError `json:"error,omitempty"`
}
