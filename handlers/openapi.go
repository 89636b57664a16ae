package handlers

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed frontend.openapi.yaml
var frontendDocument []byte

// LoadFrontendDocument parses and validates the embedded frontend OpenAPI document.
func LoadFrontendDocument() (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(frontendDocument)
	if err != nil {
		return nil, fmt.Errorf("load frontend openapi document: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate frontend openapi document: %w", err)
	}
	return doc, nil
}

// OpenAPIValidator returns a middleware that validates query parameters and JSON bodies of
// documented routes against doc. Undocumented paths (health, metrics) pass through to echo's
// router. A failed validation is an *echo.HTTPError 400 wrapping the
// *openapi3filter.RequestError, which the error handler reports as malformed_input.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	return validateWith(router), nil
}

func validateWith(router routers.Router) echo.MiddlewareFunc {
	options := &openapi3filter.Options{
		MultiError:         false,
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}
			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
			}
			return next(c)
		}
	}
}
