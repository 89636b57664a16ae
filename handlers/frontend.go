package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"hotelmesh/api"
	"hotelmesh/domain"
	"hotelmesh/helpers"
	"hotelmesh/interfaces"
	"hotelmesh/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc/metadata"
)

// Frontend is the HTTP edge of the mesh. Every endpoint accepts GET with query parameters or
// POST with a JSON body carrying the same field names.
type Frontend struct {
	search       interfaces.SearchService
	recommend    interfaces.RecommendationService
	users        interfaces.UserService
	reservations interfaces.ReservationService
	retry        service.RetryPolicy
	logger       log.Logger
}

// NewFrontend creates the frontend handlers. Panics on a nil service or logger.
func NewFrontend(
	search interfaces.SearchService,
	recommend interfaces.RecommendationService,
	users interfaces.UserService,
	reservations interfaces.ReservationService,
	retry service.RetryPolicy,
	logger log.Logger,
) *Frontend {
	return &Frontend{
		search:       helpers.NilPanic(search, "handlers.frontend.go: search is required"),
		recommend:    helpers.NilPanic(recommend, "handlers.frontend.go: recommend is required"),
		users:        helpers.NilPanic(users, "handlers.frontend.go: users is required"),
		reservations: helpers.NilPanic(reservations, "handlers.frontend.go: reservations is required"),
		retry:        retry,
		logger:       log.With(helpers.NilPanic(logger, "handlers.frontend.go: logger is required"), "component", "frontend"),
	}
}

type searchParams struct {
	CustomerName string  `query:"customerName" json:"customerName"`
	InDate       string  `query:"inDate" json:"inDate"`
	OutDate      string  `query:"outDate" json:"outDate"`
	Latitude     float64 `query:"latitude" json:"latitude"`
	Longitude    float64 `query:"longitude" json:"longitude"`
	Locale       string  `query:"locale" json:"locale"`
}

type recommendParams struct {
	Latitude  float64 `query:"latitude" json:"latitude"`
	Longitude float64 `query:"longitude" json:"longitude"`
	Require   string  `query:"require" json:"require"`
	Locale    string  `query:"locale" json:"locale"`
}

type userParams struct {
	Username string `query:"username" json:"username"`
	Password string `query:"password" json:"password"`
}

type reservationParams struct {
	CustomerName string `query:"customerName" json:"customerName"`
	HotelID      string `query:"hotelId" json:"hotelId"`
	InDate       string `query:"inDate" json:"inDate"`
	OutDate      string `query:"outDate" json:"outDate"`
	RoomNumber   int    `query:"roomNumber" json:"roomNumber"`
	Username     string `query:"username" json:"username"`
	Password     string `query:"password" json:"password"`
}

// MessageResponse is the body of /user.
type MessageResponse struct {
	Message string `json:"message"`
}

// ReservationResponse is the body of /reservation. Every business outcome is a 200.
type ReservationResponse struct {
	Message       string `json:"message"`
	Outcome       string `json:"outcome"`
	ReservationID string `json:"reservationId,omitempty"`
}

// Search handles /search.
func (f *Frontend) Search(c echo.Context) error {
	var p searchParams
	if err := c.Bind(&p); err != nil {
		return err
	}
	req := domain.SearchRequest{
		CustomerName: p.CustomerName,
		InDate:       p.InDate,
		OutDate:      p.OutDate,
		Origin:       domain.Point{Lat: p.Latitude, Lon: p.Longitude},
		Locale:       p.Locale,
	}
	hotels, err := service.Retry(meshContext(c), f.retry, "search", func(ctx context.Context) ([]domain.HotelProfile, error) {
		return f.search.Search(ctx, req)
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, api.FromProfiles(hotels))
}

// Recommend handles /recommend.
func (f *Frontend) Recommend(c echo.Context) error {
	var p recommendParams
	if err := c.Bind(&p); err != nil {
		return err
	}
	req := domain.RecommendationRequest{
		Origin:  domain.Point{Lat: p.Latitude, Lon: p.Longitude},
		Require: p.Require,
		Locale:  p.Locale,
	}
	hotels, err := service.Retry(meshContext(c), f.retry, "recommend", func(ctx context.Context) ([]domain.HotelProfile, error) {
		return f.recommend.Recommend(ctx, req)
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, api.FromProfiles(hotels))
}

// Register handles /user. Registration is retried only when no request reached the user
// service.
func (f *Frontend) Register(c echo.Context) error {
	var p userParams
	if err := c.Bind(&p); err != nil {
		return err
	}
	user := domain.User{Username: p.Username, Password: p.Password}
	outcome, err := service.Retry(meshContext(c), f.retry.Unsent(), "register", func(ctx context.Context) (domain.RegistrationOutcome, error) {
		return f.users.Register(ctx, user)
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: outcome.Message()})
}

// Reserve handles /reservation. Like Register it is retried only on local pool exhaustion, so
// a booking whose response was lost is never made twice.
func (f *Frontend) Reserve(c echo.Context) error {
	var p reservationParams
	if err := c.Bind(&p); err != nil {
		return err
	}
	req := domain.ReservationRequest{
		CustomerName: p.CustomerName,
		HotelID:      p.HotelID,
		InDate:       p.InDate,
		OutDate:      p.OutDate,
		Rooms:        p.RoomNumber,
		Username:     p.Username,
		Password:     p.Password,
	}
	res, err := service.Retry(meshContext(c), f.retry.Unsent(), "reserve", func(ctx context.Context) (domain.BookingResult, error) {
		return f.reservations.Reserve(ctx, req)
	})
	if err != nil {
		return err
	}
	if res.Outcome != domain.BookingConfirmed {
		level.Debug(f.logger).Log("msg", "reservation not confirmed", "hotel_id", req.HotelID, "outcome", res.Outcome)
	}
	return c.JSON(http.StatusOK, ReservationResponse{
		Message:       res.Message(),
		Outcome:       res.Outcome.String(),
		ReservationID: res.ReservationID,
	})
}

// meshContext carries the request id of c into outgoing mesh metadata.
func meshContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, helpers.HeaderRequestID, id)
	}
	return ctx
}

// FrontendOptions configures the middleware stack of the frontend server.
type FrontendOptions struct {
	// Workers bounds the number of requests served at once; 0 means unbounded.
	Workers int
	// Validator checks requests against the OpenAPI document; nil skips validation.
	Validator echo.MiddlewareFunc
	// Metrics records request counts and latencies and serves /metrics; nil disables both.
	Metrics *service.Metrics
}

// RegisterFrontend installs middleware and routes of f on e.
func RegisterFrontend(e *echo.Echo, f *Frontend, opts FrontendOptions) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	if opts.Metrics != nil {
		e.Use(metricsMiddleware(opts.Metrics))
	}
	if opts.Workers > 0 {
		e.Use(concurrencyLimit(int64(opts.Workers)))
	}
	if opts.Validator != nil {
		e.Use(opts.Validator)
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.Metrics != nil && opts.Metrics.Registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	for path, h := range map[string]echo.HandlerFunc{
		"/search":      f.Search,
		"/recommend":   f.Recommend,
		"/user":        f.Register,
		"/reservation": f.Reserve,
	} {
		e.GET(path, h)
		e.POST(path, h)
	}
}

// concurrencyLimit admits at most n requests at once; the rest wait for a slot until their
// request is cancelled.
func concurrencyLimit(n int64) echo.MiddlewareFunc {
	sem := semaphore.NewWeighted(n)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := sem.Acquire(c.Request().Context(), 1); err != nil {
				return service.NewPoolExhaustedError("frontend is at capacity", err)
			}
			defer sem.Release(1)
			return next(c)
		}
	}
}

func metricsMiddleware(m *service.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			m.ObserveHTTP(c.Request().Method, path, strconv.Itoa(c.Response().Status), time.Since(start))
			return nil
		}
	}
}
