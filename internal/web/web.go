package web

import (
	"errors"
	"strconv"
	"time"

	"github.com/goserg/ratingcalc/internal/config"
	"github.com/goserg/ratingcalc/internal/service"
	"github.com/goserg/ratingcalc/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

var ErrBadRating = errors.New("rating query parameter must be a number")

type Server struct {
	matchService *service.MatchService
	app          *fiber.App
	cfg          config.Server
	log          *logrus.Logger
}

func New(ms *service.MatchService, cfg config.Server, log *logrus.Logger) *Server {
	server := Server{
		matchService: ms,
		cfg:          cfg,
		log:          log,
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: !cfg.Debug,
		ErrorHandler:          server.handleError,
	})
	app.Use(server.requestLogger)

	app.Get(webpath.ApiKFactor, server.handleKFactor)
	app.Get(webpath.ApiBounds, server.handleBounds)
	app.Post(webpath.ApiExpected, server.handleExpected)
	app.Post(webpath.ApiRating, server.handleRating)
	app.Post(webpath.ApiMatch, server.handleMatch)
	server.app = app
	return &server
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) requestLogger(ctx *fiber.Ctx) error {
	id := ctx.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	ctx.Set(requestIDHeader, id)

	start := time.Now()
	err := ctx.Next()
	entry := s.log.WithFields(logrus.Fields{
		"request_id": id,
		"method":     ctx.Method(),
		"path":       ctx.Path(),
		"status":     responseStatus(ctx, err),
		"latency":    time.Since(start),
	})
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Debug("request")
	return err
}

// responseStatus is the status the error handler will write for err.
func responseStatus(ctx *fiber.Ctx, err error) int {
	if err == nil {
		return ctx.Response().StatusCode()
	}
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return ferr.Code
	}
	return fiber.StatusInternalServerError
}

func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	code := responseStatus(ctx, err)
	if code >= fiber.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	return ctx.Status(code).JSON(newErrorResponse(err))
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(newErrorResponse(err))
}

func (s *Server) handleKFactor(ctx *fiber.Ctx) error {
	var rating float64
	if q := ctx.Query("rating"); q != "" {
		r, err := strconv.ParseFloat(q, 64)
		if err != nil {
			return badRequest(ctx, ErrBadRating)
		}
		rating = r
	}
	resp := kFactorResponse{Rating: rating}
	if k, ok := s.matchService.KFactor(rating); ok {
		resp.KFactor = &k
	}
	return ctx.JSON(resp)
}

func (s *Server) handleBounds(ctx *fiber.Ctx) error {
	calc := s.matchService.Calculator()
	return ctx.JSON(boundsResponse{
		Min: finite(calc.Min()),
		Max: finite(calc.Max()),
	})
}

func (s *Server) handleExpected(ctx *fiber.Ctx) error {
	var req expectedRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err)
	}
	a, b := s.matchService.Expected(req.Rating, req.OpponentRating)
	return ctx.JSON(expectedResponse{Expected: [2]float64{a, b}})
}

func (s *Server) handleRating(ctx *fiber.Ctx) error {
	var req ratingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err)
	}
	rating := s.matchService.NewRating(req.ExpectedScore, req.ActualScore, req.PreviousRating)
	return ctx.JSON(ratingResponse{Rating: rating})
}

func (s *Server) handleMatch(ctx *fiber.Ctx) error {
	var req matchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := req.Validate(); err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(s.matchService.Evaluate(req.convertToDomainMatch()))
}
