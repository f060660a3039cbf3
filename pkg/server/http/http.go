/*
Copyright 2026 The nagare media authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/inhies/go-bytesize"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/nagare-media/playback/internal/uuid"
	"github.com/nagare-media/playback/pkg/config/v1alpha1"
	"github.com/nagare-media/playback/pkg/event"
	"github.com/nagare-media/playback/pkg/http"
	"github.com/nagare-media/playback/pkg/source"
)

const (
	DefaultNetwork     = "tcp"
	DefaultAddress     = ":8880"
	DefaultIdleTimeout = 75 * time.Second
	DefaultMaxBodySize = 1 * bytesize.MB
)

// Server exposes the source description resolver over HTTP.
type Server struct {
	cfg      v1alpha1.Config
	app      *fiber.App
	resolver *source.Resolver
	events   event.Stream
	allow    *Allowlist
	log      *zap.SugaredLogger
}

type errorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func New(cfg v1alpha1.Config, resolver *source.Resolver, events event.Stream, log *zap.SugaredLogger) (*Server, error) {
	if resolver == nil {
		return nil, errors.New("http.New: resolver is missing")
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if cfg.Server.Network == "" {
		cfg.Server.Network = DefaultNetwork
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = DefaultAddress
	}
	httpCfg := cfg.Server.HTTP
	if httpCfg == nil {
		httpCfg = &v1alpha1.HTTPServer{}
	}
	if httpCfg.IdleTimeout <= 0 {
		httpCfg.IdleTimeout = DefaultIdleTimeout
	}
	if httpCfg.MaxBodySize <= 0 {
		httpCfg.MaxBodySize = DefaultMaxBodySize
	}
	cfg.Server.HTTP = httpCfg

	allow, err := NewAllowlist(httpCfg.AllowedSources)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:      cfg,
		resolver: resolver,
		events:   events,
		allow:    allow,
		log:      log,
	}

	app := fiber.New(fiber.Config{
		ServerHeader:          "nagare media playback",
		AppName:               cfg.Server.Name,
		DisableStartupMessage: true,
		Network:               cfg.Server.Network,
		IdleTimeout:           httpCfg.IdleTimeout,
		BodyLimit:             int(httpCfg.MaxBodySize),
		ErrorHandler:          s.handleError,
	})

	// telemetry middleware
	app.Use(func(c *fiber.Ctx) error {
		responseStart := time.Now()
		err := c.Next()
		responseTime := time.Since(responseStart)

		if s.log.Desugar().Core().Enabled(zap.DebugLevel) {
			status := c.Response().StatusCode()
			if err != nil {
				if e, ok := err.(*fiber.Error); ok {
					status = e.Code
				}
			}

			s.log.Debugw(
				fmt.Sprintf("%d %s %s%s", status, c.Method(), c.Hostname(), c.Path()),
				"remoteAddr", c.Context().RemoteAddr(),
				"method", c.Method(),
				"path", c.Path(),
				"userAgent", string(c.Request().Header.UserAgent()),
				"status", status,
				"responseTime", responseTime,
				"requestID", http.RequestID(c),
			)
		}
		return err
	})

	// request ID
	app.Use(requestid.New(requestid.Config{
		ContextKey: http.RequestIDKey,
		Generator:  uuid.UUIDv4,
	}))

	// auth
	if httpCfg.Auth != nil && httpCfg.Auth.Basic != nil {
		users := make(map[string]string)
		for _, u := range httpCfg.Auth.Basic.Users {
			users[u.Name] = u.Password
		}
		app.Use(basicauth.New(basicauth.Config{Users: users}))
	}

	// CORS
	if httpCfg.CORS != nil {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     httpCfg.CORS.AllowOrigins,
			AllowMethods:     httpCfg.CORS.AllowMethods,
			AllowHeaders:     httpCfg.CORS.AllowHeaders,
			AllowCredentials: httpCfg.CORS.AllowCredentials,
			ExposeHeaders:    httpCfg.CORS.ExposeHeaders,
			MaxAge:           httpCfg.CORS.MaxAge,
		}))
	}

	app.Get("/healthz", http.NoContentHandler)
	app.Post("/v1/source-description", s.handleResolve)

	s.app = app
	return s, nil
}

func (s *Server) handleResolve(c *fiber.Ctx) error {
	requestID := http.RequestID(c)

	var raw any
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "request body is not valid JSON")
	}

	desc, err := s.resolver.Resolve(raw)
	if err != nil {
		s.publish(event.NewResolveFailedEvent(requestID, string(source.CodeOf(err)), err.Error()))
		return err
	}

	if err := s.allow.Check(desc); err != nil {
		s.publish(event.NewResolveFailedEvent(requestID, "", err.Error()))
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	s.publish(event.NewSourceResolvedEvent(requestID, len(desc.Sources), len(desc.Ads), len(desc.TextTracks)))
	return c.JSON(desc)
}

// handleError maps resolver failures to HTTP responses: typed ad and SSAI
// errors become 422 with their code, structural failures 400.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	var adErr *source.AdError
	if errors.As(err, &adErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(errorResponse{
			Code:    string(adErr.Code),
			Message: adErr.Message,
		})
	}

	if errors.Is(err, source.ErrNotAMapping) || errors.Is(err, source.ErrNoSources) {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Message: err.Error()})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(errorResponse{Message: fiberErr.Message})
	}

	s.log.Errorw("unhandled error", "error", err, "requestID", http.RequestID(c))
	code := fiber.StatusInternalServerError
	return c.Status(code).JSON(errorResponse{Message: fasthttp.StatusMessage(code)})
}

func (s *Server) publish(e event.Event) {
	if s.events != nil {
		s.events.Pub(e)
	}
}

// Listen serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Listen(ctx context.Context) error {
	var err error
	listenDone := make(chan struct{})
	go func() {
		s.log.Infof("start listening on %s %s", s.cfg.Server.Network, s.cfg.Server.Address)
		err = s.app.Listen(s.cfg.Server.Address)
		close(listenDone)
	}()

	select {
	case <-listenDone:
		// stopped listening, but ctx is still running
		s.log.Errorw(fmt.Sprintf("unexpectedly stopped listening on %s %s", s.cfg.Server.Network, s.cfg.Server.Address), "error", err)
		return err
	case <-ctx.Done():
		s.log.Infof("stopped listening on %s %s", s.cfg.Server.Network, s.cfg.Server.Address)
		return s.app.Shutdown()
	}
}
