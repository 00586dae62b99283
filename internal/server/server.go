package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/ellieharper/otj/internal/domain"
)

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr string
}

// Server exposes the journal store over HTTP for local development. The
// wire format matches what the api client package expects, including the
// {"message": "..."} error envelope.
type Server struct {
	app   *fiber.App
	store *Store
	cfg   Config
	log   *logrus.Logger
}

// NewServer wires handlers and middleware.
func NewServer(cfg Config, store *Store, log *logrus.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Format: "${time} | ${status} | ${latency} | ${method} ${path}\n"}))
	app.Use(cors.New())

	srv := &Server{app: app, store: store, cfg: cfg, log: log}
	srv.registerRoutes()
	return srv
}

// errorHandler renders every error as the JSON envelope clients parse.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"message": err.Error()})
}

// Run starts listening for HTTP traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()

	s.log.WithField("addr", s.cfg.Addr).Info("journal store listening")
	return s.app.Listen(s.cfg.Addr)
}

// App returns the underlying Fiber application, used by tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	s.app.Get("/entries", s.handleListEntries)
	s.app.Post("/entries", s.handleCreateEntry)
	s.app.Get("/entries/:id", s.handleGetEntry)
	s.app.Put("/entries/:id", s.handleUpdateEntry)
	s.app.Delete("/entries/:id", s.handleDeleteEntry)

	s.app.Get("/holidays", s.handleListHolidays)
	s.app.Post("/holidays", s.handleCreateHoliday)
	s.app.Put("/holidays/:id", s.handleUpdateHoliday)

	s.app.Get("/ksbs", s.handleListKSBs)
	s.app.Get("/ksbs/type/:type", s.handleListKSBsByType)
}

func (s *Server) handleListEntries(c *fiber.Ctx) error {
	entries, err := s.store.ListEntries(c.UserContext())
	if err != nil {
		s.log.WithError(err).Error("listing entries")
		return fiber.NewError(fiber.StatusInternalServerError, "could not list entries")
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return c.JSON(entries)
}

func (s *Server) handleGetEntry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid entry id")
	}
	entry, err := s.store.GetEntry(c.UserContext(), int64(id))
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "entry not found")
	}
	if err != nil {
		s.log.WithError(err).Error("loading entry")
		return fiber.NewError(fiber.StatusInternalServerError, "could not load entry")
	}
	return c.JSON(entry)
}

func (s *Server) handleCreateEntry(c *fiber.Ctx) error {
	payload, err := parseEntryPayload(c)
	if err != nil {
		return err
	}
	entry, err := s.store.CreateEntry(c.UserContext(), payload)
	if err != nil {
		s.log.WithError(err).Error("creating entry")
		return fiber.NewError(fiber.StatusInternalServerError, "could not create entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (s *Server) handleUpdateEntry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid entry id")
	}
	payload, err := parseEntryPayload(c)
	if err != nil {
		return err
	}
	entry, err := s.store.UpdateEntry(c.UserContext(), int64(id), payload)
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "entry not found")
	}
	if err != nil {
		s.log.WithError(err).Error("updating entry")
		return fiber.NewError(fiber.StatusInternalServerError, "could not update entry")
	}
	return c.JSON(entry)
}

func (s *Server) handleDeleteEntry(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid entry id")
	}
	err = s.store.DeleteEntry(c.UserContext(), int64(id))
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "entry not found")
	}
	if err != nil {
		s.log.WithError(err).Error("deleting entry")
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete entry")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseEntryPayload(c *fiber.Ctx) (domain.EntryPayload, error) {
	var payload domain.EntryPayload
	if err := c.BodyParser(&payload); err != nil {
		return payload, fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if payload.Title == "" {
		return payload, fiber.NewError(fiber.StatusBadRequest, "title is required")
	}
	if payload.Category == "" {
		return payload, fiber.NewError(fiber.StatusBadRequest, "category is required")
	}
	if payload.Date.IsZero() {
		return payload, fiber.NewError(fiber.StatusBadRequest, "date is required")
	}
	return payload, nil
}

func (s *Server) handleListHolidays(c *fiber.Ctx) error {
	records, err := s.store.ListHolidays(c.UserContext())
	if err != nil {
		s.log.WithError(err).Error("listing holidays")
		return fiber.NewError(fiber.StatusInternalServerError, "could not list holiday records")
	}
	if records == nil {
		records = []domain.HolidayRecord{}
	}
	return c.JSON(records)
}

func (s *Server) handleCreateHoliday(c *fiber.Ctx) error {
	var payload domain.HolidayPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if payload.ApprenticeID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "apprenticeId is required")
	}
	record, err := s.store.CreateHoliday(c.UserContext(), payload)
	if err != nil {
		s.log.WithError(err).Error("creating holiday record")
		return fiber.NewError(fiber.StatusInternalServerError, "could not create holiday record")
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (s *Server) handleUpdateHoliday(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid holiday record id")
	}
	var payload domain.HolidayPayload
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	record, err := s.store.UpdateHoliday(c.UserContext(), int64(id), payload)
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "holiday record not found")
	}
	if err != nil {
		s.log.WithError(err).Error("updating holiday record")
		return fiber.NewError(fiber.StatusInternalServerError, "could not update holiday record")
	}
	return c.JSON(record)
}

func (s *Server) handleListKSBs(c *fiber.Ctx) error {
	tags, err := s.store.ListKSBs(c.UserContext())
	if err != nil {
		s.log.WithError(err).Error("listing ksbs")
		return fiber.NewError(fiber.StatusInternalServerError, "could not list ksbs")
	}
	return c.JSON(tags)
}

func (s *Server) handleListKSBsByType(c *fiber.Ctx) error {
	typ := domain.KSBType(c.Params("type"))
	switch typ {
	case domain.KSBKnowledge, domain.KSBSkill, domain.KSBBehaviour:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unknown ksb type")
	}
	tags, err := s.store.ListKSBsByType(c.UserContext(), typ)
	if err != nil {
		s.log.WithError(err).Error("listing ksbs by type")
		return fiber.NewError(fiber.StatusInternalServerError, "could not list ksbs")
	}
	if tags == nil {
		tags = []domain.KSBTag{}
	}
	return c.JSON(tags)
}
