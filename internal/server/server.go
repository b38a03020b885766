// Package server boots the application: configuration, storage, cache,
// queue workers, event listeners and the HTTP surface.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/controllers"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/graph"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/jobs"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/models"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/repositories"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/routes"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/app/services"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/config"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/database/seeders"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/cache"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/event"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/logger"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/queue"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/router"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/storage"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/store"
	"github.com/MR-CodersHub/Travel-Agency-Webapp/pkg/ws"

	"github.com/MR-CodersHub/Travel-Agency-Webapp/internal/kernel"
)

// App holds the booted application graph.
type App struct {
	Store  store.Store
	Router *router.Router
	Hub    *ws.Hub

	Auth         *services.AuthService
	Bookings     *services.BookingService
	Admin        *services.AdminService
	Messages     *services.MessageService
	Destinations *services.DestinationService
}

// Boot loads configuration and wires repositories, services, workers and
// routes. It does not start listening; Start does that.
func Boot(ctx context.Context) (*App, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	logger.Setup()

	st, err := store.Connect()
	if err != nil {
		return nil, err
	}
	// First-run convenience: a store that has never held users gets the
	// bootstrap admin and demo accounts without a manual seed step.
	if err := seeders.RunIfEmpty(st); err != nil {
		return nil, err
	}
	if err := cache.Connect(); err != nil {
		logger.Warn("boot: cache unavailable, running without it", "error", err)
	}
	storage.Connect()

	jobs.RegisterAll()
	if config.QueueDriver() == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr(),
			Password: config.RedisPassword(),
		})
		queue.SetDriver(queue.NewRedisDriver(client, "terraquest:queue"))
	}
	queue.StartWorkers(ctx, config.QueueWorkers())

	userRepo := repositories.NewUserRepository(st)
	bookingRepo := repositories.NewBookingRepository(st)
	messageRepo := repositories.NewMessageRepository(st)
	sessionRepo := repositories.NewSessionRepository(st)

	app := &App{
		Store:        st,
		Hub:          ws.NewHub(),
		Auth:         services.NewAuthService(userRepo, sessionRepo),
		Bookings:     services.NewBookingService(bookingRepo, userRepo, sessionRepo),
		Admin:        services.NewAdminService(userRepo, bookingRepo),
		Messages:     services.NewMessageService(messageRepo),
		Destinations: services.NewDestinationService(),
	}
	app.registerListeners()

	schema, err := graph.NewSchema(app.Admin, app.Bookings, app.Messages)
	if err != nil {
		return nil, err
	}

	app.Router = kernel.NewHTTPKernel()
	routes.RegisterAPI(app.Router, routes.Deps{
		Auth:         controllers.NewAuthController(app.Auth),
		Bookings:     controllers.NewBookingController(app.Bookings),
		Admin:        controllers.NewAdminController(app.Admin, app.Bookings, app.Messages),
		Messages:     controllers.NewMessageController(app.Messages),
		Destinations: controllers.NewDestinationController(app.Destinations),
		AdminFeed:    app.Hub,
		GraphQL:      graph.Handler(schema),
	})
	return app, nil
}

// registerListeners forwards domain events to the admin live feed.
func (a *App) registerListeners() {
	event.Listen("user.registered", func(payload interface{}) {
		if u, ok := payload.(models.User); ok {
			a.Hub.Broadcast("user.registered", map[string]any{
				"id": u.ID, "name": u.Name, "email": u.Email,
			})
		}
	})
	event.Listen("booking.created", func(payload interface{}) {
		if b, ok := payload.(models.Booking); ok {
			a.Hub.Broadcast("booking.created", b)
		}
	})
	event.Listen("message.received", func(payload interface{}) {
		if m, ok := payload.(models.ContactMessage); ok {
			a.Hub.Broadcast("message.received", map[string]any{
				"id": m.ID, "name": m.Name, "subject": m.Subject,
			})
		}
	})
	event.Listen("user.deleted", func(payload interface{}) {
		if u, ok := payload.(models.User); ok {
			a.Hub.Broadcast("user.deleted", map[string]any{"id": u.ID})
		}
	})
}

// Start boots the app and serves HTTP until SIGINT/SIGTERM, then shuts
// down gracefully.
func Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := Boot(ctx)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           app.Router.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http: listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("http: shutting down", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	event.Flush()
	return nil
}
