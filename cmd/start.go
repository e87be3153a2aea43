package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"store-sync/core/loader"
	"store-sync/core/logger"
	"store-sync/core/middleware/auth"
	"store-sync/core/middleware/rayid"
	"store-sync/core/scheduler"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory sync server",
	Long: `Starts the HTTP server with the manual trigger endpoints and, in
production, the scheduled sync jobs.`,
	Run: func(cmd *cobra.Command, args []string) {
		application, err := buildApp()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := application.logger
		defer logg.Sync()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Public liveness endpoints
		app.Get("/", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"service": "store-sync"})
		})
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		// 4. Auth (Protect the manual endpoints)
		app.Use(auth.New(auth.Config{ApiKey: application.cfg.Server.ApiKey}))

		// 5. Load Features
		mgr := loader.NewManager()
		mgr.Register(application.labels)
		mgr.Register(application.reconcile)
		mgr.Register(application.locations)
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Scheduler (production only)
		var sched *scheduler.Scheduler
		if application.cfg.Server.IsProduction() {
			sched = newScheduler(application)
			sched.Start()
		} else {
			logg.Info("Scheduler disabled outside production",
				zap.String("env", application.cfg.Server.Env))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", application.cfg.Server.Port))
			if err := app.Listen(":" + application.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if sched != nil {
			sched.Stop()
		}
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
