package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/gofiber/swagger"

	_ "github.com/jnasution/hris-api/docs"
	"github.com/jnasution/hris-api/internal/application/auth"
	"github.com/jnasution/hris-api/internal/application/usecase"
	"github.com/jnasution/hris-api/internal/domain/access"
	infrapdf "github.com/jnasution/hris-api/internal/infrastructure/pdf"
	"github.com/jnasution/hris-api/internal/infrastructure/postgres"
	"github.com/jnasution/hris-api/internal/infrastructure/storage"
	httpRouter "github.com/jnasution/hris-api/internal/interfaces/http"
	"github.com/jnasution/hris-api/pkg/config"
	"github.com/jnasution/hris-api/pkg/logger"
)

// @title        HRIS API
// @version      1.0
// @description  Backend kepegawaian: user, karyawan, riwayat pendidikan, pekerjaan, dan keluarga.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("muat konfigurasi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("scoped", cfg.Access.Scoped).
		Msg("memulai aplikasi")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("koneksi PostgreSQL")
	}
	defer pool.Close()

	store, err := storage.NewLocalStore(cfg.Upload.Dir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("direktori upload")
	}

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	pendidikanRepo := postgres.NewPendidikanRepository(pool)
	pekerjaanRepo := postgres.NewPekerjaanRepository(pool)
	keluargaRepo := postgres.NewKeluargaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	policy := access.ForScoped(cfg.Access.Scoped)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, store, log)
	employeeUC := usecase.NewEmployeeUseCase(
		employeeRepo, pendidikanRepo, pekerjaanRepo, keluargaRepo,
		userRepo, policy, txRunner, store, log,
	)
	pendidikanUC := usecase.NewPendidikanUseCase(employeeRepo, pendidikanRepo, policy)
	pekerjaanUC := usecase.NewPekerjaanUseCase(employeeRepo, pekerjaanRepo, policy)
	keluargaUC := usecase.NewKeluargaUseCase(employeeRepo, keluargaRepo, policy)

	pdfGenerator := infrapdf.NewMarotoBiodataGenerator()
	biodataPDFUC := usecase.NewBiodataPDFUseCase(
		employeeRepo, pendidikanRepo, pekerjaanRepo, keluargaRepo, policy, pdfGenerator,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    4 << 20, // batas multipart; validasi 2MB per file ada di storage
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(fiberlogger.New())

	// Foto disajikan statis dari direktori upload
	app.Static("/uploads", store.Root())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Swagger UI: http://localhost:<port>/docs/index.html
	app.Get("/docs/*", fiberSwagger.HandlerDefault)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		EmployeeUC:   employeeUC,
		PendidikanUC: pendidikanUC,
		PekerjaanUC:  pekerjaanUC,
		KeluargaUC:   keluargaUC,
		BiodataPDF:   biodataPDFUC,
		Store:        store,
		Log:          log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP berhenti")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinyal shutdown diterima, menutup server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}

	log.Info().Msg("aplikasi berhenti")
}
