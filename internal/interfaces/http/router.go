package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jnasution/hris-api/internal/application/auth"
	"github.com/jnasution/hris-api/internal/application/usecase"
	"github.com/jnasution/hris-api/internal/infrastructure/storage"
	"github.com/jnasution/hris-api/pkg/logger"
)

// RouterDeps dependensi untuk router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	PendidikanUC *usecase.PendidikanUseCase
	PekerjaanUC  *usecase.PekerjaanUseCase
	KeluargaUC   *usecase.KeluargaUseCase
	BiodataPDF   *usecase.BiodataPDFUseCase
	Store        *storage.LocalStore
	Log          *logger.Logger
}

// Router mendaftarkan seluruh rute API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (publik)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rute lain butuh identitas pemanggil
	protected := api.Group("/", CallerIdentity())

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Store, deps.Log)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
	users.Post("/:id/photo", userHandler.UploadPhoto)

	// Employees
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.BiodataPDF, deps.Store, deps.Log)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Post("/:id/photo", employeeHandler.UploadPhoto)
	employees.Get("/:id/pdf", employeeHandler.DownloadPDF)

	// Pendidikan (nested di bawah employee)
	pendidikan := employees.Group("/:employeeId/pendidikan")
	pendidikanHandler := NewPendidikanHandler(deps.PendidikanUC, deps.Log)
	pendidikan.Get("/", pendidikanHandler.List)
	pendidikan.Post("/", pendidikanHandler.Create)
	pendidikan.Put("/:id", pendidikanHandler.Update)
	pendidikan.Delete("/:id", pendidikanHandler.Delete)

	// Pekerjaan
	pekerjaan := employees.Group("/:employeeId/pekerjaan")
	pekerjaanHandler := NewPekerjaanHandler(deps.PekerjaanUC, deps.Log)
	pekerjaan.Get("/", pekerjaanHandler.List)
	pekerjaan.Post("/", pekerjaanHandler.Create)
	pekerjaan.Put("/:id", pekerjaanHandler.Update)
	pekerjaan.Delete("/:id", pekerjaanHandler.Delete)

	// Keluarga
	keluarga := employees.Group("/:employeeId/keluarga")
	keluargaHandler := NewKeluargaHandler(deps.KeluargaUC, deps.Log)
	keluarga.Get("/", keluargaHandler.List)
	keluarga.Post("/", keluargaHandler.Create)
	keluarga.Put("/:id", keluargaHandler.Update)
	keluarga.Delete("/:id", keluargaHandler.Delete)
}
