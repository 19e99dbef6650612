package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jnasution/hris-api/internal/application/dto"
	"github.com/jnasution/hris-api/internal/application/usecase"
	"github.com/jnasution/hris-api/internal/infrastructure/storage"
	"github.com/jnasution/hris-api/pkg/logger"
)

// UserHandler menangani CRUD user dan unggah foto profil.
type UserHandler struct {
	uc    *usecase.UserUseCase
	store *storage.LocalStore
	log   *logger.Logger
}

// NewUserHandler membangun handler.
func NewUserHandler(uc *usecase.UserUseCase, store *storage.LocalStore, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, store: store, log: log}
}

// List godoc
// @Summary      Daftar user
// @Tags         users
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detail user
// @Tags         users
// @Produce      json
// @Param        id   path  string  true  "ID user"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Buat user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Data user"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Body tidak valid"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Ubah user (parsial)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID user"
// @Param        body  body  dto.UpdateUserRequest  true  "Field yang diubah"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Body tidak valid"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Hapus user
// @Tags         users
// @Param        id   path  string  true  "ID user"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadPhoto godoc
// @Summary      Unggah foto profil user
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "ID user"
// @Param        foto  formData  file    true  "File gambar, maks 2MB"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/photo [post]
func (h *UserHandler) UploadPhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("foto")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "File foto wajib disertakan"})
	}
	publicPath, err := h.store.Save(fh, "users")
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.SetFoto(GetCallerID(c), c.Params("id"), publicPath)
	if err != nil {
		// file sudah tertulis; buang supaya tidak jadi sampah
		if rmErr := h.store.Remove(publicPath); rmErr != nil {
			h.log.Warn().Err(rmErr).Str("path", publicPath).Msg("hapus foto yatim gagal")
		}
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
