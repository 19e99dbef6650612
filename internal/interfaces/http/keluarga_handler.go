package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jnasution/hris-api/internal/application/dto"
	"github.com/jnasution/hris-api/internal/application/usecase"
	"github.com/jnasution/hris-api/pkg/logger"
)

// KeluargaHandler menangani anggota keluarga di bawah satu karyawan.
type KeluargaHandler struct {
	uc  *usecase.KeluargaUseCase
	log *logger.Logger
}

// NewKeluargaHandler membangun handler.
func NewKeluargaHandler(uc *usecase.KeluargaUseCase, log *logger.Logger) *KeluargaHandler {
	return &KeluargaHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Daftar anggota keluarga karyawan
// @Tags         keluarga
// @Produce      json
// @Param        employeeId  path  string  true  "ID karyawan"
// @Success      200  {array}   dto.KeluargaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{employeeId}/keluarga [get]
func (h *KeluargaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCallerID(c), c.Params("employeeId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Tambah anggota keluarga
// @Tags         keluarga
// @Accept       json
// @Produce      json
// @Param        employeeId  path  string  true  "ID karyawan"
// @Param        body  body  dto.CreateKeluargaRequest  true  "Data keluarga"
// @Success      201  {object}  dto.KeluargaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{employeeId}/keluarga [post]
func (h *KeluargaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateKeluargaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Body tidak valid"})
	}
	out, err := h.uc.Create(GetCallerID(c), c.Params("employeeId"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Ubah anggota keluarga
// @Tags         keluarga
// @Accept       json
// @Produce      json
// @Param        employeeId  path  string  true  "ID karyawan"
// @Param        id          path  string  true  "ID anggota keluarga"
// @Param        body  body  dto.UpdateKeluargaRequest  true  "Field yang diubah"
// @Success      200  {object}  dto.KeluargaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{employeeId}/keluarga/{id} [put]
func (h *KeluargaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateKeluargaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Body tidak valid"})
	}
	out, err := h.uc.Update(GetCallerID(c), c.Params("employeeId"), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Hapus anggota keluarga
// @Tags         keluarga
// @Param        employeeId  path  string  true  "ID karyawan"
// @Param        id          path  string  true  "ID anggota keluarga"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{employeeId}/keluarga/{id} [delete]
func (h *KeluargaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCallerID(c), c.Params("employeeId"), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
