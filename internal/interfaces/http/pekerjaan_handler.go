package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jnasution/hris-api/internal/application/dto"
	"github.com/jnasution/hris-api/internal/application/usecase"
	"github.com/jnasution/hris-api/pkg/logger"
)

// PekerjaanHandler menangani riwayat pekerjaan di bawah satu karyawan.
type PekerjaanHandler struct {
	uc  *usecase.PekerjaanUseCase
	log *logger.Logger
}

// NewPekerjaanHandler membangun handler.
func NewPekerjaanHandler(uc *usecase.PekerjaanUseCase, log *logger.Logger) *PekerjaanHandler {
	return &PekerjaanHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Daftar riwayat pekerjaan karyawan
// @Tags         pekerjaan
// @Produce      json
// @Param        employeeId  path  string  true  "ID karyawan"
// @Success      200  {array}   dto.PekerjaanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{employeeId}/pekerjaan [get]
func (h *PekerjaanHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCallerID(c), c.Params("employeeId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Tambah riwayat pekerjaan
// @Tags         pekerjaan
// @Accept       json
// @Produce      json
// @Param        employeeId  path  string  true  "ID karyawan"
// @Param        body  body  dto.CreatePekerjaanRequest  true  "Data pekerjaan"
// @Success      201  {object}  dto.PekerjaanResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{employeeId}/pekerjaan [post]
func (h *PekerjaanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePekerjaanRequest
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
// @Summary      Ubah riwayat pekerjaan
// @Tags         pekerjaan
// @Accept       json
// @Produce      json
// @Param        employeeId  path  string  true  "ID karyawan"
// @Param        id          path  string  true  "ID pekerjaan"
// @Param        body  body  dto.UpdatePekerjaanRequest  true  "Field yang diubah"
// @Success      200  {object}  dto.PekerjaanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{employeeId}/pekerjaan/{id} [put]
func (h *PekerjaanHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePekerjaanRequest
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
// @Summary      Hapus riwayat pekerjaan
// @Tags         pekerjaan
// @Param        employeeId  path  string  true  "ID karyawan"
// @Param        id          path  string  true  "ID pekerjaan"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{employeeId}/pekerjaan/{id} [delete]
func (h *PekerjaanHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCallerID(c), c.Params("employeeId"), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
