package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jnasution/hris-api/internal/application/dto"
	"github.com/jnasution/hris-api/internal/application/usecase"
	"github.com/jnasution/hris-api/pkg/logger"
)

// PendidikanHandler menangani riwayat pendidikan di bawah satu karyawan.
type PendidikanHandler struct {
	uc  *usecase.PendidikanUseCase
	log *logger.Logger
}

// NewPendidikanHandler membangun handler.
func NewPendidikanHandler(uc *usecase.PendidikanUseCase, log *logger.Logger) *PendidikanHandler {
	return &PendidikanHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Daftar riwayat pendidikan karyawan
// @Tags         pendidikan
// @Produce      json
// @Param        employeeId  path  string  true  "ID karyawan"
// @Success      200  {array}   dto.PendidikanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{employeeId}/pendidikan [get]
func (h *PendidikanHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetCallerID(c), c.Params("employeeId"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Tambah riwayat pendidikan
// @Tags         pendidikan
// @Accept       json
// @Produce      json
// @Param        employeeId  path  string  true  "ID karyawan"
// @Param        body  body  dto.CreatePendidikanRequest  true  "Data pendidikan"
// @Success      201  {object}  dto.PendidikanResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{employeeId}/pendidikan [post]
func (h *PendidikanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePendidikanRequest
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
// @Summary      Ubah riwayat pendidikan
// @Tags         pendidikan
// @Accept       json
// @Produce      json
// @Param        employeeId  path  string  true  "ID karyawan"
// @Param        id          path  string  true  "ID pendidikan"
// @Param        body  body  dto.UpdatePendidikanRequest  true  "Field yang diubah"
// @Success      200  {object}  dto.PendidikanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{employeeId}/pendidikan/{id} [put]
func (h *PendidikanHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePendidikanRequest
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
// @Summary      Hapus riwayat pendidikan
// @Tags         pendidikan
// @Param        employeeId  path  string  true  "ID karyawan"
// @Param        id          path  string  true  "ID pendidikan"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{employeeId}/pendidikan/{id} [delete]
func (h *PendidikanHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetCallerID(c), c.Params("employeeId"), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
