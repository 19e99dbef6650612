package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jnasution/hris-api/internal/application/dto"
	"github.com/jnasution/hris-api/internal/application/usecase"
	"github.com/jnasution/hris-api/internal/infrastructure/storage"
	"github.com/jnasution/hris-api/pkg/logger"
)

// EmployeeHandler menangani CRUD karyawan, foto, dan ekspor biodata.
// Semua operasi berjalan atas identitas pemanggil dari CallerIdentity.
type EmployeeHandler struct {
	uc    *usecase.EmployeeUseCase
	pdfUC *usecase.BiodataPDFUseCase
	store *storage.LocalStore
	log   *logger.Logger
}

// NewEmployeeHandler membangun handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, pdfUC *usecase.BiodataPDFUseCase, store *storage.LocalStore, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, pdfUC: pdfUC, store: store, log: log}
}

// List godoc
// @Summary      Daftar karyawan yang terlihat oleh pemanggil
// @Tags         employees
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.EmployeeListResponse
// @Router       /api/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(GetCallerID(c), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detail karyawan beserta pendidikan, pekerjaan, keluarga
// @Tags         employees
// @Produce      json
// @Param        id   path  string  true  "ID karyawan"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetCallerID(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Buat karyawan
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Data karyawan"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Body tidak valid"})
	}
	out, err := h.uc.Create(GetCallerID(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Ubah karyawan (parsial)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID karyawan"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "Field yang diubah"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Body tidak valid"})
	}
	out, err := h.uc.Update(GetCallerID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Hapus karyawan beserta seluruh data anaknya
// @Tags         employees
// @Param        id   path  string  true  "ID karyawan"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetCallerID(c), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadPhoto godoc
// @Summary      Unggah foto karyawan
// @Tags         employees
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "ID karyawan"
// @Param        foto  formData  file    true  "File gambar, maks 2MB"
// @Success      200   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/photo [post]
func (h *EmployeeHandler) UploadPhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("foto")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "File foto wajib disertakan"})
	}
	publicPath, err := h.store.Save(fh, "employees")
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.SetFoto(GetCallerID(c), c.Params("id"), publicPath)
	if err != nil {
		if rmErr := h.store.Remove(publicPath); rmErr != nil {
			h.log.Warn().Err(rmErr).Str("path", publicPath).Msg("hapus foto yatim gagal")
		}
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Unduh biodata karyawan sebagai PDF
// @Tags         employees
// @Produce      application/pdf
// @Param        id   path  string  true  "ID karyawan"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employees/{id}/pdf [get]
func (h *EmployeeHandler) DownloadPDF(c *fiber.Ctx) error {
	data, filename, err := h.pdfUC.Download(c.Context(), GetCallerID(c), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
