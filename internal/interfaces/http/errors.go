package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jnasution/hris-api/internal/application/dto"
	"github.com/jnasution/hris-api/internal/domain"
	"github.com/jnasution/hris-api/pkg/logger"
)

// messageFor mengambil pesan klien dari error yang dibungkus usecase
// dengan pola "<sentinel>: Pesan Klien". Tanpa pembungkus, pakai fallback.
func messageFor(err error, fallback string) string {
	s := err.Error()
	if idx := strings.Index(s, ": "); idx >= 0 {
		return s[idx+2:]
	}
	return fallback
}

// writeError memetakan sentinel domain ke status HTTP. Error tak dikenal
// dicatat dan dibalas generik supaya detail internal tidak bocor ke klien.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: messageFor(err, "User tidak ditemukan"),
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: messageFor(err, "Data tidak ditemukan"),
		})
	case errors.Is(err, domain.ErrNIKAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "NIK_EXISTS", Message: "NIK sudah terpakai",
		})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "EMAIL_EXISTS", Message: "Email sudah terpakai",
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: messageFor(err, "Input tidak valid"),
		})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: messageFor(err, "Akses ditolak"),
		})
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHENTICATED", Message: messageFor(err, "Identitas pemanggil wajib disertakan"),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: messageFor(err, "Email atau password salah"),
		})
	default:
		if log != nil {
			log.Error().Str("path", c.Path()).Err(err).Msg("internal error")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Terjadi kesalahan pada server",
		})
	}
}
