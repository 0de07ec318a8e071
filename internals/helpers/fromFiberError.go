package helper

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError mengubah error hasil service/Transaction (biasanya *fiber.Error)
// menjadi response JSON konsisten via helper.JsonError.
// Jika bukan *fiber.Error, fallback ke 500 dengan pesan generik (detail hanya di log).
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	log.Printf("[ERROR] internal: %v", err)
	return JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}
