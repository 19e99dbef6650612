package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/jnasution/hris-api/internal/domain"
)

// Locals key untuk identitas pemanggil di Fiber.
const LocalCallerID = "caller_id"

// CallerIdentity menentukan siapa pemanggil request. Identitas dipercaya
// apa adanya dari klien, tidak diverifikasi terhadap token; resolusinya
// dipusatkan di sini supaya handler cukup membaca GetCallerID.
//
// Urutan prioritas: header X-User-Id, query user_id, lalu body userId
// atau createdById.
func CallerIdentity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		callerID := c.Get("X-User-Id")
		if callerID == "" {
			callerID = c.Query("user_id")
		}
		if callerID == "" {
			callerID = callerFromBody(c.Body())
		}
		if callerID == "" {
			return writeError(c, nil, domain.ErrUnauthenticated)
		}
		c.Locals(LocalCallerID, callerID)
		return c.Next()
	}
}

// callerFromBody mengintip userId / createdById dari body JSON tanpa
// mengonsumsi body untuk handler berikutnya.
func callerFromBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var probe struct {
		UserID      string `json:"userId"`
		CreatedByID string `json:"createdById"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return ""
	}
	if probe.UserID != "" {
		return probe.UserID
	}
	return probe.CreatedByID
}

// GetCallerID identitas pemanggil dari context (setelah CallerIdentity).
func GetCallerID(c *fiber.Ctx) string {
	v := c.Locals(LocalCallerID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
