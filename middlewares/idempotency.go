package middlewares

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"dentalflow-backend/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	anonymous         = "anonymous"
	idempotencyHeader = "Idempotency-Key"
	replayedHeader    = "Idempotent-Replayed"
)

// Idempotency processes Idempotency-Key for mutating HTTP methods. The first
// completed response for a key is stored and replayed for identical retries.
// Reusing a key for a different request, or while the first request is still
// running, is a conflict. Records are written outside the request TX so they
// survive its rollback.
func Idempotency(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		method := strings.ToUpper(c.Method())
		if !isMutating(method) {
			return c.Next()
		}

		key := strings.TrimSpace(c.Get(idempotencyHeader))
		if key == "" {
			return c.Next()
		}
		if len(key) > 128 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Idempotency-Key too long"})
		}

		principal := anonymous
		if p := PrincipalFrom(c); p != nil {
			principal = p.Username
		}

		path := c.OriginalURL() // includes query string
		reqHash := requestHash(method, path, c.Body(), principal)
		conn := db.WithContext(c.UserContext())

		// ---- Phase 1: claim the key, or inspect whoever holds it
		rec := models.IdempotencyKey{
			Key:         key,
			RequestHash: reqHash,
			Method:      method,
			Path:        path,
			Principal:   principal,
		}
		res := conn.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoNothing: true,
		}).Create(&rec)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "idempotency create failed")
		}

		if res.RowsAffected == 0 {
			var existing models.IdempotencyKey
			if err := conn.Where("key = ?", key).First(&existing).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "idempotency lookup failed")
			}
			switch {
			case existing.RequestHash != reqHash:
				return fiber.NewError(fiber.StatusConflict, "Idempotency-Key reuse with different request")
			case existing.ResponseStatus == 0:
				return fiber.NewError(fiber.StatusConflict, "request in progress")
			}
			c.Set(replayedHeader, "true")
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Status(existing.ResponseStatus).Send(existing.ResponseBody)
		}

		if err := c.Next(); err != nil {
			// release the claim so the client can retry after a failure
			if e := conn.Where("key = ? AND response_status = 0", key).Delete(&models.IdempotencyKey{}).Error; e != nil {
				log := errLog()
				log.Warn().Err(e).Str("key", key).Msg("idempotency release failed")
			}
			return err
		}

		// ---- Phase 2: store the response
		now := time.Now().UTC()
		resp := c.Response().Body()
		blob := make([]byte, len(resp))
		copy(blob, resp)
		if err := conn.Model(&models.IdempotencyKey{}).
			Where("key = ?", key).
			Updates(map[string]any{
				"response_status": c.Response().StatusCode(),
				"response_body":   blob,
				"completed_at":    &now,
			}).Error; err != nil {
			// the handler already succeeded; a retry will report in progress
			log := errLog()
			log.Warn().Err(err).Str("key", key).Msg("idempotency store failed")
		}
		return nil
	}
}

// requestHash is sha256 of method|path|body|principal.
func requestHash(method, path string, body []byte, principal string) string {
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte{'\n'})
	h.Write([]byte(path))
	h.Write([]byte{'\n'})
	h.Write(body)
	h.Write([]byte{'\n'})
	h.Write([]byte(principal))
	return hex.EncodeToString(h.Sum(nil))
}
