package middlewares

import (
	"dentalflow-backend/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequestTx runs mutating requests inside one DB transaction that repositories
// join through the request context. Reads use the pool directly.
// Order: run AFTER Authenticate() and AFTER Idempotency() so idempotency
// records are not tied to the handler TX.
func RequestTx(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		if !isMutating(c.Method()) {
			return c.Next()
		}

		tx := db.WithContext(c.UserContext()).Begin()
		if tx.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to begin transaction")
		}

		defer func() {
			if r := recover(); r != nil {
				_ = tx.Rollback()
				panic(r) // re-panic after rollback so the recover middleware can catch
			}
			if err != nil {
				_ = tx.Rollback()
				return
			}
			if e := tx.Commit().Error; e != nil {
				log := errLog()
				log.Error().Err(e).Str("path", c.Path()).Msg("tx commit failed")
				err = fiber.NewError(fiber.StatusInternalServerError, "transaction commit failed")
			}
		}()

		c.SetUserContext(database.WithTx(c.UserContext(), tx))
		err = c.Next()
		return err
	}
}

func isMutating(method string) bool {
	switch method {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		return true
	}
	return false
}
