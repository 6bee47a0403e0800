package middlewares

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var keyColumns = []string{
	"id", "key", "request_hash", "method", "path", "principal",
	"response_status", "response_body", "created_at", "completed_at",
}

const invoiceBody = `{"patientId":1,"dentistId":2}`

// idempotencyApp counts handler runs so tests can tell replays from re-executions.
func idempotencyApp(db *gorm.DB, runs *int) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(Idempotency(db))
	app.Post("/invoices", func(c *fiber.Ctx) error {
		*runs++
		if c.Query("fail") != "" {
			return fiber.NewError(fiber.StatusBadRequest, "rejected")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": 41})
	})
	return app
}

func withKey(k string) map[string]string { return map[string]string{"Idempotency-Key": k} }

func expectClaim(mock sqlmock.Sqlmock, won bool) {
	rows := sqlmock.NewRows([]string{"id"})
	if won {
		rows.AddRow(1)
	}
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "idempotency_keys"`) + `.*ON CONFLICT \("key"\) DO NOTHING`).
		WillReturnRows(rows)
}

func expectExisting(mock sqlmock.Sqlmock, hash string, status int, body string) {
	var blob []byte
	if body != "" {
		blob = []byte(body)
	}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "idempotency_keys" WHERE key = $1`)).
		WillReturnRows(sqlmock.NewRows(keyColumns).
			AddRow(1, "k-1", hash, "POST", "/invoices", anonymous, status, blob, time.Now(), nil))
}

func TestIdempotency_FirstRequestStoresResponse(t *testing.T) {
	db, mock := newMockDB(t)
	expectClaim(mock, true)
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "idempotency_keys" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	runs := 0
	status, body, hdr := send(t, idempotencyApp(db, &runs), fiber.MethodPost, "/invoices", invoiceBody, withKey("k-1"))

	assert.Equal(t, fiber.StatusCreated, status)
	assert.JSONEq(t, `{"id":41}`, body)
	assert.Empty(t, hdr[replayedHeader])
	assert.Equal(t, 1, runs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	db, mock := newMockDB(t)
	expectClaim(mock, false)
	expectExisting(mock, requestHash("POST", "/invoices", []byte(invoiceBody), anonymous), fiber.StatusCreated, `{"id":41}`)

	runs := 0
	status, body, hdr := send(t, idempotencyApp(db, &runs), fiber.MethodPost, "/invoices", invoiceBody, withKey("k-1"))

	assert.Equal(t, fiber.StatusCreated, status)
	assert.JSONEq(t, `{"id":41}`, body)
	assert.Equal(t, "true", hdr[replayedHeader])
	assert.Zero(t, runs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_KeyReusedWithDifferentBody(t *testing.T) {
	db, mock := newMockDB(t)
	expectClaim(mock, false)
	expectExisting(mock, requestHash("POST", "/invoices", []byte(`{"patientId":9}`), anonymous), fiber.StatusCreated, `{"id":41}`)

	runs := 0
	status, body, _ := send(t, idempotencyApp(db, &runs), fiber.MethodPost, "/invoices", invoiceBody, withKey("k-1"))

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Contains(t, body, "different request")
	assert.Zero(t, runs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_PendingKeyIsInProgress(t *testing.T) {
	db, mock := newMockDB(t)
	expectClaim(mock, false)
	expectExisting(mock, requestHash("POST", "/invoices", []byte(invoiceBody), anonymous), 0, "")

	runs := 0
	status, body, _ := send(t, idempotencyApp(db, &runs), fiber.MethodPost, "/invoices", invoiceBody, withKey("k-1"))

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Contains(t, body, "request in progress")
	assert.Zero(t, runs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FailedRequestReleasesKey(t *testing.T) {
	db, mock := newMockDB(t)
	expectClaim(mock, true)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "idempotency_keys" WHERE key = $1 AND response_status = 0`)).
		WithArgs("k-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	runs := 0
	status, _, _ := send(t, idempotencyApp(db, &runs), fiber.MethodPost, "/invoices?fail=1", invoiceBody, withKey("k-1"))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, 1, runs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_StoresLongPathInFull(t *testing.T) {
	db, mock := newMockDB(t)
	long := "/invoices?note=" + strings.Repeat("x", 400)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "idempotency_keys"`)).
		WithArgs("k-2", sqlmock.AnyArg(), "POST", long, anonymous,
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "idempotency_keys" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	runs := 0
	status, _, _ := send(t, idempotencyApp(db, &runs), fiber.MethodPost, long, invoiceBody, withKey("k-2"))
	require.Equal(t, fiber.StatusCreated, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_IgnoresReadsAndMissingKey(t *testing.T) {
	db, mock := newMockDB(t)
	runs := 0
	app := idempotencyApp(db, &runs)
	app.Get("/invoices", func(c *fiber.Ctx) error { return c.SendString("list") })

	status, _, _ := send(t, app, fiber.MethodPost, "/invoices", invoiceBody, nil)
	assert.Equal(t, fiber.StatusCreated, status)
	status, _, _ = send(t, app, fiber.MethodGet, "/invoices", "", withKey("k-3"))
	assert.Equal(t, fiber.StatusOK, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
