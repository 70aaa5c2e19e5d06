package paymentValidator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidatorApp() *fiber.App {
	app := fiber.New()
	app.Post("/payments", CompleteEnrollment(), func(c *fiber.Ctx) error {
		reqData := c.Locals("validatedEnrollment").(*EnrollmentRequest)
		return c.JSON(fiber.Map{"student_email": reqData.StudentEmail})
	})
	return app
}

func postJSON(app *fiber.App, path, body string) (int, error) {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

func TestCompleteEnrollmentValidPayload(t *testing.T) {
	app := newValidatorApp()
	status, err := postJSON(app, "/payments",
		`{"student_email":"a@x.com","course_id":1,"cart_id":7,"amount":49.99,"currency":"usd"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestCompleteEnrollmentInvalidEmail(t *testing.T) {
	app := newValidatorApp()
	status, err := postJSON(app, "/payments",
		`{"student_email":"not-an-email","course_id":1,"cart_id":7,"amount":49.99}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestCompleteEnrollmentMissingAmount(t *testing.T) {
	app := newValidatorApp()
	status, err := postJSON(app, "/payments",
		`{"student_email":"a@x.com","course_id":1,"cart_id":7}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestCompleteEnrollmentZeroCourse(t *testing.T) {
	app := newValidatorApp()
	status, err := postJSON(app, "/payments",
		`{"student_email":"a@x.com","course_id":0,"cart_id":7,"amount":10}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestCompleteEnrollmentBadCurrencyLength(t *testing.T) {
	app := newValidatorApp()
	status, err := postJSON(app, "/payments",
		`{"student_email":"a@x.com","course_id":1,"cart_id":7,"amount":10,"currency":"dollars"}`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestCompleteEnrollmentMalformedBody(t *testing.T) {
	app := newValidatorApp()
	status, err := postJSON(app, "/payments", `{not json`)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestConfirmPaymentRejectsNonPositiveAmount(t *testing.T) {
	app := fiber.New()
	app.Post("/confirm-payment", ConfirmPayment(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest("POST", "/confirm-payment", strings.NewReader(`{"amount":0}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestConfirmPaymentAcceptsPositiveAmount(t *testing.T) {
	app := fiber.New()
	app.Post("/confirm-payment", ConfirmPayment(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest("POST", "/confirm-payment", strings.NewReader(`{"amount":19.99}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
