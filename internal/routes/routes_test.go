package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/onligro/salon-scheduler/internal/audit"
	"github.com/onligro/salon-scheduler/internal/config"
)

type nopAuditWriter struct{}

func (nopAuditWriter) Write(audit.Event) error { return nil }

type nopNotifier struct{}

func (nopNotifier) Emit(string, any) {}

func TestRegisterRoutesExposesAllEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(
		postgres.Open("host=localhost user=salon_user dbname=salon_db sslmode=disable"),
		&gorm.Config{
			DryRun:               true,
			DisableAutomaticPing: true,
		},
	)
	require.NoError(t, err)

	r := gin.New()
	RegisterRoutes(r, db, &config.Config{JWTSecret: "test-secret"}, nopNotifier{},
		audit.NewDispatcher(nopAuditWriter{}, zerolog.Nop()))

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"POST /auth/register",
		"POST /auth/login",
		"GET /auth/verify",
		"GET /owner/profile",
		"POST /slots/available",
		"POST /appointments/create",
		"GET /appointments/all",
		"GET /appointments/by-date",
		"POST /appointments/cancel/:id",
		"DELETE /appointments/delete/:id",
		"POST /hours/set",
		"GET /hours/get",
		"GET /public/salons",
		"GET /public/salons/:id",
		"POST /public/slots",
		"POST /public/appointments/create",
		"GET /public/appointments/:reference",
	}
	for _, route := range want {
		assert.True(t, registered[route], "missing route %s", route)
	}
}
