package svr

import (
	"github.com/gofiber/fiber/v2"

	"mingpan.dev/backend/internal/app/appconfig"
	"mingpan.dev/backend/internal/constant"
	"mingpan.dev/backend/internal/pkg/mperr"
)

type V1 struct {
	fiber.Router
}

type Meta struct {
	fiber.Router
}

type Admin struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App, conf *appconfig.Config) (*V1, *Meta, *Admin) {
	v1 := app.Group("/api/v1")
	meta := app.Group("/api")
	admin := app.Group("/api/_/admin", func(c *fiber.Ctx) error {
		if conf.AdminKey == "" || c.Get(constant.AdminKeyHeader) != conf.AdminKey {
			return mperr.ErrUnauthorized
		}
		return c.Next()
	})

	return &V1{Router: v1}, &Meta{Router: meta}, &Admin{Router: admin}
}
