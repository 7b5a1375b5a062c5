package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/userservice/internal/app"
	"github.com/polkiloo/userservice/internal/server/http/handlers"
	"github.com/polkiloo/userservice/internal/server/http/validation"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Options(
	fx.Provide(
		func(f *app.UserFacade) handlers.UserFacade { return f },
		func(f *app.UserFacade) handlers.HealthFacade { return f },
		func(v *validation.Validator) handlers.RequestValidator { return v },
	),
	fx.Provide(Setup),
)
