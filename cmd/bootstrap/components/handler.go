package components

import (
	"resqcart/internal/handler"
	"resqcart/internal/handler/api"
	"resqcart/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewRescueHandler,
		api.NewFoodBankHandler,
		api.NewDashboardHandler,
		api.NewAIMLHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Health    *api.HealthHandler
	Auth      *api.AuthHandler
	Product   *api.ProductHandler
	Rescue    *api.RescueHandler
	FoodBank  *api.FoodBankHandler
	Dashboard *api.DashboardHandler
	AIML      *api.AIMLHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Health:    p.Health,
		Auth:      p.Auth,
		Product:   p.Product,
		Rescue:    p.Rescue,
		FoodBank:  p.FoodBank,
		Dashboard: p.Dashboard,
		AIML:      p.AIML,
	}
}
