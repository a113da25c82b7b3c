package components

import (
	"resqcart/internal/infra/aiml"
	"resqcart/internal/infra/notify"
	"resqcart/internal/usecase"

	"go.uber.org/fx"
)

// InfraModule wires the outbound adapters: the spoilage model client and the alert notifier.
var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			aiml.NewClient,
			fx.As(new(usecase.SpoilagePredictor)),
		),
		notify.New,
	),
)
