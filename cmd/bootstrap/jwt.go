package bootstrap

import (
	"resqcart/internal/pkg/clock"
	"resqcart/internal/pkg/config"
	"resqcart/internal/pkg/errs"
	"resqcart/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
	if cfg.JWT.Duration <= 0 {
		return nil, errs.Newf("JWT_DURATION must be positive, got %s", cfg.JWT.Duration)
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, jwt.WithClock(clk)), nil
}
