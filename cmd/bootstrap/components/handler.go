package components

import (
	"coupon-ledger/internal/handler"
	"coupon-ledger/internal/handler/api"
	"coupon-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCouponHandler,
		api.NewDistributionHandler,
		api.NewSendHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
