package debuggler

import (
	"log/slog"

	"go.uber.org/fx"
)

type moduleParams struct {
	fx.In

	Logger *slog.Logger `optional:"true"`
}

// Module provides a *Factory to an Fx application.
// When the container holds a *slog.Logger it receives the factory diagnostics,
// unless opts set WithLogger themselves.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(opts ...Option) fx.Option {
	return fx.Module("debuggler",
		fx.Provide(func(params moduleParams) *Factory {
			options := make([]Option, 0, len(opts)+1)

			if params.Logger != nil {
				options = append(options, WithLogger(params.Logger))
			}

			return NewFactory(append(options, opts...)...)
		}),
	)
}
