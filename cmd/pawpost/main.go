package main

import (
	"context"
	"log/slog"
	"os"

	"pawpost/config"
	"pawpost/internal/delivery"
	"pawpost/internal/delivery/boundary"
	"pawpost/internal/delivery/http"
	"pawpost/internal/delivery/http/router/handler"
	"pawpost/internal/domain/service"
	firebaseinfra "pawpost/internal/infra/firebase"
	logs "pawpost/internal/infra/log"
	"pawpost/internal/infra/navigation"
	"pawpost/internal/infra/notification"
	"pawpost/internal/infra/persistence"
	"pawpost/internal/infra/pubsub"
	"pawpost/internal/infra/push"
	"pawpost/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
	Hooks      *impl.GlobalHooks
	Subscriber *pubsub.Subscriber `optional:"true"`
	Logger     *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			firebaseinfra.NewApp,
			firebaseinfra.NewMessagingClient,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewFirebaseService,
			fx.Annotate(
				push.NewDeviceBridge,
				fx.As(fx.Self()),
				fx.As(new(service.PushTransport)),
				fx.As(new(pubsub.MessageSink)),
			),
			fx.Annotate(
				push.NewPromptQueue,
				fx.As(fx.Self()),
				fx.As(new(service.Alerter)),
			),
			fx.Annotate(
				navigation.NewIntentLog,
				fx.As(fx.Self()),
				fx.As(new(service.Navigator)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewErrorHandler,
			impl.NewNotificationService,
			impl.NewGlobalHooks,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			boundary.NewRegistry,
			handler.NewHealthHandler,
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
			handler.NewErrorLogHandler,
			handler.NewScreenHandler,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}

	if params.Subscriber == nil {
		return
	}

	receiveCtx, cancel := context.WithCancel(ctx)
	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
	params.Logger.Info("Receiving push messages from Pub/Sub")
	params.Hooks.Go(receiveCtx, "pubsub.Receive", params.Subscriber.Receive)
}
