// Package firebase builds the shared Firebase app and the clients derived from it.
package firebase

import (
	"context"
	"log/slog"

	"pawpost/config"
	"pawpost/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params holds dependencies for the Firebase app, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app. It returns nil when Firebase is not configured.
func NewApp(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		params.Logger.Info("Firebase not configured, push sending and Firestore are disabled")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(context.Background(), &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("project_id", cfg.ProjectID))

	return app, nil
}

// NewMessagingClient returns the messaging client of app, or nil when app is nil
func NewMessagingClient(ctx context.Context, app *firebase.App) (*messaging.Client, error) {
	if app == nil {
		return nil, nil
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return client, nil
}

// NewFirestoreClient returns a Firestore client bound to app's project and closes it on stop
func NewFirestoreClient(lc fx.Lifecycle, app *firebase.App) (*firestore.Client, error) {
	if app == nil {
		return nil, errors.New("firestore store requires firebase.projectId")
	}

	client, err := app.Firestore(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get firestore client")
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
