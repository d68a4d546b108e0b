package service

import (
	"context"
)

// AlertAction is one choice offered by an alert
type AlertAction struct {
	Label   string
	Handler func(ctx context.Context)
}

// Alert is a user-facing prompt
type Alert struct {
	Title   string
	Body    string
	Actions []AlertAction
}

// Alerter surfaces alerts to the user. The chosen action's handler runs once the user answers.
type Alerter interface {
	Alert(ctx context.Context, alert Alert) error
}
