package service

import (
	"context"
)

// Navigator opens a named screen of the UI shell
type Navigator interface {
	Navigate(ctx context.Context, screen string, params map[string]string) error
}
