package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/pawsitive-rescue/volunteer-match/internal/config"
	"github.com/pawsitive-rescue/volunteer-match/pkg/core/services"
	"github.com/pawsitive-rescue/volunteer-match/pkg/store"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Store    store.Store
	Notifier services.Notifier
	Logger   *zap.Logger
	Ctx      context.Context
}
