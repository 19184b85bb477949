package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/hannahbrooks/volunteer-connect/internal/config"
	"github.com/hannahbrooks/volunteer-connect/pkg/records"
	"github.com/hannahbrooks/volunteer-connect/pkg/session"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg     *config.Config
	DB      *records.Records
	Session session.Provider
	Logger  *zap.Logger
	Ctx     context.Context
}
