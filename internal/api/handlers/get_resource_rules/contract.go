package get_resource_rules

import (
	"context"

	"github.com/artel-platform/AOM-AvailabilityService/internal/service/rules/models"
)

type RulesService interface {
	GetRules(ctx context.Context, resourceID int64) (*models.GetRulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
