package rules

import (
	"context"
	"errors"
	"fmt"

	resourceRepo "github.com/artel-platform/AOM-AvailabilityService/internal/infra/storage/resource"
	"github.com/artel-platform/AOM-AvailabilityService/internal/service/rules/models"
)

// Service сервис для работы с конфигурацией доступности ресурсов
type Service struct {
	resourceRepo ResourceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// GetRules получает конфигурацию доступности ресурса
func (s *Service) GetRules(ctx context.Context, resourceID int64) (*models.GetRulesResponse, error) {
	s.logger.Info("GetRules: fetching rules for resource=%d", resourceID)

	resource, err := s.resourceRepo.GetByID(ctx, resourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("GetRules: resource id=%d not found", resourceID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetRules: repository error for resource=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: GetRules - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRules(resource.ID, resource.Rules), nil
}

// UpdateRules заменяет конфигурацию доступности ресурса.
// Эндпоинт для персонала организации, авторизация на уровне шлюза.
// Невалидная конфигурация отклоняется до записи в БД
func (s *Service) UpdateRules(ctx context.Context, resourceID int64, req *models.UpdateRulesRequest) (*models.GetRulesResponse, error) {
	s.logger.Info("UpdateRules: updating rules for resource=%d", resourceID)

	rules, err := req.Rules.ToDomain()
	if err != nil {
		s.logger.Warn("UpdateRules: invalid rules for resource=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	if err := rules.Validate(); err != nil {
		s.logger.Warn("UpdateRules: validation failed for resource=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	if err := s.resourceRepo.UpdateRules(ctx, resourceID, rules); err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("UpdateRules: resource id=%d not found", resourceID)
			return nil, ErrResourceNotFound
		}
		if errors.Is(err, resourceRepo.ErrInvalidRules) {
			s.logger.Warn("UpdateRules: repository rejected rules for resource=%d: %v", resourceID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
		}
		s.logger.Error("UpdateRules: repository error for resource=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: UpdateRules - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRules: successfully updated rules for resource=%d", resourceID)
	return models.FromDomainRules(resourceID, rules), nil
}
