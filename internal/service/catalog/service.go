package catalog

import (
	"context"

	"github.com/m04kA/SMC-DentalCareService/internal/service/catalog/models"
)

// Service сервис чтения прайс-листа
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListServices возвращает полный прайс-лист клиники
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services := s.catalogRepo.List()

	s.logger.Info("ListServices: returning %d services", len(services))
	return models.FromDomainServices(services), nil
}
