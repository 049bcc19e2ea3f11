package usecase

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"catalog_service/internal/domain"
)

type ProductUseCase interface {
	CreateProduct(candidate domain.ProductCandidate) (*domain.Product, error)
	GetProductByID(id uuid.UUID) (*domain.Product, error)
	ReplaceProduct(id uuid.UUID, candidate domain.ProductCandidate) (*domain.Product, error)
	PatchProduct(id uuid.UUID, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(id uuid.UUID) error
	ListProducts(filter domain.ListFilter) ([]domain.Product, int, error)
}

type productUseCase struct {
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		log:         logger,
	}
}

func (uc *productUseCase) CreateProduct(candidate domain.ProductCandidate) (*domain.Product, error) {
	validated, err := domain.ValidateCandidate(candidate)
	if err != nil {
		uc.log.Warnf("Use Case: Rejected product candidate '%s': %v", candidate.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to create product '%s'", validated.Name)
	created, err := uc.productRepo.Create(validated)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to create product '%s': %v", validated.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %s", created.Name, created.ID)
	return created, nil
}

func (uc *productUseCase) GetProductByID(id uuid.UUID) (*domain.Product, error) {
	uc.log.Infof("Use Case: Attempting to get product with ID %s", id)
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %s: %v", id, err)
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) ReplaceProduct(id uuid.UUID, candidate domain.ProductCandidate) (*domain.Product, error) {
	validated, err := domain.ValidateCandidate(candidate)
	if err != nil {
		uc.log.Warnf("Use Case: Rejected replacement for product ID %s: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to replace product ID %s", id)
	updated, err := uc.productRepo.Replace(id, validated)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to replace product ID %s: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product replaced successfully for ID %s", updated.ID)
	return updated, nil
}

func (uc *productUseCase) PatchProduct(id uuid.UUID, patch domain.ProductPatch) (*domain.Product, error) {
	validated, err := domain.ValidatePatch(patch)
	if err != nil {
		uc.log.Warnf("Use Case: Rejected patch for product ID %s: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting partial update for product ID %s", id)
	updated, err := uc.productRepo.Patch(id, validated)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed partial update for product ID %s: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %s", updated.ID)
	return updated, nil
}

func (uc *productUseCase) DeleteProduct(id uuid.UUID) error {
	uc.log.Infof("Use Case: Attempting to delete product ID %s", id)
	if err := uc.productRepo.Delete(id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %s: %v", id, err)
		return err
	}
	uc.log.Infof("Use Case: Product deleted successfully for ID %s", id)
	return nil
}

func (uc *productUseCase) ListProducts(filter domain.ListFilter) ([]domain.Product, int, error) {
	// The range precondition runs before any filtering does.
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		uc.log.Warnf("Use Case: Rejected list with min_precio %s above max_precio %s", filter.MinPrice, filter.MaxPrice)
		return nil, 0, domain.NewInvalidRangeError(*filter.MinPrice, *filter.MaxPrice)
	}

	uc.log.Infof("Use Case: Attempting to list products (limit: %d, offset: %d)", filter.Limit, filter.Offset)
	products, total, err := uc.productRepo.List(filter)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, 0, err
	}

	uc.log.Infof("Use Case: Retrieved %d of %d products", len(products), total)
	return products, total, nil
}
