package services

import (
	"context"
	"fmt"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/request_models"
	"gravecare/internal/repositories"
	"gravecare/pkg/storage"
	"gravecare/pkg/utils"
)

// CatalogService covers the reference data the booking and storefront flows
// consume: churches, subscription plans, flowers, products, service offerings.
type CatalogService interface {
	CreateChurch(ctx context.Context, req request_models.ChurchRequest) (*db_models.Church, error)
	GetChurch(ctx context.Context, id string) (*db_models.Church, error)
	ListChurches(ctx context.Context) ([]db_models.Church, error)

	CreatePlan(ctx context.Context, req request_models.PlanRequest) (*db_models.SubscriptionPlan, error)
	GetPlan(ctx context.Context, id string) (*db_models.SubscriptionPlan, error)
	ListPlans(ctx context.Context) ([]db_models.SubscriptionPlan, error)

	CreateFlower(ctx context.Context, req request_models.FlowerRequest) (*db_models.Flower, error)
	UpdateFlower(ctx context.Context, id string, req request_models.FlowerRequest) (*db_models.Flower, error)
	DeleteFlower(ctx context.Context, id string) error
	ListFlowers(ctx context.Context) ([]db_models.Flower, error)
	SetFlowerImage(ctx context.Context, id string, data []byte, contentType string) (string, error)

	CreateProduct(ctx context.Context, req request_models.ProductRequest) (*db_models.Product, error)
	UpdateProduct(ctx context.Context, id string, req request_models.ProductRequest) (*db_models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (*db_models.Product, error)
	ListProducts(ctx context.Context) ([]db_models.Product, error)
	SetProductImage(ctx context.Context, id string, data []byte, contentType string) (string, error)

	CreateOffering(ctx context.Context, req request_models.OfferingRequest) (*db_models.ServiceOffering, error)
	UpdateOffering(ctx context.Context, id string, req request_models.OfferingRequest) (*db_models.ServiceOffering, error)
	DeleteOffering(ctx context.Context, id string) error
	ListOfferings(ctx context.Context) ([]db_models.ServiceOffering, error)
}

type catalogService struct {
	churchRepo   repositories.ChurchRepository
	planRepo     repositories.PlanRepository
	flowerRepo   repositories.FlowerRepository
	productRepo  repositories.ProductRepository
	offeringRepo repositories.OfferingRepository
	storage      storage.Gateway
}

func NewCatalogService(
	churchRepo repositories.ChurchRepository,
	planRepo repositories.PlanRepository,
	flowerRepo repositories.FlowerRepository,
	productRepo repositories.ProductRepository,
	offeringRepo repositories.OfferingRepository,
	gateway storage.Gateway,
) CatalogService {
	return &catalogService{
		churchRepo:   churchRepo,
		planRepo:     planRepo,
		flowerRepo:   flowerRepo,
		productRepo:  productRepo,
		offeringRepo: offeringRepo,
		storage:      gateway,
	}
}

func (s *catalogService) CreateChurch(ctx context.Context, req request_models.ChurchRequest) (*db_models.Church, error) {
	church := &db_models.Church{Name: req.Name, Address: req.Address, City: req.City, State: req.State}
	if err := s.churchRepo.Insert(ctx, church); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return church, nil
}

func (s *catalogService) GetChurch(ctx context.Context, id string) (*db_models.Church, error) {
	church, err := s.churchRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if church == nil {
		return nil, utils.ErrNotFound
	}
	return church, nil
}

func (s *catalogService) ListChurches(ctx context.Context) ([]db_models.Church, error) {
	churches, err := s.churchRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return churches, nil
}

func (s *catalogService) CreatePlan(ctx context.Context, req request_models.PlanRequest) (*db_models.SubscriptionPlan, error) {
	plan := &db_models.SubscriptionPlan{
		Name:             req.Name,
		Description:      req.Description,
		FrequencyPerYear: req.FrequencyPerYear,
		Price:            req.Price,
		AllowsMultiYear:  req.AllowsMultiYear,
		IsActive:         true,
	}
	if err := s.planRepo.Insert(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plan, nil
}

func (s *catalogService) GetPlan(ctx context.Context, id string) (*db_models.SubscriptionPlan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}
	return plan, nil
}

func (s *catalogService) ListPlans(ctx context.Context) ([]db_models.SubscriptionPlan, error) {
	plans, err := s.planRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

func (s *catalogService) CreateFlower(ctx context.Context, req request_models.FlowerRequest) (*db_models.Flower, error) {
	flower := &db_models.Flower{Name: req.Name, Price: req.Price, InStock: req.InStock, Quantity: req.Quantity}
	if err := s.flowerRepo.Insert(ctx, flower); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return flower, nil
}

func (s *catalogService) UpdateFlower(ctx context.Context, id string, req request_models.FlowerRequest) (*db_models.Flower, error) {
	flower, err := s.flowerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if flower == nil {
		return nil, utils.ErrFlowerNotFound
	}
	flower.Name = req.Name
	flower.Price = req.Price
	flower.InStock = req.InStock
	flower.Quantity = req.Quantity
	if err := s.flowerRepo.Update(ctx, flower); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return flower, nil
}

func (s *catalogService) DeleteFlower(ctx context.Context, id string) error {
	if err := s.flowerRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *catalogService) ListFlowers(ctx context.Context) ([]db_models.Flower, error) {
	flowers, err := s.flowerRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return flowers, nil
}

func (s *catalogService) SetFlowerImage(ctx context.Context, id string, data []byte, contentType string) (string, error) {
	flower, err := s.flowerRepo.FindByID(ctx, id)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if flower == nil {
		return "", utils.ErrFlowerNotFound
	}
	url, err := s.uploadCatalogImage(ctx, data, contentType, "flowers")
	if err != nil {
		return "", err
	}
	flower.ImageURL = url
	if err := s.flowerRepo.Update(ctx, flower); err != nil {
		return "", utils.ErrDatabaseError
	}
	return url, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req request_models.ProductRequest) (*db_models.Product, error) {
	product := &db_models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		InStock:     req.InStock,
		Quantity:    req.Quantity,
	}
	if err := s.productRepo.Insert(ctx, product); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, req request_models.ProductRequest) (*db_models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.InStock = req.InStock
	product.Quantity = req.Quantity
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*db_models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}
	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]db_models.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return products, nil
}

func (s *catalogService) SetProductImage(ctx context.Context, id string, data []byte, contentType string) (string, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if product == nil {
		return "", utils.ErrProductNotFound
	}
	url, err := s.uploadCatalogImage(ctx, data, contentType, "products")
	if err != nil {
		return "", err
	}
	product.ImageURL = url
	if err := s.productRepo.Update(ctx, product); err != nil {
		return "", utils.ErrDatabaseError
	}
	return url, nil
}

func (s *catalogService) uploadCatalogImage(ctx context.Context, data []byte, contentType, folder string) (string, error) {
	if err := storage.ValidateUpload(contentType, int64(len(data)), profileImageTypes, profileImageMaxBytes); err != nil {
		return "", err
	}
	url, err := s.storage.Upload(ctx, data, contentType, folder)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrStorageGateway, err)
	}
	return url, nil
}

func (s *catalogService) CreateOffering(ctx context.Context, req request_models.OfferingRequest) (*db_models.ServiceOffering, error) {
	offering := &db_models.ServiceOffering{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    true,
	}
	if err := s.offeringRepo.Insert(ctx, offering); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return offering, nil
}

func (s *catalogService) UpdateOffering(ctx context.Context, id string, req request_models.OfferingRequest) (*db_models.ServiceOffering, error) {
	offering, err := s.offeringRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if offering == nil {
		return nil, utils.ErrNotFound
	}
	offering.Name = req.Name
	offering.Description = req.Description
	offering.Price = req.Price
	if err := s.offeringRepo.Update(ctx, offering); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return offering, nil
}

func (s *catalogService) DeleteOffering(ctx context.Context, id string) error {
	if err := s.offeringRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *catalogService) ListOfferings(ctx context.Context) ([]db_models.ServiceOffering, error) {
	offerings, err := s.offeringRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return offerings, nil
}
