package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gravecare/internal/models/db_models"
)

type ChurchRepository interface {
	Insert(ctx context.Context, church *db_models.Church) error
	FindByID(ctx context.Context, id string) (*db_models.Church, error)
	FindAll(ctx context.Context) ([]db_models.Church, error)
}

type churchRepository struct {
	db *gorm.DB
}

func NewChurchRepository(db *gorm.DB) ChurchRepository {
	return &churchRepository{db: db}
}

func (r *churchRepository) Insert(ctx context.Context, church *db_models.Church) error {
	return r.db.WithContext(ctx).Create(church).Error
}

func (r *churchRepository) FindByID(ctx context.Context, id string) (*db_models.Church, error) {
	var church db_models.Church
	err := r.db.WithContext(ctx).First(&church, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &church, nil
}

func (r *churchRepository) FindAll(ctx context.Context) ([]db_models.Church, error) {
	var churches []db_models.Church
	err := r.db.WithContext(ctx).Find(&churches).Error
	if err != nil {
		return nil, err
	}
	return churches, nil
}

type PlanRepository interface {
	Insert(ctx context.Context, plan *db_models.SubscriptionPlan) error
	FindByID(ctx context.Context, id string) (*db_models.SubscriptionPlan, error)
	FindAll(ctx context.Context) ([]db_models.SubscriptionPlan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Insert(ctx context.Context, plan *db_models.SubscriptionPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) FindByID(ctx context.Context, id string) (*db_models.SubscriptionPlan, error) {
	var plan db_models.SubscriptionPlan
	err := r.db.WithContext(ctx).First(&plan, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) FindAll(ctx context.Context) ([]db_models.SubscriptionPlan, error) {
	var plans []db_models.SubscriptionPlan
	err := r.db.WithContext(ctx).Where("is_active = TRUE").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

type FlowerRepository interface {
	Insert(ctx context.Context, flower *db_models.Flower) error
	Update(ctx context.Context, flower *db_models.Flower) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*db_models.Flower, error)
	FindAll(ctx context.Context) ([]db_models.Flower, error)
}

type flowerRepository struct {
	db *gorm.DB
}

func NewFlowerRepository(db *gorm.DB) FlowerRepository {
	return &flowerRepository{db: db}
}

func (r *flowerRepository) Insert(ctx context.Context, flower *db_models.Flower) error {
	return r.db.WithContext(ctx).Create(flower).Error
}

func (r *flowerRepository) Update(ctx context.Context, flower *db_models.Flower) error {
	return r.db.WithContext(ctx).Save(flower).Error
}

func (r *flowerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Flower{}, "id = ?", id).Error
}

func (r *flowerRepository) FindByID(ctx context.Context, id string) (*db_models.Flower, error) {
	var flower db_models.Flower
	err := r.db.WithContext(ctx).First(&flower, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &flower, nil
}

func (r *flowerRepository) FindAll(ctx context.Context) ([]db_models.Flower, error) {
	var flowers []db_models.Flower
	err := r.db.WithContext(ctx).Find(&flowers).Error
	if err != nil {
		return nil, err
	}
	return flowers, nil
}

type ProductRepository interface {
	Insert(ctx context.Context, product *db_models.Product) error
	Update(ctx context.Context, product *db_models.Product) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*db_models.Product, error)
	FindAll(ctx context.Context) ([]db_models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Insert(ctx context.Context, product *db_models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) Update(ctx context.Context, product *db_models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Product{}, "id = ?", id).Error
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*db_models.Product, error) {
	var product db_models.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]db_models.Product, error) {
	var products []db_models.Product
	err := r.db.WithContext(ctx).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

type OfferingRepository interface {
	Insert(ctx context.Context, offering *db_models.ServiceOffering) error
	Update(ctx context.Context, offering *db_models.ServiceOffering) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*db_models.ServiceOffering, error)
	FindAll(ctx context.Context) ([]db_models.ServiceOffering, error)
}

type offeringRepository struct {
	db *gorm.DB
}

func NewOfferingRepository(db *gorm.DB) OfferingRepository {
	return &offeringRepository{db: db}
}

func (r *offeringRepository) Insert(ctx context.Context, offering *db_models.ServiceOffering) error {
	return r.db.WithContext(ctx).Create(offering).Error
}

func (r *offeringRepository) Update(ctx context.Context, offering *db_models.ServiceOffering) error {
	return r.db.WithContext(ctx).Save(offering).Error
}

func (r *offeringRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.ServiceOffering{}, "id = ?", id).Error
}

func (r *offeringRepository) FindByID(ctx context.Context, id string) (*db_models.ServiceOffering, error) {
	var offering db_models.ServiceOffering
	err := r.db.WithContext(ctx).First(&offering, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &offering, nil
}

func (r *offeringRepository) FindAll(ctx context.Context) ([]db_models.ServiceOffering, error) {
	var offerings []db_models.ServiceOffering
	err := r.db.WithContext(ctx).Where("is_active = TRUE").Find(&offerings).Error
	if err != nil {
		return nil, err
	}
	return offerings, nil
}
