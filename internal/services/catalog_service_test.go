package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/request_models"
	"gravecare/pkg/utils"
)

type fakeOfferingRepo struct {
	offerings map[string]*db_models.ServiceOffering
}

func (f *fakeOfferingRepo) Insert(ctx context.Context, o *db_models.ServiceOffering) error {
	if f.offerings == nil {
		f.offerings = map[string]*db_models.ServiceOffering{}
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	f.offerings[o.ID.String()] = o
	return nil
}
func (f *fakeOfferingRepo) Update(ctx context.Context, o *db_models.ServiceOffering) error {
	return nil
}
func (f *fakeOfferingRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeOfferingRepo) FindByID(ctx context.Context, id string) (*db_models.ServiceOffering, error) {
	return f.offerings[id], nil
}
func (f *fakeOfferingRepo) FindAll(ctx context.Context) ([]db_models.ServiceOffering, error) {
	var out []db_models.ServiceOffering
	for _, o := range f.offerings {
		out = append(out, *o)
	}
	return out, nil
}

func newCatalogFixture(t *testing.T) (*fakeFlowerRepo, *fakeProductRepo, *fakeStorage, CatalogService) {
	t.Helper()
	flowers := &fakeFlowerRepo{}
	products := &fakeProductRepo{}
	store := &fakeStorage{}
	svc := NewCatalogService(&fakeChurchRepo{}, &fakePlanRepo{}, flowers, products, &fakeOfferingRepo{}, store)
	return flowers, products, store, svc
}

func TestCreatePlanDefaultsActive(t *testing.T) {
	_, _, _, svc := newCatalogFixture(t)

	plan, err := svc.CreatePlan(context.Background(), request_models.PlanRequest{
		Name: "Twice yearly", FrequencyPerYear: 2, Price: 180, AllowsMultiYear: true,
	})
	require.NoError(t, err)
	assert.True(t, plan.IsActive)
	assert.Equal(t, 2, plan.FrequencyPerYear)

	_, err = svc.GetPlan(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestUpdateFlowerUnknownID(t *testing.T) {
	_, _, _, svc := newCatalogFixture(t)
	_, err := svc.UpdateFlower(context.Background(), uuid.NewString(), request_models.FlowerRequest{
		Name: "Roses", Price: 30,
	})
	assert.ErrorIs(t, err, utils.ErrFlowerNotFound)
}

func TestSetFlowerImageUploadsToFlowersFolder(t *testing.T) {
	flowers, _, store, svc := newCatalogFixture(t)
	flower, err := svc.CreateFlower(context.Background(), request_models.FlowerRequest{Name: "Roses", Price: 30})
	require.NoError(t, err)

	url, err := svc.SetFlowerImage(context.Background(), flower.ID.String(), []byte("jpeg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, []string{"flowers"}, store.uploads)
	assert.Equal(t, url, flowers.flowers[flower.ID.String()].ImageURL)

	_, err = svc.SetFlowerImage(context.Background(), flower.ID.String(), []byte("pdf"), "application/pdf")
	assert.ErrorIs(t, err, utils.ErrFileTypeNotAllowed)
}

func TestSetProductImageUploadsToProductsFolder(t *testing.T) {
	_, _, store, svc := newCatalogFixture(t)
	product, err := svc.CreateProduct(context.Background(), request_models.ProductRequest{Name: "Candle", Price: 5})
	require.NoError(t, err)

	_, err = svc.SetProductImage(context.Background(), product.ID.String(), []byte("png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, []string{"products"}, store.uploads)

	_, err = svc.SetProductImage(context.Background(), uuid.NewString(), []byte("png"), "image/png")
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestGetChurchUnknownID(t *testing.T) {
	_, _, _, svc := newCatalogFixture(t)
	_, err := svc.GetChurch(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
