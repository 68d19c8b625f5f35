package services

import (
	"context"

	"github.com/google/uuid"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/request_models"
	"gravecare/internal/repositories"
	"gravecare/pkg/utils"
)

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*db_models.Cart, error)
	AddItem(ctx context.Context, userID uuid.UUID, req request_models.AddCartItemRequest) (*db_models.Cart, error)
	UpdateItem(ctx context.Context, userID uuid.UUID, itemID string, quantity int) (*db_models.Cart, error)
	RemoveItem(ctx context.Context, userID uuid.UUID, itemID string) (*db_models.Cart, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart returns the user's cart, or an empty unsaved one when they have
// never added anything.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*db_models.Cart, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if cart == nil {
		return &db_models.Cart{UserID: userID, Items: []db_models.CartItem{}}, nil
	}
	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req request_models.AddCartItemRequest) (*db_models.Cart, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if cart == nil {
		cart = &db_models.Cart{UserID: userID}
		if err := s.cartRepo.Insert(ctx, cart); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	// Same product twice merges into one line instead of duplicating it.
	var existing *db_models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			existing = &cart.Items[i]
			break
		}
	}
	if existing != nil {
		existing.Quantity += req.Quantity
		if err := s.cartRepo.UpdateItem(ctx, existing); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else {
		item := &db_models.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price, // price at add time, immune to later repricing
			Quantity:  req.Quantity,
		}
		if err := s.cartRepo.InsertItem(ctx, item); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	return s.recompute(ctx, userID)
}

func (s *cartService) UpdateItem(ctx context.Context, userID uuid.UUID, itemID string, quantity int) (*db_models.Cart, error) {
	_, item, err := s.findOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if quantity == 0 {
		if err := s.cartRepo.DeleteItem(ctx, item.ID.String()); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else {
		item.Quantity = quantity
		if err := s.cartRepo.UpdateItem(ctx, item); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}
	return s.recompute(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, itemID string) (*db_models.Cart, error) {
	_, item, err := s.findOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.DeleteItem(ctx, item.ID.String()); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return s.recompute(ctx, userID)
}

func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if cart == nil {
		return nil
	}
	if err := s.cartRepo.Delete(ctx, cart.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *cartService) findOwnedItem(ctx context.Context, userID uuid.UUID, itemID string) (*db_models.Cart, *db_models.CartItem, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, nil, utils.ErrDatabaseError
	}
	if cart == nil {
		return nil, nil, utils.ErrCartNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ID.String() == itemID {
			return cart, &cart.Items[i], nil
		}
	}
	return nil, nil, utils.ErrNotFound
}

// recompute derives the total from scratch. The stored total is a cache of
// sum(quantity * unit_price), never incremented in place.
func (s *cartService) recompute(ctx context.Context, userID uuid.UUID) (*db_models.Cart, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if cart == nil {
		return nil, utils.ErrCartNotFound
	}

	total := 0.0
	for _, item := range cart.Items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	if total != cart.Total {
		if err := s.cartRepo.UpdateTotal(ctx, cart.ID, total); err != nil {
			return nil, utils.ErrDatabaseError
		}
		cart.Total = total
	}
	return cart, nil
}
