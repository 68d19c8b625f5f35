package services

import (
	"context"

	"github.com/google/uuid"

	"gravecare/internal/models/db_models"
	"gravecare/internal/models/request_models"
	"gravecare/internal/repositories"
	"gravecare/pkg/utils"
)

type CheckoutResult struct {
	Order       *db_models.Order `json:"order"`
	CheckoutURL string           `json:"checkout_url"`
	SessionID   string           `json:"session_id"`
}

type OrderService interface {
	Checkout(ctx context.Context, userID uuid.UUID, userEmail string, req request_models.CheckoutRequest) (*CheckoutResult, error)
	GetOrder(ctx context.Context, orderID, callerEmail string, isAdmin bool) (*db_models.Order, error)
	GetUserOrders(ctx context.Context, userID string) ([]db_models.Order, error)
	ListOrders(ctx context.Context, page, pageSize int) ([]db_models.Order, int64, error)
	UpdateStatus(ctx context.Context, orderID string, req request_models.UpdateOrderStatusRequest) error
}

type orderService struct {
	orderRepo repositories.OrderRepository
	cartRepo  repositories.CartRepository
	payments  PaymentService
}

func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, payments PaymentService) OrderService {
	return &orderService{orderRepo: orderRepo, cartRepo: cartRepo, payments: payments}
}

// Checkout snapshots the cart into an immutable order and opens a checkout
// session. The cart survives until the webhook confirms payment.
func (s *orderService) Checkout(ctx context.Context, userID uuid.UUID, userEmail string, req request_models.CheckoutRequest) (*CheckoutResult, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, utils.ErrCartNotFound
	}

	order := &db_models.Order{
		OrderNumber: utils.GenerateOrderNumber(),
		UserID:      userID,
		UserEmail:   userEmail,
		Status:      db_models.OrderStatusPending,
		IsPaid:      false,
	}
	if req.ShippingAddressID != nil {
		if id, err := uuid.Parse(*req.ShippingAddressID); err == nil {
			order.ShippingAddressID = &id
		}
	}
	if req.BillingAddressID != nil {
		if id, err := uuid.Parse(*req.BillingAddressID); err == nil {
			order.BillingAddressID = &id
		}
	}

	total := 0.0
	for _, item := range cart.Items {
		order.Items = append(order.Items, db_models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
		total += float64(item.Quantity) * item.UnitPrice
	}
	order.Total = total

	if err := s.orderRepo.Insert(ctx, order); err != nil {
		return nil, utils.ErrDatabaseError
	}

	session, err := s.payments.CreateOrderCheckout(ctx, order, cart.ID.String(), userEmail)
	if err != nil {
		return nil, err
	}

	return &CheckoutResult{
		Order:       order,
		CheckoutURL: session.URL,
		SessionID:   session.SessionID,
	}, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID, callerEmail string, isAdmin bool) (*db_models.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}
	if !isAdmin {
		if err := utils.RequireOwner(order.UserEmail, callerEmail); err != nil {
			return nil, err
		}
	}
	return order, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) ([]db_models.Order, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return orders, nil
}

func (s *orderService) ListOrders(ctx context.Context, page, pageSize int) ([]db_models.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		return nil, 0, utils.ErrInvalidPageSize
	}
	orders, total, err := s.orderRepo.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return orders, total, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID string, req request_models.UpdateOrderStatusRequest) error {
	status, ok := parseOrderStatus(req.Status)
	if !ok {
		return utils.ErrInvalidStatus
	}
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if order == nil {
		return utils.ErrOrderNotFound
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, status, req.Note); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func parseOrderStatus(s string) (db_models.OrderStatus, bool) {
	switch db_models.OrderStatus(s) {
	case db_models.OrderStatusPending,
		db_models.OrderStatusProcessing,
		db_models.OrderStatusDelivered,
		db_models.OrderStatusCancelled:
		return db_models.OrderStatus(s), true
	}
	return "", false
}
