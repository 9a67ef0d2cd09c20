package service

import (
	"context"
	"errors"
	"fmt"
	"grocery-bazaar-backend/internal/client"
	"grocery-bazaar-backend/internal/dto"
	"grocery-bazaar-backend/internal/model"
	"grocery-bazaar-backend/internal/repository"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	paymentMethod   = "sslcommerz"
	defaultCurrency = "BDT"
)

// PaymentService runs the order-payment reconciliation workflow. SubmitOrder
// moves an order from submitted to pending; the three callback transitions are
// driven by the gateway redirecting the buyer back to this service.
//
// The callbacks arrive unauthenticated; the gateway offers no signature to
// verify, so origin is not checked here.
type PaymentService interface {
	SubmitOrder(ctx context.Context, req *dto.SubmitOrderRequest) (*dto.SubmitOrderResponse, error)
	MarkOrderPaid(ctx context.Context, transactionID string) error
	RemoveFailedOrder(ctx context.Context, transactionID string) error
	GetOrder(ctx context.Context, orderID uint) (*model.Order, error)
	GetOrderByTransactionID(ctx context.Context, transactionID string) (*model.Order, error)
	ListOrders(ctx context.Context) ([]*model.Order, error)
}

type paymentServiceImpl struct {
	paymentClient  client.PaymentClient
	orderRepo      repository.OrderRepository
	serviceBaseURL string
}

func NewPaymentService(
	paymentClient client.PaymentClient,
	orderRepo repository.OrderRepository,
	serviceBaseURL string,
) PaymentService {
	return &paymentServiceImpl{
		paymentClient:  paymentClient,
		orderRepo:      orderRepo,
		serviceBaseURL: serviceBaseURL,
	}
}

func (s *paymentServiceImpl) SubmitOrder(ctx context.Context, req *dto.SubmitOrderRequest) (*dto.SubmitOrderResponse, error) {
	if req == nil || len(req.Items) == 0 || req.TotalAmount <= 0 {
		return nil, ErrInvalidOrder
	}

	transactionID := uuid.NewString()

	names := make([]string, len(req.Items))
	categories := make([]string, len(req.Items))
	for i, item := range req.Items {
		names[i] = item.Name
		categories[i] = item.Category
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	resp, err := s.paymentClient.InitiatePayment(ctx, &client.InitiationRequest{
		TotalAmount:     decimal.NewFromFloat(req.TotalAmount).StringFixed(2),
		Currency:        currency,
		TransactionID:   transactionID,
		SuccessURL:      s.callbackURL("success", transactionID),
		FailURL:         s.callbackURL("fail", transactionID),
		CancelURL:       s.callbackURL("cancel", transactionID),
		CustomerName:    req.Name,
		CustomerEmail:   req.Email,
		CustomerAddress: req.Address,
		ProductName:     strings.Join(names, ", "),
		ProductCategory: strings.Join(categories, ", "),
	})
	if err != nil {
		// nothing persisted: the order exists only once the gateway accepts
		return nil, fmt.Errorf("gateway initiation: %w", err)
	}

	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = model.OrderItem{
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	order := &model.Order{
		CustomerName:  req.Name,
		Email:         req.Email,
		Address:       req.Address,
		Items:         items,
		TotalAmount:   req.TotalAmount,
		TransactionID: transactionID,
		PaymentStatus: false,
		PaymentMethod: paymentMethod,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("store pending order: %w", err)
	}

	return &dto.SubmitOrderResponse{URL: resp.GatewayPageURL}, nil
}

// MarkOrderPaid is the success transition. A transaction id that matches no
// pending order (unknown, already paid, or lost to a racing fail callback)
// reports ErrTransactionNotFound; the caller absorbs it, it is not a server
// fault.
func (s *paymentServiceImpl) MarkOrderPaid(ctx context.Context, transactionID string) error {
	if transactionID == "" {
		return ErrMissingTransactionID
	}

	affected, err := s.orderRepo.MarkPaid(ctx, transactionID, time.Now())
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// RemoveFailedOrder is the fail transition: the pending order is deleted
// rather than flagged. Deleting nothing is fine, the outcome for the caller
// is the same.
func (s *paymentServiceImpl) RemoveFailedOrder(ctx context.Context, transactionID string) error {
	if transactionID == "" {
		return ErrMissingTransactionID
	}

	if _, err := s.orderRepo.DeleteByTransactionID(ctx, transactionID); err != nil {
		return fmt.Errorf("delete failed order: %w", err)
	}

	return nil
}

// The cancel callback intentionally has no transition: a buyer who backs out
// of the hosted page leaves the order pending for the fail callback or manual
// reconciliation.

func (s *paymentServiceImpl) GetOrder(ctx context.Context, orderID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *paymentServiceImpl) GetOrderByTransactionID(ctx context.Context, transactionID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByTransactionID(ctx, transactionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *paymentServiceImpl) ListOrders(ctx context.Context) ([]*model.Order, error) {
	return s.orderRepo.List(ctx)
}

func (s *paymentServiceImpl) callbackURL(kind, transactionID string) string {
	return fmt.Sprintf("%s/payment/%s?transactionId=%s", s.serviceBaseURL, kind, transactionID)
}
