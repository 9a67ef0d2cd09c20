package repository

import (
	"context"
	"grocery-bazaar-backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, orderID uint) (*model.Order, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*model.Order, error)
	List(ctx context.Context) ([]*model.Order, error)
	ListByEmail(ctx context.Context, email string) ([]*model.Order, error)
	MarkPaid(ctx context.Context, transactionID string, paidAt time.Time) (int64, error)
	DeleteByTransactionID(ctx context.Context, transactionID string) (int64, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID uint) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", orderID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindByTransactionID(ctx context.Context, transactionID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("transaction_id = ?", transactionID).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) List(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) ListByEmail(ctx context.Context, email string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("email = ?", email).
		Find(&orders).Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

// MarkPaid flips a pending order to paid. The payment_status predicate makes
// the update single-shot: a second call for the same transaction id, or a call
// racing a concurrent delete, matches zero rows.
func (r *orderRepoImpl) MarkPaid(ctx context.Context, transactionID string, paidAt time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("transaction_id = ? AND payment_status = ?", transactionID, false).
		Updates(map[string]interface{}{
			"payment_status": true,
			"paid_at":        paidAt,
		})

	return result.RowsAffected, result.Error
}

// DeleteByTransactionID removes a pending order. Paid orders never match, so
// a fail callback arriving after a success callback is a no-op.
func (r *orderRepoImpl) DeleteByTransactionID(ctx context.Context, transactionID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("transaction_id = ? AND payment_status = ?", transactionID, false).
		Delete(&model.Order{})

	return result.RowsAffected, result.Error
}
