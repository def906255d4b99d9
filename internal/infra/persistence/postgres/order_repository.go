// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/domain/repository"
	"drogo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order record.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated timestamps
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindOrderByID retrieves an order by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByUser retrieves a user's order history, newest first.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderMs []model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// FindAllOrders retrieves every order, newest first.
func (repo *orderRepository) FindAllOrders(ctx context.Context) ([]*entity.Order, error) {
	var orderMs []model.OrderModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orderMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all orders")
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// UpdateOrderStatus sets the status and updated timestamp of an order. The
// UPDATE is conditional on the stored status still allowing the transition,
// so a writer that raced a cancellation or a faster step affects no rows
// instead of regressing the status.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error {
	sources := entity.TransitionSources(status)
	from := make([]string, 0, len(sources))
	for _, s := range sources {
		from = append(from, string(s))
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": updatedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		// Zero rows is either an unknown id or a lost transition race.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.OrderModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
		}
		if count == 0 {
			return repository.ErrOrderNotFound
		}

		return repository.ErrInvalidStatusTransition
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:                data.ID,
		UserID:            data.UserID,
		Items:             data.Items,
		TotalAmount:       data.TotalAmount,
		DeliveryAddress:   data.DeliveryAddress,
		DeliverySpot:      data.DeliverySpot,
		TerraceAccessible: data.TerraceAccessible,
		Status:            entity.OrderStatus(data.Status),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
		EstimatedDelivery: data.EstimatedDelivery,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel for persistence.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:                data.ID,
		UserID:            data.UserID,
		Items:             data.Items,
		TotalAmount:       data.TotalAmount,
		DeliveryAddress:   data.DeliveryAddress,
		DeliverySpot:      data.DeliverySpot,
		TerraceAccessible: data.TerraceAccessible,
		Status:            string(data.Status),
		EstimatedDelivery: data.EstimatedDelivery,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
