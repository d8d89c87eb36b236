package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

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
	return &orderRepository{db: db}
}

// Create inserts the order and its items in one statement chain.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references an unknown user or product")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order item quantity must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		if i < len(order.Items) {
			order.Items[i].ID = itemM.ID
			order.Items[i].OrderID = orderM.ID
		}
	}

	return nil
}

// FindByID loads an order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// List returns orders matching filter with their items, newest first.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	query := repo.db.WithContext(ctx).Preload("Items")
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.SellerID != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = orders.id AND oi.seller_id = ?)",
			*filter.SellerID,
		)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var orderModels []*model.OrderModel
	if err := paginate(query, filter.Limit, filter.Offset).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateStatus moves the order from one status to another with a compare-and-set.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 1 {
		return nil
	}

	return statusMissOrConflict(ctx, repo.db, &model.OrderModel{}, id, repository.ErrOrderNotFound)
}

// preOrderRepository implements the repository.PreOrderRepository interface.
type preOrderRepository struct {
	db *gorm.DB
}

// NewPreOrderRepository is the constructor for preOrderRepository.
func NewPreOrderRepository(db *gorm.DB) repository.PreOrderRepository {
	return &preOrderRepository{db: db}
}

// Create persists a new pre-order.
func (repo *preOrderRepository) Create(ctx context.Context, preOrder *entity.PreOrder) error {
	preOrderM := fromPreOrderDomain(preOrder)

	if err := repo.db.WithContext(ctx).Create(preOrderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("pre-order references an unknown product")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("pre-order quantity must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create pre-order")
	}

	preOrder.ID = preOrderM.ID
	preOrder.CreatedAt = preOrderM.CreatedAt
	preOrder.UpdatedAt = preOrderM.UpdatedAt

	return nil
}

// FindByID retrieves a pre-order by its unique ID.
func (repo *preOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PreOrder, error) {
	var preOrderM model.PreOrderModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&preOrderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find pre-order by ID")
	}

	return toPreOrderDomain(&preOrderM), nil
}

// List returns pre-orders matching filter, newest first.
func (repo *preOrderRepository) List(ctx context.Context, filter repository.PreOrderFilter) ([]*entity.PreOrder, error) {
	query := repo.db.WithContext(ctx)
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var preOrderModels []*model.PreOrderModel
	if err := query.Order("created_at DESC").Find(&preOrderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pre-orders")
	}

	preOrders := make([]*entity.PreOrder, 0, len(preOrderModels))
	for _, preOrderM := range preOrderModels {
		preOrders = append(preOrders, toPreOrderDomain(preOrderM))
	}

	return preOrders, nil
}

// UpdateStatus changes status and notes with a compare-and-set on the current status.
func (repo *preOrderRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	from, to entity.PreOrderStatus,
	notes string,
) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PreOrderModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status": string(to),
			"notes":  notes,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update pre-order status")
	}
	if result.RowsAffected == 1 {
		return nil
	}

	return statusMissOrConflict(ctx, repo.db, &model.PreOrderModel{}, id, repository.ErrPreOrderNotFound)
}

// statusMissOrConflict explains a compare-and-set that touched no row:
// the row is either gone or its status moved on.
func statusMissOrConflict(ctx context.Context, db *gorm.DB, table any, id uuid.UUID, notFound error) error {
	var exists int64
	if err := db.WithContext(ctx).Model(table).Where("id = ?", id).Count(&exists).Error; err != nil {
		return errors.Wrap(err, "failed to check row existence")
	}
	if exists == 0 {
		return notFound
	}

	return repository.ErrStatusConflict
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, toOrderItemDomain(&data.Items[i]))
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		Status:          entity.OrderStatus(data.Status),
		Subtotal:        data.Subtotal,
		Discount:        data.Discount,
		Total:           data.Total,
		CouponID:        data.CouponID,
		DeliveryAddress: data.DeliveryAddress,
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ID:          item.ID,
			OrderID:     data.ID,
			ProductID:   item.ProductID,
			SellerID:    item.SellerID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		Status:          string(data.Status),
		Subtotal:        data.Subtotal,
		Discount:        data.Discount,
		Total:           data.Total,
		CouponID:        data.CouponID,
		DeliveryAddress: data.DeliveryAddress,
		Items:           items,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	return &entity.OrderItem{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductID:   data.ProductID,
		SellerID:    data.SellerID,
		ProductName: data.ProductName,
		Quantity:    data.Quantity,
		UnitPrice:   data.UnitPrice,
	}
}

func toPreOrderDomain(data *model.PreOrderModel) *entity.PreOrder {
	if data == nil {
		return nil
	}

	return &entity.PreOrder{
		ID:                data.ID,
		UserID:            data.UserID,
		ProductID:         data.ProductID,
		SellerID:          data.SellerID,
		Quantity:          data.Quantity,
		UnitPrice:         data.UnitPrice,
		Total:             data.Total,
		EstimatedDelivery: data.EstimatedDelivery,
		Status:            entity.PreOrderStatus(data.Status),
		Notes:             data.Notes,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromPreOrderDomain(data *entity.PreOrder) *model.PreOrderModel {
	if data == nil {
		return nil
	}

	return &model.PreOrderModel{
		ID:                data.ID,
		UserID:            data.UserID,
		ProductID:         data.ProductID,
		SellerID:          data.SellerID,
		Quantity:          data.Quantity,
		UnitPrice:         data.UnitPrice,
		Total:             data.Total,
		EstimatedDelivery: data.EstimatedDelivery,
		Status:            string(data.Status),
		Notes:             data.Notes,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
