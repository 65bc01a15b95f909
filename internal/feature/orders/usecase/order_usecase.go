// Package usecase implements the order pipeline: creation, listing and status updates,
// plus the read-only aggregation queries.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"shop_backend/internal/feature/orders/domain/entity"
)

// OrderRepository abstracts order persistence.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type OrderRepository interface {
	// Create stores the header and all lines as one unit and fills in generated ids.
	Create(ctx context.Context, o *entity.Order) (uint, error)
	// List returns every order newest first, lines included.
	List(ctx context.Context) ([]entity.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.Order, error)
	// UpdateStatus returns the number of affected rows.
	UpdateStatus(ctx context.Context, id uint, status entity.Status) (int64, error)
}

// ProductLookup resolves catalog snapshots for a set of product ids.
// Ids with no product are simply absent from the result.
type ProductLookup interface {
	FindByIDs(ctx context.Context, ids []uint) ([]entity.ProductSnapshot, error)
}

// OrderNotifier is told about new orders. Failures never fail the order.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, userID, orderID uint, total decimal.Decimal) error
}

// ItemInput is one submitted line.
type ItemInput struct {
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

// CreateOrderInput is a client submission. Nil optional fields are taken from Defaults.
type CreateOrderInput struct {
	UserID     uint
	TotalPrice decimal.Decimal
	Items      []ItemInput

	Address       *string
	PaymentMethod *string
	DeliveryFee   *decimal.Decimal
	Discount      *decimal.Decimal
	Note          *string
}

// NotifyTimeout bounds one background OrderPlaced call.
const NotifyTimeout = 90 * time.Second

type orderUsecase struct {
	orders   OrderRepository
	products ProductLookup
	notifier OrderNotifier
	defaults Defaults

	notifyTimeout time.Duration
	pending       sync.WaitGroup
}

// NewOrderUsecase wires the order pipeline. notifier may be nil.
func NewOrderUsecase(orders OrderRepository, products ProductLookup, notifier OrderNotifier, defaults Defaults) *orderUsecase {
	return &orderUsecase{
		orders:        orders,
		products:      products,
		notifier:      notifier,
		defaults:      defaults,
		notifyTimeout: NotifyTimeout,
	}
}

// WaitNotifications blocks until every background OrderPlaced call has returned.
// Call it during shutdown after the HTTP server has stopped accepting requests.
func (u *orderUsecase) WaitNotifications() {
	u.pending.Wait()
}

func (in CreateOrderInput) validate() error {
	if in.UserID == 0 {
		return fmt.Errorf("%w: userId is required", ErrInvalidOrder)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidOrder)
	}
	if in.TotalPrice.IsNegative() {
		return fmt.Errorf("%w: totalPrice must be >= 0", ErrInvalidOrder)
	}
	if in.DeliveryFee != nil && in.DeliveryFee.IsNegative() {
		return fmt.Errorf("%w: deliveryFee must be >= 0", ErrInvalidOrder)
	}
	if in.Discount != nil && in.Discount.IsNegative() {
		return fmt.Errorf("%w: orderDiscount must be >= 0", ErrInvalidOrder)
	}
	for i, it := range in.Items {
		switch {
		case it.ProductID == 0:
			return fmt.Errorf("%w: items[%d].productId is required", ErrInvalidOrder, i)
		case it.Quantity <= 0:
			return fmt.Errorf("%w: items[%d].quantity must be > 0", ErrInvalidOrder, i)
		case it.Price.IsNegative():
			return fmt.Errorf("%w: items[%d].price must be >= 0", ErrInvalidOrder, i)
		}
	}
	return nil
}

// CreateOrder validates the submission, snapshots product display data onto each line
// and persists header plus lines in one transaction.
func (u *orderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (uint, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}

	ids := make([]uint, 0, len(in.Items))
	for _, it := range in.Items {
		ids = append(ids, it.ProductID)
	}
	found, err := u.products.FindByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("lookup products: %w", err)
	}
	snapshots := make(map[uint]entity.ProductSnapshot, len(found))
	for _, p := range found {
		snapshots[p.ID] = p
	}

	order := &entity.Order{
		UserID:        in.UserID,
		TotalPrice:    in.TotalPrice,
		Status:        entity.StatusPending,
		Address:       stringOr(in.Address, u.defaults.Address),
		PaymentMethod: stringOr(in.PaymentMethod, u.defaults.PaymentMethod),
		DeliveryFee:   decimalOr(in.DeliveryFee, u.defaults.DeliveryFee),
		Discount:      decimalOr(in.Discount, u.defaults.Discount),
		Note:          stringOr(in.Note, u.defaults.Note),
		Lines:         make([]entity.OrderLine, 0, len(in.Items)),
	}
	for _, it := range in.Items {
		p, ok := snapshots[it.ProductID]
		if !ok {
			return 0, fmt.Errorf("%w: id %d", ErrProductNotFound, it.ProductID)
		}
		order.Lines = append(order.Lines, entity.OrderLine{
			ProductID:          it.ProductID,
			ProductName:        p.Name,
			ProductImage:       p.Image,
			ProductDescription: p.Description,
			Quantity:           it.Quantity,
			Price:              it.Price,
		})
	}

	if expected := order.ExpectedTotal(); !expected.Equal(order.TotalPrice) {
		slog.Warn("order total does not match lines",
			"user_id", in.UserID,
			"total_price", order.TotalPrice.String(),
			"expected", expected.String(),
		)
	}

	id, err := u.orders.Create(ctx, order)
	if err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}
	slog.Info("order created", "order_id", id, "user_id", in.UserID, "lines", len(order.Lines))

	u.notifyPlaced(ctx, in.UserID, id, order.TotalPrice)
	return id, nil
}

// notifyPlaced は注文通知をバックグラウンドで送ります。
// 通知はレート制限や Webhook で待たされることがあるため、注文の応答を待たせません。
// リクエストがキャンセルされても通知は継続します。
func (u *orderUsecase) notifyPlaced(ctx context.Context, userID, orderID uint, total decimal.Decimal) {
	if u.notifier == nil {
		return
	}
	bg := context.WithoutCancel(ctx)
	u.pending.Go(func() {
		nctx, cancel := context.WithTimeout(bg, u.notifyTimeout)
		defer cancel()
		if err := u.notifier.OrderPlaced(nctx, userID, orderID, total); err != nil {
			slog.Warn("order notification failed", "order_id", orderID, "user_id", userID, "error", err)
		}
	})
}

func (u *orderUsecase) ListOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// ListOrdersByUser is the customer's own order history.
func (u *orderUsecase) ListOrdersByUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidOrder)
	}
	orders, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders for user %d: %w", userID, err)
	}
	return orders, nil
}

// UpdateStatus sets the status label. Zero affected rows means the order does not exist.
func (u *orderUsecase) UpdateStatus(ctx context.Context, id uint, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: status is required", ErrInvalidStatus)
	}
	status, ok := entity.ParseStatus(raw)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}

	n, err := u.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update order %d status: %w", id, err)
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	slog.Info("order status updated", "order_id", id, "status", status)
	return nil
}

func stringOr(v *string, def string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return def
	}
	return strings.TrimSpace(*v)
}

func decimalOr(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}
