package adapters

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shop_backend/internal/feature/orders/domain/entity"
	"shop_backend/internal/feature/orders/usecase"
)

const lineBatchSize = 100

// orderRepository はOrderRepositoryのGORM実装です。
type orderRepository struct {
	db *gorm.DB
}

var _ usecase.OrderRepository = (*orderRepository)(nil)

// NewOrderRepository は指定されたDB接続でorderRepositoryを生成します。
func NewOrderRepository(db *gorm.DB) *orderRepository {
	return &orderRepository{db: db}
}

// Create はヘッダーと全明細を1トランザクションで保存します。
// 明細の挿入が1件でも失敗した場合はヘッダーごとロールバックされます。
func (r *orderRepository) Create(ctx context.Context, o *entity.Order) (uint, error) {
	if len(o.Lines) == 0 {
		return 0, fmt.Errorf("%w: order has no lines", usecase.ErrInvalidOrder)
	}
	m := toOrderModel(o)
	lines := m.Lines
	m.Lines = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. ヘッダーを挿入して採番された ID を取得
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return fmt.Errorf("insert order header: %w", err)
		}
		// 2. 明細をまとめて挿入
		for i := range lines {
			lines[i].OrderID = m.ID
		}
		if err := tx.CreateInBatches(&lines, lineBatchSize).Error; err != nil {
			return fmt.Errorf("insert order lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	o.ID = m.ID
	o.CreatedAt = m.CreatedAt
	for i := range o.Lines {
		o.Lines[i].ID = lines[i].ID
		o.Lines[i].OrderID = m.ID
	}
	return m.ID, nil
}

// List は全注文を新しい順に返します。
// ヘッダーと明細をそれぞれ1回ずつ読み込み、メモリ上で注文IDごとにまとめます。
func (r *orderRepository) List(ctx context.Context) ([]entity.Order, error) {
	var headers []orderHeaderRow
	if err := r.headerQuery(ctx).Scan(&headers).Error; err != nil {
		return nil, fmt.Errorf("read order headers: %w", err)
	}
	if len(headers) == 0 {
		return []entity.Order{}, nil
	}

	var lines []OrderLineModel
	if err := r.db.WithContext(ctx).
		Order("order_id ASC").
		Order("id ASC").
		Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("read order lines: %w", err)
	}
	return assemble(headers, lines), nil
}

// ListByUser は指定ユーザーの注文のみを List と同じ形で返します。
func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Order, error) {
	var headers []orderHeaderRow
	if err := r.headerQuery(ctx).Where("o.user_id = ?", userID).Scan(&headers).Error; err != nil {
		return nil, fmt.Errorf("read order headers: %w", err)
	}
	if len(headers) == 0 {
		return []entity.Order{}, nil
	}

	ownOrders := r.db.Model(&OrderModel{}).Select("id").Where("user_id = ?", userID)
	var lines []OrderLineModel
	if err := r.db.WithContext(ctx).
		Where("order_id IN (?)", ownOrders).
		Order("order_id ASC").
		Order("id ASC").
		Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("read order lines: %w", err)
	}
	return assemble(headers, lines), nil
}

// UpdateStatus は1行のステータスを更新し、影響行数を返します。
// updated_at も更新するため、同じステータスへの更新でも既存行なら 1 になります。
func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status entity.Status) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status)})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *orderRepository) headerQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("orders AS o").
		Select(`o.id, o.user_id, u.name AS customer_name, o.total_price, o.status,
			o.address, o.payment_method, o.delivery_fee, o.discount, o.note, o.created_at`).
		Joins("JOIN users u ON u.id = o.user_id").
		Order("o.created_at DESC").
		Order("o.id DESC")
}

// assemble はヘッダーの順序を保ったまま明細を割り当てます。
func assemble(headers []orderHeaderRow, lines []OrderLineModel) []entity.Order {
	byOrder := make(map[uint][]entity.OrderLine, len(headers))
	for _, l := range lines {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l.toEntity())
	}

	out := make([]entity.Order, 0, len(headers))
	for _, h := range headers {
		o := h.toEntity()
		o.Lines = byOrder[h.ID]
		if o.Lines == nil {
			o.Lines = []entity.OrderLine{}
		}
		out = append(out, o)
	}
	return out
}
