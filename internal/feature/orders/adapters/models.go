// Package adapters はordersフィーチャーのGORM実装を提供します。
package adapters

import (
	"time"

	"github.com/shopspring/decimal"

	authentity "shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/orders/domain/entity"
)

// OrderModel は orders テーブル (注文ヘッダー) の行です。
// user_id は users.id への外部キーで、存在しないユーザーの注文は DB が拒否します。
type OrderModel struct {
	ID         uint             `gorm:"primaryKey"`
	UserID     uint             `gorm:"not null;index"`
	User       *authentity.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	TotalPrice decimal.Decimal  `gorm:"type:decimal(14,2);not null"`
	Status     string           `gorm:"size:32;not null;default:pending;index"`

	Address       string          `gorm:"size:512;not null"`
	PaymentMethod string          `gorm:"size:64;not null"`
	DeliveryFee   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Discount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Note          string          `gorm:"type:text"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Lines []OrderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderModel) TableName() string { return "orders" }

// OrderLineModel は order_lines テーブルの行です。
// product_id は表示用の参照で外部キーではありません (商品削除後も履歴を残すため)。
type OrderLineModel struct {
	ID                 uint            `gorm:"primaryKey"`
	OrderID            uint            `gorm:"not null;index"`
	ProductID          uint            `gorm:"not null;index"`
	ProductName        string          `gorm:"size:255;not null"`
	ProductImage       string          `gorm:"size:512"`
	ProductDescription string          `gorm:"type:text"`
	Quantity           int             `gorm:"not null;check:chk_order_lines_quantity,quantity > 0"`
	Price              decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

func (OrderLineModel) TableName() string { return "order_lines" }

// Models はマイグレーション対象を依存順に返します (users を先に作成する必要があります)。
func Models() []any {
	return []any{&OrderModel{}, &OrderLineModel{}}
}

func toOrderModel(o *entity.Order) *OrderModel {
	m := &OrderModel{
		UserID:        o.UserID,
		TotalPrice:    o.TotalPrice,
		Status:        string(o.Status),
		Address:       o.Address,
		PaymentMethod: o.PaymentMethod,
		DeliveryFee:   o.DeliveryFee,
		Discount:      o.Discount,
		Note:          o.Note,
		Lines:         make([]OrderLineModel, 0, len(o.Lines)),
	}
	for _, l := range o.Lines {
		m.Lines = append(m.Lines, OrderLineModel{
			ProductID:          l.ProductID,
			ProductName:        l.ProductName,
			ProductImage:       l.ProductImage,
			ProductDescription: l.ProductDescription,
			Quantity:           l.Quantity,
			Price:              l.Price,
		})
	}
	return m
}

func (m OrderLineModel) toEntity() entity.OrderLine {
	return entity.OrderLine{
		ID:                 m.ID,
		OrderID:            m.OrderID,
		ProductID:          m.ProductID,
		ProductName:        m.ProductName,
		ProductImage:       m.ProductImage,
		ProductDescription: m.ProductDescription,
		Quantity:           m.Quantity,
		Price:              m.Price,
	}
}

// orderHeaderRow は orders と users を結合した一覧用の行です。
type orderHeaderRow struct {
	ID            uint
	UserID        uint
	CustomerName  string
	TotalPrice    decimal.Decimal
	Status        string
	Address       string
	PaymentMethod string
	DeliveryFee   decimal.Decimal
	Discount      decimal.Decimal
	Note          string
	CreatedAt     time.Time
}

func (r orderHeaderRow) toEntity() entity.Order {
	return entity.Order{
		ID:            r.ID,
		UserID:        r.UserID,
		CustomerName:  r.CustomerName,
		TotalPrice:    r.TotalPrice,
		Status:        entity.Status(r.Status),
		Address:       r.Address,
		PaymentMethod: r.PaymentMethod,
		DeliveryFee:   r.DeliveryFee,
		Discount:      r.Discount,
		Note:          r.Note,
		CreatedAt:     r.CreatedAt,
	}
}
