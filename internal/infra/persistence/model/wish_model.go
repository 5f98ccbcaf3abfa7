package model

import (
	"time"

	"github.com/shopspring/decimal"

	"wishlist/internal/domain/entity"
)

// WishModel mirrors the 'wishes' table. Price is stored as numeric to keep
// exact decimal semantics for money values.
type WishModel struct {
	ID          int64            `gorm:"primaryKey;autoIncrement"`
	UserID      int64            `gorm:"index;not null"`
	Title       string           `gorm:"type:varchar(200);not null"`
	Description string           `gorm:"type:text"`
	Price       *decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WishModel) TableName() string {
	return "wishes"
}

// ToEntity converts the persistence model to the domain entity.
func (m *WishModel) ToEntity() *entity.Wish {
	return &entity.Wish{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// WishModelFromEntity converts a domain entity to the persistence model.
func WishModelFromEntity(wish *entity.Wish) *WishModel {
	return &WishModel{
		ID:          wish.ID,
		UserID:      wish.UserID,
		Title:       wish.Title,
		Description: wish.Description,
		Price:       wish.Price,
		CreatedAt:   wish.CreatedAt,
		UpdatedAt:   wish.UpdatedAt,
	}
}
