package model

type Category struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`

	// カテゴリ削除時は商品もまとめて削除
	Products []Product `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
