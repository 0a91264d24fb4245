package model

import "time"

type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64     `gorm:"not null;index" json:"product_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Comment   string    `gorm:"type:text" json:"comment"`
	Rating    int       `gorm:"not null" json:"rating"` // 1〜5
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
