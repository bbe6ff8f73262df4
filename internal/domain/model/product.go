package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"type:varchar(100)" json:"category"`
	Price       int64  `gorm:"not null" json:"price"`
	Stock       int64  `gorm:"not null" json:"stock"`

	//展開サイズ（"S,M,L"形式で保存、表示時に分割）
	Sizes string `gorm:"type:text" json:"-"`

	ImageURL  string         `gorm:"type:text" json:"image_url"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// SizeList はカンマ区切りのサイズ文字列を分割して返す
func (p Product) SizeList() []string {
	out := []string{}
	for _, s := range strings.Split(p.Sizes, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// JoinSizes はサイズ一覧を保存形式（カンマ区切り）にする
func JoinSizes(sizes []string) string {
	out := make([]string, 0, len(sizes))
	for _, s := range sizes {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return strings.Join(out, ",")
}
