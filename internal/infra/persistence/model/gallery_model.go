package model

import "time"

// GalleryImageModel mirrors the 'gallery_images' table.
type GalleryImageModel struct {
	ID           int64  `gorm:"primary_key"`
	VendorID     int64  `gorm:"not null;index"`
	MediaURL     string `gorm:"type:varchar(500);not null"`
	MediaType    string `gorm:"type:varchar(50);not null;default:'image'"`
	IsCoverImage bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (GalleryImageModel) TableName() string {
	return "gallery_images"
}
