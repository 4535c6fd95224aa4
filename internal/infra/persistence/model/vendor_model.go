package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorProfileModel mirrors the 'vendor_profiles' table. The numeric key is
// deliberate: public profile URLs fall back to the raw id when no slug has
// been assigned yet.
type VendorProfileModel struct {
	ID            int64     `gorm:"primary_key"`
	UserID        uuid.UUID `gorm:"type:uuid;unique;not null"`
	BusinessName  *string   `gorm:"type:varchar(150)"`
	Slug          *string   `gorm:"type:varchar(160);unique"`
	Description   *string   `gorm:"type:text"`
	CategoryID    *int64    `gorm:"index"`
	SubCategoryID *int64
	CityID        *int64 `gorm:"index"`
	AreaID        *int64
	Landmark      *string `gorm:"type:varchar(255)"`
	AvgRating     float64 `gorm:"type:decimal(3,2);not null;default:0"`
	ReviewCount   int     `gorm:"not null;default:0"`
	IsVerified    bool    `gorm:"not null;default:false"`
	IsDeleted     bool    `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User         *UserModel           `gorm:"foreignKey:UserID"`
	Category     *CategoryModel       `gorm:"foreignKey:CategoryID"`
	SubCategory  *SubCategoryModel    `gorm:"foreignKey:SubCategoryID"`
	City         *CityModel           `gorm:"foreignKey:CityID"`
	Area         *AreaModel           `gorm:"foreignKey:AreaID"`
	Amenities    []*AmenityModel      `gorm:"many2many:vendor_amenities;joinForeignKey:VendorID;joinReferences:AmenityID"`
	Occasions    []*OccasionModel     `gorm:"many2many:vendor_occasions;joinForeignKey:VendorID;joinReferences:OccasionID"`
	Gallery      []*GalleryImageModel `gorm:"foreignKey:VendorID"`
	SocialLinks  []*SocialLinkModel   `gorm:"foreignKey:VendorID"`
	OpeningHours []*OpeningHourModel  `gorm:"foreignKey:VendorID"`
}

// TableName explicitly sets the table name for GORM.
func (VendorProfileModel) TableName() string {
	return "vendor_profiles"
}

// VendorAmenityModel mirrors the 'vendor_amenities' join table.
type VendorAmenityModel struct {
	VendorID  int64 `gorm:"primary_key"`
	AmenityID int64 `gorm:"primary_key"`
}

// TableName explicitly sets the table name for GORM.
func (VendorAmenityModel) TableName() string {
	return "vendor_amenities"
}

// VendorOccasionModel mirrors the 'vendor_occasions' join table.
type VendorOccasionModel struct {
	VendorID   int64 `gorm:"primary_key"`
	OccasionID int64 `gorm:"primary_key"`
}

// TableName explicitly sets the table name for GORM.
func (VendorOccasionModel) TableName() string {
	return "vendor_occasions"
}

// SocialLinkModel mirrors the 'social_links' table.
type SocialLinkModel struct {
	ID       int64  `gorm:"primary_key"`
	VendorID int64  `gorm:"not null;index"`
	Platform string `gorm:"type:varchar(50);not null"`
	URL      string `gorm:"type:varchar(500);not null"`
}

// TableName explicitly sets the table name for GORM.
func (SocialLinkModel) TableName() string {
	return "social_links"
}

// OpeningHourModel mirrors the 'opening_hours' table. DayOfWeek is 0 (Sunday) to 6.
type OpeningHourModel struct {
	ID        int64  `gorm:"primary_key"`
	VendorID  int64  `gorm:"not null;index"`
	DayOfWeek int    `gorm:"not null"`
	OpensAt   string `gorm:"type:varchar(5)"`
	ClosesAt  string `gorm:"type:varchar(5)"`
	IsClosed  bool   `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (OpeningHourModel) TableName() string {
	return "opening_hours"
}
