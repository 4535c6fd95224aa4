package model

// Catalog tables backing directory filters and onboarding option lists.
// They are seeded once and treated as read-only by the application.

// CountryModel mirrors the 'countries' table.
type CountryModel struct {
	ID   int64  `gorm:"primary_key"`
	Name string `gorm:"type:varchar(100);not null"`
	Slug string `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}

// StateModel mirrors the 'states' table.
type StateModel struct {
	ID        int64  `gorm:"primary_key"`
	Name      string `gorm:"type:varchar(100);not null"`
	Slug      string `gorm:"type:varchar(100);unique;not null"`
	CountryID int64  `gorm:"not null;index"`

	Country *CountryModel `gorm:"foreignKey:CountryID"`
}

// TableName explicitly sets the table name for GORM.
func (StateModel) TableName() string {
	return "states"
}

// CityModel mirrors the 'cities' table.
type CityModel struct {
	ID      int64  `gorm:"primary_key"`
	Name    string `gorm:"type:varchar(100);not null"`
	Slug    string `gorm:"type:varchar(100);unique;not null"`
	StateID int64  `gorm:"not null;index"`

	State   *StateModel    `gorm:"foreignKey:StateID"`
	Regions []*RegionModel `gorm:"foreignKey:CityID"`
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}

// RegionModel mirrors the 'regions' table.
type RegionModel struct {
	ID     int64  `gorm:"primary_key"`
	Name   string `gorm:"type:varchar(100);not null"`
	Slug   string `gorm:"type:varchar(100);unique;not null"`
	CityID int64  `gorm:"not null;index"`

	Areas []*AreaModel `gorm:"foreignKey:RegionID"`
}

// TableName explicitly sets the table name for GORM.
func (RegionModel) TableName() string {
	return "regions"
}

// AreaModel mirrors the 'areas' table.
type AreaModel struct {
	ID       int64  `gorm:"primary_key"`
	Name     string `gorm:"type:varchar(100);not null"`
	Slug     string `gorm:"type:varchar(100);unique;not null"`
	RegionID int64  `gorm:"not null;index"`

	Region *RegionModel `gorm:"foreignKey:RegionID"`
}

// TableName explicitly sets the table name for GORM.
func (AreaModel) TableName() string {
	return "areas"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID   int64  `gorm:"primary_key"`
	Name string `gorm:"type:varchar(100);not null"`
	Slug string `gorm:"type:varchar(100);unique;not null"`

	SubCategories []*SubCategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// SubCategoryModel mirrors the 'sub_categories' table.
type SubCategoryModel struct {
	ID         int64  `gorm:"primary_key"`
	Name       string `gorm:"type:varchar(100);not null"`
	Slug       string `gorm:"type:varchar(100);unique;not null"`
	CategoryID int64  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (SubCategoryModel) TableName() string {
	return "sub_categories"
}

// AmenityModel mirrors the 'amenities' table.
type AmenityModel struct {
	ID   int64  `gorm:"primary_key"`
	Name string `gorm:"type:varchar(100);not null"`
	Slug string `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (AmenityModel) TableName() string {
	return "amenities"
}

// OccasionModel mirrors the 'occasions' table.
type OccasionModel struct {
	ID   int64  `gorm:"primary_key"`
	Name string `gorm:"type:varchar(100);not null"`
	Slug string `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (OccasionModel) TableName() string {
	return "occasions"
}
