package entity

// Master data: read-mostly reference entities seeded once. Each node is a
// named record with a unique slug and, where applicable, a parent reference.

// Country is the root of the geography hierarchy.
type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// State belongs to a Country.
type State struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Slug      string   `json:"slug"`
	CountryID int64    `json:"country_id"`
	Country   *Country `json:"country,omitempty"`
}

// City belongs to a State and is the primary location filter for vendors.
type City struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	StateID int64     `json:"state_id"`
	State   *State    `json:"state,omitempty"`
	Regions []*Region `json:"regions,omitempty"`
}

// Region partitions a City.
type Region struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Slug   string  `json:"slug"`
	CityID int64   `json:"city_id"`
	Areas  []*Area `json:"areas,omitempty"`
}

// Area is the finest geography node a vendor can pin itself to.
type Area struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	RegionID int64   `json:"region_id"`
	Region   *Region `json:"region,omitempty"`
}

// Category is the top-level business classification.
type Category struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	SubCategories []*SubCategory `json:"sub_categories,omitempty"`
}

// SubCategory refines a Category.
type SubCategory struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	CategoryID int64  `json:"category_id"`
}

// Amenity is a feature a vendor can offer (parking, catering, ...).
type Amenity struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Occasion is an event type a vendor can serve (wedding, birthday, ...).
type Occasion struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
