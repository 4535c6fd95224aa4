package entity

import "time"

// GalleryImage is one uploaded media item on a vendor profile. At most one
// image per vendor carries IsCover=true; the oldest image becomes the cover
// when none is marked.
type GalleryImage struct {
	ID        int64     `json:"id"`
	VendorID  int64     `json:"vendor_id"`
	MediaURL  string    `json:"media_url"`
	MediaType string    `json:"media_type"`
	IsCover   bool      `json:"is_cover"`
	CreatedAt time.Time `json:"created_at"`
}
