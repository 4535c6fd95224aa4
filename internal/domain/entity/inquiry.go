package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MinInquiryMessageLength is the shortest accepted inquiry body before the
// sender's contact block is prepended.
const MinInquiryMessageLength = 10

// InquiryStatus is the vendor-managed state of a lead.
type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "NEW"
	InquiryStatusContacted InquiryStatus = "CONTACTED"
	InquiryStatusConverted InquiryStatus = "CONVERTED"
	InquiryStatusClosed    InquiryStatus = "CLOSED"
)

// IsValid reports whether s is one of the known statuses.
func (s InquiryStatus) IsValid() bool {
	switch s {
	case InquiryStatusNew, InquiryStatusContacted, InquiryStatusConverted, InquiryStatusClosed:
		return true
	}

	return false
}

// Inquiry is a lead submitted against a vendor profile. UserID is nil for
// guest submissions. The sender's contact details are folded into Message at
// creation time, so an inquiry stays readable even if the sender's account is
// later removed.
type Inquiry struct {
	ID         int64         `json:"id"`
	VendorID   int64         `json:"vendor_id"`
	UserID     *uuid.UUID    `json:"user_id"`
	OccasionID *int64        `json:"occasion_id"`
	EventDate  *time.Time    `json:"event_date"`
	Message    string        `json:"message"`
	Status     InquiryStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`

	// VendorName and OccasionName are filled from the joined rows on admin
	// reads and are not stored.
	VendorName   string `json:"vendor_name,omitempty"`
	OccasionName string `json:"occasion_name,omitempty"`
}

// ComposeInquiryMessage prepends the sender's contact block to the free-form
// message body. Phone falls back to "N/A" when absent.
func ComposeInquiryMessage(name, email string, phone *string, message string) string {
	phoneValue := "N/A"
	if phone != nil && *phone != "" {
		phoneValue = *phone
	}

	return fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\n\n%s", name, email, phoneValue, message)
}
