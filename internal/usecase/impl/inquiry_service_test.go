package impl

import (
	"context"
	"strings"
	"testing"

	"vendir/internal/domain/entity"
	domainerrors "vendir/internal/domain/errors"
	"vendir/internal/domain/repository"
	mockRepo "vendir/internal/mocks/repository"
	mockSvc "vendir/internal/mocks/service"
	"vendir/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// inquiryServiceFixtures holds all test dependencies for inquiry service tests.
type inquiryServiceFixtures struct {
	service     usecase.InquiryUsecase
	inquiryRepo *mockRepo.MockInquiryRepository
	vendorRepo  *mockRepo.MockVendorRepository
	mailer      *mockSvc.MockMailer
}

func createTestInquiryService(t *testing.T) inquiryServiceFixtures {
	inquiryRepo := mockRepo.NewMockInquiryRepository(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	mailer := mockSvc.NewMockMailer(t)

	service := NewInquiryService(InquiryServiceParams{
		InquiryRepo: inquiryRepo,
		VendorRepo:  vendorRepo,
		Mailer:      mailer,
		Logger:      newDiscardLogger(),
	})

	return inquiryServiceFixtures{
		service:     service,
		inquiryRepo: inquiryRepo,
		vendorRepo:  vendorRepo,
		mailer:      mailer,
	}
}

func validInquiryInput(vendorID int64) usecase.SubmitInquiryInput {
	return usecase.SubmitInquiryInput{
		VendorID: vendorID,
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Message:  "Looking for a venue for 50 guests.",
	}
}

func TestInquiryService_SubmitInquiry_GuestSuccess(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()
	vendor := &entity.VendorProfile{ID: 1, BusinessName: strPtr("Sweet Crumbs")}

	fx.vendorRepo.EXPECT().FindPublicVendorByID(ctx, int64(1)).Return(vendor, nil)

	fx.inquiryRepo.EXPECT().
		CreateInquiry(ctx, mock.AnythingOfType("*entity.Inquiry")).
		Run(func(ctx context.Context, inquiry *entity.Inquiry) {
			inquiry.ID = 5
			assert.Nil(t, inquiry.UserID)
			assert.Equal(t, entity.InquiryStatusNew, inquiry.Status)
			assert.True(t, strings.HasPrefix(inquiry.Message, "Name: Jane Doe\nEmail: jane@example.com\nPhone: N/A\n\n"))
			assert.True(t, strings.HasSuffix(inquiry.Message, "Looking for a venue for 50 guests."))
		}).
		Return(nil)

	inquiry, err := fx.service.SubmitInquiry(ctx, validInquiryInput(1))

	require.NoError(t, err)
	assert.Equal(t, int64(5), inquiry.ID)
}

func TestInquiryService_SubmitInquiry_PhoneInContactBlock(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()
	vendor := &entity.VendorProfile{ID: 1}

	input := validInquiryInput(1)
	input.Phone = strPtr("+91-98765")

	fx.vendorRepo.EXPECT().FindPublicVendorByID(ctx, int64(1)).Return(vendor, nil)

	fx.inquiryRepo.EXPECT().
		CreateInquiry(ctx, mock.AnythingOfType("*entity.Inquiry")).
		Run(func(ctx context.Context, inquiry *entity.Inquiry) {
			assert.Contains(t, inquiry.Message, "Phone: +91-98765")
		}).
		Return(nil)

	_, err := fx.service.SubmitInquiry(ctx, input)

	require.NoError(t, err)
}

func TestInquiryService_SubmitInquiry_MessageTooShort(t *testing.T) {
	fx := createTestInquiryService(t)

	input := validInquiryInput(1)
	input.Message = "too short" // nine characters

	inquiry, err := fx.service.SubmitInquiry(context.Background(), input)

	assert.Nil(t, inquiry)
	assert.True(t, errors.Is(err, domainerrors.ErrInquiryMessageTooShort))
}

func TestInquiryService_SubmitInquiry_MessageAtMinimumLength(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()
	vendor := &entity.VendorProfile{ID: 1}

	input := validInquiryInput(1)
	input.Message = "ten  chars" // exactly ten characters

	fx.vendorRepo.EXPECT().FindPublicVendorByID(ctx, int64(1)).Return(vendor, nil)

	fx.inquiryRepo.EXPECT().
		CreateInquiry(ctx, mock.AnythingOfType("*entity.Inquiry")).
		Return(nil)

	_, err := fx.service.SubmitInquiry(ctx, input)

	require.NoError(t, err)
}

func TestInquiryService_SubmitInquiry_NameTooShort(t *testing.T) {
	fx := createTestInquiryService(t)

	input := validInquiryInput(1)
	input.Name = "J"

	inquiry, err := fx.service.SubmitInquiry(context.Background(), input)

	assert.Nil(t, inquiry)
	assert.Error(t, err)
}

func TestInquiryService_SubmitInquiry_InvalidEmail(t *testing.T) {
	fx := createTestInquiryService(t)

	input := validInquiryInput(1)
	input.Email = "not-an-email"

	inquiry, err := fx.service.SubmitInquiry(context.Background(), input)

	assert.Nil(t, inquiry)
	assert.Error(t, err)
}

func TestInquiryService_SubmitInquiry_VendorNotPublic(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()

	fx.vendorRepo.EXPECT().
		FindPublicVendorByID(ctx, int64(1)).
		Return(nil, repository.ErrVendorNotFound)

	inquiry, err := fx.service.SubmitInquiry(ctx, validInquiryInput(1))

	assert.Nil(t, inquiry)
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotFound))
}

func TestInquiryService_SubmitInquiry_NotificationFailureSwallowed(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()
	vendor := &entity.VendorProfile{
		ID:           1,
		BusinessName: strPtr("Sweet Crumbs"),
		Owner:        &entity.VendorOwner{FullName: "Owner", Email: "owner@example.com"},
	}

	fx.vendorRepo.EXPECT().FindPublicVendorByID(ctx, int64(1)).Return(vendor, nil)

	fx.inquiryRepo.EXPECT().
		CreateInquiry(ctx, mock.AnythingOfType("*entity.Inquiry")).
		Return(nil)

	fx.mailer.EXPECT().
		SendInquiryNotification(ctx, "owner@example.com", "Sweet Crumbs", mock.AnythingOfType("*entity.Inquiry")).
		Return(errors.New("smtp unavailable"))

	inquiry, err := fx.service.SubmitInquiry(ctx, validInquiryInput(1))

	// The inquiry is already committed; a dead mailer must not surface.
	require.NoError(t, err)
	assert.NotNil(t, inquiry)
}

func TestInquiryService_ListInquiries_StatusFilter(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}
	inquiries := []*entity.Inquiry{
		{ID: 1, Status: entity.InquiryStatusNew},
		{ID: 2, Status: entity.InquiryStatusClosed},
		{ID: 3, Status: entity.InquiryStatusNew},
	}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.inquiryRepo.EXPECT().FindInquiriesByVendor(ctx, int64(1)).Return(inquiries, nil)

	status := entity.InquiryStatusNew
	got, err := fx.service.ListInquiries(ctx, userID, &status)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestInquiryService_ListInquiries_NoFilter(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}
	inquiries := []*entity.Inquiry{
		{ID: 1, Status: entity.InquiryStatusNew},
		{ID: 2, Status: entity.InquiryStatusClosed},
	}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.inquiryRepo.EXPECT().FindInquiriesByVendor(ctx, int64(1)).Return(inquiries, nil)

	got, err := fx.service.ListInquiries(ctx, userID, nil)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestInquiryService_UpdateStatus_Success(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}
	inquiry := &entity.Inquiry{ID: 5, VendorID: 1, Status: entity.InquiryStatusNew}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.inquiryRepo.EXPECT().FindInquiryByID(ctx, int64(5)).Return(inquiry, nil)
	fx.inquiryRepo.EXPECT().
		UpdateInquiryStatus(ctx, int64(5), entity.InquiryStatusContacted).
		Return(nil)

	err := fx.service.UpdateStatus(ctx, userID, usecase.UpdateInquiryStatusInput{
		InquiryID: 5,
		Status:    entity.InquiryStatusContacted,
	})

	require.NoError(t, err)
}

func TestInquiryService_UpdateStatus_ReopenClosedLead(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}
	inquiry := &entity.Inquiry{ID: 5, VendorID: 1, Status: entity.InquiryStatusClosed}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.inquiryRepo.EXPECT().FindInquiryByID(ctx, int64(5)).Return(inquiry, nil)
	fx.inquiryRepo.EXPECT().
		UpdateInquiryStatus(ctx, int64(5), entity.InquiryStatusContacted).
		Return(nil)

	err := fx.service.UpdateStatus(ctx, userID, usecase.UpdateInquiryStatusInput{
		InquiryID: 5,
		Status:    entity.InquiryStatusContacted,
	})

	require.NoError(t, err)
}

func TestInquiryService_UpdateStatus_InvalidStatus(t *testing.T) {
	fx := createTestInquiryService(t)

	err := fx.service.UpdateStatus(context.Background(), uuid.New(), usecase.UpdateInquiryStatusInput{
		InquiryID: 5,
		Status:    entity.InquiryStatus("ARCHIVED"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInquiryStatusInvalid))
}

func TestInquiryService_UpdateStatus_ForeignInquiry(t *testing.T) {
	fx := createTestInquiryService(t)

	ctx := context.Background()
	userID := uuid.New()
	vendor := &entity.VendorProfile{ID: 1, UserID: userID}
	inquiry := &entity.Inquiry{ID: 5, VendorID: 2, Status: entity.InquiryStatusNew}

	fx.vendorRepo.EXPECT().FindVendorByUserID(ctx, userID).Return(vendor, nil)
	fx.inquiryRepo.EXPECT().FindInquiryByID(ctx, int64(5)).Return(inquiry, nil)

	err := fx.service.UpdateStatus(ctx, userID, usecase.UpdateInquiryStatusInput{
		InquiryID: 5,
		Status:    entity.InquiryStatusContacted,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrVendorOwnershipViolation))
}
