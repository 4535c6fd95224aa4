package impl

import (
	"context"
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

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	vendorRepo  *mockRepo.MockVendorRepository
	reviewRepo  *mockRepo.MockReviewRepository
	inquiryRepo *mockRepo.MockInquiryRepository
	mailer      *mockSvc.MockMailer
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	vendorRepo := mockRepo.NewMockVendorRepository(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	inquiryRepo := mockRepo.NewMockInquiryRepository(t)
	mailer := mockSvc.NewMockMailer(t)

	service := NewAdminService(AdminServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		VendorRepo:  vendorRepo,
		ReviewRepo:  reviewRepo,
		InquiryRepo: inquiryRepo,
		Mailer:      mailer,
		Logger:      newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:     service,
		txManager:   txManager,
		userRepo:    userRepo,
		vendorRepo:  vendorRepo,
		reviewRepo:  reviewRepo,
		inquiryRepo: inquiryRepo,
		mailer:      mailer,
	}
}

func expectAdminCaller(ctx context.Context, fx adminServiceFixtures, callerID uuid.UUID) {
	fx.userRepo.EXPECT().
		FindUserByID(ctx, callerID).
		Return(&entity.User{ID: callerID, Role: entity.RoleAdmin}, nil)
}

func TestAdminService_ListUsers_NonAdminForbidden(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, callerID).
		Return(&entity.User{ID: callerID, Role: entity.RoleVendor}, nil)

	users, err := fx.service.ListUsers(ctx, callerID)

	assert.Nil(t, users)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAdminService_ListUsers_UnknownCallerUnauthorized(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()

	// The role claim in the token is not trusted; a deleted admin is locked out.
	fx.userRepo.EXPECT().
		FindUserByID(ctx, callerID).
		Return(nil, repository.ErrUserNotFound)

	users, err := fx.service.ListUsers(ctx, callerID)

	assert.Nil(t, users)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAdminService_ListUsers_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()

	expectAdminCaller(ctx, fx, callerID)
	fx.userRepo.EXPECT().ListUsers(ctx).Return([]*entity.User{{ID: uuid.New()}}, nil)

	users, err := fx.service.ListUsers(ctx, callerID)

	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAdminService_DeleteUser_SelfDeleteForbidden(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()

	expectAdminCaller(ctx, fx, callerID)

	err := fx.service.DeleteUser(ctx, callerID, callerID)

	assert.True(t, errors.Is(err, domainerrors.ErrAdminSelfDelete))
}

func TestAdminService_DeleteUser_AdminTargetForbidden(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()
	targetID := uuid.New()

	expectAdminCaller(ctx, fx, callerID)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, targetID).
		Return(&entity.User{ID: targetID, Role: entity.RoleAdmin}, nil)

	err := fx.service.DeleteUser(ctx, callerID, targetID)

	assert.True(t, errors.Is(err, domainerrors.ErrAdminDeleteAdmin))
}

func TestAdminService_DeleteUser_VendorCascade(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()
	targetID := uuid.New()

	expectAdminCaller(ctx, fx, callerID)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, targetID).
		Return(&entity.User{ID: targetID, Role: entity.RoleVendor}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockVendorRepo := mockRepo.NewMockVendorRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().VendorRepo().Return(mockVendorRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockVendorRepo.EXPECT().
				FindVendorByUserID(ctx, targetID).
				Return(&entity.VendorProfile{ID: 3, UserID: targetID}, nil)
			mockVendorRepo.EXPECT().DeleteVendorData(ctx, int64(3)).Return(nil)

			// The target had reviewed vendor 7; its aggregate is rebuilt.
			mockReviewRepo.EXPECT().DeleteReviewsByUser(ctx, targetID).Return([]int64{7}, nil)
			mockReviewRepo.EXPECT().ListRatings(ctx, int64(7)).Return([]int{}, nil)
			mockVendorRepo.EXPECT().UpdateRatingAggregate(ctx, int64(7), 0.0, 0).Return(nil)

			mockUserRepo.EXPECT().DeleteUser(ctx, targetID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteUser(ctx, callerID, targetID)

	require.NoError(t, err)
}

func TestAdminService_DeleteUser_NonVendorTarget(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()
	targetID := uuid.New()

	expectAdminCaller(ctx, fx, callerID)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, targetID).
		Return(&entity.User{ID: targetID, Role: entity.RoleUser}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockVendorRepo := mockRepo.NewMockVendorRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().VendorRepo().Return(mockVendorRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockVendorRepo.EXPECT().
				FindVendorByUserID(ctx, targetID).
				Return(nil, repository.ErrVendorNotFound)

			mockReviewRepo.EXPECT().DeleteReviewsByUser(ctx, targetID).Return([]int64{}, nil)
			mockUserRepo.EXPECT().DeleteUser(ctx, targetID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteUser(ctx, callerID, targetID)

	require.NoError(t, err)
}

func TestAdminService_UpdateUserRole_OwnRoleForbidden(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()

	expectAdminCaller(ctx, fx, callerID)

	err := fx.service.UpdateUserRole(ctx, callerID, usecase.UpdateUserRoleInput{
		UserID: callerID,
		Role:   entity.RoleUser,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestAdminService_UpdateUserRole_InvalidRole(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()

	expectAdminCaller(ctx, fx, callerID)

	err := fx.service.UpdateUserRole(ctx, callerID, usecase.UpdateUserRoleInput{
		UserID: uuid.New(),
		Role:   entity.Role("superuser"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrRoleInvalid))
}

func TestAdminService_UpdateUserRole_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()
	targetID := uuid.New()

	expectAdminCaller(ctx, fx, callerID)
	fx.userRepo.EXPECT().UpdateUserRole(ctx, targetID, entity.RoleAdmin).Return(nil)

	err := fx.service.UpdateUserRole(ctx, callerID, usecase.UpdateUserRoleInput{
		UserID: targetID,
		Role:   entity.RoleAdmin,
	})

	require.NoError(t, err)
}

func TestAdminService_SetVendorVerification_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()
	vendor := &entity.VendorProfile{
		ID:           3,
		BusinessName: strPtr("Sweet Crumbs"),
		Owner:        &entity.VendorOwner{FullName: "Owner", Email: "owner@example.com"},
	}

	expectAdminCaller(ctx, fx, callerID)

	fx.vendorRepo.EXPECT().FindVendorByID(ctx, int64(3)).Return(vendor, nil)
	fx.vendorRepo.EXPECT().SetVerification(ctx, int64(3), true).Return(nil)

	fx.mailer.EXPECT().
		SendVerificationNotification(ctx, "owner@example.com", "Sweet Crumbs", true).
		Return(nil)

	err := fx.service.SetVendorVerification(ctx, callerID, usecase.SetVerificationInput{
		VendorID: 3,
		Verified: true,
	})

	require.NoError(t, err)
}

func TestAdminService_SetVendorVerification_VendorNotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()

	expectAdminCaller(ctx, fx, callerID)

	fx.vendorRepo.EXPECT().
		FindVendorByID(ctx, int64(3)).
		Return(nil, repository.ErrVendorNotFound)

	err := fx.service.SetVendorVerification(ctx, callerID, usecase.SetVerificationInput{
		VendorID: 3,
		Verified: true,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotFound))
}

func TestAdminService_DeleteReview_RecomputesAggregate(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()
	review := &entity.Review{ID: 9, VendorID: 4, Rating: 1}

	expectAdminCaller(ctx, fx, callerID)

	fx.reviewRepo.EXPECT().FindReviewByID(ctx, int64(9)).Return(review, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)
			mockVendorRepo := mockRepo.NewMockVendorRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockFactory.EXPECT().VendorRepo().Return(mockVendorRepo)

			mockReviewRepo.EXPECT().DeleteReview(ctx, int64(9)).Return(nil)
			mockReviewRepo.EXPECT().ListRatings(ctx, int64(4)).Return([]int{5, 5}, nil)
			mockVendorRepo.EXPECT().UpdateRatingAggregate(ctx, int64(4), 5.0, 2).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteReview(ctx, callerID, 9)

	require.NoError(t, err)
}

func TestAdminService_DeleteReview_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()

	expectAdminCaller(ctx, fx, callerID)

	fx.reviewRepo.EXPECT().
		FindReviewByID(ctx, int64(9)).
		Return(nil, repository.ErrReviewNotFound)

	err := fx.service.DeleteReview(ctx, callerID, 9)

	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

func TestAdminService_ListVendors_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()

	expectAdminCaller(ctx, fx, callerID)

	fx.vendorRepo.EXPECT().
		ListAllVendors(ctx).
		Return([]*entity.VendorProfile{{ID: 1, IsDeleted: true}}, nil)

	vendors, err := fx.service.ListVendors(ctx, callerID)

	require.NoError(t, err)
	assert.Len(t, vendors, 1)
}

func TestAdminService_ListInquiries_Success(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()

	expectAdminCaller(ctx, fx, callerID)

	fx.inquiryRepo.EXPECT().
		ListAllInquiries(ctx).
		Return([]*entity.Inquiry{
			{ID: 1, VendorID: 3, VendorName: "Sweet Crumbs", OccasionName: "Wedding", Status: entity.InquiryStatusNew},
			{ID: 2, VendorID: 4, Status: entity.InquiryStatusClosed},
		}, nil)

	inquiries, err := fx.service.ListInquiries(ctx, callerID)

	require.NoError(t, err)
	require.Len(t, inquiries, 2)
	assert.Equal(t, "Sweet Crumbs", inquiries[0].VendorName)
	assert.Equal(t, "Wedding", inquiries[0].OccasionName)
}

func TestAdminService_ListInquiries_NonAdminForbidden(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	callerID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, callerID).
		Return(&entity.User{ID: callerID, Role: entity.RoleUser}, nil)

	inquiries, err := fx.service.ListInquiries(ctx, callerID)

	assert.Nil(t, inquiries)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
