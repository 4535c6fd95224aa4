package impl

import (
	"context"
	"testing"

	mockRepo "vendir/internal/mocks/repository"

	"github.com/stretchr/testify/require"
)

func TestRecomputeRatingAggregate_Average(t *testing.T) {
	ctx := context.Background()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockReviewRepo := mockRepo.NewMockReviewRepository(t)
	mockVendorRepo := mockRepo.NewMockVendorRepository(t)

	mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
	mockFactory.EXPECT().VendorRepo().Return(mockVendorRepo)

	mockReviewRepo.EXPECT().ListRatings(ctx, int64(1)).Return([]int{5, 3, 4}, nil)
	mockVendorRepo.EXPECT().UpdateRatingAggregate(ctx, int64(1), 4.0, 3).Return(nil)

	err := recomputeRatingAggregate(ctx, mockFactory, 1)
	require.NoError(t, err)
}

func TestRecomputeRatingAggregate_EmptyResetsToZero(t *testing.T) {
	ctx := context.Background()

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockReviewRepo := mockRepo.NewMockReviewRepository(t)
	mockVendorRepo := mockRepo.NewMockVendorRepository(t)

	mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
	mockFactory.EXPECT().VendorRepo().Return(mockVendorRepo)

	mockReviewRepo.EXPECT().ListRatings(ctx, int64(1)).Return([]int{}, nil)
	mockVendorRepo.EXPECT().UpdateRatingAggregate(ctx, int64(1), 0.0, 0).Return(nil)

	err := recomputeRatingAggregate(ctx, mockFactory, 1)
	require.NoError(t, err)
}
