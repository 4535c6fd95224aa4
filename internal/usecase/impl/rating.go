package impl

import (
	"context"

	"vendir/internal/domain/repository"
)

// recomputeRatingAggregate rescans every published rating for the vendor and
// writes the fresh average and count. A vendor with no published reviews is
// reset to zero. Incremental math drifts after deletions and unpublishing, so
// the aggregate is always rebuilt from the rows.
func recomputeRatingAggregate(ctx context.Context, repoFactory repository.RepositoryFactory, vendorID int64) error {
	ratings, err := repoFactory.ReviewRepo().ListRatings(ctx, vendorID)
	if err != nil {
		return err
	}

	var avg float64
	if len(ratings) > 0 {
		sum := 0
		for _, rating := range ratings {
			sum += rating
		}
		avg = float64(sum) / float64(len(ratings))
	}

	return repoFactory.VendorRepo().UpdateRatingAggregate(ctx, vendorID, avg, len(ratings))
}
