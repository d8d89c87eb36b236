package postgres

import (
	"context"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review; a second review of the same product by the same user is rejected.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("review references an unknown product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// FindByID retrieves a review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByProduct lists the reviews of a product, newest first.
func (repo *reviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	query := repo.db.WithContext(ctx).Where("product_id = ?", productID)
	if err := paginate(query, limit, offset).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by product")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Delete removes a review.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ReviewModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// ProductRating averages the ratings of one product.
func (repo *reviewRepository) ProductRating(ctx context.Context, productID uuid.UUID) (*entity.RatingSummary, error) {
	return repo.rating(ctx, "product_id = ?", productID)
}

// SellerRating averages the ratings over every product of a seller.
func (repo *reviewRepository) SellerRating(ctx context.Context, sellerID uuid.UUID) (*entity.RatingSummary, error) {
	return repo.rating(ctx, "seller_id = ?", sellerID)
}

type ratingRow struct {
	Average float64
	Count   int
}

func (repo *reviewRepository) rating(ctx context.Context, condition string, id uuid.UUID) (*entity.RatingSummary, error) {
	var row ratingRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where(condition, id).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate ratings")
	}

	return &entity.RatingSummary{Average: row.Average, Count: row.Count}, nil
}

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create persists a new favorite.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("favorite references an unknown product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// FindByUserAndProduct retrieves the favorite a user holds on a product.
func (repo *favoriteRepository) FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// FindByUser lists a user's favorites, newest first.
func (repo *favoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// SetNotifyStock turns the restock alert of a favorite on or off.
func (repo *favoriteRepository) SetNotifyStock(ctx context.Context, id uuid.UUID, notify bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("id = ?", id).
		Update("notify_stock", notify)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update stock alert")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// Delete removes a favorite.
func (repo *favoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// FindStockWatchers returns the users with the restock alert on for a product.
func (repo *favoriteRepository) FindStockWatchers(ctx context.Context, productID uuid.UUID) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("product_id = ? AND notify_stock = ?", productID, true).
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stock watchers")
	}

	return userIDs, nil
}

// MostFavorited ranks products by number of favorites.
func (repo *favoriteRepository) MostFavorited(ctx context.Context, limit int) ([]*entity.ProductPopularity, error) {
	var popularity []*entity.ProductPopularity

	query := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Select("product_id, COUNT(*) AS favorites").
		Group("product_id").
		Order("favorites DESC, product_id ASC")
	if err := paginate(query, limit, 0).Scan(&popularity).Error; err != nil {
		return nil, errors.Wrap(err, "failed to rank favorited products")
	}

	return popularity, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		SellerID:  data.SellerID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		SellerID:  data.SellerID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:          data.ID,
		UserID:      data.UserID,
		ProductID:   data.ProductID,
		NotifyStock: data.NotifyStock,
		CreatedAt:   data.CreatedAt,
	}
}

func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:          data.ID,
		UserID:      data.UserID,
		ProductID:   data.ProductID,
		NotifyStock: data.NotifyStock,
		CreatedAt:   data.CreatedAt,
	}
}
