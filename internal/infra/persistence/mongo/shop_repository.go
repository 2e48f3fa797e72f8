package mongo

import (
	"context"

	"shopdir/config"
	"shopdir/internal/domain/entity"
	"shopdir/internal/domain/repository"
	"shopdir/internal/errors"
	"shopdir/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	collection *mongo.Collection
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *mongo.Database, cfg *config.Config) repository.ShopRepository {
	return &shopRepository{
		collection: db.Collection(cfg.Mongo.Collection),
	}
}

// Create persists a new shop record.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := model.FromShopDomain(shop)

	if _, err := repo.collection.InsertOne(ctx, shopM); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateShopID
		}

		return errors.Wrap(err, "failed to insert shop")
	}

	return nil
}

// FindAll retrieves every shop record.
func (repo *shopRepository) FindAll(ctx context.Context) ([]*entity.Shop, error) {
	cursor, err := repo.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query shops")
	}
	defer cursor.Close(ctx)

	var models []*model.ShopModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode shops")
	}

	shops := make([]*entity.Shop, 0, len(models))
	for _, shopM := range models {
		shops = append(shops, shopM.ToShopDomain())
	}

	return shops, nil
}

// FindByID retrieves a shop by its external ID.
func (repo *shopRepository) FindByID(ctx context.Context, externalID string) (*entity.Shop, error) {
	var shopM model.ShopModel
	err := repo.collection.FindOne(ctx, bson.M{"external_id": externalID}).Decode(&shopM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shopM.ToShopDomain(), nil
}

// Replace overwrites the full record stored under the given external ID.
func (repo *shopRepository) Replace(ctx context.Context, externalID string, shop *entity.Shop) error {
	shopM := model.FromShopDomain(shop)

	result, err := repo.collection.ReplaceOne(ctx, bson.M{"external_id": externalID}, shopM)
	if err != nil {
		return errors.Wrap(err, "failed to replace shop")
	}
	if result.MatchedCount == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// DeleteByID removes the record stored under the given external ID.
func (repo *shopRepository) DeleteByID(ctx context.Context, externalID string) error {
	result, err := repo.collection.DeleteOne(ctx, bson.M{"external_id": externalID})
	if err != nil {
		return errors.Wrap(err, "failed to delete shop")
	}
	if result.DeletedCount == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}
