package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "shopdir/internal/delivery/context"
	"shopdir/internal/domain/entity"
	domainerrors "shopdir/internal/domain/errors"
	"shopdir/internal/domain/repository"
	"shopdir/internal/domain/service"
	"shopdir/internal/errors"
	"shopdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type shopService struct {
	shopRepo repository.ShopRepository
	geocoder service.ReverseGeocoder
	assets   service.AssetStore
	logger   *slog.Logger
}

// NewShopService creates the shop lifecycle service. It holds no state
// between requests; each operation runs its steps in sequence.
func NewShopService(
	shopRepo repository.ShopRepository,
	geocoder service.ReverseGeocoder,
	assets service.AssetStore,
	logger *slog.Logger,
) usecase.ShopUsecase {
	return &shopService{
		shopRepo: shopRepo,
		geocoder: geocoder,
		assets:   assets,
		logger:   logger,
	}
}

// ListShops returns every shop in the directory.
func (s *shopService) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := s.shopRepo.FindAll(ctx)
	if err != nil {
		s.log(ctx).Error("failed to list shops", slog.Any("error", err))

		return nil, domainerrors.ErrShopFetchFailed.WrapMessage(err.Error())
	}

	return shops, nil
}

// GetShop returns the shop stored under the given external ID.
func (s *shopService) GetShop(ctx context.Context, externalID string) (*entity.Shop, error) {
	shop, err := s.shopRepo.FindByID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}
		s.log(ctx).Error("failed to get shop",
			slog.String("external_id", externalID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrShopFetchFailed.WrapMessage(err.Error())
	}

	return shop, nil
}

// CreateShop validates the input, enriches the location, stores the optional
// photo and persists the new record. Validation runs before any I/O.
func (s *shopService) CreateShop(ctx context.Context, input *usecase.CreateShopInput) (*entity.Shop, error) {
	if missing := missingRequiredFields(input.OwnerName, input.ContactNumber, input.ShopNumber,
		input.Address, input.Description, input.Latitude, input.Longitude); len(missing) > 0 {
		return nil, domainerrors.ErrMissingRequiredFields.WithDetails(
			"missing: " + strings.Join(missing, ", "),
		)
	}

	placeName := s.resolvePlaceName(ctx, input.Latitude, input.Longitude)

	photoRef, err := s.assets.Finalize(ctx, input.Photo)
	if err != nil {
		s.log(ctx).Error("failed to store shop photo", slog.Any("error", err))

		return nil, domainerrors.ErrPhotoStoreFailed.WrapMessage(err.Error())
	}

	shop := &entity.Shop{
		ExternalID:         uuid.New().String(),
		OwnerName:          input.OwnerName,
		ContactNumber:      input.ContactNumber,
		ShopNumber:         input.ShopNumber,
		Address:            input.Address,
		Description:        input.Description,
		PhotoRef:           photoRef,
		CreatedOrUpdatedAt: time.Now().Format(entity.TimestampLayout),
		Location: entity.Location{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			PlaceName: placeName,
		},
	}

	if err := s.shopRepo.Create(ctx, shop); err != nil {
		// The photo was already finalized; drop it again so a failed create
		// leaves no orphan behind.
		if photoRef != "" {
			if removeErr := s.assets.Remove(ctx, photoRef); removeErr != nil {
				s.log(ctx).Warn("failed to clean up photo after create failure",
					slog.String("photo_ref", photoRef),
					slog.Any("error", removeErr),
				)
			}
		}
		if errors.Is(err, repository.ErrDuplicateShopID) {
			return nil, domainerrors.ErrShopConflict
		}
		s.log(ctx).Error("failed to create shop", slog.Any("error", err))

		return nil, domainerrors.ErrShopCreationFailed.WrapMessage(err.Error())
	}

	return shop, nil
}

// UpdateShop replaces all mutable fields of an existing record. The place
// name is always re-resolved from the request's coordinates. When a new
// photo is staged the ordering is: finalize new photo, persist the record
// with the new reference, then remove the old file. The record therefore
// never points at a file that no longer exists, even when the final removal
// step fails.
func (s *shopService) UpdateShop(ctx context.Context, externalID string, input *usecase.UpdateShopInput) (*entity.Shop, error) {
	if missing := missingRequiredFields(input.OwnerName, input.ContactNumber, input.ShopNumber,
		input.Address, input.Description, input.Latitude, input.Longitude); len(missing) > 0 {
		return nil, domainerrors.ErrMissingRequiredFields.WithDetails(
			"missing: " + strings.Join(missing, ", "),
		)
	}

	shop, err := s.shopRepo.FindByID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}
		s.log(ctx).Error("failed to find shop for update",
			slog.String("external_id", externalID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrShopUpdateFailed.WrapMessage(err.Error())
	}

	oldPhotoRef := shop.PhotoRef
	newPhotoRef := oldPhotoRef
	if input.Photo != nil {
		newPhotoRef, err = s.assets.Finalize(ctx, input.Photo)
		if err != nil {
			s.log(ctx).Error("failed to store replacement photo", slog.Any("error", err))

			return nil, domainerrors.ErrPhotoStoreFailed.WrapMessage(err.Error())
		}
	}

	shop.OwnerName = input.OwnerName
	shop.ContactNumber = input.ContactNumber
	shop.ShopNumber = input.ShopNumber
	shop.Address = input.Address
	shop.Description = input.Description
	shop.PhotoRef = newPhotoRef
	shop.CreatedOrUpdatedAt = time.Now().Format(entity.TimestampLayout)
	shop.Location = entity.Location{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		PlaceName: s.resolvePlaceName(ctx, input.Latitude, input.Longitude),
	}

	if err := s.shopRepo.Replace(ctx, externalID, shop); err != nil {
		// Drop the freshly stored photo again; the record still points at
		// the old one.
		if input.Photo != nil && newPhotoRef != "" {
			if removeErr := s.assets.Remove(ctx, newPhotoRef); removeErr != nil {
				s.log(ctx).Warn("failed to clean up photo after update failure",
					slog.String("photo_ref", newPhotoRef),
					slog.Any("error", removeErr),
				)
			}
		}
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}
		s.log(ctx).Error("failed to update shop",
			slog.String("external_id", externalID),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrShopUpdateFailed.WrapMessage(err.Error())
	}

	// The record is persisted with the new reference; the superseded file
	// is an orphan now and can go. A failed removal leaves the record
	// consistent, so it is only logged.
	if input.Photo != nil && oldPhotoRef != "" {
		if err := s.assets.Remove(ctx, oldPhotoRef); err != nil {
			s.log(ctx).Warn("failed to remove superseded photo",
				slog.String("photo_ref", oldPhotoRef),
				slog.Any("error", err),
			)
		}
	}

	return shop, nil
}

// DeleteShop removes the record and its associated photo. The photo goes
// first: a real I/O failure there keeps the record intact, while a missing
// file counts as already removed.
func (s *shopService) DeleteShop(ctx context.Context, externalID string) error {
	shop, err := s.shopRepo.FindByID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return domainerrors.ErrShopNotFound
		}
		s.log(ctx).Error("failed to find shop for deletion",
			slog.String("external_id", externalID),
			slog.Any("error", err),
		)

		return domainerrors.ErrShopDeletionFailed.WrapMessage(err.Error())
	}

	if shop.PhotoRef != "" {
		if err := s.assets.Remove(ctx, shop.PhotoRef); err != nil {
			s.log(ctx).Error("failed to remove shop photo",
				slog.String("photo_ref", shop.PhotoRef),
				slog.Any("error", err),
			)

			return domainerrors.ErrPhotoRemoveFailed.WrapMessage(err.Error())
		}
	}

	if err := s.shopRepo.DeleteByID(ctx, externalID); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return domainerrors.ErrShopNotFound
		}
		s.log(ctx).Error("failed to delete shop",
			slog.String("external_id", externalID),
			slog.Any("error", err),
		)

		return domainerrors.ErrShopDeletionFailed.WrapMessage(err.Error())
	}

	return nil
}

// resolvePlaceName parses the coordinate strings and asks the geocoder.
// Unparseable coordinates skip the oracle call entirely and fall back to
// the sentinel, matching the geocoder's own failure behavior.
func (s *shopService) resolvePlaceName(ctx context.Context, latitude, longitude string) string {
	lat, latErr := strconv.ParseFloat(latitude, 64)
	lon, lonErr := strconv.ParseFloat(longitude, 64)
	if latErr != nil || lonErr != nil {
		s.log(ctx).Warn("unparseable coordinates, skipping enrichment",
			slog.String("latitude", latitude),
			slog.String("longitude", longitude),
		)

		return service.UnknownLocation
	}

	return s.geocoder.ResolvePlaceName(ctx, orb.Point{lon, lat})
}

func (s *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// missingRequiredFields reports which of the required text fields are empty,
// in the contract's field order.
func missingRequiredFields(ownerName, contactNumber, shopNumber, address, description, latitude, longitude string) []string {
	checks := []struct {
		name  string
		value string
	}{
		{"ownerName", ownerName},
		{"contactNumber", contactNumber},
		{"shopNumber", shopNumber},
		{"address", address},
		{"description", description},
		{"latitude", latitude},
		{"longitude", longitude},
	}

	var missing []string
	for _, check := range checks {
		if strings.TrimSpace(check.value) == "" {
			missing = append(missing, check.name)
		}
	}

	return missing
}
