package impl

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"shopdir/internal/domain/entity"
	domainerrors "shopdir/internal/domain/errors"
	"shopdir/internal/domain/repository"
	"shopdir/internal/domain/service"
	mockRepo "shopdir/internal/mocks/repository"
	mockService "shopdir/internal/mocks/service"
	"shopdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (
	usecase.ShopUsecase,
	*mockRepo.MockShopRepository,
	*mockService.MockReverseGeocoder,
	*mockService.MockAssetStore,
) {
	t.Helper()

	shopRepo := mockRepo.NewMockShopRepository(t)
	geocoder := mockService.NewMockReverseGeocoder(t)
	assets := mockService.NewMockAssetStore(t)
	logger := slog.New(slog.DiscardHandler)

	return NewShopService(shopRepo, geocoder, assets, logger), shopRepo, geocoder, assets
}

func validCreateInput() *usecase.CreateShopInput {
	return &usecase.CreateShopInput{
		OwnerName:     "Ada",
		ContactNumber: "0123456789",
		ShopNumber:    "42",
		Address:       "1 High Street",
		Description:   "Books and maps",
		Latitude:      "51.5074",
		Longitude:     "-0.1278",
	}
}

func validUpdateInput() *usecase.UpdateShopInput {
	return &usecase.UpdateShopInput{
		OwnerName:     "Grace",
		ContactNumber: "0987654321",
		ShopNumber:    "7",
		Address:       "2 Low Street",
		Description:   "Compilers",
		Latitude:      "48.8566",
		Longitude:     "2.3522",
	}
}

func TestShopService_ListShops(t *testing.T) {
	svc, shopRepo, _, _ := newTestService(t)
	ctx := context.Background()

	expected := []*entity.Shop{
		{ExternalID: uuid.New().String(), OwnerName: "Ada"},
		{ExternalID: uuid.New().String(), OwnerName: "Grace"},
	}

	shopRepo.EXPECT().FindAll(ctx).Return(expected, nil)

	shops, err := svc.ListShops(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, shops)
}

func TestShopService_ListShops_RepoFailure(t *testing.T) {
	svc, shopRepo, _, _ := newTestService(t)
	ctx := context.Background()

	shopRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("connection reset"))

	shops, err := svc.ListShops(ctx)
	require.Error(t, err)
	assert.Nil(t, shops)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrShopFetchFailed.ErrorCode(), appErr.ErrorCode())
}

func TestShopService_GetShop(t *testing.T) {
	svc, shopRepo, _, _ := newTestService(t)
	ctx := context.Background()

	id := uuid.New().String()
	expected := &entity.Shop{ExternalID: id, OwnerName: "Ada"}

	shopRepo.EXPECT().FindByID(ctx, id).Return(expected, nil)

	shop, err := svc.GetShop(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, expected, shop)
}

func TestShopService_GetShop_NotFound(t *testing.T) {
	svc, shopRepo, _, _ := newTestService(t)
	ctx := context.Background()

	shopRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrShopNotFound)

	shop, err := svc.GetShop(ctx, "missing")
	assert.Nil(t, shop)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_CreateShop_Success(t *testing.T) {
	svc, shopRepo, geocoder, assets := newTestService(t)
	ctx := context.Background()

	input := validCreateInput()
	input.Photo = &service.StagedUpload{
		Filename: "front.jpg",
		Size:     3,
		Content:  strings.NewReader("jpg"),
	}

	geocoder.EXPECT().
		ResolvePlaceName(ctx, orb.Point{-0.1278, 51.5074}).
		Return("London, UK")
	assets.EXPECT().Finalize(ctx, input.Photo).Return("/uploads/1.jpg", nil)
	shopRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shop")).Return(nil)

	shop, err := svc.CreateShop(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, shop)

	_, parseErr := uuid.Parse(shop.ExternalID)
	assert.NoError(t, parseErr, "external ID should be a generated UUID")
	assert.Equal(t, "Ada", shop.OwnerName)
	assert.Equal(t, "London, UK", shop.Location.PlaceName)
	assert.Equal(t, "51.5074", shop.Location.Latitude)
	assert.Equal(t, "-0.1278", shop.Location.Longitude)
	assert.Equal(t, "/uploads/1.jpg", shop.PhotoRef)

	_, tsErr := time.Parse(entity.TimestampLayout, shop.CreatedOrUpdatedAt)
	assert.NoError(t, tsErr)
}

func TestShopService_CreateShop_WithoutPhoto(t *testing.T) {
	svc, shopRepo, geocoder, assets := newTestService(t)
	ctx := context.Background()

	input := validCreateInput()

	geocoder.EXPECT().
		ResolvePlaceName(ctx, mock.AnythingOfType("orb.Point")).
		Return("London, UK")
	assets.EXPECT().Finalize(ctx, (*service.StagedUpload)(nil)).Return("", nil)
	shopRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shop")).Return(nil)

	shop, err := svc.CreateShop(ctx, input)
	require.NoError(t, err)
	assert.Empty(t, shop.PhotoRef)
}

func TestShopService_CreateShop_MissingFields(t *testing.T) {
	// No expectations: validation must reject the input before any
	// geocoding, storage or persistence happens.
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	input := validCreateInput()
	input.Address = "   "
	input.Longitude = ""

	shop, err := svc.CreateShop(ctx, input)
	assert.Nil(t, shop)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrMissingRequiredFields.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "address")
	assert.Contains(t, appErr.Details(), "longitude")
}

func TestShopService_CreateShop_UnparseableCoordinates(t *testing.T) {
	// The geocoder mock carries no expectations, so any call to it would
	// fail the test: bad coordinates must skip the lookup entirely.
	svc, shopRepo, _, assets := newTestService(t)
	ctx := context.Background()

	input := validCreateInput()
	input.Latitude = "not-a-number"

	assets.EXPECT().Finalize(ctx, (*service.StagedUpload)(nil)).Return("", nil)
	shopRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shop")).Return(nil)

	shop, err := svc.CreateShop(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, service.UnknownLocation, shop.Location.PlaceName)
}

func TestShopService_CreateShop_DuplicateID(t *testing.T) {
	svc, shopRepo, geocoder, assets := newTestService(t)
	ctx := context.Background()

	input := validCreateInput()

	geocoder.EXPECT().
		ResolvePlaceName(ctx, mock.AnythingOfType("orb.Point")).
		Return("London, UK")
	assets.EXPECT().Finalize(ctx, (*service.StagedUpload)(nil)).Return("", nil)
	shopRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Shop")).
		Return(repository.ErrDuplicateShopID)

	shop, err := svc.CreateShop(ctx, input)
	assert.Nil(t, shop)
	assert.ErrorIs(t, err, domainerrors.ErrShopConflict)
}

func TestShopService_CreateShop_PersistFailureCleansUpPhoto(t *testing.T) {
	svc, shopRepo, geocoder, assets := newTestService(t)
	ctx := context.Background()

	input := validCreateInput()
	input.Photo = &service.StagedUpload{
		Filename: "front.jpg",
		Size:     3,
		Content:  strings.NewReader("jpg"),
	}

	geocoder.EXPECT().
		ResolvePlaceName(ctx, mock.AnythingOfType("orb.Point")).
		Return("London, UK")
	assets.EXPECT().Finalize(ctx, input.Photo).Return("/uploads/1.jpg", nil)
	shopRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Shop")).
		Return(errors.New("write failed"))
	assets.EXPECT().Remove(ctx, "/uploads/1.jpg").Return(nil)

	shop, err := svc.CreateShop(ctx, input)
	assert.Nil(t, shop)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrShopCreationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestShopService_UpdateShop_Success(t *testing.T) {
	svc, shopRepo, geocoder, assets := newTestService(t)
	ctx := context.Background()

	id := uuid.New().String()
	existing := &entity.Shop{
		ExternalID:         id,
		OwnerName:          "Ada",
		PhotoRef:           "/uploads/old.jpg",
		CreatedOrUpdatedAt: "2020-01-01 00:00:00",
		Location:           entity.Location{Latitude: "51.5074", Longitude: "-0.1278", PlaceName: "London, UK"},
	}

	input := validUpdateInput()
	input.Photo = &service.StagedUpload{
		Filename: "new.jpg",
		Size:     3,
		Content:  strings.NewReader("jpg"),
	}

	// The new file is written and the record persisted before the
	// superseded file is touched.
	var calls []string

	shopRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	geocoder.EXPECT().
		ResolvePlaceName(ctx, orb.Point{2.3522, 48.8566}).
		Return("Paris, France")
	assets.EXPECT().
		Finalize(ctx, input.Photo).
		RunAndReturn(func(context.Context, *service.StagedUpload) (string, error) {
			calls = append(calls, "finalize")

			return "/uploads/new.jpg", nil
		})
	shopRepo.EXPECT().
		Replace(ctx, id, mock.AnythingOfType("*entity.Shop")).
		RunAndReturn(func(context.Context, string, *entity.Shop) error {
			calls = append(calls, "replace")

			return nil
		})
	assets.EXPECT().
		Remove(ctx, "/uploads/old.jpg").
		RunAndReturn(func(context.Context, string) error {
			calls = append(calls, "remove-old")

			return nil
		})

	shop, err := svc.UpdateShop(ctx, id, input)
	require.NoError(t, err)

	assert.Equal(t, []string{"finalize", "replace", "remove-old"}, calls)
	assert.Equal(t, id, shop.ExternalID, "external ID survives the update")
	assert.Equal(t, "Grace", shop.OwnerName)
	assert.Equal(t, "/uploads/new.jpg", shop.PhotoRef)
	assert.Equal(t, "Paris, France", shop.Location.PlaceName)
	assert.NotEqual(t, "2020-01-01 00:00:00", shop.CreatedOrUpdatedAt)
}

func TestShopService_UpdateShop_WithoutPhotoKeepsExistingRef(t *testing.T) {
	svc, shopRepo, geocoder, assets := newTestService(t)
	ctx := context.Background()

	id := uuid.New().String()
	existing := &entity.Shop{ExternalID: id, PhotoRef: "/uploads/old.jpg"}

	input := validUpdateInput()

	shopRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	geocoder.EXPECT().
		ResolvePlaceName(ctx, mock.AnythingOfType("orb.Point")).
		Return("Paris, France")
	shopRepo.EXPECT().Replace(ctx, id, mock.AnythingOfType("*entity.Shop")).Return(nil)

	shop, err := svc.UpdateShop(ctx, id, input)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/old.jpg", shop.PhotoRef)
	assets.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestShopService_UpdateShop_PlaceNameAlwaysReResolved(t *testing.T) {
	svc, shopRepo, geocoder, _ := newTestService(t)
	ctx := context.Background()

	id := uuid.New().String()
	existing := &entity.Shop{
		ExternalID: id,
		Location:   entity.Location{Latitude: "48.8566", Longitude: "2.3522", PlaceName: "Paris, France"},
	}

	// Same coordinates as before; the stored name must still be replaced
	// by whatever the oracle says now.
	input := validUpdateInput()

	shopRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	geocoder.EXPECT().
		ResolvePlaceName(ctx, orb.Point{2.3522, 48.8566}).
		Return("Paris, Île-de-France")
	shopRepo.EXPECT().Replace(ctx, id, mock.AnythingOfType("*entity.Shop")).Return(nil)

	shop, err := svc.UpdateShop(ctx, id, input)
	require.NoError(t, err)
	assert.Equal(t, "Paris, Île-de-France", shop.Location.PlaceName)
}

func TestShopService_UpdateShop_NotFound(t *testing.T) {
	svc, shopRepo, _, _ := newTestService(t)
	ctx := context.Background()

	shopRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrShopNotFound)

	shop, err := svc.UpdateShop(ctx, "missing", validUpdateInput())
	assert.Nil(t, shop)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_UpdateShop_MissingFields(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	input := validUpdateInput()
	input.OwnerName = ""

	shop, err := svc.UpdateShop(ctx, uuid.New().String(), input)
	assert.Nil(t, shop)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrMissingRequiredFields.ErrorCode(), appErr.ErrorCode())
}

func TestShopService_UpdateShop_PersistFailureDropsNewPhoto(t *testing.T) {
	svc, shopRepo, geocoder, assets := newTestService(t)
	ctx := context.Background()

	id := uuid.New().String()
	existing := &entity.Shop{ExternalID: id, PhotoRef: "/uploads/old.jpg"}

	input := validUpdateInput()
	input.Photo = &service.StagedUpload{
		Filename: "new.jpg",
		Size:     3,
		Content:  strings.NewReader("jpg"),
	}

	shopRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	geocoder.EXPECT().
		ResolvePlaceName(ctx, mock.AnythingOfType("orb.Point")).
		Return("Paris, France")
	assets.EXPECT().Finalize(ctx, input.Photo).Return("/uploads/new.jpg", nil)
	shopRepo.EXPECT().
		Replace(ctx, id, mock.AnythingOfType("*entity.Shop")).
		Return(errors.New("write failed"))
	// The new file goes; the old one stays referenced by the record.
	assets.EXPECT().Remove(ctx, "/uploads/new.jpg").Return(nil)

	shop, err := svc.UpdateShop(ctx, id, input)
	assert.Nil(t, shop)
	require.Error(t, err)
	assets.AssertNotCalled(t, "Remove", ctx, "/uploads/old.jpg")
}

func TestShopService_DeleteShop(t *testing.T) {
	svc, shopRepo, _, assets := newTestService(t)
	ctx := context.Background()

	id := uuid.New().String()
	existing := &entity.Shop{ExternalID: id, PhotoRef: "/uploads/old.jpg"}

	shopRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	assets.EXPECT().Remove(ctx, "/uploads/old.jpg").Return(nil)
	shopRepo.EXPECT().DeleteByID(ctx, id).Return(nil)

	require.NoError(t, svc.DeleteShop(ctx, id))
}

func TestShopService_DeleteShop_NotFound(t *testing.T) {
	svc, shopRepo, _, _ := newTestService(t)
	ctx := context.Background()

	shopRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrShopNotFound)

	err := svc.DeleteShop(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_DeleteShop_PhotoRemoveFailureKeepsRecord(t *testing.T) {
	svc, shopRepo, _, assets := newTestService(t)
	ctx := context.Background()

	id := uuid.New().String()
	existing := &entity.Shop{ExternalID: id, PhotoRef: "/uploads/old.jpg"}

	shopRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	assets.EXPECT().Remove(ctx, "/uploads/old.jpg").Return(errors.New("disk error"))

	err := svc.DeleteShop(ctx, id)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrPhotoRemoveFailed.ErrorCode(), appErr.ErrorCode())
	shopRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestShopService_DeleteShop_WithoutPhoto(t *testing.T) {
	svc, shopRepo, _, assets := newTestService(t)
	ctx := context.Background()

	id := uuid.New().String()
	existing := &entity.Shop{ExternalID: id}

	shopRepo.EXPECT().FindByID(ctx, id).Return(existing, nil)
	shopRepo.EXPECT().DeleteByID(ctx, id).Return(nil)

	require.NoError(t, svc.DeleteShop(ctx, id))
	assets.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}
