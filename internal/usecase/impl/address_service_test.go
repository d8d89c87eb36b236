package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addressServiceFixtures holds all test dependencies for address service tests.
type addressServiceFixtures struct {
	service     usecase.AddressUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	addressRepo *mockRepo.MockAddressRepository
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)

	factory.EXPECT().AddressRepo().Return(addressRepo).Maybe()

	return addressServiceFixtures{
		service:     NewAddressService(txManager, addressRepo, newDiscardLogger()),
		txManager:   txManager,
		factory:     factory,
		addressRepo: addressRepo,
	}
}

func TestAddressService_CreateAddress_FirstBecomesPrimary(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.addressRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.Address{}, nil)
	fx.addressRepo.EXPECT().ClearPrimary(ctx, userID).Return(nil)
	fx.addressRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Address) bool { return a.IsPrimary })).
		Return(nil)

	address, err := fx.service.CreateAddress(ctx, userID, &usecase.AddressInput{
		Label:       "Home",
		FullAddress: " 12 Rose Lane ",
	})
	require.NoError(t, err)
	assert.True(t, address.IsPrimary)
	assert.Equal(t, "12 Rose Lane", address.FullAddress)
}

func TestAddressService_CreateAddress_SecondStaysSecondary(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.addressRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.Address{{ID: uuid.New(), IsPrimary: true}}, nil)
	fx.addressRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Address")).Return(nil)

	address, err := fx.service.CreateAddress(ctx, userID, &usecase.AddressInput{FullAddress: "Office"})
	require.NoError(t, err)
	assert.False(t, address.IsPrimary)
	fx.addressRepo.AssertNotCalled(t, "ClearPrimary", mock.Anything, mock.Anything)
}

func TestAddressService_CreateAddress_RequiresFullAddress(t *testing.T) {
	fx := createTestAddressService(t)

	_, err := fx.service.CreateAddress(context.Background(), uuid.New(), &usecase.AddressInput{Label: "Home"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressService_SetPrimary(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	address := &entity.Address{ID: uuid.New(), UserID: userID, FullAddress: "Office"}

	expectTx(fx.txManager, fx.factory)
	fx.addressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)
	fx.addressRepo.EXPECT().ClearPrimary(ctx, userID).Return(nil)
	fx.addressRepo.EXPECT().Update(ctx, address).Return(nil)

	require.NoError(t, fx.service.SetPrimary(ctx, userID, address.ID))
	assert.True(t, address.IsPrimary)
}

func TestAddressService_GetAddress_OtherUser(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	address := &entity.Address{ID: uuid.New(), UserID: uuid.New()}

	fx.addressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)

	_, err := fx.service.GetAddress(ctx, uuid.New(), address.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_DeleteAddress(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	userID := uuid.New()
	address := &entity.Address{ID: uuid.New(), UserID: userID}

	fx.addressRepo.EXPECT().FindByID(ctx, address.ID).Return(address, nil)
	fx.addressRepo.EXPECT().Delete(ctx, address.ID).Return(nil)

	assert.NoError(t, fx.service.DeleteAddress(ctx, userID, address.ID))
}
