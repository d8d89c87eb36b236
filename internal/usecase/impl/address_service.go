package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// NewAddressService creates the delivery address usecase.
func NewAddressService(
	txManager repository.TransactionManager,
	addressRepo repository.AddressRepository,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		txManager:   txManager,
		addressRepo: addressRepo,
		logger:      logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAddress stores a new address. The first address of a user becomes primary.
func (srv *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	address := &entity.Address{
		UserID:      userID,
		Label:       strings.TrimSpace(input.Label),
		FullAddress: strings.TrimSpace(input.FullAddress),
		City:        strings.TrimSpace(input.City),
		PostalCode:  strings.TrimSpace(input.PostalCode),
		Phone:       strings.TrimSpace(input.Phone),
		IsPrimary:   input.IsPrimary,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		existing, err := addressRepo.FindByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list addresses")
		}
		if len(existing) == 0 {
			address.IsPrimary = true
		}

		if address.IsPrimary {
			if err := addressRepo.ClearPrimary(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear primary address")
			}
		}

		if err := addressRepo.Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create address", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create address")
	}

	return address, nil
}

// ListAddresses returns every address of the user, primary first.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// GetAddress returns an address owned by the user.
func (srv *addressService) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error) {
	return ownedAddress(ctx, srv.addressRepo, userID, addressID)
}

// UpdateAddress replaces the fields of an owned address.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Address
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := ownedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}

		address.Label = strings.TrimSpace(input.Label)
		address.FullAddress = strings.TrimSpace(input.FullAddress)
		address.City = strings.TrimSpace(input.City)
		address.PostalCode = strings.TrimSpace(input.PostalCode)
		address.Phone = strings.TrimSpace(input.Phone)

		if input.IsPrimary && !address.IsPrimary {
			if err := addressRepo.ClearPrimary(ctx, userID); err != nil {
				return errors.Wrap(err, "failed to clear primary address")
			}
			address.IsPrimary = true
		}

		if err := addressRepo.Update(ctx, address); err != nil {
			return translateRepoError(err, "failed to update address")
		}
		updated = address

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return updated, nil
}

// DeleteAddress removes an owned address.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	if _, err := ownedAddress(ctx, srv.addressRepo, userID, addressID); err != nil {
		return err
	}

	if err := srv.addressRepo.Delete(ctx, addressID); err != nil {
		return translateRepoError(err, "failed to delete address")
	}

	return nil
}

// SetPrimary makes the address the only primary one of the user.
func (srv *addressService) SetPrimary(ctx context.Context, userID, addressID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()

		address, err := ownedAddress(ctx, addressRepo, userID, addressID)
		if err != nil {
			return err
		}
		if address.IsPrimary {
			return nil
		}

		if err := addressRepo.ClearPrimary(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear primary address")
		}

		address.IsPrimary = true
		if err := addressRepo.Update(ctx, address); err != nil {
			return translateRepoError(err, "failed to set primary address")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to set primary address")
	}
	srv.log(ctx).Debug("Primary address changed", slog.Any("user_id", userID), slog.Any("address_id", addressID))

	return nil
}

func ownedAddress(ctx context.Context, addressRepo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.Address, error) {
	address, err := addressRepo.FindByID(ctx, addressID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find address")
	}

	// Someone else's address is reported as missing rather than forbidden.
	if address.UserID != userID {
		return nil, domainerrors.ErrAddressNotFound.WrapMessage("address belongs to another user")
	}

	return address, nil
}

func validateAddressInput(input *usecase.AddressInput) error {
	if input == nil || strings.TrimSpace(input.FullAddress) == "" {
		return validationError("full_address is required")
	}

	return nil
}
