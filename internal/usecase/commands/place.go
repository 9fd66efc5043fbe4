package commands

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/money"
	"room-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// CreatePlaceRequest amounts are minor currency units. Zero FullDayHours and an empty
// Currency fall back to the configured pricing defaults.
type CreatePlaceRequest struct {
	Name            string
	HourlyRate      int64
	FullDayHours    int
	FullDayPrice    int64
	CooldownMinutes int
	Currency        string
}

type PlaceCommands interface {
	Create(ctx context.Context, req CreatePlaceRequest) (uuid.UUID, error)
}

type placeCommandsImpl struct {
	uow      shared.UnitOfWork
	defaults config.PricingConfig
	logger   *slog.Logger
}

func NewPlaceCommands(uow shared.UnitOfWork, cfg config.Config, logger *slog.Logger) PlaceCommands {
	return &placeCommandsImpl{uow: uow, defaults: cfg.Pricing, logger: logger}
}

func (uc *placeCommandsImpl) Create(ctx context.Context, req CreatePlaceRequest) (uuid.UUID, error) {
	if req.Currency == "" {
		req.Currency = uc.defaults.DefaultCurrency
	}
	if req.FullDayHours == 0 {
		req.FullDayHours = uc.defaults.DefaultFullDayHours
	}
	if !money.IsValidCode(req.Currency) {
		return uuid.Nil, errs.Mark(errs.Newf("unknown currency %q", req.Currency), ErrDomainValidation)
	}

	pricing, err := booking.NewPricingConfig(req.HourlyRate, req.FullDayHours, req.FullDayPrice)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	place, err := booking.NewPlace(uuid.New(), req.Name, pricing, req.CooldownMinutes, req.Currency)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if terr := tx.Places().Create(ctx, place); terr != nil {
			return errs.Mark(terr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.logger.Info("place created", "place_id", place.ID().String(), "name", place.Name())
	return place.ID(), nil
}
