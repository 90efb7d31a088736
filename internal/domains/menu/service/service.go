package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"hostline/config"
	"hostline/infras/otel"
	"hostline/internal/domains/menu/model"
	"hostline/internal/domains/menu/repository"
	"hostline/shared/constant"
)

// ErrNoOption means the dialed digit is not wired in the menu. Handlers turn
// it into an invalid-selection prompt rather than an apology.
var ErrNoOption = errors.New("no menu option for digit")

type Menu interface {
	Resolve(ctx context.Context, menuName, digit string) (model.Action, error)
	ListMenu(ctx context.Context, menuName string) ([]model.MenuOption, error)
}

type serviceImpl struct {
	repo repository.Menu
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Menu, cfg *config.Config, otl otel.Otel) Menu {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otl,
	}
}

// Resolve looks up the digit within the menu and parses the stored action
// into its variant type.
func (s *serviceImpl) Resolve(ctx context.Context, menuName, digit string) (action model.Action, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	option, err := s.repo.GetOption(ctx, menuName, digit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu option")

		return nil, fmt.Errorf("failed to get menu option: %w", err)
	}

	if option.ID == "" {
		return nil, fmt.Errorf("%w: menu %q digit %q", ErrNoOption, menuName, digit)
	}

	action, err = model.ParseAction(option.ActionType, option.ActionValue)
	if err != nil {
		log.Error().Err(err).
			Str("menu", menuName).
			Str("digit", digit).
			Msg("misconfigured menu option")

		return nil, fmt.Errorf("failed to parse menu action: %w", err)
	}

	return action, nil
}

func (s *serviceImpl) ListMenu(ctx context.Context, menuName string) (options []model.MenuOption, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".menu.ListMenu")
	defer scope.End()
	defer scope.TraceIfError(err)

	options, err = s.repo.ListMenu(ctx, menuName)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu options: %w", err)
	}

	return options, nil
}
