package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hostline/infras/otel"
	"hostline/infras/postgres"
	"hostline/internal/domains/menu/model"
	"hostline/shared/constant"
	"hostline/shared/logger"
	gRepo "hostline/shared/repository"
)

type Menu interface {
	Insert(ctx context.Context, option model.MenuOption) error
	GetOption(ctx context.Context, menuName, digit string) (model.MenuOption, error)
	ListMenu(ctx context.Context, menuName string) ([]model.MenuOption, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.MenuOption]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Menu {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.MenuOption](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

func (repo *repositoryImpl) GetOption(ctx context.Context, menuName, digit string) (option model.MenuOption, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".menu.GetOption")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE menu_name = $1 AND digit = $2", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &option, query, menuName, digit)
	if errors.Is(err, sql.ErrNoRows) {
		return model.MenuOption{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.MenuOption{}, fmt.Errorf("failed to get menu option: %w", err)
	}

	return option, nil
}

func (repo *repositoryImpl) ListMenu(ctx context.Context, menuName string) (options []model.MenuOption, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".menu.ListMenu")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT * FROM %s WHERE menu_name = $1 ORDER BY digit ASC", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.SelectContext(ctx, &options, query, menuName); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to list menu options: %w", err)
	}

	return options, nil
}
