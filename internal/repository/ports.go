package repository

import (
	"context"
	"deepdetect/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateModels(models ...any) error
	Create(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, order string, entity any) error
	UpdateColumn(ctx context.Context, model any, id string, column string, value any) error
	DeleteWhere(ctx context.Context, model any, conds ...db.Cond) error
}
