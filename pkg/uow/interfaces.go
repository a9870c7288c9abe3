package uow

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks
import (
	"context"
)

// TX доступ к репозиториям в рамках одной транзакции БД.
type TX interface {
	Get(name RepositoryName) (Repository, error)
}

// UOW реестр репозиториев и исполнитель транзакций.
//
// Do выполняет fn в транзакции. При deadlock и ошибке сериализации fn вызывается повторно целиком,
// поэтому fn не должна иметь побочных эффектов вне tx.
type UOW interface {
	Register(name RepositoryName, factory RepositoryFactory) error
	Do(ctx context.Context, fn func(ctx context.Context, tx TX) error) error
	GetRepository(name RepositoryName) (Repository, error)
}
