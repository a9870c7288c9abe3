package repoargs

import (
	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/google/uuid"
)

// WalletMovement изменение одной части кошелька пользователя.
type WalletMovement struct {
	UserID uuid.UUID
	Bucket domain.Bucket
	Cents  int64
}
