package pgrepo

import (
	"context"
	"strings"

	"github.com/fsdevblog/paywallet/internal/domain"
	"github.com/fsdevblog/paywallet/pkg/uow"
)

// ProfileRepository читает проекцию профилей, которую ведет сервис профилей.
type ProfileRepository struct {
	db uow.DBTX
}

func NewProfileRepository(db uow.DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// FindByHandle ищет профиль по хэндлу без учета регистра и ведущего @.
func (p *ProfileRepository) FindByHandle(ctx context.Context, handle string) (*domain.Profile, error) {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")

	var profile domain.Profile
	err := p.db.QueryRow(ctx, "SELECT user_id, handle FROM profiles WHERE lower(handle) = lower($1)", handle).
		Scan(&profile.UserID, &profile.Handle)
	if err != nil {
		return nil, convertErr(err, "finding profile by handle `%s`", handle)
	}
	return &profile, nil
}
