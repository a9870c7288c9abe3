package service

import (
	"context"

	"github.com/fsdevblog/paywallet/internal/domain"
)

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.LedgerEvent) {}
