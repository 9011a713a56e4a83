package contract

import (
	"context"

	"thinkora-be/internal/entity"
	"thinkora-be/internal/repository/specification"
)

// ChatTurnRepository is the append-only transcript store. There is no
// update or single-row delete on purpose: turns are immutable and only
// cascade away with their user.
type ChatTurnRepository interface {
	Create(ctx context.Context, turn *entity.ChatTurn) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatTurn, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
