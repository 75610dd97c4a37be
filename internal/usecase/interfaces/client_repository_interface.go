package interfaces

import (
	"context"

	"illusphere_backend/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// A zero-value Client (empty ID) from GetByEmail means no row exists; the
// intake workflow then creates the client inside the submission transaction
// rather than through this interface, so concurrent first submissions from
// the same email cannot produce two rows.

type IClientRepository interface {
	GetByEmail(ctx context.Context, email string) (entities.Client, error)
}
