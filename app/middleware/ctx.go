package middleware

import (
	"context"

	"coursehub/app/models"
)

// GetPrincipal returns the authenticated user resolved for this request, or
// nil on an unauthenticated path.
func GetPrincipal(ctx context.Context) *models.User {
	if v := ctx.Value(PrincipalKey); v != nil {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}
