package utils

import (
	"context"

	"revolucare-service/internal/app/models"
	"revolucare-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetActor(ctx context.Context) *models.Actor {
	if actor, ok := ctx.Value(constvars.CONTEXT_ACTOR_KEY).(*models.Actor); ok {
		return actor
	}
	return nil
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}

func WithActor(ctx context.Context, actor *models.Actor) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_ACTOR_KEY, actor)
}
