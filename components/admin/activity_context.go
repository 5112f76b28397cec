package admin

import "context"

// ActivityContext carries audit identity for a request when the caller cannot
// thread it through request structs.
type ActivityContext struct {
	ActorID  string
	UserID   string
	TenantID string
}

type activityContextKey struct{}

// ContextWithActivity attaches audit identity to a context.
func ContextWithActivity(ctx context.Context, ac ActivityContext) context.Context {
	return context.WithValue(ctx, activityContextKey{}, ac)
}

func activityContextFrom(ctx context.Context) (ActivityContext, bool) {
	ac, ok := ctx.Value(activityContextKey{}).(ActivityContext)
	return ac, ok
}
