package auth

import "context"

type ctxKey string

const (
	ctxKeySub   ctxKey = "sub"
	ctxKeyClass ctxKey = "class"
)

func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, ctxKeySub, sub)
}

func SubjectFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(ctxKeySub).(string); ok {
		return s
	}
	return ""
}

func WithClass(ctx context.Context, classID string) context.Context {
	return context.WithValue(ctx, ctxKeyClass, classID)
}

func ClassFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(ctxKeyClass).(string); ok {
		return s
	}
	return ""
}
