package session

import "context"

type userKey struct{}

// WithUser 把当前登录用户放进 ctx，一般在鉴权拦截器里调用
func WithUser(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userKey{}, uid)
}

// UserFromContext 取出当前用户，匿名访问时返回 false
func UserFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(userKey{}).(string)
	if !ok || uid == "" {
		return "", false
	}
	return uid, true
}

// ContextSession 从 ctx 中解析当前用户
type ContextSession struct{}

func NewContextSession() ContextSession {
	return ContextSession{}
}

func (ContextSession) User(ctx context.Context) (string, bool) {
	return UserFromContext(ctx)
}
