package activity

import (
	"context"
	"fmt"
	"strconv"

	"gitee.com/flycash/activity-platform/internal/domain"
	"gitee.com/flycash/activity-platform/internal/errs"

	"github.com/ecodeclub/ekit/slice"
)

// ValidateFilter 内置过滤器和扩展注册过的过滤器原样返回，其余一律当成 all
func (s *service) ValidateFilter(filter string) string {
	switch filter {
	case domain.FilterAll, domain.FilterSelf, domain.FilterBy, domain.FilterObject:
		return filter
	}
	if filter != "" && s.filters.IsFilterValid(filter) {
		return filter
	}
	return domain.FilterAll
}

// enabledTypes 用户在动态流里开启的通知类型，经过过滤器筛选并去重
func (s *service) enabledTypes(ctx context.Context, user, filter string) ([]string, error) {
	types, err := s.settings.NotificationTypes(ctx, user, domain.MethodStream)
	if err != nil {
		return nil, fmt.Errorf("%w: user=%s, %w", errs.ErrUserSettings, user, err)
	}
	types = s.types.FilterNotificationTypes(ctx, types, filter)
	return distinct(types), nil
}

// conditions 构造读取动态流的条件。
// 顺序就是占位符的顺序：接收人、通知类型、过滤器自己的条件、扩展的条件。
func (s *service) conditions(ctx context.Context, user, filter string, q domain.ReadQuery, types []string) ([]domain.Condition, error) {
	conds := []domain.Condition{
		domain.Eq{Column: domain.FieldAffectedUser, Value: user},
		domain.In{Column: domain.FieldType, Values: slice.Map(types, func(idx int, src string) any {
			return src
		})},
	}

	switch filter {
	case domain.FilterSelf:
		conds = append(conds, domain.Eq{Column: domain.FieldUser, Value: user})
	case domain.FilterBy:
		conds = append(conds, domain.Neq(domain.FieldUser, user))
	case domain.FilterAll:
		self, err := s.selfEnabled(ctx, user)
		if err != nil {
			return nil, err
		}
		if !self {
			conds = append(conds, domain.Neq(domain.FieldUser, user))
		}
	case domain.FilterObject:
		conds = append(conds,
			domain.Eq{Column: domain.FieldObjectType, Value: q.ObjectType},
			domain.Eq{Column: domain.FieldObjectID, Value: q.ObjectID},
		)
		self, err := s.selfEnabled(ctx, user)
		if err != nil {
			return nil, err
		}
		if !self {
			conds = append(conds, domain.Neq(domain.FieldUser, user))
		}
	}

	frags := s.filters.QueryForFilter(filter)
	if len(frags) > 0 {
		conds = append(conds, domain.AnyOf{Conditions: slice.Map(frags, func(idx int, src domain.Fragment) domain.Condition {
			return src
		})})
	}
	return conds, nil
}

// selfEnabled 用户是否希望在动态流里看到自己的操作
func (s *service) selfEnabled(ctx context.Context, user string) (bool, error) {
	val, err := s.settings.Setting(ctx, user, domain.SettingCategory, domain.SettingSelf)
	if err != nil {
		return false, fmt.Errorf("%w: user=%s, %w", errs.ErrUserSettings, user, err)
	}
	enabled, _ := strconv.ParseBool(val)
	return enabled, nil
}

func distinct(src []string) []string {
	seen := make(map[string]struct{}, len(src))
	res := make([]string, 0, len(src))
	for _, v := range src {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}
