package dao

import (
	"fmt"

	"gitee.com/flycash/activity-platform/internal/domain"
	"gitee.com/flycash/activity-platform/internal/errs"

	"gorm.io/gorm/clause"
)

// buildExpressions 把领域条件翻译成 gorm 的表达式，顺序保持不变。
// 列名必须在 columns 里面，运算符必须是预定义的几种。
func buildExpressions(columns map[string]struct{}, conds []domain.Condition) ([]clause.Expression, error) {
	exprs := make([]clause.Expression, 0, len(conds))
	for _, c := range conds {
		expr, err := buildExpression(columns, c)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func buildExpression(columns map[string]struct{}, cond domain.Condition) (clause.Expression, error) {
	switch c := cond.(type) {
	case domain.Eq:
		if err := checkColumn(columns, c.Column); err != nil {
			return nil, err
		}
		return clause.Eq{Column: clause.Column{Name: c.Column}, Value: c.Value}, nil
	case domain.Cmp:
		if err := checkColumn(columns, c.Column); err != nil {
			return nil, err
		}
		return buildCmp(c)
	case domain.Between:
		if err := checkColumn(columns, c.Column); err != nil {
			return nil, err
		}
		col := clause.Column{Name: c.Column}
		return clause.And(
			clause.Gte{Column: col, Value: c.Low},
			clause.Lte{Column: col, Value: c.High},
		), nil
	case domain.In:
		if err := checkColumn(columns, c.Column); err != nil {
			return nil, err
		}
		if len(c.Values) == 0 {
			// IN () 在 SQL 里是非法的
			return nil, fmt.Errorf("%w: %s IN 空集合", errs.ErrInvalidCondition, c.Column)
		}
		return clause.IN{Column: clause.Column{Name: c.Column}, Values: c.Values}, nil
	case domain.Fragment:
		if c.SQL == "" {
			return nil, fmt.Errorf("%w: SQL 片段为空", errs.ErrInvalidCondition)
		}
		// 片段里可能有换行的 OR，gorm 识别不出来，统一加括号
		return clause.Expr{SQL: "(" + c.SQL + ")", Vars: c.Args}, nil
	case domain.AnyOf:
		if len(c.Conditions) == 0 {
			return nil, fmt.Errorf("%w: AnyOf 没有条件", errs.ErrInvalidCondition)
		}
		sub, err := buildExpressions(columns, c.Conditions)
		if err != nil {
			return nil, err
		}
		if len(sub) == 1 {
			// 只有一个的时候不能用 OrConditions，gorm 会把它当成 OR 拼到前一个条件上
			return sub[0], nil
		}
		return clause.Or(sub...), nil
	default:
		return nil, fmt.Errorf("%w: 未知条件类型 %T", errs.ErrInvalidCondition, cond)
	}
}

func buildCmp(c domain.Cmp) (clause.Expression, error) {
	col := clause.Column{Name: c.Column}
	switch c.Op {
	case domain.OpEq:
		return clause.Eq{Column: col, Value: c.Value}, nil
	case domain.OpNeq:
		return clause.Neq{Column: col, Value: c.Value}, nil
	case domain.OpLt:
		return clause.Lt{Column: col, Value: c.Value}, nil
	case domain.OpLte:
		return clause.Lte{Column: col, Value: c.Value}, nil
	case domain.OpGt:
		return clause.Gt{Column: col, Value: c.Value}, nil
	case domain.OpGte:
		return clause.Gte{Column: col, Value: c.Value}, nil
	default:
		return nil, fmt.Errorf("%w: 运算符 %q", errs.ErrInvalidCondition, c.Op)
	}
}

func checkColumn(columns map[string]struct{}, column string) error {
	if _, ok := columns[column]; !ok {
		return fmt.Errorf("%w: 列 %q", errs.ErrInvalidCondition, column)
	}
	return nil
}
