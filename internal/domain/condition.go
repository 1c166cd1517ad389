package domain

// Operator 比较运算符，只允许下面几种
type Operator string

const (
	OpEq  Operator = "="
	OpNeq Operator = "<>"
	OpLt  Operator = "<"
	OpLte Operator = "<="
	OpGt  Operator = ">"
	OpGte Operator = ">="
)

func (o Operator) Valid() bool {
	switch o {
	case OpEq, OpNeq, OpLt, OpLte, OpGt, OpGte:
		return true
	default:
		return false
	}
}

// Condition 查询或者删除动态时使用的条件。
// 多个条件之间是 AND 的关系，顺序就是参数的顺序。
type Condition interface {
	condition()
}

// Eq 等值条件
type Eq struct {
	Column string
	Value  any
}

// Cmp 比较条件
type Cmp struct {
	Column string
	Op     Operator
	Value  any
}

// Between 闭区间条件
type Between struct {
	Column string
	Low    any
	High   any
}

// In 集合条件，Values 不能为空
type In struct {
	Column string
	Values []any
}

// Fragment 由过滤器扩展提供的原始 SQL 片段，占位符为 ?
type Fragment struct {
	SQL  string
	Args []any
}

// AnyOf 任一条件满足即可
type AnyOf struct {
	Conditions []Condition
}

func (Eq) condition()       {}
func (Cmp) condition()      {}
func (Between) condition()  {}
func (In) condition()       {}
func (Fragment) condition() {}
func (AnyOf) condition()    {}

// Lt 是最常用的过期条件，单独给一个快捷方式
func Lt(column string, value any) Condition {
	return Cmp{Column: column, Op: OpLt, Value: value}
}

// Neq 不等条件
func Neq(column string, value any) Condition {
	return Cmp{Column: column, Op: OpNeq, Value: value}
}

// ActivityQuery 仓储层的查询，Conditions 按顺序拼接
type ActivityQuery struct {
	Conditions []Condition
	Offset     int
	Limit      int
}

// 可以用在条件里的动态字段
const (
	FieldID           = "activity_id"
	FieldApp          = "app"
	FieldSubject      = "subject"
	FieldFile         = "file"
	FieldUser         = "user"
	FieldAffectedUser = "affecteduser"
	FieldTimestamp    = "timestamp"
	FieldPriority     = "priority"
	FieldType         = "type"
	FieldObjectType   = "object_type"
	FieldObjectID     = "object_id"
)
