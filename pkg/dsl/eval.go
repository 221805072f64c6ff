package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/shopkit/shoprec/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

func initCELEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("product", cel.DynType),
		cel.Variable("rec", cel.DynType),
		cel.Variable("user", cel.DynType),
		cel.Variable("params", cel.DynType),
	)
}

func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是推荐结果上的业务规则解释器，使用 CEL (Common Expression Language) 实现。
//
// 表达式语法（CEL 标准语法）：
//   - 商品属性：product.category == "Electronics" / product.price < 100.0
//   - 打分结果：rec.score > 0.5 / rec.confidence >= 60.0
//   - 用户属性：user.location == "New York" / "Books" in user.preferences
//   - 逻辑组合：product.in_stock && rec.score > 0.7
//
// 示例：
//   - `product.category == "Electronics" && rec.score > 0.5`
//   - `"wireless" in product.features`
type Eval struct {
	rec  *core.Recommendation
	user *core.User
	rctx *core.RecommendContext
	env  *cel.Env
}

// NewEval 创建一个规则解释器。
func NewEval(rec *core.Recommendation, user *core.User, rctx *core.RecommendContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{rec: rec, user: user, rctx: rctx, env: env}
}

// Evaluate 编译并执行规则表达式，返回布尔结果。
// 空表达式恒为 true。表达式结果不是布尔时视为错误。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}
	if e.env == nil {
		return false, fmt.Errorf("cel env not initialized")
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}
	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据。
func (e *Eval) buildInput() map[string]interface{} {
	input := map[string]interface{}{
		"product": map[string]interface{}{},
		"rec":     map[string]interface{}{},
		"user":    map[string]interface{}{},
		"params":  map[string]interface{}{},
	}

	if e.rec != nil {
		labels := make(map[string]interface{}, len(e.rec.Labels))
		for k, v := range e.rec.Labels {
			labels[k] = v.Value
		}
		input["rec"] = map[string]interface{}{
			"score":      e.rec.Score,
			"confidence": e.rec.Confidence,
			"labels":     labels,
		}
		if p := e.rec.Product; p != nil {
			input["product"] = map[string]interface{}{
				"id":       p.ID,
				"name":     p.Name,
				"category": p.Category,
				"price":    p.Price,
				"rating":   p.Rating,
				"brand":    p.Brand,
				"in_stock": p.InStock,
				"features": p.Features,
			}
		}
	}

	if e.user != nil {
		input["user"] = map[string]interface{}{
			"id":          e.user.ID,
			"age":         e.user.Age,
			"location":    e.user.Location,
			"preferences": e.user.Preferences,
		}
	}

	if e.rctx != nil && e.rctx.Params != nil {
		input["params"] = e.rctx.Params
	}

	return input
}
