package core

import "time"

// InteractionType 是用户行为类型。
type InteractionType string

const (
	InteractionView      InteractionType = "view"
	InteractionPurchase  InteractionType = "purchase"
	InteractionAddToCart InteractionType = "add_to_cart"
	InteractionRating    InteractionType = "rating"
)

// Interaction 是一次用户对商品的行为记录，创建后不可变。
//
// Rating 为 0 表示本次行为未携带评分（有效评分为 1-5）；
// purchase / add_to_cart 也可以附带评分。
// ProductID 允许悬空（商品不在目录中）：消费方直接忽略这类记录，不视为错误。
type Interaction struct {
	ProductID string          `json:"product_id" yaml:"product_id"`
	Type      InteractionType `json:"type" yaml:"type"`
	Rating    float64         `json:"rating,omitempty" yaml:"rating,omitempty"`
	Time      time.Time       `json:"time,omitempty" yaml:"time,omitempty"`
}

// Rated 判断本次行为是否携带评分。
func (i Interaction) Rated() bool { return i.Rating != 0 }

// User 是用户档案：偏好品类可整体替换，交互历史只追加、随会话增长。
// 人口属性（Name / Age / Location）仅用于解释文案。
type User struct {
	ID          string        `json:"user_id" yaml:"user_id"`
	Name        string        `json:"name" yaml:"name"`
	Age         int           `json:"age" yaml:"age"`
	Location    string        `json:"location" yaml:"location"`
	Preferences []string      `json:"preferences" yaml:"preferences"`
	History     []Interaction `json:"interaction_history" yaml:"interaction_history"`
}

// HasInteracted 判断用户是否与某商品发生过交互。
// 历史中的顺序对打分没有语义，"是否交互过"按集合成员判断。
func (u *User) HasInteracted(productID string) bool {
	for _, inter := range u.History {
		if inter.ProductID == productID {
			return true
		}
	}
	return false
}

// InteractedSet 返回用户交互过的商品 id 集合。
func (u *User) InteractedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(u.History))
	for _, inter := range u.History {
		set[inter.ProductID] = struct{}{}
	}
	return set
}

// PrefersCategory 判断品类是否在用户偏好集合中。
func (u *User) PrefersCategory(category string) bool {
	for _, c := range u.Preferences {
		if c == category {
			return true
		}
	}
	return false
}

// UserStats 是用户参与度汇总，供外部展示层使用。
type UserStats struct {
	Purchases    int     // 购买次数
	Interactions int     // 总交互次数
	AvgRating    float64 // 携带评分的交互的平均评分；无评分时为 0
}

// Stats 汇总用户的参与度指标。
func (u *User) Stats() UserStats {
	var st UserStats
	var ratingSum float64
	var rated int
	for _, inter := range u.History {
		st.Interactions++
		if inter.Type == InteractionPurchase {
			st.Purchases++
		}
		if inter.Rated() {
			ratingSum += inter.Rating
			rated++
		}
	}
	if rated > 0 {
		st.AvgRating = ratingSum / float64(rated)
	}
	return st
}
