package config

import "github.com/shopkit/shoprec/core"

// SampleConfig 返回内置演示数据集：5 件商品、2 个带历史的用户。
// 用于示例与快速上手，不依赖任何外部文件。
func SampleConfig() *Config {
	return &Config{
		Products: []*core.Product{
			{
				ID:       "P001",
				Name:     "Wireless Bluetooth Headphones",
				Category: "Electronics",
				Price:    79.99,
				Rating:   4.5,
				Brand:    "TechBrand",
				InStock:  true,
				Features: []string{"wireless", "noise-cancellation", "bluetooth", "long-battery"},
			},
			{
				ID:       "P002",
				Name:     "Organic Cotton T-Shirt",
				Category: "Clothing",
				Price:    29.99,
				Rating:   4.2,
				Brand:    "EcoWear",
				InStock:  true,
				Features: []string{"organic", "cotton", "comfortable", "eco-friendly"},
			},
			{
				ID:       "P003",
				Name:     "JavaScript Programming Book",
				Category: "Books",
				Price:    39.99,
				Rating:   4.7,
				Brand:    "TechBooks",
				InStock:  true,
				Features: []string{"programming", "javascript", "tutorial", "advanced"},
			},
			{
				ID:       "P004",
				Name:     "Smart Fitness Watch",
				Category: "Electronics",
				Price:    199.99,
				Rating:   4.4,
				Brand:    "FitTech",
				InStock:  true,
				Features: []string{"fitness", "smart", "heart-rate", "gps"},
			},
			{
				ID:       "P005",
				Name:     "Yoga Mat Premium",
				Category: "Sports",
				Price:    49.99,
				Rating:   4.6,
				Brand:    "YogaPro",
				InStock:  true,
				Features: []string{"yoga", "non-slip", "premium", "exercise"},
			},
		},
		Users: []*core.User{
			{
				ID:          "U001",
				Name:        "Alice Johnson",
				Age:         28,
				Location:    "New York",
				Preferences: []string{"Electronics", "Books"},
				History: []core.Interaction{
					{ProductID: "P001", Type: core.InteractionPurchase, Rating: 5},
					{ProductID: "P003", Type: core.InteractionView},
				},
			},
			{
				ID:          "U002",
				Name:        "Bob Smith",
				Age:         35,
				Location:    "California",
				Preferences: []string{"Sports", "Electronics"},
				History: []core.Interaction{
					{ProductID: "P004", Type: core.InteractionPurchase, Rating: 4},
					{ProductID: "P005", Type: core.InteractionAddToCart},
				},
			},
		},
	}
}
