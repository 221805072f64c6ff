// Package config 从 YAML/JSON 加载数据集与引擎调参，并组装引擎实例。
package config

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/engine"
	"github.com/shopkit/shoprec/store"
)

// Config 是数据集 + 引擎调参的配置结构（支持 YAML/JSON）。
type Config struct {
	Products []*core.Product `yaml:"products" json:"products"`
	Users    []*core.User    `yaml:"users" json:"users"`
	Engine   Tuning          `yaml:"engine" json:"engine"`
}

// Tuning 是引擎调参。零值字段落回引擎内置默认。
type Tuning struct {
	// MinSimilarity 协同过滤的相似用户准入阈值（默认 0.1）
	MinSimilarity float64 `yaml:"min_similarity" json:"min_similarity"`

	// CollaborativeWeight / ContentWeight 混合策略的合并权重（默认 0.6 / 0.4）
	CollaborativeWeight float64 `yaml:"collaborative_weight" json:"collaborative_weight"`
	ContentWeight       float64 `yaml:"content_weight" json:"content_weight"`

	// HybridConfidenceBonus 混合策略的置信度加成（默认 10）
	HybridConfidenceBonus float64 `yaml:"hybrid_confidence_bonus" json:"hybrid_confidence_bonus"`

	// DefaultLimit 未指定 limit 时的返回条数（默认 3）
	DefaultLimit int `yaml:"default_limit" json:"default_limit"`

	// Seed 热门度打分的随机种子；0 表示时间种子（线上刻意非确定）
	Seed int64 `yaml:"seed" json:"seed"`
}

// LoadFromYAML 从 YAML 文件加载配置。
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(data)
}

// LoadFromJSON 从 JSON 文件加载配置。
func LoadFromJSON(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return &cfg, nil
}

// Parse 解析 YAML 配置。
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return &cfg, nil
}

// Build 用配置的数据集与调参组装引擎。
// 返回 MemoryStore 以便调用方继续追加交互 / 编辑偏好。
func (c *Config) Build(opts ...engine.Option) (*engine.Engine, *store.MemoryStore) {
	ms := store.NewMemoryStore(c.Products, c.Users)

	tuned := []engine.Option{
		engine.WithMinSimilarity(c.Engine.MinSimilarity),
		engine.WithHybridWeights(c.Engine.CollaborativeWeight, c.Engine.ContentWeight, c.Engine.HybridConfidenceBonus),
		engine.WithDefaultLimit(c.Engine.DefaultLimit),
	}
	if c.Engine.Seed != 0 {
		tuned = append(tuned, engine.WithRand(rand.New(rand.NewSource(c.Engine.Seed))))
	}
	tuned = append(tuned, opts...)

	return engine.New(ms, ms, tuned...), ms
}
