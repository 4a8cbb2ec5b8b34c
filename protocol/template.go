package protocol

import (
	"github.com/lonng/twmj/internal/rule"
)

type Template struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Rules        map[string]float64 `json:"rules"`
	RulesEnabled map[string]bool    `json:"rules_enabled"`
	IsDefault    bool               `json:"is_default"`
	CreatedAt    int64              `json:"created_at"`
}

// TemplateRequest creates or replaces a template.
type TemplateRequest struct {
	Name         string             `json:"name"`
	Rules        map[string]float64 `json:"rules"`
	RulesEnabled map[string]bool    `json:"rules_enabled"`
	IsDefault    bool               `json:"is_default"`
}

type TemplateListResponse struct {
	Data  []Template `json:"data"`
	Total int        `json:"total"`
}

// RuleInfo describes one key of the rule vocabulary.
type RuleInfo struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Default float64 `json:"default"`
}

type RuleListResponse struct {
	Data  []RuleInfo `json:"data"`
	Total int        `json:"total"`
}

// ExportRequest publishes a template under a short-lived uuid. An empty
// uuid lets the server pick one.
type ExportRequest struct {
	UUID string `json:"uuid"`
	rule.Template
}

type TransferRecord struct {
	UUID      string        `json:"uuid"`
	ExpiresAt string        `json:"expires_at"` // RFC 3339
	Template  rule.Template `json:"template"`
}
