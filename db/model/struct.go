package model

// ScoringTemplate is a named rule table. Both maps are kept as JSON text and
// keyed by rule name.
type ScoringTemplate struct {
	Id           int64
	Name         string             `xorm:"not null VARCHAR(64)"`
	Rules        map[string]float64 `xorm:"not null TEXT json"`
	RulesEnabled map[string]bool    `xorm:"not null TEXT json"`
	IsDefault    bool               `xorm:"not null index"`
	CreatedAt    int64              `xorm:"not null index BIGINT(20)"`
}

// GameRecord is one scored hand kept in the history.
type GameRecord struct {
	Id          int64
	Name        string         `xorm:"VARCHAR(64)"`
	Tiles       map[string]int `xorm:"not null TEXT json"`
	Seat        int            `xorm:"not null TINYINT(4)"`
	Wind        string         `xorm:"not null VARCHAR(8)"`
	WinningTile string         `xorm:"VARCHAR(8)"`
	SelfDraw    bool           `xorm:"not null"`
	Concealed   bool           `xorm:"not null"`
	Dealer      bool           `xorm:"not null"`
	AteDealer   bool           `xorm:"not null"`
	Streak      int            `xorm:"not null INT(11)"`
	TemplateId  int64          `xorm:"not null index BIGINT(20)"`
	Value       float64        `xorm:"not null DOUBLE"`
	Bomb        bool           `xorm:"not null"`
	Result      string         `xorm:"not null TEXT"` // ScoreResult, JSON encoded
	CreatedAt   int64          `xorm:"not null index BIGINT(20)"`
}
