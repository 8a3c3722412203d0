package models

// 战役题材
const (
	GenreFantasy         = "fantasy"
	GenreCyberpunk       = "cyberpunk"
	GenreSciFi           = "sci_fi"
	GenreHorror          = "horror"
	GenreWestern         = "western"
	GenreModern          = "modern"
	GenreSteampunk       = "steampunk"
	GenrePostApocalyptic = "post_apocalyptic"
)

// 战役状态
const (
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// CampaignGenres 合法题材集合
var CampaignGenres = []string{
	GenreFantasy,
	GenreCyberpunk,
	GenreSciFi,
	GenreHorror,
	GenreWestern,
	GenreModern,
	GenreSteampunk,
	GenrePostApocalyptic,
}

// CampaignStatuses 合法状态集合
// 状态之间不设转换表，任何状态都可以直接切换到任何状态
var CampaignStatuses = []string{
	CampaignStatusActive,
	CampaignStatusPaused,
	CampaignStatusCompleted,
}

// IsValidGenre 检查题材是否合法
func IsValidGenre(genre string) bool {
	for _, g := range CampaignGenres {
		if g == genre {
			return true
		}
	}
	return false
}

// IsValidCampaignStatus 检查状态是否合法
func IsValidCampaignStatus(status string) bool {
	for _, s := range CampaignStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Campaign 战役表
// 一次完整的跑团历程，关联一个玩家和一个角色，角色必须属于该玩家
type Campaign struct {
	BaseModel
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	CharacterID uint    `gorm:"not null;index" json:"character_id"`
	Title       string  `gorm:"size:200;not null" json:"title"`
	Genre       string  `gorm:"size:20;not null" json:"genre"`
	Status      string  `gorm:"size:20;not null;default:'active'" json:"status"`
	Description *string `gorm:"type:text" json:"description"`

	// 战役进度与状态
	CurrentScene *string `gorm:"type:text" json:"current_scene"`
	CampaignData JSONMap `gorm:"type:json" json:"campaign_data"`

	// 关联
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Character Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定Campaign表名
func (Campaign) TableName() string {
	return "campaigns"
}
