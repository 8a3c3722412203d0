package models

// 属性值与等级的合法范围
const (
	AbilityScoreMin = 1
	AbilityScoreMax = 20
	LevelMin        = 1
	LevelMax        = 20
)

// Character 角色表
type Character struct {
	BaseModel
	UserID         uint    `gorm:"not null;index" json:"user_id"`
	Name           string  `gorm:"size:100;not null" json:"name"`
	Race           *string `gorm:"size:50" json:"race"`
	CharacterClass *string `gorm:"size:50" json:"character_class"`
	Level          int     `gorm:"not null;default:1" json:"level"`
	ExperiencePoints int   `gorm:"not null;default:0" json:"experience_points"`

	// 六项属性值
	Strength     int `gorm:"not null;default:10" json:"strength"`
	Dexterity    int `gorm:"not null;default:10" json:"dexterity"`
	Constitution int `gorm:"not null;default:10" json:"constitution"`
	Intelligence int `gorm:"not null;default:10" json:"intelligence"`
	Wisdom       int `gorm:"not null;default:10" json:"wisdom"`
	Charisma     int `gorm:"not null;default:10" json:"charisma"`

	// 生命与防御
	HitPoints    int `gorm:"not null;default:10" json:"hit_points"`
	MaxHitPoints int `gorm:"not null;default:10" json:"max_hit_points"`
	ArmorClass   int `gorm:"not null;default:10" json:"armor_class"`

	// 库存与装备（无模式JSON）
	Inventory JSONMap `gorm:"type:json" json:"inventory"`
	Equipment JSONMap `gorm:"type:json" json:"equipment"`

	// 背景故事与笔记
	Backstory *string `gorm:"type:text" json:"backstory"`
	Notes     *string `gorm:"type:text" json:"notes"`

	// 关联
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定Character表名
func (Character) TableName() string {
	return "characters"
}

// AbilityModifier 属性调整值: floor((score-10)/2)
// 注意负数要向下取整，9的调整值是-1而不是0
func AbilityModifier(score int) int {
	d := score - 10
	if d < 0 {
		return -((-d + 1) / 2)
	}
	return d / 2
}

// DerivedMaxHitPoints 按等级和体质推导的默认最大生命值，下限为1
func DerivedMaxHitPoints(level, constitution int) int {
	hp := level*6 + AbilityModifier(constitution)
	if hp < 1 {
		return 1
	}
	return hp
}
