package models

// User 用户账号表
// 核心领域只在注册时写入一次，之后不再修改（改密码不在范围内）
type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// 关联（查询时使用 Preload 加载）
	Characters []Character `gorm:"foreignKey:UserID" json:"-"`
	Campaigns  []Campaign  `gorm:"foreignKey:UserID" json:"-"`
}

// TableName 指定User表名
func (User) TableName() string {
	return "users"
}
