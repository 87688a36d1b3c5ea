package user

import "time"

type AccountType string

const (
	AccountTypeClient    AccountType = "client"
	AccountTypeDeveloper AccountType = "developer"
)

type User struct {
	UID         uint        `gorm:"primaryKey;column:u_id" json:"user_id"`
	Username    string      `gorm:"size:50;not null;unique" json:"username"`
	Password    string      `gorm:"size:255;not null" json:"-"`
	Email       *string     `gorm:"size:100" json:"email"`
	AccountType AccountType `gorm:"type:varchar(20);default:'client';not null;column:account_type" json:"account_type"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
