package model

type User struct {
	Model
	Email    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	NickName string `gorm:"type:varchar(50);not null" json:"nick_name"`
}
