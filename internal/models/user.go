package models

type User struct {
	BaseModel
	FullName      string `gorm:"type:varchar(255);not null" json:"full_name"`
	Email         string `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash  string `gorm:"type:varchar(255);not null" json:"-"`
	ProfilePicURL string `gorm:"type:text" json:"profile_pic_url,omitempty"`
	Boxes         []Box  `gorm:"foreignKey:UserID" json:"boxes,omitempty"`
}
