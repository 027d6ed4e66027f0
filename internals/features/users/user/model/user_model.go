// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel representa a tabela `users`
type UserModel struct {
	ID       uuid.UUID `json:"id" gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserName string    `json:"user_name" gorm:"column:user_name;type:varchar(120);not null"`
	Email    string    `json:"email" gorm:"column:email;type:varchar(160);unique;not null"`

	// hash bcrypt, nunca exposto
	Password string `json:"-" gorm:"column:password;type:varchar(120);not null"`

	Role string `json:"role" gorm:"column:role;type:varchar(20);not null;default:'aluno'"`

	CreatedAt time.Time  `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"column:updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}
