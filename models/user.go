package model

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/lensvault/lensvault/pkg/util"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

const (
	// Active 账户正常状态
	Active = iota
	// Baned 被封禁
	Baned
)

const (
	// RoleUser 普通成员
	RoleUser = iota
	// RoleAdmin 管理员
	RoleAdmin
)

// User 用户模型
type User struct {
	// 表字段
	gorm.Model
	Email    string `gorm:"type:varchar(100);unique_index"`
	Nick     string `gorm:"size:50"`
	Password string `json:"-"`
	Role     int
	Status   int

	// 关联模型
	Files []File `gorm:"PRELOAD:false"`
}

// NewUser 返回一个新的空 User
func NewUser() User {
	return User{}
}

// GetUserByID 用ID获取用户
func GetUserByID(ID interface{}) (User, error) {
	var user User
	result := DB.First(&user, ID)
	return user, result.Error
}

// GetActiveUserByEmail 用Email获取可登录用户
func GetActiveUserByEmail(email string) (User, error) {
	var user User
	result := DB.Where("status = ? and email = ?", Active, email).First(&user)
	return user, result.Error
}

// SetPassword 根据给定明文设定 User 的密码
func (user *User) SetPassword(password string) error {
	// 生成16位 Salt
	salt := util.RandStringRunes(16)

	// 计算 Salt 和密码组合的SHA1摘要
	hash := sha1.New()
	_, err := hash.Write([]byte(salt + password))
	bs := hex.EncodeToString(hash.Sum(nil))

	if err != nil {
		return err
	}

	// 存储 Salt 值和摘要， ":"分割
	user.Password = salt + ":" + bs
	return nil
}

// CheckPassword 根据给定的密码明文，与数据库中存储的摘要对比
func (user *User) CheckPassword(password string) (bool, error) {
	// 根据存储密码拆分为 Salt 和 摘要
	passwordStore := strings.Split(user.Password, ":")
	if len(passwordStore) != 2 {
		return false, errors.New("Unknown password type")
	}

	// 计算 Salt 和密码组合的SHA1摘要
	hash := sha1.New()
	if _, err := hash.Write([]byte(passwordStore[0] + password)); err != nil {
		return false, err
	}
	bs := hex.EncodeToString(hash.Sum(nil))

	return bs == passwordStore[1], nil
}
