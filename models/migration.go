package model

import (
	"io/ioutil"

	"github.com/lensvault/lensvault/pkg/conf"
	"github.com/lensvault/lensvault/pkg/util"

	"github.com/hashicorp/go-version"
	"github.com/jinzhu/gorm"
)

// 执行数据迁移
func migration() {
	// 检查 version.lock 确认是否需要执行迁移
	// Debug 模式下一定会执行迁移
	if !conf.SystemConfig.Debug {
		if util.Exists("version.lock") {
			versionLock, _ := ioutil.ReadFile("version.lock")
			locked, lockErr := version.NewVersion(string(versionLock))
			required, requiredErr := version.NewVersion(conf.RequiredDBVersion)
			if lockErr == nil && requiredErr == nil && !locked.LessThan(required) {
				util.Log().Info("数据库版本匹配，跳过数据库迁移")
				return
			}
		}
	}

	util.Log().Info("开始进行数据库自动迁移...")

	// 自动迁移模式
	DB.Set("gorm:table_options", "ENGINE=InnoDB").AutoMigrate(
		&User{},
		&Project{},
		&ProjectUser{},
		&File{},
		&Tag{},
		&MetadataTag{},
	)

	// 创建初始管理员账户
	addDefaultUser()

	// 迁移完毕后写入版本锁 version.lock
	f, err := util.CreatNestedFile("version.lock")
	if err == nil {
		_, err = f.WriteString(conf.RequiredDBVersion)
		f.Close()
	}
	if err != nil {
		util.Log().Warning("无法写入版本控制锁 version.lock, %s", err)
	}
}

func addDefaultUser() {
	_, err := GetUserByID(1)

	// 未找到初始用户时，则创建
	if gorm.IsRecordNotFoundError(err) {
		defaultUser := NewUser()
		defaultUser.Email = "admin@lensvault.org"
		defaultUser.Nick = "admin"
		defaultUser.Role = RoleAdmin
		defaultUser.Status = Active
		if err := defaultUser.SetPassword("admin"); err != nil {
			util.Log().Panic("无法创建密码, %s", err)
		}
		if err := DB.Create(&defaultUser).Error; err != nil {
			util.Log().Panic("无法创建初始用户, %s", err)
		}
	}
}
