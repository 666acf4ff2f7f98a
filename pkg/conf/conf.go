package conf

import (
	"github.com/lensvault/lensvault/pkg/util"

	"github.com/go-ini/ini"
	"github.com/go-playground/validator/v10"
)

// cfg 解析后的配置文件
var cfg *ini.File

const defaultConf = `[System]
Debug = false
Listen = :5220
LogLevel = info
HashIDSalt = {HashIDSalt}

[Database]
Type = mysql
Host = 127.0.0.1
Port = 3306
User = root
Password = root
Name = lensvault
TablePrefix = lv_

[Storage]
Type = local
BasePath = uploads
`

// Init 初始化配置文件
func Init(path string) {
	var err error

	if path == "" || !util.Exists(path) {
		// 创建初始配置文件
		confContent := util.Replace(map[string]string{
			"{HashIDSalt}": util.RandStringRunes(64),
		}, defaultConf)
		f, err := util.CreatNestedFile(path)
		if err != nil {
			util.Log().Panic("无法创建配置文件, %s", err)
		}

		// 写入配置文件
		_, err = f.WriteString(confContent)
		if err != nil {
			util.Log().Panic("无法写入配置文件, %s", err)
		}

		f.Close()
	}

	cfg, err = ini.Load(path)
	if err != nil {
		util.Log().Panic("无法解析配置文件 '%s', %s", path, err)
	}

	sections := map[string]interface{}{
		"Database": DatabaseConfig,
		"System":   SystemConfig,
		"Storage":  StorageConfig,
		"CORS":     CORSConfig,
	}
	for sectionName, sectionStruct := range sections {
		err = mapSection(sectionName, sectionStruct)
		if err != nil {
			util.Log().Panic("配置文件 %s 分区解析失败, %s", sectionName, err)
		}
	}

	// 重设log等级
	if !SystemConfig.Debug {
		util.BuildLogger(SystemConfig.LogLevel)
	} else {
		util.BuildLogger("debug")
	}
}

// mapSection 将配置文件的 Section 映射到结构体上
func mapSection(section string, confStruct interface{}) error {
	err := cfg.Section(section).MapTo(confStruct)
	if err != nil {
		return err
	}

	// 验证合法性
	validate := validator.New()
	err = validate.Struct(confStruct)
	if err != nil {
		return err
	}

	return nil
}
