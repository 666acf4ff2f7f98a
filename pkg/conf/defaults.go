package conf

// DatabaseConfig 数据库配置
var DatabaseConfig = &database{
	Type:        "UNSET",
	TablePrefix: "lv_",
	DBFile:      "lensvault.db",
	Port:        3306,
}

// SystemConfig 系统公用配置
var SystemConfig = &system{
	Debug:    false,
	Listen:   ":5220",
	LogLevel: "info",
}

// StorageConfig 附件存储配置
var StorageConfig = &storage{
	Type:     "local",
	BasePath: "uploads",
}

// CORSConfig 跨域配置
var CORSConfig = &cors{
	AllowOrigins:     []string{"UNSET"},
	AllowMethods:     []string{"PUT", "POST", "GET", "OPTIONS", "DELETE"},
	AllowHeaders:     []string{"Cookie", "Content-Length", "Content-Type", "X-Requested-With"},
	AllowCredentials: false,
	ExposeHeaders:    nil,
}
