package conf

// database 数据库
type database struct {
	Type        string
	User        string
	Password    string
	Host        string
	Name        string
	TablePrefix string
	DBFile      string
	Port        int
}

// system 系统通用配置
type system struct {
	Debug      bool
	Listen     string `validate:"required"`
	HashIDSalt string
	LogLevel   string `validate:"eq=error|eq=warning|eq=info|eq=debug"`
}

// storage 附件存储
type storage struct {
	// Type 附件存储后端，local 或 s3
	Type string `validate:"eq=local|eq=s3"`
	// BasePath 本地存储根目录
	BasePath string
	// Bucket S3 存储桶名
	Bucket string
	// Region S3 区域
	Region string
	// Endpoint 自定义 S3 Endpoint，留空使用官方
	Endpoint string
	// AccessKey / SecretKey S3 凭证
	AccessKey string
	SecretKey string
}

// cors 跨域配置
type cors struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
	ExposeHeaders    []string
}
