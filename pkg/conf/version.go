package conf

// BackendVersion 当前后端版本号
var BackendVersion = "1.2.1"

// RequiredDBVersion 与当前版本匹配的数据库版本
var RequiredDBVersion = "1.2.0"

// LastCommit 最后commit id
var LastCommit = "000000"
