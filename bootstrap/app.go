package bootstrap

import (
	"encoding/json"
	"fmt"

	"github.com/lensvault/lensvault/pkg/conf"
	"github.com/lensvault/lensvault/pkg/request"
	"github.com/lensvault/lensvault/pkg/util"

	"github.com/hashicorp/go-version"
)

// InitApplication 初始化应用常量
func InitApplication() {
	fmt.Print(`
   __                  _    __          _ _
  / /  ___ _ __  ___/\ \ \_/_\  /\ /\ / | |_
 / /  / _ \ '_ \/ __\ \ \ \//_\\/ / \ \ | | __|
/ /__|  __/ | | \__ \ \_\ /  _  \ \_/ / | | |_
\____/\___|_| |_|___/\___/\_/ \_/\___/|_|_|\__|

   V` + conf.BackendVersion + `
================================================

`)
	go CheckUpdate()
}

type gitHubRelease struct {
	URL  string `json:"html_url"`
	Name string `json:"name"`
	Tag  string `json:"tag_name"`
}

// CheckUpdate 检查更新
func CheckUpdate() {
	client := request.NewClient()
	res, err := client.Request("GET", "https://api.github.com/repos/lensvault/lensvault/releases", nil).GetResponse()
	if err != nil {
		util.Log().Warning("更新检查失败, %s", err)
		return
	}

	var list []gitHubRelease
	if err := json.Unmarshal([]byte(res), &list); err != nil {
		util.Log().Warning("更新检查失败, %s", err)
		return
	}

	if len(list) > 0 {
		present, err1 := version.NewVersion(conf.BackendVersion)
		latest, err2 := version.NewVersion(list[0].Tag)
		if err1 == nil && err2 == nil && latest.GreaterThan(present) {
			util.Log().Info("有新的版本 [%s] 可用，下载：%s", list[0].Name, list[0].URL)
		}
	}
}
