package util

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Ext 返回小写的文件扩展名，不含"."
func Ext(fileName string) string {
	ext := filepath.Ext(fileName)
	if len(ext) > 0 {
		ext = ext[1:]
	}
	return strings.ToLower(ext)
}

// RelativePath 返回相对可执行文件的路径
func RelativePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	e, _ := os.Executable()
	return filepath.Join(filepath.Dir(e), name)
}

// BaseName 返回去除扩展名后的文件名
func BaseName(fileName string) string {
	base := path.Base(FormSlash(fileName))
	return strings.TrimSuffix(base, path.Ext(base))
}

// FillSlash 给路径补全`/`
func FillSlash(path string) string {
	if path == "/" {
		return path
	}
	return path + "/"
}

// RemoveSlash 移除路径最后的`/`
func RemoveSlash(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}
	return path
}

// FormSlash 将path中的反斜杠'\'替换为'/'
func FormSlash(old string) string {
	return path.Clean(strings.ReplaceAll(old, "\\", "/"))
}
