package cauchy256

import logging "github.com/dep2p/log"

// logger is the package-scoped log instance.
var logger = logging.Logger("cauchy256")

// 该函数在包初始化时自动执行,用于设置默认的日志配置
func init() {
	// 使用JSON格式输出,输出到标准错误,日志级别为INFO
	logging.SetupLogging(logging.Config{
		Format: logging.JSONOutput,
		Stderr: true,
		Level:  logging.LevelInfo,
	})
}

// SetLog 设置日志配置
// 该方法允许自定义日志输出的文件路径和是否输出到标准错误
func SetLog(filename string, stderr ...bool) {
	useStderr := false
	if len(stderr) > 0 {
		useStderr = stderr[0]
	}
	logging.SetupLogging(logging.Config{
		Format: logging.JSONOutput,
		Stderr: useStderr,
		File:   filename,
		Level:  logging.LevelInfo,
	})
}
