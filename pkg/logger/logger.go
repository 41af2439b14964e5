// Package logger 提供带颜色的分级日志输出
package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
)

// Level 日志级别
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
	LevelDebug Level = "DEBUG"
)

var colorMap = map[Level]func(a ...interface{}) string{
	LevelInfo:  color.New(color.FgBlue).SprintFunc(),
	LevelWarn:  color.New(color.FgYellow).SprintFunc(),
	LevelError: color.New(color.FgRed).SprintFunc(),
	LevelDebug: color.New(color.FgCyan).SprintFunc(),
}

// debugEnabled Debug 输出开关，启动时读取一次
var debugEnabled = os.Getenv("LLM_DEBUG") != ""

func logf(level Level, format string, args ...any) {
	colorize := colorMap[level]
	ts := time.Now().Format("2006-01-02 15:04:05")
	fmt.Printf("%s [%s] %s\n", ts, colorize(string(level)), fmt.Sprintf(format, args...))
}

// Infof 输出 INFO 级别日志
func Infof(format string, args ...any) { logf(LevelInfo, format, args...) }

// Warnf 输出 WARN 级别日志
func Warnf(format string, args ...any) { logf(LevelWarn, format, args...) }

// Errorf 输出 ERROR 级别日志
func Errorf(format string, args ...any) { logf(LevelError, format, args...) }

// Debugf 输出 DEBUG 级别日志（需设置 LLM_DEBUG）
func Debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	logf(LevelDebug, format, args...)
}
