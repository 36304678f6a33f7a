package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"logs-clean/pkg/constants"
	"logs-clean/pkg/core"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run 解析参数、初始化日志并执行一次清理，返回进程退出码
func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("logs-clean", flag.ContinueOnError)
	var (
		configPath = flags.String("config", constants.ConfigFile, "配置文件路径")
		verbose    = flags.Bool("v", false, "输出调试日志")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	// 加载配置，失败时使用默认配置继续清理
	config, err := core.ParseConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败，使用默认配置: %v\n", err)
		config = core.DefaultConfig()
	}
	if *verbose {
		config.LogLevel = core.LevelDebug
	}

	// 初始化日志，日志文件不可用时不写日志但仍执行清理
	logger, logFile, err := core.SetupLogger(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败，不写入日志文件: %v\n", err)
		logger = log.New(io.Discard, "", 0)
	} else {
		defer logFile.Close()
	}

	workDir, err := os.Getwd()
	if err != nil {
		core.LogMessage(logger, core.LevelError, fmt.Sprintf("获取工作目录失败: %v", err), config)
		fmt.Fprintf(os.Stderr, "获取工作目录失败: %v\n", err)
		return 1
	}

	core.NewLogCleaner(config, logger, stdout).Clean(workDir)
	return 0
}
