package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Clyding/EmotionCV/config"
	"github.com/Clyding/EmotionCV/middleware"
	"github.com/Clyding/EmotionCV/routes"
	"github.com/Clyding/EmotionCV/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// 初始化日志
	if err := config.InitLogger(); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	defer config.Logger.Sync()

	// 加载配置
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
		return
	}

	// 初始化数据库
	if err := config.InitDB(conf); err != nil {
		log.Fatalf("无法初始化数据库: %v", err)
		return
	}

	// 初始化Redis
	if err := config.InitRedis(conf); err != nil {
		log.Fatalf("无法初始化Redis: %v", err)
		return
	}

	// 初始化OpenAI客户端，未配置API Key时回复生成走兜底文案
	llmClient, err := services.NewOpenAIClient(conf.OpenAIAPIKey, conf.OpenAIAPIEndpoint)
	if err != nil {
		log.Fatalf("无法初始化OpenAI客户端: %v", err)
	}
	if llmClient == nil {
		config.Logger.Warnw("未配置OpenAI API Key，共情回复将使用兜底文案")
	}

	// 构造分析服务，校验融合权重配置
	analyzeService, err := services.NewAnalyzeService(conf, llmClient, config.Logger)
	if err != nil {
		log.Fatalf("无法构造分析服务: %v", err)
	}

	// 设置gin模式
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	middleware.SetupMiddleware(r)
	r.Use(middleware.RequestLogger())
	routes.RegisterRoutes(r, analyzeService)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 在goroutine中启动服务器
	go func() {
		log.Printf("启动服务器，监听端口: %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 创建超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务器关闭失败: %v", err)
	}

	log.Println("服务器已关闭")
}
