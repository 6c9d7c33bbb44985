package config

import (
	"fmt"
	"github.com/spf13/viper"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// 数据库配置
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	// Redis配置
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// OpenAI API配置，未配置API Key时回复生成使用本地兜底文案
	OpenAIAPIKey      string `mapstructure:"OPENAI_API_KEY"`
	OpenAIAPIEndpoint string `mapstructure:"OPENAI_API_ENDPOINT"`

	// 风险阈值配置
	SelfHarmThreshold     float64 `mapstructure:"SELF_HARM_THRESHOLD"`
	SevereStressThreshold float64 `mapstructure:"SEVERE_STRESS_THRESHOLD"`

	// 多模态融合权重配置，三者之和必须为1.0
	FacialWeight float64 `mapstructure:"FACIAL_WEIGHT"`
	VoiceWeight  float64 `mapstructure:"VOICE_WEIGHT"`
	TextWeight   float64 `mapstructure:"TEXT_WEIGHT"`

	// JWT配置
	JWTSecret string `mapstructure:"JWT_SECRET"`
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	// 风险阈值与融合权重默认值
	viper.SetDefault("SELF_HARM_THRESHOLD", 0.8)
	viper.SetDefault("SEVERE_STRESS_THRESHOLD", 0.7)
	viper.SetDefault("FACIAL_WEIGHT", 0.4)
	viper.SetDefault("VOICE_WEIGHT", 0.3)
	viper.SetDefault("TEXT_WEIGHT", 0.3)

	err = viper.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}

// GetDBConnString 返回数据库连接字符串
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRedisConnString 返回Redis连接字符串
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
