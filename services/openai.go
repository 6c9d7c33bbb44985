package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// NewOpenAIClient 构造OpenAI聊天模型客户端。
// apiKey为空时返回nil模型，回复生成将始终走兜底文案；
// apiEndpoint为空时使用官方默认地址
func NewOpenAIClient(apiKey, apiEndpoint string) (llms.Model, error) {
	if apiKey == "" {
		return nil, nil
	}

	options := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel("gpt-4o"),
	}
	if apiEndpoint != "" {
		options = append(options, openai.WithBaseURL(apiEndpoint))
	}

	client, err := openai.New(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return client, nil
}
