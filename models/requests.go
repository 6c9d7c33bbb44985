package models

// RegisterRequest 注册请求结构体
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
}

// LoginRequest 登录请求结构体
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AnalyzeRequest 情绪分析请求结构体。voice_data和facial_data
// 对核心流程是不透明数据，原样透传给对应模态的估计器
type AnalyzeRequest struct {
	TextInput  string                 `json:"text_input"`
	VoiceData  map[string]interface{} `json:"voice_data"`
	FacialData map[string]interface{} `json:"facial_data"`
}

// ContactRequest 紧急联系人添加请求结构体
type ContactRequest struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Email        string `json:"email"`
	Relationship string `json:"relationship"`
	IsPrimary    bool   `json:"is_primary"`
}
