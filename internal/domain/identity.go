package domain

// Tenant 조합（协会）租户，派发引擎只读
type Tenant struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	// SenderKeyRef 租户专属发送密钥在密钥库里的引用，空表示没有开通专属渠道
	SenderKeyRef string `json:"senderKeyRef"`
	// ChannelName 租户配置的카카오 渠道展示名
	ChannelName string `json:"channelName"`
}

// SenderIdentity 一次派发解析出来的发送身份，不落库
type SenderIdentity struct {
	Key         string `json:"-"`
	ChannelName string `json:"channelName"`
	IsDefault   bool   `json:"isDefault"`
}
