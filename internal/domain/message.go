package domain

// MessageType 计费与发送使用的消息类型
type MessageType string

const (
	MessageTypeKakao MessageType = "KAKAO" // 알림톡 模版消息
	MessageTypeSMS   MessageType = "SMS"   // 短文本
	MessageTypeLMS   MessageType = "LMS"   // 长文本
	MessageTypeMMS   MessageType = "MMS"   // 彩信，仅管理后台批量短信使用
)

func (m MessageType) String() string {
	return string(m)
}

func (m MessageType) IsValid() bool {
	switch m {
	case MessageTypeKakao, MessageTypeSMS, MessageTypeLMS, MessageTypeMMS:
		return true
	}
	return false
}

// IsText 是否为文本短信（含回落渠道）
func (m MessageType) IsText() bool {
	return m == MessageTypeSMS || m == MessageTypeLMS || m == MessageTypeMMS
}

// DispatchChannel 一次派发走的入口渠道
type DispatchChannel string

const (
	// DispatchChannelTemplate 알림톡 模版渠道，失败时由供应商回落为 SMS/LMS
	DispatchChannelTemplate DispatchChannel = "TEMPLATE"
	// DispatchChannelText 管理后台直接发送的 SMS/LMS/MMS
	DispatchChannelText DispatchChannel = "TEXT"
)

func (c DispatchChannel) String() string {
	return string(c)
}

func (c DispatchChannel) IsValid() bool {
	return c == DispatchChannelTemplate || c == DispatchChannelText
}

// ProviderMsgType 供应商回包里标识实际下发渠道的类型
type ProviderMsgType string

const (
	ProviderMsgTypeAlimtalk ProviderMsgType = "AT"
	ProviderMsgTypeFriend   ProviderMsgType = "FT"
	ProviderMsgTypeSMS      ProviderMsgType = "SMS"
	ProviderMsgTypeLMS      ProviderMsgType = "LMS"
	ProviderMsgTypeMMS      ProviderMsgType = "MMS"
	// ProviderMsgTypeUnknown 网络失败等没有拿到回包的情况
	ProviderMsgTypeUnknown ProviderMsgType = ""
)

// IsTemplate 是否走的是 알림톡/친구톡 模版渠道
func (t ProviderMsgType) IsTemplate() bool {
	return t == ProviderMsgTypeAlimtalk || t == ProviderMsgTypeFriend
}

// IsText 是否走的是文本回落渠道
func (t ProviderMsgType) IsText() bool {
	return t == ProviderMsgTypeSMS || t == ProviderMsgTypeLMS || t == ProviderMsgTypeMMS
}
