package constants

// 配送方式常量
const (
	DeliveryTypeStandard      = "Standard"
	DeliveryTypeExpress       = "Express"
	DeliveryTypeSameDay       = "Same Day"
	DeliveryTypeInternational = "International"
)

// 配送状态常量（状态机见 service.DeliveryService.Transition）
const (
	DeliveryStatusProcessing     = "Processing"
	DeliveryStatusShipped        = "Shipped"
	DeliveryStatusInTransit      = "In Transit"
	DeliveryStatusOutForDelivery = "Out for Delivery"
	DeliveryStatusDelivered      = "Delivered"
	DeliveryStatusFailed         = "Failed"
	DeliveryStatusReturned       = "Returned"
)

// 购买记录展示用配送状态（与配送表 status 不是同一枚举）
const (
	PurchaseDeliveryNotShipped = "Not shipped"
	PurchaseDeliveryDelivered  = "Delivered"
	PurchaseDeliveryInTransit  = "In transit"
	PurchaseDeliveryProcessing = "Processing"
)

// 分页默认值
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// MaxDeliveryDays 配送天数上限（约十年）
const MaxDeliveryDays = 3650

// DeliveryTypes 全部配送方式
var DeliveryTypes = []string{
	DeliveryTypeStandard,
	DeliveryTypeExpress,
	DeliveryTypeSameDay,
	DeliveryTypeInternational,
}

// DeliveryStatusFlow 主流程状态，按先后顺序排列
var DeliveryStatusFlow = []string{
	DeliveryStatusProcessing,
	DeliveryStatusShipped,
	DeliveryStatusInTransit,
	DeliveryStatusOutForDelivery,
	DeliveryStatusDelivered,
}

// DeliveryStatuses 全部配送状态
var DeliveryStatuses = []string{
	DeliveryStatusProcessing,
	DeliveryStatusShipped,
	DeliveryStatusInTransit,
	DeliveryStatusOutForDelivery,
	DeliveryStatusDelivered,
	DeliveryStatusFailed,
	DeliveryStatusReturned,
}
