package consts

const (
	StoryStatusPublished = 1
)

// 捐赠支付状态，只有 collected 计入已实现收益
const (
	DonationStatusPending   = "pending"
	DonationStatusCollected = "collected"
	DonationStatusFailed    = "failed"
)

const (
	AnonymousDonorName = "Anonymous"
)
