package consts

const (
	CreatorDirtyKey = "creator:metric:dirty"
)

const (
	CreatorMetricDailyLock = "lock:creator:metric:"
)
