package errx

// 这里定义“跨服务统一”的系统类错误码。
//
// 约束：
// - 这些错误码用于“系统/技术类错误”归一化（便于告警、观测、跨服务排障）
// - 业务域错误码必须由各业务自行定义，不允许在 kit 里集中

const (
	// CodeInternal 表示服务内部不可预期错误（兜底），也包括依赖客户端本地的失败。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUpstream 表示由远端依赖（数据库/下游服务）返回、本服务无法进一步归类的错误。
	CodeUpstream Code = "UPSTREAM_ERROR"
	// CodeUnavailable 表示依赖不可用/服务不可用。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
	// CodeReqParamError 表示请求参数错误，在接触依赖之前就能发现。
	CodeReqParamError Code = "CODE_REQ_PARAM_ERROR"
)

// 统一系统类哨兵错误（允许 WithData/WithCause 派生新对象）。
var (
	ErrInternal    = NewSys(CodeInternal, "服务器内部错误")
	ErrUpstream    = NewSys(CodeUpstream, "上游依赖错误")
	ErrUnavailable = NewSys(CodeUnavailable, "服务不可用")
	ErrReqParamERR = NewBiz(CodeReqParamError, "请求参数错误")
)
