package domain

import "UserCenter/modules/kit/errx"

// Kind 是依赖失败的分类，集合是封闭的：新增分类必须同步所有映射点。
type Kind uint8

const (
	// KindInternal 依赖客户端本地的失败（编码、连接、内部异常）。
	KindInternal Kind = iota
	// KindUpstream 远端存储返回的错误。
	KindUpstream
	// KindInvalidInput 请求参数不合法，在接触依赖之前就能发现。
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "internal"
	case KindUpstream:
		return "upstream"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error 复用通用错误模型。
type Error = errx.Error

func Internal(msg string) *Error {
	return errx.ErrInternal.WithMsg(msg)
}

func Upstream(msg string) *Error {
	return errx.ErrUpstream.WithMsg(msg)
}

func InvalidInput(msg string) *Error {
	return errx.ErrReqParamERR.WithMsg(msg)
}

// KindOf 取出错误的分类和对外消息；不带分类的错误按 KindInternal 处理。
func KindOf(err error) (Kind, string) {
	e, ok := errx.From(err)
	if !ok {
		return KindInternal, err.Error()
	}
	//exhaustive:enforce
	switch e.Code() {
	case errx.CodeInternal, errx.CodeUnavailable:
		return KindInternal, e.Msg()
	case errx.CodeUpstream:
		return KindUpstream, e.Msg()
	case errx.CodeReqParamError:
		return KindInvalidInput, e.Msg()
	}
	// errx 新增的错误码要在上面显式归类；其余业务自定义码按内部错误处理
	return KindInternal, e.Msg()
}
