package doc

import "errors"

var (
	ErrDecode = errors.New("decode error")
	ErrEncode = errors.New("encode error")
	ErrPatch  = errors.New("patch error")
	ErrValue  = errors.New("unsupported value")
)
