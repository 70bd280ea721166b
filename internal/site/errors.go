package site

import (
	"errors"
	"fmt"
)

// Validation errors surfaced to the user as blocking notices.
var (
	ErrTitleRequired        = errors.New("제목과 내용을 입력해주세요.")
	ErrContentRequired      = errors.New("제목과 내용을 입력해주세요.")
	ErrMessageRequired      = errors.New("메시지를 입력해주세요.")
	ErrBannerFieldsRequired = errors.New("이미지 주소와 링크 주소를 입력해주세요.")
	ErrImageRequired        = errors.New("이미지 주소를 입력해주세요.")
	ErrLastImage            = errors.New("최소 하나의 이미지는 있어야 합니다.")
	ErrDreamRequired        = errors.New("분석할 꿈 내용을 입력해주세요.")
	ErrWrongPassword        = errors.New("비밀번호가 틀렸습니다.")
	ErrNotAdmin             = errors.New("관리자 로그인이 필요합니다.")
	ErrUnknownField         = errors.New("unknown settings field")
	ErrInvalidValue         = errors.New("invalid settings value")
	ErrNotFound             = errors.New("not found")
)

// DecodeError reports a persisted record that could not be decoded.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("decode record: %v", e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
