package usecase

import "errors"

var (
	// ErrInvalidNotification は宛先・タイトル・本文のいずれかが欠けている場合に返されます。
	ErrInvalidNotification = errors.New("invalid notification")
)
