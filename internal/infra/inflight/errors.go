package inflight

import "errors"

var (
	// ErrCommitInProgress возвращается, если по этому ключу уже выполняется фиксация
	ErrCommitInProgress = errors.New("inflight: commit already in progress")

	// ErrEmptyKey возвращается при попытке захватить пустой ключ
	ErrEmptyKey = errors.New("inflight: empty key")

	// ErrBackend возвращается при недоступности хранилища флагов
	ErrBackend = errors.New("inflight: backend failure")
)
