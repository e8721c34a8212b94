package coordinator

import (
	"github.com/nikmy/multitx/pkg/txn"
)

//go:generate mockgen -source=interfaces_test.go -destination=mocks_test.go -package=coordinator

type connectionImpl interface {
	txn.Connection
}

type sessionImpl interface {
	txn.Session
}
