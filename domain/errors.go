package domain

import "errors"

var (
	// 認証・認可エラー
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidUserContext = errors.New("invalid user context")

	// カタログ関連エラー
	ErrStockNotFound      = errors.New("stock not found")
	ErrCatalogUnavailable = errors.New("stock catalog unavailable")

	// ニュース関連エラー
	ErrNewsProvider = errors.New("news provider error")

	// 購読関連エラー
	ErrSubscriptionStoreUnavailable = errors.New("subscription store unavailable")
	ErrInvalidTicker                = errors.New("invalid ticker symbol")
)
