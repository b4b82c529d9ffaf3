package rest

import "github.com/ElliottBolan/stock-news-sentiment/domain"

type SubscribePayload struct {
	Ticker string `json:"ticker"`
}

type SubscriptionsResponse struct {
	Tickers []string `json:"tickers"`
}

type StocksResponse struct {
	Stocks []domain.Stock `json:"stocks"`
}

type SectorsResponse struct {
	Sectors []string `json:"sectors"`
}

type IndustriesResponse struct {
	Industries []string `json:"industries"`
}

type NewsResponse struct {
	Articles []domain.NewsArticle `json:"articles"`
}

type CatalogReloadPayload struct {
	Stocks []domain.Stock `json:"stocks"`
}

type CatalogReloadResponse struct {
	Loaded int `json:"loaded"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
