package query

// Handlers groups the product query handlers
type Handlers struct {
	Get     *GetProductHandler
	List    *ListProductsHandler
	Search  *SearchProductsHandler
	History *GetHistoryHandler
	Export  *ExportProductsHandler
	Stats   *GetStatsHandler
}

// NewHandlers groups the given handlers
func NewHandlers(
	get *GetProductHandler,
	list *ListProductsHandler,
	search *SearchProductsHandler,
	history *GetHistoryHandler,
	export *ExportProductsHandler,
	stats *GetStatsHandler,
) *Handlers {
	return &Handlers{
		Get:     get,
		List:    list,
		Search:  search,
		History: history,
		Export:  export,
		Stats:   stats,
	}
}
