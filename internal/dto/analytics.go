package dto

type Statistics struct {
	TotalSaleAmount   float64 `json:"totalSaleAmount"`
	TotalSoldItems    int     `json:"totalSoldItems"`
	TotalNotSoldItems int     `json:"totalNotSoldItems"`
}

// StatisticsResult echoes year and month exactly as the caller sent them.
type StatisticsResult struct {
	Year       string     `json:"year"`
	Month      string     `json:"month"`
	Statistics Statistics `json:"statistics"`
}

type PriceBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type BarChartResult struct {
	Month string        `json:"month"`
	Data  []PriceBucket `json:"data"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type PieChartResult struct {
	Month string          `json:"month"`
	Data  []CategoryCount `json:"data"`
}
