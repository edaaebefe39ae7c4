package service

import "github.com/fixture-next/internal/models"

// MaxStationsResult 机种各站可开站数
type MaxStationsResult struct {
	Model    string         `json:"model"`
	Stations map[string]int `json:"stations"`
}

// BuildStockMap 按治具名称建立库存映射，重名时后读到的行覆盖先前的值
func BuildStockMap(fixtures []models.Fixture) map[string]int {
	stock := make(map[string]int, len(fixtures))
	for _, fixture := range fixtures {
		stock[fixture.Name] = fixture.StockQuantity()
	}
	return stock
}

// ComputeMaxStations 计算每站可开站数：每条需求贡献 floor(库存/需求量)，站结果取其中最小值
// 需求量为 0 的行贡献 0；库存中找不到的治具按 0 计
func ComputeMaxStations(reqs []models.FixtureRequirement, stock map[string]int) map[string]int {
	stations := make(map[string]int)
	seen := make(map[string]bool)
	for _, req := range reqs {
		possible := 0
		if req.RequiredQty != 0 {
			possible = floorDiv(stock[req.FixtureCode], req.RequiredQty)
		}
		if !seen[req.Station] || possible < stations[req.Station] {
			stations[req.Station] = possible
			seen[req.Station] = true
		}
	}
	return stations
}

// floorDiv 向下取整的整除，负数结果朝负无穷取整
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
