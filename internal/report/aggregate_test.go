package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berberbook/saloniumpro/internal/models"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name      string
		today     float64
		yesterday float64
		want      int
	}{
		{"zero baseline reports zero", 500, 0, 0},
		{"negative baseline reports zero", 500, -10, 0},
		{"both zero", 0, 0, 0},
		{"doubled", 200, 100, 100},
		{"halved", 50, 100, -50},
		{"rounds to nearest", 115, 100, 15},
		{"rounds half up", 100.5, 100, 1},
		{"drop to zero", 0, 80, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PercentChange(tt.today, tt.yesterday))
		})
	}
}

func TestDateOnly(t *testing.T) {
	assert.Equal(t, "2024-03-15", DateOnly("2024-03-15T10:00"))
	assert.Equal(t, "2024-03-15", DateOnly("2024-03-15T00:00:00.000Z"))
	assert.Equal(t, "2024-03-15", DateOnly("2024-03-15"))
	assert.Equal(t, "", DateOnly(""))
}

func TestBuildAggregates(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC)

	sales := []models.Sale{
		{
			Date: "2024-03-19", Total: 150, PaymentMethod: "card",
			Items: []models.SaleItem{
				{ItemID: 1, ItemType: models.SaleItemProduct, Name: "Şampuan", Price: 150, Quantity: 1},
			},
		},
		{
			Date: "2024-03-19", Total: 100, PaymentMethod: "cash",
			Items: []models.SaleItem{
				{ItemID: 2, ItemType: models.SaleItemService, Name: "Saç Kesimi", Price: 100, Quantity: 1},
			},
		},
		{
			// previous month; counted in totals but not in this-month stats
			Date: "2024-02-10", Total: 300, PaymentMethod: "card",
			Items: []models.SaleItem{
				{ItemID: 3, ItemType: models.SaleItemService, Name: "Saç Boyama", Price: 300, Quantity: 1},
			},
		},
	}

	appointments := []models.Appointment{
		{Date: "2024-03-19", Time: "10:00", Status: "tamamlandı"},
		{Date: "2024-03-20", Time: "10:30", Status: "beklemede"},
		{Date: "2024-02-05", Time: "14:00", Status: "iptal"},
	}

	customers := []models.Customer{{ID: 1}, {ID: 2}}

	data := Build(now, sales, appointments, customers, nil, nil)

	assert.Equal(t, 2, data.PaymentMethods.Card)
	assert.Equal(t, 1, data.PaymentMethods.Cash)

	assert.Equal(t, 250.0, data.DailyRevenue["2024-03-19"])
	assert.Equal(t, 300.0, data.DailyRevenue["2024-02-10"])

	assert.Equal(t, 550.0, data.Stats.TotalRevenue)
	assert.Equal(t, 250.0, data.Stats.ThisMonthRevenue)
	assert.Equal(t, 2, data.Stats.ThisMonthSales)

	assert.Equal(t, map[string]int{"10": 2, "14": 1}, data.HourlyAppointments)
	assert.Equal(t, 1, data.Stats.CompletedAppointments)
	assert.Equal(t, 2, data.Stats.ThisMonthAppointments)

	assert.Equal(t, 2, data.Stats.TotalCustomers)
	assert.Equal(t, 3, data.Stats.TotalAppointments)
}

func TestBuildTopItemsRanking(t *testing.T) {
	sales := []models.Sale{
		{Items: []models.SaleItem{
			{ItemID: 1, ItemType: models.SaleItemService, Name: "Saç Kesimi", Price: 100, Quantity: 2},
			{ItemID: 2, ItemType: models.SaleItemService, Name: "Sakal Tıraşı", Price: 50, Quantity: 1},
			{ItemID: 9, ItemType: models.SaleItemProduct, Name: "Şampuan", Price: 150, Quantity: 1},
		}},
		{Items: []models.SaleItem{
			{ItemID: 2, ItemType: models.SaleItemService, Name: "Sakal Tıraşı", Price: 50, Quantity: 3},
		}},
	}

	data := Build(time.Now(), sales, nil, nil, nil, nil)

	require.Len(t, data.TopServices, 2)
	// both services grossed 200; the tie breaks on the lower id
	assert.Equal(t, uint(1), data.TopServices[0].ID)
	assert.Equal(t, 2, data.TopServices[0].Count)
	assert.Equal(t, 200.0, data.TopServices[0].Revenue)
	assert.Equal(t, uint(2), data.TopServices[1].ID)
	assert.Equal(t, 4, data.TopServices[1].Count)

	require.Len(t, data.TopProducts, 1)
	assert.Equal(t, "Şampuan", data.TopProducts[0].Name)
}

func TestBuildTopItemsCapAndFallbacks(t *testing.T) {
	var items []models.SaleItem
	for i := 1; i <= 12; i++ {
		items = append(items, models.SaleItem{
			ItemID:   uint(i),
			ItemType: models.SaleItemProduct,
			Name:     fmt.Sprintf("Ürün %d", i),
			Price:    float64(i * 10),
			Quantity: 1,
		})
	}
	// zero quantity counts as one; blank name gets the fallback label
	items = append(items, models.SaleItem{
		ItemID:   99,
		ItemType: models.SaleItemProduct,
		Price:    5,
		Quantity: 0,
	})

	data := Build(time.Now(), []models.Sale{{Items: items}}, nil, nil, nil, nil)

	require.Len(t, data.TopProducts, 10)
	// ranked by revenue, so the cheapest rows fall off the end
	assert.Equal(t, uint(12), data.TopProducts[0].ID)
	assert.Equal(t, uint(3), data.TopProducts[9].ID)

	full := Build(time.Now(), []models.Sale{{Items: items[12:]}}, nil, nil, nil, nil)
	require.Len(t, full.TopProducts, 1)
	assert.Equal(t, "Bilinmeyen Ürün", full.TopProducts[0].Name)
	assert.Equal(t, 1, full.TopProducts[0].Count)
	assert.Equal(t, 5.0, full.TopProducts[0].Revenue)
}
