package report

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/berberbook/saloniumpro/internal/models"
)

// ======================================================
// SHAPES
// ======================================================

type ItemStat struct {
	ID      uint    `json:"id"`
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type PaymentMethods struct {
	Card int `json:"card"`
	Cash int `json:"cash"`
}

type Stats struct {
	TotalRevenue          float64 `json:"totalRevenue"`
	ThisMonthRevenue      float64 `json:"thisMonthRevenue"`
	TotalCustomers        int     `json:"totalCustomers"`
	TotalAppointments     int     `json:"totalAppointments"`
	CompletedAppointments int     `json:"completedAppointments"`
	ThisMonthAppointments int     `json:"thisMonthAppointments"`
	ThisMonthSales        int     `json:"thisMonthSales"`
}

// Data is the full report payload: the raw tables plus every aggregate the
// reports page renders.
type Data struct {
	Sales        []models.Sale        `json:"sales"`
	Appointments []models.Appointment `json:"appointments"`
	Customers    []models.Customer    `json:"customers"`
	Services     []models.Service     `json:"services"`
	Products     []models.Product     `json:"products"`

	PaymentMethods     PaymentMethods     `json:"paymentMethods"`
	TopServices        []ItemStat         `json:"topServices"`
	TopProducts        []ItemStat         `json:"topProducts"`
	DailyRevenue       map[string]float64 `json:"dailyRevenue"`
	HourlyAppointments map[string]int     `json:"hourlyAppointments"`

	Stats Stats `json:"stats"`
}

// ======================================================
// AGGREGATION
// ======================================================

const topListSize = 10

// Build reduces the full tables into the report payload. Everything is
// computed in process; there is no server-side time-range filter.
func Build(
	now time.Time,
	sales []models.Sale,
	appointments []models.Appointment,
	customers []models.Customer,
	services []models.Service,
	products []models.Product,
) *Data {

	data := &Data{
		Sales:              sales,
		Appointments:       appointments,
		Customers:          customers,
		Services:           services,
		Products:           products,
		DailyRevenue:       make(map[string]float64),
		HourlyAppointments: make(map[string]int),
	}

	for _, s := range sales {
		switch s.PaymentMethod {
		case "card":
			data.PaymentMethods.Card++
		case "cash":
			data.PaymentMethods.Cash++
		}

		data.DailyRevenue[DateOnly(s.Date)] += s.Total
		data.Stats.TotalRevenue += s.Total

		if sameMonth(s.Date, now) {
			data.Stats.ThisMonthRevenue += s.Total
			data.Stats.ThisMonthSales++
		}
	}

	data.TopServices = topItems(sales, models.SaleItemService, "Bilinmeyen Hizmet")
	data.TopProducts = topItems(sales, models.SaleItemProduct, "Bilinmeyen Ürün")

	for _, ap := range appointments {
		data.HourlyAppointments[hourOf(ap.Time)]++

		if ap.Status == "tamamlandı" {
			data.Stats.CompletedAppointments++
		}
		if sameMonth(ap.Date, now) {
			data.Stats.ThisMonthAppointments++
		}
	}

	data.Stats.TotalCustomers = len(customers)
	data.Stats.TotalAppointments = len(appointments)

	return data
}

// topItems groups sale items of one type by item id and ranks them by
// revenue, keeping the top ten.
func topItems(sales []models.Sale, itemType, fallbackName string) []ItemStat {
	stats := make(map[uint]*ItemStat)

	for _, s := range sales {
		for _, item := range s.Items {
			if item.ItemType != itemType {
				continue
			}

			st, ok := stats[item.ItemID]
			if !ok {
				name := item.Name
				if name == "" {
					name = fallbackName
				}
				st = &ItemStat{ID: item.ItemID, Name: name}
				stats[item.ItemID] = st
			}

			qty := item.Quantity
			if qty < 1 {
				qty = 1
			}
			st.Count += qty
			st.Revenue += item.Price * float64(qty)
		}
	}

	ranked := make([]ItemStat, 0, len(stats))
	for _, st := range stats {
		ranked = append(ranked, *st)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > topListSize {
		ranked = ranked[:topListSize]
	}
	return ranked
}

// ======================================================
// HELPERS
// ======================================================

// PercentChange is the day-over-day revenue delta. A zero baseline reports
// 0% regardless of today's figure.
func PercentChange(today, yesterday float64) int {
	if yesterday <= 0 {
		return 0
	}
	return int(math.Round((today - yesterday) / yesterday * 100))
}

// DateOnly truncates anything from 'T' onwards: "2024-03-15T10:00" →
// "2024-03-15".
func DateOnly(date string) string {
	if i := strings.IndexByte(date, 'T'); i >= 0 {
		return date[:i]
	}
	return date
}

func hourOf(t string) string {
	if i := strings.IndexByte(t, ':'); i >= 0 {
		return t[:i]
	}
	return t
}

func sameMonth(date string, now time.Time) bool {
	d, err := time.Parse("2006-01-02", DateOnly(date))
	if err != nil {
		return false
	}
	return d.Year() == now.Year() && d.Month() == now.Month()
}
