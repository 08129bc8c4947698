package generator

import (
	"math/rand/v2"

	"github.com/akozadaev/travel_network_generator/internal/models"
)

const (
	// SchedulesPerRoute задает число рейсов на каждом маршруте
	SchedulesPerRoute = 3
	// ScheduleValidityDays задает срок действия расписания в днях
	ScheduleValidityDays = 365

	firstDepartureHour = 6
	lastDepartureHour  = 20
	defaultCapacity    = 100
)

var (
	departureMinutes = []int{0, 15, 30, 45}
	saturdayService  = []bool{true, true, false}
	sundayService    = []bool{true, false}
)

// BuildSchedules создает рейсы для маршрута. Цена и длительность каждого рейса
// считаются независимо. Время прибытия берется по модулю суток без переноса даты.
func BuildSchedules(rng *rand.Rand, route *models.Route, distanceKm float64, today models.Date) []*models.Schedule {
	schedules := make([]*models.Schedule, 0, SchedulesPerRoute)

	for i := 0; i < SchedulesPerRoute; i++ {
		price := Price(rng, distanceKm)
		hour := intBetween(rng, firstDepartureHour, lastDepartureHour)
		minute := pick(rng, departureMinutes)
		duration := EstimateDuration(rng, distanceKm)

		departure := models.NewTimeOfDay(hour, minute)
		arrival := models.NewTimeOfDay(0, departure.Minutes()+duration)

		schedules = append(schedules, &models.Schedule{
			RouteID:           route.ID,
			DepartureTime:     departure,
			ArrivalTime:       arrival,
			DurationMinutes:   duration,
			BasePrice:         price,
			Currency:          models.DefaultCurrency,
			OperatesMonday:    true,
			OperatesTuesday:   true,
			OperatesWednesday: true,
			OperatesThursday:  true,
			OperatesFriday:    true,
			OperatesSaturday:  pick(rng, saturdayService),
			OperatesSunday:    pick(rng, sundayService),
			ValidFrom:         today,
			ValidUntil:        today.AddDays(ScheduleValidityDays),
			TotalCapacity:     defaultCapacity,
			RemainingCapacity: defaultCapacity,
			IsActive:          true,
		})
	}

	return schedules
}
