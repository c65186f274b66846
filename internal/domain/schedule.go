package domain

import (
	"errors"
	"fmt"

	"github.com/bclub/TableReservationService/pkg/types"
)

// ErrInvalidSlotDuration возвращается при неположительной длительности слота
var ErrInvalidSlotDuration = errors.New("slot duration must be a positive number of hours")

// Interval полуоткрытый временной интервал [StartTime, EndTime)
// Сравнение строк HH:MM лексикографическое, формат фиксированной ширины
type Interval struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Overlaps проверяет пересечение интервала a с кандидатом b
// Интервалы полуоткрытые: если один заканчивается ровно там,
// где начинается другой - пересечения НЕТ
//
// Примеры:
// - a 17:00-19:00, b 18:00-20:00 → пересекаются
// - a 10:00-12:00, b 12:00-14:00 → не пересекаются (граничат)
// - a 11:00-12:00, b 10:00-14:00 → пересекаются (b целиком покрывает a)
func (a Interval) Overlaps(b Interval) bool {
	// Начало b попадает в [a.start, a.end)
	if !b.StartTime.IsBefore(a.StartTime) && b.StartTime.IsBefore(a.EndTime) {
		return true
	}
	// Конец b попадает в (a.start, a.end]
	if b.EndTime.IsAfter(a.StartTime) && !b.EndTime.IsAfter(a.EndTime) {
		return true
	}
	// b целиком покрывает a
	if !b.StartTime.IsAfter(a.StartTime) && !b.EndTime.IsBefore(a.EndTime) {
		return true
	}
	return false
}

// TimeSlot слот расписания с признаком доступности
type TimeSlot struct {
	Interval
	IsAvailable bool
}

// GenerateSlots генерирует каноническую последовательность слотов дня
// из настроек клуба. Слоты идут с целого часа открытия с шагом
// slotDurationHours до целого часа закрытия; час закрытия 0 трактуется
// как 24 (конец суток), поэтому клуб, работающий вечером до полуночи,
// получает корректный последний слот.
//
// Если длительность слота не делит интервал работы нацело, последний слот
// может выйти за время закрытия - это принятое поведение, конец слота
// не обрезается.
func GenerateSlots(openingTime, closingTime types.TimeString, slotDurationHours int) ([]Interval, error) {
	if slotDurationHours <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSlotDuration, slotDurationHours)
	}

	currentHour, err := openingTime.Hour()
	if err != nil {
		return nil, err
	}

	endHour, err := closingTime.Hour()
	if err != nil {
		return nil, err
	}
	if endHour == 0 {
		endHour = 24
	}

	slots := make([]Interval, 0)
	for currentHour < endHour {
		endTimeHour := (currentHour + slotDurationHours) % 24
		slots = append(slots, Interval{
			StartTime: hourToTimeString(currentHour),
			EndTime:   hourToTimeString(endTimeHour),
		})
		currentHour += slotDurationHours
	}

	return slots, nil
}

// ComputeAvailability помечает каждый слот занятым, если он пересекается
// хотя бы с одним активным бронированием указанного стола
// Чистая функция: порядок слотов сохраняется, вход не модифицируется
//
// Тот же предикат Overlaps используется и при допуске бронирования,
// поэтому представление доступности и решение о допуске не расходятся
func ComputeAvailability(slots []Interval, reservations []*Reservation, tableID int64) []TimeSlot {
	result := make([]TimeSlot, len(slots))

	for i, slot := range slots {
		booked := false
		for _, res := range reservations {
			if res.TableID != tableID || !res.IsActive() {
				continue
			}
			if res.Interval().Overlaps(slot) {
				booked = true
				break
			}
		}
		result[i] = TimeSlot{Interval: slot, IsAvailable: !booked}
	}

	return result
}

// FindConflict возвращает первое активное бронирование стола,
// пересекающееся с кандидатом, или nil
func FindConflict(candidate Interval, tableID int64, reservations []*Reservation) *Reservation {
	for _, res := range reservations {
		if res.TableID != tableID || !res.IsActive() {
			continue
		}
		if res.Interval().Overlaps(candidate) {
			return res
		}
	}
	return nil
}

func hourToTimeString(hour int) types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:00", hour))
}
