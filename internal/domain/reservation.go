package domain

import (
	"time"

	"github.com/bclub/TableReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// ValidReservationStatus проверяет, что строка - допустимый статус
func ValidReservationStatus(s string) bool {
	switch ReservationStatus(s) {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Reservation represents a table reservation in the system
// Интервал [StartTime, EndTime) полуоткрытый и не пересекает полночь
type Reservation struct {
	ID        int64
	UserID    int64
	TableID   int64
	Date      string // YYYY-MM-DD
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    ReservationStatus
	Comment   *string
	CreatedAt time.Time
}

// IsActive returns true if the reservation holds its time slot
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// IsTerminal returns true if the reservation is in a terminal state
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusActive
}

// CanTransitionTo проверяет допустимость перехода статуса
// Разрешены только active -> completed и active -> cancelled,
// из терминальных состояний переходов нет
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	if r.Status == next {
		return true
	}
	return r.Status == StatusActive &&
		(next == StatusCompleted || next == StatusCancelled)
}

// Interval возвращает временной интервал бронирования
func (r *Reservation) Interval() Interval {
	return Interval{StartTime: r.StartTime, EndTime: r.EndTime}
}

// ReservationsFilter фильтр для выборки бронирований
type ReservationsFilter struct {
	UserID  *int64             // бронирования конкретного пользователя
	TableID *int64             // бронирования конкретного стола
	Date    *string            // бронирования на дату (YYYY-MM-DD)
	Status  *ReservationStatus // фильтр по статусу
}
