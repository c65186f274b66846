package domain

// TableStatus represents the operator-controlled status of a billiard table
// Статус задается администратором и не зависит от наличия бронирований
type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableBusy      TableStatus = "busy"
	TableInactive  TableStatus = "inactive"
)

// ValidTableStatus проверяет, что строка - допустимый статус стола
func ValidTableStatus(s string) bool {
	switch TableStatus(s) {
	case TableAvailable, TableBusy, TableInactive:
		return true
	}
	return false
}

// Table represents a billiard table
type Table struct {
	ID     int64
	Number int // отображаемый номер стола
	Status TableStatus
}

// IsBookable returns true if the table accepts new reservations
func (t *Table) IsBookable() bool {
	return t.Status == TableAvailable
}
