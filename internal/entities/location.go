package entities

// Location точка с человекочитаемым адресом. Геокодинг вне зоны
// ответственности сервиса, координаты могут быть нулевыми.
type Location struct {
	Lat     float64
	Lng     float64
	Address string
}
