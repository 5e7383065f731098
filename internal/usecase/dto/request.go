package dto

// GeocodeSearchRequest - прямое геокодирование адреса
type GeocodeSearchRequest struct {
	Query string `json:"q" validate:"required,min=2,max=256"`
}

// ReverseGeocodeRequest - запрос на обратное геокодирование
type ReverseGeocodeRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lon *float64 `json:"lon" validate:"required,min=-180,max=180"`
}

// CreateRideRequest - новый сеанс. Координаты устройства необязательны:
// без них используется позиция по умолчанию.
type CreateRideRequest struct {
	Lat *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lon *float64 `json:"lon,omitempty" validate:"omitempty,min=-180,max=180"`
}

// PlanRideRequest - адреса для построения маршрутов.
// Пустой start_address означает текущую позицию пользователя.
type PlanRideRequest struct {
	StartAddress       string `json:"start_address,omitempty" validate:"omitempty,min=2,max=256"`
	DestinationAddress string `json:"destination_address" validate:"required,min=2,max=256"`
}

// SelectRouteRequest - выбор маршрута по индексу
type SelectRouteRequest struct {
	Index *int `json:"index" validate:"required"`
}

// MapClickRequest - клик по линии маршрута на карте
type MapClickRequest struct {
	RouteIndex *int `json:"route_index" validate:"required"`
}

// DisplayModeRequest - режим отображения карты
type DisplayModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=embedded fullscreen"`
}
