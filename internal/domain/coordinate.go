package domain

import (
	"fmt"

	"github.com/ride-booking/internal/pkg/utils"
)

// Coordinate - точка в градусах WGS84
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid проверяет, что широта в [-90, 90], а долгота в [-180, 180]
func (c Coordinate) Valid() bool {
	return utils.ValidateCoordinates(c.Lat, c.Lon)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}

// LocationSource - откуда взята позиция пользователя
type LocationSource string

const (
	LocationSourceDevice  LocationSource = "device"
	LocationSourceDefault LocationSource = "default"
)

// GeocodeResult - результат прямого или обратного геокодирования
type GeocodeResult struct {
	Coordinate  Coordinate `json:"coordinate"`
	DisplayName string     `json:"display_name"`
}
