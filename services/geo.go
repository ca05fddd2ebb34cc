package services

import "math"

const radioTierraMetros = 6371000.0

// Haversine calcula la distancia de círculo máximo en metros entre dos
// coordenadas. El radio de búsqueda se expresa en metros, así que la
// distancia euclídea plana no sirve.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(g float64) float64 { return g * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return radioTierraMetros * c
}
