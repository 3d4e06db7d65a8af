package utils

import "math"

const earthRadiusKm = 6371.0

// Эллипсоид WGS-84
const (
	wgs84A = 6378137.0
	wgs84F = 1 / 298.257223563
	wgs84B = wgs84A * (1 - wgs84F)

	vincentyMaxIterations = 200
	vincentyTolerance     = 1e-12
)

// LatLng - пара координат в градусах
type LatLng struct {
	Lat float64
	Lng float64
}

// HaversineDistance вычисляет расстояние между двумя точками в километрах (сфера)
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// VincentyDistance - обратная задача Винсенти на эллипсоиде WGS-84, результат в метрах.
// ok=false, если итерация не сошлась (почти антиподальные точки).
func VincentyDistance(lat1, lon1, lat2, lon2 float64) (meters float64, ok bool) {
	if lat1 == lat2 && lon1 == lon2 {
		return 0, true
	}

	L := toRadians(lon2 - lon1)
	U1 := math.Atan((1 - wgs84F) * math.Tan(toRadians(lat1)))
	U2 := math.Atan((1 - wgs84F) * math.Tan(toRadians(lat2)))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	lambda := L
	for i := 0; i < vincentyMaxIterations; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)

		sinSigma := math.Sqrt(
			(cosU2*sinLambda)*(cosU2*sinLambda) +
				(cosU1*sinU2-sinU1*cosU2*cosLambda)*(cosU1*sinU2-sinU1*cosU2*cosLambda),
		)
		if sinSigma == 0 {
			return 0, true
		}

		cosSigma := sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma := math.Atan2(sinSigma, cosSigma)
		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha := 1 - sinAlpha*sinAlpha

		// на экваториальной линии cosSqAlpha = 0
		cos2SigmaM := 0.0
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		C := wgs84F / 16 * cosSqAlpha * (4 + wgs84F*(4-3*cosSqAlpha))
		lambdaPrev := lambda
		lambda = L + (1-C)*wgs84F*sinAlpha*
			(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-lambdaPrev) < vincentyTolerance {
			uSq := cosSqAlpha * (wgs84A*wgs84A - wgs84B*wgs84B) / (wgs84B * wgs84B)
			A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
			B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
			deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
				B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

			return wgs84B * A * (sigma - deltaSigma), true
		}
	}

	return 0, false
}

// GeodesicDistance - расстояние в метрах: Винсенти, при несходимости - гаверсинус
func GeodesicDistance(a, b LatLng) float64 {
	if d, ok := VincentyDistance(a.Lat, a.Lng, b.Lat, b.Lng); ok {
		return d
	}
	return HaversineDistance(a.Lat, a.Lng, b.Lat, b.Lng) * 1000
}

// PathLength - сумма геодезических расстояний между соседними точками, в метрах
func PathLength(points []LatLng) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += GeodesicDistance(points[i-1], points[i])
	}
	return total
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
