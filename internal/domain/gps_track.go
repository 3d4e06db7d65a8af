package domain

import "time"

const (
	TrackTypePath    = "path"
	TrackTypePoint   = "point"
	TrackTypePolygon = "polygon"
)

// TrackPoint - точка трека. Кроме lat/lng может содержать timestamp, accuracy и т.п.
type TrackPoint map[string]any

// LatLng достаёт числовые координаты точки
func (p TrackPoint) LatLng() (lat, lng float64, ok bool) {
	lat, okLat := toFloat(p["lat"])
	lng, okLng := toFloat(p["lng"])
	return lat, lng, okLat && okLng
}

// GPSTrack - записанный трек. Distance считается один раз при создании.
type GPSTrack struct {
	StoreKey  string       `json:"_id,omitempty"`
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Points    []TrackPoint `json:"points"`
	TrackType string       `json:"track_type"`
	Distance  float64      `json:"distance"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// GPSTrackFilter - фильтр списка треков
type GPSTrackFilter struct {
	TrackType string
}

func (f GPSTrackFilter) Fields() Fields {
	fields := Fields{}
	if f.TrackType != "" {
		fields["track_type"] = f.TrackType
	}
	return fields
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}
