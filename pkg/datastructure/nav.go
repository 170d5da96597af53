package datastructure

type Coordinate struct {
	Lat float64 `json:"lat" validate:"lt=90,gt=-90"`
	Lon float64 `json:"lon" validate:"lt=180,gt=-180"`
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

// Hospital point feature dari hospital feature set.
type Hospital struct {
	Name       string
	Lat        float64
	Lon        float64
	Properties map[string]interface{}
}

// HospitalSet urutan sesuai urutan di file.
type HospitalSet []Hospital

func (hs HospitalSet) Names() []string {
	names := make([]string, len(hs))
	for i, h := range hs {
		names[i] = h.Name
	}
	return names
}
