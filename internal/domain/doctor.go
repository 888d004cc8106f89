package domain

// Doctor es una ficha del directorio de especialistas.
type Doctor struct {
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Specialty       string  `json:"specialty" yaml:"specialty"`
	Rating          float64 `json:"rating" yaml:"rating"`
	Location        string  `json:"location" yaml:"location"`
	AvailableToday  bool    `json:"available_today" yaml:"available_today"`
	NextAvailable   string  `json:"next_available" yaml:"next_available"`
	Experience      string  `json:"experience" yaml:"experience"`
	ConsultationFee string  `json:"consultation_fee" yaml:"consultation_fee"`
	Degrees         string  `json:"degrees" yaml:"degrees"`
	Hospital        string  `json:"hospital,omitempty" yaml:"hospital"`
}
