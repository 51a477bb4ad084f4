package holiday

type HolidayResponse struct {
	Fecha  string `json:"fecha"`
	Nombre string `json:"nombre"`
	Pais   string `json:"pais"`
}

func MapToResponses(holidays []Holiday) []HolidayResponse {
	responses := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, HolidayResponse{
			Fecha:  h.Date.Format("2006-01-02"),
			Nombre: h.Name,
			Pais:   h.CountryCode,
		})
	}
	return responses
}
