package novelty

import "fmt"

type TimeWindowResponse struct {
	Fecha      string `json:"fecha"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
}

type BlockingIntervalResponse struct {
	ObservacionID string               `json:"observacion_id"`
	Categoria     string               `json:"categoria"`
	Observacion   string               `json:"observacion,omitempty"`
	FechaInicio   string               `json:"fecha_inicio"`
	FechaFin      string               `json:"fecha_fin"`
	BloqueoTotal  bool                 `json:"bloqueo_total"`
	Ventanas      []TimeWindowResponse `json:"ventanas,omitempty"`
}

// MapToResponses renders normalized intervals for the read endpoint.
func MapToResponses(intervals []BlockingInterval) []BlockingIntervalResponse {
	responses := make([]BlockingIntervalResponse, 0, len(intervals))
	for _, interval := range intervals {
		resp := BlockingIntervalResponse{
			ObservacionID: interval.ObservationID,
			Categoria:     string(interval.Category),
			Observacion:   interval.Note,
			FechaInicio:   interval.Start.Format(dateKeyLayout),
			FechaFin:      interval.End.Format(dateKeyLayout),
			BloqueoTotal:  interval.FullBlock(),
		}
		for _, w := range interval.Windows {
			resp.Ventanas = append(resp.Ventanas, TimeWindowResponse{
				Fecha:      w.Date.Format(dateKeyLayout),
				HoraInicio: fmt.Sprintf("%02d:%02d", w.StartMinute/60, w.StartMinute%60),
				HoraFin:    fmt.Sprintf("%02d:%02d", w.EndMinute/60, w.EndMinute%60),
			})
		}
		responses = append(responses, resp)
	}
	return responses
}
