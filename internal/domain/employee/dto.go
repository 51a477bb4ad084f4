package employee

type EmployeeResponse struct {
	ID     string `json:"id"`
	Cedula string `json:"cedula"`
	Nombre string `json:"nombre"`
	Estado string `json:"estado"`
}
