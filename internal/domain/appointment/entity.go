package appointment

import (
	"strings"
	"time"

	"github.com/huellitas-app/petcare-api/internal/httperr"
)

// Prefijo con el que la app guarda el servicio dentro de description;
// la UI lo quita al mostrar.
const servicePrefix = "Servicio: "

// Input es el registro tipado de una cita nueva o editada.
// La validación pasa ANTES de cualquier llamada de red.
type Input struct {
	PetID       uint
	PetName     string
	Description string
	Start       time.Time
	End         time.Time
}

func (in Input) Validate() error {
	if strings.TrimSpace(in.PetName) == "" {
		return httperr.ErrBusiness("missing_pet_name")
	}
	if in.Start.IsZero() || in.End.IsZero() {
		return httperr.ErrBusiness("missing_schedule")
	}
	if !in.Start.Before(in.End) {
		return httperr.ErrBusiness("invalid_schedule")
	}
	return nil
}

// EventSummary es el título del evento espejo en el calendario.
func EventSummary(petName string) string {
	return "Cita con " + petName
}

// ServiceLabel arma la description a partir del título del servicio.
func ServiceLabel(title string) string {
	if title == "" {
		return ""
	}
	return servicePrefix + title
}

// ServiceTitle quita el prefijo para mostrar solo el servicio.
func ServiceTitle(description string) string {
	return strings.TrimPrefix(description, servicePrefix)
}
