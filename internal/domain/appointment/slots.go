package appointment

// Horarios fijos que ofrece la pantalla de agendado. Se muestran todos,
// haya o no citas en ese horario: la detección de conflictos quedó fuera
// a propósito (comportamiento heredado de la app).
var slotTimes = []string{
	"10:00",
	"11:00",
	"12:00",
	"13:00",
	"16:00",
	"17:00",
}

func Slots() []string {
	out := make([]string, len(slotTimes))
	copy(out, slotTimes)
	return out
}
