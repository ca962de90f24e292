package bot

import "fmt"

const commandPrefix = "!"

const (
	commandHelp       = "ayuda"
	commandDay        = "dia"
	commandWork       = "trabajo"
	commandMeetings   = "reuniones"
	commandAddMeeting = "añadir-dia-reunion"
	commandSummary    = "resumen"
)

const (
	messageHelp = "Comandos disponibles:\n" +
		"!ayuda - Muestra esta ayuda\n" +
		"!dia - Información del día\n" +
		"!trabajo - Estado del trabajo\n" +
		"!reuniones - Lista de reuniones\n" +
		"!añadir-dia-reunion <día> <lugar> - Añadir día para reunión\n" +
		"!resumen - Resumen diario automático a las 16:30\n"
	messageDay  = "Hoy es un gran día para avanzar en las prácticas de trabajo."
	messageWork = "El trabajo de hoy está en progreso, recuerda subir tus archivos en el canal correspondiente."

	messageNoMeetings          = "No hay reuniones programadas."
	messageMeetingsUnavailable = "No se pudieron obtener las reuniones."
	meetingsEmbedTitle         = "📅 Reuniones"
	meetingsEmbedColor         = 0x0099ff
	meetingFieldNameFormat     = "Reunión %d"
	meetingFieldValueFormat    = "**Día:** %s\n**Lugar:** %s"

	messageAddMeetingMissingArgs = "Por favor completa el comando con la información de la reunión.\nEjemplo:\n`!añadir-dia-reunion Lunes Sala 5`"
	messageAddMeetingBadFormat   = "Formato incorrecto. Usa: `!añadir-dia-reunion <día> <lugar>`"
	messageAddMeetingFailed      = "No se pudo guardar la reunión."
	messageAddMeetingOKFormat    = "✅ Reunión añadida correctamente:\nDía: **%s**\nLugar: **%s**"

	messageAnnouncementsNotFound = "No se pudo encontrar el canal de anuncios."
)

func meetingAddedMessage(day, place string) string {
	return fmt.Sprintf(messageAddMeetingOKFormat, day, place)
}
