// Package web holds the HTML surface of the service. Templates are compiled
// once at startup and handed to gin.
package web

import "html/template"

func Templates() *template.Template {
	t := template.New("web")

	template.Must(t.New("home").Parse(homeHTML))
	template.Must(t.New("availability").Parse(availabilityHTML))
	template.Must(t.New("reservation_result").Parse(reservationResultHTML))
	template.Must(t.New("payment_form").Parse(paymentFormHTML))
	template.Must(t.New("payment_done").Parse(paymentDoneHTML))
	template.Must(t.New("report").Parse(reportHTML))

	return t
}

const homeHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Reservas de Boxes</title></head>
<body>
<h1>Reservas de Boxes de Psicología</h1>
<form action="/disponibilidad" method="post">
    Sede: <select name="sede">
        {{range .Sites}}<option>{{.Name}}</option>
        {{end}}</select><br>
    Fecha: <input type="date" name="fecha"><br>
    <input type="submit" value="Ver Disponibilidad">
</form>
<a href="/registro">Registrar Pago</a> | <a href="/reporte">Ver Reporte</a>
</body>
</html>`

const availabilityHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Disponibilidad</title></head>
<body>
<h2>Disponibilidad en {{.Site}} para {{.Date}}</h2>
<ul>
    {{range .Slots}}<li>{{.Label}} <a href="{{.URL}}">Reservar</a></li>
    {{else}}<li>Sin horas disponibles.</li>
    {{end}}</ul>
<a href="/">Volver</a>
</body>
</html>`

const reservationResultHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Reserva</title></head>
<body>
{{if .OK}}<p>Reserva creada exitosamente.</p>
{{else}}<p>Error al crear reserva: {{.Message}}</p>
{{end}}<a href="/">Volver</a>
</body>
</html>`

const paymentFormHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Registrar Pago</title></head>
<body>
<h2>Registrar Pago</h2>
<form method="post">
    Psicólogo: <input name="psicologo"><br>
    Monto: <input name="monto" type="number" step="0.01"><br>
    Fecha: <input name="fecha" type="date"><br>
    Descripción: <input name="desc"><br>
    <input type="submit">
</form>
<a href="/">Volver</a>
</body>
</html>`

const paymentDoneHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Pago registrado</title></head>
<body>
<p>Pago registrado.</p>
<a href="/">Volver</a>
</body>
</html>`

const reportHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Reporte</title></head>
<body>
<h2>Reporte de Reservas</h2>
<table border="1">
    <tr><th>Psicólogo</th><th>Sede</th><th>Fecha</th><th>Hora</th></tr>
    {{range .Reservations}}<tr><td>{{.Psychologist}}</td><td>{{.Site}}</td><td>{{.Date}}</td><td>{{.Hour}}</td></tr>
    {{end}}</table>
<h2>Reporte de Pagos</h2>
<table border="1">
    <tr><th>Psicólogo</th><th>Monto</th><th>Fecha</th><th>Descripción</th></tr>
    {{range .Payments}}<tr><td>{{.Psychologist}}</td><td>{{.Amount}}</td><td>{{.Date}}</td><td>{{.Description}}</td></tr>
    {{end}}</table>
<a href="/">Volver</a>
</body>
</html>`
