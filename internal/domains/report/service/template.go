package service

import (
	htmlTemplate "html/template"
	textTemplate "text/template"
)

type bedRow struct {
	HostName    string
	PhoneNumber string
	Beds        int
	Via         string
}

type mealRow struct {
	HostName    string
	DayGuests   int
	NightGuests int
}

type weeklyReportData struct {
	WeekStart     string
	WeekEnd       string
	BedsNeeded    int
	BedsConfirmed int
	TargetMet     bool
	BedRows       []bedRow
	MealRows      []mealRow
}

type voicemailReportData struct {
	BoxName      string
	BoxNumber    string
	CallerNumber string
	CallerName   string
	Duration     int
	ReceivedAt   string
}

var weeklyHTML = htmlTemplate.Must(htmlTemplate.New("weekly").Parse(`<html>
<body style="font-family: sans-serif;">
<h2>Hospitality summary for week of {{.WeekStart}}</h2>
<p>Beds confirmed: <strong>{{.BedsConfirmed}}</strong> of {{.BedsNeeded}} needed{{if .TargetMet}} (target met){{end}}.</p>
{{if .BedRows}}<h3>Bed offers</h3>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Host</th><th>Phone</th><th>Beds</th><th>Via</th></tr>
{{range .BedRows}}<tr><td>{{.HostName}}</td><td>{{.PhoneNumber}}</td><td>{{.Beds}}</td><td>{{.Via}}</td></tr>
{{end}}</table>
{{else}}<p>No bed offers yet.</p>{{end}}
{{if .MealRows}}<h3>Meal hosts</h3>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Host</th><th>Day guests</th><th>Night guests</th></tr>
{{range .MealRows}}<tr><td>{{.HostName}}</td><td>{{.DayGuests}}</td><td>{{.NightGuests}}</td></tr>
{{end}}</table>
{{else}}<p>No meal hosts yet.</p>{{end}}
</body>
</html>`))

var weeklyText = textTemplate.Must(textTemplate.New("weekly").Parse(`Hospitality summary for week of {{.WeekStart}} to {{.WeekEnd}}

Beds confirmed: {{.BedsConfirmed}} of {{.BedsNeeded}} needed{{if .TargetMet}} (target met){{end}}

Bed offers:
{{if .BedRows}}{{range .BedRows}}  - {{.HostName}} ({{.PhoneNumber}}): {{.Beds}} beds via {{.Via}}
{{end}}{{else}}  (none yet)
{{end}}
Meal hosts:
{{if .MealRows}}{{range .MealRows}}  - {{.HostName}}: {{.DayGuests}} day / {{.NightGuests}} night
{{end}}{{else}}  (none yet)
{{end}}`))

var voicemailHTML = htmlTemplate.Must(htmlTemplate.New("voicemail").Parse(`<html>
<body style="font-family: sans-serif;">
<h2>New voicemail in box {{.BoxNumber}} ({{.BoxName}})</h2>
<p>From: {{if .CallerName}}{{.CallerName}} at {{end}}{{.CallerNumber}}</p>
<p>Duration: {{.Duration}} seconds</p>
<p>Received: {{.ReceivedAt}}</p>
<p>The recording is attached.</p>
</body>
</html>`))

var voicemailText = textTemplate.Must(textTemplate.New("voicemail").Parse(`New voicemail in box {{.BoxNumber}} ({{.BoxName}})

From: {{if .CallerName}}{{.CallerName}} at {{end}}{{.CallerNumber}}
Duration: {{.Duration}} seconds
Received: {{.ReceivedAt}}

The recording is attached.`))
