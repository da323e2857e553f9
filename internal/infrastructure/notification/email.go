package notification

import (
	"bytes"
	"chantierplus/internal/domain/entities"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

var avenantEmailTemplate = template.Must(template.New("avenant").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #f59e0b; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
        .content { background-color: #f9fafb; padding: 30px; border: 1px solid #e5e7eb; }
        .total { font-size: 20px; font-weight: bold; }
        .footer { text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb; color: #6b7280; font-size: 14px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Avenant signé</h1>
    </div>
    <div class="content">
        <p>Bonjour,</p>
        <p>Un avenant au chantier <strong>{{ .ChantierID }}</strong> a été signé le {{ .SignedAt }}.</p>
        <p><strong>Description des travaux :</strong><br>{{ .Description }}</p>
        <p><strong>Type :</strong> {{ .Type }}<br>{{ .Detail }}</p>
        <p class="total">Total HT : {{ .Total }}</p>
        {{- if .PhotoURL }}
        <p>Photo justificative : {{ .PhotoURL }}</p>
        {{- end }}
        <p>La signature du client est jointe à ce message.</p>
    </div>
    <div class="footer">
        <p>Cet email a été envoyé par ChantierPlus.</p>
    </div>
</body>
</html>
`))

type emailView struct {
	ChantierID  string
	SignedAt    string
	Description string
	Type        string
	Detail      string
	Total       string
	PhotoURL    string
}

type attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Email is a rendered avenant notification.
type Email struct {
	Subject     string
	HTML        string
	Attachments []attachment
}

var errBadDataURL = errors.New("invalid signature data url")

func renderAvenantEmail(a entities.Avenant) (Email, error) {
	v := emailView{
		ChantierID:  a.ChantierID,
		SignedAt:    a.SignedAt.Format("02/01/2006 à 15:04"),
		Description: a.Description,
		Total:       formatEuro(a.TotalHT),
		PhotoURL:    a.PhotoURL,
	}
	switch p := a.Pricing().(type) {
	case entities.FixedPrice:
		v.Type = "Forfait"
		v.Detail = "Prix forfaitaire : " + formatEuro(p.Amount)
	case entities.TimeAndMaterials:
		v.Type = "Régie"
		v.Detail = fmt.Sprintf("%s h × %s/h", formatNumber(p.Hours), formatEuro(p.HourlyRate))
	default:
		v.Type = string(a.Type)
	}

	var buf bytes.Buffer
	if err := avenantEmailTemplate.Execute(&buf, v); err != nil {
		return Email{}, err
	}

	e := Email{
		Subject: fmt.Sprintf("Avenant signé - chantier %s - %s HT", a.ChantierID, formatEuro(a.TotalHT)),
		HTML:    buf.String(),
	}
	if a.SignatureData != "" {
		contentType, data, err := decodeDataURL(a.SignatureData)
		if err != nil {
			return Email{}, err
		}
		ext := ".png"
		if contentType == "image/jpeg" {
			ext = ".jpg"
		}
		e.Attachments = append(e.Attachments, attachment{
			Filename:    "signature-" + a.ID + ext,
			ContentType: contentType,
			Data:        data,
		})
	}
	return e, nil
}

func decodeDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, errBadDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, errBadDataURL
	}
	contentType, ok := strings.CutSuffix(meta, ";base64")
	if !ok || contentType == "" {
		return "", nil, errBadDataURL
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", errBadDataURL, err)
	}
	return contentType, data, nil
}

// formatEuro renders 1250.5 as "1 250,50 €".
func formatEuro(v float64) string {
	s := strconv.FormatFloat(entities.RoundCents(v), 'f', 2, 64)
	intPart, dec, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	out := b.String() + "," + dec + " €"
	if neg {
		out = "-" + out
	}
	return out
}

func formatNumber(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', -1, 64), ".", ",", 1)
}
