package notification

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"
	"time"

	"chantierplus/internal/domain/entities"
	"chantierplus/pkg"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
)

type fakeSES struct {
	input *sesv2.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func fixedAvenant() entities.Avenant {
	price := 1250.5
	return entities.Avenant{
		ID:            "av-1",
		ChantierID:    "chantier-1",
		Description:   "Ajout <prise> cuisine",
		Type:          entities.PricingModeFixedPrice,
		Price:         &price,
		TotalHT:       1250.5,
		PhotoURL:      "uploads/a.jpg",
		SignatureData: "data:image/png;base64,iVBORw0K",
		SignedAt:      time.Date(2026, 5, 4, 14, 5, 0, 0, time.UTC),
		Status:        entities.AvenantStatusSigned,
	}
}

func TestRenderAvenantEmail(t *testing.T) {
	e, err := renderAvenantEmail(fixedAvenant())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Subject != "Avenant signé - chantier chantier-1 - 1 250,50 € HT" {
		t.Fatalf("unexpected subject %q", e.Subject)
	}
	for _, want := range []string{"Forfait", "Prix forfaitaire : 1 250,50 €", "04/05/2026 à 14:05", "Ajout &lt;prise&gt; cuisine", "uploads/a.jpg"} {
		if !strings.Contains(e.HTML, want) {
			t.Fatalf("html missing %q", want)
		}
	}
	if len(e.Attachments) != 1 || e.Attachments[0].Filename != "signature-av-1.png" || e.Attachments[0].ContentType != "image/png" {
		t.Fatalf("unexpected attachments: %+v", e.Attachments)
	}

	hours, rate := 7.5, 45.0
	regie := entities.Avenant{ID: "av-2", Type: entities.PricingModeTimeAndMaterials, Hours: &hours, HourlyRate: &rate, TotalHT: 337.5}
	e, err = renderAvenantEmail(regie)
	if err != nil || !strings.Contains(e.HTML, "7,5 h × 45,00 €/h") || len(e.Attachments) != 0 {
		t.Fatalf("unexpected regie email: %v", err)
	}

	bad := fixedAvenant()
	bad.SignatureData = "not-a-data-url"
	if _, err := renderAvenantEmail(bad); !errors.Is(err, errBadDataURL) {
		t.Fatalf("expected errBadDataURL, got %v", err)
	}
}

func TestFormatEuro(t *testing.T) {
	cases := map[float64]string{0: "0,00 €", 150: "150,00 €", 1250.5: "1 250,50 €", 1234567.891: "1 234 567,89 €", -42: "-42,00 €"}
	for in, want := range cases {
		if got := formatEuro(in); got != want {
			t.Fatalf("%v: got %q want %q", in, got, want)
		}
	}
}

func TestSESNotifier_SendAvenant(t *testing.T) {
	t.Run("raw message with attachment", func(t *testing.T) {
		client := &fakeSES{}
		n := NewSESNotifier(client, "noreply@chantierplus.app", "ChantierPlus")

		if err := n.SendAvenant(context.Background(), "client@example.com", fixedAvenant()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := client.input.Destination.ToAddresses; len(got) != 1 || got[0] != "client@example.com" {
			t.Fatalf("unexpected destination: %v", got)
		}

		msg, err := mail.ReadMessage(bytes.NewReader(client.input.Content.Raw.Data))
		if err != nil {
			t.Fatalf("read message: %v", err)
		}
		subject, _ := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
		if !strings.HasPrefix(subject, "Avenant signé") {
			t.Fatalf("unexpected subject %q", subject)
		}
		mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/mixed" {
			t.Fatalf("unexpected content type %q err=%v", mediaType, err)
		}

		mr := multipart.NewReader(msg.Body, params["boundary"])
		var types []string
		for {
			p, err := mr.NextPart()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("next part: %v", err)
			}
			types = append(types, p.Header.Get("Content-Type"))
		}
		if len(types) != 2 || types[0] != "text/html; charset=UTF-8" || types[1] != "image/png" {
			t.Fatalf("unexpected parts: %v", types)
		}
	})

	t.Run("header injection in recipient is refused", func(t *testing.T) {
		client := &fakeSES{}
		n := NewSESNotifier(client, "noreply@chantierplus.app", "ChantierPlus")

		err := n.SendAvenant(context.Background(), "a@b.fr\r\nBcc:evil@x.com", fixedAvenant())
		if !errors.Is(err, pkg.ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
		if client.input != nil {
			t.Fatalf("nothing must reach SES")
		}
	})

	t.Run("ses error", func(t *testing.T) {
		n := NewSESNotifier(&fakeSES{err: errors.New("throttled")}, "noreply@chantierplus.app", "ChantierPlus")
		if err := n.SendAvenant(context.Background(), "client@example.com", fixedAvenant()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestMockNotifier(t *testing.T) {
	if err := (MockNotifier{}).SendAvenant(context.Background(), "a@b.fr", fixedAvenant()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildRawMessage_ToHeader(t *testing.T) {
	from := mail.Address{Name: "ChantierPlus", Address: "noreply@chantierplus.app"}
	e := Email{Subject: "Avenant", HTML: "<p>ok</p>"}

	raw, err := buildRawMessage(from, " Client@Example.com ", e, time.Unix(0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg, err := mail.ReadMessage(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("read message: %v", err)
	}
	if got := msg.Header.Get("To"); got != "<client@example.com>" {
		t.Fatalf("unexpected To header %q", got)
	}
	if msg.Header.Get("Bcc") != "" {
		t.Fatalf("unexpected Bcc header")
	}

	if _, err := buildRawMessage(from, "a@b.fr\r\nBcc:evil@x.com", e, time.Unix(0, 0)); !errors.Is(err, pkg.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}
