package notification

import (
	"chantierplus/internal/domain/entities"
	"chantierplus/internal/usecase/interfaces"
	"chantierplus/pkg"
	"context"
	"log"
	"net/mail"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SendEmailAPI is the subset of the SES v2 client used by the notifier.
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESNotifier emails signed avenants, signature attached, through SES.
type SESNotifier struct {
	client SendEmailAPI
	from   mail.Address
	now    func() time.Time
}

var _ interfaces.INotifier = (*SESNotifier)(nil)

func NewSESNotifier(client SendEmailAPI, fromEmail, fromName string) *SESNotifier {
	return &SESNotifier{
		client: client,
		from:   mail.Address{Name: fromName, Address: fromEmail},
		now:    time.Now,
	}
}

func (n *SESNotifier) SendAvenant(ctx context.Context, to string, a entities.Avenant) error {
	to, err := pkg.NormalizeEmail(to)
	if err != nil {
		return err
	}
	e, err := renderAvenantEmail(a)
	if err != nil {
		return err
	}
	raw, err := buildRawMessage(n.from, to, e, n.now())
	if err != nil {
		return err
	}

	out, err := n.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.from.String()),
		Destination:      &types.Destination{ToAddresses: []string{to}},
		Content: &types.EmailContent{
			Raw: &types.RawMessage{Data: raw},
		},
	})
	if err != nil {
		return err
	}
	log.Printf("[avenant][notification] email sent avenant_id=%s to=%s message_id=%s", a.ID, to, aws.ToString(out.MessageId))
	return nil
}

// MockNotifier logs the rendered email instead of sending it.
type MockNotifier struct{}

var _ interfaces.INotifier = MockNotifier{}

func (MockNotifier) SendAvenant(_ context.Context, to string, a entities.Avenant) error {
	e, err := renderAvenantEmail(a)
	if err != nil {
		return err
	}
	log.Printf("[avenant][notification] mock mode to=%s subject=%q attachments=%d", to, e.Subject, len(e.Attachments))
	return nil
}
