package response

import (
	"chantierplus/internal/domain/entities"
	"chantierplus/internal/usecase"
	"time"
)

type DraftFieldsResponse struct {
	Description string `json:"description"`
	PricingMode string `json:"pricing_mode"`
	FixedPrice  string `json:"fixed_price"`
	Hours       string `json:"hours"`
	HourlyRate  string `json:"hourly_rate"`
	PhotoRef    string `json:"photo_ref"`
}

type SignatureResponse struct {
	ContentType string    `json:"content_type"`
	Digest      string    `json:"digest"`
	DataURL     string    `json:"data_url"`
	CapturedAt  time.Time `json:"captured_at"`
}

type EvaluationResponse struct {
	Complete bool     `json:"complete"`
	CanSign  bool     `json:"can_sign"`
	Signed   bool     `json:"signed"`
	Total    float64  `json:"total"`
	Missing  []string `json:"missing"`
}

// DraftResponse is a composition session as seen by the client.
type DraftResponse struct {
	ID                 string              `json:"id"`
	ChantierID         string              `json:"chantier_id"`
	Recipients         []string            `json:"recipients"`
	Fields             DraftFieldsResponse `json:"fields"`
	Signature          *SignatureResponse  `json:"signature,omitempty"`
	Evaluation         EvaluationResponse  `json:"evaluation"`
	SignatureDiscarded bool                `json:"signature_discarded"`
}

func FromDraftView(v usecase.DraftView) DraftResponse {
	d := v.Draft
	res := DraftResponse{
		ID:         d.ID,
		ChantierID: d.ChantierID,
		Recipients: d.Recipients,
		Fields: DraftFieldsResponse{
			Description: d.Description,
			PricingMode: string(d.Mode),
			FixedPrice:  d.FixedPrice,
			Hours:       d.Hours,
			HourlyRate:  d.HourlyRate,
			PhotoRef:    d.PhotoRef,
		},
		Evaluation: EvaluationResponse{
			Complete: v.Evaluation.Complete,
			CanSign:  v.Evaluation.CanSign,
			Signed:   v.Evaluation.Signed,
			Total:    v.Evaluation.Total,
			Missing:  make([]string, 0, len(v.Evaluation.Missing)),
		},
		SignatureDiscarded: v.SignatureDiscarded,
	}
	if res.Recipients == nil {
		res.Recipients = []string{}
	}
	for _, f := range v.Evaluation.Missing {
		res.Evaluation.Missing = append(res.Evaluation.Missing, string(f))
	}
	if d.Signature != nil {
		res.Signature = &SignatureResponse{
			ContentType: d.Signature.ContentType,
			Digest:      d.Signature.Digest,
			DataURL:     d.Signature.DataURL(),
			CapturedAt:  d.Signature.CapturedAt,
		}
	}
	return res
}

// AvenantResponse is a persisted, signed avenant.
type AvenantResponse struct {
	ID              string    `json:"id"`
	ChantierID      string    `json:"chantier_id"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	Price           *float64  `json:"price,omitempty"`
	Hours           *float64  `json:"hours,omitempty"`
	HourlyRate      *float64  `json:"hourly_rate,omitempty"`
	TotalHT         float64   `json:"total_ht"`
	PhotoURL        string    `json:"photo_url"`
	SignatureData   string    `json:"signature_data"`
	SignatureDigest string    `json:"signature_digest"`
	SignedAt        time.Time `json:"signed_at"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromAvenant(a entities.Avenant) AvenantResponse {
	return AvenantResponse{
		ID:              a.ID,
		ChantierID:      a.ChantierID,
		Description:     a.Description,
		Type:            string(a.Type),
		Price:           a.Price,
		Hours:           a.Hours,
		HourlyRate:      a.HourlyRate,
		TotalHT:         a.TotalHT,
		PhotoURL:        a.PhotoURL,
		SignatureData:   a.SignatureData,
		SignatureDigest: a.SignatureDigest,
		SignedAt:        a.SignedAt,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func FromAvenants(list []entities.Avenant) []AvenantResponse {
	out := make([]AvenantResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAvenant(a))
	}
	return out
}
