package usecase

import (
	"chantierplus/internal/domain/draft"
	"chantierplus/internal/domain/entities"
	"chantierplus/internal/domain/signature"
	"chantierplus/internal/usecase/interfaces"
	"chantierplus/pkg"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrDraftNotFound       = errors.New("draft not found")
	ErrInvalidDraftID      = errors.New("invalid draft id")
	ErrInvalidChantierID   = errors.New("invalid chantier_id")
	ErrInvalidRecipient    = errors.New("invalid recipient")
	ErrUnknownField        = errors.New("unknown draft field")
	ErrSubmissionInFlight  = errors.New("submission in flight")
	ErrEmptyAudio          = errors.New("empty audio recording")
	ErrSignatureUnreadable = errors.New("signature could not be encoded")
	ErrFileRejected        = errors.New("file rejected")
	ErrUpstreamRejected    = errors.New("upstream rejected")

	ErrValidationBlocked  = draft.ErrValidationBlocked
	ErrPreconditionFailed = draft.ErrPreconditionFailed
)

// DefaultMaxPhotoBytes is the upload limit for photo proofs (10 MB). A configured
// limit may only be lower.
const DefaultMaxPhotoBytes int64 = 10 << 20

var allowedPhotoTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// DraftView is a draft with its derived permission state.
type DraftView struct {
	Draft              draft.Draft
	Evaluation         draft.Evaluation
	SignatureDiscarded bool
}

func newDraftView(d draft.Draft, m draft.Mutation) DraftView {
	return DraftView{Draft: d, Evaluation: draft.Evaluate(d), SignatureDiscarded: m.SignatureDiscarded}
}

// IComposeAvenantUseCase drives one composition session per draft:
// field edits, dictation, photo, signature, then submission.

type IComposeAvenantUseCase interface {
	Open(ctx context.Context, chantierID string, recipients []string) (DraftView, error)
	Get(ctx context.Context, draftID string) (DraftView, error)
	UpdateField(ctx context.Context, draftID string, field string, value string) (DraftView, error)
	Dictate(ctx context.Context, draftID string, filename string, audio []byte) (DraftView, error)
	AttachPhoto(ctx context.Context, draftID string, filename string, data []byte) (DraftView, error)
	RemovePhoto(ctx context.Context, draftID string) (DraftView, error)
	Sign(ctx context.Context, draftID string, canvas signature.Canvas) (DraftView, error)
	ClearSignature(ctx context.Context, draftID string) (DraftView, error)
	Submit(ctx context.Context, draftID string) (entities.Avenant, error)
	Abandon(ctx context.Context, draftID string) error
}

type ComposeConfig struct {
	MaxPhotoBytes int64
	DraftIdleTTL  time.Duration
	AutoNotify    bool
}

type ComposeAvenantUseCase struct {
	sessions    *SessionRegistry
	repo        interfaces.IAvenantRepository
	transcriber interfaces.ITranscriber
	storage     interfaces.IPhotoStorage
	dispatcher  *NotificationDispatcher
	pad         *signature.Pad
	cfg         ComposeConfig
	now         func() time.Time
}

var _ IComposeAvenantUseCase = (*ComposeAvenantUseCase)(nil)

func NewComposeAvenantUseCase(
	repo interfaces.IAvenantRepository,
	transcriber interfaces.ITranscriber,
	storage interfaces.IPhotoStorage,
	dispatcher *NotificationDispatcher,
	cfg ComposeConfig,
) *ComposeAvenantUseCase {
	if cfg.MaxPhotoBytes <= 0 || cfg.MaxPhotoBytes > DefaultMaxPhotoBytes {
		cfg.MaxPhotoBytes = DefaultMaxPhotoBytes
	}
	return &ComposeAvenantUseCase{
		sessions:    NewSessionRegistry(cfg.DraftIdleTTL),
		repo:        repo,
		transcriber: transcriber,
		storage:     storage,
		dispatcher:  dispatcher,
		pad:         signature.NewPad(),
		cfg:         cfg,
		now:         time.Now,
	}
}

func (u *ComposeAvenantUseCase) Open(_ context.Context, chantierID string, recipients []string) (DraftView, error) {
	chantierID = strings.TrimSpace(chantierID)
	if chantierID == "" {
		return DraftView{}, ErrInvalidChantierID
	}
	cleaned, err := normalizeRecipients(recipients)
	if err != nil {
		return DraftView{}, err
	}

	d := draft.New(uuid.NewString(), chantierID, cleaned)
	u.sessions.open(d)
	log.Printf("[avenant][usecase] draft opened draft_id=%s chantier_id=%s recipients=%d", d.ID, chantierID, len(cleaned))
	return newDraftView(d, draft.Mutation{}), nil
}

func (u *ComposeAvenantUseCase) Get(_ context.Context, draftID string) (DraftView, error) {
	var view DraftView
	err := u.withSession(draftID, func(s *session) error {
		view = newDraftView(s.draft, draft.Mutation{})
		return nil
	})
	return view, err
}

func (u *ComposeAvenantUseCase) UpdateField(_ context.Context, draftID string, field string, value string) (DraftView, error) {
	f := draft.Field(strings.TrimSpace(field))
	if !f.Valid() {
		return DraftView{}, ErrUnknownField
	}
	return u.mutate(draftID, func(d draft.Draft) (draft.Draft, draft.Mutation) {
		return draft.Mutate(d, f, value)
	})
}

// Dictate transcribes audio and appends the text to the description as it is
// when the transcription resolves. The draft stays editable meanwhile.
func (u *ComposeAvenantUseCase) Dictate(ctx context.Context, draftID string, filename string, audio []byte) (DraftView, error) {
	if len(audio) == 0 {
		return DraftView{}, ErrEmptyAudio
	}
	if err := u.ensureEditable(draftID); err != nil {
		return DraftView{}, err
	}

	log.Printf("[avenant][usecase] transcription start draft_id=%s audio_len=%d", draftID, len(audio))
	text, err := u.transcriber.Transcribe(ctx, filename, audio)
	if err != nil {
		log.Printf("[avenant][usecase] transcription failed draft_id=%s err=%v", draftID, err)
		return DraftView{}, fmt.Errorf("%w: transcription: %v", ErrUpstreamRejected, err)
	}

	var view DraftView
	err = u.withSession(draftID, func(s *session) error {
		if s.submitting.Load() {
			s.pendingDictation = append(s.pendingDictation, text)
			log.Printf("[avenant][usecase] transcription queued until submit resolves draft_id=%s", draftID)
			return fmt.Errorf("%w: transcription queued", ErrSubmissionInFlight)
		}
		view = u.applyLocked(s, func(d draft.Draft) (draft.Draft, draft.Mutation) {
			return draft.AppendDescription(d, text)
		})
		return nil
	})
	if errors.Is(err, ErrDraftNotFound) {
		log.Printf("[avenant][usecase] transcription discarded, draft gone draft_id=%s", draftID)
	}
	return view, err
}

// AttachPhoto validates the file before it reaches storage; a rejected file
// leaves the draft untouched.
func (u *ComposeAvenantUseCase) AttachPhoto(ctx context.Context, draftID string, filename string, data []byte) (DraftView, error) {
	contentType, err := u.checkPhoto(data)
	if err != nil {
		log.Printf("[avenant][usecase] photo rejected draft_id=%s filename=%q err=%v", draftID, filename, err)
		return DraftView{}, err
	}
	if err := u.ensureEditable(draftID); err != nil {
		return DraftView{}, err
	}

	ref, err := u.storage.Upload(ctx, filename, contentType, data)
	if err != nil {
		log.Printf("[avenant][usecase] photo upload failed draft_id=%s err=%v", draftID, err)
		return DraftView{}, fmt.Errorf("%w: photo upload: %v", ErrUpstreamRejected, err)
	}
	log.Printf("[avenant][usecase] photo uploaded draft_id=%s photo_ref=%s", draftID, ref)

	view, err := u.mutate(draftID, func(d draft.Draft) (draft.Draft, draft.Mutation) {
		return draft.Mutate(d, draft.FieldPhotoRef, ref)
	})
	if err != nil {
		log.Printf("[avenant][usecase] photo discarded draft_id=%s photo_ref=%s err=%v", draftID, ref, err)
		if delErr := u.storage.Delete(context.WithoutCancel(ctx), ref); delErr != nil {
			log.Printf("[avenant][usecase] orphan photo left in storage photo_ref=%s err=%v", ref, delErr)
		}
	}
	return view, err
}

func (u *ComposeAvenantUseCase) RemovePhoto(_ context.Context, draftID string) (DraftView, error) {
	return u.mutate(draftID, func(d draft.Draft) (draft.Draft, draft.Mutation) {
		return draft.Mutate(d, draft.FieldPhotoRef, "")
	})
}

// Sign captures the strokes only when the draft can be signed.
func (u *ComposeAvenantUseCase) Sign(_ context.Context, draftID string, canvas signature.Canvas) (DraftView, error) {
	var view DraftView
	err := u.withSession(draftID, func(s *session) error {
		if s.submitting.Load() {
			return ErrSubmissionInFlight
		}
		if !draft.CanSign(s.draft) {
			return ErrValidationBlocked
		}

		artifact, err := u.pad.Capture(canvas)
		if err != nil {
			log.Printf("[avenant][usecase] signature capture failed draft_id=%s err=%v", draftID, err)
			return fmt.Errorf("%w: %v", ErrSignatureUnreadable, err)
		}
		signed, err := draft.Sign(s.draft, artifact)
		if err != nil {
			return err
		}
		s.draft = signed
		if artifact != nil {
			log.Printf("[avenant][usecase] draft signed draft_id=%s content_type=%s digest=%s", draftID, artifact.ContentType, artifact.Digest)
		}
		view = newDraftView(s.draft, draft.Mutation{})
		return nil
	})
	return view, err
}

func (u *ComposeAvenantUseCase) ClearSignature(_ context.Context, draftID string) (DraftView, error) {
	var view DraftView
	err := u.withSession(draftID, func(s *session) error {
		if s.submitting.Load() {
			return ErrSubmissionInFlight
		}
		s.draft = draft.ClearSignature(s.draft)
		s.draft.Signature = u.pad.Clear()
		view = newDraftView(s.draft, draft.Mutation{})
		return nil
	})
	return view, err
}

// Submit persists a signed draft. The draft is destroyed once storage accepted
// it; on failure it is kept as is, signature included, so the user can retry.
func (u *ComposeAvenantUseCase) Submit(ctx context.Context, draftID string) (entities.Avenant, error) {
	var payload entities.AvenantPayload
	var s *session
	err := u.withSession(draftID, func(cur *session) error {
		if cur.submitting.Load() {
			return ErrSubmissionInFlight
		}
		p, err := draft.Assemble(cur.draft)
		if err != nil {
			return err
		}
		payload = p
		s = cur
		cur.submitting.Store(true)
		return nil
	})
	if err != nil {
		log.Printf("[avenant][usecase] submit refused draft_id=%s err=%v", draftID, err)
		return entities.Avenant{}, err
	}

	now := u.now().UTC()
	a := payload.ToAvenant(uuid.NewString())
	a.CreatedAt = now
	a.UpdatedAt = now

	log.Printf("[avenant][usecase] submit start draft_id=%s avenant_id=%s type=%s total_ht=%.2f", draftID, a.ID, a.Type, a.TotalHT)
	created, err := u.repo.Create(ctx, a)

	s.mu.Lock()
	s.submitting.Store(false)
	pending := s.pendingDictation
	s.pendingDictation = nil
	if err != nil {
		if !s.closed.Load() {
			for _, text := range pending {
				u.applyLocked(s, func(d draft.Draft) (draft.Draft, draft.Mutation) {
					return draft.AppendDescription(d, text)
				})
			}
		}
		s.mu.Unlock()
		log.Printf("[avenant][usecase] submit rejected draft_id=%s queued_dictations=%d err=%v", draftID, len(pending), err)
		return entities.Avenant{}, fmt.Errorf("%w: persistence: %v", ErrUpstreamRejected, err)
	}
	if s.closed.Load() {
		log.Printf("[avenant][usecase] submit resolved after draft was abandoned draft_id=%s avenant_id=%s", draftID, created.ID)
	}
	if len(pending) > 0 {
		log.Printf("[avenant][usecase] queued dictations dropped, avenant already stored draft_id=%s count=%d", draftID, len(pending))
	}
	u.sessions.remove(draftID)
	s.mu.Unlock()

	log.Printf("[avenant][usecase] submit success draft_id=%s avenant_id=%s chantier_id=%s", draftID, created.ID, created.ChantierID)
	if u.cfg.AutoNotify && u.dispatcher != nil {
		u.dispatcher.NotifyAsync(created)
	}
	return created, nil
}

func (u *ComposeAvenantUseCase) Abandon(_ context.Context, draftID string) error {
	return u.withSession(draftID, func(s *session) error {
		u.sessions.remove(draftID)
		log.Printf("[avenant][usecase] draft abandoned draft_id=%s pending_submit=%t", draftID, s.submitting.Load())
		return nil
	})
}

func (u *ComposeAvenantUseCase) mutate(draftID string, apply func(draft.Draft) (draft.Draft, draft.Mutation)) (DraftView, error) {
	var view DraftView
	err := u.withSession(draftID, func(s *session) error {
		if s.submitting.Load() {
			return ErrSubmissionInFlight
		}
		view = u.applyLocked(s, apply)
		return nil
	})
	return view, err
}

// applyLocked runs a mutation on the session draft. s.mu must be held.
func (u *ComposeAvenantUseCase) applyLocked(s *session, apply func(draft.Draft) (draft.Draft, draft.Mutation)) DraftView {
	d, m := apply(s.draft)
	s.draft = d
	if m.SignatureDiscarded {
		log.Printf("[avenant][usecase] signature discarded draft_id=%s field=%s", d.ID, m.Field)
	}
	return newDraftView(d, m)
}

func (u *ComposeAvenantUseCase) ensureEditable(draftID string) error {
	return u.withSession(draftID, func(s *session) error {
		if s.submitting.Load() {
			return ErrSubmissionInFlight
		}
		return nil
	})
}

func (u *ComposeAvenantUseCase) withSession(draftID string, fn func(s *session) error) error {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return ErrInvalidDraftID
	}
	s, ok := u.sessions.get(draftID)
	if !ok {
		return ErrDraftNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed.Load() {
		return ErrDraftNotFound
	}
	s.touch(u.now())
	return fn(s)
}

func (u *ComposeAvenantUseCase) checkPhoto(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrFileRejected)
	}
	if int64(len(data)) > u.cfg.MaxPhotoBytes {
		return "", fmt.Errorf("%w: file exceeds %d bytes", ErrFileRejected, u.cfg.MaxPhotoBytes)
	}
	mt := mimetype.Detect(data)
	for _, allowed := range allowedPhotoTypes {
		if mt.Is(allowed) {
			return allowed, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported type %s", ErrFileRejected, mt.String())
}

func normalizeRecipients(in []string) ([]string, error) {
	seen := map[string]bool{}
	out := make([]string, 0, len(in))
	for _, raw := range in {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		r, err := pkg.NormalizeEmail(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRecipient, raw)
		}
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out, nil
}
