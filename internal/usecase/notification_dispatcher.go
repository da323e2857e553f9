package usecase

import (
	"chantierplus/internal/domain/entities"
	"chantierplus/internal/usecase/interfaces"
	"chantierplus/pkg"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

var ErrNoRecipients = errors.New("no recipients for avenant")

const defaultNotifyTimeout = 30 * time.Second

// NotificationDispatcher emails a signed avenant to its recipients and marks
// it SENT once every delivery succeeded.
type NotificationDispatcher struct {
	notifier          interfaces.INotifier
	repo              interfaces.IAvenantRepository
	defaultRecipients []string
	timeout           time.Duration
	wg                sync.WaitGroup
}

func NewNotificationDispatcher(notifier interfaces.INotifier, repo interfaces.IAvenantRepository, defaultRecipients []string) *NotificationDispatcher {
	return &NotificationDispatcher{
		notifier:          notifier,
		repo:              repo,
		defaultRecipients: defaultRecipients,
		timeout:           defaultNotifyTimeout,
	}
}

// Notify sends to every recipient concurrently. A single failed delivery
// fails the whole dispatch and the status stays SIGNED.
func (d *NotificationDispatcher) Notify(ctx context.Context, a entities.Avenant) (entities.Avenant, error) {
	recipients := d.recipientsFor(a)
	if len(recipients) == 0 {
		return entities.Avenant{}, ErrNoRecipients
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, to := range recipients {
		g.Go(func() error {
			if err := d.notifier.SendAvenant(gctx, to, a); err != nil {
				log.Printf("[avenant][notify] delivery failed avenant_id=%s to=%s err=%v", a.ID, to, err)
				return err
			}
			log.Printf("[avenant][notify] delivered avenant_id=%s to=%s", a.ID, to)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return entities.Avenant{}, fmt.Errorf("%w: notification: %v", ErrUpstreamRejected, err)
	}

	updated, err := d.repo.UpdateStatusByID(ctx, a.ID, entities.AvenantStatusSent)
	if err != nil {
		return entities.Avenant{}, err
	}
	if updated.ID == "" {
		return entities.Avenant{}, ErrAvenantNotFound
	}
	return updated, nil
}

// NotifyAsync dispatches in the background, detached from the request.
func (d *NotificationDispatcher) NotifyAsync(a entities.Avenant) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if _, err := d.Notify(ctx, a); err != nil {
			log.Printf("[avenant][notify] background dispatch failed avenant_id=%s err=%v", a.ID, err)
		}
	}()
}

// Wait blocks until background dispatches are done.
func (d *NotificationDispatcher) Wait() {
	d.wg.Wait()
}

func (d *NotificationDispatcher) recipientsFor(a entities.Avenant) []string {
	seen := map[string]bool{}
	var out []string
	for _, list := range [][]string{a.Recipients, d.defaultRecipients} {
		for _, raw := range list {
			r, err := pkg.NormalizeEmail(raw)
			if err != nil {
				if strings.TrimSpace(raw) != "" {
					log.Printf("[avenant][notify] recipient skipped avenant_id=%s recipient=%q", a.ID, raw)
				}
				continue
			}
			if seen[r] {
				continue
			}
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}
