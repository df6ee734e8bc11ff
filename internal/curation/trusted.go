package curation

import (
	"context"
	"time"

	"curator/pkg/domain"
	"curator/pkg/logger"
	"curator/pkg/storage"

	"go.uber.org/zap"
)

// TrustedDomainPromoter marks a domain as trusted the first time it is
// scheduled for a date that has already passed. A domain worth scheduling for
// an elapsed date has de facto editorial track record and should stop
// triggering unfamiliar-source warnings to curators.
//
// Promotion is one-way and idempotent. It is a fire-and-forget side effect of
// scheduling: failures are logged, never propagated to the caller.
type TrustedDomainPromoter struct {
	storage storage.DomainStorage
	// now supplies the current time; injectable for tests.
	now func() time.Time
}

// NewTrustedDomainPromoter constructs a promoter backed by the given storage.
func NewTrustedDomainPromoter(storage storage.DomainStorage) *TrustedDomainPromoter {
	return &TrustedDomainPromoter{
		storage: storage,
		now:     time.Now,
	}
}

// PromoteIfPastDate sets the domain's trusted flag when scheduledDate is
// strictly earlier than today's UTC calendar date. Dates today or in the
// future leave the flag untouched.
func (p *TrustedDomainPromoter) PromoteIfPastDate(ctx context.Context,
	domainName string,
	scheduledDate domain.Date) {
	today := domain.DateOf(p.now())
	if !scheduledDate.Before(today) {
		return
	}

	if err := p.storage.MarkDomainTrusted(ctx, domainName); err != nil {
		logger.Error(ctx, "could not promote domain to trusted",
			zap.String("domain", domainName),
			zap.String("scheduledDate", scheduledDate.String()),
			zap.Error(err))
	}
}
