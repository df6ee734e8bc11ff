package postgres

import (
	"context"
	"fmt"

	"curator/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	domainsTable = "domains"
)

// FindOrCreateDomain looks the domain up by name and inserts it when missing.
// The insert is a plain INSERT on purpose: when two writers race on a new
// domain name, exactly one insert succeeds and the loser receives a
// storage.UniqueViolationError to resolve by retrying.
func (p *PgSQL) FindOrCreateDomain(ctx context.Context, name string) (*domain.Domain, error) {
	existing, err := p.DomainByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	var row PgDomain
	found, err := p.Builder.Insert(domainsTable).
		Rows(PgDomain{Name: name}).
		Returning(&PgDomain{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translateError(err, "could not store domain into pg")
	}
	if !found {
		return nil, fmt.Errorf("insert domain returned no row")
	}

	return row.ToDomain(), nil
}

// DomainByName returns a domain by its name, or nil when absent.
func (p *PgSQL) DomainByName(ctx context.Context, name string) (*domain.Domain, error) {
	var row PgDomain
	found, err := p.Builder.From(domainsTable).
		Where(goqu.I("domain_name").Eq(name)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch domain by name: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// MarkDomainTrusted flips the domain's trusted flag to true. Repeat calls are
// no-ops; the flag is never cleared.
func (p *PgSQL) MarkDomainTrusted(ctx context.Context, name string) error {
	_, err := p.Builder.Update(domainsTable).
		Set(goqu.Record{
			"trusted":    true,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("domain_name").Eq(name),
		goqu.I("trusted").IsFalse(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not mark domain trusted in pg: %w", err)
	}

	return nil
}
