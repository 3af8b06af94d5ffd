package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"daon_interior/internal/domain/calc"
	"daon_interior/internal/usecase/interfaces"
)

var (
	ErrInvalidFormulaKey  = errors.New("invalid formula key")
	ErrInvalidFormulaExpr = errors.New("invalid formula expression")
	ErrProtectedFormula   = calc.ErrProtectedFormula
)

// IFormulaUseCase manages the user-editable pleat formula table. The runtime
// table is shared with the recalculation pipeline, so a saved edit changes
// the very next width-count recommendation.

type IFormulaUseCase interface {
	List(ctx context.Context) map[string]string
	Put(ctx context.Context, key, expression string) error
	Delete(ctx context.Context, key string) error
}

type FormulaUseCase struct {
	table *calc.FormulaTable
	repo  interfaces.IFormulaRepository
}

var _ IFormulaUseCase = (*FormulaUseCase)(nil)

func NewFormulaUseCase(table *calc.FormulaTable, repo interfaces.IFormulaRepository) *FormulaUseCase {
	return &FormulaUseCase{table: table, repo: repo}
}

// LoadOverrides seeds the runtime table from the repository. Called once at
// startup; a failing load leaves the factory defaults in effect.
func (u *FormulaUseCase) LoadOverrides(ctx context.Context) {
	if u.repo == nil {
		return
	}
	sources, err := u.repo.Load(ctx)
	if err != nil {
		log.Printf("[formula][usecase] loading overrides failed err=%v", err)
		return
	}
	u.table.Replace(sources)
	log.Printf("[formula][usecase] loaded %d formula overrides", len(sources))
}

// List returns the effective table: factory defaults overlaid with the
// stored overrides.
func (u *FormulaUseCase) List(ctx context.Context) map[string]string {
	out := calc.BuiltinSources()
	for k, expr := range u.table.Sources() {
		out[k] = expr
	}
	return out
}

func (u *FormulaUseCase) Put(ctx context.Context, key, expression string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidFormulaKey
	}
	if err := u.table.Set(key, expression); err != nil {
		return ErrInvalidFormulaExpr
	}
	if u.repo != nil {
		if err := u.repo.Save(ctx, key, expression); err != nil {
			log.Printf("[formula][usecase] persisting formula failed key=%s err=%v", key, err)
			return err
		}
	}
	return nil
}

func (u *FormulaUseCase) Delete(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidFormulaKey
	}
	if err := u.table.Delete(key); err != nil {
		return err
	}
	if u.repo != nil {
		if err := u.repo.Delete(ctx, key); err != nil {
			log.Printf("[formula][usecase] deleting formula failed key=%s err=%v", key, err)
			return err
		}
	}
	return nil
}
