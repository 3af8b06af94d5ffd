package usecase

import (
	"context"
	"errors"
	"log"
	"reflect"
	"strings"
	"time"

	"daon_interior/internal/domain/calc"
	"daon_interior/internal/domain/entities"
	"daon_interior/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrInvalidEstimateNumber = errors.New("invalid estimate number")
	ErrRowNotFound           = errors.New("estimate row not found")
	ErrInvalidRowField       = errors.New("invalid row field")
	ErrInvalidDivideCount    = errors.New("invalid divide count")

	// ErrSavedLocally signals that the primary store rejected a write and the
	// document went to the local fallback store instead. The returned document
	// is valid; callers surface this as a warning, not a failure.
	ErrSavedLocally = errors.New("estimate saved to local fallback store")
)

// DivideMode selects how a row is divided.
type DivideMode string

const (
	DivideSplit DivideMode = "split" // partition the width into equal parts
	DivideCopy  DivideMode = "copy"  // duplicate the row with the same dimensions
)

// IEstimateUseCase exposes estimate document operations.
//
// Every mutation runs the authoritative recalculation pipeline before
// persisting, so stored documents never carry stale derived fields.

type IEstimateUseCase interface {
	Create(ctx context.Context, customerName, customerPhone, address string) (entities.Estimate, error)
	CreateRevision(ctx context.Context, baseNumber string) (entities.Estimate, error)
	GetByNumber(ctx context.Context, number string) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	SaveRows(ctx context.Context, number string, rows []entities.EstimateRow) (entities.Estimate, error)
	EditRowField(ctx context.Context, number, rowID string, field calc.Field, value string) (entities.Estimate, error)
	InsertRow(ctx context.Context, number, productCode string) (entities.Estimate, error)
	InsertOptionRow(ctx context.Context, number, productRef string) (entities.Estimate, error)
	DeleteRow(ctx context.Context, number, rowID string) (entities.Estimate, error)
	DivideRow(ctx context.Context, number, rowID string, mode DivideMode, count int) (entities.Estimate, error)
	Watch(ctx context.Context, interval time.Duration) <-chan []entities.Estimate
}

type EstimateUseCase struct {
	repo     interfaces.IEstimateRepository
	fallback interfaces.IEstimateRepository // optional local store
	products interfaces.IProductRepository  // optional catalog
	formulas *calc.FormulaTable
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	fallback interfaces.IEstimateRepository,
	products interfaces.IProductRepository,
	formulas *calc.FormulaTable,
) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, fallback: fallback, products: products, formulas: formulas}
}

func (u *EstimateUseCase) Create(ctx context.Context, customerName, customerPhone, address string) (entities.Estimate, error) {
	numbers, err := u.existingNumbers(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		Number:        calc.NextSerial(numbers, now),
		CustomerName:  strings.TrimSpace(customerName),
		CustomerPhone: strings.TrimSpace(customerPhone),
		Address:       strings.TrimSpace(address),
		Rows:          []entities.EstimateRow{},
		CreatedAt:     now,
		SavedAt:       now,
	}
	return u.save(ctx, e)
}

// CreateRevision copies an existing document under the next revision serial.
func (u *EstimateUseCase) CreateRevision(ctx context.Context, baseNumber string) (entities.Estimate, error) {
	base, err := u.GetByNumber(ctx, baseNumber)
	if err != nil {
		return entities.Estimate{}, err
	}
	numbers, err := u.existingNumbers(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}

	number := calc.NextRevision(base.Number, numbers)
	if number == "" {
		return entities.Estimate{}, ErrInvalidEstimateNumber
	}

	now := time.Now().UTC()
	rev := base
	rev.Number = number
	rev.Rows = append([]entities.EstimateRow(nil), base.Rows...)
	rev.CreatedAt = now
	rev.SavedAt = now
	return u.save(ctx, rev)
}

func (u *EstimateUseCase) GetByNumber(ctx context.Context, number string) (entities.Estimate, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.Estimate{}, ErrInvalidEstimateNumber
	}

	candidates := make([]entities.Estimate, 0, 2)
	e, err := u.repo.GetByNumber(ctx, number)
	if err != nil {
		log.Printf("[estimate][usecase] primary read failed number=%s err=%v", number, err)
	} else if e.Number != "" {
		candidates = append(candidates, e)
	}
	if u.fallback != nil {
		if local, lerr := u.fallback.GetByNumber(ctx, number); lerr == nil && local.Number != "" {
			candidates = append(candidates, local)
		}
	}
	if len(candidates) == 0 {
		if err != nil {
			return entities.Estimate{}, err
		}
		return entities.Estimate{}, ErrEstimateNotFound
	}
	// A locally saved copy can be newer than the primary one.
	return calc.Reconcile(candidates)[0], nil
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	primary, err := u.repo.List(ctx)
	if err != nil {
		log.Printf("[estimate][usecase] primary list failed err=%v", err)
		if u.fallback == nil {
			return nil, err
		}
	}

	all := primary
	if u.fallback != nil {
		local, lerr := u.fallback.List(ctx)
		if lerr != nil {
			if err != nil {
				return nil, err
			}
		} else {
			all = append(all, local...)
		}
	}
	return calc.Reconcile(all), nil
}

func (u *EstimateUseCase) SaveRows(ctx context.Context, number string, rows []entities.EstimateRow) (entities.Estimate, error) {
	doc, err := u.GetByNumber(ctx, number)
	if err != nil {
		return entities.Estimate{}, err
	}

	env := u.env(ctx)
	env.Rows = rows
	// Product rows first so option rows price against the fresh owner values.
	for i := range rows {
		if !rows[i].IsOption() {
			calc.Recalculate(&rows[i], env)
		}
	}
	for i := range rows {
		if rows[i].IsOption() {
			calc.Recalculate(&rows[i], env)
		}
	}

	doc.Rows = rows
	doc.SavedAt = time.Now().UTC()
	return u.save(ctx, doc)
}

func (u *EstimateUseCase) EditRowField(ctx context.Context, number, rowID string, field calc.Field, value string) (entities.Estimate, error) {
	doc, err := u.GetByNumber(ctx, number)
	if err != nil {
		return entities.Estimate{}, err
	}
	i, ok := rowIndex(doc.Rows, rowID)
	if !ok {
		return entities.Estimate{}, ErrRowNotFound
	}

	env := u.env(ctx)
	env.Rows = doc.Rows

	before := doc.Rows[i]
	if err := calc.ApplyEdit(&doc.Rows[i], field, value, env); err != nil {
		return entities.Estimate{}, ErrInvalidRowField
	}

	changed := calc.NeedsUpdate(before, doc.Rows[i])
	// Options attached to an edited product row follow its new totals.
	if !doc.Rows[i].IsOption() {
		for j := range doc.Rows {
			if doc.Rows[j].IsOption() && doc.Rows[j].ProductRef == rowID {
				opt := doc.Rows[j]
				calc.Recalculate(&doc.Rows[j], env)
				changed = changed || calc.NeedsUpdate(opt, doc.Rows[j])
			}
		}
	}
	if !changed {
		return doc, nil
	}

	doc.SavedAt = time.Now().UTC()
	return u.save(ctx, doc)
}

func (u *EstimateUseCase) InsertRow(ctx context.Context, number, productCode string) (entities.Estimate, error) {
	doc, err := u.GetByNumber(ctx, number)
	if err != nil {
		return entities.Estimate{}, err
	}

	row := calc.NewEmptyRow(uuid.NewString())
	if code := strings.TrimSpace(productCode); code != "" {
		if u.products == nil {
			return entities.Estimate{}, ErrProductNotFound
		}
		p, err := u.products.GetByCode(ctx, code)
		if err != nil {
			return entities.Estimate{}, err
		}
		if p.Code == "" {
			return entities.Estimate{}, ErrProductNotFound
		}
		row = calc.NewRowFromProduct(row.ID, p)
	}

	doc.Rows = append(doc.Rows, row)
	env := u.env(ctx)
	env.Rows = doc.Rows
	calc.Recalculate(&doc.Rows[len(doc.Rows)-1], env)

	doc.SavedAt = time.Now().UTC()
	return u.save(ctx, doc)
}

// InsertOptionRow appends an empty option row attached to an existing product
// row. Name, apply type and prices arrive through row edits or a full save.
func (u *EstimateUseCase) InsertOptionRow(ctx context.Context, number, productRef string) (entities.Estimate, error) {
	doc, err := u.GetByNumber(ctx, number)
	if err != nil {
		return entities.Estimate{}, err
	}
	if i, ok := rowIndex(doc.Rows, productRef); !ok || doc.Rows[i].IsOption() {
		return entities.Estimate{}, ErrRowNotFound
	}

	doc.Rows = append(doc.Rows, entities.EstimateRow{
		ID:         uuid.NewString(),
		Type:       entities.RowTypeOption,
		ProductRef: productRef,
		Quantity:   1,
	})
	doc.SavedAt = time.Now().UTC()
	return u.save(ctx, doc)
}

// DeleteRow removes a row. Deleting a product row removes its attached
// option rows as well.
func (u *EstimateUseCase) DeleteRow(ctx context.Context, number, rowID string) (entities.Estimate, error) {
	doc, err := u.GetByNumber(ctx, number)
	if err != nil {
		return entities.Estimate{}, err
	}
	i, ok := rowIndex(doc.Rows, rowID)
	if !ok {
		return entities.Estimate{}, ErrRowNotFound
	}
	isProduct := !doc.Rows[i].IsOption()

	kept := doc.Rows[:0]
	for _, r := range doc.Rows {
		if r.ID == rowID {
			continue
		}
		if isProduct && r.IsOption() && r.ProductRef == rowID {
			continue
		}
		kept = append(kept, r)
	}
	doc.Rows = kept

	doc.SavedAt = time.Now().UTC()
	return u.save(ctx, doc)
}

func (u *EstimateUseCase) DivideRow(ctx context.Context, number, rowID string, mode DivideMode, count int) (entities.Estimate, error) {
	minCount := 2
	if mode == DivideCopy {
		minCount = 1
	}
	if count < minCount {
		return entities.Estimate{}, ErrInvalidDivideCount
	}

	doc, err := u.GetByNumber(ctx, number)
	if err != nil {
		return entities.Estimate{}, err
	}
	i, ok := rowIndex(doc.Rows, rowID)
	if !ok || doc.Rows[i].IsOption() {
		return entities.Estimate{}, ErrRowNotFound
	}

	env := u.env(ctx)
	env.Rows = doc.Rows

	var derived []entities.EstimateRow
	switch mode {
	case DivideSplit:
		derived = calc.SplitRow(doc.Rows[i], count, env, uuid.NewString)
	case DivideCopy:
		derived = calc.CopyRow(doc.Rows[i], count, env, uuid.NewString)
	default:
		return entities.Estimate{}, ErrInvalidDivideCount
	}

	rows := make([]entities.EstimateRow, 0, len(doc.Rows)+len(derived)-1)
	rows = append(rows, doc.Rows[:i]...)
	rows = append(rows, derived...)
	rows = append(rows, doc.Rows[i+1:]...)
	doc.Rows = rows

	doc.SavedAt = time.Now().UTC()
	return u.save(ctx, doc)
}

// Watch polls the store and emits the full reconciled collection whenever it
// changes. The channel closes when ctx is done.
func (u *EstimateUseCase) Watch(ctx context.Context, interval time.Duration) <-chan []entities.Estimate {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	out := make(chan []entities.Estimate, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		var last []entities.Estimate
		emit := func() {
			current, err := u.List(ctx)
			if err != nil {
				log.Printf("[estimate][usecase] watch poll failed err=%v", err)
				return
			}
			if reflect.DeepEqual(current, last) {
				return
			}
			last = current
			select {
			case out <- current:
			case <-ctx.Done():
			}
		}

		emit()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				emit()
			}
		}
	}()
	return out
}

// save persists through the primary store, degrading to the local fallback
// when the primary write fails.
func (u *EstimateUseCase) save(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	saved, err := u.repo.Put(ctx, e)
	if err == nil {
		return saved, nil
	}
	log.Printf("[estimate][usecase] primary save failed number=%s err=%v", e.Number, err)
	if u.fallback == nil {
		return entities.Estimate{}, err
	}
	if _, ferr := u.fallback.Put(ctx, e); ferr != nil {
		log.Printf("[estimate][usecase] fallback save failed number=%s err=%v", e.Number, ferr)
		return entities.Estimate{}, err
	}
	log.Printf("[estimate][usecase] saved to local fallback number=%s", e.Number)
	return e, ErrSavedLocally
}

func (u *EstimateUseCase) existingNumbers(ctx context.Context) ([]string, error) {
	all, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	numbers := make([]string, 0, len(all))
	for _, e := range all {
		numbers = append(numbers, e.Number)
	}
	return numbers, nil
}

// env assembles the calc collaborators. A failing catalog read degrades to an
// empty catalog; recalculation works without one.
func (u *EstimateUseCase) env(ctx context.Context) calc.Env {
	env := calc.Env{Formulas: u.formulas}
	if u.products != nil {
		catalog, err := u.products.List(ctx)
		if err != nil {
			log.Printf("[estimate][usecase] catalog read failed err=%v", err)
		} else {
			env.Catalog = catalog
		}
	}
	return env
}

func rowIndex(rows []entities.EstimateRow, rowID string) (int, bool) {
	for i, r := range rows {
		if r.ID == rowID {
			return i, true
		}
	}
	return 0, false
}
