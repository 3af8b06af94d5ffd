package interfaces

import "context"

// IFormulaRepository persists the user-editable pleat formula expressions as
// key → expression source text. Built-in defaults never hit the repository;
// only user overrides are stored.

type IFormulaRepository interface {
	Load(ctx context.Context) (map[string]string, error)
	Save(ctx context.Context, key, expression string) error
	Delete(ctx context.Context, key string) error
}
