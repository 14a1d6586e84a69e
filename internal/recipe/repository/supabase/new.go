package supabase

import (
	"fmt"

	"cooked-flow/internal/recipe/repository"
	"cooked-flow/pkg/log"
	"cooked-flow/pkg/supabase"
)

type implRepository struct {
	client *supabase.Client
	l      log.Logger
}

// New creates a new Supabase-backed Repository for the recipe domain.
func New(client *supabase.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("recipe/repository/supabase: client is required")
	}
	return &implRepository{client: client, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("recipe/repository/supabase.%s", method)
}
