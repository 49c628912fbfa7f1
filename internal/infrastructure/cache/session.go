package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/application/category"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ category.SessionFactory = (*SessionFactory)(nil)

// SessionFactory decora otra fábrica: GetByID lee primero de Redis y las
// categorías modificadas se invalidan solo después de un Commit exitoso.
// GetByIDForUpdate nunca pasa por la caché.
type SessionFactory struct {
	next  category.SessionFactory
	cache *CategoryCache
}

// NewSessionFactory envuelve next con la caché.
func NewSessionFactory(next category.SessionFactory, cache *CategoryCache) *SessionFactory {
	return &SessionFactory{next: next, cache: cache}
}

// Open abre la sesión subyacente y la envuelve.
func (f *SessionFactory) Open(ctx context.Context) (category.Session, error) {
	inner, err := f.next.Open(ctx)
	if err != nil {
		return nil, err
	}
	repo := &categoryRepository{next: inner.Categories(), cache: f.cache}
	return &session{
		inner: inner,
		repo:  repo,
		uow:   &unitOfWork{next: inner.UnitOfWork(), repo: repo},
	}, nil
}

type session struct {
	inner category.Session
	repo  *categoryRepository
	uow   *unitOfWork
}

func (s *session) Categories() repository.CategoryRepository { return s.repo }
func (s *session) UnitOfWork() repository.UnitOfWork         { return s.uow }
func (s *session) Close(ctx context.Context) error          { return s.inner.Close(ctx) }

// categoryRepository es read-through para GetByID y anota los IDs escritos.
type categoryRepository struct {
	next  repository.CategoryRepository
	cache *CategoryCache
	dirty []uuid.UUID
}

func (r *categoryRepository) Insert(ctx context.Context, c *entity.Category) error {
	return r.next.Insert(ctx, c)
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if c, ok := r.cache.Get(ctx, id); ok {
		return c, nil
	}
	c, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, c)
	return c, nil
}

func (r *categoryRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return r.next.GetByIDForUpdate(ctx, id)
}

func (r *categoryRepository) Update(ctx context.Context, c *entity.Category) error {
	if err := r.next.Update(ctx, c); err != nil {
		return err
	}
	r.dirty = append(r.dirty, c.ID())
	return nil
}

type unitOfWork struct {
	next repository.UnitOfWork
	repo *categoryRepository
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if err := u.next.Commit(ctx); err != nil {
		return err
	}
	u.repo.cache.Invalidate(ctx, u.repo.dirty...)
	u.repo.dirty = nil
	return nil
}
