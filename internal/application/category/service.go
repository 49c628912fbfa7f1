package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// Service expone los casos de uso de categorías a la capa de transporte.
// Cada llamada abre su propia sesión, ejecuta el caso de uso y la cierra.
type Service struct {
	sessions SessionFactory
	log      *logger.Logger
}

// NewService construye el servicio.
func NewService(sessions SessionFactory, log *logger.Logger) *Service {
	return &Service{sessions: sessions, log: log}
}

// Create ejecuta CreateCategory.
func (s *Service) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	var out *dto.CategoryResponse
	err := s.withSession(ctx, func(sess Session) error {
		var err error
		out, err = NewCreateCategoryUseCase(sess.Categories(), sess.UnitOfWork()).CreateCategory(ctx, in)
		return err
	})
	if err != nil {
		s.logFailure("create", err)
		return nil, err
	}
	s.log.Info().Str("category_id", out.ID.String()).Msg("categoría creada")
	return out, nil
}

// Get ejecuta GetCategory.
func (s *Service) Get(ctx context.Context, in dto.GetCategoryRequest) (*dto.CategoryResponse, error) {
	var out *dto.CategoryResponse
	err := s.withSession(ctx, func(sess Session) error {
		var err error
		out, err = NewGetCategoryUseCase(sess.Categories()).GetCategory(ctx, in)
		return err
	})
	if err != nil {
		s.logFailure("get", err)
		return nil, err
	}
	return out, nil
}

// Update ejecuta UpdateCategory.
func (s *Service) Update(ctx context.Context, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	var out *dto.CategoryResponse
	err := s.withSession(ctx, func(sess Session) error {
		var err error
		out, err = NewUpdateCategoryUseCase(sess.Categories(), sess.UnitOfWork()).UpdateCategory(ctx, in)
		return err
	})
	if err != nil {
		s.logFailure("update", err)
		return nil, err
	}
	s.log.Info().
		Str("category_id", out.ID.String()).
		Bool("is_active", out.IsActive).
		Msg("categoría actualizada")
	return out, nil
}

func (s *Service) withSession(ctx context.Context, fn func(Session) error) error {
	sess, err := s.sessions.Open(ctx)
	if err != nil {
		return fmt.Errorf("abrir sesión: %w", err)
	}
	defer func() {
		if cerr := sess.Close(ctx); cerr != nil {
			s.log.Warn().Err(cerr).Msg("cerrar sesión de categorías")
		}
	}()
	return fn(sess)
}

// logFailure registra en debug los errores de dominio (esperables) y en error el resto.
func (s *Service) logFailure(op string, err error) {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicate) {
		s.log.Debug().Str("op", op).Err(err).Msg("operación de categoría rechazada")
		return
	}
	s.log.Error().Str("op", op).Err(err).Msg("operación de categoría fallida")
}
