package impl

import (
	"context"
	"log/slog"

	deliverycontext "timesheet/internal/delivery/context"
	"timesheet/internal/domain/entity"
	domainerrors "timesheet/internal/domain/errors"
	"timesheet/internal/domain/pagination"
	"timesheet/internal/domain/repository"
	"timesheet/internal/errors"
	"timesheet/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) Get(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to get category")
	}

	return category, nil
}

func (srv *categoryService) List(ctx context.Context, input usecase.ListInput) (*pagination.Page[*entity.Category], error) {
	categories, err := srv.categoryRepo.GetAll(ctx, repository.Filter{
		FirstLetter: input.FirstLetter,
		SearchText:  input.SearchText,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return pagination.Paginate(categories, input.PageNumber, input.PageSize)
}

func (srv *categoryService) Create(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{Name: input.Name}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID))

	return category, nil
}

func (srv *categoryService) Update(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{ID: input.ID, Name: input.Name}
	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

func (srv *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	existed, err := srv.categoryRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete category")
	}
	if !existed {
		return domainerrors.ErrCategoryNotFound
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}
