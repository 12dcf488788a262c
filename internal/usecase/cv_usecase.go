package usecase

import (
	"context"

	"go-cvbuilder-backend/internal/domain"
	"go-cvbuilder-backend/internal/state"
	"go-cvbuilder-backend/pkg/apperror"
	"go-cvbuilder-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type cvUsecase struct {
	store    *state.CVStore
	repo     domain.CVRepository
	validate *validator.Validate
}

func NewCVUsecase(store *state.CVStore, repo domain.CVRepository, validate *validator.Validate) domain.CVUsecase {
	return &cvUsecase{
		store:    store,
		repo:     repo,
		validate: validate,
	}
}

// Load reads the persisted collection into the state store. Called at
// startup; the current pointer is re-derived by id lookup afterwards,
// never restored from storage.
func (u *cvUsecase) Load(ctx context.Context) ([]domain.CV, error) {
	cvs, err := u.repo.LoadAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	u.store.Load(cvs)
	return cvs, nil
}

func (u *cvUsecase) List(ctx context.Context) []domain.CV {
	return u.store.All()
}

func (u *cvUsecase) Get(ctx context.Context, id string) (domain.CV, error) {
	cv, ok := u.store.Get(id)
	if !ok {
		return domain.CV{}, apperror.NotFound("CV not found")
	}
	return cv, nil
}

// Create builds a CV around the given personal info, appends it to the
// collection, selects it as current and flushes to persistence.
func (u *cvUsecase) Create(ctx context.Context, info domain.PersonalInfo) (domain.CV, error) {
	if err := u.validate.Struct(info); err != nil {
		return domain.CV{}, apperror.BadRequest(err.Error())
	}

	now := domain.NowISO()
	cv := domain.CV{
		ID:           uuid.NewString(),
		PersonalInfo: info,
		Experiences:  []domain.Experience{},
		Education:    []domain.Education{},
		Skills:       []domain.Skill{},
		Languages:    []domain.Language{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	u.store.Create(cv)
	if err := u.flush(ctx, cv); err != nil {
		return domain.CV{}, err
	}
	return cv, nil
}

func (u *cvUsecase) Update(ctx context.Context, cv domain.CV) (domain.CV, error) {
	if err := u.validate.Struct(cv.PersonalInfo); err != nil {
		return domain.CV{}, apperror.BadRequest(err.Error())
	}

	updated, ok := u.store.Update(cv)
	if !ok {
		return domain.CV{}, apperror.NotFound("CV not found")
	}
	if err := u.flush(ctx, updated); err != nil {
		return domain.CV{}, err
	}
	return updated, nil
}

// Delete is idempotent: removing an id that no longer exists succeeds.
func (u *cvUsecase) Delete(ctx context.Context, id string) error {
	u.store.Delete(id)
	if err := u.repo.Delete(ctx, id); err != nil {
		logger.Log.Error("Failed to delete CV", "id", id, "error", err)
		return apperror.Internal(err)
	}
	return nil
}

func (u *cvUsecase) SetCurrent(ctx context.Context, id string) (domain.CV, error) {
	cv, ok := u.store.SetCurrent(id)
	if !ok {
		return domain.CV{}, apperror.NotFound("CV not found")
	}
	return cv, nil
}

func (u *cvUsecase) Current(ctx context.Context) (domain.CV, error) {
	cv, ok := u.store.Current()
	if !ok {
		return domain.CV{}, apperror.NotFound("No CV selected")
	}
	return cv, nil
}

func (u *cvUsecase) UpdatePersonalInfo(ctx context.Context, info domain.PersonalInfo) (domain.CV, error) {
	if err := u.validate.Struct(info); err != nil {
		return domain.CV{}, apperror.BadRequest(err.Error())
	}
	cv, ok := u.store.UpdatePersonalInfo(info)
	return u.afterMutation(ctx, cv, ok)
}

func (u *cvUsecase) AddExperience(ctx context.Context, exp domain.Experience) (domain.CV, error) {
	exp.ID = uuid.NewString()
	if err := u.validate.Struct(exp); err != nil {
		return domain.CV{}, apperror.BadRequest(err.Error())
	}
	cv, ok := u.store.AddExperience(exp)
	return u.afterMutation(ctx, cv, ok)
}

func (u *cvUsecase) UpdateExperience(ctx context.Context, exp domain.Experience) (domain.CV, error) {
	if err := u.validate.Struct(exp); err != nil {
		return domain.CV{}, apperror.BadRequest(err.Error())
	}
	cv, ok := u.store.UpdateExperience(exp)
	return u.afterMutation(ctx, cv, ok)
}

func (u *cvUsecase) RemoveExperience(ctx context.Context, id string) (domain.CV, error) {
	cv, ok := u.store.DeleteExperience(id)
	return u.afterMutation(ctx, cv, ok)
}

func (u *cvUsecase) AddEducation(ctx context.Context, edu domain.Education) (domain.CV, error) {
	edu.ID = uuid.NewString()
	if err := u.validate.Struct(edu); err != nil {
		return domain.CV{}, apperror.BadRequest(err.Error())
	}
	cv, ok := u.store.AddEducation(edu)
	return u.afterMutation(ctx, cv, ok)
}

func (u *cvUsecase) UpdateEducation(ctx context.Context, edu domain.Education) (domain.CV, error) {
	if err := u.validate.Struct(edu); err != nil {
		return domain.CV{}, apperror.BadRequest(err.Error())
	}
	cv, ok := u.store.UpdateEducation(edu)
	return u.afterMutation(ctx, cv, ok)
}

func (u *cvUsecase) RemoveEducation(ctx context.Context, id string) (domain.CV, error) {
	cv, ok := u.store.DeleteEducation(id)
	return u.afterMutation(ctx, cv, ok)
}

func (u *cvUsecase) AddSkill(ctx context.Context, skill domain.Skill) (domain.CV, error) {
	skill.ID = uuid.NewString()
	if err := u.validate.Struct(skill); err != nil {
		return domain.CV{}, apperror.BadRequest(err.Error())
	}
	cv, ok := u.store.AddSkill(skill)
	return u.afterMutation(ctx, cv, ok)
}

func (u *cvUsecase) UpdateSkill(ctx context.Context, skill domain.Skill) (domain.CV, error) {
	if err := u.validate.Struct(skill); err != nil {
		return domain.CV{}, apperror.BadRequest(err.Error())
	}
	cv, ok := u.store.UpdateSkill(skill)
	return u.afterMutation(ctx, cv, ok)
}

func (u *cvUsecase) RemoveSkill(ctx context.Context, id string) (domain.CV, error) {
	cv, ok := u.store.DeleteSkill(id)
	return u.afterMutation(ctx, cv, ok)
}

func (u *cvUsecase) AddLanguage(ctx context.Context, lang domain.Language) (domain.CV, error) {
	lang.ID = uuid.NewString()
	if err := u.validate.Struct(lang); err != nil {
		return domain.CV{}, apperror.BadRequest(err.Error())
	}
	cv, ok := u.store.AddLanguage(lang)
	return u.afterMutation(ctx, cv, ok)
}

func (u *cvUsecase) UpdateLanguage(ctx context.Context, lang domain.Language) (domain.CV, error) {
	if err := u.validate.Struct(lang); err != nil {
		return domain.CV{}, apperror.BadRequest(err.Error())
	}
	cv, ok := u.store.UpdateLanguage(lang)
	return u.afterMutation(ctx, cv, ok)
}

func (u *cvUsecase) RemoveLanguage(ctx context.Context, id string) (domain.CV, error) {
	cv, ok := u.store.DeleteLanguage(id)
	return u.afterMutation(ctx, cv, ok)
}

// afterMutation flushes the state-store result of a nested mutation.
// ok=false means no CV is selected as current.
func (u *cvUsecase) afterMutation(ctx context.Context, cv domain.CV, ok bool) (domain.CV, error) {
	if !ok {
		return domain.CV{}, apperror.NotFound("No CV selected")
	}
	if err := u.flush(ctx, cv); err != nil {
		return domain.CV{}, err
	}
	return cv, nil
}

func (u *cvUsecase) flush(ctx context.Context, cv domain.CV) error {
	if err := u.repo.Save(ctx, cv); err != nil {
		logger.Log.Error("Failed to persist CV", "id", cv.ID, "error", err)
		return apperror.Internal(err)
	}
	return nil
}
