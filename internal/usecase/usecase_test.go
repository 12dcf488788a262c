package usecase_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-cvbuilder-backend/internal/domain"
	"go-cvbuilder-backend/internal/state"
	"go-cvbuilder-backend/internal/usecase"
	"go-cvbuilder-backend/pkg/apperror"
	"go-cvbuilder-backend/pkg/logger"
	"go-cvbuilder-backend/pkg/share"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockCVRepo struct {
	mock.Mock
}

func (m *MockCVRepo) LoadAll(ctx context.Context) ([]domain.CV, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CV), args.Error(1)
}

func (m *MockCVRepo) SaveAll(ctx context.Context, cvs []domain.CV) error {
	return m.Called(ctx, cvs).Error(0)
}

func (m *MockCVRepo) Save(ctx context.Context, cv domain.CV) error {
	return m.Called(ctx, cv).Error(0)
}

func (m *MockCVRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockPortfolioRepo struct {
	mock.Mock
}

func (m *MockPortfolioRepo) LoadAll(ctx context.Context) ([]domain.Portfolio, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepo) SaveAll(ctx context.Context, portfolios []domain.Portfolio) error {
	return m.Called(ctx, portfolios).Error(0)
}

func (m *MockPortfolioRepo) Save(ctx context.Context, portfolio domain.Portfolio) error {
	return m.Called(ctx, portfolio).Error(0)
}

func (m *MockPortfolioRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// Mock export collaborators

type MockPrinter struct {
	mock.Mock
}

func (m *MockPrinter) PrintToFile(ctx context.Context, html string) (string, error) {
	args := m.Called(ctx, html)
	return args.String(0), args.Error(1)
}

type MockSharer struct {
	mock.Mock
}

func (m *MockSharer) Share(ctx context.Context, filePath, mimeType, dialogTitle string) (string, error) {
	args := m.Called(ctx, filePath, mimeType, dialogTitle)
	return args.String(0), args.Error(1)
}

func newCVUsecase(repo *MockCVRepo) domain.CVUsecase {
	return usecase.NewCVUsecase(state.NewCVStore(), repo, validator.New())
}

func johnInfo() domain.PersonalInfo {
	return domain.PersonalInfo{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
	}
}

func TestCVCreate(t *testing.T) {
	mockRepo := new(MockCVRepo)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.CV")).Return(nil)
	uc := newCVUsecase(mockRepo)
	ctx := context.Background()

	cv, err := uc.Create(ctx, johnInfo())
	require.NoError(t, err)
	assert.NotEmpty(t, cv.ID)
	assert.NotEmpty(t, cv.CreatedAt)
	assert.Equal(t, cv.CreatedAt, cv.UpdatedAt)

	// creation selects the new CV as current
	current, err := uc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, cv.ID, current.ID)

	mockRepo.AssertCalled(t, "Save", mock.Anything, mock.AnythingOfType("domain.CV"))
}

func TestCVCreateValidation(t *testing.T) {
	mockRepo := new(MockCVRepo)
	uc := newCVUsecase(mockRepo)

	_, err := uc.Create(context.Background(), domain.PersonalInfo{LastName: "Doe"})
	require.Error(t, err)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCVNestedMutationWithoutCurrent(t *testing.T) {
	mockRepo := new(MockCVRepo)
	uc := newCVUsecase(mockRepo)

	_, err := uc.AddExperience(context.Background(), domain.Experience{
		Title:     "Software Engineer",
		Company:   "Tech Corp",
		StartDate: "2020-01-01",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No CV selected")
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCVAddExperienceWriteThrough(t *testing.T) {
	mockRepo := new(MockCVRepo)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.CV")).Return(nil)
	uc := newCVUsecase(mockRepo)
	ctx := context.Background()

	created, err := uc.Create(ctx, johnInfo())
	require.NoError(t, err)

	cv, err := uc.AddExperience(ctx, domain.Experience{
		Title:     "Software Engineer",
		Company:   "Tech Corp",
		StartDate: "2020-01-01",
		EndDate:   "2023-01-01",
	})
	require.NoError(t, err)
	require.Len(t, cv.Experiences, 1)
	assert.NotEmpty(t, cv.Experiences[0].ID)
	assert.GreaterOrEqual(t, cv.UpdatedAt, created.UpdatedAt)

	// the collection entry carries the experience, not just the returned copy
	stored, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Experiences, 1)
	assert.Equal(t, cv.Experiences[0].ID, stored.Experiences[0].ID)

	// the flushed copy matches what the caller saw
	saved := mockRepo.Calls[len(mockRepo.Calls)-1].Arguments.Get(1).(domain.CV)
	assert.Equal(t, cv.UpdatedAt, saved.UpdatedAt)
	assert.Len(t, saved.Experiences, 1)
}

func TestCVSkillLevelValidation(t *testing.T) {
	mockRepo := new(MockCVRepo)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.CV")).Return(nil)
	uc := newCVUsecase(mockRepo)
	ctx := context.Background()

	_, err := uc.Create(ctx, johnInfo())
	require.NoError(t, err)

	_, err = uc.AddSkill(ctx, domain.Skill{Name: "Go", Level: "wizard"})
	require.Error(t, err)

	_, err = uc.AddSkill(ctx, domain.Skill{Name: "Go", Level: domain.SkillExpert})
	require.NoError(t, err)
}

func TestCVDeleteIdempotent(t *testing.T) {
	mockRepo := new(MockCVRepo)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.CV")).Return(nil)
	mockRepo.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)
	uc := newCVUsecase(mockRepo)
	ctx := context.Background()

	cv, err := uc.Create(ctx, johnInfo())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, cv.ID))
	require.NoError(t, uc.Delete(ctx, cv.ID)) // second delete is a no-op

	// current pointer was cleared
	_, err = uc.Current(ctx)
	require.Error(t, err)
}

func TestCVLoadKeepsNothingSelected(t *testing.T) {
	mockRepo := new(MockCVRepo)
	persisted := []domain.CV{{ID: "persisted", PersonalInfo: johnInfo()}}
	mockRepo.On("LoadAll", mock.Anything).Return(persisted, nil)
	uc := newCVUsecase(mockRepo)
	ctx := context.Background()

	cvs, err := uc.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cvs, 1)

	// nothing is current until selected by id
	_, err = uc.Current(ctx)
	require.Error(t, err)

	cv, err := uc.SetCurrent(ctx, "persisted")
	require.NoError(t, err)
	assert.Equal(t, "persisted", cv.ID)
}

func TestPortfolioItemLifecycle(t *testing.T) {
	mockRepo := new(MockPortfolioRepo)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.Portfolio")).Return(nil)
	uc := usecase.NewPortfolioUsecase(state.NewPortfolioStore(), mockRepo, validator.New())
	ctx := context.Background()

	created, err := uc.Create(ctx, "My Portfolio")
	require.NoError(t, err)

	p, err := uc.AddItem(ctx, domain.PortfolioItem{
		Title:       "Project 1",
		Description: "A great project",
		Link:        "https://example.com",
		Tags:        []string{"Go"},
	})
	require.NoError(t, err)
	require.Len(t, p.Items, 1)
	assert.NotEmpty(t, p.Items[0].ID)
	assert.GreaterOrEqual(t, p.UpdatedAt, created.UpdatedAt)

	p, err = uc.AttachItemImage(ctx, p.Items[0].ID, "/images/shot.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/images/shot.jpg", p.Items[0].ImageURI)

	p, err = uc.RemoveItem(ctx, p.Items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, p.Items)
}

func TestPortfolioCreateRequiresName(t *testing.T) {
	mockRepo := new(MockPortfolioRepo)
	uc := usecase.NewPortfolioUsecase(state.NewPortfolioStore(), mockRepo, validator.New())

	_, err := uc.Create(context.Background(), "")
	require.Error(t, err)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestExportCVHTML(t *testing.T) {
	mockSharer := new(MockSharer)
	mockSharer.On("Share", mock.Anything, mock.AnythingOfType("string"), "text/html", "Share CV (HTML)").
		Return("/shared/out.html", nil)
	uc := usecase.NewExportUsecase(new(MockPrinter), mockSharer, t.TempDir())

	cv := domain.CV{ID: "1", PersonalInfo: johnInfo()}
	res, err := uc.ExportCV(context.Background(), cv, domain.ExportOptions{Format: domain.FormatHTML, Template: "modern"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.FileName, "CV_John_Doe_"), "got %q", res.FileName)
	assert.True(t, strings.HasSuffix(res.FileName, ".html"))
	assert.Equal(t, "text/html", res.MimeType)
	assert.Equal(t, "/shared/out.html", res.ShareRef)

	written, err := os.ReadFile(res.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(written), "John Doe")
}

func TestExportCVDefaultsToHTML(t *testing.T) {
	mockSharer := new(MockSharer)
	mockSharer.On("Share", mock.Anything, mock.AnythingOfType("string"), "text/html", "Share CV (HTML)").
		Return("ref", nil)
	uc := usecase.NewExportUsecase(new(MockPrinter), mockSharer, t.TempDir())

	_, err := uc.ExportCV(context.Background(), domain.CV{ID: "1", PersonalInfo: johnInfo()}, domain.ExportOptions{})
	require.NoError(t, err)
	mockSharer.AssertExpectations(t)
}

func TestExportCVPDF(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "print_1.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0o644))

	mockPrinter := new(MockPrinter)
	mockPrinter.On("PrintToFile", mock.Anything, mock.AnythingOfType("string")).Return(pdfPath, nil)
	mockSharer := new(MockSharer)
	mockSharer.On("Share", mock.Anything, pdfPath, "application/pdf", "Share CV (PDF)").Return("ref", nil)

	uc := usecase.NewExportUsecase(mockPrinter, mockSharer, dir)
	res, err := uc.ExportCV(context.Background(), domain.CV{ID: "1", PersonalInfo: johnInfo()}, domain.ExportOptions{Format: domain.FormatPDF})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", res.MimeType)
	mockPrinter.AssertExpectations(t)
	mockSharer.AssertExpectations(t)
}

func TestExportPrintFailure(t *testing.T) {
	mockPrinter := new(MockPrinter)
	mockPrinter.On("PrintToFile", mock.Anything, mock.Anything).Return("", errors.New("binary not found"))
	mockSharer := new(MockSharer)

	uc := usecase.NewExportUsecase(mockPrinter, mockSharer, t.TempDir())
	_, err := uc.ExportCV(context.Background(), domain.CV{ID: "1", PersonalInfo: johnInfo()}, domain.ExportOptions{Format: domain.FormatPDF})

	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
	mockSharer.AssertNotCalled(t, "Share", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExportShareUnavailable(t *testing.T) {
	uc := usecase.NewExportUsecase(new(MockPrinter), share.NewUnavailable(), t.TempDir())

	_, err := uc.ExportCV(context.Background(), domain.CV{ID: "1", PersonalInfo: johnInfo()}, domain.ExportOptions{})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 503, appErr.Code)
	assert.Equal(t, "Sharing is not available", appErr.Message)
}

func TestExportPortfolioFileName(t *testing.T) {
	mockSharer := new(MockSharer)
	mockSharer.On("Share", mock.Anything, mock.AnythingOfType("string"), "text/html", "Share Portfolio (HTML)").
		Return("ref", nil)
	uc := usecase.NewExportUsecase(new(MockPrinter), mockSharer, t.TempDir())

	p := domain.Portfolio{ID: "1", Name: "My Great Portfolio"}
	res, err := uc.ExportPortfolio(context.Background(), p, domain.ExportOptions{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.FileName, "Portfolio_My_Great_Portfolio_"), "got %q", res.FileName)
}

func TestPreviewMatchesDefaultTemplate(t *testing.T) {
	uc := usecase.NewExportUsecase(new(MockPrinter), new(MockSharer), t.TempDir())
	cv := domain.CV{ID: "1", PersonalInfo: johnInfo()}

	implicit, err := uc.PreviewCV(cv, "")
	require.NoError(t, err)
	explicit, err := uc.PreviewCV(cv, "modern")
	require.NoError(t, err)
	assert.Equal(t, implicit, explicit)
}
