package usecase_test

import (
	"context"
	"os"
	"testing"

	"go-jobhunt-backend/internal/domain"
	"go-jobhunt-backend/internal/usecase"
	"go-jobhunt-backend/pkg/apperror"
	"go-jobhunt-backend/pkg/auth"
	"go-jobhunt-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateLastLogin(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type MockSavedJobRepo struct {
	mock.Mock
}

func (m *MockSavedJobRepo) Upsert(ctx context.Context, userID string, job *domain.SavedJob) error {
	return m.Called(ctx, userID, job).Error(0)
}
func (m *MockSavedJobRepo) ListByUser(ctx context.Context, userID string) ([]domain.SavedJob, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SavedJob), args.Error(1)
}
func (m *MockSavedJobRepo) Delete(ctx context.Context, userID, jobID string) error {
	return m.Called(ctx, userID, jobID).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) ListByUser(ctx context.Context, userID string) ([]domain.Application, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, userID string, id int64, status string) error {
	return m.Called(ctx, userID, id, status).Error(0)
}

func newAuthUC(userRepo *MockUserRepo, profileRepo *MockProfileRepo) domain.AuthUsecase {
	tokens := auth.NewTokenService("test-secret", 30)
	return usecase.NewAuthUsecase(userRepo, profileRepo, tokens, validator.New())
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func TestRegister(t *testing.T) {
	t.Run("Should lowercase the email and seed an initial profile", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := newAuthUC(userRepo, profileRepo)

		var created *domain.User
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.User)
		})
		profileRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, "Ann", p.FullName)
			assert.Equal(t, "a@x.com", p.Email)
		})

		result, err := uc.Register(context.Background(), domain.RegisterRequest{
			Email: "A@X.com", Password: "secret1", FullName: "Ann",
		})
		require.NoError(t, err)

		assert.Equal(t, "a@x.com", created.Email)
		assert.NotEqual(t, "secret1", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret1")))

		// Token must decode back to the generated user id
		tokens := auth.NewTokenService("test-secret", 30)
		decoded, err := tokens.Verify(result.Token)
		require.NoError(t, err)
		assert.Equal(t, created.ID, decoded)
		assert.Equal(t, created.ID, result.UserID)
	})

	t.Run("Should reject a duplicate email without seeding a profile", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := newAuthUC(userRepo, profileRepo)

		userRepo.On("Create", mock.Anything, mock.Anything).Return(apperror.Conflict("Email already registered"))

		_, err := uc.Register(context.Background(), domain.RegisterRequest{
			Email: "a@x.com", Password: "secret1", FullName: "Ann",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Email already registered")
		profileRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should reject malformed input", func(t *testing.T) {
		uc := newAuthUC(new(MockUserRepo), new(MockProfileRepo))

		_, err := uc.Register(context.Background(), domain.RegisterRequest{
			Email: "not-an-email", Password: "secret1", FullName: "Ann",
		})
		assert.Error(t, err)

		_, err = uc.Register(context.Background(), domain.RegisterRequest{
			Email: "a@x.com", Password: "short", FullName: "Ann",
		})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	existing := &domain.User{ID: "user-1", Email: "a@x.com", PasswordHash: string(hash)}

	t.Run("Unknown email and wrong password produce the identical error", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := newAuthUC(userRepo, new(MockProfileRepo))

		userRepo.On("GetByEmail", mock.Anything, "missing@x.com").Return(nil, nil)
		userRepo.On("GetByEmail", mock.Anything, "a@x.com").Return(existing, nil)

		_, errUnknown := uc.Login(context.Background(), domain.LoginRequest{Email: "missing@x.com", Password: "whatever"})
		_, errWrongPw := uc.Login(context.Background(), domain.LoginRequest{Email: "a@x.com", Password: "wrong-password"})

		require.Error(t, errUnknown)
		require.Error(t, errWrongPw)
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})

	t.Run("Should match the email case-insensitively and return the profile", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := newAuthUC(userRepo, profileRepo)

		userRepo.On("GetByEmail", mock.Anything, "a@x.com").Return(existing, nil)
		userRepo.On("UpdateLastLogin", mock.Anything, "user-1").Return(nil)
		profileRepo.On("GetByUserID", mock.Anything, "user-1").Return(&domain.Profile{UserID: "user-1", FullName: "Ann"}, nil)

		result, err := uc.Login(context.Background(), domain.LoginRequest{Email: "A@X.com", Password: "right-password"})
		require.NoError(t, err)
		assert.Equal(t, "user-1", result.UserID)
		require.NotNil(t, result.Profile)
		assert.Equal(t, "Ann", result.Profile.FullName)

		tokens := auth.NewTokenService("test-secret", 30)
		decoded, err := tokens.Verify(result.Token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", decoded)
		userRepo.AssertCalled(t, "GetByEmail", mock.Anything, "a@x.com")
	})

	t.Run("A failed last-login update must not block login", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		profileRepo := new(MockProfileRepo)
		uc := newAuthUC(userRepo, profileRepo)

		userRepo.On("GetByEmail", mock.Anything, "a@x.com").Return(existing, nil)
		userRepo.On("UpdateLastLogin", mock.Anything, "user-1").Return(assert.AnError)
		profileRepo.On("GetByUserID", mock.Anything, "user-1").Return(nil, nil)

		_, err := uc.Login(context.Background(), domain.LoginRequest{Email: "a@x.com", Password: "right-password"})
		assert.NoError(t, err)
	})
}

func TestSaveJob(t *testing.T) {
	t.Run("Should key the upsert by the context user", func(t *testing.T) {
		repo := new(MockSavedJobRepo)
		uc := usecase.NewJobUsecase(repo, validator.New())

		repo.On("Upsert", mock.Anything, "user-1", mock.AnythingOfType("*domain.SavedJob")).Return(nil).Run(func(args mock.Arguments) {
			job := args.Get(2).(*domain.SavedJob)
			assert.Equal(t, "job-42", job.JobID)
			assert.Equal(t, domain.SavedJobStatusSaved, job.Status)
			assert.Equal(t, "looks great", job.Notes)
		})

		err := uc.Save(authedCtx("user-1"), domain.SaveJobRequest{
			JobID:   "job-42",
			JobData: map[string]interface{}{"company": "Canva"},
			Notes:   "looks great",
		})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should fail safely without an authenticated user", func(t *testing.T) {
		uc := usecase.NewJobUsecase(new(MockSavedJobRepo), validator.New())

		err := uc.Save(context.Background(), domain.SaveJobRequest{
			JobID: "job-42", JobData: map[string]interface{}{},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})

	t.Run("Delete forwards to the store and requires a job id", func(t *testing.T) {
		repo := new(MockSavedJobRepo)
		uc := usecase.NewJobUsecase(repo, validator.New())

		// Deleting an absent row is a store-level no-op; the usecase
		// reports success either way.
		repo.On("Delete", mock.Anything, "user-1", "job-404").Return(nil)
		assert.NoError(t, uc.DeleteSaved(authedCtx("user-1"), "job-404"))

		assert.Error(t, uc.DeleteSaved(authedCtx("user-1"), ""))
	})
}

func TestProfileApply(t *testing.T) {
	stored := &domain.Profile{
		UserID:          "user-1",
		FullName:        "Ann",
		Phone:           "555-0100",
		ExperienceLevel: "senior",
		PreferredRoles:  []string{"Product Designer"},
	}
	newPhone := "555-0199"

	t.Run("Merge keeps fields absent from the update", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo, validator.New())

		repo.On("GetByUserID", mock.Anything, "user-1").Return(stored, nil)
		repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

		result, err := uc.Apply(authedCtx("user-1"), &domain.ProfileUpdate{Phone: &newPhone}, false)
		require.NoError(t, err)
		assert.Equal(t, "555-0199", result.Phone)
		assert.Equal(t, "Ann", result.FullName)
		assert.Equal(t, "senior", result.ExperienceLevel)
		assert.Equal(t, []string{"Product Designer"}, result.PreferredRoles)
	})

	t.Run("Replace resets fields absent from the update to defaults", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo, validator.New())

		repo.On("GetByUserID", mock.Anything, "user-1").Return(stored, nil)
		repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

		result, err := uc.Apply(authedCtx("user-1"), &domain.ProfileUpdate{Phone: &newPhone}, true)
		require.NoError(t, err)
		assert.Equal(t, "555-0199", result.Phone)
		assert.Equal(t, "", result.FullName)
		assert.Equal(t, domain.DefaultExperienceLevel, result.ExperienceLevel)
		assert.Empty(t, result.PreferredRoles)
	})

	t.Run("Writing a profile for a user without one creates it", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo, validator.New())

		name := "New User"
		repo.On("GetByUserID", mock.Anything, "user-2").Return(nil, nil)
		repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, "user-2", p.UserID)
			assert.Equal(t, "New User", p.FullName)
		})

		_, err := uc.Apply(authedCtx("user-2"), &domain.ProfileUpdate{FullName: &name}, false)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Should reject negative years of experience", func(t *testing.T) {
		uc := usecase.NewProfileUsecase(new(MockProfileRepo), validator.New())

		years := -3
		_, err := uc.Apply(authedCtx("user-1"), &domain.ProfileUpdate{YearsOfExperience: &years}, false)
		assert.Error(t, err)
	})

	t.Run("Get returns NotFound when no profile exists", func(t *testing.T) {
		repo := new(MockProfileRepo)
		uc := usecase.NewProfileUsecase(repo, validator.New())

		repo.On("GetByUserID", mock.Anything, "user-1").Return(nil, nil)

		_, err := uc.Get(authedCtx("user-1"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplications(t *testing.T) {
	t.Run("Create assigns the store id and defaults status to draft", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(repo, validator.New())

		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil).Run(func(args mock.Arguments) {
			app := args.Get(1).(*domain.Application)
			assert.Equal(t, "user-1", app.UserID)
			assert.Equal(t, domain.ApplicationStatusDraft, app.Status)
			app.ID = 42
		})

		id, err := uc.Create(authedCtx("user-1"), domain.ApplicationCreateRequest{
			JobID: "job-1", Company: "Canva", Role: "Product Designer",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("Should reject a record missing required fields", func(t *testing.T) {
		uc := usecase.NewApplicationUsecase(new(MockApplicationRepo), validator.New())

		_, err := uc.Create(authedCtx("user-1"), domain.ApplicationCreateRequest{JobID: "job-1"})
		assert.Error(t, err)
	})

	t.Run("List is scoped to the context user", func(t *testing.T) {
		repo := new(MockApplicationRepo)
		uc := usecase.NewApplicationUsecase(repo, validator.New())

		repo.On("ListByUser", mock.Anything, "user-1").Return([]domain.Application{{ID: 1}}, nil)

		apps, err := uc.List(authedCtx("user-1"))
		require.NoError(t, err)
		assert.Len(t, apps, 1)

		_, err = uc.List(context.Background())
		assert.Error(t, err)
	})
}
