package impl

import (
	"context"
	"strings"
	"testing"

	"refuge/internal/domain/entity"
	domainerrors "refuge/internal/domain/errors"
	"refuge/internal/domain/repository"
	"refuge/internal/infra/persistence/memory"
	"refuge/internal/live/livetest"
	mockRepo "refuge/internal/mocks/repository"
	mockService "refuge/internal/mocks/service"
	"refuge/internal/usecase"
	"refuge/internal/validator"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adoptionServiceFixtures holds all test dependencies for adoption service tests.
type adoptionServiceFixtures struct {
	service  usecase.AdoptionUsecase
	animals  repository.AnimalRepository
	requests repository.AdoptionRequestRepository
	identity *mockService.MockIdentityProvider
	notifier *mockService.MockNotificationService
}

func createTestAdoptionService(t *testing.T) adoptionServiceFixtures {
	store := memory.NewStore()
	animals := memory.NewAnimalRepository(store)
	requests := memory.NewAdoptionRequestRepository(store)
	identity := mockService.NewMockIdentityProvider(t)
	notifier := mockService.NewMockNotificationService(t)

	service := NewAdoptionService(requests, animals, identity, notifier,
		validator.New(), testConfig(), discardLogger())

	return adoptionServiceFixtures{
		service:  service,
		animals:  animals,
		requests: requests,
		identity: identity,
		notifier: notifier,
	}
}

var requester = &entity.Principal{UID: "user-1", Email: "camille@example.fr"}

func (f adoptionServiceFixtures) seedAnimal(t *testing.T) *entity.Animal {
	t.Helper()

	animal := &entity.Animal{Name: "Filou", Type: "chat", RefugeID: "shelter-a", Available: true}
	id, err := f.animals.Create(context.Background(), animal)
	require.NoError(t, err)
	animal.ID = id

	return animal
}

func (f adoptionServiceFixtures) userRequests(t *testing.T) []*entity.AdoptionRequest {
	t.Helper()

	feed := f.service.RequestsByUser(context.Background(), requester.UID)
	defer feed.Close()

	return livetest.Next(t, feed)
}

func TestAdoptionService_Submit_CreatesPendingRequest(t *testing.T) {
	ctx := context.Background()
	fx := createTestAdoptionService(t)
	animal := fx.seedAnimal(t)

	fx.notifier.EXPECT().
		NotifyAdoptionRequested(mock.Anything, mock.MatchedBy(func(r *entity.AdoptionRequest) bool {
			return r.AnimalID == animal.ID && r.RefugeID == "shelter-a" && r.ID != ""
		})).
		Return(nil).
		Once()

	id, err := fx.service.Submit(ctx, requester, &usecase.SubmitAdoptionInput{
		AnimalID: animal.ID,
		Message:  "0123456789",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	requests := fx.userRequests(t)
	require.Len(t, requests, 1)
	request := requests[0]
	assert.Equal(t, id, request.ID)
	assert.Equal(t, entity.StatusPending, request.Status)
	assert.Equal(t, "Filou", request.AnimalName)
	assert.Equal(t, "shelter-a", request.RefugeID)
	assert.Equal(t, requester.UID, request.UserID)
	assert.Equal(t, requester.Email, request.UserEmail)
	assert.Equal(t, "0123456789", request.Message)
	assert.False(t, request.CreatedAt.IsZero())
}

func TestAdoptionService_Submit_ShortMessageCreatesNothing(t *testing.T) {
	ctx := context.Background()

	for _, message := range []string{"", "123456789", "éééééééé", "🐱🐱🐱🐱🐱"} {
		t.Run(message, func(t *testing.T) {
			fx := createTestAdoptionService(t)
			animal := fx.seedAnimal(t)

			id, err := fx.service.Submit(ctx, requester, &usecase.SubmitAdoptionInput{
				AnimalID: animal.ID,
				Message:  message,
			})
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Empty(t, id)
			assert.Empty(t, fx.userRequests(t))
		})
	}
}

func TestAdoptionService_Submit_ValidatesBeforeAnyCall(t *testing.T) {
	fx := createTestAdoptionService(t)

	_, err := fx.service.Submit(context.Background(), nil, &usecase.SubmitAdoptionInput{
		AnimalID: "any",
		Message:  "court",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdoptionService_Submit_ForcesPendingStatus(t *testing.T) {
	ctx := context.Background()
	fx := createTestAdoptionService(t)
	animal := fx.seedAnimal(t)
	fx.notifier.EXPECT().NotifyAdoptionRequested(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.Submit(ctx, requester, &usecase.SubmitAdoptionInput{
		AnimalID: animal.ID,
		Message:  "Je voudrais adopter Filou, j'ai un jardin.",
		Status:   entity.StatusApproved,
	})
	require.NoError(t, err)

	requests := fx.userRequests(t)
	require.Len(t, requests, 1)
	assert.Equal(t, entity.StatusPending, requests[0].Status)
}

func TestAdoptionService_Submit_DenormalizedFieldsAreNotUpdated(t *testing.T) {
	ctx := context.Background()
	fx := createTestAdoptionService(t)
	animal := fx.seedAnimal(t)
	fx.notifier.EXPECT().NotifyAdoptionRequested(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.Submit(ctx, requester, &usecase.SubmitAdoptionInput{
		AnimalID: animal.ID,
		Message:  "Je voudrais adopter Filou.",
	})
	require.NoError(t, err)

	require.NoError(t, fx.animals.Update(ctx, animal.ID, &entity.AnimalUpdate{Name: ptr("Filou le Grand")}))

	requests := fx.userRequests(t)
	require.Len(t, requests, 1)
	assert.Equal(t, "Filou", requests[0].AnimalName)
}

func TestAdoptionService_Submit_Failures(t *testing.T) {
	ctx := context.Background()
	message := strings.Repeat("m", 12)

	t.Run("missing animal", func(t *testing.T) {
		fx := createTestAdoptionService(t)

		_, err := fx.service.Submit(ctx, requester, &usecase.SubmitAdoptionInput{AnimalID: "missing", Message: message})
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("missing requester", func(t *testing.T) {
		fx := createTestAdoptionService(t)
		animal := fx.seedAnimal(t)

		_, err := fx.service.Submit(ctx, nil, &usecase.SubmitAdoptionInput{AnimalID: animal.ID, Message: message})
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})

	t.Run("missing animal id", func(t *testing.T) {
		fx := createTestAdoptionService(t)

		_, err := fx.service.Submit(ctx, requester, &usecase.SubmitAdoptionInput{Message: message})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAdoptionService_Submit_NotificationFailureIsNotSurfaced(t *testing.T) {
	ctx := context.Background()
	fx := createTestAdoptionService(t)
	animal := fx.seedAnimal(t)
	fx.notifier.EXPECT().
		NotifyAdoptionRequested(mock.Anything, mock.Anything).
		Return(errors.New("messaging unavailable"))

	id, err := fx.service.Submit(ctx, requester, &usecase.SubmitAdoptionInput{
		AnimalID: animal.ID,
		Message:  "Je voudrais adopter Filou.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Len(t, fx.userRequests(t), 1)
}

func TestAdoptionService_ShelterViews(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fx := createTestAdoptionService(t)
	animal := fx.seedAnimal(t)
	fx.notifier.EXPECT().NotifyAdoptionRequested(mock.Anything, mock.Anything).Return(nil)

	fx.identity.EXPECT().Current().Return(&entity.Principal{UID: "shelter-a"}).Once()
	received, err := fx.service.ShelterRequests(ctx)
	require.NoError(t, err)
	defer received.Close()
	assert.Empty(t, livetest.Next(t, received))

	id, err := fx.service.Submit(ctx, requester, &usecase.SubmitAdoptionInput{
		AnimalID: animal.ID,
		Message:  "Je voudrais adopter Filou.",
	})
	require.NoError(t, err)

	snapshot := livetest.Eventually(t, received, func(requests []*entity.AdoptionRequest) bool {
		return len(requests) == 1
	})
	assert.Equal(t, id, snapshot[0].ID)

	fx.identity.EXPECT().Current().Return(requester).Once()
	mine, err := fx.service.MyRequests(ctx)
	require.NoError(t, err)
	defer mine.Close()
	assert.Len(t, livetest.Next(t, mine), 1)

	fx.identity.EXPECT().Current().Return(nil).Once()
	_, err = fx.service.MyRequests(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAdoptionService_Submit_StoreFailures(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("deadline exceeded")
	input := &usecase.SubmitAdoptionInput{AnimalID: "animal-1", Message: "Je voudrais adopter Filou."}

	t.Run("animal lookup", func(t *testing.T) {
		animals := mockRepo.NewMockAnimalRepository(t)
		requests := mockRepo.NewMockAdoptionRequestRepository(t)
		animals.EXPECT().FindByID(mock.Anything, "animal-1").Return(nil, storeErr)

		srv := NewAdoptionService(requests, animals, mockService.NewMockIdentityProvider(t),
			mockService.NewMockNotificationService(t), validator.New(), testConfig(), discardLogger())

		_, err := srv.Submit(ctx, requester, input)
		require.ErrorIs(t, err, storeErr)
		assert.Equal(t, domainerrors.CodeBackingService, domainerrors.Kind(err))
	})

	t.Run("request write", func(t *testing.T) {
		animals := mockRepo.NewMockAnimalRepository(t)
		requests := mockRepo.NewMockAdoptionRequestRepository(t)
		animals.EXPECT().FindByID(mock.Anything, "animal-1").
			Return(&entity.Animal{ID: "animal-1", Name: "Filou", RefugeID: "shelter-a"}, nil)
		requests.EXPECT().Create(mock.Anything, mock.Anything).Return("", storeErr)

		// No notification is sent for a request that was not stored
		srv := NewAdoptionService(requests, animals, mockService.NewMockIdentityProvider(t),
			mockService.NewMockNotificationService(t), validator.New(), testConfig(), discardLogger())

		id, err := srv.Submit(ctx, requester, input)
		require.ErrorIs(t, err, storeErr)
		assert.Empty(t, id)

		var backingErr *domainerrors.BackingServiceError
		require.ErrorAs(t, err, &backingErr)
		assert.Equal(t, "store", backingErr.Service())
	})
}
