package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"refuge/config"
	"refuge/internal/delivery/http/middleware"
	"refuge/internal/delivery/http/response"
	"refuge/internal/delivery/http/router"
	"refuge/internal/delivery/http/router/handler"
	"refuge/internal/domain/entity"
	"refuge/internal/infra/auth"
	"refuge/internal/infra/kvstore"
	"refuge/internal/infra/media"
	"refuge/internal/infra/persistence/memory"
	"refuge/internal/infra/qrcode"
	mockService "refuge/internal/mocks/service"
	"refuge/internal/usecase"
	"refuge/internal/usecase/impl"
	"refuge/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

const testImage = "data:image/jpeg;base64,/9j/4AAQSkZJRgABAQ=="

type gateway struct {
	server  *httptest.Server
	session usecase.SessionUsecase
}

func newTestGateway(t *testing.T) *gateway {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Favorites: &config.FavoritesConfig{Key: "favorites"},
		Media:     &config.MediaConfig{MaxEdge: 800, Quality: 70, MaxEncodedLength: entity.MaxEncodedImageLength},
		Adoption:  &config.AdoptionConfig{MinMessageLength: 10},
	}
	cfg.HTTP.MaxRequestBodySize = "2MB"

	identity, err := auth.NewLocalProvider(auth.NewBcryptHasher(bcrypt.MinCost), logger)
	require.NoError(t, err)
	store := memory.NewStore()
	animals := memory.NewAnimalRepository(store)
	profiles := memory.NewProfileRepository(store)
	requests := memory.NewAdoptionRequestRepository(store)
	validate := validator.New()
	encoder := media.NewImageEncoder(cfg, logger)

	notifier := mockService.NewMockNotificationService(t)
	notifier.EXPECT().NotifyAdoptionRequested(mock.Anything, mock.Anything).Return(nil).Maybe()

	session := impl.NewSessionService(identity, profiles, validate, logger)
	t.Cleanup(session.Close)
	favorites := impl.NewFavoritesService(kvstore.NewMemory(), cfg, logger)
	catalog := impl.NewCatalogService(animals, profiles, identity, encoder,
		qrcode.NewQRCodeService(256, "M", "refuge"), favorites, validate, cfg, logger)
	adoption := impl.NewAdoptionService(requests, animals, identity, notifier, validate, cfg, logger)

	lc := fxtest.NewLifecycle(t)
	srv, err := NewServer(ServerParams{
		Lc:              lc,
		Cfg:             cfg,
		Logger:          logger,
		Validator:       validate,
		ErrorMiddleware: middleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			SessionHandler:   handler.NewSessionHandler(session, logger),
			CatalogHandler:   handler.NewCatalogHandler(catalog),
			AdoptionHandler:  handler.NewAdoptionHandler(adoption),
			FavoritesHandler: handler.NewFavoritesHandler(favorites),
			MediaHandler:     handler.NewMediaHandler(encoder),
			AuthMiddleware:   middleware.NewAuthMiddleware(identity, session),
		},
	})
	require.NoError(t, err)
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	server := httptest.NewServer(srv.(*httpServer).server)
	t.Cleanup(server.Close)

	return &gateway{server: server, session: session}
}

func (g *gateway) do(t *testing.T, method, path, token string, body any) (int, *response.Response) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, g.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := g.server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return res.StatusCode, nil
	}

	var out response.Response
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))

	return res.StatusCode, &out
}

// registerShelter signs a shelter in and waits until its profile is loaded.
func (g *gateway) registerShelter(t *testing.T) string {
	t.Helper()

	status, res := g.do(t, http.MethodPost, "/auth/register", "", map[string]any{
		"email":      "refuge@example.fr",
		"password":   "secret1",
		"role":       "refuge",
		"refugeName": "Les Amis des Bêtes",
	})
	require.Equal(t, http.StatusCreated, status)

	require.Eventually(t, func() bool {
		return g.session.CurrentProfile().HasRole(entity.RoleRefuge)
	}, 2*time.Second, 10*time.Millisecond)

	return res.Data.(map[string]any)["idToken"].(string)
}

func (g *gateway) createAnimal(t *testing.T, token string) string {
	t.Helper()

	status, res := g.do(t, http.MethodPost, "/shelter/animals", token, map[string]any{
		"name":        "Filou",
		"type":        "chat",
		"breed":       "européen",
		"age":         3,
		"description": "Un chat calme qui aime les câlins.",
		"image":       testImage,
	})
	require.Equal(t, http.StatusCreated, status, res)

	return res.Data.(map[string]any)["id"].(string)
}

// firstEvent reads the first data event of a stream and decodes it into v.
func (g *gateway) firstEvent(t *testing.T, path, token string, v any) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.server.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := g.server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/event-stream", res.Header.Get("Content-Type"))

	reader := bufio.NewReader(res.Body)
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			require.NoError(t, json.Unmarshal([]byte(data), v))

			return
		}
	}
}

func TestGateway_Health(t *testing.T) {
	g := newTestGateway(t)

	status, res := g.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, res.Success)
}

func TestGateway_ShelterListsAnimal(t *testing.T) {
	g := newTestGateway(t)
	token := g.registerShelter(t)
	id := g.createAnimal(t, token)

	var animals []*entity.Animal
	g.firstEvent(t, "/animals/stream", "", &animals)
	require.Len(t, animals, 1)
	assert.Equal(t, id, animals[0].ID)
	assert.Equal(t, "Les Amis des Bêtes", animals[0].RefugeName)
	assert.True(t, animals[0].Available)

	status, res := g.do(t, http.MethodPost, "/shelter/animals/"+id+"/availability", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, res.Data.(map[string]any)["available"])

	g.firstEvent(t, "/animals/stream", "", &animals)
	assert.Empty(t, animals)
}

func TestGateway_ShelterRoutesRequireToken(t *testing.T) {
	g := newTestGateway(t)

	status, res := g.do(t, http.MethodPost, "/shelter/animals", "", map[string]any{"name": "Filou"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "MISSING_TOKEN", res.Error.Code)

	status, res = g.do(t, http.MethodPost, "/shelter/animals", "forged", map[string]any{"name": "Filou"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "INVALID_TOKEN", res.Error.Code)
}

func TestGateway_UserCannotUseShelterRoutes(t *testing.T) {
	g := newTestGateway(t)

	status, res := g.do(t, http.MethodPost, "/auth/register", "", map[string]any{
		"email":       "camille@example.fr",
		"password":    "secret1",
		"role":        "user",
		"displayName": "Camille",
	})
	require.Equal(t, http.StatusCreated, status)
	token := res.Data.(map[string]any)["idToken"].(string)
	require.Eventually(t, func() bool {
		return g.session.CurrentProfile().HasRole(entity.RoleUser)
	}, 2*time.Second, 10*time.Millisecond)

	status, res = g.do(t, http.MethodGet, "/shelter/requests/stream", token, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", res.Error.Code)
}

func TestGateway_ErrorKinds(t *testing.T) {
	g := newTestGateway(t)
	token := g.registerShelter(t)
	id := g.createAnimal(t, token)

	t.Run("validation", func(t *testing.T) {
		status, res := g.do(t, http.MethodPost, "/adoptions", token, map[string]any{
			"animalId": id,
			"message":  "court",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_FAILED", res.Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		status, res := g.do(t, http.MethodGet, "/animals/missing/qrcode", "", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("image too large", func(t *testing.T) {
		status, res := g.do(t, http.MethodPatch, "/shelter/animals/"+id, token, map[string]any{
			"image": "data:image/jpeg;base64," + strings.Repeat("A", entity.MaxEncodedImageLength),
		})
		assert.Equal(t, http.StatusRequestEntityTooLarge, status)
		assert.Equal(t, "IMAGE_TOO_LARGE", res.Error.Code)
	})

	t.Run("email in use", func(t *testing.T) {
		status, res := g.do(t, http.MethodPost, "/auth/register", "", map[string]any{
			"email":      "refuge@example.fr",
			"password":   "secret1",
			"role":       "refuge",
			"refugeName": "Doublon",
		})
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, middleware.CodeEmailInUse, res.Error.Code)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		status, res := g.do(t, http.MethodPost, "/auth/login", "", map[string]any{
			"email":    "refuge@example.fr",
			"password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, middleware.CodeInvalidCredentials, res.Error.Code)
	})
}

func TestGateway_AdoptionRequestReachesShelter(t *testing.T) {
	g := newTestGateway(t)
	token := g.registerShelter(t)
	id := g.createAnimal(t, token)

	status, res := g.do(t, http.MethodPost, "/adoptions", token, map[string]any{
		"animalId": id,
		"message":  "Je voudrais adopter Filou, j'ai un jardin.",
	})
	require.Equal(t, http.StatusCreated, status, res)

	var requests []*entity.AdoptionRequest
	g.firstEvent(t, "/shelter/requests/stream", token, &requests)
	require.Len(t, requests, 1)
	assert.Equal(t, id, requests[0].AnimalID)
	assert.Equal(t, "Filou", requests[0].AnimalName)
	assert.Equal(t, entity.StatusPending, requests[0].Status)
}

func TestGateway_Favorites(t *testing.T) {
	g := newTestGateway(t)
	token := g.registerShelter(t)
	id := g.createAnimal(t, token)

	status, res := g.do(t, http.MethodPost, "/favorites/"+id+"/toggle", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, res.Data.(map[string]any)["favorite"])

	status, _ = g.do(t, http.MethodPut, "/favorites/"+id, "", nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, res = g.do(t, http.MethodGet, "/favorites", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{id}, res.Data)

	var animals []*entity.Animal
	g.firstEvent(t, "/favorites/animals/stream", "", &animals)
	require.Len(t, animals, 1)
	assert.Equal(t, id, animals[0].ID)
}
