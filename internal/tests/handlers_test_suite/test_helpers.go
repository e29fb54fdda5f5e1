package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/motohub/moto-catalog/internal/auth"
	api "github.com/motohub/moto-catalog/internal/http"
	handler "github.com/motohub/moto-catalog/internal/http/handlers"
	"github.com/motohub/moto-catalog/internal/models"
	"github.com/motohub/moto-catalog/internal/repo"
	"github.com/motohub/moto-catalog/internal/session"
	"github.com/motohub/moto-catalog/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var (
	token       string
	catalogRepo *repo.InMemoryCatalogRepository
	changeRepo  *repo.InMemoryChangeRepository
	sessions    *session.Manager
)

func init() {
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	catalogRepo = repo.NewInMemoryCatalogRepository(repo.DefaultCategories(), repo.DefaultBrands())
	if err := repo.SeedCatalog(catalogRepo); err != nil {
		panic(fmt.Sprintf("error seeding catalog: %v", err))
	}
	handler.SetCatalogRepo(catalogRepo)

	changeRepo = repo.NewInMemoryChangeRepository()
	handler.SetChangeRepo(changeRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})

	metricsRepo := repo.NewInMemoryMetricsRepository()
	handler.SetMetricsRepo(metricsRepo)
	metricsRepo.SetRepositories(catalogRepo, changeRepo)

	sessions = session.NewManager(time.Hour, store.DefaultDiscounts())
	handler.SetSessionManager(sessions)

	handler.SetRefreshTokenStore(auth.NewMemoryRefreshTokenStore())
}

func resetCatalog() {
	catalogRepo.Clear()
	if err := repo.SeedCatalog(catalogRepo); err != nil {
		panic(fmt.Sprintf("error seeding catalog: %v", err))
	}
	changeRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

// doJSON sends a JSON request with an optional session id and returns the
// recorder. A nil payload sends an empty body.
func doJSON(r http.Handler, method, path, sessionID string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	if sessionID != "" {
		req.Header.Set(handler.SessionHeader, sessionID)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// newSession fetches an empty cart to obtain a fresh session id.
func newSession(r http.Handler) string {
	w := doJSON(r, http.MethodGet, "/cart", "", nil)
	return w.Header().Get(handler.SessionHeader)
}

func addToCart(r http.Handler, sessionID, motorcycleID, color, variant string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/cart/items", sessionID, handler.AddToCartRequest{
		MotorcycleID: motorcycleID,
		Color:        color,
		Variant:      variant,
	})
}

func createMotorcycle(r http.Handler, m handler.MotorcycleRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(m)
	req := httptest.NewRequest(http.MethodPost, "/motorcycles", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validMotorcycle() handler.MotorcycleRequest {
	return handler.MotorcycleRequest{
		Brand:    "Honda",
		Model:    "CBR650R",
		Category: "sport",
		EngineCC: 649,
		Price:    9899,
		Colors:   []models.Color{{Name: "Grand Prix Red", Hex: "#CC0000"}},
		Variants: []models.Variant{{Name: "Standard", Price: 9899}},
	}
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
