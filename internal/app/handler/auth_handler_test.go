package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authResponse struct {
	Message      string `json:"message"`
	DealerID     uint   `json:"dealer_id"`
	ShopkeeperID uint   `json:"shopkeeper_id"`
	Detail       string `json:"detail"`
}

func dealerSignupBody(email string) map[string]interface{} {
	return map[string]interface{}{
		"name":          "Иван Петров",
		"email":         email,
		"company_name":  "ООО Поставка",
		"location_name": "Москва",
		"latitude":      55.7558,
		"longitude":     37.6173,
		"password":      "secret123",
	}
}

func shopkeeperSignupBody(email string) map[string]interface{} {
	return map[string]interface{}{
		"name":          "Анна Смирнова",
		"email":         email,
		"shop_name":     "Продукты 24",
		"location_name": "Казань",
		"latitude":      55.7963,
		"longitude":     49.1088,
		"domain":        "grocery",
		"password":      "secret123",
	}
}

func TestDealerSignupThenLogin(t *testing.T) {
	store := newFakeStore()
	router := setupRouter(store)

	w := postJSON(t, router, "/dealer/signup", dealerSignupBody("dealer@example.com"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var signup authResponse
	decodeJSON(t, w, &signup)
	assert.Equal(t, "Dealer signup successful", signup.Message)
	require.NotZero(t, signup.DealerID)

	// Повторный вход возвращает тот же идентификатор
	w = postJSON(t, router, "/dealer/login", map[string]string{
		"email":    "dealer@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login authResponse
	decodeJSON(t, w, &login)
	assert.Equal(t, "Login successful", login.Message)
	assert.Equal(t, signup.DealerID, login.DealerID)
}

func TestDealerLogin_WrongPassword(t *testing.T) {
	store := newFakeStore()
	router := setupRouter(store)

	w := postJSON(t, router, "/dealer/signup", dealerSignupBody("dealer@example.com"))
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, "/dealer/login", map[string]string{
		"email":    "dealer@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp authResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Invalid credentials", resp.Detail)
}

// Неизвестный email и неверный пароль неотличимы для клиента
func TestDealerLogin_NoEnumerationSignal(t *testing.T) {
	store := newFakeStore()
	router := setupRouter(store)

	w := postJSON(t, router, "/dealer/signup", dealerSignupBody("dealer@example.com"))
	require.Equal(t, http.StatusOK, w.Code)

	wrongPassword := postJSON(t, router, "/dealer/login", map[string]string{
		"email":    "dealer@example.com",
		"password": "wrong-password",
	})
	unknownEmail := postJSON(t, router, "/dealer/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestDealerSignup_DuplicateEmail(t *testing.T) {
	store := newFakeStore()
	router := setupRouter(store)

	w := postJSON(t, router, "/dealer/signup", dealerSignupBody("dealer@example.com"))
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, "/dealer/signup", dealerSignupBody("dealer@example.com"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp authResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Email already registered", resp.Detail)

	// Вторая запись не создана
	assert.Len(t, store.dealers, 1)
}

func TestDealerSignup_InvalidBody(t *testing.T) {
	router := setupRouter(newFakeStore())

	w := postJSON(t, router, "/dealer/signup", map[string]string{
		"name":  "Иван",
		"email": "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShopkeeperSignupThenLogin(t *testing.T) {
	store := newFakeStore()
	router := setupRouter(store)

	w := postJSON(t, router, "/shopkeeper/signup", shopkeeperSignupBody("shop@example.com"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var signup authResponse
	decodeJSON(t, w, &signup)
	assert.Equal(t, "Shopkeeper signup successful", signup.Message)
	require.NotZero(t, signup.ShopkeeperID)

	w = postJSON(t, router, "/shopkeeper/login", map[string]string{
		"email":    "shop@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login authResponse
	decodeJSON(t, w, &login)
	assert.Equal(t, signup.ShopkeeperID, login.ShopkeeperID)
}

func TestShopkeeperSignup_DuplicateEmail(t *testing.T) {
	store := newFakeStore()
	router := setupRouter(store)

	w := postJSON(t, router, "/shopkeeper/signup", shopkeeperSignupBody("shop@example.com"))
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, "/shopkeeper/signup", shopkeeperSignupBody("shop@example.com"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, store.shopkeepers, 1)
}

// Битый хеш в базе читается как неверный пароль, а не как сбой сервера
func TestDealerLogin_MalformedStoredHash(t *testing.T) {
	store := newFakeStore()
	router := setupRouter(store)

	w := postJSON(t, router, "/dealer/signup", dealerSignupBody("dealer@example.com"))
	require.Equal(t, http.StatusOK, w.Code)

	for _, d := range store.dealers {
		d.PasswordHash = "corrupted"
	}

	w = postJSON(t, router, "/dealer/login", map[string]string{
		"email":    "dealer@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp authResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Invalid credentials", resp.Detail)
}
